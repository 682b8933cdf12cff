package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() LoanInput {
	return LoanInput{
		Principal:          decimal.NewFromInt(300000),
		AnnualInterestRate: decimal.NewFromInt(5),
		TermYears:          30,
		RepaymentType:      RepaymentTypeStandard,
		StartDate:          NewDate(2024, 1, 1),
	}
}

func TestRepaymentTypeCatalog(t *testing.T) {
	catalog := RepaymentTypeCatalog()
	require.Len(t, catalog, 5)

	requiring := 0
	for _, info := range catalog {
		if info.RequiresBalloonPercentage {
			requiring++
			assert.Equal(t, "Balloon Payment", info.Name)
		}
		assert.NotEmpty(t, info.Description)
	}
	assert.Equal(t, 1, requiring)
}

func TestRepaymentType_Display(t *testing.T) {
	assert.Equal(t, "Standard Principal and Interest", RepaymentTypeStandard.String())
	assert.Equal(t, "Floating Rate", RepaymentTypeFloatingRate.String())
}

func TestRepaymentType_UnmarshalJSON(t *testing.T) {
	var rt RepaymentType
	require.NoError(t, json.Unmarshal([]byte(`"acceleratedBiweekly"`), &rt))
	assert.Equal(t, RepaymentTypeAcceleratedBiweekly, rt)

	assert.Error(t, json.Unmarshal([]byte(`"reverseMortgage"`), &rt))
	assert.Error(t, json.Unmarshal([]byte(`7`), &rt))
}

func TestLoanInput_UnmarshalJSON(t *testing.T) {
	body := `{
		"principal": 300000,
		"annualInterestRate": "5.25",
		"termYears": 30,
		"repaymentType": "balloonPayment",
		"startDate": "2024-01-01",
		"balloonPaymentPercentage": 20
	}`

	var in LoanInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	assert.True(t, in.Principal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, in.AnnualInterestRate.Equal(decimal.RequireFromString("5.25")))
	assert.Equal(t, RepaymentTypeBalloonPayment, in.RepaymentType)
	assert.Equal(t, "2024-01-01", in.StartDate.String())
	assert.True(t, in.BalloonAmount().Equal(decimal.NewFromInt(60000)))
	assert.NoError(t, in.Validate())
}

func TestLoanInput_BalloonPercentageDefaultsToZero(t *testing.T) {
	var in LoanInput
	require.NoError(t, json.Unmarshal([]byte(`{"principal":1,"annualInterestRate":1,"termYears":1,"repaymentType":"interestOnly","startDate":"2024-01-01"}`), &in))
	assert.True(t, in.BalloonPaymentPercentage.IsZero())
}

func TestLoanInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *LoanInput)
		field  string
	}{
		{"negative principal", func(in *LoanInput) { in.Principal = decimal.NewFromInt(-100000) }, "principal"},
		{"zero principal", func(in *LoanInput) { in.Principal = decimal.Zero }, "principal"},
		{"principal over limit", func(in *LoanInput) { in.Principal = MaxPrincipal.Add(decimal.NewFromInt(1)) }, "principal"},
		{"rate over 100", func(in *LoanInput) { in.AnnualInterestRate = decimal.NewFromInt(101) }, "annualInterestRate"},
		{"negative rate", func(in *LoanInput) { in.AnnualInterestRate = decimal.NewFromInt(-1) }, "annualInterestRate"},
		{"term zero", func(in *LoanInput) { in.TermYears = 0 }, "termYears"},
		{"term too long", func(in *LoanInput) { in.TermYears = 51 }, "termYears"},
		{"unknown type", func(in *LoanInput) { in.RepaymentType = "weekly" }, "repaymentType"},
		{"missing start date", func(in *LoanInput) { in.StartDate = Date{} }, "startDate"},
		{"balloon over 100", func(in *LoanInput) { in.BalloonPaymentPercentage = decimal.NewFromInt(120) }, "balloonPaymentPercentage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			err := in.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Details, tt.field)
			assert.Len(t, verr.Details, 1)
		})
	}
}

func TestLoanInput_ValidateBoundaries(t *testing.T) {
	in := validInput()
	in.Principal = MaxPrincipal
	in.AnnualInterestRate = decimal.Zero
	in.TermYears = 50
	in.BalloonPaymentPercentage = decimal.NewFromInt(100)
	assert.NoError(t, in.Validate())
}

func TestValidationError_CollectsAllFields(t *testing.T) {
	in := LoanInput{}
	err := in.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Details, 4)
	assert.Contains(t, err.Error(), "principal")
}

func TestNewLoanInput_Defaults(t *testing.T) {
	in := NewLoanInput(decimal.NewFromInt(300000), decimal.NewFromInt(5), 30)

	assert.True(t, in.Principal.Equal(decimal.NewFromInt(300000)))
	assert.True(t, in.AnnualInterestRate.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 30, in.TermYears)
	assert.Equal(t, RepaymentTypeStandard, in.RepaymentType)
	assert.True(t, in.BalloonPaymentPercentage.IsZero())
	assert.WithinDuration(t, time.Now().UTC(), in.StartDate.Time, 24*time.Hour)
	assert.NoError(t, in.Validate())
}

func TestNumberOfPayments(t *testing.T) {
	in := validInput()
	assert.Equal(t, 360, in.NumberOfPayments())
	in.RepaymentType = RepaymentTypeAcceleratedBiweekly
	assert.Equal(t, 780, in.NumberOfPayments())
}

func TestMortgageSummary_Builders(t *testing.T) {
	schedule := &MortgageSchedule{
		MonthlyPayment: decimal.NewFromInt(1000),
		TotalPayments:  decimal.NewFromInt(360000),
		TotalInterest:  decimal.NewFromInt(60000),
		Schedule:       make([]PaymentScheduleEntry, 360),
	}

	summary := NewMortgageSummary(RepaymentTypeBalloonPayment, schedule, decimal.NewFromInt(300000), decimal.NewFromInt(5)).
		WithBalloonPayment(decimal.NewFromInt(50000))

	assert.Equal(t, 360, summary.NumberOfPayments)
	require.NotNil(t, summary.BalloonPayment)
	assert.True(t, summary.BalloonPayment.Equal(decimal.NewFromInt(50000)))
	assert.Nil(t, summary.RateRange)

	summary.WithRateRange(decimal.NewFromInt(1), decimal.NewFromInt(10))
	require.NotNil(t, summary.RateRange)
	assert.True(t, summary.RateRange.Max.Equal(decimal.NewFromInt(10)))
}

func TestDate_JSON(t *testing.T) {
	out, err := json.Marshal(NewDate(2024, 2, 29))
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-29"`, string(out))

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"29/02/2024"`), &d))
}
