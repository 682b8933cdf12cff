package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// Balloon amortizes principal minus the balloon amount over the full term
// and adds the balloon to the final payment. Interest accrues on the
// outstanding balance starting from the full principal.
type Balloon struct{}

// Schedule builds termYears*12 monthly payments ending with the balloon
func (Balloon) Schedule(in models.LoanInput) (*models.MortgageSchedule, error) {
	numPayments := in.TermYears * 12
	if err := checkPeriods(models.RepaymentTypeBalloonPayment, numPayments); err != nil {
		return nil, err
	}

	monthlyRate := in.MonthlyRate()
	balloonAmount := in.BalloonAmount()
	amortizing := in.Principal.Sub(balloonAmount)

	payment, places, err := amortizedPayment(models.RepaymentTypeBalloonPayment, amortizing, monthlyRate, numPayments)
	if err != nil {
		return nil, err
	}

	b := newScheduleBuilder(in.StartDate, decimalutil.MonthlyInterval, numPayments)
	remaining := in.Principal
	for n := 1; n <= numPayments; n++ {
		interest := decimalutil.TrimTo(remaining.Mul(monthlyRate), places)
		principalComponent := payment.Sub(interest)
		amount := payment
		if n == numPayments {
			principalComponent = principalComponent.Add(balloonAmount)
			amount = payment.Add(balloonAmount)
		}
		remaining = remaining.Sub(principalComponent)
		b.add(n, amount, interest, remaining, in.AnnualInterestRate)
	}

	monthlyPayment := decimalutil.RoundCurrency(payment)
	finalPayment := decimalutil.RoundCurrency(payment.Add(balloonAmount))
	total := monthlyPayment.Mul(decimal.NewFromInt(int64(numPayments - 1))).Add(finalPayment)
	return b.build(monthlyPayment, total), nil
}

// Summary folds the schedule and carries the balloon amount
func (c Balloon) Summary(in models.LoanInput) (*models.MortgageSummary, error) {
	schedule, err := c.Schedule(in)
	if err != nil {
		return nil, err
	}
	return models.NewMortgageSummary(models.RepaymentTypeBalloonPayment, schedule, in.Principal, in.AnnualInterestRate).
		WithBalloonPayment(decimalutil.RoundCurrency(in.BalloonAmount())), nil
}
