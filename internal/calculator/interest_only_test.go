package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterestOnly_Schedule(t *testing.T) {
	schedule, err := InterestOnly{}.Schedule(baseInput(models.RepaymentTypeInterestOnly))
	require.NoError(t, err)

	require.Len(t, schedule.Schedule, 360)
	assert.Equal(t, "1250.00", schedule.MonthlyPayment.StringFixed(2))

	for _, e := range schedule.Schedule[:359] {
		assert.True(t, e.PrincipalComponent.IsZero(), "payment %d", e.PaymentNumber)
		assert.True(t, e.PaymentAmount.Equal(dec("1250")))
	}

	last, _ := schedule.LastEntry()
	assert.True(t, last.PrincipalComponent.Equal(decimal.NewFromInt(300000)))
	assert.True(t, last.PaymentAmount.Equal(dec("301250")))

	assert.True(t, schedule.TotalInterest.Equal(dec("1250").Mul(decimal.NewFromInt(360))))
	assert.True(t, schedule.TotalPayments.Equal(dec("750000")))
}

// RemainingPrincipal is reported as the original principal on every entry,
// the last one included.
func TestInterestOnly_RemainingPrincipalNeverDecrements(t *testing.T) {
	schedule, err := InterestOnly{}.Schedule(baseInput(models.RepaymentTypeInterestOnly))
	require.NoError(t, err)

	for _, e := range schedule.Schedule {
		assert.True(t, e.RemainingPrincipal.Equal(decimal.NewFromInt(300000)), "payment %d", e.PaymentNumber)
	}
}

func TestInterestOnly_ZeroRate(t *testing.T) {
	in := baseInput(models.RepaymentTypeInterestOnly)
	in.AnnualInterestRate = decimal.Zero
	in.TermYears = 1

	schedule, err := InterestOnly{}.Schedule(in)
	require.NoError(t, err)
	assert.True(t, schedule.MonthlyPayment.IsZero())
	assert.True(t, schedule.TotalInterest.IsZero())
	assert.True(t, schedule.TotalPayments.Equal(decimal.NewFromInt(300000)))
}
