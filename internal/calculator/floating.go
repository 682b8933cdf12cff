package calculator

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// Floating rate bounds in whole percent
const (
	MinFloatingRate = 1
	MaxFloatingRate = 10
)

// FloatingRateAPR is the APR reported for floating-rate summaries
var FloatingRateAPR = decimal.RequireFromString("5.5")

// RateSource draws integers in [0, n). *rand.Rand satisfies it.
type RateSource interface {
	IntN(n int) int
}

// FloatingRate draws a fresh annual rate between 1% and 10% for every month.
// A zero FloatingRate seeds a new generator per calculation.
type FloatingRate struct {
	Source RateSource
}

// NewFloatingRate returns a FloatingRate drawing from src
func NewFloatingRate(src RateSource) FloatingRate {
	return FloatingRate{Source: src}
}

func (c FloatingRate) source() RateSource {
	if c.Source != nil {
		return c.Source
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Schedule builds termYears*12 monthly payments with a random rate each.
// The payment is remaining*(r*(1+r))/((1+r)-1), which collapses to
// remaining*(1+r); it is not a multi-period amortization.
func (c FloatingRate) Schedule(in models.LoanInput) (*models.MortgageSchedule, error) {
	numPayments := in.TermYears * 12
	if err := checkPeriods(models.RepaymentTypeFloatingRate, numPayments); err != nil {
		return nil, err
	}

	src := c.source()
	one := decimal.NewFromInt(1)

	b := newScheduleBuilder(in.StartDate, decimalutil.MonthlyInterval, numPayments)
	remaining := in.Principal
	for n := 1; n <= numPayments; n++ {
		annualRate := decimal.NewFromInt(int64(MinFloatingRate + src.IntN(MaxFloatingRate-MinFloatingRate+1)))
		monthlyRate := decimalutil.AnnualToMonthlyRate(decimalutil.PercentageToRate(annualRate))

		denominator := one.Add(monthlyRate).Sub(one)
		if denominator.IsZero() {
			return nil, &CalculationError{RepaymentType: models.RepaymentTypeFloatingRate, Err: decimalutil.ErrZeroRate}
		}
		payment := remaining.Mul(monthlyRate.Mul(one.Add(monthlyRate))).DivRound(denominator, decimalutil.Precision)
		interest := decimalutil.Trim(remaining.Mul(monthlyRate))
		remaining = remaining.Sub(payment.Sub(interest))

		b.add(n, payment, interest, remaining, annualRate)
	}

	average := b.totalPayments.DivRound(decimal.NewFromInt(int64(numPayments)), decimalutil.Precision)
	return b.build(decimalutil.RoundCurrency(average), b.totalPayments), nil
}

// Summary folds the schedule. The APR is the fixed FloatingRateAPR, not
// derived from the drawn rates.
func (c FloatingRate) Summary(in models.LoanInput) (*models.MortgageSummary, error) {
	schedule, err := c.Schedule(in)
	if err != nil {
		return nil, err
	}
	return models.NewMortgageSummary(models.RepaymentTypeFloatingRate, schedule, in.Principal, FloatingRateAPR), nil
}
