package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

var two = decimal.NewFromInt(2)

// AcceleratedBiweekly pays half of the standard monthly payment every 14
// days. The per-period rate is the monthly rate halved, so the speed-up
// comes from making 26 half payments a year instead of 24.
type AcceleratedBiweekly struct{}

// Schedule builds termYears*26 biweekly payments
func (AcceleratedBiweekly) Schedule(in models.LoanInput) (*models.MortgageSchedule, error) {
	numPayments := in.TermYears * 26
	if err := checkPeriods(models.RepaymentTypeAcceleratedBiweekly, numPayments); err != nil {
		return nil, err
	}

	monthlyRate := in.MonthlyRate()
	biweeklyRate := monthlyRate.DivRound(two, decimalutil.Precision)

	monthlyEquivalent, monthlyPlaces, err := amortizedPayment(models.RepaymentTypeAcceleratedBiweekly, in.Principal, monthlyRate, in.TermYears*12)
	if err != nil {
		return nil, err
	}
	places := max(monthlyPlaces, decimalutil.GrowthPlaces(decimalutil.Power(decimal.NewFromInt(1).Add(biweeklyRate), numPayments)))
	payment := monthlyEquivalent.DivRound(two, places)

	b := newScheduleBuilder(in.StartDate, decimalutil.BiweeklyInterval, numPayments)
	remaining := in.Principal
	for n := 1; n <= numPayments; n++ {
		interest := decimalutil.TrimTo(remaining.Mul(biweeklyRate), places)
		remaining = remaining.Sub(payment.Sub(interest))
		b.add(n, payment, interest, remaining, in.AnnualInterestRate)
	}

	biweeklyPayment := decimalutil.RoundCurrency(payment)
	total := biweeklyPayment.Mul(decimal.NewFromInt(int64(numPayments)))
	return b.build(biweeklyPayment.Mul(two), total), nil
}

// Summary folds the schedule
func (c AcceleratedBiweekly) Summary(in models.LoanInput) (*models.MortgageSummary, error) {
	schedule, err := c.Schedule(in)
	if err != nil {
		return nil, err
	}
	return models.NewMortgageSummary(models.RepaymentTypeAcceleratedBiweekly, schedule, in.Principal, in.AnnualInterestRate), nil
}
