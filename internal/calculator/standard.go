package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// Standard is the level-payment principal and interest mortgage
type Standard struct{}

// Schedule amortizes the principal over termYears*12 monthly payments
func (Standard) Schedule(in models.LoanInput) (*models.MortgageSchedule, error) {
	numPayments := in.TermYears * 12
	if err := checkPeriods(models.RepaymentTypeStandard, numPayments); err != nil {
		return nil, err
	}

	monthlyRate := in.MonthlyRate()
	payment, places, err := amortizedPayment(models.RepaymentTypeStandard, in.Principal, monthlyRate, numPayments)
	if err != nil {
		return nil, err
	}

	b := newScheduleBuilder(in.StartDate, decimalutil.MonthlyInterval, numPayments)
	remaining := in.Principal
	for n := 1; n <= numPayments; n++ {
		interest := decimalutil.TrimTo(remaining.Mul(monthlyRate), places)
		remaining = remaining.Sub(payment.Sub(interest))
		b.add(n, payment, interest, remaining, in.AnnualInterestRate)
	}

	monthlyPayment := decimalutil.RoundCurrency(payment)
	return b.build(monthlyPayment, monthlyPayment.Mul(decimal.NewFromInt(int64(numPayments)))), nil
}

// Summary folds the schedule
func (c Standard) Summary(in models.LoanInput) (*models.MortgageSummary, error) {
	schedule, err := c.Schedule(in)
	if err != nil {
		return nil, err
	}
	return models.NewMortgageSummary(models.RepaymentTypeStandard, schedule, in.Principal, in.AnnualInterestRate), nil
}
