package calculator

import (
	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// InterestOnly charges interest every month and settles the whole principal
// with the final payment. RemainingPrincipal stays at the original principal
// on every entry, including the last one.
type InterestOnly struct{}

// Schedule builds termYears*12 interest-only payments
func (InterestOnly) Schedule(in models.LoanInput) (*models.MortgageSchedule, error) {
	numPayments := in.TermYears * 12
	if err := checkPeriods(models.RepaymentTypeInterestOnly, numPayments); err != nil {
		return nil, err
	}

	payment := decimalutil.Trim(in.Principal.Mul(in.MonthlyRate()))

	b := newScheduleBuilder(in.StartDate, decimalutil.MonthlyInterval, numPayments)
	for n := 1; n <= numPayments; n++ {
		amount := payment
		if n == numPayments {
			amount = payment.Add(in.Principal)
		}
		b.add(n, amount, payment, in.Principal, in.AnnualInterestRate)
	}

	monthlyPayment := decimalutil.RoundCurrency(payment)
	total := monthlyPayment.Mul(decimal.NewFromInt(int64(numPayments))).Add(decimalutil.RoundCurrency(in.Principal))
	return b.build(monthlyPayment, total), nil
}

// Summary folds the schedule
func (c InterestOnly) Summary(in models.LoanInput) (*models.MortgageSummary, error) {
	schedule, err := c.Schedule(in)
	if err != nil {
		return nil, err
	}
	return models.NewMortgageSummary(models.RepaymentTypeInterestOnly, schedule, in.Principal, in.AnnualInterestRate), nil
}
