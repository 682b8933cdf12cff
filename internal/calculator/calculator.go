// Package calculator turns a LoanInput into an amortization schedule and its
// summary for each supported repayment structure.
package calculator

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/internal/models"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// Calculator produces a schedule and a summary for one repayment type.
// Summary is always derived from Schedule so the two never disagree.
type Calculator interface {
	Schedule(in models.LoanInput) (*models.MortgageSchedule, error)
	Summary(in models.LoanInput) (*models.MortgageSummary, error)
}

var (
	// ErrUnknownRepaymentType is returned by For for tags outside the catalog
	ErrUnknownRepaymentType = errors.New("unknown repayment type")
	// ErrNoPayments is returned when the term yields no payment periods
	ErrNoPayments = errors.New("loan term yields no payments")
)

// CalculationError reports an input the arithmetic cannot handle
type CalculationError struct {
	RepaymentType models.RepaymentType
	Err           error
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("%s: %v", e.RepaymentType, e.Err)
}

func (e *CalculationError) Unwrap() error {
	return e.Err
}

// For returns the calculator of a repayment type
func For(t models.RepaymentType) (Calculator, error) {
	switch t {
	case models.RepaymentTypeStandard:
		return Standard{}, nil
	case models.RepaymentTypeInterestOnly:
		return InterestOnly{}, nil
	case models.RepaymentTypeAcceleratedBiweekly:
		return AcceleratedBiweekly{}, nil
	case models.RepaymentTypeBalloonPayment:
		return Balloon{}, nil
	case models.RepaymentTypeFloatingRate:
		return FloatingRate{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRepaymentType, string(t))
}

// amortizedPayment returns principal * factor(rate, n) and the number of
// places the balance loop must keep for the schedule to pay off.
func amortizedPayment(t models.RepaymentType, principal, rate decimal.Decimal, n int) (decimal.Decimal, int32, error) {
	factor, places, err := decimalutil.AmortizationFactor(rate, n)
	if err != nil {
		return decimal.Zero, 0, &CalculationError{RepaymentType: t, Err: err}
	}
	return decimalutil.TrimTo(principal.Mul(factor), places), places, nil
}

func checkPeriods(t models.RepaymentType, n int) error {
	if n <= 0 {
		return &CalculationError{RepaymentType: t, Err: ErrNoPayments}
	}
	return nil
}

// scheduleBuilder collects entries, rounding every reported amount to cents.
// The principal component is derived after rounding so that
// paymentAmount == principalComponent + interestComponent on every entry.
type scheduleBuilder struct {
	dates         []time.Time
	entries       []models.PaymentScheduleEntry
	totalInterest decimal.Decimal
	totalPayments decimal.Decimal
}

func newScheduleBuilder(start models.Date, interval time.Duration, n int) *scheduleBuilder {
	return &scheduleBuilder{
		dates:   decimalutil.PaymentDates(start.Time, n, interval),
		entries: make([]models.PaymentScheduleEntry, 0, n),
	}
}

func (b *scheduleBuilder) add(number int, payment, interest, remaining, rate decimal.Decimal) {
	paymentAmount := decimalutil.RoundCurrency(payment)
	interestComponent := decimalutil.RoundCurrency(interest)
	currentRate := rate

	b.entries = append(b.entries, models.PaymentScheduleEntry{
		PaymentDate:        models.Date{Time: b.dates[number-1]},
		PaymentNumber:      number,
		PaymentAmount:      paymentAmount,
		PrincipalComponent: paymentAmount.Sub(interestComponent),
		InterestComponent:  interestComponent,
		RemainingPrincipal: decimalutil.RoundCurrency(remaining),
		CurrentRate:        &currentRate,
	})
	b.totalInterest = b.totalInterest.Add(interestComponent)
	b.totalPayments = b.totalPayments.Add(paymentAmount)
}

func (b *scheduleBuilder) build(monthlyPayment, totalPayments decimal.Decimal) *models.MortgageSchedule {
	return &models.MortgageSchedule{
		MonthlyPayment: monthlyPayment,
		TotalPayments:  totalPayments,
		TotalInterest:  b.totalInterest,
		Schedule:       b.entries,
	}
}
