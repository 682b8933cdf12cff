// Package decimalutil holds the fixed-point helpers shared by every mortgage
// calculator. Nothing in here touches binary floating point.
package decimalutil

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Precision is the number of decimal places kept for intermediate results.
const Precision int32 = 20

// CurrencyPlaces is the number of decimal places of a reported amount.
const CurrencyPlaces int32 = 2

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// ErrZeroRate is returned when an amortization factor is requested for a
// rate that makes its denominator zero.
var ErrZeroRate = errors.New("amortization factor is undefined for a zero interest rate")

// RoundCurrency rounds to cents using round-half-to-even.
func RoundCurrency(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(CurrencyPlaces)
}

// Trim bounds the scale of an intermediate value to Precision.
func Trim(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(Precision)
}

// TrimTo bounds the scale of an intermediate value to places.
func TrimTo(value decimal.Decimal, places int32) decimal.Decimal {
	return value.RoundBank(places)
}

// PercentageToRate converts a percentage to a rate (5.5 -> 0.055).
func PercentageToRate(percentage decimal.Decimal) decimal.Decimal {
	return percentage.DivRound(hundred, Precision)
}

// AnnualToMonthlyRate divides an annual rate by twelve.
func AnnualToMonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.DivRound(twelve, Precision)
}

// Power raises base to a non-negative integer exponent by repeated
// multiplication. Negative exponents are treated as zero.
func Power(base decimal.Decimal, exp int) decimal.Decimal {
	result := decimal.NewFromInt(1)
	for i := 0; i < exp; i++ {
		result = result.Mul(base)
	}
	return result
}

// IsWithinRange reports whether min <= value <= max.
func IsWithinRange(value, min, max decimal.Decimal) bool {
	return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
}

// MonthlyPaymentFactor returns rate*(1+rate)^n / ((1+rate)^n - 1), the
// multiplier that turns a principal into a level periodic payment.
func MonthlyPaymentFactor(rate decimal.Decimal, numPayments int) (decimal.Decimal, error) {
	factor, _, err := AmortizationFactor(rate, numPayments)
	return factor, err
}

// AmortizationFactor returns the level-payment factor together with the
// number of places a schedule built from it must keep. A rounding error of
// one unit in the last place grows by (1+rate)^n over the term, so places
// is Precision plus the integer digits of that growth.
func AmortizationFactor(rate decimal.Decimal, numPayments int) (decimal.Decimal, int32, error) {
	if rate.IsZero() {
		return decimal.Zero, Precision, ErrZeroRate
	}
	growth := Power(decimal.NewFromInt(1).Add(rate), numPayments)
	denominator := growth.Sub(decimal.NewFromInt(1))
	if denominator.IsZero() {
		return decimal.Zero, Precision, ErrZeroRate
	}
	places := GrowthPlaces(growth)
	return rate.Mul(growth).DivRound(denominator, places), places, nil
}

// GrowthPlaces returns the working precision for a balance that compounds
// by growth over its term.
func GrowthPlaces(growth decimal.Decimal) int32 {
	digits := len(growth.Abs().Truncate(0).String())
	return Precision + int32(digits) + growthMargin
}

// growthMargin covers the errors summed over every period of the term.
const growthMargin int32 = 4
