package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/mortgagekit-api/pkg/decimalutil"
)

// Input limits
var (
	MaxPrincipal  = decimal.NewFromInt(1_000_000_000)
	MaxPercentage = decimal.NewFromInt(100)
)

// Term limits in years
const (
	MinTermYears = 1
	MaxTermYears = 50
)

// LoanInput is the request body of every calculation endpoint
type LoanInput struct {
	Principal                decimal.Decimal `json:"principal" swaggertype:"string" example:"300000"`
	AnnualInterestRate       decimal.Decimal `json:"annualInterestRate" swaggertype:"string" example:"5"`
	TermYears                int             `json:"termYears" example:"30"`
	RepaymentType            RepaymentType   `json:"repaymentType" example:"standardPrincipalAndInterest"`
	StartDate                Date            `json:"startDate" swaggertype:"string" example:"2024-01-01"`
	BalloonPaymentPercentage decimal.Decimal `json:"balloonPaymentPercentage" swaggertype:"string" example:"0"`
}

// NewLoanInput returns a standard principal and interest loan starting
// today with no balloon payment.
func NewLoanInput(principal, annualInterestRate decimal.Decimal, termYears int) LoanInput {
	return LoanInput{
		Principal:                principal,
		AnnualInterestRate:       annualInterestRate,
		TermYears:                termYears,
		RepaymentType:            RepaymentTypeStandard,
		StartDate:                Today(),
		BalloonPaymentPercentage: decimal.Zero,
	}
}

// NumberOfPayments returns the period count for the loan's repayment type
func (in LoanInput) NumberOfPayments() int {
	if in.RepaymentType == RepaymentTypeAcceleratedBiweekly {
		return in.TermYears * 26
	}
	return in.TermYears * 12
}

// AnnualRate returns the annual interest rate as a fraction (5 -> 0.05)
func (in LoanInput) AnnualRate() decimal.Decimal {
	return decimalutil.PercentageToRate(in.AnnualInterestRate)
}

// MonthlyRate returns the annual rate divided by twelve, as a fraction
func (in LoanInput) MonthlyRate() decimal.Decimal {
	return decimalutil.AnnualToMonthlyRate(in.AnnualRate())
}

// BalloonAmount returns principal * balloonPaymentPercentage / 100
func (in LoanInput) BalloonAmount() decimal.Decimal {
	return in.Principal.Mul(decimalutil.PercentageToRate(in.BalloonPaymentPercentage))
}

// Validate checks every field and reports all failures at once
func (in LoanInput) Validate() error {
	details := map[string]string{}

	if !in.Principal.IsPositive() || in.Principal.GreaterThan(MaxPrincipal) {
		details["principal"] = "must be greater than 0 and at most 1000000000"
	}
	if !decimalutil.IsWithinRange(in.AnnualInterestRate, decimal.Zero, MaxPercentage) {
		details["annualInterestRate"] = "must be between 0 and 100"
	}
	if in.TermYears < MinTermYears || in.TermYears > MaxTermYears {
		details["termYears"] = fmt.Sprintf("must be between %d and %d", MinTermYears, MaxTermYears)
	}
	if !in.RepaymentType.Valid() {
		details["repaymentType"] = "must be one of the supported repayment types"
	}
	if in.StartDate.IsZero() {
		details["startDate"] = "is required"
	}
	if !decimalutil.IsWithinRange(in.BalloonPaymentPercentage, decimal.Zero, MaxPercentage) {
		details["balloonPaymentPercentage"] = "must be between 0 and 100"
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

// ValidationError lists the invalid fields of a LoanInput
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+" "+e.Details[field])
	}
	return "invalid loan input: " + strings.Join(parts, "; ")
}
