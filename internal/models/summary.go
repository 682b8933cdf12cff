package models

import "github.com/shopspring/decimal"

// RateRange is the lowest and highest rate applied over a schedule
type RateRange struct {
	Min decimal.Decimal `json:"min" swaggertype:"string"`
	Max decimal.Decimal `json:"max" swaggertype:"string"`
}

// MortgageSummary aggregates a schedule into headline figures
type MortgageSummary struct {
	RepaymentType      RepaymentType    `json:"repaymentType"`
	MonthlyPayment     decimal.Decimal  `json:"monthlyPayment" swaggertype:"string"`
	TotalPayments      decimal.Decimal  `json:"totalPayments" swaggertype:"string"`
	TotalInterest      decimal.Decimal  `json:"totalInterest" swaggertype:"string"`
	TotalPrincipalPaid decimal.Decimal  `json:"totalPrincipalPaid" swaggertype:"string"`
	APR                decimal.Decimal  `json:"apr" swaggertype:"string"`
	NumberOfPayments   int              `json:"numberOfPayments"`
	BalloonPayment     *decimal.Decimal `json:"balloonPayment" swaggertype:"string"`
	RateRange          *RateRange       `json:"rateRange"`
}

// NewMortgageSummary folds a schedule into a summary
func NewMortgageSummary(t RepaymentType, schedule *MortgageSchedule, principal, apr decimal.Decimal) *MortgageSummary {
	return &MortgageSummary{
		RepaymentType:      t,
		MonthlyPayment:     schedule.MonthlyPayment,
		TotalPayments:      schedule.TotalPayments,
		TotalInterest:      schedule.TotalInterest,
		TotalPrincipalPaid: principal,
		APR:                apr,
		NumberOfPayments:   schedule.PaymentCount(),
	}
}

// WithBalloonPayment sets the final balloon amount
func (s *MortgageSummary) WithBalloonPayment(amount decimal.Decimal) *MortgageSummary {
	s.BalloonPayment = &amount
	return s
}

// WithRateRange sets the rate range
func (s *MortgageSummary) WithRateRange(min, max decimal.Decimal) *MortgageSummary {
	s.RateRange = &RateRange{Min: min, Max: max}
	return s
}
