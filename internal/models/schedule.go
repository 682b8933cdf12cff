package models

import "github.com/shopspring/decimal"

// PaymentScheduleEntry is a single payment of an amortization schedule
type PaymentScheduleEntry struct {
	PaymentDate        Date             `json:"paymentDate" swaggertype:"string"`
	PaymentNumber      int              `json:"paymentNumber"`
	PaymentAmount      decimal.Decimal  `json:"paymentAmount" swaggertype:"string"`
	PrincipalComponent decimal.Decimal  `json:"principalComponent" swaggertype:"string"`
	InterestComponent  decimal.Decimal  `json:"interestComponent" swaggertype:"string"`
	RemainingPrincipal decimal.Decimal  `json:"remainingPrincipal" swaggertype:"string"`
	CurrentRate        *decimal.Decimal `json:"currentRate" swaggertype:"string"`
}

// MortgageSchedule is the full amortization schedule of a loan
type MortgageSchedule struct {
	MonthlyPayment decimal.Decimal        `json:"monthlyPayment" swaggertype:"string"`
	TotalPayments  decimal.Decimal        `json:"totalPayments" swaggertype:"string"`
	TotalInterest  decimal.Decimal        `json:"totalInterest" swaggertype:"string"`
	Schedule       []PaymentScheduleEntry `json:"schedule"`
}

// PaymentCount returns the number of entries in the schedule
func (s *MortgageSchedule) PaymentCount() int {
	return len(s.Schedule)
}

// LastEntry returns the final payment, if any
func (s *MortgageSchedule) LastEntry() (PaymentScheduleEntry, bool) {
	if len(s.Schedule) == 0 {
		return PaymentScheduleEntry{}, false
	}
	return s.Schedule[len(s.Schedule)-1], true
}
