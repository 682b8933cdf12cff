package models

import (
	"encoding/json"
	"fmt"
)

// RepaymentType identifies one of the supported mortgage repayment structures
type RepaymentType string

// Repayment type constants
const (
	RepaymentTypeStandard            RepaymentType = "standardPrincipalAndInterest"
	RepaymentTypeInterestOnly        RepaymentType = "interestOnly"
	RepaymentTypeAcceleratedBiweekly RepaymentType = "acceleratedBiweekly"
	RepaymentTypeBalloonPayment      RepaymentType = "balloonPayment"
	RepaymentTypeFloatingRate        RepaymentType = "floatingRate"
)

// AllRepaymentTypes returns every supported repayment type in catalog order
func AllRepaymentTypes() []RepaymentType {
	return []RepaymentType{
		RepaymentTypeStandard,
		RepaymentTypeInterestOnly,
		RepaymentTypeAcceleratedBiweekly,
		RepaymentTypeBalloonPayment,
		RepaymentTypeFloatingRate,
	}
}

// Valid returns true if t is one of the supported repayment types
func (t RepaymentType) Valid() bool {
	for _, known := range AllRepaymentTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// String returns the display name
func (t RepaymentType) String() string {
	switch t {
	case RepaymentTypeStandard:
		return "Standard Principal and Interest"
	case RepaymentTypeInterestOnly:
		return "Interest Only"
	case RepaymentTypeAcceleratedBiweekly:
		return "Accelerated Biweekly"
	case RepaymentTypeBalloonPayment:
		return "Balloon Payment"
	case RepaymentTypeFloatingRate:
		return "Floating Rate"
	}
	return string(t)
}

// RequiresBalloonPercentage returns true if the type needs a balloon percentage
func (t RepaymentType) RequiresBalloonPercentage() bool {
	return t == RepaymentTypeBalloonPayment
}

// UnmarshalJSON rejects unknown tags
func (t *RepaymentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("repaymentType must be a string: %w", err)
	}
	candidate := RepaymentType(raw)
	if !candidate.Valid() {
		return fmt.Errorf("unknown repaymentType %q", raw)
	}
	*t = candidate
	return nil
}

// RepaymentTypeInfo describes a repayment type for API consumers
type RepaymentTypeInfo struct {
	RepaymentType             RepaymentType `json:"repaymentType"`
	Name                      string        `json:"name"`
	Description               string        `json:"description"`
	RequiresBalloonPercentage bool          `json:"requiresBalloonPercentage"`
}

var repaymentDescriptions = map[RepaymentType]string{
	RepaymentTypeStandard:            "Regular monthly payments of both principal and interest over the loan term.",
	RepaymentTypeInterestOnly:        "Pay only interest during the loan term with full principal due at the end.",
	RepaymentTypeAcceleratedBiweekly: "Payments every two weeks, resulting in one extra monthly payment per year.",
	RepaymentTypeBalloonPayment:      "Regular payments with a large final balloon payment at the end of the term.",
	RepaymentTypeFloatingRate:        "Variable interest rate that changes monthly between 1-10% APR.",
}

// RepaymentTypeCatalog returns the info entry of every repayment type
func RepaymentTypeCatalog() []RepaymentTypeInfo {
	types := AllRepaymentTypes()
	catalog := make([]RepaymentTypeInfo, 0, len(types))
	for _, t := range types {
		catalog = append(catalog, RepaymentTypeInfo{
			RepaymentType:             t,
			Name:                      t.String(),
			Description:               repaymentDescriptions[t],
			RequiresBalloonPercentage: t.RequiresBalloonPercentage(),
		})
	}
	return catalog
}
