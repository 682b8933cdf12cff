package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of calendar dates
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day, stored at UTC midnight
type Date struct {
	time.Time
}

// NewDate builds a Date from its components
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current UTC calendar date
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// ParseDate parses a YYYY-MM-DD string
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return Date{Time: t}, nil
}

// AddDays returns the date n days later
func (d Date) AddDays(n int) Date {
	return Date{Time: d.Time.AddDate(0, 0, n)}
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// MarshalJSON encodes the date as YYYY-MM-DD
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a YYYY-MM-DD string
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
