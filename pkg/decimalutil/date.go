package decimalutil

import "time"

// Payment intervals. Monthly payments step by a flat 30 days rather than
// calendar months.
const (
	MonthlyInterval  = 30 * 24 * time.Hour
	BiweeklyInterval = 14 * 24 * time.Hour
)

const day = 24 * time.Hour

// NextPaymentDate returns the due date one interval after current.
func NextPaymentDate(current time.Time, interval time.Duration) time.Time {
	return current.AddDate(0, 0, int(interval/day))
}

// PaymentDates lists the due dates of n payments, the first one on start.
func PaymentDates(start time.Time, n int, interval time.Duration) []time.Time {
	if n <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, n)
	next := start
	for i := 0; i < n; i++ {
		dates = append(dates, next)
		next = NextPaymentDate(next, interval)
	}
	return dates
}

// DaysBetweenPayments returns the whole days from a to b, negative when b
// is earlier.
func DaysBetweenPayments(a, b time.Time) int {
	return int(b.Sub(a) / day)
}
