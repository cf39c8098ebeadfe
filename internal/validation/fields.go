package validation

import (
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe  = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
	priceRe = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
)

// ValidBookingDate reports whether s matches YYYY-MM-DD. The check is
// syntactic only; calendar validity is left to the store's date column.
func ValidBookingDate(s string) bool {
	return dateRe.MatchString(s)
}

// ValidBookingTime reports whether s is a 24-hour HH:MM clock value.
func ValidBookingTime(s string) bool {
	return timeRe.MatchString(s)
}

// ValidPrice reports whether s is a positive decimal with at most two
// fractional digits. The regex rejects signs, exponents, and bare dots, so
// anything it accepts also parses; zero is rejected explicitly.
func ValidPrice(s string) bool {
	if !priceRe.MatchString(s) {
		return false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// ParsePrice converts an already-validated price string into a decimal.
func ParsePrice(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// DateNotBeforeToday reports whether date (YYYY-MM-DD) is on or after now's
// calendar date. The comparison is date-only: a booking for today at any
// time is accepted. A date that matches the grammar but fails to parse as a
// calendar date (e.g. day 31 in a 30-day month) passes here and is decided
// by the store.
func DateNotBeforeToday(date string, now time.Time) bool {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return true
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !parsed.Before(today)
}
