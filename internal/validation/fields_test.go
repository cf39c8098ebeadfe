package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidPrice(t *testing.T) {
	valid := []string{"19.99", "20", "0.01", "1500.5", "100.00"}
	for _, s := range valid {
		assert.True(t, ValidPrice(s), "expected %q to be a valid price", s)
	}

	invalid := []string{
		"19.999", // three decimals
		"-5",     // negative
		"abc",    // not a number
		"0",      // zero is not positive
		"0.00",
		"",
		".99",   // bare fraction
		"1e3",   // exponent notation
		"+5",    // explicit sign
		"19.99 ", // trailing space
	}
	for _, s := range invalid {
		assert.False(t, ValidPrice(s), "expected %q to be rejected", s)
	}
}

func TestValidBookingDate(t *testing.T) {
	assert.True(t, ValidBookingDate("2030-01-15"))
	assert.True(t, ValidBookingDate("2030-12-01"))

	// Grammar only: a syntactically well-formed non-calendar date passes.
	assert.True(t, ValidBookingDate("2030-02-31"))
	assert.True(t, ValidBookingDate("2030-13-01"))

	assert.False(t, ValidBookingDate("2030-1-5"))
	assert.False(t, ValidBookingDate("15-01-2030"))
	assert.False(t, ValidBookingDate("2030/01/15"))
	assert.False(t, ValidBookingDate("2030-01-15T00:00:00"))
	assert.False(t, ValidBookingDate(""))
}

func TestValidBookingTime(t *testing.T) {
	assert.True(t, ValidBookingTime("00:00"))
	assert.True(t, ValidBookingTime("09:30"))
	assert.True(t, ValidBookingTime("23:59"))

	assert.False(t, ValidBookingTime("24:00"))
	assert.False(t, ValidBookingTime("9:30"))
	assert.False(t, ValidBookingTime("09:60"))
	assert.False(t, ValidBookingTime("09:30:00"))
	assert.False(t, ValidBookingTime(""))
}

func TestDateNotBeforeToday(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 45, 0, 0, time.UTC)

	assert.True(t, DateNotBeforeToday("2026-03-15", now), "same day is allowed regardless of clock time")
	assert.True(t, DateNotBeforeToday("2026-03-16", now))
	assert.True(t, DateNotBeforeToday("2027-01-01", now))

	assert.False(t, DateNotBeforeToday("2026-03-14", now))
	assert.False(t, DateNotBeforeToday("2020-01-01", now))

	// Non-calendar dates pass the grammar but not time.Parse; the bound
	// defers to the store for those.
	assert.True(t, DateNotBeforeToday("2026-02-31", now))
}

func TestParsePrice(t *testing.T) {
	d, err := ParsePrice("19.99")
	assert.NoError(t, err)
	assert.Equal(t, "19.99", d.StringFixed(2))
}
