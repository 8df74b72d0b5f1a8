package domain

import "time"

// Default values of a new booking draft
const (
	DefaultGuestCount = 2
)

// Business validation constants
const (
	MinGuestCount = 1
	MaxGuestCount = 20
	// ManualCoordinationGuestCount parties larger than this need a call from the restaurant
	ManualCoordinationGuestCount = 10

	// CancellationLeadTime a booking can be cancelled only while it starts later than now + lead time
	CancellationLeadTime = 2 * time.Hour

	// SameDayBufferMinutes same-day slots must start at least this long from now
	SameDayBufferMinutes = 60
	// MaxAdvanceDays how far ahead a date can be picked
	MaxAdvanceDays = 30

	MaxNotesLength = 500
)

// DateFormat YYYY-MM-DD
const DateFormat = "2006-01-02"

// DefaultTimeZone restaurants operate in Thailand
const DefaultTimeZone = "Asia/Bangkok"

// ClampGuestCount clamps a party size into [MinGuestCount, MaxGuestCount]
func ClampGuestCount(n int) int {
	if n < MinGuestCount {
		return MinGuestCount
	}
	if n > MaxGuestCount {
		return MaxGuestCount
	}
	return n
}
