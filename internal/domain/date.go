package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate returned when a date cannot be canonicalized
var ErrInvalidDate = errors.New("invalid date")

// timestampLayouts are accepted besides the canonical DateFormat
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormalizeDate canonicalizes a date to YYYY-MM-DD.
// Canonical input passes through unchanged; timestamps are converted to loc
// before the calendar date is taken.
func NormalizeDate(raw string, loc *time.Location) (string, error) {
	s := strings.TrimSpace(raw)
	if _, err := time.Parse(DateFormat, s); err == nil {
		return s, nil
	}
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err == nil {
			return t.In(loc).Format(DateFormat), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// ParseDate parses a canonical date in loc
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}
