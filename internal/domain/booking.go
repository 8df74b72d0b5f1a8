package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	// StatusNoShow is reported by the backend only, the client never moves a booking into it
	StatusNoShow BookingStatus = "no_show"
)

// legalTransitions pending → confirmed → completed, pending|confirmed → cancelled
var legalTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// IsValid returns true for statuses known to the system
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// CanTransitionTo returns true if next is a legal successor of s
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BookingRecord is a booking as reported by the backend (history item)
type BookingRecord struct {
	ID            int64            `json:"id"`
	Reference     string           `json:"reference"`
	BranchName    string           `json:"branchName"`
	Date          string           `json:"date"` // YYYY-MM-DD
	Time          types.TimeString `json:"time"`
	GuestCount    int              `json:"guestCount"`
	Table         string           `json:"table"` // empty = assigned by the restaurant
	CustomerName  string           `json:"customerName"`
	CustomerPhone string           `json:"customerPhone"`
	Status        BookingStatus    `json:"status"`
	Notes         string           `json:"notes,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// StartsAt returns the booking instant in the given location
func (b *BookingRecord) StartsAt(loc *time.Location) (time.Time, error) {
	date, err := time.ParseInLocation(DateFormat, b.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date %q: %w", b.Date, err)
	}
	return b.Time.On(date, loc)
}

// CanBeCancelled returns true if the booking is pending or confirmed and
// starts strictly later than now + CancellationLeadTime
func (b *BookingRecord) CanBeCancelled(now time.Time, loc *time.Location) bool {
	if !b.Status.CanTransitionTo(StatusCancelled) {
		return false
	}
	startsAt, err := b.StartsAt(loc)
	if err != nil {
		return false
	}
	return startsAt.After(now.Add(CancellationLeadTime))
}

// WithStatus returns a copy of the record with a new status
func (b *BookingRecord) WithStatus(status BookingStatus) *BookingRecord {
	cp := *b
	cp.Status = status
	return &cp
}
