package domain

import "github.com/m04kA/SMC-TableBooking/pkg/types"

// BookingDraft is the in-progress booking of a session
type BookingDraft struct {
	Branch     *Branch          `json:"branch,omitempty"`
	Date       string           `json:"date,omitempty"` // YYYY-MM-DD
	Time       types.TimeString `json:"time,omitempty"`
	GuestCount int              `json:"guestCount"`
	Table      TableChoice      `json:"table"`
	Customer   CustomerInfo     `json:"customer"`
	// Reference is set once at confirmation and never changed afterwards
	Reference string `json:"reference,omitempty"`
}

// NewDraft returns the initial empty draft
func NewDraft() BookingDraft {
	return BookingDraft{
		GuestCount: DefaultGuestCount,
		Table:      NotChosen(),
	}
}

// IsConfirmed returns true once the backend accepted the booking
func (d *BookingDraft) IsConfirmed() bool {
	return d.Reference != ""
}

// SameAs returns true if both drafts carry the same selections and contact details
func (d *BookingDraft) SameAs(o *BookingDraft) bool {
	if (d.Branch == nil) != (o.Branch == nil) {
		return false
	}
	if d.Branch != nil && d.Branch.ID != o.Branch.ID {
		return false
	}
	if d.Table.Kind != o.Table.Kind {
		return false
	}
	a, b := d.Table.TableID(), o.Table.TableID()
	if (a == nil) != (b == nil) || (a != nil && *a != *b) {
		return false
	}
	return d.Date == o.Date &&
		d.Time == o.Time &&
		d.GuestCount == o.GuestCount &&
		d.Customer == o.Customer &&
		d.Reference == o.Reference
}

// RequiresManualCoordination large parties are accepted but the restaurant has to call back
func (d *BookingDraft) RequiresManualCoordination() bool {
	return d.GuestCount > ManualCoordinationGuestCount
}
