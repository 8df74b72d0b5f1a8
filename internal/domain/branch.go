package domain

import "github.com/m04kA/SMC-TableBooking/pkg/types"

// Branch represents a restaurant branch
type Branch struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Address     string           `json:"address"`
	Phone       string           `json:"phone"`
	Email       string           `json:"email,omitempty"`
	OpenTime    types.TimeString `json:"openTime"`
	CloseTime   types.TimeString `json:"closeTime"`
	Description string           `json:"description,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
}

// IsOpenAt returns true if a booking may start at t.
// A branch without opening hours accepts every slot.
func (b *Branch) IsOpenAt(t types.TimeString) bool {
	if b.OpenTime.IsZero() || b.CloseTime.IsZero() {
		return true
	}
	return !t.IsBefore(b.OpenTime) && t.IsBefore(b.CloseTime)
}

// FindBranch returns the branch with the given id
func FindBranch(branches []Branch, id int64) (Branch, bool) {
	for _, b := range branches {
		if b.ID == id {
			return b, true
		}
	}
	return Branch{}, false
}
