package get_time_slots

import "github.com/m04kA/SMC-TableBooking/internal/service/timeslots"

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	BranchID *int64           `json:"branchId"`
	Date     string           `json:"date"`
	Slots    []timeslots.Slot `json:"slots"`
}
