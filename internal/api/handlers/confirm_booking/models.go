package confirm_booking

import (
	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Booking *domain.BookingRecord `json:"booking"`
	State   handlers.StateView    `json:"state"`
	Error   string                `json:"error,omitempty"`
}
