package cancel_booking

import (
	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Booking *domain.BookingRecord `json:"booking"`
	State   handlers.StateView    `json:"state"`
}
