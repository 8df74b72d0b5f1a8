package get_booking_history

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type BookingManager interface {
	GetBookingHistory(ctx context.Context, sess *wizard.Session, phone string) error
	GetRecentBookings(ctx context.Context, sess *wizard.Session, limit int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
