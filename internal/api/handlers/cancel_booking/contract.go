package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type BookingManager interface {
	CancelBooking(ctx context.Context, sess *wizard.Session, bookingID int64) (*domain.BookingRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
