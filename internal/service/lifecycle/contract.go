package lifecycle

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
)

// BookingsClient интерфейс клиента бэкенда для операций с бронированиями
type BookingsClient interface {
	CreateBooking(ctx context.Context, req *restaurantapi.CreateBookingRequest) (*restaurantapi.Booking, error)
	GetBooking(ctx context.Context, id int64) (*restaurantapi.Booking, error)
	GetCustomerBookings(ctx context.Context, phone string) ([]restaurantapi.Booking, error)
	GetRecentBookings(ctx context.Context, limit int) ([]restaurantapi.Booking, error)
	CancelBooking(ctx context.Context, id int64) (*restaurantapi.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
