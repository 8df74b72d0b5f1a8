package availability

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// TablesClient интерфейс клиента бэкенда для проверки доступности столов
type TablesClient interface {
	CheckTableAvailability(ctx context.Context, req *restaurantapi.AvailabilityRequest) ([]restaurantapi.Table, error)
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	Contains(t types.TimeString) bool
}

// DegradationRecorder интерфейс для метрик деградированных ответов
type DegradationRecorder interface {
	IncDegraded(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
