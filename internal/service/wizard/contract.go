package wizard

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// BranchesSource интерфейс источника списка филиалов
type BranchesSource interface {
	List(ctx context.Context) ([]domain.Branch, error)
}

// TablesResolver интерфейс резолвера доступных столов
type TablesResolver interface {
	LoadAvailableTables(ctx context.Context, req *availability.Request) (*availability.Result, error)
}

// SlotCatalog интерфейс каталога временных слотов
type SlotCatalog interface {
	Contains(t types.TimeString) bool
}

// StaleRecorder интерфейс для метрик отброшенных устаревших ответов
type StaleRecorder interface {
	IncStaleResponse(kind string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
