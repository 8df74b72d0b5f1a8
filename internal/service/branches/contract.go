package branches

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
)

// BranchesClient интерфейс клиента бэкенда для получения филиалов
type BranchesClient interface {
	GetBranches(ctx context.Context) ([]restaurantapi.Branch, error)
}

// Cache интерфейс кэша списка филиалов
type Cache interface {
	Get(ctx context.Context) ([]domain.Branch, error)
	Set(ctx context.Context, branches []domain.Branch) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
