package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/infra/storage/session"
)

// Repository интерфейс хранилища снимков сессий
type Repository interface {
	Save(ctx context.Context, record *session.Record) error
	Get(ctx context.Context, id string) (*session.Record, error)
	DeleteOlderThan(ctx context.Context, before time.Time) (int64, error)
}

// Recorder интерфейс метрик сессий
type Recorder interface {
	IncStaleResponse(kind string)
	SetLiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
