package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// SessionRegistry интерфейс реестра сессий
type SessionRegistry interface {
	Acquire(ctx context.Context, id string) (*wizard.Session, bool)
	Save(ctx context.Context, sess *wizard.Session) error
}

// HTTPObserver интерфейс метрик HTTP запросов
type HTTPObserver interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Middleware обертка над http.Handler
type Middleware func(next http.Handler) http.Handler
