package load_tables

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type Machine interface {
	LoadAvailableTables(ctx context.Context, sess *wizard.Session) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
