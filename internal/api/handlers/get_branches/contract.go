package get_branches

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type Machine interface {
	LoadBranches(ctx context.Context, sess *wizard.Session)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
