package update_draft

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// Machine интерфейс машины состояний мастера бронирования
type Machine interface {
	SelectBranch(ctx context.Context, sess *wizard.Session, branchID int64) error
	SelectDate(sess *wizard.Session, raw string) error
	SelectTime(sess *wizard.Session, raw string) error
	SetGuestCount(sess *wizard.Session, n int) error
	SelectTable(sess *wizard.Session, tableID *int64) error
	UpdateCustomerInfo(sess *wizard.Session, patch domain.CustomerInfoPatch) error
	SubmitDetails(sess *wizard.Session, patch domain.CustomerInfoPatch) error
	EnterStep(sess *wizard.Session, step domain.Step) error
	ResetDraft(sess *wizard.Session)
	ClearError(sess *wizard.Session)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
