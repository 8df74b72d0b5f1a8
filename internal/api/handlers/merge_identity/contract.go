package merge_identity

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/integrations/lineprofile"
	"github.com/m04kA/SMC-TableBooking/internal/service/identity"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type Machine interface {
	MergeIdentity(sess *wizard.Session, profile *identity.Profile) bool
}

// ProfileClient интерфейс клиента LINE
type ProfileClient interface {
	GetProfile(ctx context.Context, accessToken string) (*lineprofile.Profile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
