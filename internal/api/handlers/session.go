package handlers

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// RequireSession достает сессию гостя, при ее отсутствии отвечает 500
func RequireSession(w http.ResponseWriter, r *http.Request) (*wizard.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		RespondInternalError(w)
		return nil, false
	}
	return sess, true
}
