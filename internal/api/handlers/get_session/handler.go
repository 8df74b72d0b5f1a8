package get_session

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// Handle GET /api/v1/session
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("GET /session - Session missing in context")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}
