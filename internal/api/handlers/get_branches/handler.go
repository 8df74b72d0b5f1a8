package get_branches

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
)

type Handler struct {
	machine Machine
	logger  Logger
}

func NewHandler(machine Machine, logger Logger) *Handler {
	return &Handler{
		machine: machine,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches
// Ошибка бэкенда не меняет код ответа: список пуст, сообщение в поле error
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("GET /branches - Session missing in context")
		return
	}

	h.machine.LoadBranches(r.Context(), sess)

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}
