package load_tables

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

const (
	msgStepLocked   = "กรุณาเลือกสาขา วันที่ และเวลาก่อน"
	msgInvalidInput = "ข้อมูลการค้นหาโต๊ะไม่ถูกต้อง"
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

// Handle POST /api/v1/draft/tables
// Недоступность бэкенда не ошибка: возвращаются резервные столы и tablesDegraded = true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("POST /draft/tables - Session missing in context")
		return
	}

	if err := h.machine.LoadAvailableTables(r.Context(), sess); err != nil {
		switch {
		case errors.Is(err, wizard.ErrStepLocked):
			h.logger.Warn("POST /draft/tables - Draft is not ready: session=%s", sess.ID())
			handlers.RespondConflict(w, msgStepLocked)
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /draft/tables - Invalid input: session=%s, error=%v", sess.ID(), err)
			handlers.RespondBadRequest(w, msgInvalidInput)
		default:
			h.logger.Error("POST /draft/tables - Failed to load tables: session=%s, error=%v", sess.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}
