package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

type Handler struct {
	manager BookingManager
	logger  Logger
}

func NewHandler(manager BookingManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("POST /bookings - Session missing in context")
		return
	}

	record, err := h.manager.ConfirmBooking(r.Context(), sess)
	if err != nil {
		msg := lifecycle.UserMessage(err)
		switch {
		case errors.Is(err, lifecycle.ErrDraftChanged) && record != nil:
			// Бронирование в бэкенде создано, номер нужно отдать гостю
			h.logger.Warn("POST /bookings - Draft changed during confirmation: session=%s, reference=%s",
				sess.ID(), record.Reference)
			handlers.RespondJSON(w, http.StatusConflict, ConfirmBookingResponse{
				Booking: record,
				State:   handlers.NewStateView(sess),
				Error:   msg,
			})

		case errors.Is(err, lifecycle.ErrAlreadyConfirmed),
			errors.Is(err, lifecycle.ErrDraftChanged),
			errors.Is(err, wizard.ErrBusy):
			h.logger.Warn("POST /bookings - Conflict: session=%s, error=%v", sess.ID(), err)
			handlers.RespondConflict(w, msg)

		case errors.Is(err, lifecycle.ErrDraftIncomplete):
			h.logger.Warn("POST /bookings - Draft incomplete: session=%s", sess.ID())
			handlers.RespondBadRequest(w, msg)

		case errors.Is(err, lifecycle.ErrCreateFailed):
			h.logger.Error("POST /bookings - Backend rejected booking: session=%s, error=%v", sess.ID(), err)
			handlers.RespondError(w, http.StatusBadGateway, msg)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: session=%s, error=%v", sess.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking confirmed: session=%s, reference=%s", sess.ID(), record.Reference)
	handlers.RespondJSON(w, http.StatusCreated, ConfirmBookingResponse{
		Booking: record,
		State:   handlers.NewStateView(sess),
	})
}
