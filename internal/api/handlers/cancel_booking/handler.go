package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/lifecycle"
)

const msgInvalidBookingID = "รหัสการจองไม่ถูกต้อง"

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

// Handle PUT /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("PUT /bookings/{id}/cancel - Session missing in context")
		return
	}

	// Извлекаем bookingId из URL
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		h.logger.Warn("PUT /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	record, err := h.manager.CancelBooking(r.Context(), sess, bookingID)
	if err != nil {
		msg := lifecycle.UserMessage(err)
		switch {
		case errors.Is(err, lifecycle.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msg)

		case errors.Is(err, lifecycle.ErrCannotCancel):
			h.logger.Warn("PUT /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msg)

		case errors.Is(err, lifecycle.ErrCancelFailed):
			h.logger.Error("PUT /bookings/{id}/cancel - Backend failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msg)

		default:
			h.logger.Error("PUT /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/cancel - Booking cancelled: booking_id=%d, session=%s", bookingID, sess.ID())
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{
		Booking: record,
		State:   handlers.NewStateView(sess),
	})
}
