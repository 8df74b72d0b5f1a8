package get_booking_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/service/lifecycle"
)

const msgInvalidLimit = "ค่า limit ไม่ถูกต้อง"

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

// HandleHistory GET /api/v1/bookings/history?phone=0812345678
// Без параметра phone используется телефон из черновика
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("GET /bookings/history - Session missing in context")
		return
	}

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		phone = sess.View().Draft.Customer.Phone
	}

	if err := h.manager.GetBookingHistory(r.Context(), sess, phone); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidPhone) {
			h.logger.Warn("GET /bookings/history - Phone is missing: session=%s", sess.ID())
			handlers.RespondBadRequest(w, lifecycle.UserMessage(err))
			return
		}
		h.logger.Error("GET /bookings/history - Failed to load history: session=%s, error=%v", sess.ID(), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}

// HandleRecent GET /api/v1/bookings/recent?limit=10
func (h *Handler) HandleRecent(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("GET /bookings/recent - Session missing in context")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /bookings/recent - Invalid limit %q", raw)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		limit = parsed
	}

	if err := h.manager.GetRecentBookings(r.Context(), sess, limit); err != nil {
		h.logger.Error("GET /bookings/recent - Failed to load bookings: session=%s, error=%v", sess.ID(), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}
