package get_time_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgDateRequired = "กรุณาเลือกวันที่"
	msgInvalidDate  = "วันที่ไม่ถูกต้อง"
)

type Handler struct {
	catalog      SlotCatalog
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(catalog SlotCatalog, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		catalog:      catalog,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Handle GET /api/v1/time-slots?date=YYYY-MM-DD
// Без параметра date используется дата из черновика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("GET /time-slots - Session missing in context")
		return
	}

	st := sess.View()
	raw := r.URL.Query().Get("date")
	if raw == "" {
		raw = st.Draft.Date
	}
	if raw == "" {
		h.logger.Warn("GET /time-slots - Date is not selected: session=%s", sess.ID())
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := domain.NormalizeDate(raw, h.loc)
	if err != nil {
		h.logger.Warn("GET /time-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.catalog.ForDate(st.Draft.Branch, date, h.timeProvider.Now())
	if err != nil {
		h.logger.Warn("GET /time-slots - Failed to build slots: date=%s, error=%v", date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp := TimeSlotsResponse{Date: date, Slots: slots}
	if st.Draft.Branch != nil {
		id := st.Draft.Branch.ID
		resp.BranchID = &id
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
