package update_draft

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

const (
	msgInvalidRequestBody = "ข้อมูลไม่ถูกต้อง"
	msgUnknownBranch      = "ไม่พบสาขาที่เลือก"
	msgInvalidDate        = "วันที่ไม่ถูกต้อง"
	msgInvalidTime        = "เวลาที่เลือกไม่ถูกต้อง"
	msgUnknownTable       = "ไม่พบโต๊ะที่เลือก"
	msgTableUnavailable   = "โต๊ะนี้ไม่ว่าง กรุณาเลือกโต๊ะอื่น"
	msgUnknownStep        = "ขั้นตอนไม่ถูกต้อง"
	msgStepLocked         = "กรุณากรอกข้อมูลขั้นตอนก่อนหน้าให้ครบถ้วน"
	msgDraftConfirmed     = "การจองนี้ได้รับการยืนยันแล้ว กรุณาเริ่มการจองใหม่"
	msgBusy               = "กำลังโหลดข้อมูล กรุณาลองใหม่อีกครั้ง"
)

// Handler мутации черновика бронирования
type Handler struct {
	machine  Machine
	validate *validator.Validate
	logger   Logger
}

func NewHandler(machine Machine, logger Logger) *Handler {
	return &Handler{
		machine:  machine,
		validate: validator.New(),
		logger:   logger,
	}
}

// HandleBranch POST /api/v1/draft/branch
func (h *Handler) HandleBranch(w http.ResponseWriter, r *http.Request) {
	var req SelectBranchRequest
	sess, ok := h.decode(w, r, "POST /draft/branch", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/branch", h.machine.SelectBranch(r.Context(), sess, req.BranchID))
}

// HandleDate POST /api/v1/draft/date
func (h *Handler) HandleDate(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	sess, ok := h.decode(w, r, "POST /draft/date", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/date", h.machine.SelectDate(sess, req.Date))
}

// HandleTime POST /api/v1/draft/time
func (h *Handler) HandleTime(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	sess, ok := h.decode(w, r, "POST /draft/time", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/time", h.machine.SelectTime(sess, req.Time))
}

// HandleGuests POST /api/v1/draft/guests
// Значение вне диапазона приводится к ближайшей границе
func (h *Handler) HandleGuests(w http.ResponseWriter, r *http.Request) {
	var req SetGuestCountRequest
	sess, ok := h.decode(w, r, "POST /draft/guests", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/guests", h.machine.SetGuestCount(sess, req.GuestCount))
}

// HandleTable POST /api/v1/draft/table
func (h *Handler) HandleTable(w http.ResponseWriter, r *http.Request) {
	var req SelectTableRequest
	sess, ok := h.decode(w, r, "POST /draft/table", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/table", h.machine.SelectTable(sess, req.TableID))
}

// HandleCustomer PATCH /api/v1/draft/customer
func (h *Handler) HandleCustomer(w http.ResponseWriter, r *http.Request) {
	var req CustomerPatchRequest
	sess, ok := h.decode(w, r, "PATCH /draft/customer", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "PATCH /draft/customer", h.machine.UpdateCustomerInfo(sess, req.ToPatch()))
}

// HandleDetails POST /api/v1/draft/details
func (h *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	var req DetailsRequest
	sess, ok := h.decode(w, r, "POST /draft/details", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/details", h.machine.SubmitDetails(sess, req.ToPatch()))
}

// HandleStep POST /api/v1/draft/step
func (h *Handler) HandleStep(w http.ResponseWriter, r *http.Request) {
	var req EnterStepRequest
	sess, ok := h.decode(w, r, "POST /draft/step", &req)
	if !ok {
		return
	}
	h.respond(w, sess, "POST /draft/step", h.machine.EnterStep(sess, domain.Step(req.Step)))
}

// HandleReset POST /api/v1/draft/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("POST /draft/reset - Session missing in context")
		return
	}
	h.machine.ResetDraft(sess)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}

// HandleClearError POST /api/v1/draft/clear-error
func (h *Handler) HandleClearError(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("POST /draft/clear-error - Session missing in context")
		return
	}
	h.machine.ClearError(sess)
	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}

// decode достает сессию, декодирует и валидирует тело запроса
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, req interface{}) (*wizard.Session, bool) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("%s - Session missing in context", route)
		return nil, false
	}

	if err := handlers.DecodeJSON(r, req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Warn("%s - Validation failed: session=%s, error=%v", route, sess.ID(), err)
		handlers.RespondBadRequest(w, validationMessage(err))
		return nil, false
	}

	return sess, true
}

// respond отвечает состоянием сессии или сообщением об ошибке перехода
func (h *Handler) respond(w http.ResponseWriter, sess *wizard.Session, route string, err error) {
	if err == nil {
		handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
		return
	}

	switch {
	case errors.Is(err, wizard.ErrUnknownBranch):
		handlers.RespondNotFound(w, msgUnknownBranch)
	case errors.Is(err, domain.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgInvalidDate)
	case errors.Is(err, wizard.ErrInvalidTime):
		handlers.RespondBadRequest(w, msgInvalidTime)
	case errors.Is(err, wizard.ErrUnknownTable):
		handlers.RespondNotFound(w, msgUnknownTable)
	case errors.Is(err, wizard.ErrTableUnavailable):
		handlers.RespondConflict(w, msgTableUnavailable)
	case errors.Is(err, wizard.ErrUnknownStep):
		handlers.RespondBadRequest(w, msgUnknownStep)
	case errors.Is(err, wizard.ErrStepLocked):
		handlers.RespondConflict(w, msgStepLocked)
	case errors.Is(err, wizard.ErrDraftConfirmed):
		handlers.RespondConflict(w, msgDraftConfirmed)
	case errors.Is(err, wizard.ErrBusy):
		handlers.RespondConflict(w, msgBusy)
	default:
		h.logger.Error("%s - Unexpected error: session=%s, error=%v", route, sess.ID(), err)
		handlers.RespondInternalError(w)
	}
}
