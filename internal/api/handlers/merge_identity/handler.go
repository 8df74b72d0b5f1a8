package merge_identity

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/lineprofile"
	"github.com/m04kA/SMC-TableBooking/internal/service/identity"
)

const (
	msgInvalidRequestBody = "ข้อมูลไม่ถูกต้อง"
	msgIdentityRequired   = "กรุณาเข้าสู่ระบบด้วย LINE"
	msgInvalidToken       = "การยืนยันตัวตนกับ LINE ไม่สำเร็จ กรุณาเข้าสู่ระบบใหม่"
	msgLineUnavailable    = "ไม่สามารถเชื่อมต่อกับ LINE ได้ กรุณาลองใหม่อีกครั้ง"
)

type Handler struct {
	machine Machine
	client  ProfileClient
	logger  Logger
}

func NewHandler(machine Machine, client ProfileClient, logger Logger) *Handler {
	return &Handler{
		machine: machine,
		client:  client,
		logger:  logger,
	}
}

// Handle POST /api/v1/identity
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, ok := handlers.RequireSession(w, r)
	if !ok {
		h.logger.Error("POST /identity - Session missing in context")
		return
	}

	var req MergeIdentityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /identity - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var profile *identity.Profile
	switch {
	case req.AccessToken != "":
		lineProfile, err := h.client.GetProfile(r.Context(), req.AccessToken)
		if err != nil {
			if errors.Is(err, lineprofile.ErrUnauthorized) {
				h.logger.Warn("POST /identity - Invalid access token: session=%s", sess.ID())
				handlers.RespondError(w, http.StatusUnauthorized, msgInvalidToken)
				return
			}
			h.logger.Error("POST /identity - Failed to get LINE profile: session=%s, error=%v", sess.ID(), err)
			handlers.RespondError(w, http.StatusBadGateway, msgLineUnavailable)
			return
		}
		profile = &identity.Profile{UserID: lineProfile.UserID, DisplayName: lineProfile.DisplayName}

	case req.Profile != nil && req.Profile.UserID != "":
		profile = req.Profile.toIdentity()

	default:
		h.logger.Warn("POST /identity - No identity in request: session=%s", sess.ID())
		handlers.RespondBadRequest(w, msgIdentityRequired)
		return
	}

	if h.machine.MergeIdentity(sess, profile) {
		h.logger.Info("POST /identity - Identity merged: session=%s", sess.ID())
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.NewStateView(sess))
}
