package update_draft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type fakeMachine struct {
	err     error
	calls   []string
	patches []domain.CustomerInfoPatch
}

func (f *fakeMachine) SelectBranch(_ context.Context, _ *wizard.Session, id int64) error {
	f.calls = append(f.calls, fmt.Sprintf("branch:%d", id))
	return f.err
}

func (f *fakeMachine) SelectDate(_ *wizard.Session, raw string) error {
	f.calls = append(f.calls, "date:"+raw)
	return f.err
}

func (f *fakeMachine) SelectTime(_ *wizard.Session, raw string) error {
	f.calls = append(f.calls, "time:"+raw)
	return f.err
}

func (f *fakeMachine) SetGuestCount(_ *wizard.Session, n int) error {
	f.calls = append(f.calls, fmt.Sprintf("guests:%d", n))
	return f.err
}

func (f *fakeMachine) SelectTable(_ *wizard.Session, id *int64) error {
	if id == nil {
		f.calls = append(f.calls, "table:unassigned")
	} else {
		f.calls = append(f.calls, fmt.Sprintf("table:%d", *id))
	}
	return f.err
}

func (f *fakeMachine) UpdateCustomerInfo(_ *wizard.Session, patch domain.CustomerInfoPatch) error {
	f.calls = append(f.calls, "customer")
	f.patches = append(f.patches, patch)
	return f.err
}

func (f *fakeMachine) SubmitDetails(_ *wizard.Session, patch domain.CustomerInfoPatch) error {
	f.calls = append(f.calls, "details")
	f.patches = append(f.patches, patch)
	return f.err
}

func (f *fakeMachine) EnterStep(_ *wizard.Session, step domain.Step) error {
	f.calls = append(f.calls, "step:"+string(step))
	return f.err
}

func (f *fakeMachine) ResetDraft(*wizard.Session) { f.calls = append(f.calls, "reset") }

func (f *fakeMachine) ClearError(*wizard.Session) { f.calls = append(f.calls, "clear") }

func serve(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	sess := wizard.NewSession("sess-1", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/draft", strings.NewReader(body))
	req = req.WithContext(middleware.WithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func errorText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func TestHandler_Success(t *testing.T) {
	machine := &fakeMachine{}
	h := NewHandler(machine, logger.NewNop())

	tests := []struct {
		name    string
		handler http.HandlerFunc
		body    string
		call    string
	}{
		{name: "branch", handler: h.HandleBranch, body: `{"branchId":2}`, call: "branch:2"},
		{name: "date", handler: h.HandleDate, body: `{"date":"2025-03-10"}`, call: "date:2025-03-10"},
		{name: "time", handler: h.HandleTime, body: `{"time":"19:00"}`, call: "time:19:00"},
		{name: "guests", handler: h.HandleGuests, body: `{"guestCount":4}`, call: "guests:4"},
		{name: "table", handler: h.HandleTable, body: `{"tableId":7}`, call: "table:7"},
		{name: "restaurant assigns", handler: h.HandleTable, body: `{"tableId":null}`, call: "table:unassigned"},
		{name: "step", handler: h.HandleStep, body: `{"step":"date"}`, call: "step:date"},
		{name: "reset", handler: h.HandleReset, body: ``, call: "reset"},
		{name: "clear error", handler: h.HandleClearError, body: ``, call: "clear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine.calls = nil

			rec := serve(tt.handler, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []string{tt.call}, machine.calls)

			var view handlers.StateView
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&view))
			assert.Equal(t, "sess-1", view.SessionID)
		})
	}
}

func TestHandler_DetailsValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{name: "name missing", body: `{"phone":"0812345678"}`, wantMsg: msgNameRequired},
		{name: "name too short", body: `{"name":"S","phone":"0812345678"}`, wantMsg: msgNameInvalid},
		{name: "phone missing", body: `{"name":"Somchai"}`, wantMsg: msgPhoneMissing},
		{name: "phone with letters", body: `{"name":"Somchai","phone":"08123abcde"}`, wantMsg: msgPhoneInvalid},
		{name: "phone too short", body: `{"name":"Somchai","phone":"081234"}`, wantMsg: msgPhoneInvalid},
		{name: "bad email", body: `{"name":"Somchai","phone":"0812345678","email":"nope"}`, wantMsg: msgEmailInvalid},
		{name: "broken json", body: `{"name":`, wantMsg: msgInvalidRequestBody},
		{
			name:    "notes too long",
			body:    fmt.Sprintf(`{"name":"Somchai","phone":"0812345678","notes":%q}`, strings.Repeat("a", domain.MaxNotesLength+1)),
			wantMsg: msgNotesTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			machine := &fakeMachine{}
			h := NewHandler(machine, logger.NewNop())

			rec := serve(h.HandleDetails, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, errorText(t, rec))
			assert.Empty(t, machine.calls)
		})
	}
}

func TestHandler_DetailsPassesForm(t *testing.T) {
	machine := &fakeMachine{}
	h := NewHandler(machine, logger.NewNop())

	rec := serve(h.HandleDetails, `{"name":"Somchai","phone":"0812345678","requirements":{"highchair":true}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, machine.patches, 1)
	patch := machine.patches[0]
	assert.Equal(t, "Somchai", *patch.Name)
	assert.Equal(t, "0812345678", *patch.Phone)
	require.NotNil(t, patch.Requirements)
	assert.True(t, patch.Requirements.HighChair)
}

func TestHandler_CustomerPatchKeepsAbsentFields(t *testing.T) {
	machine := &fakeMachine{}
	h := NewHandler(machine, logger.NewNop())

	rec := serve(h.HandleCustomer, `{"notes":"window please"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, machine.patches, 1)
	patch := machine.patches[0]
	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Phone)
	assert.Nil(t, patch.Requirements)
	require.NotNil(t, patch.Notes)
	assert.Equal(t, "window please", *patch.Notes)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "unknown branch", err: wizard.ErrUnknownBranch, wantStatus: http.StatusNotFound, wantMsg: msgUnknownBranch},
		{name: "invalid date", err: domain.ErrInvalidDate, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidDate},
		{name: "invalid time", err: wizard.ErrInvalidTime, wantStatus: http.StatusBadRequest, wantMsg: msgInvalidTime},
		{name: "unknown table", err: wizard.ErrUnknownTable, wantStatus: http.StatusNotFound, wantMsg: msgUnknownTable},
		{name: "table unavailable", err: wizard.ErrTableUnavailable, wantStatus: http.StatusConflict, wantMsg: msgTableUnavailable},
		{name: "step locked", err: wizard.ErrStepLocked, wantStatus: http.StatusConflict, wantMsg: msgStepLocked},
		{name: "confirmed", err: wizard.ErrDraftConfirmed, wantStatus: http.StatusConflict, wantMsg: msgDraftConfirmed},
		{name: "branches loading", err: wizard.ErrBusy, wantStatus: http.StatusConflict, wantMsg: msgBusy},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeMachine{err: tt.err}, logger.NewNop())

			rec := serve(h.HandleStep, `{"step":"table"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			msg := errorText(t, rec)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, msg)
			}
			assert.NotContains(t, msg, "boom")
		})
	}
}

func TestHandler_MissingSession(t *testing.T) {
	h := NewHandler(&fakeMachine{}, logger.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/draft/date", strings.NewReader(`{"date":"2025-03-10"}`))
	rec := httptest.NewRecorder()

	h.HandleDate(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
