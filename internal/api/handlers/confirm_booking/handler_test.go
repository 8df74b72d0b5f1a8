package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/lifecycle"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
	"github.com/m04kA/SMC-TableBooking/pkg/logger"
)

type fakeManager struct {
	record *domain.BookingRecord
	err    error
}

func (f *fakeManager) ConfirmBooking(context.Context, *wizard.Session) (*domain.BookingRecord, error) {
	return f.record, f.err
}

func serve(manager BookingManager) *httptest.ResponseRecorder {
	sess := wizard.NewSession("sess-1", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	req = req.WithContext(middleware.WithSession(req.Context(), sess))
	rec := httptest.NewRecorder()
	NewHandler(manager, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandler_Confirmed(t *testing.T) {
	rec := serve(&fakeManager{record: &domain.BookingRecord{Reference: "PH1234", GuestCount: 4}})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp ConfirmBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "PH1234", resp.Booking.Reference)
	assert.Equal(t, "sess-1", resp.State.SessionID)
}

func TestHandler_DraftChangedKeepsCreatedBooking(t *testing.T) {
	record := &domain.BookingRecord{Reference: "PH1234", GuestCount: 4}
	rec := serve(&fakeManager{record: record, err: lifecycle.ErrDraftChanged})

	require.Equal(t, http.StatusConflict, rec.Code)

	var resp ConfirmBookingResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "PH1234", resp.Booking.Reference)
	assert.Equal(t, "sess-1", resp.State.SessionID)
	assert.Equal(t, lifecycle.MsgDraftChanged, resp.Error)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "already confirmed", err: lifecycle.ErrAlreadyConfirmed, wantStatus: http.StatusConflict},
		{name: "draft changed", err: lifecycle.ErrDraftChanged, wantStatus: http.StatusConflict},
		{name: "double submit", err: wizard.ErrBusy, wantStatus: http.StatusConflict},
		{name: "incomplete", err: lifecycle.ErrDraftIncomplete, wantStatus: http.StatusBadRequest},
		{name: "backend rejected", err: fmt.Errorf("%w: 500: db down", lifecycle.ErrCreateFailed), wantStatus: http.StatusBadGateway},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeManager{err: tt.err})

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp.Error)
			assert.NotContains(t, resp.Error, "db down")
			assert.NotContains(t, resp.Error, "boom")
		})
	}
}
