package lifecycle

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// bookingReference номер бронирования: reference, затем booking_ref, затем id
func bookingReference(b *restaurantapi.Booking) string {
	switch {
	case b.Reference != "":
		return b.Reference
	case b.BookingRef != "":
		return b.BookingRef
	case b.ID > 0:
		return strconv.FormatInt(b.ID, 10)
	default:
		return ""
	}
}

// toCreateRequest сериализует черновик в тело POST /bookings
func toCreateRequest(draft *domain.BookingDraft) (*restaurantapi.CreateBookingRequest, error) {
	requirements, err := json.Marshal(draft.Customer.Requirements)
	if err != nil {
		return nil, err
	}

	return &restaurantapi.CreateBookingRequest{
		BranchID:      draft.Branch.ID,
		TableID:       draft.Table.TableID(),
		CustomerName:  draft.Customer.Name,
		CustomerPhone: draft.Customer.Phone,
		CustomerEmail: draft.Customer.Email,
		BookingDate:   draft.Date,
		BookingTime:   draft.Time.String(),
		GuestCount:    draft.GuestCount,
		Notes:         draft.Customer.Notes,
		Requirements:  string(requirements),
		LineUserID:    draft.Customer.LineUserID,
	}, nil
}

// toRecord приводит бронирование бэкенда к записи истории
func (m *Manager) toRecord(b *restaurantapi.Booking) *domain.BookingRecord {
	record := &domain.BookingRecord{
		ID:            b.ID,
		Reference:     bookingReference(b),
		BranchName:    b.BranchName,
		Date:          b.BookingDate,
		GuestCount:    b.GuestCount,
		Table:         b.TableNumber,
		CustomerName:  b.CustomerName,
		CustomerPhone: b.CustomerPhone,
		Status:        domain.BookingStatus(b.Status),
		Notes:         b.Notes,
	}

	if date, err := domain.NormalizeDate(b.BookingDate, m.loc); err == nil {
		record.Date = date
	}
	if t, err := types.NewTimeStringFromString(b.BookingTime); err == nil {
		record.Time = t
	}
	if !record.Status.IsValid() {
		m.logger.Warn("lifecycle: booking=%d has unknown status %q", b.ID, b.Status)
	}
	if createdAt, err := time.Parse(time.RFC3339, b.CreatedAt); err == nil {
		record.CreatedAt = createdAt
	}

	return record
}

// recordFromDraft заполняет поля, которые бэкенд не вернул в ответе на создание
func recordFromDraft(record *domain.BookingRecord, draft *domain.BookingDraft) {
	if record.BranchName == "" {
		record.BranchName = draft.Branch.Name
	}
	if record.Date == "" {
		record.Date = draft.Date
	}
	if record.Time.IsZero() {
		record.Time = draft.Time
	}
	if record.GuestCount == 0 {
		record.GuestCount = draft.GuestCount
	}
	if record.Table == "" && draft.Table.Table != nil {
		record.Table = draft.Table.Table.Number
	}
	if record.CustomerName == "" {
		record.CustomerName = draft.Customer.Name
	}
	if record.CustomerPhone == "" {
		record.CustomerPhone = draft.Customer.Phone
	}
	if record.Status == "" {
		record.Status = domain.StatusPending
	}
}
