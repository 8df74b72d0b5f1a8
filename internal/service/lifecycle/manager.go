package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

const (
	DefaultRecentLimit = 10
	MaxRecentLimit     = 100
)

// Manager создание, просмотр и отмена бронирований
type Manager struct {
	client       BookingsClient
	loc          *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewManager создает новый экземпляр менеджера бронирований
func NewManager(client BookingsClient, loc *time.Location, logger Logger) *Manager {
	return &Manager{
		client:       client,
		loc:          loc,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// ConfirmBooking отправляет черновик в бэкенд
// При ошибке бэкенда номер бронирования не выставляется, в состоянии остается сообщение пользователю.
func (m *Manager) ConfirmBooking(ctx context.Context, sess *wizard.Session) (*domain.BookingRecord, error) {
	// 1. Проверяем черновик и фиксируем его копию под тем же билетом
	var draft domain.BookingDraft
	ticket, err := sess.BeginExclusive(wizard.QueryCreate, func(st *wizard.State) error {
		if st.Draft.IsConfirmed() {
			return ErrAlreadyConfirmed
		}
		if st.Draft.Branch == nil || st.Draft.Date == "" || st.Draft.Time.IsZero() {
			return fmt.Errorf("%w: branch, date and time are required", ErrDraftIncomplete)
		}
		if !st.Draft.Customer.HasContact() {
			return fmt.Errorf("%w: customer name and phone are required", ErrDraftIncomplete)
		}
		if !domain.StepPrerequisitesMet(domain.StepConfirmation, &st.Draft) {
			return fmt.Errorf("%w: table choice is required", ErrDraftIncomplete)
		}
		draft = st.Draft
		return nil
	})
	if err != nil {
		m.logger.Warn("ConfirmBooking: session=%s rejected: %v", sess.ID(), err)
		m.setError(sess, UserMessage(err))
		return nil, err
	}

	m.logger.Info("ConfirmBooking: session=%s, branch=%d, date=%s, time=%s, guests=%d",
		sess.ID(), draft.Branch.ID, draft.Date, draft.Time, draft.GuestCount)

	// 2. Сериализуем и отправляем
	req, err := toCreateRequest(&draft)
	if err != nil {
		sess.FinishQuery(ticket, func(st *wizard.State) { st.SetError(MsgCreateFailed) })
		return nil, fmt.Errorf("%w: failed to encode requirements: %v", ErrCreateFailed, err)
	}

	created, err := m.client.CreateBooking(ctx, req)
	if err == nil && bookingReference(created) == "" {
		err = errors.New("response has no booking reference")
	}
	if err != nil {
		m.logger.Error("ConfirmBooking: session=%s: %v", sess.ID(), err)
		sess.FinishQuery(ticket, func(st *wizard.State) { st.SetError(MsgCreateFailed) })
		return nil, fmt.Errorf("%w: %v", ErrCreateFailed, err)
	}

	// 3. Фиксируем номер бронирования
	record := m.toRecord(created)
	recordFromDraft(record, &draft)

	applied := sess.FinishQuery(ticket, func(st *wizard.State) { st.Confirm(record.Reference) })
	if !applied {
		m.logger.Warn("ConfirmBooking: session=%s: draft changed while booking %s was created",
			sess.ID(), record.Reference)
		m.setError(sess, MsgDraftChanged)
		return record, ErrDraftChanged
	}

	m.logger.Info("ConfirmBooking: session=%s, reference=%s", sess.ID(), record.Reference)
	return record, nil
}

// GetBookingHistory заменяет историю бронированиями по номеру телефона
// Ошибка бэкенда не возвращается: история очищается, в состоянии остается сообщение пользователю.
func (m *Manager) GetBookingHistory(ctx context.Context, sess *wizard.Session, phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		m.setError(sess, MsgInvalidPhone)
		return ErrInvalidPhone
	}

	m.logger.Info("GetBookingHistory: session=%s", sess.ID())
	return m.loadHistory(ctx, sess, "GetBookingHistory", func() ([]restaurantapi.Booking, error) {
		return m.client.GetCustomerBookings(ctx, phone)
	})
}

// GetRecentBookings заменяет историю последними бронированиями
func (m *Manager) GetRecentBookings(ctx context.Context, sess *wizard.Session, limit int) error {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	m.logger.Info("GetRecentBookings: session=%s, limit=%d", sess.ID(), limit)
	return m.loadHistory(ctx, sess, "GetRecentBookings", func() ([]restaurantapi.Booking, error) {
		return m.client.GetRecentBookings(ctx, limit)
	})
}

func (m *Manager) loadHistory(
	ctx context.Context,
	sess *wizard.Session,
	operation string,
	fetch func() ([]restaurantapi.Booking, error),
) error {
	ticket, err := sess.BeginQuery(wizard.QueryHistory, nil)
	if err != nil {
		return err
	}

	bookings, err := fetch()
	if err != nil {
		m.logger.Error("%s: session=%s: %v", operation, sess.ID(), err)
		sess.FinishQuery(ticket, func(st *wizard.State) {
			st.SetHistory(nil)
			st.SetError(MsgHistoryFailed)
		})
		return nil
	}

	records := make([]*domain.BookingRecord, 0, len(bookings))
	for i := range bookings {
		records = append(records, m.toRecord(&bookings[i]))
	}

	if !sess.FinishQuery(ticket, func(st *wizard.State) { st.SetHistory(records) }) {
		m.logger.Info("%s: session=%s: stale response discarded", operation, sess.ID())
		return nil
	}

	m.logger.Info("%s: session=%s, records=%d", operation, sess.ID(), len(records))
	return nil
}

// CancelBooking отменяет бронирование
// Отмена возможна для статусов pending и confirmed, если до начала больше CancellationLeadTime.
// Иначе бэкенд не вызывается.
func (m *Manager) CancelBooking(ctx context.Context, sess *wizard.Session, bookingID int64) (*domain.BookingRecord, error) {
	m.logger.Info("CancelBooking: session=%s, booking=%d", sess.ID(), bookingID)

	// 1. Ищем бронирование в истории, иначе спрашиваем бэкенд
	view := sess.View()
	record, ok := view.FindHistoryRecord(bookingID)
	if !ok {
		remote, err := m.client.GetBooking(ctx, bookingID)
		if err != nil {
			if errors.Is(err, restaurantapi.ErrNotFound) {
				m.logger.Warn("CancelBooking: booking=%d not found", bookingID)
				m.setError(sess, MsgBookingNotFound)
				return nil, fmt.Errorf("%w: %d", ErrBookingNotFound, bookingID)
			}
			m.logger.Error("CancelBooking: failed to get booking=%d: %v", bookingID, err)
			m.setError(sess, MsgCancelFailed)
			return nil, fmt.Errorf("%w: %v", ErrCancelFailed, err)
		}
		record = m.toRecord(remote)
	}

	// 2. Проверяем бизнес-правило отмены
	now := m.timeProvider.Now()
	if !record.CanBeCancelled(now, m.loc) {
		m.logger.Warn("CancelBooking: booking=%d with status=%s at %s %s cannot be cancelled",
			bookingID, record.Status, record.Date, record.Time)
		m.setError(sess, MsgCannotCancel)
		return nil, fmt.Errorf("%w: %d", ErrCannotCancel, bookingID)
	}

	// 3. Отменяем в бэкенде
	if _, err := m.client.CancelBooking(ctx, bookingID); err != nil {
		m.logger.Error("CancelBooking: booking=%d: %v", bookingID, err)
		m.setError(sess, MsgCancelFailed)
		return nil, fmt.Errorf("%w: %v", ErrCancelFailed, err)
	}

	// 4. Заменяем только соответствующую запись истории
	cancelled := record.WithStatus(domain.StatusCancelled)
	_ = sess.Apply(func(st *wizard.State) error {
		st.ReplaceHistoryRecord(cancelled)
		return nil
	})

	m.logger.Info("CancelBooking: booking=%d cancelled", bookingID)
	return cancelled, nil
}

func (m *Manager) setError(sess *wizard.Session, msg string) {
	_ = sess.Apply(func(st *wizard.State) error {
		st.SetError(msg)
		return nil
	})
}
