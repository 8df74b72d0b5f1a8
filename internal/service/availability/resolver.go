package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
)

const degradedKind = "tables"

// Resolver отвечает на вопрос "какие столы свободны в филиале B на дату D, время T для G гостей"
type Resolver struct {
	client   TablesClient
	catalog  SlotCatalog
	recorder DegradationRecorder
	loc      *time.Location
	logger   Logger
}

// NewResolver создает новый экземпляр резолвера
// recorder может быть nil
func NewResolver(
	client TablesClient,
	catalog SlotCatalog,
	recorder DegradationRecorder,
	loc *time.Location,
	logger Logger,
) *Resolver {
	return &Resolver{
		client:   client,
		catalog:  catalog,
		recorder: recorder,
		loc:      loc,
		logger:   logger,
	}
}

// LoadAvailableTables запрашивает столы у бэкенда
// Ошибки бэкенда не пробрасываются: возвращается резервная схема зала и сообщение пользователю.
// Ошибка возвращается только при некорректных входных данных, до сетевого вызова.
func (r *Resolver) LoadAvailableTables(ctx context.Context, req *Request) (*Result, error) {
	// 1. Валидация входных данных
	date, err := r.validateRequest(req)
	if err != nil {
		r.logger.Warn("LoadAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем момент бронирования в локации ресторана
	dateTime, err := r.instant(date, req)
	if err != nil {
		r.logger.Warn("LoadAvailableTables: failed to build instant: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	r.logger.Info("LoadAvailableTables: branch=%d, dateTime=%s, guests=%d",
		req.Branch.ID, dateTime, req.GuestCount)

	// 3. Запрашиваем бэкенд
	raw, err := r.client.CheckTableAvailability(ctx, &restaurantapi.AvailabilityRequest{
		BranchID:   req.Branch.ID,
		DateTime:   dateTime,
		GuestCount: req.GuestCount,
	})
	if err != nil {
		// Graceful degradation: мастер бронирования не блокируется
		r.logger.Error("LoadAvailableTables: backend unavailable, serving fallback tables for branch=%d: %v",
			req.Branch.ID, err)
		if r.recorder != nil {
			r.recorder.IncDegraded(degradedKind)
		}
		return &Result{
			Date:     date,
			DateTime: dateTime,
			Tables:   FallbackTables(),
			Degraded: true,
			Message:  MsgTablesDegraded,
		}, nil
	}

	// 4. Нормализуем ответ
	tables := normalizeTables(raw)

	r.logger.Info("LoadAvailableTables: %d tables for branch=%d at %s", len(tables), req.Branch.ID, dateTime)
	return &Result{
		Date:     date,
		DateTime: dateTime,
		Tables:   tables,
	}, nil
}

// validateRequest проверяет входные данные и возвращает каноническую дату
func (r *Resolver) validateRequest(req *Request) (string, error) {
	if req == nil || req.Branch == nil {
		return "", fmt.Errorf("%w: branch is required", ErrInvalidInput)
	}

	if req.Branch.ID <= 0 {
		return "", fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	if req.GuestCount < domain.MinGuestCount {
		return "", fmt.Errorf("%w: guestCount must be at least %d", ErrInvalidInput, domain.MinGuestCount)
	}

	if req.Time.IsZero() || !r.catalog.Contains(req.Time) {
		return "", fmt.Errorf("%w: time %q is not a bookable slot", ErrInvalidInput, req.Time)
	}

	date, err := domain.NormalizeDate(req.Date, r.loc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return date, nil
}

// instant склеивает дату и время в строку RFC 3339 с оффсетом ресторана
func (r *Resolver) instant(date string, req *Request) (string, error) {
	day, err := domain.ParseDate(date, r.loc)
	if err != nil {
		return "", err
	}
	at, err := req.Time.On(day, r.loc)
	if err != nil {
		return "", err
	}
	return at.Format(time.RFC3339), nil
}
