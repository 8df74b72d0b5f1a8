package lifecycle

import "errors"

var (
	// ErrAlreadyConfirmed возвращается при повторном подтверждении черновика
	ErrAlreadyConfirmed = errors.New("lifecycle: booking is already confirmed")

	// ErrDraftIncomplete возвращается, если в черновике не хватает данных для бронирования
	ErrDraftIncomplete = errors.New("lifecycle: booking draft is incomplete")

	// ErrCreateFailed возвращается, когда бэкенд не создал бронирование
	ErrCreateFailed = errors.New("lifecycle: failed to create booking")

	// ErrDraftChanged возвращается, если черновик изменился, пока бронирование создавалось
	ErrDraftChanged = errors.New("lifecycle: draft changed while booking was being created")

	// ErrInvalidPhone возвращается для пустого номера телефона
	ErrInvalidPhone = errors.New("lifecycle: phone number is required")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("lifecycle: booking not found")

	// ErrCannotCancel возвращается, когда бронирование нельзя отменить (статус или меньше 2 часов до начала)
	ErrCannotCancel = errors.New("lifecycle: booking cannot be cancelled")

	// ErrCancelFailed возвращается, когда бэкенд не отменил бронирование
	ErrCancelFailed = errors.New("lifecycle: failed to cancel booking")
)
