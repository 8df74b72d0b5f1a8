package wizard

import "errors"

var (
	// ErrDraftConfirmed возвращается при попытке изменить уже подтвержденный черновик
	ErrDraftConfirmed = errors.New("wizard: draft is already confirmed")

	// ErrStepLocked возвращается, когда для шага не выполнены предусловия
	ErrStepLocked = errors.New("wizard: step prerequisites are not met")

	// ErrUnknownStep возвращается для неизвестного шага
	ErrUnknownStep = errors.New("wizard: unknown step")

	// ErrUnknownBranch возвращается, когда филиала нет в списке
	ErrUnknownBranch = errors.New("wizard: unknown branch")

	// ErrInvalidTime возвращается, когда время не входит в каталог слотов
	ErrInvalidTime = errors.New("wizard: time is not a bookable slot")

	// ErrUnknownTable возвращается, когда стола нет среди загруженных
	ErrUnknownTable = errors.New("wizard: unknown table")

	// ErrTableUnavailable возвращается для занятого стола
	ErrTableUnavailable = errors.New("wizard: table is not available")

	// ErrBusy возвращается, когда операция этого типа уже выполняется
	ErrBusy = errors.New("wizard: operation already in progress")
)

// Сообщения пользователю
const (
	MsgBranchesFailed = "ไม่สามารถโหลดข้อมูลสาขาได้ กรุณาลองใหม่อีกครั้ง"
)
