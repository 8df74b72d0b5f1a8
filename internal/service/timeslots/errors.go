package timeslots

import "errors"

var (
	// ErrInvalidLabel возвращается при некорректной метке времени в конфигурации
	ErrInvalidLabel = errors.New("timeslots: invalid time slot label")

	// ErrEmptyCatalog возвращается, когда после разбора не осталось ни одного слота
	ErrEmptyCatalog = errors.New("timeslots: catalog is empty")
)
