package sessions

import "errors"

var (
	// ErrPersist возвращается, когда снимок сессии не удалось сохранить
	ErrPersist = errors.New("sessions: failed to persist session")
)
