package session

import "time"

// Record сохраненный снимок сессии
type Record struct {
	ID        string
	Payload   []byte // JSON снимка
	UpdatedAt time.Time
}
