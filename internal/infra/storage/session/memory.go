package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRepository хранилище снимков в памяти процесса, используется без PostgreSQL
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]Record)}
}

func (r *MemoryRepository) Save(_ context.Context, record *Record) error {
	payload := make([]byte, len(record.Payload))
	copy(payload, record.Payload)

	r.mu.Lock()
	r.records[record.ID] = Record{ID: record.ID, Payload: payload, UpdatedAt: record.UpdatedAt}
	r.mu.Unlock()
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (*Record, error) {
	r.mu.RLock()
	record, ok := r.records[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &record, nil
}

func (r *MemoryRepository) DeleteOlderThan(_ context.Context, before time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, record := range r.records {
		if record.UpdatedAt.Before(before) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}
