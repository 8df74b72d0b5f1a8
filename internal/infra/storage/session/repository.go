package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

const tableName = "booking_sessions"

// Repository репозиторий снимков сессий в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет снимок, перезаписывая предыдущий
func (r *Repository) Save(ctx context.Context, record *Record) error {
	query, args, err := psqlbuilder.Insert(tableName).
		Columns("id", "payload", "updated_at").
		// lib/pq передает []byte как bytea, поэтому JSON уходит строкой
		Values(record.ID, string(record.Payload), record.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// Get получает снимок по ID сессии
func (r *Repository) Get(ctx context.Context, id string) (*Record, error) {
	query, args, err := psqlbuilder.Select("id", "payload", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var record Record
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID, &record.Payload, &record.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan: %v", ErrScanRow, err)
	}
	return &record, nil
}

// DeleteOlderThan удаляет снимки, не обновлявшиеся с указанного момента
func (r *Repository) DeleteOlderThan(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Lt{"updated_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteOlderThan - rows affected: %v", ErrExecQuery, err)
	}
	return deleted, nil
}
