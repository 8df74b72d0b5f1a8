package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-TableBooking/internal/service/wizard"
)

// Registry живые сессии гостей и их сохранение в хранилище
type Registry struct {
	mu        sync.Mutex
	live      map[string]*wizard.Session
	repo      Repository
	recorder  Recorder
	idleTTL   time.Duration
	retention time.Duration
	logger    Logger
}

// NewRegistry создает новый реестр сессий
// idleTTL через сколько неактивная сессия выгружается из памяти,
// retention сколько хранится снимок в хранилище
func NewRegistry(repo Repository, recorder Recorder, idleTTL, retention time.Duration, logger Logger) *Registry {
	return &Registry{
		live:      make(map[string]*wizard.Session),
		repo:      repo,
		recorder:  recorder,
		idleTTL:   idleTTL,
		retention: retention,
		logger:    logger,
	}
}

// Acquire возвращает сессию по ID
// Неизвестный или некорректный ID создает новую сессию, второй результат тогда true.
func (r *Registry) Acquire(ctx context.Context, id string) (*wizard.Session, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return r.create(), true
	}

	r.mu.Lock()
	sess, ok := r.live[id]
	r.mu.Unlock()
	if ok {
		sess.Touch()
		return sess, false
	}

	restored, err := r.restore(ctx, id)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			r.logger.Warn("AcquireSession: failed to restore session=%s: %v", id, err)
		}
		return r.create(), true
	}

	r.mu.Lock()
	// Параллельный запрос мог восстановить ту же сессию раньше
	if existing, ok := r.live[id]; ok {
		r.mu.Unlock()
		return existing, false
	}
	r.live[id] = restored
	r.reportLive()
	r.mu.Unlock()

	restored.Touch()
	r.logger.Info("AcquireSession: session=%s restored", id)
	return restored, false
}

// Save сохраняет снимок сессии в хранилище
func (r *Registry) Save(ctx context.Context, sess *wizard.Session) error {
	snap := sess.Snapshot()
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	if err := r.repo.Save(ctx, &session.Record{ID: snap.ID, Payload: payload, UpdatedAt: snap.UpdatedAt}); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Len количество живых сессий
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Sweep выгружает из памяти сессии, неактивные дольше idleTTL, и удаляет старые снимки
func (r *Registry) Sweep(ctx context.Context, now time.Time) int {
	var idle []*wizard.Session

	r.mu.Lock()
	for id, sess := range r.live {
		if now.Sub(sess.UpdatedAt()) > r.idleTTL {
			idle = append(idle, sess)
			delete(r.live, id)
		}
	}
	r.reportLive()
	r.mu.Unlock()

	for _, sess := range idle {
		if err := r.Save(ctx, sess); err != nil {
			r.logger.Error("SweepSessions: session=%s: %v", sess.ID(), err)
		}
	}

	if r.retention > 0 {
		deleted, err := r.repo.DeleteOlderThan(ctx, now.Add(-r.retention))
		if err != nil {
			r.logger.Error("SweepSessions: failed to delete old snapshots: %v", err)
		} else if deleted > 0 {
			r.logger.Info("SweepSessions: deleted %d old snapshots", deleted)
		}
	}

	if len(idle) > 0 {
		r.logger.Info("SweepSessions: evicted %d idle sessions", len(idle))
	}
	return len(idle)
}

// Run периодически вызывает Sweep до отмены контекста
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			r.Sweep(ctx, now)
		}
	}
}

// Flush сохраняет все живые сессии, вызывается при остановке сервиса
func (r *Registry) Flush(ctx context.Context) {
	r.mu.Lock()
	live := make([]*wizard.Session, 0, len(r.live))
	for _, sess := range r.live {
		live = append(live, sess)
	}
	r.mu.Unlock()

	for _, sess := range live {
		if err := r.Save(ctx, sess); err != nil {
			r.logger.Error("FlushSessions: session=%s: %v", sess.ID(), err)
		}
	}
}

func (r *Registry) create() *wizard.Session {
	sess := wizard.NewSession(uuid.NewString(), r.staleRecorder())

	r.mu.Lock()
	r.live[sess.ID()] = sess
	r.reportLive()
	r.mu.Unlock()

	return sess
}

func (r *Registry) restore(ctx context.Context, id string) (*wizard.Session, error) {
	record, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var snap wizard.Snapshot
	if err := json.Unmarshal(record.Payload, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	snap.ID = id
	return wizard.RestoreSession(snap, r.staleRecorder()), nil
}

func (r *Registry) staleRecorder() wizard.StaleRecorder {
	if r.recorder == nil {
		return nil
	}
	return r.recorder
}

// reportLive вызывается под r.mu
func (r *Registry) reportLive() {
	if r.recorder != nil {
		r.recorder.SetLiveSessions(len(r.live))
	}
}
