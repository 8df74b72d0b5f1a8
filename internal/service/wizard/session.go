package wizard

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/identity"
)

// QueryKind тип асинхронного запроса, у каждого типа своя последовательность токенов
type QueryKind string

const (
	QueryBranches QueryKind = "branches"
	QueryTables   QueryKind = "tables"
	QueryHistory  QueryKind = "history"
	QueryCreate   QueryKind = "create"
)

// Ticket выдается при начале запроса и предъявляется при его завершении
type Ticket struct {
	Kind  QueryKind
	Token uint64
}

// Snapshot сериализуемое состояние сессии
type Snapshot struct {
	ID           string    `json:"id"`
	State        State     `json:"state"`
	LastIdentity string    `json:"lastIdentity,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Session единственный источник правды о бронировании одного гостя
// Все переходы State выполняются под мьютексом сессии.
type Session struct {
	mu           sync.Mutex
	id           string
	state        State
	tokens       map[QueryKind]uint64
	running      map[QueryKind]int
	lastIdentity string
	updatedAt    time.Time
	recorder     StaleRecorder
}

// NewSession создает сессию с начальным состоянием
// recorder может быть nil
func NewSession(id string, recorder StaleRecorder) *Session {
	return &Session{
		id:        id,
		state:     NewState(),
		tokens:    make(map[QueryKind]uint64),
		running:   make(map[QueryKind]int),
		updatedAt: time.Now(),
		recorder:  recorder,
	}
}

// RestoreSession восстанавливает сессию из снимка
// Запросы, выполнявшиеся до снимка, считаются потерянными.
func RestoreSession(snap Snapshot, recorder StaleRecorder) *Session {
	sess := NewSession(snap.ID, recorder)
	sess.state = snap.State.clone()
	sess.state.IsLoading = false
	if !sess.state.Step.IsValid() {
		sess.state.Step = NewState().Step
	}
	sess.lastIdentity = snap.LastIdentity
	sess.updatedAt = snap.UpdatedAt
	return sess
}

func (s *Session) ID() string {
	return s.id
}

// View возвращает копию текущего состояния
func (s *Session) View() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Snapshot возвращает снимок для сохранения
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:           s.id,
		State:        s.state.clone(),
		LastIdentity: s.lastIdentity,
		UpdatedAt:    s.updatedAt,
	}
}

// UpdatedAt время последнего изменения или обращения
func (s *Session) UpdatedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Touch отмечает обращение к сессии
func (s *Session) Touch() {
	s.mu.Lock()
	s.updatedAt = time.Now()
	s.mu.Unlock()
}

// Apply выполняет переход над состоянием
// Если переход изменил филиал, дату, время или количество гостей, ответ на уже
// отправленный запрос столов будет отброшен. Любое изменение черновика отбрасывает
// ответ на создание бронирования.
func (s *Session) Apply(transition func(st *State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputs := s.state.draftInputs()
	draft := s.state.Draft
	err := transition(&s.state)
	s.invalidate(inputs, &draft)
	s.updatedAt = time.Now()
	return err
}

// invalidate сдвигает токены запросов, входные данные которых изменились
func (s *Session) invalidate(inputs tableInputs, draft *domain.BookingDraft) {
	if s.state.draftInputs() != inputs {
		s.tokens[QueryTables]++
	}
	if !s.state.Draft.SameAs(draft) {
		s.tokens[QueryCreate]++
	}
}

// BeginQuery начинает запрос и возвращает его билет
// read вызывается под той же блокировкой, чтобы входные данные запроса соответствовали токену.
func (s *Session) BeginQuery(kind QueryKind, read func(st *State) error) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begin(kind, read)
}

// BeginExclusive как BeginQuery, но отказывает, если запрос этого типа уже выполняется
func (s *Session) BeginExclusive(kind QueryKind, read func(st *State) error) (Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running[kind] > 0 {
		return Ticket{}, ErrBusy
	}
	return s.begin(kind, read)
}

func (s *Session) begin(kind QueryKind, read func(st *State) error) (Ticket, error) {
	if read != nil {
		if err := read(&s.state); err != nil {
			return Ticket{}, err
		}
	}
	s.tokens[kind]++
	s.running[kind]++
	s.state.IsLoading = true
	s.updatedAt = time.Now()
	return Ticket{Kind: kind, Token: s.tokens[kind]}, nil
}

// FinishQuery завершает запрос
// apply вызывается только если билет все еще последний для своего типа, иначе ответ
// отбрасывается. Возвращает true, если ответ применен.
func (s *Session) FinishQuery(ticket Ticket, apply func(st *State)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running[ticket.Kind] > 0 {
		s.running[ticket.Kind]--
	}
	s.state.IsLoading = s.inFlight() > 0
	s.updatedAt = time.Now()

	if ticket.Token != s.tokens[ticket.Kind] {
		if s.recorder != nil {
			s.recorder.IncStaleResponse(string(ticket.Kind))
		}
		return false
	}
	if apply != nil {
		apply(&s.state)
	}
	return true
}

// MergeIdentity применяет профиль LINE один раз на каждую смену пользователя
// Возвращает true, если состояние изменилось.
func (s *Session) MergeIdentity(profile *identity.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if profile == nil || profile.UserID == "" || profile.UserID == s.lastIdentity {
		return false
	}
	s.lastIdentity = profile.UserID
	s.updatedAt = time.Now()

	merged, changed := identity.Merge(s.state.Draft.Customer, profile)
	if changed {
		inputs := s.state.draftInputs()
		draft := s.state.Draft
		s.state.Draft.Customer = merged
		s.invalidate(inputs, &draft)
	}
	return changed
}

func (s *Session) inFlight() int {
	total := 0
	for _, n := range s.running {
		total += n
	}
	return total
}
