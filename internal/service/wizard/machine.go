package wizard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/availability"
	"github.com/m04kA/SMC-TableBooking/internal/service/identity"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// Machine выполняет переходы мастера бронирования, требующие проверок или ввода-вывода
type Machine struct {
	branches BranchesSource
	resolver TablesResolver
	catalog  SlotCatalog
	loc      *time.Location
	logger   Logger
}

// NewMachine создает новый экземпляр машины состояний
func NewMachine(
	branches BranchesSource,
	resolver TablesResolver,
	catalog SlotCatalog,
	loc *time.Location,
	logger Logger,
) *Machine {
	return &Machine{
		branches: branches,
		resolver: resolver,
		catalog:  catalog,
		loc:      loc,
		logger:   logger,
	}
}

// LoadBranches загружает филиалы один раз на сессию
// Ошибка бэкенда не возвращается: в состоянии остается пустой список и сообщение пользователю.
func (m *Machine) LoadBranches(ctx context.Context, sess *Session) {
	_ = m.loadBranches(ctx, sess)
}

// loadBranches возвращает ErrBusy, если загрузка уже идет в параллельном запросе
func (m *Machine) loadBranches(ctx context.Context, sess *Session) error {
	loaded := false
	ticket, err := sess.BeginExclusive(QueryBranches, func(st *State) error {
		loaded = len(st.Branches) > 0
		return nil
	})
	if err != nil {
		return err
	}
	if loaded {
		sess.FinishQuery(ticket, nil)
		return nil
	}

	branches, err := m.branches.List(ctx)
	if err != nil {
		m.logger.Error("LoadBranches: session=%s: %v", sess.ID(), err)
		sess.FinishQuery(ticket, func(st *State) {
			st.SetBranches([]domain.Branch{})
			st.SetError(MsgBranchesFailed)
		})
		return nil
	}

	m.logger.Info("LoadBranches: session=%s, branches=%d", sess.ID(), len(branches))
	sess.FinishQuery(ticket, func(st *State) {
		st.SetBranches(branches)
	})
	return nil
}

// SelectBranch выбирает филиал по ID из загруженного списка
func (m *Machine) SelectBranch(ctx context.Context, sess *Session, branchID int64) error {
	// Пока филиалы загружаются параллельным запросом, выбирать не из чего
	if err := m.loadBranches(ctx, sess); errors.Is(err, ErrBusy) && len(sess.View().Branches) == 0 {
		m.logger.Warn("SelectBranch: session=%s, branch=%d: branches are still loading", sess.ID(), branchID)
		return err
	}

	err := sess.Apply(func(st *State) error {
		branch, ok := domain.FindBranch(st.Branches, branchID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownBranch, branchID)
		}
		return st.SelectBranch(branch)
	})
	if err != nil {
		m.logger.Warn("SelectBranch: session=%s, branch=%d: %v", sess.ID(), branchID, err)
		return err
	}

	m.logger.Info("SelectBranch: session=%s, branch=%d", sess.ID(), branchID)
	return nil
}

// SelectDate приводит дату к YYYY-MM-DD в часовом поясе ресторана
func (m *Machine) SelectDate(sess *Session, raw string) error {
	date, err := domain.NormalizeDate(raw, m.loc)
	if err != nil {
		m.logger.Warn("SelectDate: session=%s: %v", sess.ID(), err)
		return err
	}

	if err := sess.Apply(func(st *State) error { return st.SelectDate(date) }); err != nil {
		m.logger.Warn("SelectDate: session=%s, date=%s: %v", sess.ID(), date, err)
		return err
	}
	return nil
}

// SelectTime принимает только время из каталога слотов
func (m *Machine) SelectTime(sess *Session, raw string) error {
	t, err := types.NewTimeStringFromString(raw)
	if err != nil || !m.catalog.Contains(t) {
		m.logger.Warn("SelectTime: session=%s, time=%q is not a slot", sess.ID(), raw)
		return fmt.Errorf("%w: %q", ErrInvalidTime, raw)
	}

	if err := sess.Apply(func(st *State) error { return st.SelectTime(t) }); err != nil {
		m.logger.Warn("SelectTime: session=%s: %v", sess.ID(), err)
		return err
	}
	return nil
}

func (m *Machine) SetGuestCount(sess *Session, n int) error {
	if err := sess.Apply(func(st *State) error { return st.SetGuestCount(n) }); err != nil {
		m.logger.Warn("SetGuestCount: session=%s: %v", sess.ID(), err)
		return err
	}
	return nil
}

// SelectTable nil означает "стол назначит ресторан"
func (m *Machine) SelectTable(sess *Session, tableID *int64) error {
	err := sess.Apply(func(st *State) error {
		if tableID == nil {
			return st.SelectTable(domain.Unassigned())
		}
		table, err := st.SelectableTable(*tableID)
		if err != nil {
			return fmt.Errorf("%w: %d", err, *tableID)
		}
		return st.SelectTable(domain.Chosen(table))
	})
	if err != nil {
		m.logger.Warn("SelectTable: session=%s: %v", sess.ID(), err)
		return err
	}
	return nil
}

func (m *Machine) UpdateCustomerInfo(sess *Session, patch domain.CustomerInfoPatch) error {
	return sess.Apply(func(st *State) error { return st.UpdateCustomerInfo(patch) })
}

func (m *Machine) SubmitDetails(sess *Session, patch domain.CustomerInfoPatch) error {
	if err := sess.Apply(func(st *State) error { return st.SubmitDetails(patch) }); err != nil {
		m.logger.Warn("SubmitDetails: session=%s: %v", sess.ID(), err)
		return err
	}
	return nil
}

func (m *Machine) EnterStep(sess *Session, step domain.Step) error {
	if err := sess.Apply(func(st *State) error { return st.EnterStep(step) }); err != nil {
		m.logger.Warn("EnterStep: session=%s, step=%s: %v", sess.ID(), step, err)
		return err
	}
	return nil
}

func (m *Machine) ResetDraft(sess *Session) {
	_ = sess.Apply(func(st *State) error {
		st.ResetDraft()
		return nil
	})
	m.logger.Info("ResetDraft: session=%s", sess.ID())
}

func (m *Machine) ClearError(sess *Session) {
	_ = sess.Apply(func(st *State) error {
		st.ClearError()
		return nil
	})
}

// LoadAvailableTables запрашивает столы для текущих филиала, даты, времени и количества гостей
// Ответ применяется, только если за время запроса эти параметры не изменились.
func (m *Machine) LoadAvailableTables(ctx context.Context, sess *Session) error {
	var req availability.Request
	ticket, err := sess.BeginQuery(QueryTables, func(st *State) error {
		if !domain.StepPrerequisitesMet(domain.StepTable, &st.Draft) {
			return ErrStepLocked
		}
		branch := *st.Draft.Branch
		req = availability.Request{
			Branch:     &branch,
			Date:       st.Draft.Date,
			Time:       st.Draft.Time,
			GuestCount: st.Draft.GuestCount,
		}
		return nil
	})
	if err != nil {
		m.logger.Warn("LoadAvailableTables: session=%s: %v", sess.ID(), err)
		return err
	}

	result, err := m.resolver.LoadAvailableTables(ctx, &req)
	if err != nil {
		sess.FinishQuery(ticket, nil)
		return err
	}

	applied := sess.FinishQuery(ticket, func(st *State) {
		st.SetTables(result.Tables, result.Degraded, result.Message)
	})
	if !applied {
		m.logger.Info("LoadAvailableTables: session=%s: stale response discarded", sess.ID())
	}
	return nil
}

// MergeIdentity применяет профиль LINE к контактным данным
func (m *Machine) MergeIdentity(sess *Session, profile *identity.Profile) bool {
	changed := sess.MergeIdentity(profile)
	if changed {
		m.logger.Info("MergeIdentity: session=%s, lineUserId=%s", sess.ID(), profile.UserID)
	}
	return changed
}
