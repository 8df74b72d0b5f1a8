package wizard

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// State состояние мастера бронирования одного гостя
// Методы State это переходы: они не делают ввода-вывода и вызываются только через Session.
type State struct {
	Step            domain.Step             `json:"step"`
	Draft           domain.BookingDraft     `json:"draft"`
	Branches        []domain.Branch         `json:"branches"`
	AvailableTables []domain.Table          `json:"availableTables"`
	TablesDegraded  bool                    `json:"tablesDegraded"`
	BookingHistory  []*domain.BookingRecord `json:"bookingHistory"`
	IsLoading       bool                    `json:"isLoading"`
	Error           string                  `json:"error,omitempty"`
}

// NewState возвращает начальное состояние
func NewState() State {
	return State{
		Step:            domain.StepBranch,
		Draft:           domain.NewDraft(),
		Branches:        []domain.Branch{},
		AvailableTables: []domain.Table{},
		BookingHistory:  []*domain.BookingRecord{},
	}
}

// SelectBranch выбирает филиал и сбрасывает все, что от него зависит
func (s *State) SelectBranch(branch domain.Branch) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.Branch = &branch
	s.Draft.Date = ""
	s.Draft.Time = ""
	s.Draft.Table = domain.NotChosen()
	s.clearTables()
	s.goTo(domain.StepDate)
	return nil
}

// SelectDate принимает каноническую дату YYYY-MM-DD
func (s *State) SelectDate(date string) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.Date = date
	s.Draft.Time = ""
	s.Draft.Table = domain.NotChosen()
	s.clearTables()
	s.goTo(domain.StepTime)
	return nil
}

func (s *State) SelectTime(t types.TimeString) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.Time = t
	s.Draft.Table = domain.NotChosen()
	s.clearTables()
	s.goTo(domain.StepGuests)
	return nil
}

// SetGuestCount количество гостей приводится к допустимому диапазону
func (s *State) SetGuestCount(n int) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.GuestCount = domain.ClampGuestCount(n)
	s.Draft.Table = domain.NotChosen()
	s.clearTables()
	s.goTo(domain.StepTable)
	return nil
}

func (s *State) SelectTable(choice domain.TableChoice) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.Table = choice
	s.goTo(domain.StepDetails)
	return nil
}

// UpdateCustomerInfo применяет только заданные поля патча
func (s *State) UpdateCustomerInfo(patch domain.CustomerInfoPatch) error {
	if s.Draft.IsConfirmed() {
		return ErrDraftConfirmed
	}
	s.Draft.Customer = s.Draft.Customer.Merge(patch)
	return nil
}

// SubmitDetails сохраняет контактные данные и переходит к подтверждению
func (s *State) SubmitDetails(patch domain.CustomerInfoPatch) error {
	if err := s.UpdateCustomerInfo(patch); err != nil {
		return err
	}
	s.goTo(domain.StepConfirmation)
	return nil
}

// EnterStep переход на шаг, для которого выполнены предусловия
func (s *State) EnterStep(step domain.Step) error {
	if !step.IsValid() {
		return ErrUnknownStep
	}
	if s.Draft.IsConfirmed() && step != domain.StepSuccess {
		return ErrDraftConfirmed
	}
	if !domain.StepPrerequisitesMet(step, &s.Draft) {
		return ErrStepLocked
	}
	s.Step = step
	return nil
}

// ResetDraft начинает новое бронирование
// Список филиалов, история и LINE user id сохраняются.
func (s *State) ResetDraft() {
	lineUserID := s.Draft.Customer.LineUserID
	s.Draft = domain.NewDraft()
	s.Draft.Customer.LineUserID = lineUserID
	s.clearTables()
	s.Error = ""
	s.Step = domain.StepBranch
}

func (s *State) ClearError() {
	s.Error = ""
}

// SelectableTable возвращает загруженный стол, если его можно выбрать
// Слишком маленький стол выбрать можно, занятый нельзя.
func (s *State) SelectableTable(id int64) (domain.Table, error) {
	for _, t := range s.AvailableTables {
		if t.ID != id {
			continue
		}
		if !t.Available {
			return domain.Table{}, ErrTableUnavailable
		}
		return t, nil
	}
	return domain.Table{}, ErrUnknownTable
}

// SetTables результат запроса доступности
func (s *State) SetTables(tables []domain.Table, degraded bool, message string) {
	s.AvailableTables = tables
	s.TablesDegraded = degraded
	if message != "" {
		s.Error = message
	}
}

func (s *State) SetBranches(branches []domain.Branch) {
	s.Branches = branches
}

// SetHistory заменяет историю целиком
func (s *State) SetHistory(records []*domain.BookingRecord) {
	if records == nil {
		records = []*domain.BookingRecord{}
	}
	s.BookingHistory = records
}

// ReplaceHistoryRecord заменяет запись с тем же ID, остальные записи не трогаются
func (s *State) ReplaceHistoryRecord(record *domain.BookingRecord) bool {
	for i, r := range s.BookingHistory {
		if r.ID == record.ID {
			s.BookingHistory[i] = record
			return true
		}
	}
	return false
}

// FindHistoryRecord ищет запись истории по ID
func (s *State) FindHistoryRecord(id int64) (*domain.BookingRecord, bool) {
	for _, r := range s.BookingHistory {
		if r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Confirm фиксирует номер бронирования, повторно он не меняется
func (s *State) Confirm(reference string) {
	if s.Draft.IsConfirmed() {
		return
	}
	s.Draft.Reference = reference
	s.Error = ""
	s.goTo(domain.StepSuccess)
}

func (s *State) SetError(msg string) {
	s.Error = msg
}

func (s *State) clearTables() {
	s.AvailableTables = []domain.Table{}
	s.TablesDegraded = false
}

// goTo переходит на самый дальний доступный шаг не дальше запрошенного
func (s *State) goTo(step domain.Step) {
	s.Step = domain.ReachableStep(step, &s.Draft)
}

// clone копия состояния, не разделяющая слайсы с оригиналом
func (s *State) clone() State {
	cp := *s
	cp.Branches = append([]domain.Branch{}, s.Branches...)
	cp.AvailableTables = append([]domain.Table{}, s.AvailableTables...)
	cp.BookingHistory = append([]*domain.BookingRecord{}, s.BookingHistory...)
	return cp
}

// tableInputs параметры, от которых зависят загруженные столы
type tableInputs struct {
	branchID   int64
	date       string
	time       types.TimeString
	guestCount int
}

func (s *State) draftInputs() tableInputs {
	in := tableInputs{
		date:       s.Draft.Date,
		time:       s.Draft.Time,
		guestCount: s.Draft.GuestCount,
	}
	if s.Draft.Branch != nil {
		in.branchID = s.Draft.Branch.ID
	}
	return in
}
