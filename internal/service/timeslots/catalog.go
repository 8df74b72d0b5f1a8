package timeslots

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

// DefaultLabels слоты по умолчанию: с 10:00 до 21:00 каждые 30 минут
func DefaultLabels() []string {
	labels := make([]string, 0, 23)
	for minutes := 10 * 60; minutes <= 21*60; minutes += 30 {
		labels = append(labels, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return labels
}

// Slot слот с признаком доступности на конкретную дату
type Slot struct {
	Time      types.TimeString `json:"time"`
	Available bool             `json:"available"`
}

// Catalog упорядоченный статический список слотов бронирования
type Catalog struct {
	slots []types.TimeString
	loc   *time.Location
}

// NewCatalog разбирает метки "HH:MM", сортирует их и убирает дубликаты
func NewCatalog(labels []string, loc *time.Location) (*Catalog, error) {
	seen := make(map[types.TimeString]struct{}, len(labels))
	slots := make([]types.TimeString, 0, len(labels))

	for _, label := range labels {
		slot, err := types.NewTimeStringFromString(label)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidLabel, err)
		}
		if _, ok := seen[slot]; ok {
			continue
		}
		seen[slot] = struct{}{}
		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		return nil, ErrEmptyCatalog
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].IsBefore(slots[j])
	})

	return &Catalog{slots: slots, loc: loc}, nil
}

// All возвращает все слоты по порядку
func (c *Catalog) All() []types.TimeString {
	out := make([]types.TimeString, len(c.slots))
	copy(out, c.slots)
	return out
}

// Contains проверяет, что слот есть в каталоге
func (c *Catalog) Contains(t types.TimeString) bool {
	for _, slot := range c.slots {
		if slot == t {
			return true
		}
	}
	return false
}

// ForDate возвращает слоты с признаком доступности для филиала на дату
// Слот недоступен, если он вне часов работы филиала, дата в прошлом или дальше MaxAdvanceDays,
// а для сегодняшней даты - если до начала меньше SameDayBufferMinutes
func (c *Catalog) ForDate(branch *domain.Branch, date string, now time.Time) ([]Slot, error) {
	day, err := domain.ParseDate(date, c.loc)
	if err != nil {
		return nil, err
	}

	now = now.In(c.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.loc)
	lastDay := today.AddDate(0, 0, domain.MaxAdvanceDays)
	dateBookable := !day.Before(today) && !day.After(lastDay)
	earliest := now.Add(domain.SameDayBufferMinutes * time.Minute)

	result := make([]Slot, 0, len(c.slots))
	for _, slot := range c.slots {
		available := dateBookable
		if available && branch != nil {
			available = branch.IsOpenAt(slot)
		}
		if available && day.Equal(today) {
			startsAt, err := slot.On(day, c.loc)
			available = err == nil && !startsAt.Before(earliest)
		}
		result = append(result, Slot{Time: slot, Available: available})
	}

	return result, nil
}
