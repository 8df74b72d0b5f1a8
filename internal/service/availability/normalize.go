package availability

import (
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/integrations/restaurantapi"
)

// normalizeTables приводит ответ бэкенда к единой форме domain.Table
func normalizeTables(raw []restaurantapi.Table) []domain.Table {
	tables := make([]domain.Table, 0, len(raw))
	for _, t := range raw {
		tables = append(tables, normalizeTable(t))
	}
	return tables
}

func normalizeTable(t restaurantapi.Table) domain.Table {
	table := domain.Table{
		Type:      domain.ParseTableType(t.Type),
		Zone:      t.Zone,
		Available: true,
	}

	switch {
	case t.TableID != nil:
		table.ID = *t.TableID
	case t.ID != nil:
		table.ID = *t.ID
	}

	table.Number = firstNonEmpty(t.TableNumber, t.Number)
	if table.Number == "" {
		table.Number = fmt.Sprintf("T%02d", table.ID)
	}

	switch {
	case t.Seats != nil:
		table.Seats = *t.Seats
	case t.Capacity != nil:
		table.Seats = *t.Capacity
	}

	// Отсутствие флага означает, что бэкенд не пометил стол занятым
	switch {
	case t.IsAvailable != nil:
		table.Available = *t.IsAvailable
	case t.Available != nil:
		table.Available = *t.Available
	}

	if table.Zone == "" {
		table.Zone = string(table.Type)
	}

	return table
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
