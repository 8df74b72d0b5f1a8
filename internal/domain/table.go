package domain

// TableType represents the seating category of a table
type TableType string

const (
	TableStandard TableType = "standard"
	TableWindow   TableType = "window"
	TableLarge    TableType = "large"
	TableVIP      TableType = "vip"
)

// ParseTableType maps a backend tag to a known type, unknown tags become standard
func ParseTableType(s string) TableType {
	switch TableType(s) {
	case TableWindow, TableLarge, TableVIP:
		return TableType(s)
	default:
		return TableStandard
	}
}

// Table is a table with its availability for the currently queried branch/date/time
type Table struct {
	ID        int64     `json:"id"`
	Number    string    `json:"number"`
	Seats     int       `json:"seats"`
	Type      TableType `json:"type"`
	Zone      string    `json:"zone"`
	Available bool      `json:"available"`
}

// FitsParty returns true if the table seats the whole party.
// Too small tables are still offered; the front end marks them.
func (t *Table) FitsParty(guestCount int) bool {
	return t.Seats >= guestCount
}

// TableChoiceKind distinguishes "not yet chosen" from "let the restaurant assign"
type TableChoiceKind string

const (
	TableNotChosen  TableChoiceKind = "not_chosen"
	TableUnassigned TableChoiceKind = "unassigned"
	TableChosen     TableChoiceKind = "chosen"
)

// TableChoice is the table selection of a draft
type TableChoice struct {
	Kind  TableChoiceKind `json:"kind"`
	Table *Table          `json:"table,omitempty"`
}

// NotChosen no decision has been made yet
func NotChosen() TableChoice {
	return TableChoice{Kind: TableNotChosen}
}

// Unassigned the restaurant assigns a table
func Unassigned() TableChoice {
	return TableChoice{Kind: TableUnassigned}
}

// Chosen a specific table
func Chosen(t Table) TableChoice {
	return TableChoice{Kind: TableChosen, Table: &t}
}

// IsDecided returns true once the diner picked a table or left it to the restaurant
func (c TableChoice) IsDecided() bool {
	return c.Kind == TableUnassigned || (c.Kind == TableChosen && c.Table != nil)
}

// TableID returns the chosen table id or nil
func (c TableChoice) TableID() *int64 {
	if c.Kind != TableChosen || c.Table == nil {
		return nil
	}
	id := c.Table.ID
	return &id
}
