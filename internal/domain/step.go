package domain

// Step is a wizard step
type Step string

const (
	StepBranch       Step = "branch"
	StepDate         Step = "date"
	StepTime         Step = "time"
	StepGuests       Step = "guests"
	StepTable        Step = "table"
	StepDetails      Step = "details"
	StepConfirmation Step = "confirmation"
	StepSuccess      Step = "success"
)

// StepOrder the wizard order
var StepOrder = []Step{
	StepBranch,
	StepDate,
	StepTime,
	StepGuests,
	StepTable,
	StepDetails,
	StepConfirmation,
	StepSuccess,
}

// stepPrerequisites what a step needs from the draft, on top of everything
// the previous step needs
var stepPrerequisites = map[Step]func(d *BookingDraft) bool{
	StepBranch:       func(d *BookingDraft) bool { return true },
	StepDate:         func(d *BookingDraft) bool { return d.Branch != nil },
	StepTime:         func(d *BookingDraft) bool { return d.Date != "" },
	StepGuests:       func(d *BookingDraft) bool { return !d.Time.IsZero() },
	StepTable:        func(d *BookingDraft) bool { return d.GuestCount >= MinGuestCount },
	StepDetails:      func(d *BookingDraft) bool { return d.Table.IsDecided() },
	StepConfirmation: func(d *BookingDraft) bool { return d.Customer.HasContact() },
	StepSuccess:      func(d *BookingDraft) bool { return d.IsConfirmed() },
}

// Index returns the position of the step in StepOrder, -1 if unknown
func (s Step) Index() int {
	for i, step := range StepOrder {
		if step == s {
			return i
		}
	}
	return -1
}

// IsValid returns true for known steps
func (s Step) IsValid() bool {
	return s.Index() >= 0
}

// StepPrerequisitesMet returns true if the draft has every selection the step needs
func StepPrerequisitesMet(step Step, d *BookingDraft) bool {
	idx := step.Index()
	if idx < 0 {
		return false
	}
	for _, s := range StepOrder[:idx+1] {
		if !stepPrerequisites[s](d) {
			return false
		}
	}
	return true
}

// ReachableStep returns the furthest step not after want whose prerequisites hold
func ReachableStep(want Step, d *BookingDraft) Step {
	idx := want.Index()
	if idx < 0 {
		return StepBranch
	}
	for i := idx; i > 0; i-- {
		if StepPrerequisitesMet(StepOrder[i], d) {
			return StepOrder[i]
		}
	}
	return StepBranch
}
