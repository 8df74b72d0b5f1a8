package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func completeDraft() BookingDraft {
	d := NewDraft()
	d.Branch = &Branch{ID: 1, Name: "Siam"}
	d.Date = "2025-03-10"
	d.Time = "19:00"
	d.GuestCount = 4
	d.Table = Unassigned()
	d.Customer = CustomerInfo{Name: "Somchai", Phone: "0812345678"}
	return d
}

func TestStepPrerequisitesMet(t *testing.T) {
	empty := NewDraft()
	full := completeDraft()

	noTable := completeDraft()
	noTable.Table = NotChosen()

	assert.True(t, StepPrerequisitesMet(StepBranch, &empty))
	assert.False(t, StepPrerequisitesMet(StepDate, &empty))
	assert.True(t, StepPrerequisitesMet(StepTable, &noTable))
	assert.False(t, StepPrerequisitesMet(StepDetails, &noTable))
	assert.True(t, StepPrerequisitesMet(StepConfirmation, &full))
	assert.False(t, StepPrerequisitesMet(StepSuccess, &full))
	assert.False(t, StepPrerequisitesMet(Step("payment"), &full))

	full.Reference = "PH1234"
	assert.True(t, StepPrerequisitesMet(StepSuccess, &full))
}

func TestReachableStep(t *testing.T) {
	d := NewDraft()
	d.Branch = &Branch{ID: 1}

	assert.Equal(t, StepDate, ReachableStep(StepTable, &d))
	assert.Equal(t, StepBranch, ReachableStep(StepBranch, &d))
	assert.Equal(t, StepBranch, ReachableStep(Step("unknown"), &d))

	d.Date = "2025-03-10"
	d.Time = "19:00"
	assert.Equal(t, StepTable, ReachableStep(StepTable, &d))
	assert.Equal(t, StepTable, ReachableStep(StepSuccess, &d))
}

func TestBookingDraft_SameAs(t *testing.T) {
	base := completeDraft()

	copied := completeDraft()
	copied.Branch = &Branch{ID: 1, Name: "Siam Paragon"}
	assert.True(t, base.SameAs(&copied))

	tests := []struct {
		name string
		edit func(d *BookingDraft)
	}{
		{name: "branch", edit: func(d *BookingDraft) { d.Branch = &Branch{ID: 2} }},
		{name: "no branch", edit: func(d *BookingDraft) { d.Branch = nil }},
		{name: "table kind", edit: func(d *BookingDraft) { d.Table = Chosen(Table{ID: 3}) }},
		{name: "guests", edit: func(d *BookingDraft) { d.GuestCount = 5 }},
		{name: "phone", edit: func(d *BookingDraft) { d.Customer.Phone = "0899999999" }},
		{name: "requirements", edit: func(d *BookingDraft) { d.Customer.Requirements.HighChair = true }},
		{name: "reference", edit: func(d *BookingDraft) { d.Reference = "PH1234" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := completeDraft()
			tt.edit(&changed)
			assert.False(t, base.SameAs(&changed))
		})
	}

	chosen, other := completeDraft(), completeDraft()
	chosen.Table = Chosen(Table{ID: 3})
	other.Table = Chosen(Table{ID: 8})
	assert.False(t, chosen.SameAs(&other))
}
