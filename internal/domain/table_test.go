package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableChoice(t *testing.T) {
	assert.False(t, NotChosen().IsDecided())
	assert.Nil(t, NotChosen().TableID())

	assert.True(t, Unassigned().IsDecided())
	assert.Nil(t, Unassigned().TableID())

	chosen := Chosen(Table{ID: 4, Number: "T04", Seats: 4})
	assert.True(t, chosen.IsDecided())
	if assert.NotNil(t, chosen.TableID()) {
		assert.Equal(t, int64(4), *chosen.TableID())
	}
}

func TestParseTableType(t *testing.T) {
	assert.Equal(t, TableVIP, ParseTableType("vip"))
	assert.Equal(t, TableWindow, ParseTableType("window"))
	assert.Equal(t, TableStandard, ParseTableType("booth"))
	assert.Equal(t, TableStandard, ParseTableType(""))
}

func TestClampGuestCount(t *testing.T) {
	assert.Equal(t, 1, ClampGuestCount(0))
	assert.Equal(t, 4, ClampGuestCount(4))
	assert.Equal(t, 20, ClampGuestCount(35))
}
