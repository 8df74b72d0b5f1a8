package timeslots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

var ict = time.FixedZone("ICT", 7*3600)

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog([]string{"19:00", "10:30", "10:00", "19:00"}, ict)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00", "10:30", "19:00"}, c.All())
	assert.True(t, c.Contains("10:30"))
	assert.False(t, c.Contains("10:15"))

	_, err = NewCatalog([]string{"10:00", "late"}, ict)
	assert.ErrorIs(t, err, ErrInvalidLabel)

	_, err = NewCatalog(nil, ict)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestDefaultLabels(t *testing.T) {
	labels := DefaultLabels()
	require.NotEmpty(t, labels)
	assert.Equal(t, "10:00", labels[0])
	assert.Equal(t, "21:00", labels[len(labels)-1])
	assert.Len(t, labels, 23)
}

func TestCatalog_ForDate(t *testing.T) {
	c, err := NewCatalog([]string{"10:00", "11:00", "15:30", "16:00", "22:00"}, ict)
	require.NoError(t, err)

	branch := &domain.Branch{ID: 1, OpenTime: "11:00", CloseTime: "22:00"}
	now := time.Date(2025, 3, 10, 14, 45, 0, 0, ict)

	availability := func(slots []Slot) map[types.TimeString]bool {
		out := make(map[types.TimeString]bool, len(slots))
		for _, s := range slots {
			out[s.Time] = s.Available
		}
		return out
	}

	t.Run("today applies same-day buffer and opening hours", func(t *testing.T) {
		slots, err := c.ForDate(branch, "2025-03-10", now)
		require.NoError(t, err)
		assert.Equal(t, map[types.TimeString]bool{
			"10:00": false,
			"11:00": false,
			"15:30": false,
			"16:00": true,
			"22:00": false,
		}, availability(slots))
	})

	t.Run("tomorrow only opening hours", func(t *testing.T) {
		slots, err := c.ForDate(branch, "2025-03-11", now)
		require.NoError(t, err)
		got := availability(slots)
		assert.False(t, got["10:00"])
		assert.True(t, got["11:00"])
		assert.False(t, got["22:00"])
	})

	t.Run("past and far future dates are closed", func(t *testing.T) {
		for _, date := range []string{"2025-03-09", "2025-04-30"} {
			slots, err := c.ForDate(nil, date, now)
			require.NoError(t, err)
			for _, s := range slots {
				assert.False(t, s.Available, "%s %s", date, s.Time)
			}
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := c.ForDate(branch, "tomorrow", now)
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})
}
