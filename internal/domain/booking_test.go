package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TableBooking/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusNoShow, StatusCancelled, false},
		{StatusConfirmed, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingRecord_CanBeCancelled(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2025, 3, 10, 15, 0, 0, 0, loc)

	tests := []struct {
		name     string
		status   BookingStatus
		startsAt time.Time
		want     bool
	}{
		{name: "confirmed, 2h01m ahead", status: StatusConfirmed, startsAt: now.Add(2*time.Hour + time.Minute), want: true},
		{name: "pending, 3h ahead", status: StatusPending, startsAt: now.Add(3 * time.Hour), want: true},
		{name: "confirmed, 1h59m ahead", status: StatusConfirmed, startsAt: now.Add(2*time.Hour - time.Minute), want: false},
		{name: "confirmed, exactly 2h ahead", status: StatusConfirmed, startsAt: now.Add(2 * time.Hour), want: false},
		{name: "completed, far ahead", status: StatusCompleted, startsAt: now.Add(48 * time.Hour), want: false},
		{name: "cancelled, far ahead", status: StatusCancelled, startsAt: now.Add(48 * time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &BookingRecord{
				Status: tt.status,
				Date:   tt.startsAt.Format(DateFormat),
				Time:   types.NewTimeString(tt.startsAt),
			}
			assert.Equal(t, tt.want, r.CanBeCancelled(now, loc))
		})
	}
}

func TestBookingRecord_CanBeCancelled_InvalidDate(t *testing.T) {
	r := &BookingRecord{Status: StatusConfirmed, Date: "10/03/2025", Time: "19:00"}
	assert.False(t, r.CanBeCancelled(time.Now(), time.UTC))
}

func TestBookingRecord_WithStatus(t *testing.T) {
	original := &BookingRecord{ID: 7, Status: StatusConfirmed}
	cancelled := original.WithStatus(StatusCancelled)

	assert.Equal(t, StatusConfirmed, original.Status)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, int64(7), cancelled.ID)
	assert.NotSame(t, original, cancelled)
}
