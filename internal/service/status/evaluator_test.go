package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

var now = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func slotWith(id int, at time.Time, capacity domain.Capacity, participants int) *domain.Slot {
	s := &domain.Slot{ID: id, Time: at, Capacity: capacity}
	for i := 0; i < participants; i++ {
		s.Participants = append(s.Participants, domain.CurrentViewer())
	}
	return s
}

func TestStatus_Precedence(t *testing.T) {
	past := now.Add(-time.Minute)
	future := now.Add(10 * time.Minute)

	tests := []struct {
		name   string
		slot   *domain.Slot
		closed domain.ClosedSet
		want   string
	}{
		{"closed and expired", slotWith(1, past, 4, 0), domain.ClosedSet{1: {}}, "Closed"},
		{"closed and full", slotWith(1, future, 4, 4), domain.ClosedSet{1: {}}, "Closed"},
		{"full and expired", slotWith(1, past, 4, 4), domain.ClosedSet{}, "Full - Booking Closed"},
		{"expired", slotWith(1, past, 4, 1), domain.ClosedSet{}, "Expired"},
		{"open", slotWith(1, future, 4, 1), domain.ClosedSet{}, "3 spots left"},
		{"open at now", slotWith(1, now, 3, 0), domain.ClosedSet{}, "3 spots left"},
		{"unbounded", slotWith(1, future, domain.Unbounded, 10), domain.ClosedSet{}, "Infinity spots left"},
		{"other id closed", slotWith(2, future, 4, 0), domain.ClosedSet{1: {}}, "4 spots left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Status(now, tt.slot, tt.closed))
		})
	}
}

func TestIsFull_IndependentOfStatus(t *testing.T) {
	expired := slotWith(0, now.Add(-time.Hour), 4, 2)

	assert.Equal(t, "Expired", Status(now, expired, domain.ClosedSet{}))
	assert.False(t, IsFull(expired))
	assert.False(t, IsFull(slotWith(0, now, domain.Unbounded, 100)))
}

func TestEvaluate_Actions(t *testing.T) {
	future := now.Add(20 * time.Minute)
	past := now.Add(-20 * time.Minute)

	t.Run("open slot", func(t *testing.T) {
		e := Evaluate(now, slotWith(0, future, 4, 1), domain.ClosedSet{})
		assert.Equal(t, Actions{
			BookLabel: "Book Now",
			ShowClose: true,
		}, e.Actions)
	})

	t.Run("full slot", func(t *testing.T) {
		e := Evaluate(now, slotWith(0, future, 4, 4), domain.ClosedSet{})
		assert.True(t, e.Full)
		assert.Equal(t, Actions{
			BookLabel:    "Slot Full",
			BookDisabled: true,
			ShowReopen:   true,
		}, e.Actions)
	})

	t.Run("closed slot", func(t *testing.T) {
		e := Evaluate(now, slotWith(0, future, 4, 1), domain.ClosedSet{0: {}})
		assert.Equal(t, Actions{
			BookLabel:    "Book Now",
			BookDisabled: true,
			ShowReopen:   true,
		}, e.Actions)
	})

	t.Run("expired open slot", func(t *testing.T) {
		e := Evaluate(now, slotWith(0, past, 4, 0), domain.ClosedSet{})
		assert.True(t, e.Actions.BookDisabled)
		assert.True(t, e.Actions.ShowClose)
		assert.True(t, e.Actions.CloseDisabled)
		assert.False(t, e.Actions.ShowReopen)
	})

	t.Run("expired closed slot is frozen", func(t *testing.T) {
		e := Evaluate(now, slotWith(0, past, 4, 0), domain.ClosedSet{0: {}})
		assert.True(t, e.Actions.BookDisabled)
		assert.False(t, e.Actions.ShowClose)
		assert.True(t, e.Actions.ShowReopen)
		assert.True(t, e.Actions.ReopenDisabled)
	})
}

func TestCanBook(t *testing.T) {
	future := now.Add(time.Minute)

	assert.True(t, CanBook(now, slotWith(0, future, 4, 3), domain.ClosedSet{}))
	assert.False(t, CanBook(now, slotWith(0, future, 4, 4), domain.ClosedSet{}))
	assert.False(t, CanBook(now, slotWith(0, future, 4, 0), domain.ClosedSet{0: {}}))
	assert.False(t, CanBook(now, slotWith(0, now.Add(-time.Second), 4, 0), domain.ClosedSet{}))
}
