package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
	"github.com/m04kA/SMC-RideSlotService/pkg/logger"
)

var base = time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

func batch(capacity domain.Capacity) []*domain.Slot {
	out := make([]*domain.Slot, 0, 6)
	for i := 0; i < 6; i++ {
		out = append(out, &domain.Slot{
			ID:           i,
			Time:         base.Add(time.Duration(i) * 10 * time.Minute),
			Participants: []domain.Participant{},
			IsActive:     i == 0,
			Capacity:     capacity,
		})
	}
	return out
}

func newStore(capacity domain.Capacity) *Store {
	s := NewStore(domain.CurrentViewer(), logger.NewNop())
	s.Replace(batch(capacity))
	return s
}

func TestBook_AppendsViewerAndRemembersSelection(t *testing.T) {
	s := newStore(4)

	res, err := s.Book(2, base)
	require.NoError(t, err)

	assert.Len(t, res.Slot.Participants, 1)
	assert.False(t, res.AutoClosed)

	snap := s.Snapshot()
	assert.Equal(t, "You", snap.Slots[2].Participants[0].Name)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, 2, snap.Selected.ID)
	assert.Empty(t, snap.Selected.Participants, "selection keeps the pre-booking slot")
}

func TestBook_AutoClosesWhenCapacityReached(t *testing.T) {
	s := newStore(4)

	for i := 0; i < 3; i++ {
		res, err := s.Book(1, base)
		require.NoError(t, err)
		assert.False(t, res.AutoClosed)
		assert.False(t, s.Snapshot().Closed.Contains(1))
	}

	res, err := s.Book(1, base)
	require.NoError(t, err)
	assert.True(t, res.AutoClosed)
	assert.True(t, s.Snapshot().Closed.Contains(1))
	assert.Len(t, s.Snapshot().Slots[1].Participants, 4)

	_, err = s.Book(1, base)
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Len(t, s.Snapshot().Slots[1].Participants, 4)
}

func TestBook_Guards(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		s := newStore(4)
		_, err := s.Book(0, base.Add(time.Second))
		assert.ErrorIs(t, err, ErrSlotExpired)
		assert.Empty(t, s.Snapshot().Slots[0].Participants)
		assert.Nil(t, s.Snapshot().Selected)
	})

	t.Run("closed", func(t *testing.T) {
		s := newStore(4)
		_, err := s.Close(3)
		require.NoError(t, err)

		_, err = s.Book(3, base)
		assert.ErrorIs(t, err, ErrSlotClosed)
		assert.Empty(t, s.Snapshot().Slots[3].Participants)
	})

	t.Run("unknown slot", func(t *testing.T) {
		s := newStore(4)
		_, err := s.Book(42, base)
		assert.ErrorIs(t, err, ErrSlotNotFound)
	})
}

func TestBook_UnboundedNeverCloses(t *testing.T) {
	s := newStore(domain.Unbounded)

	for i := 0; i < 10; i++ {
		res, err := s.Book(0, base)
		require.NoError(t, err)
		assert.False(t, res.AutoClosed)
	}

	snap := s.Snapshot()
	assert.Len(t, snap.Slots[0].Participants, 10)
	assert.False(t, snap.Closed.Contains(0))
}

func TestCloseReopen(t *testing.T) {
	s := newStore(4)

	changed, err := s.Close(2)
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.Close(2)
	require.NoError(t, err)
	assert.False(t, changed, "closing twice has no effect")

	changed, err = s.Reopen(2)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.False(t, s.Snapshot().Closed.Contains(2))

	changed, err = s.Reopen(2)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = s.Close(9)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	_, err = s.Reopen(9)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestReopen_FullSlotStaysFull(t *testing.T) {
	s := newStore(3)
	for i := 0; i < 3; i++ {
		_, err := s.Book(4, base)
		require.NoError(t, err)
	}

	_, err := s.Reopen(4)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.False(t, snap.Closed.Contains(4))
	assert.True(t, snap.Slots[4].IsFull())

	_, err = s.Book(4, base)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestReplace_DiscardsBatchState(t *testing.T) {
	s := newStore(4)
	_, err := s.Close(2)
	require.NoError(t, err)
	_, err = s.Book(1, base)
	require.NoError(t, err)

	s.Replace(batch(4))

	snap := s.Snapshot()
	assert.False(t, snap.Closed.Contains(2))
	assert.Empty(t, snap.Slots[1].Participants)
	require.NotNil(t, snap.Selected, "the confirmation survives regeneration")
	assert.Equal(t, 1, snap.Selected.ID)
}

func TestParticipant(t *testing.T) {
	s := newStore(4)
	_, err := s.Book(0, base)
	require.NoError(t, err)

	p, err := s.Participant(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "current-user", p.ID)

	_, err = s.Participant(0, 1)
	assert.ErrorIs(t, err, ErrParticipantNotFound)
	_, err = s.Participant(7, 0)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestSnapshot_IsIsolated(t *testing.T) {
	s := newStore(4)
	snap := s.Snapshot()

	snap.Slots[0].Participants = append(snap.Slots[0].Participants, domain.CurrentViewer())
	snap.Closed.Add(0)

	fresh := s.Snapshot()
	assert.Empty(t, fresh.Slots[0].Participants)
	assert.False(t, fresh.Closed.Contains(0))
}

func TestHas(t *testing.T) {
	s := newStore(4)

	assert.True(t, s.Has(0))
	assert.True(t, s.Has(5))
	assert.False(t, s.Has(6))
	assert.False(t, NewStore(domain.CurrentViewer(), logger.NewNop()).Has(0))
}
