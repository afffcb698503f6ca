package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlot_IsFull(t *testing.T) {
	slot := &Slot{Capacity: 2}
	assert.False(t, slot.IsFull())

	slot.Participants = []Participant{CurrentViewer(), CurrentViewer()}
	assert.True(t, slot.IsFull())

	walking := &Slot{Capacity: Unbounded}
	for i := 0; i < 50; i++ {
		walking.Participants = append(walking.Participants, CurrentViewer())
	}
	assert.False(t, walking.IsFull())
}

func TestSlot_IsExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	slot := &Slot{Time: now}

	assert.False(t, slot.IsExpired(now))
	assert.True(t, slot.IsExpired(now.Add(time.Second)))
}

func TestSlot_CloneIsDeep(t *testing.T) {
	slot := &Slot{ID: 1, Capacity: 4, Participants: []Participant{CurrentViewer()}}
	clone := slot.Clone()

	clone.Participants = append(clone.Participants, CurrentViewer())
	clone.Participants[0].Name = "Changed"

	assert.Len(t, slot.Participants, 1)
	assert.Equal(t, "You", slot.Participants[0].Name)
}

func TestDirectory(t *testing.T) {
	dir := Directory()
	assert.Len(t, dir, 3)
	assert.Equal(t, "user1", dir[0].ID)

	p, ok := DirectoryParticipant("user2")
	assert.True(t, ok)
	assert.Equal(t, "Sarah M.", p.Name)
	assert.Equal(t, "S", p.Initial())

	_, ok = DirectoryParticipant("user9")
	assert.False(t, ok)
}
