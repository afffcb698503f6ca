package domain

import "time"

// Slot a bookable time window of one generation batch.
// ID is the position inside the batch and is unique only within it.
type Slot struct {
	ID           int
	Time         time.Time
	Participants []Participant
	IsActive     bool
	Capacity     Capacity
}

// IsFull returns true if the participants fill the capacity.
// A slot with unbounded capacity is never full.
func (s *Slot) IsFull() bool {
	return s.Capacity.Reached(len(s.Participants))
}

// IsExpired returns true if the slot starts before now
func (s *Slot) IsExpired(now time.Time) bool {
	return s.Time.Before(now)
}

// RemainingText returns the free seats as display text
func (s *Slot) RemainingText() string {
	return s.Capacity.Remaining(len(s.Participants))
}

// Clone returns a deep copy of the slot
func (s *Slot) Clone() *Slot {
	c := *s
	c.Participants = append([]Participant(nil), s.Participants...)
	return &c
}

// ClosedSet ids of slots not open for booking, independent of fullness
type ClosedSet map[int]struct{}

// Contains returns true if the slot id is closed
func (c ClosedSet) Contains(id int) bool {
	_, ok := c[id]
	return ok
}

// Add closes the slot id. Returns false if it was already closed.
func (c ClosedSet) Add(id int) bool {
	if c.Contains(id) {
		return false
	}
	c[id] = struct{}{}
	return true
}

// Remove reopens the slot id. Returns false if it was not closed.
func (c ClosedSet) Remove(id int) bool {
	if !c.Contains(id) {
		return false
	}
	delete(c, id)
	return true
}

// Clone returns a copy of the set
func (c ClosedSet) Clone() ClosedSet {
	out := make(ClosedSet, len(c))
	for id := range c {
		out[id] = struct{}{}
	}
	return out
}
