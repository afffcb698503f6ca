package status

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// Evaluation classification of one slot at a given moment
type Evaluation struct {
	Status  string
	Full    bool
	Expired bool
	Closed  bool
	Actions Actions
}

// Actions availability of the slot card buttons
type Actions struct {
	BookLabel      string
	BookDisabled   bool
	ShowClose      bool
	CloseDisabled  bool
	ShowReopen     bool
	ReopenDisabled bool
}

// IsFull returns true if the slot participants reach its capacity
func IsFull(slot *domain.Slot) bool {
	return slot.IsFull()
}

// IsExpired returns true if the slot starts before now
func IsExpired(now time.Time, slot *domain.Slot) bool {
	return slot.IsExpired(now)
}

// IsClosed returns true if the slot id is in the closed set
func IsClosed(slot *domain.Slot, closed domain.ClosedSet) bool {
	return closed.Contains(slot.ID)
}

// CanBook returns true if a booking of the slot would be applied
func CanBook(now time.Time, slot *domain.Slot, closed domain.ClosedSet) bool {
	return !IsExpired(now, slot) && !IsFull(slot) && !IsClosed(slot, closed)
}

// Status returns the status text of the slot.
// Closed overrides full, full overrides expired, expired overrides the remaining count.
func Status(now time.Time, slot *domain.Slot, closed domain.ClosedSet) string {
	switch {
	case IsClosed(slot, closed):
		return domain.StatusClosed
	case IsFull(slot):
		return domain.StatusFull
	case IsExpired(now, slot):
		return domain.StatusExpired
	default:
		return fmt.Sprintf(domain.StatusSpotsLeftF, slot.RemainingText())
	}
}

// Evaluate classifies the slot and derives its button states.
// An expired slot that is closed offers no enabled action.
func Evaluate(now time.Time, slot *domain.Slot, closed domain.ClosedSet) Evaluation {
	full := IsFull(slot)
	expired := IsExpired(now, slot)
	isClosed := IsClosed(slot, closed)

	label := domain.LabelBookNow
	if full {
		label = domain.LabelSlotFull
	}

	return Evaluation{
		Status:  Status(now, slot, closed),
		Full:    full,
		Expired: expired,
		Closed:  isClosed,
		Actions: Actions{
			BookLabel:      label,
			BookDisabled:   !CanBook(now, slot, closed),
			ShowClose:      !full && !isClosed,
			CloseDisabled:  expired,
			ShowReopen:     full || isClosed,
			ReopenDisabled: expired,
		},
	}
}
