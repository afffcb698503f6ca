package contact

import (
	"sync"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// Modal transient state of the contact-info modal
type Modal struct {
	mu       sync.RWMutex
	selected *domain.Participant
	visible  bool
}

// NewModal returns a hidden modal with no selection
func NewModal() *Modal {
	return &Modal{}
}

// Show selects the participant and opens the modal
func (m *Modal) Show(p domain.Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.selected = &p
	m.visible = true
}

// Hide closes the modal. The last selected participant is kept.
func (m *Modal) Hide() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.visible = false
}

// Visible returns the participant shown in the modal.
// ok is false while the modal is hidden or nothing was selected yet.
func (m *Modal) Visible() (p domain.Participant, ok bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.visible || m.selected == nil {
		return domain.Participant{}, false
	}
	return *m.selected, true
}
