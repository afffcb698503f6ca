package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-RideSlotService/internal/domain"
)

// last returns the last selected participant regardless of visibility
func (m *Modal) last() (domain.Participant, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.selected == nil {
		return domain.Participant{}, false
	}
	return *m.selected, true
}

func TestModal_ShowHide(t *testing.T) {
	m := NewModal()

	_, ok := m.Visible()
	assert.False(t, ok)

	john, _ := domain.DirectoryParticipant("user1")
	m.Show(john)

	p, ok := m.Visible()
	assert.True(t, ok)
	assert.Equal(t, "John D.", p.Name)

	m.Hide()
	_, ok = m.Visible()
	assert.False(t, ok)

	last, ok := m.last()
	assert.True(t, ok, "hiding keeps the last participant")
	assert.Equal(t, "John D.", last.Name)
}

func TestModal_ShowReplacesSelection(t *testing.T) {
	m := NewModal()

	john, _ := domain.DirectoryParticipant("user1")
	m.Show(john)
	m.Hide()
	m.Show(domain.CurrentViewer())

	p, ok := m.Visible()
	assert.True(t, ok)
	assert.Equal(t, "You", p.Name)
}

func TestModal_SelectionIsCopied(t *testing.T) {
	m := NewModal()
	p := domain.CurrentViewer()
	m.Show(p)

	p.Name = "Mutated"

	shown, _ := m.Visible()
	assert.Equal(t, "You", shown.Name)
}
