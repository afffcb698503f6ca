package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RideSlotService/internal/service/page"
	generateSlots "github.com/m04kA/SMC-RideSlotService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-RideSlotService/pkg/logger"
	"github.com/m04kA/SMC-RideSlotService/pkg/metrics"
)

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type nopScheduler struct {
	stopped int
}

func (s *nopScheduler) Start(time.Duration, func()) {}
func (s *nopScheduler) Stop()                       { s.stopped++ }

type sessionCounter struct {
	open int
}

func (c *sessionCounter) SessionOpened() { c.open++ }
func (c *sessionCounter) SessionClosed() { c.open-- }

func newRegistry(clock *manualClock) (*Registry, *sessionCounter) {
	log := logger.NewNop()
	factory := func() *page.Page {
		generator := generateSlots.NewUseCase(generateSlots.DefaultOptions(), log)
		var recorder *metrics.Metrics
		return page.New(generator, &nopScheduler{}, recorder, log, page.Options{})
	}
	counter := &sessionCounter{}
	return NewRegistry(factory, 30*time.Minute, counter, log).WithTimeProvider(clock), counter
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	r, counter := newRegistry(&manualClock{now: time.Now()})

	idA, pageA := r.Create("taxi")
	idB, pageB := r.Create("taxi")
	require.NotEqual(t, idA, idB)

	require.NoError(t, pageA.BookSlot(1))

	assert.Len(t, pageA.View().Slots[1].Participants, 1)
	assert.Empty(t, pageB.View().Slots[1].Participants)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, counter.open)

	got, ok := r.Get(idA)
	require.True(t, ok)
	assert.Same(t, pageA, got)
}

func TestRegistry_GetUnknown(t *testing.T) {
	r, _ := newRegistry(&manualClock{now: time.Now()})

	_, ok := r.Get("not-a-uuid")
	assert.False(t, ok)

	_, ok = r.Get("6f1c1c1e-5a55-4a3c-9b7c-1d0f6e2b8a11")
	assert.False(t, ok)
}

func TestRegistry_SweepUnmountsIdlePages(t *testing.T) {
	clock := &manualClock{now: time.Now()}
	r, counter := newRegistry(clock)

	idle, idlePage := r.Create("taxi")
	active, activePage := r.Create("walking")

	clock.Advance(20 * time.Minute)
	_, ok := r.Get(active)
	require.True(t, ok)

	clock.Advance(15 * time.Minute)
	assert.Equal(t, 1, r.Sweep())

	_, ok = r.Get(idle)
	assert.False(t, ok)
	assert.False(t, idlePage.Mounted())
	assert.True(t, activePage.Mounted())
	assert.Equal(t, 1, counter.open)
}

func TestRegistry_Close(t *testing.T) {
	r, counter := newRegistry(&manualClock{now: time.Now()})
	_, p := r.Create("taxi")

	r.Close()

	assert.Zero(t, r.Len())
	assert.False(t, p.Mounted())
	assert.Zero(t, counter.open)
}
