package domain

import (
	"strconv"
	"strings"
)

// Capacity maximum number of participants in a slot. Negative means unbounded.
type Capacity int

// Unbounded capacity of modes without a seat limit (walking)
const Unbounded Capacity = -1

// IsUnbounded returns true if the capacity has no limit
func (c Capacity) IsUnbounded() bool {
	return c < 0
}

// Reached returns true if n participants fill the capacity
func (c Capacity) Reached(n int) bool {
	if c.IsUnbounded() {
		return false
	}
	return n >= int(c)
}

// Remaining returns the free seats left after n participants as display text
func (c Capacity) Remaining(n int) string {
	if c.IsUnbounded() {
		return "Infinity"
	}
	return strconv.Itoa(int(c) - n)
}

func (c Capacity) String() string {
	if c.IsUnbounded() {
		return "Infinity"
	}
	return strconv.Itoa(int(c))
}

// Known mode keys
const (
	ModeTaxi         = "taxi"
	ModeAutoRickshaw = "auto rickshaw"
	ModeWalking      = "walking"
)

// Mode transport mode with its static attributes
type Mode struct {
	Key      string
	Capacity Capacity
	Icon     string
	Color    string
	Known    bool
}

var modes = map[string]Mode{
	ModeTaxi: {
		Key:      ModeTaxi,
		Capacity: 4,
		Icon:     "🚕",
		Color:    "#FFD100",
		Known:    true,
	},
	ModeAutoRickshaw: {
		Key:      ModeAutoRickshaw,
		Capacity: 3,
		Icon:     "🛺",
		Color:    "#00A36C",
		Known:    true,
	},
	ModeWalking: {
		Key:      ModeWalking,
		Capacity: Unbounded,
		Icon:     "🚶",
		Color:    "#FF6B6B",
		Known:    true,
	},
}

// LookupMode resolves a mode query value. Matching is exact except that
// "-" and "_" stand for a space ("auto-rickshaw").
// Unknown or empty keys fall back to unbounded capacity with no icon or color;
// the raw key is kept for the page title.
func LookupMode(key string) Mode {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(key)

	if m, ok := modes[normalized]; ok {
		return m
	}

	return Mode{
		Key:      key,
		Capacity: Unbounded,
	}
}

// MetricLabel returns a bounded label value for metrics
func (m Mode) MetricLabel() string {
	if !m.Known {
		return "unknown"
	}
	return m.Key
}

// Modes returns all known modes in display order
func Modes() []Mode {
	return []Mode{modes[ModeTaxi], modes[ModeAutoRickshaw], modes[ModeWalking]}
}
