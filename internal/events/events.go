package events

import (
	"github.com/FThompson/DominionRandomizer/internal/cards"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// Manager (or Event Bus) manages listeners and dispatches events.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Event Types for Rendering ---

// RollStartedEvent is published once a request has passed validation, just
// before any cards are drawn.
type RollStartedEvent struct {
	Sets   []cards.GameSet
	Number int
}

// PoolReadyEvent reports the per-set candidate pool sizes after filtering.
type PoolReadyEvent struct {
	Sizes map[cards.GameSet]int
}

// KingdomGeneratedEvent carries the finished randomization result.
// The result is typed as interface{} to keep this package free of a
// dependency on the randomizer; renderers assert the concrete type.
type KingdomGeneratedEvent struct {
	Result interface{}
}
