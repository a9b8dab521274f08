package events

import (
	"sync"

	"github.com/google/uuid"
)

// Action identifies the kind of change applied to a collection row.
type Action string

const (
	ActionInsert Action = "insert"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event describes a single change to a content collection. Consumers are
// expected to re-fetch the collection rather than patch local state.
type Event struct {
	Collection string    `json:"collection"`
	Action     Action    `json:"action"`
	ItemID     uuid.UUID `json:"item_id"`
}

// Bus is an in-process change feed with per-collection subscribers. Publish
// never blocks: a subscriber that has fallen behind misses events, which is
// acceptable because events only signal "re-fetch now".
type Bus struct {
	mu   sync.Mutex
	subs map[string]map[int]chan Event
	next int
}

// NewBus creates an empty change-feed bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string]map[int]chan Event)}
}

// Subscribe registers a subscriber for one collection. The returned cancel
// function removes the subscription and closes the channel; it is safe to
// call more than once.
func (b *Bus) Subscribe(collection string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	if b.subs[collection] == nil {
		b.subs[collection] = make(map[int]chan Event)
	}
	id := b.next
	b.next++
	b.subs[collection][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[collection], id)
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber of its collection.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, ch := range b.subs[ev.Collection] {
		select {
		case ch <- ev:
		default:
		}
	}
}
