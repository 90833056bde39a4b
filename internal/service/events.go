package service

import (
	"sync"

	"github.com/google/uuid"
)

// EventType defines the type of event
type EventType string

const (
	EventEntityCreated    EventType = "entity_created"
	EventEntityUpdated    EventType = "entity_updated"
	EventEntityDeleted    EventType = "entity_deleted"
	EventEntitiesCleared  EventType = "entities_cleared"
	EventSnapshotImported EventType = "snapshot_imported"
)

// Event represents an event that occurred in the system
type Event struct {
	ID       string      `json:"id"`
	Type     EventType   `json:"type"`
	Entity   string      `json:"entity,omitempty"`
	EntityID int         `json:"entity_id,omitempty"`
	Payload  interface{} `json:"payload,omitempty"`
}

// EventBus allows publishing and subscribing to events
type EventBus struct {
	mu          sync.RWMutex
	subscribers []chan<- Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make([]chan<- Event, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (eb *EventBus) Subscribe(ch chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers = append(eb.subscribers, ch)
}

// Publish sends an event to all subscribers. Events without an id get a
// fresh one.
func (eb *EventBus) Publish(event Event) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Subscriber is slow, skip
		}
	}
}
