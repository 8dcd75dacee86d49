package cluster

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"sched-sim/internal/core"
	"sched-sim/internal/schedulers"
)

const (
	TopicProcesses        = "processes"
	TopicNodeStatus       = "node-status"
	TopicProcessCompleted = "process-completed"
)

const (
	StatusIdle = "idle"
	StatusBusy = "busy"
)

// Event is the envelope for everything published on the bus.
type Event struct {
	ID        uuid.UUID
	RunID     uuid.UUID
	Type      string
	NodeID    string
	Timestamp time.Time
	Data      interface{}
}

// WorkEvent hands a node its partition of the workload.
type WorkEvent struct {
	Policy    schedulers.Policy
	Processes []core.Process
}

// StatusEvent reports a node going busy or idle.
type StatusEvent struct {
	Status string
}

// CompletedEvent carries one finished process and the slices it ran in.
type CompletedEvent struct {
	Process core.Process
	Slices  core.Timeline
}

func newEvent(runID uuid.UUID, eventType, nodeID string, data interface{}) Event {
	return Event{
		ID:        uuid.New(),
		RunID:     runID,
		Type:      eventType,
		NodeID:    nodeID,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventBus fans events out to subscribers of a topic. Publish blocks until
// every subscriber has taken the event.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan<- Event
	closed      bool
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan<- Event),
	}
}

// Subscribe adds a subscriber for the given event type.
func (eb *EventBus) Subscribe(eventType string, subscriber chan<- Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.subscribers[eventType] = append(eb.subscribers[eventType], subscriber)
}

// Publish sends an event to every subscriber of its type. Events published
// after Close are dropped.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	if eb.closed {
		return
	}
	for _, subscriber := range eb.subscribers[event.Type] {
		subscriber <- event
	}
}

// Close stops delivery. Subscriber channels are owned by their creators and
// are not closed here.
func (eb *EventBus) Close() {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.closed = true
	eb.subscribers = make(map[string][]chan<- Event)
}
