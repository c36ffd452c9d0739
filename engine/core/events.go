package core

import "sync"

// Event is a request for the engine, queued by any goroutine and handled
// on the update goroutine.
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtScaleAdjust EventType = iota // input.ScaleAdjust
	EvtRotate                       // input.RotateBy
	EvtGesture                      // gesture.Label
	EvtShapeSelect                  // shape.Shape
	EvtImageLoaded                  // *imagecloud.Cloud, already published
	EvtImageFailed                  // error
	EvtRebuild                      // nil
)

// EventBus dispatches events to listeners. Emit is safe from any
// goroutine; On and Dispatch belong to the update goroutine.
type EventBus struct {
	listeners map[EventType][]EventHandler

	mu    sync.Mutex
	queue []Event
	spare []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.mu.Lock()
	eb.queue = append(eb.queue, e)
	eb.mu.Unlock()
}

// Pending returns the number of queued events.
func (eb *EventBus) Pending() int {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	return len(eb.queue)
}

// Dispatch processes all events queued so far. Events emitted by
// handlers wait for the next call.
func (eb *EventBus) Dispatch() int {
	eb.mu.Lock()
	batch := eb.queue
	eb.queue = eb.spare[:0]
	eb.mu.Unlock()

	for _, e := range batch {
		for _, h := range eb.listeners[e.Type] {
			h(e)
		}
	}

	for i := range batch {
		batch[i] = Event{}
	}
	eb.mu.Lock()
	eb.spare = batch[:0]
	eb.mu.Unlock()
	return len(batch)
}
