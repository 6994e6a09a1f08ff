package game

import "robot/internal/anim"

type EventType int

const (
	EventModeChanged EventType = iota // controller moved to another mode
	EventRedraw                       // frame content changed outside a tick
)

type Event struct {
	Type       EventType
	Transition anim.Transition
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
