package fireworks

// PhaseEventType identifies a lifecycle transition.
type PhaseEventType uint8

const (
	EventBurst  PhaseEventType = iota // a rocket arrived and became a star
	EventFizzle                       // a star ended and became a poof
	EventExpire                       // a poof ended and left the population
)

// String returns the lowercase event name.
func (t PhaseEventType) String() string {
	switch t {
	case EventBurst:
		return "burst"
	case EventFizzle:
		return "fizzle"
	case EventExpire:
		return "expire"
	default:
		return "unknown"
	}
}

// PhaseEvent describes one transition observed by Engine.Tick.
type PhaseEvent struct {
	Type PhaseEventType
	// At is the tick time the transition was observed, in Unix milliseconds.
	At int64
	// Position is where the transition happened (the particle's target).
	Position Vec2
}

// EventSink receives phase events from an Engine. Hosts use it for sound
// cues or to forward events into an ECS world (see the ecs subpackage).
// EmitEvent is called synchronously from Tick and must not block.
type EventSink interface {
	EmitEvent(event PhaseEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(event PhaseEvent)

// EmitEvent calls f(event).
func (f EventSinkFunc) EmitEvent(event PhaseEvent) { f(event) }

// MultiSink fans events out to several sinks in order. Nil entries are skipped.
type MultiSink []EventSink

// EmitEvent forwards event to every sink.
func (m MultiSink) EmitEvent(event PhaseEvent) {
	for _, s := range m {
		if s != nil {
			s.EmitEvent(event)
		}
	}
}
