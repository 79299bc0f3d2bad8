package ecs

import (
	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PhaseEventType carries fireworks phase events through a donburi world.
// Subscribe to it to react to bursts, fizzles and expiries.
var PhaseEventType = events.NewEventType[fireworks.PhaseEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink returns an EventSink that publishes to PhaseEventType in
// world. Events are delivered on the next ProcessEvents call.
func NewDonburiSink(world donburi.World) fireworks.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event fireworks.PhaseEvent) {
	PhaseEventType.Publish(s.world, event)
}
