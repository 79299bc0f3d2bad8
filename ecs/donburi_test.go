package ecs

import (
	"testing"

	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []fireworks.PhaseEvent
	PhaseEventType.Subscribe(world, func(w donburi.World, e fireworks.PhaseEvent) {
		received = append(received, e)
	})

	sink.EmitEvent(fireworks.PhaseEvent{
		Type:     fireworks.EventBurst,
		At:       1000,
		Position: fireworks.Vec2{X: 100, Y: 200},
	})
	sink.EmitEvent(fireworks.PhaseEvent{Type: fireworks.EventExpire, At: 2100})

	// Events are queued until processed.
	PhaseEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != fireworks.EventBurst || e0.At != 1000 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Position.X != 100 || e0.Position.Y != 200 {
		t.Errorf("event 0 position: %v", e0.Position)
	}
	if received[1].Type != fireworks.EventExpire {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_EngineBursts(t *testing.T) {
	world := donburi.NewWorld()
	engine := fireworks.NewEngine(nil)
	engine.Sink = NewDonburiSink(world)

	var bursts int
	PhaseEventType.Subscribe(world, func(w donburi.World, e fireworks.PhaseEvent) {
		if e.Type == fireworks.EventBurst {
			bursts++
		}
	})

	pop, err := engine.Generate(fireworks.Rect{Width: 10, Height: 10}, fireworks.Rect{Width: 150, Height: 50}, 0)
	if err != nil {
		t.Fatal(err)
	}
	engine.Tick(pop, 1000)
	events.ProcessAllEvents(world)

	if bursts != len(pop) {
		t.Errorf("bursts = %d, want %d", bursts, len(pop))
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	PhaseEventType.Subscribe(world, func(w donburi.World, e fireworks.PhaseEvent) {
		count1++
	})
	PhaseEventType.Subscribe(world, func(w donburi.World, e fireworks.PhaseEvent) {
		count2++
	})

	sink.EmitEvent(fireworks.PhaseEvent{Type: fireworks.EventFizzle})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
