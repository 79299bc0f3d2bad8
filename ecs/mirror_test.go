package ecs

import (
	"testing"

	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
)

func TestMirrorSync(t *testing.T) {
	world := donburi.NewWorld()
	m := NewMirror(world)

	engine := fireworks.NewEngine(nil)
	pop, err := engine.Generate(fireworks.Rect{Width: 10, Height: 10}, fireworks.Rect{Width: 150, Height: 50}, 0)
	if err != nil {
		t.Fatal(err)
	}

	m.Sync(pop)
	if m.Len() != len(pop) || world.Len() != len(pop) {
		t.Fatalf("entities = %d (world %d), want %d", m.Len(), world.Len(), len(pop))
	}
	if got := CountKind(world, fireworks.KindRocket); got != len(pop) {
		t.Errorf("rockets = %d, want %d", got, len(pop))
	}

	pop = engine.Tick(pop, 1000)
	m.Sync(pop)
	if got := CountKind(world, fireworks.KindStar); got != len(pop) {
		t.Errorf("stars = %d, want %d", got, len(pop))
	}
	if got := CountKind(world, fireworks.KindRocket); got != 0 {
		t.Errorf("rockets = %d after burst, want 0", got)
	}
}

func TestMirrorShrinks(t *testing.T) {
	world := donburi.NewWorld()
	m := NewMirror(world)

	m.Sync(fireworks.Population{
		{Kind: fireworks.KindPoof, Lifetime: 200},
		{Kind: fireworks.KindPoof, Lifetime: 200},
		{Kind: fireworks.KindStar, Lifetime: 800},
	})
	m.Sync(fireworks.Population{{Kind: fireworks.KindStar, Lifetime: 800}})
	if m.Len() != 1 || world.Len() != 1 {
		t.Fatalf("entities = %d (world %d), want 1", m.Len(), world.Len())
	}
	if got := CountKind(world, fireworks.KindPoof); got != 0 {
		t.Errorf("poofs = %d, want 0", got)
	}

	m.Clear()
	if world.Len() != 0 {
		t.Errorf("world has %d entities after Clear", world.Len())
	}
}
