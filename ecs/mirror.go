package ecs

import (
	"github.com/phanxgames/fireworks"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Particle is the component holding one particle of a mirrored show.
var Particle = donburi.NewComponentType[fireworks.Particle]()

var particles = donburi.NewQuery(filter.Contains(Particle))

// Mirror keeps one donburi entity per particle of a population, so systems
// can query a running show like any other component data.
type Mirror struct {
	world    donburi.World
	entities []donburi.Entity
}

// NewMirror returns an empty mirror writing into world.
func NewMirror(world donburi.World) *Mirror {
	return &Mirror{world: world}
}

// Sync makes the mirrored entities match pop. Entities are reused across
// calls; surplus ones are removed when the population shrinks.
func (m *Mirror) Sync(pop fireworks.Population) {
	for len(m.entities) < len(pop) {
		m.entities = append(m.entities, m.world.Create(Particle))
	}
	for _, e := range m.entities[len(pop):] {
		m.world.Remove(e)
	}
	m.entities = m.entities[:len(pop)]

	for i, p := range pop {
		Particle.SetValue(m.world.Entry(m.entities[i]), p)
	}
}

// Clear removes every mirrored entity.
func (m *Mirror) Clear() {
	m.Sync(nil)
}

// Len returns the number of mirrored entities.
func (m *Mirror) Len() int {
	return len(m.entities)
}

// CountKind returns how many particle entities in world are of kind k.
func CountKind(world donburi.World, k fireworks.Kind) int {
	n := 0
	particles.Each(world, func(entry *donburi.Entry) {
		if Particle.Get(entry).Kind == k {
			n++
		}
	})
	return n
}
