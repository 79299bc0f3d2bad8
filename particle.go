package fireworks

import "math"

// Particle is one visual element of a fireworks show. All three phases share
// this shape; Kind selects the tween pair and the transition taken on death.
// Particles are values: Update and Tick return new copies and never modify
// their input.
type Particle struct {
	Kind Kind
	// Initial is the position at the start of the current phase.
	Initial Vec2
	// Target is the position the phase interpolates towards.
	Target Vec2
	// Position is the last computed position.
	Position Vec2
	// CreatedAt is the Unix millisecond instant the current phase began.
	CreatedAt int64
	// Lifetime is the phase length in milliseconds. Must be positive.
	Lifetime int64
	// Rotation is a rocket's sprite heading in degrees. Zero for other kinds.
	Rotation float64
}

// Population is every particle of a show at a given tick. The order carries
// no meaning but is kept stable across ticks.
type Population []Particle

// IsAlive reports whether now falls inside the particle's current phase.
func (p Particle) IsAlive(now int64) bool {
	return now >= p.CreatedAt && now < p.CreatedAt+p.Lifetime
}

// IsDead reports whether the current phase has ended by now. A particle that
// is not yet born is neither alive nor dead.
func (p Particle) IsDead(now int64) bool {
	return now >= p.CreatedAt+p.Lifetime
}

// Progress returns the raw, unclamped fraction of the current phase elapsed
// at now. It is negative before birth and above 1 after death.
func (p Particle) Progress(now int64) float64 {
	return float64(now-p.CreatedAt) / float64(p.Lifetime)
}

// tweened returns the position the particle's tweens give for now.
func (p Particle) tweened(now int64) Vec2 {
	progress := p.Progress(now)
	dir := p.Target.Sub(p.Initial)
	tx, ty := tweens(p.Kind)
	return Vec2{
		X: p.Initial.X + dir.X*tx(progress),
		Y: p.Initial.Y + dir.Y*ty(progress),
	}
}

// heading returns the sprite rotation for travel from old to next, keeping
// last when the particle did not move.
func heading(old, next Vec2, last float64) float64 {
	dx, dy := next.X-old.X, next.Y-old.Y
	if dx == 0 && dy == 0 {
		return last
	}
	return math.Atan2(dy, dx)*180/math.Pi + 90
}

// settle returns a particle of kind k resting at at, born now.
func settle(k Kind, at Vec2, now, lifetime int64) Particle {
	return Particle{
		Kind:      k,
		Initial:   at,
		Target:    at,
		Position:  at,
		CreatedAt: now,
		Lifetime:  lifetime,
	}
}

// Visible returns the particles alive at now, the ones a renderer draws.
// Particles that are not yet born stay in the population but are skipped.
func (pop Population) Visible(now int64) []Particle {
	out := make([]Particle, 0, len(pop))
	for _, p := range pop {
		if p.IsAlive(now) {
			out = append(out, p)
		}
	}
	return out
}

// Counts holds the number of particles in each phase.
type Counts struct {
	Rockets, Stars, Poofs int
}

// Total returns the number of particles counted.
func (c Counts) Total() int {
	return c.Rockets + c.Stars + c.Poofs
}

// Count tallies the population by phase.
func (pop Population) Count() Counts {
	var c Counts
	for i := range pop {
		switch pop[i].Kind {
		case KindRocket:
			c.Rockets++
		case KindStar:
			c.Stars++
		case KindPoof:
			c.Poofs++
		}
	}
	return c
}

// Tick advances every particle of pop to now with the default engine and
// returns the new population. pop is not modified.
func Tick(pop Population, now int64) Population {
	return defaultEngine().Tick(pop, now)
}
