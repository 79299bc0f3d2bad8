package fireworks

import "fmt"

// Generate lays out a show with the default engine: one rocket per set
// formation cell, launched from inside from towards its cell in to. now is
// the generation time in Unix milliseconds.
func Generate(from, to Rect, now int64) (Population, error) {
	return defaultEngine().Generate(from, to, now)
}

// Generate lays out one rocket per set formation cell. Each rocket starts at
// a random point inside from and targets the top-left corner of its cell in
// to's grid. Launches are staggered by a random delay, and the rocket's
// lifetime is shortened by that same delay, so every rocket arrives at
// now+Timing.Flight.
//
// from is not validated. to must have a positive extent.
func (e *Engine) Generate(from, to Rect, now int64) (Population, error) {
	if !to.Sane() {
		return nil, fmt.Errorf("generate into %v: %w", to, ErrDegenerateRect)
	}
	f := e.Formation
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	cellW := to.Width / float64(f.Width)
	cellH := to.Height / float64(f.Rows())
	stagger := Range{Min: 0, Max: e.Timing.LaunchStagger}

	pop := make(Population, 0, f.Popcount())
	for i, c := range f.Cells {
		if c == 0 {
			continue
		}
		col := i % f.Width
		row := i / f.Width

		delay := stagger.Random(e.Rand)
		start := randomPoint(from, e.Rand)
		pop = append(pop, Particle{
			Kind:    KindRocket,
			Initial: start,
			Target: Vec2{
				X: to.X + float64(col)*cellW,
				Y: to.Y + float64(row)*cellH,
			},
			Position:  start,
			CreatedAt: now + delay,
			Lifetime:  e.Timing.Flight - delay,
		})
	}
	return pop, nil
}

// randomPoint returns a uniformly distributed point inside r.
func randomPoint(r Rect, src Source) Vec2 {
	x := r.X + src.Float64()*r.Width
	y := r.Y + src.Float64()*r.Height
	return Vec2{x, y}
}

// ArrivalTime returns the instant every rocket of a show generated at now
// reaches its formation cell.
func (t Timing) ArrivalTime(now int64) int64 {
	return now + t.Flight
}

// LastPossibleEnd returns the latest instant a show generated at now can
// still have particles, assuming ticks land exactly on phase ends.
func (t Timing) LastPossibleEnd(now int64) int64 {
	return now + t.Flight + max(t.Star.Min, t.Star.Max) + t.Poof
}
