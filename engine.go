package fireworks

import (
	"math"
	"math/rand/v2"
	"sync"
)

// Source supplies uniform random numbers in [0, 1). *rand.Rand from
// math/rand/v2 satisfies it; tests pin values with a scripted source.
type Source interface {
	Float64() float64
}

// Timing holds every duration of a show, in milliseconds.
type Timing struct {
	// Flight is the time from generation until every rocket arrives.
	Flight int64
	// LaunchStagger is the upper bound of the random launch delay.
	LaunchStagger int64
	// Star is the range a star's lifetime is drawn from.
	Star Range
	// Poof is the fixed lifetime of a poof.
	Poof int64
}

// DefaultTiming is the reference timing: one second of flight with launches
// staggered over the first quarter, 750-1000 ms stars and 200 ms poofs.
var DefaultTiming = Timing{
	Flight:        1000,
	LaunchStagger: 250,
	Star:          Range{Min: 750, Max: 1000},
	Poof:          200,
}

// Engine generates and advances populations. The zero value is not usable;
// build one with NewEngine. An Engine holds no per-show state and may be
// shared by consecutive sessions, but not used from several goroutines at
// once unless Rand is safe for concurrent use.
type Engine struct {
	Rand      Source
	Timing    Timing
	Formation Formation
	// Sink, when set, receives a PhaseEvent for every transition Tick makes.
	Sink EventSink
}

// NewEngine returns an engine with DefaultTiming, DefaultFormation and a
// PCG source seeded from the runtime. Pass a nil src to use that default.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		Rand:      src,
		Timing:    DefaultTiming,
		Formation: DefaultFormation,
	}
}

var defaultEngine = sync.OnceValue(func() *Engine {
	return NewEngine(globalSource{})
})

// globalSource draws from math/rand/v2's top-level generator, which is safe
// for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Random returns a random value in [Min, Max], rounded to whole milliseconds.
func (r Range) Random(src Source) int64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + int64(math.Round(src.Float64()*float64(r.Max-r.Min)))
}

// Update advances p to now. It returns the particle's next state and false
// when the particle has finished its last phase and should be dropped.
//
// A dead rocket becomes a star and a dead star becomes a poof, both resting
// at the old target and born now. An alive particle moves along its tweens.
// A particle that is not yet born is returned unchanged.
func (e *Engine) Update(p Particle, now int64) (Particle, bool) {
	if p.IsDead(now) {
		switch p.Kind {
		case KindRocket:
			next := settle(KindStar, p.Target, now, e.Timing.Star.Random(e.Rand))
			e.emit(EventBurst, p, now)
			return next, true
		case KindStar:
			next := settle(KindPoof, p.Target, now, e.Timing.Poof)
			e.emit(EventFizzle, p, now)
			return next, true
		default:
			e.emit(EventExpire, p, now)
			return Particle{}, false
		}
	}
	if !p.IsAlive(now) {
		return p, true
	}

	next := p
	next.Position = p.tweened(now)
	if p.Kind == KindRocket {
		next.Rotation = heading(p.Position, next.Position, p.Rotation)
	}
	return next, true
}

// Tick advances every particle of pop to now and returns the new population
// with expired poofs removed. pop is not modified.
func (e *Engine) Tick(pop Population, now int64) Population {
	out := make(Population, 0, len(pop))
	for _, p := range pop {
		if next, ok := e.Update(p, now); ok {
			out = append(out, next)
		}
	}
	return out
}

func (e *Engine) emit(t PhaseEventType, p Particle, now int64) {
	if e.Sink == nil {
		return
	}
	e.Sink.EmitEvent(PhaseEvent{Type: t, At: now, Position: p.Target})
}
