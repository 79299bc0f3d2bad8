package fireworks

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenFunc maps normalized phase progress to an interpolation factor along
// one axis. Progress is passed through unclamped, so values outside [0, 1]
// extrapolate.
type TweenFunc func(progress float64) float64

// Linear is the identity tween used for every axis except a rocket's Y.
func Linear(progress float64) float64 {
	return progress
}

// RocketArc is the hand-fitted cubic that gives a rocket its rise-then-fall
// flight. It overshoots 1.0 mid-flight and lands near 1.0 at progress 1.
func RocketArc(progress float64) float64 {
	p := progress
	return 0.07814*p*p*p - 2.05971*p*p + 2.98091*p - 0.00138
}

// tweens returns the per-axis tween pair for a phase.
func tweens(k Kind) (x, y TweenFunc) {
	if k == KindRocket {
		return Linear, RocketArc
	}
	return Linear, Linear
}

// FromEase adapts a gween easing curve into a TweenFunc over [0, 1].
func FromEase(fn ease.TweenFunc) TweenFunc {
	return func(progress float64) float64 {
		return float64(fn(float32(progress), 0, 1, 1))
	}
}

// easings maps config-friendly names to gween easing curves.
var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-quad":     ease.InQuad,
	"out-quad":    ease.OutQuad,
	"in-out-quad": ease.InOutQuad,
	"in-cubic":    ease.InCubic,
	"out-cubic":   ease.OutCubic,
	"out-sine":    ease.OutSine,
	"out-expo":    ease.OutExpo,
	"out-back":    ease.OutBack,
	"out-bounce":  ease.OutBounce,
	"out-elastic": ease.OutElastic,
}

// Easing looks up a gween easing curve by name ("linear", "out-quad", ...).
func Easing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// Fade tweens a scalar from start to end across the particle's current phase
// using fn, for renderers that shade stars and poofs (alpha, radius). Time
// outside the phase clamps to the nearest end.
func (p Particle) Fade(now int64, start, end float64, fn ease.TweenFunc) float64 {
	if p.Lifetime <= 0 {
		return end
	}
	elapsed := now - p.CreatedAt
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > p.Lifetime {
		elapsed = p.Lifetime
	}
	tw := gween.New(float32(start), float32(end), float32(p.Lifetime), fn)
	v, _ := tw.Set(float32(elapsed))
	return float64(v)
}
