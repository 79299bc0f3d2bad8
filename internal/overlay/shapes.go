package overlay

import (
	"image/color"
	"math"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/fireworks"
)

// Style controls how particles are shaded.
type Style struct {
	StarEase ease.TweenFunc
	PoofEase ease.TweenFunc

	RocketColor color.NRGBA
	StarColor   color.NRGBA
	PoofColor   color.NRGBA

	RocketLength float64
	RocketWidth  float64
	StarRadius   float64
	PoofRadius   float64
}

// DefaultStyle returns the stock palette with the given easings. A nil
// easing falls back to linear.
func DefaultStyle(star, poof ease.TweenFunc) Style {
	if star == nil {
		star = ease.Linear
	}
	if poof == nil {
		poof = ease.Linear
	}
	return Style{
		StarEase:     star,
		PoofEase:     poof,
		RocketColor:  color.NRGBA{R: 255, G: 214, B: 120, A: 255},
		StarColor:    color.NRGBA{R: 255, G: 250, B: 220, A: 255},
		PoofColor:    color.NRGBA{R: 255, G: 120, B: 60, A: 255},
		RocketLength: 14,
		RocketWidth:  3,
		StarRadius:   6,
		PoofRadius:   10,
	}
}

// Shape is one drawable primitive derived from a particle.
type Shape struct {
	Kind   fireworks.Kind
	Center fireworks.Vec2
	// Tail is the far end of a rocket streak. Unused for circles.
	Tail   fireworks.Vec2
	Radius float64
	Color  color.NRGBA
}

// Shapes converts the particles visible at now into drawables.
func Shapes(pop fireworks.Population, now int64, st Style) []Shape {
	visible := pop.Visible(now)
	out := make([]Shape, 0, len(visible))
	for _, p := range visible {
		out = append(out, shapeOf(p, now, st))
	}
	return out
}

func shapeOf(p fireworks.Particle, now int64, st Style) Shape {
	s := Shape{Kind: p.Kind, Center: p.Position}
	switch p.Kind {
	case fireworks.KindRocket:
		// Rotation 0 points up the screen; the streak trails behind.
		rad := (p.Rotation - 90) * math.Pi / 180
		dir := fireworks.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
		s.Tail = p.Position.Sub(dir.Scale(st.RocketLength))
		s.Radius = st.RocketWidth / 2
		s.Color = st.RocketColor
	case fireworks.KindStar:
		s.Radius = p.Fade(now, 1, st.StarRadius, st.StarEase)
		s.Color = st.StarColor
	case fireworks.KindPoof:
		s.Radius = p.Fade(now, st.StarRadius, st.PoofRadius, st.PoofEase)
		s.Color = withAlpha(st.PoofColor, p.Fade(now, 1, 0, st.PoofEase))
	}
	return s
}

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	a = min(max(a, 0), 1)
	c.A = uint8(math.Round(float64(c.A) * a))
	return c
}
