package fireworks

import "errors"

// Vec2 is a 2D vector used for positions and directions throughout the API.
// Screen space: origin at the top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// RectFromEdges builds a Rect from left, top, right and bottom edge
// coordinates, the shape in which platform hooks usually report view bounds.
func RectFromEdges(left, top, right, bottom float64) Rect {
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Sane reports whether the rectangle has a positive extent on both axes.
func (r Rect) Sane() bool {
	return r.Width > 0 && r.Height > 0
}

// Range is a general-purpose min/max range, in milliseconds when used for
// lifetimes.
type Range struct {
	Min, Max int64
}

// Kind identifies the lifecycle phase of a Particle.
type Kind uint8

const (
	KindRocket Kind = iota // travelling from the tap towards its formation cell
	KindStar               // burst at the formation cell
	KindPoof               // short fade-out after the star
)

// String returns the lowercase phase name.
func (k Kind) String() string {
	switch k {
	case KindRocket:
		return "rocket"
	case KindStar:
		return "star"
	case KindPoof:
		return "poof"
	default:
		return "unknown"
	}
}

var (
	// ErrDegenerateRect is returned by Generate when the destination rectangle
	// has a non-positive width or height.
	ErrDegenerateRect = errors.New("fireworks: destination rectangle has no extent")

	// ErrNoBounds is returned by Launcher.Tap when the tapped element reported
	// empty bounds. The launcher switches to its help state instead.
	ErrNoBounds = errors.New("fireworks: tap has no usable bounds")

	// ErrDebounced is returned by Launcher.Tap for taps that arrive inside the
	// debounce window of the previous one.
	ErrDebounced = errors.New("fireworks: tap debounced")

	// ErrBadFormation is returned when a formation bitmap cannot be used.
	ErrBadFormation = errors.New("fireworks: invalid formation")
)
