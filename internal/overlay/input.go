package overlay

import "github.com/phanxgames/fireworks"

// pointer is one mouse or touch contact sampled in a frame. id 0 is the
// mouse; touches use their ebiten touch ID offset by one.
type pointer struct {
	id   int
	x, y float64
	down bool
}

// tapDetector turns pointer samples into taps on the press edge.
type tapDetector struct {
	held map[int]bool
}

func newTapDetector() *tapDetector {
	return &tapDetector{held: make(map[int]bool)}
}

// observe returns the positions of pointers that went down this frame.
// Pointers missing from samples count as released.
func (d *tapDetector) observe(samples []pointer) []fireworks.Vec2 {
	var taps []fireworks.Vec2
	seen := make(map[int]bool, len(samples))
	for _, s := range samples {
		if !s.down {
			continue
		}
		seen[s.id] = true
		if !d.held[s.id] {
			taps = append(taps, fireworks.Vec2{X: s.x, Y: s.y})
		}
	}
	d.held = seen
	return taps
}
