package fireworks

// InjectTap queues a tap on an element with the given bounds. The tap is
// consumed by the next Update call; one queued tap is processed per frame.
func (l *Launcher) InjectTap(bounds Rect) {
	l.queue = append(l.queue, bounds)
}

// InjectTapAt queues a tap on a size×size element centered on (x, y), for
// hosts that only know the pointer position.
func (l *Launcher) InjectTapAt(x, y, size float64) {
	l.InjectTap(Rect{X: x - size/2, Y: y - size/2, Width: size, Height: size})
}

// Pending returns the number of queued taps.
func (l *Launcher) Pending() int {
	return len(l.queue)
}
