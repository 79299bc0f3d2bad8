package fireworks

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Clock returns the current time in Unix milliseconds.
type Clock func() int64

// SystemClock reads the wall clock.
func SystemClock() int64 {
	return time.Now().UnixMilli()
}

// SessionConfig bounds one show.
type SessionConfig struct {
	// Budget is the longest a show may run before it is cut off.
	Budget time.Duration
	// Frame is the tick interval used by Run.
	Frame time.Duration
}

// DefaultSessionConfig runs shows for at most five seconds at ~60 Hz.
var DefaultSessionConfig = SessionConfig{
	Budget: 5 * time.Second,
	Frame:  16 * time.Millisecond,
}

// EndReason records why a session stopped.
type EndReason uint8

const (
	EndNone      EndReason = iota // still running
	EndCleared                    // every particle finished its last phase
	EndBudget                     // the time budget ran out first
	EndCancelled                  // the host cancelled the run
)

// String returns the lowercase reason name.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "running"
	case EndCleared:
		return "cleared"
	case EndBudget:
		return "budget"
	case EndCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Session is one running show. The loop side (Step or Run) must be driven
// from a single goroutine; Snapshot, Done and Reason may be read from any
// goroutine, so a renderer can draw while the loop ticks.
type Session struct {
	// ID identifies the show in logs and traces.
	ID string

	engine  *Engine
	cfg     SessionConfig
	started int64
	rockets int

	snapshot atomic.Pointer[Population]
	reason   atomic.Uint32
}

// Start generates a population and returns a session that has already been
// ticked once at now.
func (e *Engine) Start(from, to Rect, now int64, cfg SessionConfig) (*Session, error) {
	pop, err := e.Generate(from, to, now)
	if err != nil {
		return nil, err
	}
	if cfg.Budget <= 0 {
		cfg.Budget = DefaultSessionConfig.Budget
	}
	if cfg.Frame <= 0 {
		cfg.Frame = DefaultSessionConfig.Frame
	}
	s := &Session{
		ID:      uuid.NewString(),
		engine:  e,
		cfg:     cfg,
		started: now,
		rockets: len(pop),
	}
	s.snapshot.Store(&pop)
	s.Step(now)
	return s, nil
}

// Snapshot returns the current population. The returned slice is never
// modified by the session; each Step publishes a new one.
func (s *Session) Snapshot() Population {
	return *s.snapshot.Load()
}

// StartedAt returns the generation time of the show.
func (s *Session) StartedAt() int64 {
	return s.started
}

// Rockets returns how many rockets the show launched.
func (s *Session) Rockets() int {
	return s.rockets
}

// Done reports whether the session has stopped.
func (s *Session) Done() bool {
	return s.Reason() != EndNone
}

// Reason reports why the session stopped, or EndNone while it runs.
func (s *Session) Reason() EndReason {
	return EndReason(s.reason.Load())
}

// Step ticks the population to now and publishes the result. It reports
// whether the session is still running afterwards.
func (s *Session) Step(now int64) bool {
	if s.Done() {
		return false
	}
	next := s.engine.Tick(s.Snapshot(), now)
	s.snapshot.Store(&next)

	switch {
	case len(next) == 0:
		s.finish(EndCleared)
	case now-s.started >= s.cfg.Budget.Milliseconds():
		s.finish(EndBudget)
	}
	return !s.Done()
}

// Cancel stops the session. The current snapshot stays readable.
func (s *Session) Cancel() {
	s.finish(EndCancelled)
}

func (s *Session) finish(r EndReason) {
	s.reason.CompareAndSwap(uint32(EndNone), uint32(r))
}

// Run ticks the session every Frame until it stops or ctx is cancelled,
// reading time from clock. frame, when non-nil, is called after every tick
// with the published snapshot. Run returns ctx's error on cancellation.
func (s *Session) Run(ctx context.Context, clock Clock, frame func(pop Population, now int64)) error {
	if clock == nil {
		clock = SystemClock
	}
	ticker := time.NewTicker(s.cfg.Frame)
	defer ticker.Stop()

	for !s.Done() {
		select {
		case <-ctx.Done():
			s.Cancel()
			return fmt.Errorf("session %s: %w", s.ID, ctx.Err())
		case <-ticker.C:
			now := clock()
			s.Step(now)
			if frame != nil {
				frame(s.Snapshot(), now)
			}
		}
	}
	return nil
}
