package fireworks

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LauncherConfig describes the screen a launcher draws on and how it reacts
// to taps.
type LauncherConfig struct {
	ScreenWidth, ScreenHeight float64
	// BandHeight is the height of the horizontal band the formation is
	// drawn into, centered vertically.
	BandHeight float64
	// Margin is the horizontal space kept free around the band. Half of it
	// is left of the band and all of it to the right.
	Margin float64
	// Debounce is the minimum time between accepted taps. Zero accepts all.
	Debounce time.Duration
	Session  SessionConfig
	// Logger receives tap and show lifecycle logs. Nil disables logging.
	Logger *zap.Logger
}

// DefaultLauncherConfig returns the reference layout for a screen of the
// given size: a 400 px band, 20 px margin and 500 ms debounce.
func DefaultLauncherConfig(w, h float64) LauncherConfig {
	return LauncherConfig{
		ScreenWidth:  w,
		ScreenHeight: h,
		BandHeight:   400,
		Margin:       20,
		Debounce:     500 * time.Millisecond,
		Session:      DefaultSessionConfig,
	}
}

// Destination returns the rectangle the formation is laid out in.
func (c LauncherConfig) Destination() Rect {
	left := c.Margin / 2
	right := c.ScreenWidth - c.Margin
	top := c.ScreenHeight/2 - c.BandHeight/2
	bottom := c.ScreenHeight/2 + c.BandHeight/2
	return RectFromEdges(left, top, right, bottom)
}

// Launcher turns taps on screen elements into fireworks shows. It owns at
// most one running session; a new tap replaces it. A tap whose bounds are
// empty switches the launcher into its help state, which hosts render as
// instructions for enabling the tap hook.
//
// A Launcher is not safe for concurrent use. Hosts feed taps from their
// frame loop, or queue them with InjectTap.
type Launcher struct {
	engine  *Engine
	cfg     LauncherConfig
	limiter *rate.Limiter
	log     *zap.Logger

	active *Session
	help   bool
	queue  []Rect
}

// NewLauncher returns a launcher that starts shows on e.
func NewLauncher(e *Engine, cfg LauncherConfig) *Launcher {
	limit := rate.Inf
	if cfg.Debounce > 0 {
		limit = rate.Every(cfg.Debounce)
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Launcher{
		engine:  e,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, 1),
		log:     log.Named("launcher"),
	}
}

// Config returns the launcher's configuration.
func (l *Launcher) Config() LauncherConfig {
	return l.cfg
}

// Resize updates the screen size used for new shows.
func (l *Launcher) Resize(w, h float64) {
	l.cfg.ScreenWidth = w
	l.cfg.ScreenHeight = h
}

// Tap starts a show launched from bounds at now. It returns ErrDebounced
// for taps inside the debounce window and ErrNoBounds, after switching to
// the help state, when bounds has no extent.
func (l *Launcher) Tap(bounds Rect, now int64) (*Session, error) {
	if !l.limiter.AllowN(time.UnixMilli(now), 1) {
		l.log.Debug("tap debounced", zap.Int64("at", now))
		return nil, ErrDebounced
	}
	if !bounds.Sane() {
		l.help = true
		l.log.Info("tap without bounds, showing help",
			zap.Float64("width", bounds.Width), zap.Float64("height", bounds.Height))
		return nil, ErrNoBounds
	}

	s, err := l.engine.Start(bounds, l.cfg.Destination(), now, l.cfg.Session)
	if err != nil {
		return nil, fmt.Errorf("start show: %w", err)
	}
	if l.active != nil && !l.active.Done() {
		l.active.Cancel()
		l.log.Debug("show replaced", zap.String("session", l.active.ID))
	}
	l.active = s
	l.help = false
	l.log.Info("show started",
		zap.String("session", s.ID),
		zap.Int("rockets", s.Rockets()),
		zap.Float64("x", bounds.X), zap.Float64("y", bounds.Y))
	return s, nil
}

// Update processes at most one injected tap and ticks the active show to
// now. Call it once per frame.
func (l *Launcher) Update(now int64) {
	if len(l.queue) > 0 {
		tap := l.queue[0]
		copy(l.queue, l.queue[1:])
		l.queue = l.queue[:len(l.queue)-1]
		// Errors are reflected in the launcher state and logged by Tap.
		_, _ = l.Tap(tap, now)
	}

	s := l.active
	if s == nil {
		return
	}
	if s.Step(now) {
		return
	}
	l.log.Info("show finished",
		zap.String("session", s.ID),
		zap.Stringer("reason", s.Reason()),
		zap.Int64("elapsed_ms", now-s.StartedAt()))
	l.active = nil
}

// Active returns the running show, or nil.
func (l *Launcher) Active() *Session {
	return l.active
}

// Snapshot returns the population of the running show, or nil when idle.
func (l *Launcher) Snapshot() Population {
	if l.active == nil {
		return nil
	}
	return l.active.Snapshot()
}

// Idle reports whether no show is running and no tap is queued.
func (l *Launcher) Idle() bool {
	return l.active == nil && len(l.queue) == 0
}

// ShowingHelp reports whether the last tap lacked bounds.
func (l *Launcher) ShowingHelp() bool {
	return l.help
}

// DismissHelp leaves the help state.
func (l *Launcher) DismissHelp() {
	l.help = false
}
