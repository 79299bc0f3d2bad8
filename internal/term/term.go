// Package term renders fireworks shows in a terminal with tcell. Each cell
// stands for a CellWidth×CellHeight block of the launcher's coordinate space.
package term

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/fireworks"
)

const helpText = "nothing to launch from - click anywhere or press space"

var arrows = []rune("↑↗→↘↓↙←↖")

var (
	rocketStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	starStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	poofStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
)

// Options configures a Host.
type Options struct {
	CellWidth, CellHeight float64
	TapSize               float64
	Frame                 time.Duration
	Clock                 fireworks.Clock
	Logger                *zap.Logger
}

// Host drives a launcher from terminal input and draws its shows.
type Host struct {
	screen   tcell.Screen
	launcher *fireworks.Launcher
	opts     Options
	log      *zap.Logger
	buttons  tcell.ButtonMask
}

// New wraps an initialized screen. The launcher is resized to the screen.
func New(screen tcell.Screen, l *fireworks.Launcher, opts Options) *Host {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 8
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = 16
	}
	if opts.TapSize <= 0 {
		opts.TapSize = opts.CellWidth
	}
	if opts.Frame <= 0 {
		opts.Frame = fireworks.DefaultSessionConfig.Frame
	}
	if opts.Clock == nil {
		opts.Clock = fireworks.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := &Host{screen: screen, launcher: l, opts: opts, log: opts.Logger.Named("term")}
	h.resize()
	return h
}

// Open creates and initializes the terminal screen with mouse reporting.
func Open() (tcell.Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return s, nil
}

// Run polls input alongside the frame loop until the user quits or ctx is
// done. The screen is finalized on return.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := h.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer h.screen.Fini()
		defer cancel()

		ticker := time.NewTicker(h.opts.Frame)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-events:
				if !ok || h.handleEvent(ev) {
					return nil
				}
			case <-ticker.C:
				now := h.opts.Clock()
				h.launcher.Update(now)
				h.draw(now)
			}
		}
	})

	return g.Wait()
}

// handleEvent applies one input event and reports whether to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return true
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			// Launch from the bottom center, as if a dock icon were tapped.
			cfg := h.launcher.Config()
			h.launcher.InjectTapAt(cfg.ScreenWidth/2, cfg.ScreenHeight-h.opts.CellHeight/2, h.opts.TapSize)
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'h':
			h.launcher.DismissHelp()
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && h.buttons&tcell.Button1 == 0 {
			x, y := ev.Position()
			cx, cy := h.cellCenter(x, y)
			h.launcher.InjectTapAt(cx, cy, h.opts.TapSize)
		}
		h.buttons = ev.Buttons()
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	}
	return false
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.launcher.Resize(float64(cols)*h.opts.CellWidth, float64(rows)*h.opts.CellHeight)
}

// cellCenter maps a cell to the launcher coordinate of its center.
func (h *Host) cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * h.opts.CellWidth, (float64(row) + 0.5) * h.opts.CellHeight
}

// cellOf maps a launcher coordinate to the cell containing it.
func (h *Host) cellOf(p fireworks.Vec2) (int, int) {
	return int(math.Floor(p.X / h.opts.CellWidth)), int(math.Floor(p.Y / h.opts.CellHeight))
}

func (h *Host) draw(now int64) {
	h.screen.Clear()
	cols, rows := h.screen.Size()
	for _, p := range h.launcher.Snapshot().Visible(now) {
		col, row := h.cellOf(p.Position)
		if col < 0 || row < 0 || col >= cols || row >= rows {
			continue
		}
		r, st := glyph(p)
		h.screen.SetContent(col, row, r, nil, st)
	}
	if h.launcher.ShowingHelp() {
		x := max((cols-len([]rune(helpText)))/2, 0)
		for i, r := range []rune(helpText) {
			h.screen.SetContent(x+i, rows/2, r, nil, helpStyle)
		}
	}
	h.screen.Show()
}

// glyph picks the rune and style for a particle.
func glyph(p fireworks.Particle) (rune, tcell.Style) {
	switch p.Kind {
	case fireworks.KindRocket:
		return arrow(p.Rotation), rocketStyle
	case fireworks.KindStar:
		return '*', starStyle
	default:
		return '·', poofStyle
	}
}

// arrow returns the eight-way arrow nearest a heading in degrees, where 0 is
// up and angles grow clockwise.
func arrow(deg float64) rune {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return arrows[int(math.Round(deg/45))%len(arrows)]
}
