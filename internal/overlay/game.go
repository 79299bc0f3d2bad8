// Package overlay hosts a fireworks launcher in an ebiten window. A click or
// touch launches a show from the pressed point.
package overlay

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/phanxgames/fireworks"
)

const helpText = "Nothing to launch from.\nClick or tap anywhere to start a show."

// Options configures a Game.
type Options struct {
	Width, Height int
	Title         string
	Transparent   bool
	ShowStats     bool
	ScreenshotDir string
	// TapSize is the side of the square launched from around the pointer.
	TapSize float64
	Style   Style
	Clock   fireworks.Clock
	Logger  *zap.Logger
}

// Game implements ebiten.Game around a fireworks.Launcher.
type Game struct {
	launcher *fireworks.Launcher
	opts     Options
	log      *zap.Logger
	taps     *tapDetector
	stats    *stats
	shots    []string
	w, h     int
}

// NewGame wraps l. Zero option fields take usable defaults.
func NewGame(l *fireworks.Launcher, opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = fireworks.SystemClock
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.TapSize <= 0 {
		opts.TapSize = 48
	}
	if opts.Style.StarEase == nil {
		opts.Style = DefaultStyle(nil, nil)
	}
	g := &Game{
		launcher: l,
		opts:     opts,
		log:      opts.Logger.Named("overlay"),
		taps:     newTapDetector(),
		w:        opts.Width,
		h:        opts.Height,
	}
	if opts.ShowStats {
		g.stats = newStats()
	}
	return g
}

// Update samples input and advances the launcher.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) && g.opts.ScreenshotDir != "" {
		g.shots = append(g.shots, "show")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.launcher.DismissHelp()
	}

	for _, at := range g.taps.observe(samplePointers()) {
		g.launcher.InjectTapAt(at.X, at.Y, g.opts.TapSize)
	}

	now := g.opts.Clock()
	g.launcher.Update(now)
	if g.stats != nil {
		g.stats.update(now, g.launcher.Snapshot().Count())
	}
	return nil
}

// Draw renders the running show, the help text and the stats panel.
func (g *Game) Draw(screen *ebiten.Image) {
	now := g.opts.Clock()
	for _, s := range Shapes(g.launcher.Snapshot(), now, g.opts.Style) {
		drawShape(screen, s)
	}
	if g.launcher.ShowingHelp() {
		ebitenutil.DebugPrintAt(screen, helpText, g.w/2-110, g.h/2-8)
	}
	if g.stats != nil {
		g.stats.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout follows the window size and keeps the launcher's band centered.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.launcher.Resize(float64(g.w), float64(g.h))
	}
	return g.w, g.h
}

func (g *Game) flushScreenshots(screen *ebiten.Image) {
	if len(g.shots) == 0 {
		return
	}
	img := capture(screen)
	for _, label := range g.shots {
		path, err := saveScreenshot(g.opts.ScreenshotDir, label, time.Now(), img)
		if err != nil {
			g.log.Warn("screenshot failed", zap.Error(err))
			continue
		}
		g.log.Info("screenshot saved", zap.String("path", path))
	}
	g.shots = g.shots[:0]
}

func drawShape(screen *ebiten.Image, s Shape) {
	switch s.Kind {
	case fireworks.KindRocket:
		vector.StrokeLine(screen,
			float32(s.Tail.X), float32(s.Tail.Y), float32(s.Center.X), float32(s.Center.Y),
			float32(s.Radius*2), s.Color, true)
	default:
		vector.DrawFilledCircle(screen, float32(s.Center.X), float32(s.Center.Y), float32(s.Radius), s.Color, true)
	}
}

// samplePointers reads the mouse and every active touch.
func samplePointers() []pointer {
	mx, my := ebiten.CursorPosition()
	out := []pointer{{
		id:   0,
		x:    float64(mx),
		y:    float64(my),
		down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}}
	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		out = append(out, pointer{id: int(id) + 1, x: float64(tx), y: float64(ty), down: true})
	}
	return out
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.opts.Title)
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	err := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: g.opts.Transparent,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("overlay: %w", err)
	}
	return nil
}
