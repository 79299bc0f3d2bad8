package term

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/goleak"

	"github.com/phanxgames/fireworks"
)

// newHost returns a host over an simulation screen of the given size. Tests
// that do not call Run finalize the screen themselves; Run does it on exit.
func newHost(t *testing.T, cols, rows int) (*Host, tcell.SimulationScreen, *fireworks.Launcher) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(cols, rows)

	e := fireworks.NewEngine(rand.New(rand.NewPCG(1, 2)))
	l := fireworks.NewLauncher(e, fireworks.DefaultLauncherConfig(1, 1))
	return New(screen, l, Options{}), screen, l
}

func countRune(s tcell.SimulationScreen, want rune) int {
	cols, rows := s.Size()
	n := 0
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _, _, _ := s.GetContent(x, y); r == want {
				n++
			}
		}
	}
	return n
}

func rowText(s tcell.SimulationScreen, row int) string {
	cols, _ := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func TestNewResizesLauncher(t *testing.T) {
	_, screen, l := newHost(t, 80, 40)
	defer screen.Fini()
	cfg := l.Config()
	if cfg.ScreenWidth != 640 || cfg.ScreenHeight != 640 {
		t.Errorf("launcher size = %vx%v, want 640x640", cfg.ScreenWidth, cfg.ScreenHeight)
	}
}

func TestDrawBurstStars(t *testing.T) {
	h, screen, l := newHost(t, 80, 40)
	defer screen.Fini()
	if _, err := l.Tap(fireworks.Rect{X: 300, Y: 600, Width: 16, Height: 16}, 0); err != nil {
		t.Fatal(err)
	}

	h.draw(0)
	if n := countRune(screen, '*'); n != 0 {
		t.Errorf("stars before burst = %d, want 0", n)
	}

	l.Update(1000)
	h.draw(1000)
	if n := countRune(screen, '*'); n != 39 {
		t.Errorf("stars after burst = %d, want 39", n)
	}
}

func TestDrawHelp(t *testing.T) {
	h, screen, l := newHost(t, 80, 24)
	defer screen.Fini()
	if _, err := l.Tap(fireworks.Rect{}, 0); err == nil {
		t.Fatal("expected an error for an empty tap")
	}
	h.draw(0)
	if got := rowText(screen, 12); !strings.Contains(got, helpText) {
		t.Errorf("row 12 = %q, want help text", got)
	}
}

func TestHandleEventMouseEdge(t *testing.T) {
	h, screen, l := newHost(t, 80, 24)
	defer screen.Fini()

	h.handleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	h.handleEvent(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	if l.Pending() != 1 {
		t.Fatalf("pending = %d, want 1 for a held button", l.Pending())
	}
	h.handleEvent(tcell.NewEventMouse(11, 5, tcell.ButtonNone, tcell.ModNone))
	h.handleEvent(tcell.NewEventMouse(11, 5, tcell.Button1, tcell.ModNone))
	if l.Pending() != 2 {
		t.Errorf("pending = %d, want 2 after a second click", l.Pending())
	}
}

func TestHandleEventKeys(t *testing.T) {
	h, screen, l := newHost(t, 80, 24)
	defer screen.Fini()

	if h.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) {
		t.Error("space should not quit")
	}
	if l.Pending() != 1 {
		t.Errorf("pending = %d, want 1 after space", l.Pending())
	}
	for _, ev := range []*tcell.EventKey{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
	} {
		if !h.handleEvent(ev) {
			t.Errorf("%v should quit", ev.Name())
		}
	}
}

func TestArrow(t *testing.T) {
	tests := map[float64]rune{
		0:   '↑',
		45:  '↗',
		90:  '→',
		180: '↓',
		270: '←',
		-45: '↖',
		359: '↑',
		400: '↗',
	}
	for deg, want := range tests {
		if got := arrow(deg); got != want {
			t.Errorf("arrow(%v) = %q, want %q", deg, got, want)
		}
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, screen, _ := newHost(t, 80, 24)
	h.opts.Frame = time.Millisecond
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background()) }()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	h, _, _ := newHost(t, 80, 24)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := h.Run(ctx); err != nil {
		t.Errorf("Run = %v, want nil", err)
	}
}
