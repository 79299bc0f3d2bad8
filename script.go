package fireworks

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// scriptStep represents a single action in a script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

// script is the top-level structure of a script document.
type script struct {
	Steps []scriptStep `yaml:"steps"`
}

// Snapshot is the launcher state recorded by a "snapshot" step.
type Snapshot struct {
	Label   string `yaml:"label"`
	At      int64  `yaml:"at"`
	Session string `yaml:"session,omitempty"`
	Rockets int    `yaml:"rockets"`
	Stars   int    `yaml:"stars"`
	Poofs   int    `yaml:"poofs"`
	Visible int    `yaml:"visible"`
	Help    bool   `yaml:"help,omitempty"`
}

// ScriptRunner sequences taps, waits and snapshots across frames for
// reproducible runs of a Launcher.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	snapshots []Snapshot
}

// LoadScript parses a script document and returns a ScriptRunner. Both YAML
// and JSON are accepted:
//
//	{"steps": [
//	  {"action": "tap", "x": 40, "y": 700, "width": 120, "height": 48},
//	  {"action": "wait", "frames": 60},
//	  {"action": "snapshot", "label": "arrived"}
//	]}
func LoadScript(data []byte) (*ScriptRunner, error) {
	var doc script
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "tap", "wait", "snapshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: doc.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Snapshots returns the states recorded so far.
func (r *ScriptRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// step advances the runner by one frame. Call before Launcher.Update.
func (r *ScriptRunner) step(l *Launcher, now int64) {
	if r.done {
		return
	}
	// Wait for pending taps to drain before advancing.
	if l.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "tap":
		l.InjectTap(Rect{X: st.X, Y: st.Y, Width: st.Width, Height: st.Height})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "snapshot":
		r.snapshots = append(r.snapshots, snapshotOf(l, st.Label, now))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && l.Pending() == 0 {
		r.done = true
	}
}

func snapshotOf(l *Launcher, label string, now int64) Snapshot {
	pop := l.Snapshot()
	c := pop.Count()
	snap := Snapshot{
		Label:   label,
		At:      now,
		Rockets: c.Rockets,
		Stars:   c.Stars,
		Poofs:   c.Poofs,
		Visible: len(pop.Visible(now)),
		Help:    l.ShowingHelp(),
	}
	if s := l.Active(); s != nil {
		snap.Session = s.ID
	}
	return snap
}

// Simulate drives l with r on a fixed frame clock starting at start, until
// the script is done and the launcher is idle or maxFrames have run. It
// returns the recorded snapshots.
func Simulate(l *Launcher, r *ScriptRunner, start int64, frame time.Duration, maxFrames int) []Snapshot {
	now := start
	step := frame.Milliseconds()
	if step <= 0 {
		step = DefaultSessionConfig.Frame.Milliseconds()
	}
	for i := 0; i < maxFrames; i++ {
		r.step(l, now)
		l.Update(now)
		if r.Done() && l.Idle() {
			break
		}
		now += step
	}
	return r.Snapshots()
}
