// Package audio plays a short tone when a rocket bursts into a star.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/fireworks"
)

const sampleRate = beep.SampleRate(44100)

// Player is a fireworks.EventSink that sounds one pop per burst instant.
// A formation bursts many rockets on the same millisecond; those collapse
// into a single sound.
type Player struct {
	Frequency float64
	Length    time.Duration

	mu     sync.Mutex
	lastAt int64
	played bool
	play   func(...beep.Streamer)
}

// NewPlayer opens the system speaker and returns a player writing to it.
func NewPlayer(freq float64, length time.Duration) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	return newPlayer(freq, length, speaker.Play), nil
}

func newPlayer(freq float64, length time.Duration, play func(...beep.Streamer)) *Player {
	return &Player{Frequency: freq, Length: length, play: play}
}

// EmitEvent implements fireworks.EventSink.
func (p *Player) EmitEvent(e fireworks.PhaseEvent) {
	if e.Type != fireworks.EventBurst {
		return
	}
	p.mu.Lock()
	if p.played && p.lastAt == e.At {
		p.mu.Unlock()
		return
	}
	p.lastAt, p.played = e.At, true
	p.mu.Unlock()

	s, err := Pop(p.Frequency, p.Length)
	if err != nil {
		return
	}
	p.play(s)
}

// Pop builds a sine tone of the given length that fades to silence.
func Pop(freq float64, length time.Duration) (beep.Streamer, error) {
	if freq <= 0 {
		return nil, fmt.Errorf("audio: frequency %v must be positive", freq)
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(length)
	if n <= 0 {
		return nil, fmt.Errorf("audio: length %v too short", length)
	}
	faded := &decay{Streamer: beep.Take(n, tone), total: n}
	return &effects.Volume{Streamer: faded, Base: 2, Volume: -1}, nil
}

// decay scales its input linearly from full volume to zero over total samples.
type decay struct {
	beep.Streamer
	pos, total int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1 - float64(d.pos)/float64(d.total)
		samples[i][0] *= g
		samples[i][1] *= g
		d.pos++
	}
	return n, ok
}
