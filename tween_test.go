package fireworks

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const tweenEpsilon = 1e-9

func TestLinearBoundaries(t *testing.T) {
	for _, p := range []float64{-0.5, 0, 0.25, 1, 1.5} {
		if got := Linear(p); got != p {
			t.Errorf("Linear(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestRocketArcBoundaries(t *testing.T) {
	if got := RocketArc(0); math.Abs(got-(-0.00138)) > tweenEpsilon {
		t.Errorf("RocketArc(0) = %v, want -0.00138", got)
	}
	if got := RocketArc(1); math.Abs(got-0.99796) > tweenEpsilon {
		t.Errorf("RocketArc(1) = %v, want 0.99796", got)
	}
}

func TestRocketArcOvershootsMidFlight(t *testing.T) {
	if got := RocketArc(0.6); got <= 1 {
		t.Errorf("RocketArc(0.6) = %v, want > 1 (arc should overshoot)", got)
	}
}

func TestRocketArcUnclamped(t *testing.T) {
	// Raw progress beyond the phase is evaluated, not clamped.
	want := 0.07814*8 - 2.05971*4 + 2.98091*2 - 0.00138
	if got := RocketArc(2); math.Abs(got-want) > tweenEpsilon {
		t.Errorf("RocketArc(2) = %v, want %v", got, want)
	}
}

func TestTweensPerKind(t *testing.T) {
	tests := []struct {
		kind  Kind
		wantY float64
	}{
		{KindRocket, RocketArc(0.5)},
		{KindStar, 0.5},
		{KindPoof, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tx, ty := tweens(tt.kind)
			if got := tx(0.5); got != 0.5 {
				t.Errorf("tweenX(0.5) = %v, want 0.5", got)
			}
			if got := ty(0.5); math.Abs(got-tt.wantY) > tweenEpsilon {
				t.Errorf("tweenY(0.5) = %v, want %v", got, tt.wantY)
			}
		})
	}
}

func TestFromEaseLinear(t *testing.T) {
	fn := FromEase(ease.Linear)
	for _, p := range []float64{0, 0.25, 0.5, 1} {
		if got := fn(p); math.Abs(got-p) > 1e-6 {
			t.Errorf("FromEase(Linear)(%v) = %v, want %v", p, got, p)
		}
	}
}

func TestFromEaseOutQuad(t *testing.T) {
	fn := FromEase(ease.OutQuad)
	if got := fn(0.5); math.Abs(got-0.75) > 1e-6 {
		t.Errorf("FromEase(OutQuad)(0.5) = %v, want 0.75", got)
	}
}

func TestEasingLookup(t *testing.T) {
	if _, ok := Easing("out-quad"); !ok {
		t.Error("out-quad should be registered")
	}
	if _, ok := Easing("wobble"); ok {
		t.Error("unknown easing should not resolve")
	}
}

func TestFadeClampsToPhase(t *testing.T) {
	p := Particle{Kind: KindPoof, CreatedAt: 1000, Lifetime: 200}

	tests := []struct {
		name string
		now  int64
		want float64
	}{
		{"before birth", 900, 1},
		{"start", 1000, 1},
		{"half", 1100, 0.5},
		{"end", 1200, 0},
		{"after end", 5000, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Fade(tt.now, 1, 0, ease.Linear)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Fade(%d) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestFadeZeroLifetime(t *testing.T) {
	p := Particle{Kind: KindStar, CreatedAt: 0}
	if got := p.Fade(0, 1, 0.25, ease.Linear); got != 0.25 {
		t.Errorf("Fade with zero lifetime = %v, want end value 0.25", got)
	}
}
