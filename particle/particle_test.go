package particle

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/rng"
	"github.com/lucasb-eyer/go-colorful"
)

func inPalette(c colorful.Color) bool {
	for _, p := range Palette {
		if p == c {
			return true
		}
	}
	return false
}

// TestNewBurstRanges verifies every particle field stays in its documented range
func TestNewBurstRanges(t *testing.T) {
	anchor := Point{X: 40, Y: 10}
	burst := NewBurst(anchor, 20, rng.New(11))

	if len(burst.Particles) != 20 {
		t.Fatalf("Expected 20 particles, got %d", len(burst.Particles))
	}
	if burst.Anchor != anchor {
		t.Errorf("Expected anchor %v, got %v", anchor, burst.Anchor)
	}
	if burst.Lifetime != 1400*time.Millisecond {
		t.Errorf("Expected lifetime 1400ms, got %v", burst.Lifetime)
	}

	for i, p := range burst.Particles {
		if !inPalette(p.Color) {
			t.Errorf("Particle %d colour %v not in palette", i, p.Color.Hex())
		}
		if p.RotationDeg < 0 || p.RotationDeg >= 360 {
			t.Errorf("Particle %d rotation out of range: %f", i, p.RotationDeg)
		}
		if p.Delay < 0 || p.Delay >= 60*time.Millisecond {
			t.Errorf("Particle %d delay out of range: %v", i, p.Delay)
		}
		if r := math.Hypot(p.OffsetX, p.OffsetY); r > constants.ParticleSpread+1e-9 {
			t.Errorf("Particle %d offset radius %f exceeds spread", i, r)
		}
	}
}

func TestNewBurstDefaultCount(t *testing.T) {
	burst := NewBurst(Point{}, 0, rng.New(1))
	if len(burst.Particles) != constants.ParticleCount {
		t.Errorf("Expected default count %d, got %d", constants.ParticleCount, len(burst.Particles))
	}
}

func TestNewBurstSeeded(t *testing.T) {
	a := NewBurst(Point{X: 1, Y: 2}, 8, rng.New(5))
	b := NewBurst(Point{X: 1, Y: 2}, 8, rng.New(5))
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("Expected identical particle %d for same seed", i)
		}
	}
}

func TestLifetimeHelpers(t *testing.T) {
	burst := NewBurst(Point{}, 5, rng.New(2))
	if burst.Expired(1399 * time.Millisecond) {
		t.Error("Expected burst alive before lifetime")
	}
	if !burst.Expired(1400 * time.Millisecond) {
		t.Error("Expected burst expired at lifetime")
	}

	p := Particle{OffsetX: 1, Delay: 30 * time.Millisecond, Color: Palette[0]}
	if p.Visible(10 * time.Millisecond) {
		t.Error("Expected particle hidden during its delay")
	}
	if !p.Visible(30 * time.Millisecond) {
		t.Error("Expected particle visible after its delay")
	}

	start := p.Position(Point{}, 0, burst.Lifetime)
	end := p.Position(Point{}, burst.Lifetime, burst.Lifetime)
	if end.X <= start.X {
		t.Errorf("Expected particle to drift outward, start %v end %v", start, end)
	}

	bg := colorful.Color{}
	if got := p.Fade(bg, 0, burst.Lifetime); got != p.Color {
		t.Errorf("Expected unfaded colour at t=0, got %v", got.Hex())
	}
}
