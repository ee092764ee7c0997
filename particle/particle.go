// Package particle generates confetti bursts for the reveal celebration.
// Bursts are plain data; the rendering surface owns their lifetime.
package particle

import (
	"math"
	"time"

	"github.com/lixenwraith/grade-unboxing/constants"
	"github.com/lixenwraith/grade-unboxing/rng"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the fixed confetti palette
var Palette = []colorful.Color{
	colorful.MustParseHex("#FFD100"),
	colorful.MustParseHex("#FF6B6B"),
	colorful.MustParseHex("#6EE7B7"),
	colorful.MustParseHex("#60A5FA"),
	colorful.MustParseHex("#A78BFA"),
}

// Point is a position on the rendering surface
type Point struct {
	X, Y float64
}

// Particle is one confetti piece, offset relative to its burst anchor
type Particle struct {
	OffsetX     float64
	OffsetY     float64
	Color       colorful.Color
	RotationDeg float64
	Delay       time.Duration
}

// Burst is a group of particles anchored to one point
type Burst struct {
	Anchor    Point
	Particles []Particle
	Lifetime  time.Duration
}

// NewBurst creates count particles around anchor, count <= 0 uses the default
func NewBurst(anchor Point, count int, src rng.Source) Burst {
	if count <= 0 {
		count = constants.ParticleCount
	}

	particles := make([]Particle, count)
	for i := range particles {
		// Uniform over the disc, sqrt keeps density flat
		angle := src.Float64() * 2 * math.Pi
		radius := math.Sqrt(src.Float64()) * constants.ParticleSpread

		particles[i] = Particle{
			OffsetX:     radius * math.Cos(angle),
			OffsetY:     radius * math.Sin(angle),
			Color:       Palette[src.IntN(len(Palette))],
			RotationDeg: src.Float64() * 360,
			Delay:       time.Duration(src.Float64() * float64(constants.ParticleMaxDelay)),
		}
	}

	return Burst{
		Anchor:    anchor,
		Particles: particles,
		Lifetime:  constants.ParticleLifetime,
	}
}

// Expired reports whether the burst should be removed after elapsed time
func (b Burst) Expired(elapsed time.Duration) bool {
	return elapsed >= b.Lifetime
}

// Visible reports whether the particle has passed its stagger delay
func (p Particle) Visible(elapsed time.Duration) bool {
	return elapsed >= p.Delay
}

// Position returns the particle location after elapsed time within a burst of the given lifetime
// Particles drift outward along their offset direction and fall slightly
func (p Particle) Position(anchor Point, elapsed, lifetime time.Duration) Point {
	if elapsed < p.Delay {
		elapsed = p.Delay
	}
	progress := 0.0
	if lifetime > p.Delay {
		progress = float64(elapsed-p.Delay) / float64(lifetime-p.Delay)
	}
	progress = math.Min(progress, 1)

	dirX, dirY := p.OffsetX, p.OffsetY
	if length := math.Hypot(dirX, dirY); length > 0 {
		dirX, dirY = dirX/length, dirY/length
	}

	drift := constants.ParticleDrift * progress
	return Point{
		X: anchor.X + p.OffsetX + dirX*drift,
		Y: anchor.Y + p.OffsetY + dirY*drift*0.5 + progress*progress*constants.ParticleDrift*0.5,
	}
}

// Fade returns the particle colour faded toward background as the burst ages
func (p Particle) Fade(background colorful.Color, elapsed, lifetime time.Duration) colorful.Color {
	if lifetime <= 0 {
		return p.Color
	}
	t := math.Min(1, float64(elapsed)/float64(lifetime))
	if t <= 0 {
		return p.Color
	}
	return p.Color.BlendLab(background, t*t).Clamped()
}
