package network

import (
	"math/rand/v2"

	"github.com/iburimskiy/particle-network/internal/config"
)

// Particle holds per-particle simulation state. Visual attributes are fixed
// at creation; the marker mirrors X and Y after every step.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Size    float64
	Color   config.RGB
	Opacity float64

	marker Marker
}

// NewParticles creates cfg.ParticleCount particles uniformly distributed
// over [0,w]x[0,h] and appends one marker per particle to host.
func NewParticles(host Host, w, h float64, cfg config.Config, rng *rand.Rand) []*Particle {
	particles := make([]*Particle, 0, cfg.ParticleCount)
	for i := 0; i < cfg.ParticleCount; i++ {
		p := &Particle{
			X:       rng.Float64() * w,
			Y:       rng.Float64() * h,
			VX:      (rng.Float64() - 0.5) * cfg.Speed,
			VY:      (rng.Float64() - 0.5) * cfg.Speed,
			Size:    between(rng, cfg.Size),
			Color:   config.ParseRGB(cfg.Palette[rng.IntN(len(cfg.Palette))]),
			Opacity: between(rng, cfg.Opacity),
		}
		p.marker = host.AddMarker(MarkerSpec{
			Size:    p.Size,
			Color:   p.Color.WithAlpha(1),
			Opacity: p.Opacity,
		})
		p.marker.MoveTo(p.X, p.Y)
		particles = append(particles, p)
	}
	return particles
}

// Step advances the particle by one frame. A coordinate that leaves [0,w]
// or [0,h] flips the matching velocity component; the position itself is
// not pulled back, so it may overshoot by one frame.
func (p *Particle) Step(w, h float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > w {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > h {
		p.VY = -p.VY
	}

	if p.marker != nil {
		p.marker.MoveTo(p.X, p.Y)
	}
}

func between(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
