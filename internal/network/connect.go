package network

import (
	"image/color"
	"math"

	"github.com/iburimskiy/particle-network/internal/config"
)

// Connector draws a line between every pair of particles closer than the
// connection distance. Line opacity does not depend on distance.
//
// The check is O(n^2/2); a spatial grid would be the next step if particle
// counts grow past a few hundred.
type Connector struct {
	distance float64
	width    float64
	color    color.NRGBA
}

func NewConnector(cfg config.Config) *Connector {
	return &Connector{
		distance: cfg.ConnectionDistance,
		width:    cfg.ConnectionLineWidth,
		color:    config.ParseRGB(cfg.ConnectionColor).WithAlpha(cfg.ConnectionOpacity),
	}
}

// Color returns the stroke color including the fixed line opacity.
func (c *Connector) Color() color.NRGBA { return c.color }

// Connect evaluates each unordered pair once, in stored order, and returns
// the number of lines drawn.
func (c *Connector) Connect(s *Surface, ps []*Particle) int {
	drawn := 0
	for i := 0; i < len(ps); i++ {
		a := ps[i]
		for j := i + 1; j < len(ps); j++ {
			b := ps[j]
			if math.Hypot(a.X-b.X, a.Y-b.Y) < c.distance {
				s.canvas.StrokeLine(a.X, a.Y, b.X, b.Y, c.width, c.color)
				drawn++
			}
		}
	}
	return drawn
}
