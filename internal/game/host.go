package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/network"
)

// windowHost exposes the ebiten window as a network.Host. Its size follows
// the outside size reported to Layout.
type windowHost struct {
	width, height int
	markers       []*glowMarker
	canvas        *imageCanvas
}

func newWindowHost(w, h int) *windowHost {
	return &windowHost{width: w, height: h}
}

func (h *windowHost) Size() (int, int) { return h.width, h.height }

// setSize reports whether the size changed.
func (h *windowHost) setSize(w, height int) bool {
	if w == h.width && height == h.height {
		return false
	}
	h.width, h.height = w, height
	return true
}

func (h *windowHost) AddMarker(spec network.MarkerSpec) network.Marker {
	m := &glowMarker{spec: spec}
	h.markers = append(h.markers, m)
	return m
}

func (h *windowHost) NewCanvas() network.Canvas {
	h.canvas = &imageCanvas{}
	return h.canvas
}

// compact drops removed markers.
func (h *windowHost) compact() {
	kept := h.markers[:0]
	for _, m := range h.markers {
		if !m.removed {
			kept = append(kept, m)
		}
	}
	for i := len(kept); i < len(h.markers); i++ {
		h.markers[i] = nil
	}
	h.markers = kept
}

func (h *windowHost) draw(screen *ebiten.Image) {
	if h.canvas != nil {
		h.canvas.drawTo(screen)
	}
	for _, m := range h.markers {
		if !m.removed {
			m.draw(screen)
		}
	}
}

// glowMarker is a particle's visible dot. Only the engine moves it.
type glowMarker struct {
	spec      network.MarkerSpec
	left, top float64
	removed   bool
}

func (m *glowMarker) MoveTo(left, top float64) { m.left, m.top = left, top }
func (m *glowMarker) Remove()                  { m.removed = true }

func (m *glowMarker) draw(screen *ebiten.Image) {
	for _, r := range glowRings(m.spec) {
		vector.DrawFilledCircle(screen, float32(m.left), float32(m.top), float32(r.radius), r.color, true)
	}
}

type ring struct {
	radius float64
	color  color.NRGBA
}

// glowRings returns the circles making up a marker, outermost first. The
// halo fades outward; the core is drawn last at the particle's own opacity.
func glowRings(spec network.MarkerSpec) []ring {
	rings := make([]ring, 0, config.GlowRings+1)
	base := config.RGB{R: spec.Color.R, G: spec.Color.G, B: spec.Color.B}
	for k := config.GlowRings; k >= 1; k-- {
		t := float64(k) / float64(config.GlowRings)
		fade := float64(config.GlowRings-k+1) / float64(config.GlowRings)
		rings = append(rings, ring{
			radius: spec.Size * (1 + (config.GlowSpread-1)*t),
			color:  base.WithAlpha(clamp01(spec.Opacity * fade * 0.5)),
		})
	}
	rings = append(rings, ring{radius: spec.Size, color: base.WithAlpha(spec.Opacity)})
	return rings
}
