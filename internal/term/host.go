// Package term renders the particle network into a terminal. Cells are
// mapped onto a virtual pixel grid so distances keep their on-screen scale.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/network"
)

// Background color the terminal effect blends against
var Background = config.RGB{R: 15, G: 14, B: 30}

// Host adapts a tcell.Screen to network.Host.
type Host struct {
	screen       tcell.Screen
	cellW, cellH int
	bg           tcell.Style

	markers []*cellMarker
	canvas  *cellCanvas
}

// NewHost maps each terminal cell to cellW x cellH virtual pixels.
func NewHost(screen tcell.Screen, cellW, cellH int) *Host {
	if cellW <= 0 {
		cellW = config.CellWidth
	}
	if cellH <= 0 {
		cellH = config.CellHeight
	}
	return &Host{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		bg:     tcell.StyleDefault.Background(rgb(Background)),
	}
}

func (h *Host) Size() (int, int) {
	cols, rows := h.screen.Size()
	return cols * h.cellW, rows * h.cellH
}

func (h *Host) AddMarker(spec network.MarkerSpec) network.Marker {
	m := &cellMarker{
		glyph: '•',
		style: h.bg.Foreground(rgb(config.RGB{R: spec.Color.R, G: spec.Color.G, B: spec.Color.B}.Blend(Background, spec.Opacity))),
	}
	if spec.Size >= 3 {
		m.glyph = '●'
	}
	h.markers = append(h.markers, m)
	return m
}

func (h *Host) NewCanvas() network.Canvas {
	h.canvas = &cellCanvas{host: h}
	return h.canvas
}

// cell converts a virtual pixel position to a cell coordinate.
func (h *Host) cell(x, y float64) (int, int) {
	return floorDiv(x, h.cellW), floorDiv(y, h.cellH)
}

// drawMarkers paints live markers over the lines.
func (h *Host) drawMarkers() {
	cols, rows := h.screen.Size()
	for _, m := range h.markers {
		if m.removed {
			continue
		}
		cx, cy := h.cell(m.left, m.top)
		if cx < 0 || cy < 0 || cx >= cols || cy >= rows {
			continue
		}
		h.screen.SetContent(cx, cy, m.glyph, nil, m.style)
	}
}

type cellMarker struct {
	glyph     rune
	style     tcell.Style
	left, top float64
	removed   bool
}

func (m *cellMarker) MoveTo(left, top float64) { m.left, m.top = left, top }
func (m *cellMarker) Remove()                  { m.removed = true }

func rgb(c config.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func floorDiv(v float64, cell int) int {
	q := v / float64(cell)
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
