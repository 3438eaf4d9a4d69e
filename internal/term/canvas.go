package term

import (
	"image/color"
	"math"

	"github.com/iburimskiy/particle-network/internal/config"
)

// cellCanvas rasterizes lines onto terminal cells. Terminals have no alpha,
// so line opacity is applied by blending toward the background.
type cellCanvas struct {
	host          *Host
	width, height int
	released      bool
}

func (c *cellCanvas) SetSize(w, h int) { c.width, c.height = w, h }

func (c *cellCanvas) Clear() {
	if c.released {
		return
	}
	c.host.screen.Fill(' ', c.host.bg)
}

func (c *cellCanvas) StrokeLine(x0, y0, x1, y1, _ float64, clr color.NRGBA) {
	if c.released {
		return
	}
	fg := config.RGB{R: clr.R, G: clr.G, B: clr.B}.Blend(Background, float64(clr.A)/255)
	style := c.host.bg.Foreground(rgb(fg))
	glyph := lineGlyph(x1-x0, y1-y0)

	cols, rows := c.host.screen.Size()
	ax, ay := c.host.cell(x0, y0)
	bx, by := c.host.cell(x1, y1)
	bresenham(ax, ay, bx, by, func(x, y int) {
		if x < 0 || y < 0 || x >= cols || y >= rows {
			return
		}
		c.host.screen.SetContent(x, y, glyph, nil, style)
	})
}

func (c *cellCanvas) Release() { c.released = true }

// lineGlyph picks a box-drawing rune for the slope of a line in screen
// coordinates (y grows downward).
func lineGlyph(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady <= adx*0.4:
		return '─'
	case adx <= ady*0.4:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// bresenham visits every cell on the line from (x0,y0) to (x1,y1) inclusive.
func bresenham(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
