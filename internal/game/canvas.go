package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// imageCanvas is an offscreen overlay the connection lines are stroked onto.
// It is composited over the background before markers are drawn.
type imageCanvas struct {
	img           *ebiten.Image
	width, height int
}

func (c *imageCanvas) SetSize(w, h int) {
	if c.img != nil && w == c.width && h == c.height {
		return
	}
	c.Release()
	c.width, c.height = w, h
	// ebiten refuses empty images; a zero-size host just has nothing to draw on
	if w > 0 && h > 0 {
		c.img = ebiten.NewImage(w, h)
	}
}

func (c *imageCanvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}

func (c *imageCanvas) Release() {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
}

func (c *imageCanvas) drawTo(screen *ebiten.Image) {
	if c.img == nil {
		return
	}
	screen.DrawImage(c.img, &ebiten.DrawImageOptions{})
}
