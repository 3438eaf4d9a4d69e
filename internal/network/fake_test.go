package network

import "image/color"

type line struct {
	x0, y0, x1, y1 float64
	width          float64
	color          color.NRGBA
}

type fakeCanvas struct {
	w, h     int
	lines    []line
	clears   int
	clearedW int
	clearedH int
	released bool
}

func (c *fakeCanvas) SetSize(w, h int) { c.w, c.h = w, h }

func (c *fakeCanvas) Clear() {
	c.lines = c.lines[:0]
	c.clears++
	c.clearedW, c.clearedH = c.w, c.h
}

func (c *fakeCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.NRGBA) {
	c.lines = append(c.lines, line{x0, y0, x1, y1, width, clr})
}

func (c *fakeCanvas) Release() { c.released = true }

type fakeMarker struct {
	spec      MarkerSpec
	left, top float64
	moves     int
	removed   bool
}

func (m *fakeMarker) MoveTo(left, top float64) {
	m.left, m.top = left, top
	m.moves++
}

func (m *fakeMarker) Remove() { m.removed = true }

type fakeHost struct {
	w, h    int
	markers []*fakeMarker
	canvas  *fakeCanvas
}

func newFakeHost(w, h int) *fakeHost {
	return &fakeHost{w: w, h: h}
}

func (h *fakeHost) Size() (int, int) { return h.w, h.h }

func (h *fakeHost) AddMarker(spec MarkerSpec) Marker {
	m := &fakeMarker{spec: spec}
	h.markers = append(h.markers, m)
	return m
}

func (h *fakeHost) NewCanvas() Canvas {
	h.canvas = &fakeCanvas{}
	return h.canvas
}
