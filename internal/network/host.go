package network

import "image/color"

// Host is the region the effect renders into. It owns layout and the
// lifetime of anything it hands out.
type Host interface {
	// Size reports the current content-box size in pixels.
	Size() (w, h int)
	// AddMarker appends a visible marker to the host.
	AddMarker(spec MarkerSpec) Marker
	// NewCanvas inserts a transparent, non-interactive overlay covering the host.
	NewCanvas() Canvas
}

// MarkerSpec carries the fixed visual attributes of a particle.
type MarkerSpec struct {
	Size    float64
	Color   color.NRGBA
	Opacity float64
}

// Marker is the visible projection of a particle. It is written to, never read.
type Marker interface {
	MoveTo(left, top float64)
	Remove()
}

// Canvas is a pixel-addressable drawing target.
type Canvas interface {
	SetSize(w, h int)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
	Release()
}
