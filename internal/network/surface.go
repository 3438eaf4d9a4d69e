package network

// Surface is the overlay connection lines are drawn on. It tracks the
// host's content box; callers must Resize it on every host size change.
type Surface struct {
	canvas        Canvas
	width, height int
}

// NewSurface creates the overlay and sizes it to the host.
func NewSurface(host Host) *Surface {
	s := &Surface{canvas: host.NewCanvas()}
	s.Resize(host)
	return s
}

// Resize re-reads the host size and applies it to the canvas.
func (s *Surface) Resize(host Host) {
	w, h := host.Size()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.width, s.height = w, h
	s.canvas.SetSize(w, h)
}

// Clear erases the full surface.
func (s *Surface) Clear() {
	s.canvas.Clear()
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

func (s *Surface) release() {
	s.canvas.Release()
}
