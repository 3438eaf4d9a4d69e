package network

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/particle-network/internal/config"
)

func newTestSurface() (*Surface, *fakeCanvas) {
	host := newFakeHost(800, 600)
	s := NewSurface(host)
	return s, host.canvas
}

func TestConnectThreshold(t *testing.T) {
	tests := []struct {
		name string
		dx   float64
		want int
	}{
		{"Exactly at distance", 180, 0},
		{"Just inside", 179.99, 1},
		{"Far apart", 400, 0},
		{"Same point", 0, 1},
	}

	c := NewConnector(config.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, canvas := newTestSurface()
			ps := []*Particle{{X: 100, Y: 100}, {X: 100 + tt.dx, Y: 100}}
			if got := c.Connect(s, ps); got != tt.want {
				t.Errorf("Connect drew %d lines, want %d", got, tt.want)
			}
			if len(canvas.lines) != tt.want {
				t.Errorf("Canvas received %d lines, want %d", len(canvas.lines), tt.want)
			}
		})
	}
}

func TestConnectDiagonalDistance(t *testing.T) {
	// 3-4-5 triangle scaled to 180
	c := NewConnector(config.Default())
	s, _ := newTestSurface()
	ps := []*Particle{{X: 0, Y: 0}, {X: 108, Y: 144}}
	if got := c.Connect(s, ps); got != 0 {
		t.Errorf("Expected no line at exactly 180, got %d", got)
	}
	ps[1].Y = 143.99
	if got := c.Connect(s, ps); got != 1 {
		t.Errorf("Expected a line just under 180, got %d", got)
	}
}

// TestConnectEachPairOnce places all particles within range and checks every
// unordered pair is drawn exactly once with no self pairs.
func TestConnectEachPairOnce(t *testing.T) {
	const n = 40
	ps := make([]*Particle, n)
	for i := range ps {
		ps[i] = &Particle{X: float64(i), Y: float64(i)}
	}

	s, canvas := newTestSurface()
	got := NewConnector(config.Default()).Connect(s, ps)
	if want := n * (n - 1) / 2; got != want {
		t.Fatalf("Expected %d lines, got %d", want, got)
	}

	seen := make(map[[2]float64]bool)
	for _, l := range canvas.lines {
		if l.x0 == l.x1 && l.y0 == l.y1 {
			t.Fatalf("Self pair drawn at (%f,%f)", l.x0, l.y0)
		}
		if l.x0 >= l.x1 {
			t.Fatalf("Pair not in stored order: %f -> %f", l.x0, l.x1)
		}
		key := [2]float64{l.x0, l.x1}
		if seen[key] {
			t.Fatalf("Pair (%f,%f) drawn twice", l.x0, l.x1)
		}
		seen[key] = true
	}
}

func TestConnectStyle(t *testing.T) {
	cfg := config.Config{ConnectionColor: "#ff8000", ConnectionOpacity: 0.5, ConnectionLineWidth: 1.5}.WithDefaults()
	s, canvas := newTestSurface()
	NewConnector(cfg).Connect(s, []*Particle{{X: 0, Y: 0}, {X: 10, Y: 0}})

	if len(canvas.lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(canvas.lines))
	}
	l := canvas.lines[0]
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 128}
	if l.color != want {
		t.Errorf("Line color %v, want %v", l.color, want)
	}
	if l.width != 1.5 {
		t.Errorf("Line width %f, want 1.5", l.width)
	}
}

func TestConnectColorFallback(t *testing.T) {
	cfg := config.Config{ConnectionColor: "indigo"}.WithDefaults()
	s, canvas := newTestSurface()
	ps := []*Particle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}}
	NewConnector(cfg).Connect(s, ps)

	if len(canvas.lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(canvas.lines))
	}
	for i, l := range canvas.lines {
		if l.color.R != 165 || l.color.G != 180 || l.color.B != 252 {
			t.Errorf("Line %d color %v, want fallback (165,180,252)", i, l.color)
		}
	}
}
