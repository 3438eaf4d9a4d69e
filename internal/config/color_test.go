package config

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#6366f1", RGB{0x63, 0x66, 0xf1}},
		{"#A5B4FC", RGB{165, 180, 252}},
		{"#fff", RGB{255, 255, 255}},
		{"  #000000 ", RGB{0, 0, 0}},
		{"indigo", FallbackRGB},
		{"rgb(99,102,241)", FallbackRGB},
		{"6366f1", FallbackRGB},
		{"#12345", FallbackRGB},
		{"#6366f1ff", FallbackRGB},
		{"#gg0000", FallbackRGB},
		{"", FallbackRGB},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseRGB(tt.in); got != tt.want {
				t.Errorf("ParseRGB(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFallbackTriple(t *testing.T) {
	if FallbackRGB != (RGB{R: 165, G: 180, B: 252}) {
		t.Errorf("Unexpected fallback %v", FallbackRGB)
	}
}

func TestWithAlpha(t *testing.T) {
	c := RGB{10, 20, 30}
	if a := c.WithAlpha(0.2).A; a != 51 {
		t.Errorf("Expected alpha 51, got %d", a)
	}
	if a := c.WithAlpha(2).A; a != 255 {
		t.Errorf("Expected clamped alpha 255, got %d", a)
	}
	if a := c.WithAlpha(-1).A; a != 0 {
		t.Errorf("Expected clamped alpha 0, got %d", a)
	}
}

func TestBlend(t *testing.T) {
	c := RGB{200, 100, 50}
	bg := RGB{0, 0, 0}

	if got := c.Blend(bg, 1); got != c {
		t.Errorf("Full blend = %v, want %v", got, c)
	}
	if got := c.Blend(bg, 0); got != bg {
		t.Errorf("Zero blend = %v, want %v", got, bg)
	}
	half := c.Blend(bg, 0.5)
	if half.R < 99 || half.R > 101 || half.G < 49 || half.G > 51 {
		t.Errorf("Half blend = %v, want about {100 50 25}", half)
	}
}
