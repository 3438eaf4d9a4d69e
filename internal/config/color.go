package config

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// FallbackRGB is used for any color that is not a hexadecimal triplet.
var FallbackRGB = RGB{R: 165, G: 180, B: 252}

// ParseColor parses "#rrggbb" or "#rgb".
func ParseColor(s string) (RGB, bool) {
	s = strings.TrimSpace(s)
	digits, ok := strings.CutPrefix(s, "#")
	if !ok || (len(digits) != 3 && len(digits) != 6) {
		return RGB{}, false
	}
	for _, r := range digits {
		if !isHexDigit(r) {
			return RGB{}, false
		}
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, true
}

// ParseRGB is ParseColor with FallbackRGB on failure.
func ParseRGB(s string) RGB {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return FallbackRGB
}

// WithAlpha returns the color as non-premultiplied RGBA with opacity in [0,1].
func (c RGB) WithAlpha(opacity float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(clamp01(opacity)*255 + 0.5)}
}

// Blend mixes c toward bg; t=1 yields c, t=0 yields bg.
func (c RGB) Blend(bg RGB, t float64) RGB {
	src := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	dst := colorful.Color{R: float64(bg.R) / 255, G: float64(bg.G) / 255, B: float64(bg.B) / 255}
	r, g, b := dst.BlendRgb(src, clamp01(t)).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
