package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Ticks per second driving the frame loop
	TargetTPS = 60

	// Terminal cell size in virtual pixels
	CellWidth  = 8
	CellHeight = 16

	// Glow rendering
	GlowRings  = 4
	GlowSpread = 2.5
)

// Range is an inclusive [Min, Max] interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) valid() bool { return r.Min > 0 && r.Max >= r.Min }

// Config holds every recognised option of the particle network.
// It is filled once by WithDefaults and not mutated afterwards.
type Config struct {
	ParticleCount       int      `json:"particleCount"`
	Palette             []string `json:"colorPalette"`
	Size                Range    `json:"sizeRange"`
	Speed               float64  `json:"speed"`
	Opacity             Range    `json:"opacityRange"`
	ConnectionDistance  float64  `json:"connectionDistance"`
	ConnectionOpacity   float64  `json:"connectionOpacity"`
	ConnectionLineWidth float64  `json:"connectionLineWidth"`
	ConnectionColor     string   `json:"connectionColor"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ParticleCount:       40,
		Palette:             []string{"#6366f1", "#8b5cf6", "#a5b4fc", "#c4b5fd"},
		Size:                Range{Min: 2, Max: 4},
		Speed:               0.7,
		Opacity:             Range{Min: 0.3, Max: 0.7},
		ConnectionDistance:  180,
		ConnectionOpacity:   0.2,
		ConnectionLineWidth: 0.8,
		ConnectionColor:     "#6366f1",
	}
}

// WithDefaults returns a copy of c where every missing or out-of-range
// field is replaced by its default.
func (c Config) WithDefaults() Config {
	d := Default()
	if c.ParticleCount <= 0 {
		c.ParticleCount = d.ParticleCount
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	} else {
		c.Palette = append([]string(nil), c.Palette...)
	}
	if !c.Size.valid() {
		c.Size = d.Size
	}
	if c.Speed <= 0 {
		c.Speed = d.Speed
	}
	if c.Opacity.Min < 0 || c.Opacity.Max <= 0 || c.Opacity.Max < c.Opacity.Min || c.Opacity.Max > 1 {
		c.Opacity = d.Opacity
	}
	if c.ConnectionDistance <= 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.ConnectionOpacity <= 0 || c.ConnectionOpacity > 1 {
		c.ConnectionOpacity = d.ConnectionOpacity
	}
	if c.ConnectionLineWidth <= 0 {
		c.ConnectionLineWidth = d.ConnectionLineWidth
	}
	// Malformed colors are kept; ParseRGB falls back when they are drawn.
	if c.ConnectionColor == "" {
		c.ConnectionColor = d.ConnectionColor
	}
	return c
}

// Load reads a JSON preset. Fields absent from the file take defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read preset %s: %w", path, err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return c.WithDefaults(), nil
}
