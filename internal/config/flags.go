package config

import "flag"

// Options are the command-line settings shared by the window and terminal
// programs.
type Options struct {
	Config Config
	Seed   uint64
	Log    string
}

// ParseFlags registers the common flags on fs and parses args. Values given
// on the command line override the preset file, which overrides defaults.
func ParseFlags(fs *flag.FlagSet, args []string) (Options, error) {
	preset := fs.String("config", "", "JSON preset file")
	particles := fs.Int("particles", 0, "Number of particles (default 40)")
	distance := fs.Float64("distance", 0, "Connection distance in pixels (default 180)")
	speed := fs.Float64("speed", 0, "Maximum particle speed in pixels per frame (default 0.7)")
	lineColor := fs.String("color", "", "Connection color as a hex triplet")
	seed := fs.Uint64("seed", 0, "Random seed; 0 picks one from the clock")
	logPath := fs.String("log", "", "Write log output to this file")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	cfg := Default()
	if *preset != "" {
		c, err := Load(*preset)
		if err != nil {
			return Options{}, err
		}
		cfg = c
	}
	if *particles > 0 {
		cfg.ParticleCount = *particles
	}
	if *distance > 0 {
		cfg.ConnectionDistance = *distance
	}
	if *speed > 0 {
		cfg.Speed = *speed
	}
	if *lineColor != "" {
		cfg.ConnectionColor = *lineColor
	}

	return Options{Config: cfg.WithDefaults(), Seed: *seed, Log: *logPath}, nil
}
