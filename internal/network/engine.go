package network

import (
	"math/rand/v2"
	"time"

	"github.com/iburimskiy/particle-network/internal/config"
)

// Engine runs the particle network on a host. Frames are driven by the
// host's per-frame callback; the engine is not safe for concurrent use.
//
// All methods are no-ops on a nil *Engine, which is what New returns when
// there is no host to render into.
type Engine struct {
	cfg       config.Config
	host      Host
	surface   *Surface
	particles []*Particle
	connector *Connector

	running bool
	closed  bool

	frames uint64
	lines  int
}

type options struct {
	rng *rand.Rand
}

// Option configures New.
type Option func(*options)

// WithRand sets the random source used to create particles.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds a PCG source for reproducible layouts.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// New builds the surface, then the particle batch. It returns nil when
// host is nil.
func New(host Host, cfg config.Config, opts ...Option) *Engine {
	if host == nil {
		return nil
	}
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		seed := uint64(time.Now().UnixNano())
		o.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	cfg = cfg.WithDefaults()
	e := &Engine{
		cfg:       cfg,
		host:      host,
		surface:   NewSurface(host),
		connector: NewConnector(cfg),
	}
	e.particles = NewParticles(host, float64(e.surface.Width()), float64(e.surface.Height()), cfg, o.rng)
	return e
}

// Start enables frames. Calling Start after Close has no effect.
func (e *Engine) Start() {
	if e == nil || e.closed {
		return
	}
	e.running = true
}

// Stop pauses the loop; particles keep their state.
func (e *Engine) Stop() {
	if e == nil {
		return
	}
	e.running = false
}

func (e *Engine) Running() bool {
	return e != nil && e.running
}

// Close stops the engine and releases its markers and canvas.
func (e *Engine) Close() {
	if e == nil || e.closed {
		return
	}
	e.running = false
	e.closed = true
	for _, p := range e.particles {
		if p.marker != nil {
			p.marker.Remove()
			p.marker = nil
		}
	}
	e.surface.release()
}

// Frame clears the surface, steps every particle, then draws connections
// from the post-step positions.
func (e *Engine) Frame() {
	if e == nil || !e.running {
		return
	}
	e.surface.Clear()

	w, h := float64(e.surface.Width()), float64(e.surface.Height())
	for _, p := range e.particles {
		p.Step(w, h)
	}

	e.lines = e.connector.Connect(e.surface, e.particles)
	e.frames++
}

// Resize applies the host's current size to the surface. Particle
// positions are left as they are; only later reflections use the new bounds.
func (e *Engine) Resize() {
	if e == nil || e.closed {
		return
	}
	e.surface.Resize(e.host)
}

// Particles returns the particle set in stored order.
func (e *Engine) Particles() []*Particle {
	if e == nil {
		return nil
	}
	return e.particles
}

func (e *Engine) Surface() *Surface {
	if e == nil {
		return nil
	}
	return e.surface
}

func (e *Engine) Config() config.Config {
	if e == nil {
		return config.Default()
	}
	return e.cfg
}

// Stats reports the number of frames run and lines drawn in the last frame.
func (e *Engine) Stats() (frames uint64, lines int) {
	if e == nil {
		return 0, 0
	}
	return e.frames, e.lines
}
