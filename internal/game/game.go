package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/network"
)

const backgroundBands = 32

type Game struct {
	host   *windowHost
	engine *network.Engine
	seed   uint64

	// viz
	time float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	showStatus bool
	started    time.Time
	lastErr    error
}

// New creates the window game and starts the engine. A zero seed picks a
// time-based one.
func New(cfg config.Config, seed uint64) *Game {
	g := &Game{
		host:       newWindowHost(config.WindowWidth, config.WindowHeight),
		seed:       seed,
		prevKey:    map[ebiten.Key]bool{},
		showStatus: true,
		started:    time.Now(),
	}
	g.rebuild(cfg)
	return g
}

// rebuild replaces the running engine with a fresh batch built from cfg.
func (g *Game) rebuild(cfg config.Config) {
	g.engine.Close()
	g.host.compact()

	var opts []network.Option
	if g.seed != 0 {
		opts = append(opts, network.WithSeed(g.seed))
	}
	g.engine = network.New(g.host, cfg, opts...)
	g.engine.Start()

	c := g.engine.Config()
	log.Printf("game: %d particles, connection distance %.0f", c.ParticleCount, c.ConnectionDistance)
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if justPressed(ebiten.KeyH) {
		g.showStatus = !g.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if err := g.openPresetDialog(); err != nil {
			g.lastErr = err
			log.Printf("game: %v", err)
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.engine.Close()
		return ebiten.Termination
	}

	g.time += 1.0 / config.TargetTPS
	g.engine.Frame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	// Lines, then markers on top
	g.host.draw(screen)

	if !g.showStatus {
		return
	}
	frames, lines := g.engine.Stats()
	status := fmt.Sprintf("%s  frames %d  lines %d  -  Space: pause, O: open preset, H: hide, Esc/Q: quit",
		formatDuration(time.Since(g.started)), frames, lines)
	if !g.engine.Running() {
		status = "Paused - " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := g.host.Size()
	band := float64(h) / backgroundBands
	for i := 0; i < backgroundBands; i++ {
		ratio := float64(i) / backgroundBands
		r := uint8(10 + 6*math.Sin(g.time*0.2+ratio*math.Pi))
		gv := uint8(12 + 4*math.Cos(g.time*0.15+ratio*math.Pi))
		b := uint8(28 + 10*math.Sin(g.time*0.1+ratio*math.Pi))
		vector.DrawFilledRect(screen, 0, float32(float64(i)*band), float32(w), float32(band+1), color.RGBA{R: r, G: gv, B: b, A: 255}, false)
	}
}

// Layout tracks the window size so the surface always covers it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.host.setSize(outsideWidth, outsideHeight) {
		g.engine.Resize()
	}
	return outsideWidth, outsideHeight
}

func (g *Game) togglePause() {
	if g.engine.Running() {
		g.engine.Stop()
	} else {
		g.engine.Start()
	}
}

func (g *Game) openPresetDialog() error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open Particle Preset"),
		zenity.FileFilters{{
			Name:     "Preset",
			Patterns: []string{"*.json"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	cfg, err := config.Load(filename)
	if err != nil {
		return err
	}
	log.Printf("game: loaded preset %s", filename)
	g.lastErr = nil
	g.rebuild(cfg)
	return nil
}
