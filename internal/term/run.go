package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-network/internal/network"
)

// Loop owns the terminal frame loop. Frames and events are handled on the
// same goroutine; only PollEvent runs elsewhere.
type Loop struct {
	screen tcell.Screen
	host   *Host
	engine *network.Engine
	fps    int
}

func NewLoop(screen tcell.Screen, host *Host, engine *network.Engine, fps int) *Loop {
	if fps <= 0 {
		fps = 30
	}
	return &Loop{screen: screen, host: host, engine: engine, fps: fps}
}

// Run starts the engine and drives it until ctx is done or the user quits.
// The caller owns the screen and must Fini it afterwards, which also ends
// the event reader.
func (l *Loop) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(l.fps))
	defer ticker.Stop()

	l.engine.Start()
	defer l.engine.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !l.handle(ev) {
				return nil
			}
		case <-ticker.C:
			l.tick()
		}
	}
}

// handle processes one event and reports whether the loop should continue.
func (l *Loop) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		l.screen.Sync()
		l.engine.Resize()
		w, h := l.host.Size()
		log.Printf("term: resized to %dx%d", w, h)
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
			return false
		case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
			if l.engine.Running() {
				l.engine.Stop()
			} else {
				l.engine.Start()
			}
		}
	}
	return true
}

// tick runs one frame and presents it.
func (l *Loop) tick() {
	if !l.engine.Running() {
		return
	}
	l.engine.Frame()
	l.host.drawMarkers()
	l.screen.Show()
}
