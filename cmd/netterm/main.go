// Command netterm draws the particle network in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/particle-network/internal/config"
	"github.com/iburimskiy/particle-network/internal/network"
	"github.com/iburimskiy/particle-network/internal/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "netterm:", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("netterm", flag.ExitOnError)
	fps := fs.Int("fps", 30, "Frames per second")
	opts, err := config.ParseFlags(fs, os.Args[1:])
	if err != nil {
		return err
	}

	// Log lines would land on the terminal we are drawing on
	log.SetOutput(io.Discard)
	if opts.Log != "" {
		f, err := os.OpenFile(opts.Log, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host := term.NewHost(screen, config.CellWidth, config.CellHeight)

	var netOpts []network.Option
	if opts.Seed != 0 {
		netOpts = append(netOpts, network.WithSeed(opts.Seed))
	}
	engine := network.New(host, opts.Config, netOpts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("netterm: %d particles at %d fps", opts.Config.ParticleCount, *fps)
	return term.NewLoop(screen, host, engine, *fps).Run(ctx)
}
