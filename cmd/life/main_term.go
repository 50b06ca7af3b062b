//go:build !ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/app"
	"lifegrid/internal/patterns"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/term"

	"github.com/gdamore/tcell/v2"
)

// The default build runs in the terminal; build with -tags ebiten for the
// windowed viewer.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracker := life.NewTracker(patterns.DefaultCatalog(), cfg.Debounce)
	viewer := term.New(screen, sim, tracker, cfg.Interval, cfg.Seed)
	err = viewer.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
