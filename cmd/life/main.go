//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewLife()
	if err != nil {
		log.Fatalf("life: %v", err)
	}

	game := app.New(sim, cfg)

	ebiten.SetWindowTitle("lifegrid - " + sim.Rule().String())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
