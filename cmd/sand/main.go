//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	_ "mad-sand/pkg/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	game := app.New(factory, cfg)

	ebiten.SetWindowTitle("mad-sand - " + cfg.Sim)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale+max(0, cfg.HUDWidth), cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
