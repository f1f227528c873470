//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"gameoflife/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	driver := app.NewDriver(*cfg)
	driver.Seed()

	game := app.New(driver, *cfg)

	ebiten.SetWindowTitle(app.WindowTitle)
	// One Update per Draw; the driver paces frames itself.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetWindowSize(cfg.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		if !errors.Is(err, app.ErrDraw) {
			err = fmt.Errorf("%w: %w", app.ErrInit, err)
		}
		log.Fatal(err)
	}
}
