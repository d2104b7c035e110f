//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"lifeboard/internal/app"
	"lifeboard/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	var logger *log.Logger
	if cfg.Verbose {
		logger = log.New(os.Stderr, "life: ", log.Lmicroseconds)
	}
	sess, err := cfg.NewSession(core.NewScheduler(nil), logger)
	if err != nil {
		log.Fatalf("%+v", err)
	}

	game := app.New(sess, cfg.Seed, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("lifeboard: " + sess.Rule().String())
	ebiten.SetWindowSize(w*cfg.Scale, h*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
