package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifeboard/internal/app"
	"lifeboard/internal/core"
	"lifeboard/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 40
	cfg.CellSize = 1
	logPath := flag.String("log", "", "append timing logs to this file (stdout belongs to the screen)")
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	var logger *log.Logger
	if cfg.Verbose {
		var out io.Writer = io.Discard
		if *logPath != "" {
			f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				log.Fatalf("opening log: %v", err)
			}
			defer f.Close()
			out = f
		}
		logger = log.New(out, "life-term: ", log.Lmicroseconds)
	}

	sess, err := cfg.NewSession(core.NewScheduler(nil), logger)
	if err != nil {
		log.Fatalf("%+v", err)
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

	if err := term.New(screen, sess, cfg.Seed).Run(ctx); err != nil {
		log.Fatal(err)
	}
}
