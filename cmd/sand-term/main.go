package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"mad-sand/internal/app"
	"mad-sand/internal/core"
	"mad-sand/internal/term"
	_ "mad-sand/pkg/sims/sand"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	logPath := flag.String("log", "", "write log output to this file instead of discarding it")
	flag.Parse()

	// The terminal is the display, so logs go to a file or nowhere.
	out, err := logOutput(*logPath)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("open log: %v", err)
	}
	defer out.Close()
	log.SetOutput(out)

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.SetOutput(os.Stderr)
		log.Fatalf("unknown sim %q (have %v)", cfg.Sim, core.Names())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("screen init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = term.New(screen, factory, cfg).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// logOutput opens the log destination. An empty path discards output.
func logOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}
