package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"falling-sand/internal/app"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	fps := flag.Int("fps", 60, "frames per second")
	seed := flag.Int64("seed", 42, "seed for clear/refill")
	var overrides app.KVList
	flag.Var(&overrides, "set", "simulation option in key=value form (repeatable)")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	opts := (&app.Config{Overrides: overrides}).Options()
	cfg := sand.FromMap(opts)
	w, h := screen.Size()
	cfg.CellSize = 1
	cfg.Width = w
	cfg.Height = h - 1
	world := sand.NewWithConfig(cfg)
	world.Reset(*seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = term.New(screen, world, *fps, *seed).Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
