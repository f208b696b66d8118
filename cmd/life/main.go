//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/engine"
	"mad-life/internal/seed"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ecfg, err := cfg.Engine()
	if err != nil {
		log.Fatal(err)
	}
	ecfg.Logger = log.Default()

	var seedErr error
	eng, err := engine.New(ecfg, func(g *core.Grid) {
		seedErr = seed.Apply(cfg.Pattern, g, cfg.Seed, cfg.Density)
	})
	if err != nil {
		log.Fatal(err)
	}
	if seedErr != nil {
		log.Fatal(seedErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return eng.Run(ctx) })

	game := app.New(eng, cfg.Scale)
	size := eng.Size()
	ebiten.SetWindowTitle("Game Of Life")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	runErr := ebiten.RunGame(game)
	eng.Shutdown()
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}
