package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/engine"
	"mad-life/internal/seed"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	duration := flag.Duration("duration", 10*time.Second, "how long to run before shutting down")
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
	ctx, cancel := context.WithTimeout(ctx, *duration)
	defer cancel()

	var rep app.Report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return eng.Run(gctx) })
	g.Go(func() error {
		var err error
		rep, err = app.Watch(gctx, eng, cfg.TPS, eng.Done(), log.Default())
		eng.Shutdown()
		return err
	})
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	log.Printf("done: %d steps observed over %d polls, %.0f steps/s, %d alive",
		rep.LastStep-rep.FirstStep, rep.Polls, rep.SPS, rep.Alive)
}
