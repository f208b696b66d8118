package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/engine"
)

// Source is the read side of an engine.
type Source interface {
	Snapshot() engine.Snapshot
	Throughput() float64
}

// Report summarizes a headless watch.
type Report struct {
	Polls     int
	FirstStep uint64
	LastStep  uint64
	SPS       float64
	Alive     int
}

// Watch polls src at tps until ctx is done or stopped is closed, logging the
// step and throughput roughly once per second. It fails if the step counter
// ever goes backwards.
func Watch(ctx context.Context, src Source, tps int, stopped <-chan struct{}, logger *log.Logger) (Report, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	pace := core.NewFixedStep(tps)
	var rep Report
	lastLog := time.Now()

	poll := func() error {
		snap := src.Snapshot()
		if rep.Polls > 0 && snap.Step < rep.LastStep {
			return fmt.Errorf("step went backwards: %d after %d", snap.Step, rep.LastStep)
		}
		if rep.Polls == 0 {
			rep.FirstStep = snap.Step
		}
		rep.Polls++
		rep.LastStep = snap.Step
		rep.Alive = snap.Grid.Alive()
		rep.SPS = src.Throughput()
		if time.Since(lastLog) >= time.Second {
			lastLog = time.Now()
			logger.Printf("step %d  sps %.0f  alive %d", rep.LastStep, rep.SPS, rep.Alive)
		}
		return nil
	}

	for {
		if pace.ShouldStep() {
			if err := poll(); err != nil {
				return rep, err
			}
		}
		select {
		case <-ctx.Done():
			return rep, poll()
		case <-stopped:
			return rep, poll()
		case <-time.After(pace.Remaining()):
		}
	}
}
