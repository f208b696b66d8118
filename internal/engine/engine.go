// Package engine advances a toroidal Life grid with a fixed worker pool and
// hands settled generations to a single concurrent reader.
//
// The driver goroutine (the one calling Run) computes one row partition
// itself and fans the rest out to long-lived workers through a Barrier.
// After every partition retires, the written buffer becomes current, is
// published together with its step number, and a free buffer that is
// neither current nor held by the reader becomes the next write target.
// The reader therefore never observes a buffer that is being written, and
// no grid is ever copied.
package engine

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"mad-life/internal/core"
)

// Snapshot is a settled generation handed to the reader. Grid must not be
// modified and is only guaranteed stable until the next Snapshot call.
type Snapshot struct {
	Grid *core.Grid
	Step uint64
}

// Engine owns the grids, the worker pool and the publication state.
type Engine struct {
	cfg Config
	log *log.Logger

	pool       *Pool
	dispatcher *Dispatcher
	rotator    *Rotator
	throughput *Throughput
	publisher  *Publisher

	step     uint64
	running  atomic.Bool
	stopping atomic.Bool
	stopOnce sync.Once
	done     chan struct{}
}

// New validates cfg, allocates the grid buffers and fills generation zero
// with init. A nil init leaves every cell dead. No goroutine is started.
func New(cfg Config, init func(g *core.Grid)) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	e := &Engine{
		cfg:        cfg,
		log:        logger,
		pool:       NewPool(cfg.Slots, cfg.Size),
		dispatcher: NewDispatcher(cfg.Size, cfg.Workers, cfg.Strategy),
		rotator:    NewRotator(cfg.Slots),
		throughput: NewThroughput(),
		done:       make(chan struct{}),
	}
	e.publisher = NewPublisher(e.rotator.Current())
	if init != nil {
		init(e.pool.Grid(e.rotator.Current()))
	}
	return e, nil
}

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Size, H: e.cfg.Size} }

// Workers returns the number of row partitions, including the driver's.
func (e *Engine) Workers() int { return e.cfg.Workers }

// Run drives ticks on the calling goroutine until Shutdown, ctx
// cancellation or the configured step limit. It returns only after every
// worker goroutine has exited.
func (e *Engine) Run(ctx context.Context) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer close(e.done)
	stop := context.AfterFunc(ctx, e.Shutdown)
	defer stop()

	e.dispatcher.Start()
	defer e.dispatcher.Stop()
	e.log.Printf("engine: stepping %dx%d grid with %d workers (%s barrier, %d buffers)",
		e.cfg.Size, e.cfg.Size, e.cfg.Workers, e.cfg.Strategy, e.cfg.Slots)

	for !e.stopping.Load() {
		if !e.tick() {
			break
		}
		if e.cfg.Limit > 0 && e.step >= e.cfg.Limit {
			e.Shutdown()
		}
	}
	e.log.Printf("engine: stopped after %d steps", e.step)
	return nil
}

// tick computes and publishes one generation. It reports false when the
// tick was abandoned because of shutdown.
func (e *Engine) tick() bool {
	src := e.pool.Grid(e.rotator.Current())
	dst := e.pool.Grid(e.rotator.Next())

	began := time.Now()
	if !e.dispatcher.Tick(src, dst) {
		return false
	}
	finished := time.Now()
	e.throughput.Record(finished.Sub(began), finished)

	settled := e.rotator.Settle()
	held, ok := e.publisher.Publish(settled, e.step+1)
	if !ok {
		return false
	}
	e.step++
	e.rotator.Choose(held)
	return true
}

// Shutdown requests cooperative termination. No tick starts afterwards and
// the step counter stops moving once it returns. It does not wait; use Done
// for that. Safe to call more than once and before Run.
func (e *Engine) Shutdown() {
	e.stopOnce.Do(func() {
		e.stopping.Store(true)
		e.publisher.Close()
		e.dispatcher.Cancel()
	})
}

// Done is closed once Run has returned and every worker has exited.
func (e *Engine) Done() <-chan struct{} { return e.done }

// Snapshot returns the latest settled generation and its step number.
func (e *Engine) Snapshot() Snapshot {
	slot, step := e.publisher.Acquire()
	return Snapshot{Grid: e.pool.Grid(slot), Step: step}
}

// Steps returns the latest published step number.
func (e *Engine) Steps() uint64 { return e.publisher.Step() }

// Throughput returns the estimated steps per second, 0 before warm-up.
func (e *Engine) Throughput() float64 { return e.throughput.Rate() }
