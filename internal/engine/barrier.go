package engine

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Barrier is the per-tick fan-out/fan-in between the driver and its
// workers. Each Arm raises one start signal per worker; each worker consumes
// its signal exactly once through Await and answers with Done. Cancel is the
// shared shutdown flag: once set, Await and Wait return false.
type Barrier interface {
	// Arm raises the start signal of every worker for a new tick.
	Arm()
	// Await blocks worker i until its start signal is raised and consumes it.
	// It returns false once the barrier is cancelled.
	Await(i int) bool
	// Done raises worker i's completion signal for the current tick.
	Done(i int)
	// Wait blocks the driver until every worker called Done for the current
	// tick. It returns false if the barrier was cancelled.
	Wait() bool
	// Cancel releases every waiter. It is safe to call more than once.
	Cancel()
}

// NewBarrier returns a barrier for the given number of workers.
func NewBarrier(s Strategy, workers int) Barrier {
	if s == StrategySpin {
		return newSpinBarrier(workers)
	}
	return newCondBarrier(workers)
}

// condBarrier parks workers on a condition variable keyed by a tick
// counter. Each worker remembers the last tick it consumed.
type condBarrier struct {
	mu        sync.Mutex
	cond      *sync.Cond
	tick      uint64
	seen      []uint64
	pending   int
	cancelled bool
}

func newCondBarrier(workers int) *condBarrier {
	b := &condBarrier{seen: make([]uint64, workers)}
	b.cond = sync.NewCond(&b.mu)
	return b
}

func (b *condBarrier) Arm() {
	b.mu.Lock()
	b.pending = len(b.seen)
	b.tick++
	b.cond.Broadcast()
	b.mu.Unlock()
}

func (b *condBarrier) Await(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.seen[i] == b.tick && !b.cancelled {
		b.cond.Wait()
	}
	if b.cancelled {
		return false
	}
	b.seen[i] = b.tick
	return true
}

func (b *condBarrier) Done(int) {
	b.mu.Lock()
	b.pending--
	if b.pending == 0 {
		b.cond.Broadcast()
	}
	b.mu.Unlock()
}

func (b *condBarrier) Wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.pending > 0 && !b.cancelled {
		b.cond.Wait()
	}
	return !b.cancelled
}

func (b *condBarrier) Cancel() {
	b.mu.Lock()
	b.cancelled = true
	b.cond.Broadcast()
	b.mu.Unlock()
}

// spinBarrier busy-polls atomic flags. It trades CPU for wake-up latency.
type spinBarrier struct {
	start     []atomic.Bool
	finished  atomic.Int32
	cancelled atomic.Bool
}

func newSpinBarrier(workers int) *spinBarrier {
	return &spinBarrier{start: make([]atomic.Bool, workers)}
}

func (b *spinBarrier) Arm() {
	for i := range b.start {
		b.start[i].Store(true)
	}
}

func (b *spinBarrier) Await(i int) bool {
	for !b.cancelled.Load() {
		if b.start[i].CompareAndSwap(true, false) {
			return true
		}
		runtime.Gosched()
	}
	return false
}

func (b *spinBarrier) Done(int) {
	b.finished.Add(1)
}

func (b *spinBarrier) Wait() bool {
	want := int32(len(b.start))
	for b.finished.Load() < want {
		if b.cancelled.Load() {
			return false
		}
		runtime.Gosched()
	}
	b.finished.Store(0)
	return !b.cancelled.Load()
}

func (b *spinBarrier) Cancel() {
	b.cancelled.Store(true)
}
