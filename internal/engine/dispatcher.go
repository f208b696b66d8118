package engine

import (
	"sync"

	"mad-life/internal/core"
)

// Task is a contiguous row range [MinRow, MaxRow) assigned to one worker.
type Task struct {
	MinRow, MaxRow int
}

// Partition splits rows into workers contiguous ranges using rows*i/workers
// boundaries. The ranges are disjoint and cover every row exactly once; some
// may be empty when workers exceeds rows.
func Partition(rows, workers int) []Task {
	if workers < 1 {
		workers = 1
	}
	tasks := make([]Task, workers)
	for i := range tasks {
		tasks[i] = Task{MinRow: rows * i / workers, MaxRow: rows * (i + 1) / workers}
	}
	return tasks
}

// Dispatcher runs one Step per tick across a fixed set of row partitions.
// The last partition is computed by the goroutine calling Tick; the others
// belong to long-lived worker goroutines.
type Dispatcher struct {
	tasks   []Task
	barrier Barrier
	wg      sync.WaitGroup
	started bool

	// Written by the driver before Arm, read by workers after Await.
	src, dst *core.Grid
}

// NewDispatcher partitions rows across workers and prepares a barrier for
// the workers-1 background goroutines.
func NewDispatcher(rows, workers int, s Strategy) *Dispatcher {
	tasks := Partition(rows, workers)
	return &Dispatcher{
		tasks:   tasks,
		barrier: NewBarrier(s, len(tasks)-1),
	}
}

// Tasks returns the row partitions. The last one belongs to the driver.
func (d *Dispatcher) Tasks() []Task { return d.tasks }

// Start launches the background workers.
func (d *Dispatcher) Start() {
	if d.started {
		return
	}
	d.started = true
	for i := 0; i < len(d.tasks)-1; i++ {
		d.wg.Add(1)
		go d.workerLoop(i)
	}
}

func (d *Dispatcher) workerLoop(i int) {
	defer d.wg.Done()
	task := d.tasks[i]
	for d.barrier.Await(i) {
		Step(d.src, d.dst, task.MinRow, task.MaxRow)
		d.barrier.Done(i)
	}
}

// Tick computes one full generation of src into dst. It returns false if
// the dispatcher was stopped before every partition retired, in which case
// dst must be treated as torn.
func (d *Dispatcher) Tick(src, dst *core.Grid) bool {
	d.src, d.dst = src, dst
	d.barrier.Arm()
	own := d.tasks[len(d.tasks)-1]
	Step(src, dst, own.MinRow, own.MaxRow)
	return d.barrier.Wait()
}

// Cancel stops new ticks from starting and releases every waiter.
func (d *Dispatcher) Cancel() { d.barrier.Cancel() }

// Stop cancels the barrier and waits for every worker to exit. Workers in
// the middle of a range finish it first.
func (d *Dispatcher) Stop() {
	d.barrier.Cancel()
	d.wg.Wait()
}
