package engine

import (
	"math"
	"sync/atomic"
	"time"
)

const (
	throughputSamples = 30
	throughputWindow  = 500 * time.Millisecond
)

// Throughput estimates steps per second from a ring of recent tick
// durations. Samples are taken at most once per window/len(ring) so the
// estimate does not depend on how often ticks complete or how often it is
// read. Record is producer-only; Rate may be called from any goroutine.
type Throughput struct {
	ring    []time.Duration
	pos     int
	filled  int
	sum     time.Duration
	spacing time.Duration
	last    time.Time

	rate atomic.Uint64
}

// NewThroughput returns a tracker with the default 30-sample, 0.5 s window.
func NewThroughput() *Throughput {
	return newThroughput(throughputSamples, throughputWindow)
}

func newThroughput(samples int, window time.Duration) *Throughput {
	return &Throughput{
		ring:    make([]time.Duration, samples),
		spacing: window / time.Duration(samples),
	}
}

// Record offers the duration of a tick that completed at the given time.
// It reports whether the sample was stored.
func (t *Throughput) Record(d time.Duration, at time.Time) bool {
	if !t.last.IsZero() && at.Sub(t.last) <= t.spacing {
		return false
	}
	t.last = at

	t.sum -= t.ring[t.pos]
	t.ring[t.pos] = d
	t.sum += d
	t.pos = (t.pos + 1) % len(t.ring)
	if t.filled < len(t.ring) {
		t.filled++
	}

	avg := t.sum.Seconds() / float64(t.filled)
	rate := 0.0
	if avg > 0 {
		rate = math.Round(1 / avg)
	}
	t.rate.Store(math.Float64bits(rate))
	return true
}

// Rate returns the estimated steps per second, or 0 before the first sample.
func (t *Throughput) Rate() float64 {
	return math.Float64frombits(t.rate.Load())
}
