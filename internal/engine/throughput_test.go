package engine

import (
	"math"
	"testing"
	"time"
)

func TestThroughputZeroBeforeSamples(t *testing.T) {
	tr := NewThroughput()
	if got := tr.Rate(); got != 0 {
		t.Fatalf("expected 0 before any sample, got %f", got)
	}
}

func TestThroughputIdenticalDurations(t *testing.T) {
	for _, d := range []time.Duration{2 * time.Millisecond, 16 * time.Millisecond, 333 * time.Microsecond} {
		tr := NewThroughput()
		at := time.Unix(100, 0)
		for i := 0; i < throughputSamples; i++ {
			at = at.Add(20 * time.Millisecond)
			if !tr.Record(d, at) {
				t.Fatalf("sample %d should be stored", i)
			}
		}
		want := 1 / d.Seconds()
		if got := tr.Rate(); math.Abs(got-want) > 1 {
			t.Fatalf("d=%v: expected rate near %f, got %f", d, want, got)
		}
	}
}

func TestThroughputThrottlesSamples(t *testing.T) {
	tr := NewThroughput()
	at := time.Unix(100, 0)
	if !tr.Record(10*time.Millisecond, at) {
		t.Fatal("first sample should always be stored")
	}
	if tr.Record(time.Millisecond, at.Add(5*time.Millisecond)) {
		t.Fatal("sample inside the spacing interval should be dropped")
	}
	if got := tr.Rate(); got != 100 {
		t.Fatalf("expected 100 steps/s from the stored sample, got %f", got)
	}
}

func TestThroughputEvictsOldestSample(t *testing.T) {
	tr := newThroughput(4, 400*time.Millisecond)
	at := time.Unix(0, 0)
	record := func(d time.Duration) {
		at = at.Add(time.Second)
		tr.Record(d, at)
	}
	for i := 0; i < 4; i++ {
		record(100 * time.Millisecond)
	}
	if got := tr.Rate(); got != 10 {
		t.Fatalf("expected 10 steps/s, got %f", got)
	}
	for i := 0; i < 4; i++ {
		record(10 * time.Millisecond)
	}
	if got := tr.Rate(); got != 100 {
		t.Fatalf("old samples should be evicted, got %f", got)
	}
}
