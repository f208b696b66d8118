package engine

import (
	"errors"
	"testing"
)

func TestRotatorNeverPicksPublishedSlot(t *testing.T) {
	for slots := 3; slots <= 5; slots++ {
		r := NewRotator(slots)
		for round := 0; round < 50; round++ {
			for published := 0; published < slots; published++ {
				r.Settle()
				cur := r.Current()
				next := r.Choose(published)
				if next == published {
					t.Fatalf("slots=%d: next %d equals published slot", slots, next)
				}
				if next == cur {
					t.Fatalf("slots=%d: next %d equals current slot", slots, next)
				}
			}
		}
	}
}

func TestRotatorPrefersLowestFreeSlot(t *testing.T) {
	r := NewRotator(5)
	if r.Current() != 0 || r.Next() != 1 {
		t.Fatalf("expected initial roles current=0 next=1, got %d/%d", r.Current(), r.Next())
	}
	if got := r.Settle(); got != 1 {
		t.Fatalf("Settle should promote next, got %d", got)
	}
	if got := r.Choose(0); got != 2 {
		t.Fatalf("expected slot 2 with 0 published and 1 current, got %d", got)
	}
	r.Settle()
	if got := r.Choose(4); got != 0 {
		t.Fatalf("expected slot 0, got %d", got)
	}
}

func TestRotatorPanicsWithoutFreeSlot(t *testing.T) {
	r := NewRotator(2)
	r.Settle()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok {
			t.Fatalf("expected an error panic, got %v", rec)
		}
		var inv *InvariantError
		if !errors.As(err, &inv) {
			t.Fatalf("expected *InvariantError, got %T", err)
		}
	}()
	r.Choose(0)
}
