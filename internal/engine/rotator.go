package engine

// Rotator tracks which slot is the settled read source ("current") and which
// is the exclusive write target ("next").
type Rotator struct {
	slots   int
	current int
	next    int
}

// NewRotator starts with slot 0 as current and slot 1 as next.
func NewRotator(slots int) *Rotator {
	return &Rotator{slots: slots, current: 0, next: 1}
}

// Current returns the slot holding the latest settled generation.
func (r *Rotator) Current() int { return r.current }

// Next returns the slot being written.
func (r *Rotator) Next() int { return r.next }

// Settle promotes the just-written slot to current and returns it. Choose
// must be called before the next tick.
func (r *Rotator) Settle() int {
	r.current = r.next
	return r.current
}

// Choose picks the next write target: the lowest slot that is neither
// current nor published. It panics with *InvariantError when no such slot
// exists.
func (r *Rotator) Choose(published int) int {
	for i := 0; i < r.slots; i++ {
		if i != r.current && i != published {
			r.next = i
			return i
		}
	}
	panic(&InvariantError{Current: r.current, Published: published, Slots: r.slots})
}
