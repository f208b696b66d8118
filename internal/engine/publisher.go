package engine

import "sync"

// Publisher is the only point where the producer and the consumer meet.
// Its lock covers the latest settled slot and its step number, the slot the
// consumer currently reads, and whether commits are still accepted.
type Publisher struct {
	mu     sync.Mutex
	latest int
	step   uint64
	held   int
	closed bool
}

// NewPublisher exposes slot as generation zero.
func NewPublisher(slot int) *Publisher {
	return &Publisher{latest: slot, held: slot}
}

// Publish makes slot the latest generation with the given step number and
// returns the slot still held by the consumer. It reports false once the
// publisher is closed, in which case nothing changes.
func (p *Publisher) Publish(slot int, step uint64) (held int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return p.held, false
	}
	p.latest = slot
	p.step = step
	return p.held, true
}

// Acquire hands the latest generation to the consumer. The slot stays
// reserved for the consumer until the next Acquire.
func (p *Publisher) Acquire() (slot int, step uint64) {
	p.mu.Lock()
	p.held = p.latest
	slot, step = p.latest, p.step
	p.mu.Unlock()
	return slot, step
}

// Step returns the latest published step number without reserving a slot.
func (p *Publisher) Step() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.step
}

// Close rejects every later Publish.
func (p *Publisher) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}
