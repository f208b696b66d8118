package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every configuration error returned from New.
	ErrInvalidConfig = errors.New("engine: invalid configuration")
	// ErrAlreadyRunning is returned when Run is called more than once.
	ErrAlreadyRunning = errors.New("engine: already running")
)

// ConfigError describes a rejected configuration field.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// InvariantError reports a buffer rotation that would hand the consumer's
// slot to the writers. It is raised with panic: it can only come from a
// logic defect.
type InvariantError struct {
	Current   int
	Published int
	Slots     int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("engine: no free write slot among %d (current=%d published=%d)", e.Slots, e.Current, e.Published)
}
