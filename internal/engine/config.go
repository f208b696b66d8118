package engine

import (
	"fmt"
	"log"
	"strconv"
)

// Strategy selects how the per-tick barrier waits.
type Strategy string

const (
	// StrategyBlocking parks waiters on a condition variable.
	StrategyBlocking Strategy = "blocking"
	// StrategySpin polls atomic flags, yielding the processor between polls.
	StrategySpin Strategy = "spin"
)

const minSlots = 3

// Config controls the engine dimensions and worker pool. It is fixed for the
// lifetime of an Engine.
type Config struct {
	// Size is the side length N of the square grid.
	Size int
	// Workers is the total number of row partitions, including the driver.
	Workers int
	// Slots is the number of rotating grid buffers (at least 3).
	Slots int
	// Strategy selects the barrier implementation.
	Strategy Strategy
	// Limit stops the engine after this many generations. Zero runs until
	// Shutdown.
	Limit uint64

	Logger *log.Logger
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     2000,
		Workers:  10,
		Slots:    minSlots,
		Strategy: StrategyBlocking,
	}
}

// Validate reports the first invalid field as a *ConfigError.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return &ConfigError{Field: "size", Value: c.Size, Reason: "must be positive"}
	}
	if c.Workers < 1 {
		return &ConfigError{Field: "workers", Value: c.Workers, Reason: "need at least one"}
	}
	if c.Slots < minSlots {
		return &ConfigError{Field: "slots", Value: c.Slots, Reason: fmt.Sprintf("need at least %d", minSlots)}
	}
	switch c.Strategy {
	case StrategyBlocking, StrategySpin:
	default:
		return &ConfigError{Field: "strategy", Value: c.Strategy, Reason: "unknown barrier strategy"}
	}
	return nil
}

// FromMap applies string key/value overrides (flag-style) on top of base.
// Unknown keys and unparsable values are rejected.
func FromMap(base Config, cfg map[string]string) (Config, error) {
	c := base
	for k, v := range cfg {
		switch k {
		case "n", "size":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("engine: parse %s: %w", k, err)
			}
			c.Size = parsed
		case "workers":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("engine: parse %s: %w", k, err)
			}
			c.Workers = parsed
		case "slots":
			parsed, err := strconv.Atoi(v)
			if err != nil {
				return c, fmt.Errorf("engine: parse %s: %w", k, err)
			}
			c.Slots = parsed
		case "strategy":
			c.Strategy = Strategy(v)
		case "steps", "limit":
			parsed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return c, fmt.Errorf("engine: parse %s: %w", k, err)
			}
			c.Limit = parsed
		default:
			return c, fmt.Errorf("engine: unknown config key %q", k)
		}
	}
	return c, nil
}
