package app

import (
	"flag"
	"fmt"
	"strings"

	"mad-life/internal/engine"
)

// Config represents the command-line parameters shared by the binaries.
type Config struct {
	Size     int
	Workers  int
	Slots    int
	Strategy string
	Steps    uint64
	Density  float64
	Seed     int64
	Pattern  string
	Scale    int
	TPS      int

	// Overrides holds -set key=value pairs applied through engine.FromMap.
	Overrides map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := engine.DefaultConfig()
	return &Config{
		Size:      def.Size,
		Workers:   def.Workers,
		Slots:     def.Slots,
		Strategy:  string(def.Strategy),
		Density:   0.4,
		Seed:      42,
		Pattern:   "random",
		Scale:     1,
		TPS:       60,
		Overrides: map[string]string{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "n", c.Size, "grid side length")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row partitions, including the driver")
	fs.IntVar(&c.Slots, "slots", c.Slots, "rotating grid buffers (>= 3)")
	fs.StringVar(&c.Strategy, "strategy", c.Strategy, "barrier strategy: blocking or spin")
	fs.Uint64Var(&c.Steps, "steps", c.Steps, "stop after this many generations (0 = unlimited)")
	fs.Float64Var(&c.Density, "density", c.Density, "initial live-cell probability for the random pattern")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display/poll rate per second")
	fs.Func("set", "engine override as key=value (repeatable)", func(v string) error {
		key, val, ok := strings.Cut(v, "=")
		if !ok || key == "" {
			return fmt.Errorf("expected key=value, got %q", v)
		}
		c.Overrides[key] = val
		return nil
	})
}

// Engine builds the engine configuration from the flags and overrides.
func (c *Config) Engine() (engine.Config, error) {
	cfg := engine.DefaultConfig()
	cfg.Size = c.Size
	cfg.Workers = c.Workers
	cfg.Slots = c.Slots
	cfg.Strategy = engine.Strategy(c.Strategy)
	cfg.Limit = c.Steps
	cfg, err := engine.FromMap(cfg, c.Overrides)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
