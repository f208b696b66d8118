package ui

import "fmt"

// Stats is the per-frame status line shown over the grid.
type Stats struct {
	FPS   float64
	Frame uint64
	SPS   float64
	Step  uint64
}

// Lag is how many generations the engine is ahead of the frame counter.
func (s Stats) Lag() int64 { return int64(s.Step) - int64(s.Frame) }

func (s Stats) String() string {
	return fmt.Sprintf("FPS %.0f\tFID %d\nSPS %.0f\tSID %d (d %d)", s.FPS, s.Frame, s.SPS, s.Step, s.Lag())
}
