/*
Package level procedurally generates 2D tile levels.

Generation runs four stages over one grid: a single walker is seeded at the
grid center, a population of random walkers carves floor until a fill target
or an iteration cap is reached, walls are inferred around the floor (with
bottom walls where a wall sits directly above floor), and finally the spawn
(grid center) and exit (farthest floor tile) are placed.

All randomness comes from the Random passed to Generate, so a seeded source
reproduces the same level.
*/
package level

import (
	"errors"
	"fmt"
)

// ErrNilRandom is returned when Generate is called without a Random.
var ErrNilRandom = errors.New("nil random source")

// Stats summarises a generation run.
type Stats struct {
	Iterations  int     `json:"iterations"`  // Walker iterations executed
	FloorCount  int     `json:"floorCount"`  // Floor tiles in the final grid
	FillRatio   float64 `json:"fillRatio"`   // FloorCount over total cells
	Filled      bool    `json:"filled"`      // False when the iteration cap stopped the walk
	PeakWalkers int     `json:"peakWalkers"` // Largest population observed
}

// Result is a finished level.
type Result struct {
	Grid  *Grid
	Spawn Point
	Exit  Point
	Stats Stats
}

// Option customises a Generate call.
type Option func(*options)

type options struct {
	onIteration func(IterationReport)
}

// WithIterationHook registers f to be called after every walker iteration.
func WithIterationHook(f func(IterationReport)) Option {
	return func(o *options) {
		o.onIteration = f
	}
}

// Generate builds a level from cfg, drawing all randomness from rng.
func Generate(cfg Config, rng Random, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generating level: %w", err)
	}
	if rng == nil {
		return nil, ErrNilRandom
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	sim := newSimulation(cfg, rng, o.onIteration)
	iterations := sim.run()

	grid := sim.grid
	deriveWalls(grid)
	deriveBottomWalls(grid)

	spawn := center(cfg.Width, cfg.Height)
	exit := placeExit(grid, spawn)

	ratio := sim.fillRatio()
	return &Result{
		Grid:  grid,
		Spawn: spawn,
		Exit:  exit,
		Stats: Stats{
			Iterations:  iterations,
			FloorCount:  sim.floors,
			FillRatio:   ratio,
			Filled:      ratio > cfg.PercentToFill,
			PeakWalkers: sim.peak,
		},
	}, nil
}
