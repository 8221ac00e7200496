package level

import (
	"errors"
	"fmt"
)

const (
	// minDimension keeps the center cell off the border.
	minDimension = 4

	defaultWidth                 = 30
	defaultHeight                = 30
	defaultPercentToFill         = 0.2
	defaultChanceWalkerChangeDir = 0.5
	defaultChanceWalkerSpawn     = 0.05
	defaultChanceWalkerDestroy   = 0.05
	defaultMaxWalkers            = 10
	defaultIterationSteps        = 100000
)

// Configuration errors.
var (
	ErrInvalidDimensions     = errors.New("invalid level dimensions")
	ErrInvalidProbability    = errors.New("probability out of range")
	ErrInvalidWalkerCap      = errors.New("max walkers must be at least 1")
	ErrInvalidIterationSteps = errors.New("iteration steps must not be negative")
)

// Config holds the generator's tuning options.
type Config struct {
	Width                 int     `json:"levelWidth"`            // Grid columns
	Height                int     `json:"levelHeight"`           // Grid rows
	PercentToFill         float64 `json:"percentToFill"`         // Floor fraction that stops the walk
	ChanceWalkerChangeDir float64 `json:"chanceWalkerChangeDir"` // Per-iteration redirect probability
	ChanceWalkerSpawn     float64 `json:"chanceWalkerSpawn"`     // Per-iteration spawn probability
	ChanceWalkerDestroy   float64 `json:"chanceWalkerDestroy"`   // Per-iteration cull probability
	MaxWalkers            int     `json:"maxWalkers"`            // Walker population cap
	IterationSteps        int     `json:"iterationSteps"`        // Hard iteration cap
}

// DefaultConfig returns the stock generator settings.
func DefaultConfig() Config {
	return Config{
		Width:                 defaultWidth,
		Height:                defaultHeight,
		PercentToFill:         defaultPercentToFill,
		ChanceWalkerChangeDir: defaultChanceWalkerChangeDir,
		ChanceWalkerSpawn:     defaultChanceWalkerSpawn,
		ChanceWalkerDestroy:   defaultChanceWalkerDestroy,
		MaxWalkers:            defaultMaxWalkers,
		IterationSteps:        defaultIterationSteps,
	}
}

// Validate rejects configurations the generator cannot run safely.
func (c Config) Validate() error {
	if c.Width < minDimension || c.Height < minDimension {
		return fmt.Errorf("%w: %dx%d, both sides must be at least %d", ErrInvalidDimensions, c.Width, c.Height, minDimension)
	}

	probabilities := []struct {
		name  string
		value float64
	}{
		{"percentToFill", c.PercentToFill},
		{"chanceWalkerChangeDir", c.ChanceWalkerChangeDir},
		{"chanceWalkerSpawn", c.ChanceWalkerSpawn},
		{"chanceWalkerDestroy", c.ChanceWalkerDestroy},
	}
	for _, p := range probabilities {
		// written this way so NaN fails too
		if !(p.value >= 0 && p.value <= 1) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidProbability, p.name, p.value)
		}
	}

	if c.MaxWalkers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWalkerCap, c.MaxWalkers)
	}
	if c.IterationSteps < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterationSteps, c.IterationSteps)
	}
	return nil
}
