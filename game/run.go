/*
Package game hosts playable runs over generated levels.

A Run owns one player's play-through: the current level, the player's
position and how many levels deep the player is. Reaching a level's exit or
asking for a reload throws the level away and generates a fresh one; nothing
from the previous level is carried over except the depth counter.
*/
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/google/uuid"
)

// Run-related errors.
var (
	ErrBlocked         = errors.New("move blocked")
	ErrInvalidViewport = errors.New("viewport dimensions must be positive")
)

// MoveOutcome is the result of a single player step.
type MoveOutcome uint8

// Move outcomes.
const (
	Moved MoveOutcome = iota
	Blocked
	ExitReached
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case ExitReached:
		return "exitReached"
	}
	return "undefined"
}

// Run is one player's play-through of consecutive generated levels.
type Run struct {
	playerID  uuid.UUID     // Owner of the run.
	cfg       level.Config  // Generator settings shared by every level of the run.
	skins     Skins         // Variant counts used to dress the grid.
	seeds     *rand.Rand    // Draws a fresh seed for every level.
	levelSeed int64         // Seed of the current level.
	current   *level.Result // The level being played.
	variants  [][]uint8     // Cosmetic variant per cell, indexed [y][x].
	player    level.Point   // Player position on the current level.
	depth     int           // Levels cleared so far.
	version   int64         // Bumped on every state change.
	sync.RWMutex
}

// RunOption customises a new Run.
type RunOption func(*Run)

// WithSkins overrides the default variant counts.
func WithSkins(s Skins) RunOption {
	return func(r *Run) {
		r.skins = s
	}
}

// NewRun validates cfg and generates the first level of a run seeded with seed.
func NewRun(playerID uuid.UUID, cfg level.Config, seed int64, opts ...RunOption) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Run{
		playerID: playerID,
		cfg:      cfg,
		skins:    DefaultSkins(),
		seeds:    rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.regenerate(); err != nil {
		return nil, err
	}
	return r, nil
}

// regenerate replaces the current level with a new one. Callers hold the lock.
func (r *Run) regenerate() error {
	levelSeed := r.seeds.Int63()
	res, err := level.Generate(r.cfg, level.NewSource(levelSeed))
	if err != nil {
		return fmt.Errorf("regenerating level: %w", err)
	}

	r.levelSeed = levelSeed
	r.current = res
	r.variants = r.skins.dress(res.Grid, rand.New(rand.NewSource(r.seeds.Int63())))
	r.player = res.Spawn
	r.version++
	return nil
}

// Move steps the player one tile in dir. Only floor tiles can be entered.
// Stepping onto the exit clears the level and starts the next one.
func (r *Run) Move(dir level.Direction) (MoveOutcome, error) {
	r.Lock()
	defer r.Unlock()

	next := r.player.Add(dir.Delta())
	if r.current.Grid.AtPoint(next) != level.Floor {
		return Blocked, ErrBlocked
	}

	r.player = next
	r.version++
	if next != r.current.Exit {
		return Moved, nil
	}

	r.depth++
	if err := r.regenerate(); err != nil {
		return ExitReached, err
	}
	return ExitReached, nil
}

// Reload discards the current level and generates a new one at the same depth.
func (r *Run) Reload() error {
	r.Lock()
	defer r.Unlock()
	return r.regenerate()
}

// PlayerID returns the run's owner.
func (r *Run) PlayerID() uuid.UUID {
	return r.playerID
}

// Depth returns the number of levels cleared.
func (r *Run) Depth() int {
	r.RLock()
	defer r.RUnlock()
	return r.depth
}

// Level returns the level currently being played. The grid must not be mutated.
func (r *Run) Level() *level.Result {
	r.RLock()
	defer r.RUnlock()
	return r.current
}

// State returns a snapshot of the run.
func (r *Run) State() State {
	r.RLock()
	defer r.RUnlock()
	return State{
		PlayerID:  r.playerID,
		Depth:     r.depth,
		LevelSeed: r.levelSeed,
		Width:     r.current.Grid.Width(),
		Height:    r.current.Grid.Height(),
		Player:    r.player,
		Spawn:     r.current.Spawn,
		Exit:      r.current.Exit,
		Version:   r.version,
		Stats:     r.current.Stats,
	}
}

// State is a point-in-time copy of a run.
type State struct {
	PlayerID  uuid.UUID   `json:"playerId"`
	Depth     int         `json:"depth"`
	LevelSeed int64       `json:"levelSeed"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Player    level.Point `json:"player"`
	Spawn     level.Point `json:"spawn"`
	Exit      level.Point `json:"exit"`
	Version   int64       `json:"version"`
	Stats     level.Stats `json:"stats"`
}
