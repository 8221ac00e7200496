package i

import (
	"context"

	"github.com/beka-birhanu/vinom-walker/game"
	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/google/uuid"
)

// RunManager owns the active runs, at most one per player.
type RunManager interface {
	// Start begins a new run for the player, replacing any run in progress.
	// A nil cfg uses the server defaults and a nil seed picks one.
	Start(ctx context.Context, playerID uuid.UUID, cfg *level.Config, seed *int64) (*game.Run, error)

	// Defaults returns the level settings used when a request sends none.
	Defaults() level.Config

	// Get returns the player's active run.
	Get(playerID uuid.UUID) (*game.Run, error)

	// Move steps the player and handles level completion. It returns the
	// run the step was applied to.
	Move(ctx context.Context, playerID uuid.UUID, dir level.Direction) (*game.Run, game.MoveOutcome, error)

	// Reload regenerates the player's current level.
	Reload(playerID uuid.UUID) error

	// End discards the player's run.
	End(playerID uuid.UUID) error
}
