package i

import (
	"context"

	"github.com/google/uuid"
)

// LeaderboardEntry is one ranked player.
type LeaderboardEntry struct {
	PlayerID uuid.UUID `json:"playerId"`
	Depth    int       `json:"depth"`
}

// Leaderboard ranks players by the deepest level they reached.
type Leaderboard interface {
	// Record stores depth for the player if it beats their best, and
	// returns the best depth after the update.
	Record(ctx context.Context, playerID uuid.UUID, depth int) (int, error)

	// Top returns up to limit players, deepest first.
	Top(ctx context.Context, limit int64) ([]LeaderboardEntry, error)
}
