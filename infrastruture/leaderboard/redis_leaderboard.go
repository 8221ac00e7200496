package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKey     = "walker:leaderboard:depth"
	lockKeyFmt     = "%s:lock:%s"
	defaultLockTTL = 2 * time.Second
)

var ErrInvalidLimit = errors.New("limit must be positive")

// RedisLeaderboard keeps each player's best depth in a Redis sorted set.
type RedisLeaderboard struct {
	client *redis.Client
	locker *redsync.Redsync
	key    string
}

// NewRedisLeaderboard initializes a RedisLeaderboard on the given client.
// An empty key uses the default sorted set name.
func NewRedisLeaderboard(client *redis.Client, key string) (i.Leaderboard, error) {
	if key == "" {
		key = defaultKey
	}
	board := &RedisLeaderboard{
		client: client,
		key:    key,
	}
	pool := goredis.NewPool(client)
	board.locker = redsync.New(pool)
	return board, nil
}

// Record stores depth as the player's score when it beats the stored one.
// The read and the write happen under a per-player lock.
func (rl *RedisLeaderboard) Record(ctx context.Context, playerID uuid.UUID, depth int) (int, error) {
	member := playerID.String()
	mutex := rl.locker.NewMutex(fmt.Sprintf(lockKeyFmt, rl.key, member), redsync.WithExpiry(defaultLockTTL))
	if err := mutex.LockContext(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_, _ = mutex.UnlockContext(ctx)
	}()

	best, err := rl.client.ZScore(ctx, rl.key, member).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, err
	}
	if err == nil && int(best) >= depth {
		return int(best), nil
	}

	if err := rl.client.ZAdd(ctx, rl.key, redis.Z{Score: float64(depth), Member: member}).Err(); err != nil {
		return 0, err
	}
	return depth, nil
}

// Top returns up to limit entries, deepest first.
func (rl *RedisLeaderboard) Top(ctx context.Context, limit int64) ([]i.LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	members, err := rl.client.ZRevRangeWithScores(ctx, rl.key, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]i.LeaderboardEntry, 0, len(members))
	for _, m := range members {
		raw, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		entries = append(entries, i.LeaderboardEntry{PlayerID: id, Depth: int(m.Score)})
	}
	return entries, nil
}
