package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/vinom-walker/game"
	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/beka-birhanu/vinom-walker/service/i"
	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("no active run")

var _ i.RunManager = &RunManager{}

// RunManager keeps one active run per player in memory and reports cleared
// levels to the leaderboard and the player's profile.
type RunManager struct {
	runs        map[uuid.UUID]*game.Run
	defaults    level.Config
	skins       game.Skins
	leaderboard i.Leaderboard
	userRepo    i.UserRepo
	logger      i.Logger
	newSeed     func() int64
	sync.RWMutex
}

// RunManagerConfig holds the dependencies of a RunManager. Leaderboard and
// UserRepo are optional.
type RunManagerConfig struct {
	Defaults    level.Config
	Skins       game.Skins
	Leaderboard i.Leaderboard
	UserRepo    i.UserRepo
	Logger      i.Logger
	SeedFunc    func() int64
}

// NewRunManager validates the default level settings and creates a RunManager.
func NewRunManager(c *RunManagerConfig) (*RunManager, error) {
	if c.Logger == nil {
		return nil, errors.New("run manager requires a logger")
	}
	if err := c.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default level config: %w", err)
	}

	seedFunc := c.SeedFunc
	if seedFunc == nil {
		seedFunc = func() int64 { return time.Now().UnixNano() }
	}

	skins := c.Skins
	if skins == nil {
		skins = game.DefaultSkins()
	}

	return &RunManager{
		runs:        make(map[uuid.UUID]*game.Run),
		defaults:    c.Defaults,
		skins:       skins,
		leaderboard: c.Leaderboard,
		userRepo:    c.UserRepo,
		logger:      c.Logger,
		newSeed:     seedFunc,
	}, nil
}

// Defaults returns the level settings used when a request sends none.
func (m *RunManager) Defaults() level.Config {
	return m.defaults
}

// Start begins a run, replacing the player's current one.
func (m *RunManager) Start(ctx context.Context, playerID uuid.UUID, cfg *level.Config, seed *int64) (*game.Run, error) {
	runCfg := m.defaults
	if cfg != nil {
		runCfg = *cfg
	}

	runSeed := m.newSeed()
	if seed != nil {
		runSeed = *seed
	}

	run, err := game.NewRun(playerID, runCfg, runSeed, game.WithSkins(m.skins))
	if err != nil {
		m.logger.Warning(fmt.Sprintf("rejected run for player %s: %s", playerID, err))
		return nil, err
	}

	m.Lock()
	m.runs[playerID] = run
	m.Unlock()

	s := run.State()
	m.logger.Info(fmt.Sprintf("started run for player %s: seed=%d size=%dx%d fill=%.3f iterations=%d",
		playerID, runSeed, s.Width, s.Height, s.Stats.FillRatio, s.Stats.Iterations))
	if !s.Stats.Filled {
		m.logger.Warning(fmt.Sprintf("level for player %s stopped at the iteration cap before reaching the fill target", playerID))
	}
	return run, nil
}

// Get returns the player's run.
func (m *RunManager) Get(playerID uuid.UUID) (*game.Run, error) {
	m.RLock()
	defer m.RUnlock()
	run, ok := m.runs[playerID]
	if !ok {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// Move steps the player and returns the run it acted on. A cleared level is
// recorded before returning; a failure to record is logged and does not fail
// the move.
func (m *RunManager) Move(ctx context.Context, playerID uuid.UUID, dir level.Direction) (*game.Run, game.MoveOutcome, error) {
	run, err := m.Get(playerID)
	if err != nil {
		return nil, game.Blocked, err
	}

	outcome, err := run.Move(dir)
	if err != nil {
		return run, outcome, err
	}

	if outcome == game.ExitReached {
		depth := run.Depth()
		m.logger.Info(fmt.Sprintf("player %s cleared a level, now at depth %d", playerID, depth))
		m.recordClear(ctx, playerID, depth)
	}
	return run, outcome, nil
}

func (m *RunManager) recordClear(ctx context.Context, playerID uuid.UUID, depth int) {
	if m.leaderboard != nil {
		if _, err := m.leaderboard.Record(ctx, playerID, depth); err != nil {
			m.logger.Error(fmt.Sprintf("recording depth %d for player %s: %s", depth, playerID, err))
		}
	}

	if m.userRepo == nil {
		return
	}
	user, err := m.userRepo.ByID(playerID)
	if err != nil {
		m.logger.Error(fmt.Sprintf("loading player %s: %s", playerID, err))
		return
	}
	if err := user.RecordClear(depth); err != nil {
		m.logger.Error(fmt.Sprintf("updating progress for player %s: %s", playerID, err))
		return
	}
	if err := m.userRepo.Save(user); err != nil {
		m.logger.Error(fmt.Sprintf("saving progress for player %s: %s", playerID, err))
	}
}

// Reload regenerates the player's current level.
func (m *RunManager) Reload(playerID uuid.UUID) error {
	run, err := m.Get(playerID)
	if err != nil {
		return err
	}
	if err := run.Reload(); err != nil {
		m.logger.Error(fmt.Sprintf("reloading level for player %s: %s", playerID, err))
		return err
	}
	m.logger.Info(fmt.Sprintf("reloaded level for player %s", playerID))
	return nil
}

// End discards the player's run.
func (m *RunManager) End(playerID uuid.UUID) error {
	m.Lock()
	defer m.Unlock()
	if _, ok := m.runs[playerID]; !ok {
		return ErrRunNotFound
	}
	delete(m.runs, playerID)
	m.logger.Info(fmt.Sprintf("ended run for player %s", playerID))
	return nil
}
