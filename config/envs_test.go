package config

import (
	"strconv"
	"testing"

	"github.com/beka-birhanu/vinom-walker/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLevelConfig(t *testing.T) {
	t.Run("defaults when unset", func(t *testing.T) {
		cfg, err := levelConfig(lookupFrom(nil))
		require.NoError(t, err)
		assert.Equal(t, level.DefaultConfig(), cfg)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		cfg, err := levelConfig(lookupFrom(map[string]string{
			"LEVEL_WIDTH":           "48",
			"LEVEL_HEIGHT":          "24",
			"LEVEL_PERCENT_TO_FILL": "0.35",
			"LEVEL_MAX_WALKERS":     "4",
		}))
		require.NoError(t, err)

		assert.Equal(t, 48, cfg.Width)
		assert.Equal(t, 24, cfg.Height)
		assert.Equal(t, 0.35, cfg.PercentToFill)
		assert.Equal(t, 4, cfg.MaxWalkers)
		assert.Equal(t, level.DefaultConfig().IterationSteps, cfg.IterationSteps)
	})

	t.Run("malformed number", func(t *testing.T) {
		_, err := levelConfig(lookupFrom(map[string]string{"LEVEL_WIDTH": "wide"}))
		assert.ErrorIs(t, err, strconv.ErrSyntax)
		assert.Contains(t, err.Error(), "LEVEL_WIDTH")
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := levelConfig(lookupFrom(map[string]string{"LEVEL_CHANCE_SPAWN": "2"}))
		assert.ErrorIs(t, err, level.ErrInvalidProbability)
	})
}

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("VINOM_WALKER_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvWithDefault("VINOM_WALKER_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnvWithDefault("VINOM_WALKER_TEST_MISSING", "fallback"))
}
