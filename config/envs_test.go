package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Run("Unset key falls back", func(t *testing.T) {
		assert.Equal(t, "fallback", getEnvWithDefault("VINOM_DUNGEON_TEST_UNSET", "fallback"))
	})

	t.Run("Set key wins", func(t *testing.T) {
		t.Setenv("VINOM_DUNGEON_TEST_SET", "value")
		assert.Equal(t, "value", getEnvWithDefault("VINOM_DUNGEON_TEST_SET", "fallback"))
	})
}

func TestGetEnvAsIntWithDefault(t *testing.T) {
	t.Setenv("LEVEL_WIDTH", "21")
	assert.Equal(t, 21, getEnvAsIntWithDefault("LEVEL_WIDTH", 15))

	t.Setenv("LEVEL_WIDTH", "")
	assert.Equal(t, 15, getEnvAsIntWithDefault("LEVEL_WIDTH", 15))
}

func TestGetEnvAsInt64WithDefault(t *testing.T) {
	t.Setenv("LEVEL_SEED", "9007199254740993")
	assert.Equal(t, int64(9007199254740993), getEnvAsInt64WithDefault("LEVEL_SEED", 0))
}

func TestGetEnvAsBoolWithDefault(t *testing.T) {
	t.Setenv("LEVEL_DEBUG", "true")
	assert.True(t, getEnvAsBoolWithDefault("LEVEL_DEBUG", false))

	t.Setenv("LEVEL_DEBUG", "0")
	assert.False(t, getEnvAsBoolWithDefault("LEVEL_DEBUG", true))
}
