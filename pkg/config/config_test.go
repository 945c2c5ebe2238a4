package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Provide a path that definitely doesn't exist
	config, err := LoadConfig("non_existent_config.yml")
	require.NoError(t, err)

	assert.Equal(t, 5, config.Relationship.MinMessageLength)
	assert.Equal(t, 60, config.Relationship.CooldownSeconds)
	assert.Equal(t, 10, config.Relationship.MaxDailyMoments)
	assert.Equal(t, 100, config.Relationship.RewardPoolSize)
	assert.Len(t, config.Relationship.LevelRequirements, 10)
	assert.Equal(t, 0.1, config.Mood.IntensityStep)
	assert.Equal(t, 2, config.Mood.RapidDeltaFloor)
	assert.Equal(t, 3, config.Mood.ModerationWindow)
	assert.Equal(t, 4, config.Mood.ThrashCategories)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	content := []byte(`
relationship:
  min_message_length: 8
  cooldown_seconds: 30
  max_daily_emotional_moments: 5
  reward_pool_size: 50
mood:
  intensity_step: 0.2
  rapid_delta_floor: 3
  moderation_window: 5
  thrash_categories: 3
`)
	tmpfile, err := os.CreateTemp("", "config_test_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name()) // clean up

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	assert.Equal(t, 8, config.Relationship.MinMessageLength)
	assert.Equal(t, 30, config.Relationship.CooldownSeconds)
	assert.Equal(t, 5, config.Relationship.MaxDailyMoments)
	assert.Equal(t, 50, config.Relationship.RewardPoolSize)
	assert.Equal(t, 0.2, config.Mood.IntensityStep)
	assert.Equal(t, 3, config.Mood.RapidDeltaFloor)

	// The file omitted the progression table; defaults fill it in.
	assert.Len(t, config.Relationship.LevelRequirements, 10)
}

func TestLoadConfig_LevelRequirementOverride(t *testing.T) {
	content := []byte(`
relationship:
  level_requirements:
    1:
      conversations: 1
      time_minutes: 1
`)
	tmpfile, err := os.CreateTemp("", "config_levels_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	_, err = tmpfile.Write(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	config, err := LoadConfig(tmpfile.Name())
	require.NoError(t, err)

	req := config.Relationship.LevelRequirements[1]
	assert.Equal(t, 1, req.Conversations)
	assert.Equal(t, 1, req.TimeMinutes)
	assert.Zero(t, req.EmotionalMoments)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	content := []byte(`
relationship:
  cooldown_seconds: "not a number"
  broken_yaml: [ unclosed bracket
`)
	tmpfile, err := os.CreateTemp("", "config_invalid_*.yml")
	require.NoError(t, err)
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write(content); err != nil {
		tmpfile.Close()
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(tmpfile.Name())
	assert.Error(t, err)
	assert.Nil(t, config)
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("SURREAL_DB_HOST", "ws://localhost:8000")
	t.Setenv("SURREAL_DB_NAMESPACE", "")
	t.Setenv("SURREAL_DB_DATABASE", "")
	t.Setenv("REDIS_PREFIX", "")

	settings := LoadEnv()
	assert.Equal(t, "ws://localhost:8000", settings.SurrealHost)
	assert.Equal(t, "kindred", settings.SurrealNamespace)
	assert.Equal(t, "kindred", settings.SurrealDatabase)
	assert.Equal(t, "kindred", settings.RedisPrefix)
}

func TestLoadEnv_ExplicitValues(t *testing.T) {
	t.Setenv("SURREAL_DB_NAMESPACE", "staging")
	t.Setenv("REDIS_PREFIX", "kindred-staging")

	settings := LoadEnv()
	assert.Equal(t, "staging", settings.SurrealNamespace)
	assert.Equal(t, "kindred-staging", settings.RedisPrefix)
}
