package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LevelRequirement is the threshold tuple a relationship must meet before it
// can advance to a given level. Zero-valued dimensions are not checked, so
// higher levels can add dimensions the lower ones don't have.
type LevelRequirement struct {
	Conversations     int     `yaml:"conversations"`
	TimeMinutes       int     `yaml:"time_minutes"`
	EmotionalMoments  int     `yaml:"emotional_moments"`
	MemoriesShared    int     `yaml:"memories_shared"`
	ConflictsResolved int     `yaml:"conflicts_resolved"`
	GrowthEvents      int     `yaml:"growth_events"`
	Consistency       float64 `yaml:"consistency"`
	Authenticity      float64 `yaml:"authenticity"`
}

type Config struct {
	Relationship struct {
		MinMessageLength  int                      `yaml:"min_message_length"`
		CooldownSeconds   int                      `yaml:"cooldown_seconds"`
		MaxDailyMoments   int                      `yaml:"max_daily_emotional_moments"`
		RewardPoolSize    int                      `yaml:"reward_pool_size"`
		LevelRequirements map[int]LevelRequirement `yaml:"level_requirements"`
	} `yaml:"relationship"`
	Mood struct {
		IntensityStep    float64 `yaml:"intensity_step"`
		RapidDeltaFloor  int     `yaml:"rapid_delta_floor"`
		ModerationWindow int     `yaml:"moderation_window"`
		ThrashCategories int     `yaml:"thrash_categories"`
	} `yaml:"mood"`
}

// defaults fills in every setting; the level thresholds are illustrative
// starting points and are expected to be tuned per deployment.
func defaults() *Config {
	cfg := &Config{}
	cfg.Relationship.MinMessageLength = 5
	cfg.Relationship.CooldownSeconds = 60
	cfg.Relationship.MaxDailyMoments = 10
	cfg.Relationship.RewardPoolSize = 100
	cfg.Relationship.LevelRequirements = DefaultLevelRequirements()
	cfg.Mood.IntensityStep = 0.1
	cfg.Mood.RapidDeltaFloor = 2
	cfg.Mood.ModerationWindow = 3
	cfg.Mood.ThrashCategories = 4
	return cfg
}

// DefaultLevelRequirements returns the built-in progression table. Levels 1-4
// gate on raw activity counters; consistency and authenticity join at level 5,
// growth events at 6 and resolved conflicts at 7, so the later levels demand
// sustained, varied engagement rather than volume alone.
func DefaultLevelRequirements() map[int]LevelRequirement {
	return map[int]LevelRequirement{
		1:  {Conversations: 2, TimeMinutes: 5, EmotionalMoments: 1, MemoriesShared: 1},
		2:  {Conversations: 4, TimeMinutes: 10, EmotionalMoments: 2, MemoriesShared: 2},
		3:  {Conversations: 6, TimeMinutes: 15, EmotionalMoments: 3, MemoriesShared: 3},
		4:  {Conversations: 8, TimeMinutes: 20, EmotionalMoments: 4, MemoriesShared: 4},
		5:  {Conversations: 10, TimeMinutes: 30, EmotionalMoments: 5, MemoriesShared: 5, Consistency: 0.3, Authenticity: 0.4},
		6:  {Conversations: 12, TimeMinutes: 40, EmotionalMoments: 6, MemoriesShared: 6, GrowthEvents: 3, Consistency: 0.3, Authenticity: 0.4},
		7:  {Conversations: 14, TimeMinutes: 50, EmotionalMoments: 7, MemoriesShared: 7, GrowthEvents: 4, ConflictsResolved: 1, Consistency: 0.4, Authenticity: 0.4},
		8:  {Conversations: 16, TimeMinutes: 60, EmotionalMoments: 8, MemoriesShared: 8, GrowthEvents: 5, ConflictsResolved: 1, Consistency: 0.5, Authenticity: 0.5},
		9:  {Conversations: 18, TimeMinutes: 70, EmotionalMoments: 9, MemoriesShared: 9, GrowthEvents: 6, ConflictsResolved: 2, Consistency: 0.5, Authenticity: 0.5},
		10: {Conversations: 20, TimeMinutes: 80, EmotionalMoments: 10, MemoriesShared: 10, GrowthEvents: 7, ConflictsResolved: 2, Consistency: 0.5, Authenticity: 0.5},
	}
}

func LoadConfig(path string) (*Config, error) {
	config := defaults()

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return config, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(file, config)
	if err != nil {
		return nil, err
	}

	if len(config.Relationship.LevelRequirements) == 0 {
		config.Relationship.LevelRequirements = DefaultLevelRequirements()
	}

	return config, nil
}
