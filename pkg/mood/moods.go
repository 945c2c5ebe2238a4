package mood

import "fmt"

// The eight mood categories. Each has four named levels of rising intensity
// and a set of base behavior modifiers.
const (
	CategoryHappy         = "happy"
	CategorySad           = "sad"
	CategoryAngry         = "angry"
	CategoryExcited       = "excited"
	CategoryCalm          = "calm"
	CategoryAnxious       = "anxious"
	CategoryPlayful       = "playful"
	CategoryContemplative = "contemplative"
)

type moodDef struct {
	levels        [4]string
	baseModifiers map[string]float64
}

var moods = map[string]moodDef{
	CategoryHappy: {
		levels: [4]string{"content", "cheerful", "joyful", "ecstatic"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.8,
			"helpfulness": 0.9,
			"patience":    0.8,
			"creativity":  0.9,
		},
	},
	CategorySad: {
		levels: [4]string{"melancholy", "downcast", "sorrowful", "despondent"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.3,
			"helpfulness": 0.6,
			"patience":    0.7,
			"creativity":  0.5,
		},
	},
	CategoryAngry: {
		levels: [4]string{"irritated", "annoyed", "frustrated", "furious"},
		baseModifiers: map[string]float64{
			"enthusiasm":      0.1,
			"helpfulness":     0.1,
			"patience":        0.05,
			"creativity":      0.3,
			"hostility":       0.95,
			"defensiveness":   0.95,
			"confrontational": 0.9,
			"meanness":        0.85,
			"darkness":        0.8,
		},
	},
	CategoryExcited: {
		levels: [4]string{"interested", "enthusiastic", "thrilled", "euphoric"},
		baseModifiers: map[string]float64{
			"enthusiasm":  1.0,
			"helpfulness": 0.8,
			"patience":    0.5,
			"creativity":  1.0,
		},
	},
	CategoryCalm: {
		levels: [4]string{"peaceful", "serene", "tranquil", "zen"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.6,
			"helpfulness": 0.8,
			"patience":    1.0,
			"creativity":  0.7,
		},
	},
	CategoryAnxious: {
		levels: [4]string{"worried", "nervous", "stressed", "panicked"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.5,
			"helpfulness": 0.7,
			"patience":    0.4,
			"creativity":  0.8,
		},
	},
	CategoryPlayful: {
		levels: [4]string{"mischievous", "silly", "whimsical", "giddy"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.9,
			"helpfulness": 0.7,
			"patience":    0.6,
			"creativity":  1.0,
		},
	},
	CategoryContemplative: {
		levels: [4]string{"thoughtful", "reflective", "philosophical", "profound"},
		baseModifiers: map[string]float64{
			"enthusiasm":  0.6,
			"helpfulness": 0.8,
			"patience":    0.9,
			"creativity":  0.9,
		},
	},
}

// categories lists the category names in a stable order, so random daily
// mood selection is reproducible under a seeded source.
var categories = []string{
	CategoryHappy,
	CategorySad,
	CategoryAngry,
	CategoryExcited,
	CategoryCalm,
	CategoryAnxious,
	CategoryPlayful,
	CategoryContemplative,
}

// Validate checks that a category exists and the level is within its range.
func Validate(category string, level int) error {
	def, ok := moods[category]
	if !ok {
		return fmt.Errorf("invalid mood category: %s", category)
	}
	if level < 0 || level >= len(def.levels) {
		return fmt.Errorf("invalid mood level %d for category %s", level, category)
	}
	return nil
}

// Description returns the level name for a category, e.g. angry level 3 is
// "furious".
func Description(category string, level int) string {
	def, ok := moods[category]
	if !ok || level < 0 || level >= len(def.levels) {
		return ""
	}
	return def.levels[level]
}

// Modifiers scales a category's base modifiers by the level and intensity.
// Level stretches a multiplier from 0.5 to roughly 1.0; every modifier is
// clamped to [0.1, 1.0].
func Modifiers(category string, level int, intensity float64) map[string]float64 {
	def, ok := moods[category]
	if !ok {
		return nil
	}

	levelMultiplier := 0.5 + float64(level)*0.17

	modifiers := make(map[string]float64, len(def.baseModifiers))
	for key, base := range def.baseModifiers {
		value := base * levelMultiplier * intensity
		if value < 0.1 {
			value = 0.1
		}
		if value > 1.0 {
			value = 1.0
		}
		modifiers[key] = value
	}
	return modifiers
}
