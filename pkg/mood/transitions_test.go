package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftCategory_PositiveIsGradual(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		level     int
		delta     int
		wantCat   string
		wantLevel int
	}{
		{"furious cools to anxious, not happy", CategoryAngry, 3, 2, CategoryAnxious, 2},
		{"irritated settles to calm", CategoryAngry, 0, 2, CategoryCalm, 1},
		{"panicked steps down to calm", CategoryAnxious, 3, 2, CategoryCalm, 1},
		{"worried brightens to happy", CategoryAnxious, 0, 2, CategoryHappy, 1},
		{"despondent steps to calm first", CategorySad, 3, 2, CategoryCalm, 1},
		{"melancholy lifts to happy", CategorySad, 1, 2, CategoryHappy, 1},
		{"calm rises to happy", CategoryCalm, 1, 2, CategoryHappy, 2},
		{"contemplative lifts to happy", CategoryContemplative, 2, 2, CategoryHappy, 1},
		{"happy just climbs a level", CategoryHappy, 1, 2, CategoryHappy, 2},
		{"ecstatic stays capped", CategoryHappy, 3, 2, CategoryHappy, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, level := shiftCategory(tt.category, tt.level, tt.delta)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestShiftCategory_NegativeIsGradual(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		level     int
		delta     int
		wantCat   string
		wantLevel int
	}{
		{"joyful sinks to sad, not angry", CategoryHappy, 2, -2, CategorySad, 2},
		{"content turns anxious", CategoryHappy, 0, -2, CategoryAnxious, 1},
		{"euphoric turns anxious", CategoryExcited, 3, -2, CategoryAnxious, 2},
		{"interested settles to calm", CategoryExcited, 0, -2, CategoryCalm, 1},
		{"playful turns anxious", CategoryPlayful, 1, -2, CategoryAnxious, 1},
		{"calm turns anxious", CategoryCalm, 2, -2, CategoryAnxious, 1},
		{"contemplative turns sad", CategoryContemplative, 1, -2, CategorySad, 1},
		{"sad hardens into anger", CategorySad, 1, -2, CategoryAngry, 2},
		{"angry escalates by the delta", CategoryAngry, 1, -3, CategoryAngry, 3},
		{"angry caps at furious", CategoryAngry, 3, -3, CategoryAngry, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, level := shiftCategory(tt.category, tt.level, tt.delta)
			assert.Equal(t, tt.wantCat, cat)
			assert.Equal(t, tt.wantLevel, level)
		})
	}
}

func TestIsRapidTransition(t *testing.T) {
	// Too little history never triggers.
	assert.False(t, isRapidTransition([]Transition{
		{FromCategory: CategoryAngry, ToCategory: CategoryHappy},
	}, 4))

	// Two extreme swings in the window trigger moderation.
	assert.True(t, isRapidTransition([]Transition{
		{FromCategory: CategoryAngry, ToCategory: CategoryHappy},
		{FromCategory: CategoryHappy, ToCategory: CategoryAngry},
	}, 4))

	// Thrashing through four distinct categories triggers too.
	assert.True(t, isRapidTransition([]Transition{
		{FromCategory: CategoryCalm, ToCategory: CategoryAnxious},
		{FromCategory: CategoryAnxious, ToCategory: CategorySad},
		{FromCategory: CategorySad, ToCategory: CategoryPlayful},
	}, 4))

	// Mild history passes.
	assert.False(t, isRapidTransition([]Transition{
		{FromCategory: CategoryCalm, ToCategory: CategoryHappy},
		{FromCategory: CategoryHappy, ToCategory: CategoryCalm},
	}, 4))
}

func TestModerateTransition(t *testing.T) {
	cat, level := moderateTransition(CategoryAngry, 2, CategoryHappy, 3)
	assert.Equal(t, CategoryAnxious, cat)
	assert.Equal(t, 2, level)

	cat, level = moderateTransition(CategoryHappy, 1, CategoryAngry, 3)
	assert.Equal(t, CategorySad, cat)
	assert.Equal(t, 1, level)

	// Non-extreme targets just have their level movement clamped.
	cat, level = moderateTransition(CategoryCalm, 0, CategoryAnxious, 3)
	assert.Equal(t, CategoryAnxious, cat)
	assert.Equal(t, 1, level)
}
