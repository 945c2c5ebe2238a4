package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(CategoryHappy, 0))
	assert.NoError(t, Validate(CategoryAngry, 3))
	assert.Error(t, Validate("grumpy", 0))
	assert.Error(t, Validate(CategoryHappy, 4))
	assert.Error(t, Validate(CategoryHappy, -1))
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "furious", Description(CategoryAngry, 3))
	assert.Equal(t, "content", Description(CategoryHappy, 0))
	assert.Equal(t, "zen", Description(CategoryCalm, 3))
	assert.Equal(t, "", Description("grumpy", 0))
}

func TestModifiers_LevelAndIntensityScaling(t *testing.T) {
	// Level 3 at full intensity: multiplier is 1.01, values nearly base.
	m := Modifiers(CategoryAngry, 3, 1.0)
	assert.InDelta(t, 0.9595, m["hostility"], 0.001)

	// Patience bottoms out at the 0.1 floor.
	assert.Equal(t, 0.1, m["patience"])

	// Level 0 at low intensity halves and scales everything down.
	low := Modifiers(CategoryHappy, 0, 0.3)
	assert.InDelta(t, 0.12, low["enthusiasm"], 0.001)
}

func TestModifiers_ClampCeiling(t *testing.T) {
	m := Modifiers(CategoryExcited, 3, 1.0)
	assert.LessOrEqual(t, m["enthusiasm"], 1.0)
	assert.GreaterOrEqual(t, m["enthusiasm"], 0.1)
}
