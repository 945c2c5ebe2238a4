package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const minLength = 5

func TestAnalyze_ShortMessageScoresZero(t *testing.T) {
	analysis := Analyze("hey", "long and thoughtful response", minLength)

	assert.Zero(t, analysis.EmotionalScore)
	assert.Zero(t, analysis.DepthScore)
	assert.Zero(t, analysis.AuthenticityScore)
	assert.Empty(t, analysis.DetectedEmotions)
}

func TestAnalyze_EmotionalKeywords(t *testing.T) {
	analysis := Analyze("I am so happy and grateful today", "", minLength)

	assert.Greater(t, analysis.EmotionalScore, 0.0)
	assert.Contains(t, analysis.DetectedEmotions, "joy")
	assert.Contains(t, analysis.DetectedEmotions, "gratitude")
}

func TestAnalyze_ResponseHitsWeighHalf(t *testing.T) {
	withResponse := Analyze("tell me more about it", "that sounds wonderful", minLength)
	withoutResponse := Analyze("tell me more about it", "", minLength)

	assert.InDelta(t, 0.5, withResponse.EmotionalScore-withoutResponse.EmotionalScore, 0.001)
}

func TestAnalyze_EmotionalScoreCap(t *testing.T) {
	// Stacks keywords across many lexicons in both message and response.
	message := "happy sad angry afraid surprised love trust thankful hope understand amazing excited"
	analysis := Analyze(message, message, minLength)

	assert.Equal(t, MaxEmotionalScore, analysis.EmotionalScore)
}

func TestAnalyze_DepthIndicators(t *testing.T) {
	// Long, questioning, reflective, speculative, quoting, affect-laden.
	deep := Analyze(
		`I keep wondering why I feel this way, maybe it is because she said "you never listen" and that made me sad?`,
		"", minLength)
	shallow := Analyze("ok then fine", "", minLength)

	assert.Equal(t, 1.0, deep.DepthScore)
	assert.Less(t, shallow.DepthScore, deep.DepthScore)
}

func TestAnalyze_Authenticity(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
	}{
		{"natural message", "I was thinking about what you said yesterday", 1.0},
		{"repeated word", "spam spam spam spam spam", 0.0},
		{"character run", "this is sooooooo cool really", 2.0 / 3.0},
		{"no letters", "1234 5678 9012", 1.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis := Analyze(tt.message, "", minLength)
			assert.InDelta(t, tt.want, analysis.AuthenticityScore, 0.001)
		})
	}
}

func TestAnalyze_PersonalShare(t *testing.T) {
	shared := Analyze("I have been stressed about my job lately", "", minLength)
	assert.True(t, shared.PersonalShare)

	plain := Analyze("what is the weather like today", "", minLength)
	assert.False(t, plain.PersonalShare)
}

func TestAnalyze_ConflictResolved(t *testing.T) {
	mended := Analyze("I am sorry about earlier, thanks for being patient with me", "", minLength)
	assert.True(t, mended.ConflictResolved)

	// Apology without any positive trigger does not count.
	flat := Analyze("sorry it broke again", "", minLength)
	assert.False(t, flat.ConflictResolved)
}
