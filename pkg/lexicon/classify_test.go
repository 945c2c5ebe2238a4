package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_InsultIsExclusive(t *testing.T) {
	// Polite words do not dilute an insult.
	c := Classify("thanks, but you're such an idiot")

	assert.Equal(t, TriggerInsult, c.Trigger)
	assert.Equal(t, -3, c.Delta)
	assert.True(t, c.Insult)
}

func TestClassify_InsultVariants(t *testing.T) {
	messages := []string{
		"you are an idiot",
		"you're completely worthless",
		"shut up",
		"i hate you",
		"stupid bot",
		"you suck",
		"what a pathetic excuse",
	}

	for _, msg := range messages {
		t.Run(msg, func(t *testing.T) {
			c := Classify(msg)
			assert.Equal(t, TriggerInsult, c.Trigger)
			assert.True(t, c.Insult)
		})
	}
}

func TestClassify_Deltas(t *testing.T) {
	tests := []struct {
		name    string
		message string
		trigger string
		delta   int
	}{
		{"positive", "thank you for the help", TriggerPositive, 1},
		{"supportive plus positive", "don't worry, I understand and I appreciate you", TriggerSupportive, 3},
		{"negative", "just do it and hurry up", TriggerNegative, -1},
		{"dismissive plus negative", "this is boring and pointless, whatever", TriggerDismissive, -3},
		{"neutral", "the meeting starts at noon tomorrow", TriggerNeutral, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.message)
			assert.Equal(t, tt.trigger, c.Trigger)
			assert.Equal(t, tt.delta, c.Delta)
			assert.False(t, c.Insult)
		})
	}
}

func TestClassify_EachCategoryCountsOnce(t *testing.T) {
	// Two positive patterns still contribute a single +1.
	c := Classify("thanks, good job, that was awesome and brilliant")

	assert.Equal(t, 1, c.Delta)
	assert.Equal(t, TriggerPositive, c.Trigger)
}
