package relationship

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"kindred/pkg/config"
)

func TestMeetsRequirement_ZeroDimensionsUnchecked(t *testing.T) {
	rec := &Record{Conversations: 2, TimeSpentMinutes: 5, EmotionalMoments: 1, MemoriesShared: 1}
	req := config.LevelRequirement{Conversations: 2, TimeMinutes: 5, EmotionalMoments: 1, MemoriesShared: 1}

	assert.True(t, meetsRequirement(rec, req))

	req.Consistency = 0.3
	assert.True(t, meetsRequirement(rec, req), "zero-valued record dimension should fail only when required")

	rec.Consistency = 0.3
	assert.True(t, meetsRequirement(rec, req))
}

func TestTargetLevel_StopsAtFirstUnmet(t *testing.T) {
	reqs := config.DefaultLevelRequirements()
	rec := &Record{
		Conversations:    6,
		TimeSpentMinutes: 15,
		EmotionalMoments: 3,
		MemoriesShared:   3,
	}

	assert.Equal(t, 3.0, targetLevel(rec, reqs))
}

func TestTargetLevel_NeverDropsBelowStored(t *testing.T) {
	reqs := config.DefaultLevelRequirements()
	rec := &Record{Level: 5}

	assert.Equal(t, 5.0, targetLevel(rec, reqs), "a stored level must survive even when its requirements no longer hold")
}

func TestComputeConsistency(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	rec := &Record{Conversations: 5, CreatedAt: now.Add(-10 * 24 * time.Hour)}
	assert.InDelta(t, 0.5, computeConsistency(rec, now), 0.001)

	// Younger than a day counts as one day, and the score caps at 1.
	rec = &Record{Conversations: 40, CreatedAt: now.Add(-time.Hour)}
	assert.Equal(t, 1.0, computeConsistency(rec, now))
}

func TestComputeAuthenticity_NoHistoryIsNeutral(t *testing.T) {
	assert.Equal(t, 0.5, computeAuthenticity(nil, nil))
}

func TestComputeAuthenticity_SpreadAndModeration(t *testing.T) {
	moments := []EmotionalMoment{
		{Day: "2026-03-01", Intensity: 1.5},
		{Day: "2026-03-02", Intensity: 1.5},
		{Day: "2026-03-03", Intensity: 1.5},
	}

	// Three moments on three days, intensity centered: both factors max out.
	assert.InDelta(t, 1.0, computeAuthenticity(moments, nil), 0.001)

	// Six same-day moments at maximum intensity: spread halves, moderation
	// bottoms out at zero.
	maxed := make([]EmotionalMoment, 6)
	for i := range maxed {
		maxed[i] = EmotionalMoment{Day: "2026-03-01", Intensity: 3.0}
	}
	assert.InDelta(t, 0.25, computeAuthenticity(maxed, nil), 0.001)
}

func TestSortLeaderboard(t *testing.T) {
	records := []Record{
		{UserID: "a", Level: 3, Conversations: 10},
		{UserID: "b", Level: 5, Conversations: 2},
		{UserID: "c", Level: 5, Conversations: 9},
	}

	sortLeaderboard(records)

	assert.Equal(t, "c", records[0].UserID)
	assert.Equal(t, "b", records[1].UserID)
	assert.Equal(t, "a", records[2].UserID)
}
