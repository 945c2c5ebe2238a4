package relationship

import (
	"math"
	"sort"
	"time"

	"kindred/pkg/config"
)

// meetsRequirement reports whether a record satisfies every dimension of one
// level's threshold tuple. Zero-valued dimensions are unchecked.
func meetsRequirement(rec *Record, req config.LevelRequirement) bool {
	if rec.Conversations < req.Conversations {
		return false
	}
	if rec.TimeSpentMinutes < req.TimeMinutes {
		return false
	}
	if rec.EmotionalMoments < req.EmotionalMoments {
		return false
	}
	if rec.MemoriesShared < req.MemoriesShared {
		return false
	}
	if rec.ConflictsResolved < req.ConflictsResolved {
		return false
	}
	if rec.GrowthEvents < req.GrowthEvents {
		return false
	}
	if rec.Consistency < req.Consistency {
		return false
	}
	if rec.Authenticity < req.Authenticity {
		return false
	}
	return true
}

// targetLevel walks levels 1..10 in order, advancing while every requirement
// holds and stopping at the first unmet level. The result never drops below
// the record's stored level.
func targetLevel(rec *Record, reqs map[int]config.LevelRequirement) float64 {
	level := rec.Level
	for l := 1; l <= 10; l++ {
		req, ok := reqs[l]
		if !ok {
			break
		}
		if !meetsRequirement(rec, req) {
			break
		}
		if level < float64(l) {
			level = float64(l)
		}
	}
	return level
}

// computeConsistency is conversations per day of relationship age, capped at
// 1.0. Relationships younger than a day are treated as one day old.
func computeConsistency(rec *Record, now time.Time) float64 {
	ageDays := now.Sub(rec.CreatedAt).Hours() / 24
	if ageDays < 1 {
		ageDays = 1
	}
	consistency := float64(rec.Conversations) / ageDays
	if consistency > 1 {
		consistency = 1
	}
	return consistency
}

// computeAuthenticity estimates how organic a pair's emotional history looks:
// moments spread over distinct days, average intensity away from the maximum,
// and variety in session length. No history yields the neutral 0.5.
func computeAuthenticity(moments []EmotionalMoment, sessions []Session) float64 {
	if len(moments) == 0 {
		return 0.5
	}

	var factors []float64

	days := make(map[string]struct{})
	var intensitySum float64
	for _, m := range moments {
		days[m.Day] = struct{}{}
		intensitySum += m.Intensity
	}

	expectedDays := float64(len(moments)) / 3
	if expectedDays < 1 {
		expectedDays = 1
	}
	spread := float64(len(days)) / expectedDays
	if spread > 1 {
		spread = 1
	}
	factors = append(factors, spread)

	avgIntensity := intensitySum / float64(len(moments))
	moderation := 1 - math.Abs(avgIntensity-1.5)/1.5
	if moderation < 0 {
		moderation = 0
	}
	factors = append(factors, moderation)

	if len(sessions) > 0 {
		var durationSum float64
		distinct := make(map[int]struct{})
		for _, s := range sessions {
			durationSum += float64(s.DurationMin)
			distinct[s.DurationMin] = struct{}{}
		}
		expectedVariety := durationSum / float64(len(sessions)) / 5
		if expectedVariety < 1 {
			expectedVariety = 1
		}
		variety := float64(len(distinct)) / expectedVariety
		if variety > 1 {
			variety = 1
		}
		factors = append(factors, variety)
	}

	var sum float64
	for _, f := range factors {
		sum += f
	}
	return sum / float64(len(factors))
}

// nextLevelProgress builds the per-dimension progress view toward the level
// after the record's current one. Returns 0 and nil at level 10.
func nextLevelProgress(rec *Record, reqs map[int]config.LevelRequirement) (int, map[string]DimensionProgress) {
	next := int(rec.Level) + 1
	req, ok := reqs[next]
	if !ok {
		return 0, nil
	}

	progress := make(map[string]DimensionProgress)
	add := func(name string, current, required float64) {
		if required <= 0 {
			return
		}
		ratio := current / required
		if ratio > 1 {
			ratio = 1
		}
		progress[name] = DimensionProgress{Current: current, Required: required, Progress: ratio}
	}

	add("conversations", float64(rec.Conversations), float64(req.Conversations))
	add("time_minutes", float64(rec.TimeSpentMinutes), float64(req.TimeMinutes))
	add("emotional_moments", float64(rec.EmotionalMoments), float64(req.EmotionalMoments))
	add("memories_shared", float64(rec.MemoriesShared), float64(req.MemoriesShared))
	add("conflicts_resolved", float64(rec.ConflictsResolved), float64(req.ConflictsResolved))
	add("growth_events", float64(rec.GrowthEvents), float64(req.GrowthEvents))
	add("consistency", rec.Consistency, req.Consistency)
	add("authenticity", rec.Authenticity, req.Authenticity)

	return next, progress
}

// sortLeaderboard orders records by level desc, then conversations desc.
func sortLeaderboard(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Level != records[j].Level {
			return records[i].Level > records[j].Level
		}
		return records[i].Conversations > records[j].Conversations
	})
}
