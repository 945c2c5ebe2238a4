package mood

// shiftCategory moves a mood to a new category on a major delta (|delta|>=2).
// The table is deliberately gradual: extreme categories never flip straight
// to their opposite. Angry must pass through anxious or calm on the way up,
// and the high positive moods fall to sad or anxious before anger is
// reachable.
func shiftCategory(category string, level, delta int) (string, int) {
	if delta >= 2 {
		switch category {
		case CategoryAngry:
			if level >= 2 {
				return CategoryAnxious, minInt(2, level)
			}
			return CategoryCalm, 1
		case CategoryAnxious:
			if level >= 2 {
				return CategoryCalm, 1
			}
			return CategoryHappy, 1
		case CategorySad:
			if level >= 2 {
				return CategoryCalm, 1
			}
			return CategoryHappy, 1
		case CategoryCalm:
			return CategoryHappy, minInt(2, level+1)
		case CategoryContemplative:
			return CategoryHappy, 1
		case CategoryHappy, CategoryExcited, CategoryPlayful:
			return category, minInt(3, level+1)
		}
	}

	if delta <= -2 {
		switch category {
		case CategoryHappy:
			if level >= 2 {
				return CategorySad, minInt(2, level)
			}
			return CategoryAnxious, 1
		case CategoryExcited:
			if level >= 2 {
				return CategoryAnxious, minInt(2, level)
			}
			return CategoryCalm, 1
		case CategoryPlayful:
			return CategoryAnxious, minInt(2, level)
		case CategoryCalm:
			return CategoryAnxious, 1
		case CategoryContemplative:
			return CategorySad, 1
		case CategorySad, CategoryAnxious:
			return CategoryAngry, minInt(3, maxInt(1, level+1))
		case CategoryAngry:
			return CategoryAngry, minInt(3, level-delta)
		}
	}

	return category, level
}

// extremeSwings are the category flips the moderator treats as whiplash.
var extremeSwings = [][2]string{
	{CategoryAngry, CategoryHappy},
	{CategoryHappy, CategoryAngry},
	{CategoryExcited, CategorySad},
	{CategorySad, CategoryExcited},
}

func isExtremeSwing(from, to string) bool {
	for _, swing := range extremeSwings {
		if from == swing[0] && to == swing[1] {
			return true
		}
	}
	return false
}

// isRapidTransition inspects the day's recent transition history and reports
// whether the next shift should be moderated. Two or more extreme swings in
// the window, or the day having already thrashed through enough distinct
// categories, both count. Fewer than two history rows never trigger.
func isRapidTransition(history []Transition, thrashCategories int) bool {
	if len(history) < 2 {
		return false
	}

	extremeCount := 0
	for _, tr := range history {
		if isExtremeSwing(tr.FromCategory, tr.ToCategory) {
			extremeCount++
		}
	}
	if extremeCount >= 2 {
		return true
	}

	seen := make(map[string]struct{})
	for _, tr := range history {
		seen[tr.FromCategory] = struct{}{}
		seen[tr.ToCategory] = struct{}{}
	}
	return len(seen) >= thrashCategories
}

// moderateTransition softens a shift that the rapid check flagged. An
// extreme flip is redirected to an intermediate category; anything else has
// its level movement clamped to one step.
func moderateTransition(fromCategory string, fromLevel int, toCategory string, toLevel int) (string, int) {
	if fromCategory == CategoryAngry && toCategory == CategoryHappy {
		return CategoryAnxious, minInt(2, fromLevel)
	}
	if fromCategory == CategoryHappy && toCategory == CategoryAngry {
		return CategorySad, minInt(2, fromLevel)
	}
	if fromCategory == CategoryExcited && toCategory == CategorySad {
		return CategoryCalm, minInt(2, fromLevel)
	}
	if fromCategory == CategorySad && toCategory == CategoryExcited {
		return CategoryCalm, minInt(2, fromLevel)
	}

	if toLevel > fromLevel {
		return toCategory, minInt(toLevel, fromLevel+1)
	}
	return toCategory, maxInt(toLevel, fromLevel-1)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
