package lexicon

import "strings"

// Classification is the mood-classification signal for one user message.
type Classification struct {
	Trigger string
	Delta   int
	Insult  bool
}

// Classify matches a message against the trigger table. The personal_insult
// category is checked first and is exclusive: once any insult pattern hits,
// no other category is considered, however polite the rest of the message is.
// Otherwise each matching non-insult category contributes its delta once.
func Classify(message string) Classification {
	messageLower := strings.ToLower(message)

	for _, trig := range moodTriggers {
		if !trig.Insult {
			continue
		}
		for _, pattern := range trig.Patterns {
			if pattern.MatchString(messageLower) {
				return Classification{
					Trigger: trig.Category,
					Delta:   trig.Delta,
					Insult:  true,
				}
			}
		}
	}

	total := 0
	for _, trig := range moodTriggers {
		if trig.Insult {
			continue
		}
		for _, pattern := range trig.Patterns {
			if pattern.MatchString(messageLower) {
				total += trig.Delta
				break // one hit per category
			}
		}
	}

	return Classification{
		Trigger: mainTrigger(total),
		Delta:   total,
	}
}

// mainTrigger collapses a summed delta into the dominant category name.
func mainTrigger(total int) string {
	switch {
	case total > 2:
		return TriggerSupportive
	case total > 0:
		return TriggerPositive
	case total < -2:
		return TriggerDismissive
	case total < 0:
		return TriggerNegative
	default:
		return TriggerNeutral
	}
}
