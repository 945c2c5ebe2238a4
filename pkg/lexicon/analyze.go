// Package lexicon scores and classifies conversation text with fixed keyword
// and pattern tables. Everything here is pure: no storage, no network, no
// language model. The tables are loaded once at init and read-only after.
package lexicon

import (
	"strings"
	"unicode"
)

// MaxEmotionalScore caps the per-exchange emotional score.
const MaxEmotionalScore = 5.0

// Analysis is the relationship-scoring signal for one exchange.
type Analysis struct {
	EmotionalScore    float64
	DepthScore        float64
	AuthenticityScore float64
	DetectedEmotions  []string
	PersonalShare     bool
	ConflictResolved  bool
}

// Analyze scores a user message and the character's response. Messages
// shorter than minLength characters score zero across the board.
func Analyze(message, response string, minLength int) Analysis {
	if len(message) < minLength {
		return Analysis{}
	}

	messageLower := strings.ToLower(message)
	responseLower := strings.ToLower(response)

	var emotional float64
	var detected []string
	for _, lex := range emotionLexicons {
		hit := false
		for _, keyword := range lex.Keywords {
			if strings.Contains(messageLower, keyword) {
				emotional++
				hit = true
			}
			if strings.Contains(responseLower, keyword) {
				emotional += 0.5
			}
		}
		if hit {
			detected = append(detected, lex.Emotion)
		}
	}
	if emotional > MaxEmotionalScore {
		emotional = MaxEmotionalScore
	}

	words := strings.Fields(message)

	depthIndicators := []bool{
		len(words) > 10,
		strings.Contains(message, "?"),
		containsAny(messageLower, reflectiveVerbs),
		containsAny(messageLower, speculativeConnectives),
		strings.ContainsAny(message, `"'`),
		containsAny(messageLower, affectAdjectives),
	}
	depth := ratio(depthIndicators)

	authenticityIndicators := []bool{
		!isRepetitive(messageLower),
		!hasSpamPatterns(message),
		hasNaturalFlow(words),
	}
	authenticity := ratio(authenticityIndicators)

	personal := containsAny(messageLower, personalSharePhrases)

	classification := Classify(message)
	conflictResolved := classification.Delta > 0 && containsAny(messageLower, reconciliationPhrases)

	return Analysis{
		EmotionalScore:    emotional,
		DepthScore:        depth,
		AuthenticityScore: authenticity,
		DetectedEmotions:  detected,
		PersonalShare:     personal,
		ConflictResolved:  conflictResolved,
	}
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, needle) {
			return true
		}
	}
	return false
}

func ratio(indicators []bool) float64 {
	var met int
	for _, ok := range indicators {
		if ok {
			met++
		}
	}
	return float64(met) / float64(len(indicators))
}

// isRepetitive flags messages where one word makes up more than 40% of the
// tokens. Very short messages count as repetitive.
func isRepetitive(messageLower string) bool {
	words := strings.Fields(messageLower)
	if len(words) < 3 {
		return true
	}

	counts := make(map[string]int, len(words))
	max := 0
	for _, word := range words {
		counts[word]++
		if counts[word] > max {
			max = counts[word]
		}
	}
	return float64(max) > float64(len(words))*0.4
}

// hasSpamPatterns catches keyboard-mash input: 5+ runs of one character, an
// immediately doubled word, or text with no letters at all.
func hasSpamPatterns(message string) bool {
	run := 0
	var prev rune
	hasLetter := false
	for _, r := range message {
		if unicode.IsLetter(r) {
			hasLetter = true
		}
		if r == prev {
			run++
			if run >= 5 {
				return true
			}
		} else {
			run = 1
			prev = r
		}
	}
	if !hasLetter {
		return true
	}

	words := strings.Fields(strings.ToLower(message))
	for i := 1; i < len(words); i++ {
		if words[i] == words[i-1] {
			return true
		}
	}
	return false
}

// hasNaturalFlow is a cheap sentence-structure check: real sentences tend to
// carry a copula/modal verb or a pronoun.
func hasNaturalFlow(words []string) bool {
	if len(words) < 2 {
		return false
	}
	for _, word := range words {
		lower := strings.ToLower(strings.Trim(word, ".,!?;:'\""))
		for _, verb := range copulaModals {
			if lower == verb {
				return true
			}
		}
		for _, pronoun := range pronouns {
			if lower == pronoun {
				return true
			}
		}
	}
	return false
}
