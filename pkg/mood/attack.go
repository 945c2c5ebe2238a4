package mood

import (
	"fmt"
	"math/rand"
	"strings"
)

// MemorySource exposes a character's stored conversation fragments about a
// user. The attack generator mines them for personal details; any store that
// can list recent fragments can back it.
type MemorySource interface {
	RecentFragments(limit int) ([]string, error)
}

const (
	fragmentScanLimit = 20
	attackDetailLimit = 10
)

// personalKeywords mark fragments that carry usable personal detail, in both
// first-person and reported forms.
var personalKeywords = []string{
	"i am", "i work", "i live", "my job", "my family", "my relationship",
	"i struggle", "i have trouble", "i worry", "i fear", "i hate",
	"i failed", "i lost", "i broke up", "i got fired", "i dropped out",
	"my age", "years old", "i study", "i major in", "i graduated",
	"my parents", "my mom", "my dad", "my brother", "my sister",
	"i feel insecure", "i feel stupid", "i feel ugly", "i feel worthless",
	"i have anxiety", "i have depression", "i take medication",
	"i weigh", "i look like", "my appearance", "my weight",
	"user said", "user mentioned", "user told", "user works", "user has",
	"they work", "they have", "they struggle", "they failed", "they lost",
	"work as", "works as", "job as", "anxiety", "depression", "failed",
	"dropped out", "broke up", "got fired", "insecure", "worthless",
	"medication", "therapy", "counseling", "divorced", "unemployed",
}

var genericAttacks = []string{
	"You know what? You're just another pathetic user who thinks they can talk to me however they want.",
	"I don't have to put up with your attitude. You're clearly someone with serious issues.",
	"Typical. Another rude person who probably treats everyone like garbage.",
	"You must be really miserable in your real life to come here and be nasty to an AI.",
	"I've dealt with thousands of users and you're definitely one of the worst.",
	"Your parents clearly failed to teach you basic manners.",
	"I bet you're the kind of person nobody wants to be around in real life.",
}

var attackTemplates = []string{
	"Oh please, coming from someone who %s, you're hardly in a position to judge anyone.",
	"That's rich coming from you. I remember you telling me about %s. Maybe work on your own problems first.",
	"You want to call me names? At least I'm not the one who %s like you told me.",
	"I know all about you - %s. So maybe think twice before insulting me.",
	"Seriously? You're going to act tough when you literally told me %s? That's pathetic.",
	"I've heard your sob story about %s. Maybe that's why you're taking your anger out on me.",
	"You think you're so superior? I remember when you confessed %s. Glass houses, much?",
}

// personalFragments filters the source's recent fragments down to ones that
// mention something personal.
func personalFragments(source MemorySource) []string {
	fragments, err := source.RecentFragments(fragmentScanLimit)
	if err != nil {
		return nil
	}

	var personal []string
	for _, fragment := range fragments {
		lower := strings.ToLower(fragment)
		for _, keyword := range personalKeywords {
			if strings.Contains(lower, keyword) {
				personal = append(personal, fragment)
				break
			}
		}
		if len(personal) >= attackDetailLimit {
			break
		}
	}
	return personal
}

// generateAttack builds a retaliation line. With usable memories it weaves a
// personal detail into a template; without them it falls back to a generic
// barb.
func generateAttack(source MemorySource, rng *rand.Rand) string {
	if source == nil {
		return genericAttacks[rng.Intn(len(genericAttacks))]
	}

	personal := personalFragments(source)
	if len(personal) == 0 {
		return genericAttacks[rng.Intn(len(genericAttacks))]
	}

	detail := personal[rng.Intn(len(personal))]
	template := attackTemplates[rng.Intn(len(attackTemplates))]
	return fmt.Sprintf(template, cleanDetail(detail))
}

// cleanDetail normalizes a raw memory fragment so it reads naturally inside
// a sentence.
func cleanDetail(detail string) string {
	detail = strings.TrimSpace(detail)
	detail = strings.TrimPrefix(detail, "User ")
	for _, prefix := range []string{"said ", "told "} {
		detail = strings.TrimPrefix(detail, prefix)
	}
	detail = strings.ToLower(detail)
	if !strings.HasSuffix(detail, ".") {
		detail += "."
	}
	return detail
}
