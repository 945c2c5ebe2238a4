package lexicon

import "regexp"

// Trigger categories for mood classification.
const (
	TriggerPositive   = "positive"
	TriggerNegative   = "negative"
	TriggerSupportive = "supportive"
	TriggerDismissive = "dismissive"
	TriggerInsult     = "personal_insult"
	TriggerNeutral    = "neutral"
)

// emotionLexicon maps an emotion tag to the keywords that signal it.
type emotionLexicon struct {
	Emotion  string
	Keywords []string
}

var emotionLexicons = []emotionLexicon{
	{"joy", []string{"happy", "excited", "thrilled", "delighted", "joy", "pleased", "wonderful", "amazing", "fantastic", "great"}},
	{"sadness", []string{"sad", "depressed", "melancholy", "down", "blue", "unhappy", "disappointed", "heartbroken", "lonely"}},
	{"anger", []string{"angry", "mad", "furious", "irritated", "annoyed", "frustrated", "rage", "hate", "disgusted"}},
	{"fear", []string{"afraid", "scared", "terrified", "anxious", "worried", "nervous", "fearful", "panicked", "stressed"}},
	{"surprise", []string{"surprised", "shocked", "amazed", "astonished", "stunned", "bewildered", "confused"}},
	{"love", []string{"love", "adore", "cherish", "care", "affection", "romantic", "passionate", "devoted"}},
	{"trust", []string{"trust", "believe", "rely", "depend", "confident", "secure", "faithful"}},
	{"gratitude", []string{"thankful", "grateful", "appreciate", "blessed", "fortunate", "thank you"}},
	{"hope", []string{"hope", "wish", "dream", "aspire", "believe", "optimistic", "positive"}},
	{"empathy", []string{"understand", "feel", "relate", "sympathize", "compassion", "care about"}},
}

// trigger is one mood-affecting category: its compiled patterns and the
// integer delta it contributes. Insult triggers short-circuit everything else.
type trigger struct {
	Category string
	Patterns []*regexp.Regexp
	Delta    int
	Insult   bool
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

// moodTriggers is ordered: the insult trigger comes first and is exclusive.
var moodTriggers = []trigger{
	{
		Category: TriggerInsult,
		Delta:    -3,
		Insult:   true,
		Patterns: compileAll(
			`\b(you are|you're)\s+(stupid|dumb|an? idiot|a moron|pathetic|worthless|a loser|a failure)\b`,
			`\b(you are|you're)\s+\w+\s+(stupid|dumb|an? idiot|a moron|pathetic|worthless|a loser|a failure)\b`,
			`\b(stupid|dumb|idiot|moron|pathetic|worthless|loser|failure)\s+(ai|bot|machine|computer)\b`,
			`\b(shut up|fuck you|go to hell|screw you|bite me)\b`,
			`\b(you suck|you're terrible|you're awful|you're useless|you're annoying)\b`,
			`\b(i hate you|you disgust me|you're disgusting|you make me sick)\b`,
			`\b(stupid|dumb|idiot|moron|pathetic|worthless|loser|failure)(\s+\w+)*\s*$`,
			`\b(such an?|what an?|being an?)\s+(stupid|dumb|idiot|moron|pathetic|worthless|loser|failure)\b`,
		),
	},
	{
		Category: TriggerPositive,
		Delta:    1,
		Patterns: compileAll(
			`\b(thank you|thanks|appreciate|grateful|wonderful|amazing|great|awesome|love|like)\b`,
			`\b(please|could you|would you mind|if you don't mind)\b`,
			`\b(compliment|praise|good job|well done|excellent|brilliant)\b`,
			`\b(fun|funny|laugh|smile|joy|happy|excited)\b`,
		),
	},
	{
		Category: TriggerNegative,
		Delta:    -1,
		Patterns: compileAll(
			`\b(do this|you must|you should|you have to|just do|hurry up)\b`,
			`\b(stupid|dumb|useless|terrible|awful|hate|annoying)\b`,
			`\b(shut up|be quiet|stop|enough|whatever)\b`,
			`\b(demand|order|command|insist)\b`,
		),
	},
	{
		Category: TriggerSupportive,
		Delta:    2,
		Patterns: compileAll(
			`\b(understand|support|here for you|care about|feel better)\b`,
			`\b(it's okay|don't worry|take your time|no pressure)\b`,
			`\b(comfort|console|encourage|cheer up)\b`,
		),
	},
	{
		Category: TriggerDismissive,
		Delta:    -2,
		Patterns: compileAll(
			`\b(don't care|whatever|boring|pointless|waste of time)\b`,
			`\b(ignore|dismiss|unimportant|trivial)\b`,
		),
	},
}

// Depth indicator word lists.
var (
	reflectiveVerbs        = []string{"feel", "think", "believe", "remember", "experience", "like", "want", "need", "hope", "wish"}
	speculativeConnectives = []string{"why", "how", "what if", "imagine", "maybe", "could", "would"}
	affectAdjectives       = []string{"good", "bad", "happy", "sad", "excited", "worried", "love", "hate"}
)

// Natural-flow word lists: a message reads as language when it carries a
// copula/modal or a pronoun.
var (
	copulaModals = []string{"am", "is", "are", "was", "were", "have", "has", "had", "do", "does", "did", "will", "would", "can", "could", "should"}
	pronouns     = []string{"i", "you", "he", "she", "it", "we", "they", "me", "him", "her", "us", "them"}
)

// Personal-share phrases: first-person disclosures that mark an exchange as
// the user opening up about their own life.
var personalSharePhrases = []string{
	"my parents", "my family", "my sister", "my brother", "my mom", "my dad",
	"my wife", "my husband", "my partner", "my girlfriend", "my boyfriend",
	"my children", "my kids", "my son", "my daughter",
	"my job", "my work", "my career", "my boss", "my company",
	"my friend", "my roommate", "my ex", "my childhood", "my past",
	"my school", "my college", "my degree", "my studies",
	"my problem", "my struggle", "my dream", "my goal", "my fear", "my anxiety",
	"my relationship", "my health", "my home", "my hometown",
	"my favorite", "my hobby", "my belief", "my culture", "my identity",
}

// Reconciliation phrases: apologetic or mending language that, paired with a
// positive trigger, counts as resolving an earlier conflict.
var reconciliationPhrases = []string{
	"sorry", "i apologize", "my bad", "forgive me", "didn't mean",
	"let's move on", "let's start over", "make it up to you", "we're good",
}

