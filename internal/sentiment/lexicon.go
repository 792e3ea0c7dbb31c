package sentiment

// Lexicon holds the word lists the classifier scores against. The lists are
// configuration data: tests inject small fixtures, production uses
// DefaultLexicon.
type Lexicon struct {
	StrongPositive   []string
	ModeratePositive []string
	StrongNegative   []string
	ModerateNegative []string
	Business         []string

	// Override phrases short-circuit scoring entirely.
	HiringPhrases    []string
	ComplaintPhrases []string
	PraisePhrases    []string
}

// DefaultLexicon returns the production word lists.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StrongPositive: []string{
			"proud", "excited", "amazing", "love", "fantastic", "wonderful",
			"incredible", "thrilled", "delighted", "grateful", "blessed",
			"honored", "celebrating", "achievement", "success", "growth",
			"milestone", "breakthrough",
		},
		ModeratePositive: []string{
			"great", "excellent", "good", "best", "happy", "pleased",
			"satisfied", "impressed", "recommend", "enjoy", "appreciate",
			"thankful", "welcome", "congratulations",
		},
		StrongNegative: []string{
			"disappointed", "frustrated", "angry", "terrible", "awful",
			"worst", "hate", "disgusted", "upset", "annoyed", "failed",
			"problem", "issue", "complaint", "unreliable", "poor", "bad",
			"wrong", "mistake", "error", "broken", "unacceptable",
		},
		ModerateNegative: []string{
			"concerned", "worried", "troubled", "difficult", "challenging",
			"struggle", "delay", "late", "slow", "expensive", "overpriced",
			"confused", "unclear",
		},
		Business: []string{
			"hiring", "looking", "announcement", "update", "news",
			"information", "details", "company", "team", "position", "role",
			"job", "career", "business", "startup", "funding", "investment",
			"partnership", "collaboration",
		},
		HiringPhrases:    []string{"hiring", "looking for", "join our team"},
		ComplaintPhrases: []string{"complaint", "unreliable", "poor service"},
		PraisePhrases:    []string{"proud", "excited", "thrilled"},
	}
}
