// Package sentiment implements the rule-based post classifier. Labels are
// derived from weighted lexicon hits plus an engagement adjustment, with a
// small set of override phrases that win outright.
package sentiment

import (
	"strings"

	"spyglass/pkg/models"
)

// Scoring weights and engagement thresholds. The values are part of the
// output contract; tests assert them directly.
const (
	StrongWordWeight   = 3
	ModerateWordWeight = 1

	HighEngagementThreshold     = 100
	ModerateEngagementThreshold = 50
	LowEngagementThreshold      = 10

	HighEngagementBonus     = 2
	ModerateEngagementBonus = 1
	LowEngagementPenalty    = -1

	// A comment-heavy post reads as controversial rather than popular.
	ControversyCommentRatio = 0.1
	ControversyMinComments  = 5
)

// Classifier assigns sentiment labels. It is stateless apart from its
// lexicon and deterministic for identical inputs.
type Classifier struct {
	lex Lexicon
}

// NewClassifier creates a classifier using the given lexicon.
func NewClassifier(lex Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify returns exactly one label for the given content and engagement
// counters. Rules are priority-ordered: override phrases first, then
// weighted scoring; ties resolve to neutral.
func (c *Classifier) Classify(content string, likes, comments, shares int) models.Sentiment {
	text := strings.ToLower(content)

	if containsAny(text, c.lex.HiringPhrases) {
		return models.SentimentNeutral
	}
	if containsAny(text, c.lex.ComplaintPhrases) {
		return models.SentimentNegative
	}
	if containsAny(text, c.lex.PraisePhrases) {
		return models.SentimentPositive
	}

	positiveScore := countMatches(text, c.lex.StrongPositive)*StrongWordWeight +
		countMatches(text, c.lex.ModeratePositive)*ModerateWordWeight
	negativeScore := countMatches(text, c.lex.StrongNegative)*StrongWordWeight +
		countMatches(text, c.lex.ModerateNegative)*ModerateWordWeight
	businessScore := countMatches(text, c.lex.Business)

	bonus := engagementBonus(likes, comments, shares)

	finalPositive := positiveScore + bonus
	finalNegative := negativeScore - bonus

	switch {
	case finalPositive > finalNegative && finalPositive > businessScore:
		return models.SentimentPositive
	case finalNegative > finalPositive && finalNegative > businessScore:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// engagementBonus adjusts lexical scores by reception: well-received posts
// lean positive, ignored or comment-swamped posts lean negative.
func engagementBonus(likes, comments, shares int) int {
	total := likes + comments + shares

	bonus := 0
	switch {
	case total > HighEngagementThreshold:
		bonus = HighEngagementBonus
	case total > ModerateEngagementThreshold:
		bonus = ModerateEngagementBonus
	case total < LowEngagementThreshold:
		bonus = LowEngagementPenalty
	}

	// Zero likes means ratio 0, never a division by zero.
	commentRatio := 0.0
	if likes > 0 {
		commentRatio = float64(comments) / float64(likes)
	}
	if commentRatio > ControversyCommentRatio && comments > ControversyMinComments {
		bonus--
	}

	return bonus
}

// countMatches counts how many lexicon words occur in text. Each word counts
// at most once regardless of repetition; matching is plain substring.
func countMatches(text string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			count++
		}
	}
	return count
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
