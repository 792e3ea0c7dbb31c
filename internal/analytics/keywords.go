package analytics

import (
	"regexp"
	"sort"
	"strings"

	"spyglass/pkg/models"
)

// MinKeywordLength is the shortest token (exclusive) admitted to the generic
// keyword table.
const MinKeywordLength = 3

var wordPattern = regexp.MustCompile(`\w+`)

// genericStopWords are dropped from every keyword table.
var genericStopWords = toSet([]string{
	"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with",
	"by", "is", "are", "was", "were", "be", "been", "have", "has", "had",
	"do", "does", "did", "will", "would", "could", "should", "may", "might",
	"can", "this", "that", "these", "those", "a", "an", "i", "you", "he",
	"she", "it", "we", "they", "me", "him", "her", "us", "them",
})

// Tokenize splits text into lower-cased word tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// Keywords builds the generic keyword frequency table over all post content:
// tokens longer than MinKeywordLength, stop words removed, ordered by count
// descending with ties kept in first-occurrence order.
func Keywords(posts []models.Post, limit int) []models.KeywordCount {
	var contents []string
	for _, p := range posts {
		contents = append(contents, p.Content)
	}
	tokens := Tokenize(strings.Join(contents, " "))

	keep := func(word string) bool {
		return len(word) > MinKeywordLength && !genericStopWords[word]
	}
	return CountWords(tokens, keep, limit)
}

// CountWords tallies the tokens admitted by keep and returns the top entries
// by count. Tie order follows first occurrence in the token stream, matching
// a stable descending sort over insertion order.
func CountWords(tokens []string, keep func(string) bool, limit int) []models.KeywordCount {
	counts := map[string]int{}
	order := []string{}
	for _, tok := range tokens {
		if !keep(tok) {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	result := make([]models.KeywordCount, 0, len(order))
	for _, word := range order {
		result = append(result, models.KeywordCount{Word: word, Count: counts[word]})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// IsGenericStopWord reports whether the word is in the shared stop list.
// Sentiment-specific keyword boards layer their own lists on top of it.
func IsGenericStopWord(word string) bool {
	return genericStopWords[word]
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
