package reports

import (
	"strings"

	"spyglass/pkg/models"
)

// Term lists behind the brand-experience filters. Matching is lowercase
// substring, same as the classifier lexicons.
var (
	experienceTerms = []string{
		"experience", "ride", "service", "customer", "tried", "used",
		"booked", "trip", "journey",
	}

	// positiveCoreTerms is the narrower list used for insight rates.
	positiveCoreTerms = []string{
		"good", "great", "excellent", "love", "amazing", "proud",
		"satisfied", "happy", "recommend", "fantastic", "wonderful",
		"reliable",
	}

	// positiveBrandTerms extends the core list for the positive review
	// sections.
	positiveBrandTerms = []string{
		"good", "great", "excellent", "love", "amazing", "proud",
		"satisfied", "happy", "recommend", "fantastic", "wonderful",
		"reliable", "clean", "comfortable", "professional", "on time",
		"punctual", "smooth",
	}

	negativeCoreTerms = []string{
		"bad", "poor", "terrible", "unreliable", "disappointed", "problem",
		"issue", "complaint", "failed", "unacceptable", "frustrated",
	}

	negativeBrandTerms = []string{
		"bad", "poor", "terrible", "unreliable", "disappointed", "problem",
		"issue", "complaint", "failed", "unacceptable", "frustrated",
		"worst", "awful", "horrible", "hate", "cancelled", "late", "dirty",
		"rude", "unprofessional", "expensive",
	}
)

func mentionsAny(text string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// filterPosts keeps posts whose lowercased content satisfies keep.
func filterPosts(posts []models.Post, keep func(text string) bool) []models.Post {
	out := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if keep(strings.ToLower(p.Content)) {
			out = append(out, p)
		}
	}
	return out
}

// experiencePosts are brand mentions in a first-person usage context, the
// population behind the key insights.
func (g *Generator) experiencePosts(posts []models.Post) []models.Post {
	return filterPosts(posts, func(text string) bool {
		return strings.Contains(text, g.brand) && mentionsAny(text, experienceTerms)
	})
}

// positiveBrandPosts feed the positive review sections.
func (g *Generator) positiveBrandPosts(posts []models.Post) []models.Post {
	return filterPosts(posts, func(text string) bool {
		return strings.Contains(text, g.brand) && mentionsAny(text, positiveBrandTerms)
	})
}

// negativeBrandPosts feed the negative review sections.
func (g *Generator) negativeBrandPosts(posts []models.Post) []models.Post {
	return filterPosts(posts, func(text string) bool {
		return strings.Contains(text, g.brand) && mentionsAny(text, negativeBrandTerms)
	})
}

func countMentioning(posts []models.Post, terms []string) int {
	n := 0
	for _, p := range posts {
		if mentionsAny(strings.ToLower(p.Content), terms) {
			n++
		}
	}
	return n
}
