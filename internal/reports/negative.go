package reports

import (
	"sort"
	"strings"

	"spyglass/internal/analytics"
	"spyglass/pkg/models"
)

// Complaint severity by reception: a complaint nobody engages with is the
// one most likely to go unaddressed.
const (
	severityHighBelow   = 10
	severityMediumBelow = 30
)

var negativeKeywordColors = []string{
	"bg-red-100 text-red-800",
	"bg-orange-100 text-orange-800",
	"bg-pink-100 text-pink-800",
	"bg-rose-100 text-rose-800",
	"bg-amber-100 text-amber-800",
	"bg-yellow-100 text-yellow-800",
}

// negativeKeywordAllowList is the inverse of the positive board's stop-list
// approach: only recognized complaint vocabulary is counted.
var negativeKeywordAllowList = toSet([]string{
	"bad", "poor", "terrible", "awful", "horrible", "worst", "hate",
	"disappointed", "frustrated", "unreliable", "failed", "cancelled",
	"late", "dirty", "rude", "unprofessional", "expensive", "overpriced",
	"unacceptable", "problem", "issue", "complaint", "broken", "slow",
	"unresponsive", "annoying", "frustrating", "disappointing", "unpleasant",
	"unsatisfactory", "inadequate", "incompetent", "careless", "negligent",
	"unhelpful", "unfriendly", "aggressive", "hostile", "disgusting",
	"filthy", "smelly", "uncomfortable", "unsafe", "dangerous", "risky",
	"scary", "nightmare", "disaster", "chaos", "mess", "confusion",
	"delayed", "postponed", "missed", "ignored", "rejected", "denied",
	"refused", "blocked", "restricted", "limited", "incomplete", "defective",
	"faulty", "malfunctioning", "glitchy", "buggy", "crashed", "frozen",
	"stuck", "overcharged", "billed", "charged", "cost", "price", "rip-off",
	"scam", "fraud", "deception", "misleading", "false", "fake", "phony",
	"bogus",
})

// fallbackNegativeWords pad the board when the data yields fewer than eight
// complaint words, at a fixed count so reruns stay identical.
var fallbackNegativeWords = []string{
	"Bad", "Poor", "Terrible", "Awful", "Horrible", "Worst", "Hate",
	"Disappointed",
}

const fallbackNegativeCount = 1

// NegativeKeywords builds the complaint vocabulary board: allow-listed words
// from negative brand posts, top 8 by count, padded deterministically when
// the data is thin.
func (g *Generator) NegativeKeywords(posts []models.Post) []models.Keyword {
	negative := g.negativeBrandPosts(posts)

	var contents []string
	for _, p := range negative {
		contents = append(contents, p.Content)
	}
	tokens := analytics.Tokenize(strings.Join(contents, " "))

	keep := func(word string) bool {
		return len(word) > 2 && negativeKeywordAllowList[word]
	}
	counts := analytics.CountWords(tokens, keep, keywordBoardSize)

	board := make([]models.Keyword, 0, keywordBoardSize)
	for i, kc := range counts {
		board = append(board, models.Keyword{
			Word:  capitalize(kc.Word),
			Count: kc.Count,
			Color: negativeKeywordColors[i%len(negativeKeywordColors)],
		})
	}
	for i := len(board); i < keywordBoardSize; i++ {
		word := "Negative"
		if i < len(fallbackNegativeWords) {
			word = fallbackNegativeWords[i]
		}
		board = append(board, models.Keyword{
			Word:  word,
			Count: fallbackNegativeCount,
			Color: negativeKeywordColors[i%len(negativeKeywordColors)],
		})
	}
	return board
}

// RecentComplaints surfaces the three newest negative brand posts as a feed
// entry each: truncated content, reception-based severity, relative time.
func (g *Generator) RecentComplaints(posts []models.Post) []models.Complaint {
	negative := g.negativeBrandPosts(posts)

	sorted := make([]models.Post, len(negative))
	copy(sorted, negative)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	if len(sorted) > recentComplaintMax {
		sorted = sorted[:recentComplaintMax]
	}

	complaints := make([]models.Complaint, 0, len(sorted))
	for _, p := range sorted {
		complaints = append(complaints, models.Complaint{
			Issue:      truncate(p.Content, 80),
			Severity:   complaintSeverity(p.Engagement),
			Time:       TimeAgo(p.PublishedAt, g.now),
			Engagement: p.Engagement,
		})
	}
	return complaints
}

func complaintSeverity(engagement int) string {
	switch {
	case engagement < severityHighBelow:
		return "high"
	case engagement < severityMediumBelow:
		return "medium"
	default:
		return "low"
	}
}

var (
	driverComplaintTerms = []string{
		"rude", "unprofessional", "bad", "poor", "terrible", "awful",
		"late", "cancelled", "no show",
	}
	waitIssueTerms = []string{
		"late", "delay", "wait", "cancelled", "no show", "unreliable",
	}
	vehicleIssueTerms = []string{
		"dirty", "old", "broken", "uncomfortable", "smelly", "poor condition",
	}
	appIssueTerms = []string{
		"bug", "glitch", "error", "crash", "slow", "unresponsive",
	}
	bookingFailureTerms = []string{"failed", "problem"}
)

// NegativeReviewMetrics derives the headline numbers of the negative panel,
// mirroring the positive panel with inverted baselines. Empty populations
// yield the zero panel.
func (g *Generator) NegativeReviewMetrics(posts []models.Post) models.NegativeReviewMetrics {
	negative := g.negativeBrandPosts(posts)
	if len(negative) == 0 {
		return models.NegativeReviewMetrics{}
	}

	driverPosts := filterPosts(negative, func(text string) bool {
		return strings.Contains(text, "driver") && mentionsAny(text, driverComplaintTerms)
	})
	waitPosts := filterPosts(negative, func(text string) bool {
		return strings.Contains(text, "time") && mentionsAny(text, waitIssueTerms)
	})
	vehiclePosts := filterPosts(negative, func(text string) bool {
		return mentionsAny(text, []string{"car", "vehicle"}) && mentionsAny(text, vehicleIssueTerms)
	})
	appPosts := filterPosts(negative, func(text string) bool {
		if !strings.Contains(text, "app") {
			return false
		}
		if mentionsAny(text, appIssueTerms) {
			return true
		}
		return strings.Contains(text, "booking") && mentionsAny(text, bookingFailureTerms)
	})

	n := float64(len(negative))
	driverRating := clamp(3.5-float64(len(driverPosts))/n*2, 1, 3.5)
	waitMinutes := clamp(5+float64(len(waitPosts))/n*8, 5, 15)

	return models.NegativeReviewMetrics{
		AvgDriverRating:    roundTenth(driverRating),
		AvgWaitTime:        roundTenth(waitMinutes),
		VehicleIssues:      pct(len(vehiclePosts), len(negative)),
		AppIssues:          pct(len(appPosts), len(negative)),
		DriverEngagement:   avgEngagement(driverPosts),
		WaitEngagement:     avgEngagement(waitPosts),
		VehicleEngagement:  avgEngagement(vehiclePosts),
		AppEngagement:      avgEngagement(appPosts),
		TotalNegativePosts: len(negative),
	}
}

// problemArea pairs a display name with its trigger terms; Technical
// Problems additionally anchors on "app".
type problemArea struct {
	name     string
	anchor   string
	triggers []string
}

var problemAreas = []problemArea{
	{name: "Reliability Issues", triggers: []string{
		"unreliable", "cancelled", "no show", "failed", "didn't arrive",
		"missed",
	}},
	{name: "Service Quality", triggers: []string{
		"poor", "bad service", "terrible", "awful", "horrible", "worst",
	}},
	{name: "Communication Problems", triggers: []string{
		"no response", "customer service", "support", "unresponsive",
		"ignored", "no reply",
	}},
	{name: "Pricing Issues", triggers: []string{
		"expensive", "overpriced", "cost", "price", "charge", "billing",
	}},
	{name: "Technical Problems", anchor: "app", triggers: []string{
		"bug", "error", "crash", "glitch", "slow", "unresponsive",
	}},
}

// NegativeProblemAreas buckets negative brand posts into named problem
// categories and keeps the top four by count.
func (g *Generator) NegativeProblemAreas(posts []models.Post) []models.ProblemArea {
	negative := g.negativeBrandPosts(posts)

	result := make([]models.ProblemArea, 0, len(problemAreas))
	for _, area := range problemAreas {
		count := 0
		for _, p := range negative {
			text := strings.ToLower(p.Content)
			if area.anchor != "" && !strings.Contains(text, area.anchor) {
				continue
			}
			if mentionsAny(text, area.triggers) {
				count++
			}
		}
		result = append(result, models.ProblemArea{
			Name:       area.name,
			Count:      count,
			Percentage: pct(count, len(negative)),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Count > result[j].Count
	})
	if len(result) > topCategoryCount {
		result = result[:topCategoryCount]
	}
	return result
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
