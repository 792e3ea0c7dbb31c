// Package reports derives the brand-specific review boards: key insights,
// keyword leaderboards, complaint feeds, review metrics and problem areas.
// Every generator is a pure filter+reduce over the post list; nothing here
// retains state across runs.
package reports

import (
	"fmt"
	"math"
	"strings"
	"time"

	"spyglass/pkg/models"
)

const (
	keywordBoardSize   = 8
	recentComplaintMax = 3
	keyInsightMax      = 2
	topCategoryCount   = 4
)

// Generator builds the review boards for one brand. The reference time is
// fixed at construction so repeated runs over the same input produce
// identical artifacts.
type Generator struct {
	brand        string
	displayBrand string
	now          time.Time
}

func NewGenerator(brand string, now time.Time) *Generator {
	brand = strings.ToLower(strings.TrimSpace(brand))
	return &Generator{
		brand:        brand,
		displayBrand: capitalize(brand),
		now:          now,
	}
}

// Bundle carries every generated board to the dashboard assembler.
type Bundle struct {
	KeyInsights                []models.Insight
	PositiveKeywords           []models.Keyword
	PositiveFeedbackCategories []models.FeedbackCategory
	PositiveReviewMetrics      models.PositiveReviewMetrics
	NegativeKeywords           []models.Keyword
	RecentComplaints           []models.Complaint
	NegativeReviewMetrics      models.NegativeReviewMetrics
	NegativeProblemAreas       []models.ProblemArea
}

// Generate runs every board generator over the post list.
func (g *Generator) Generate(posts []models.Post, analytics models.Analytics) Bundle {
	return Bundle{
		KeyInsights:                g.KeyInsights(posts, analytics),
		PositiveKeywords:           g.PositiveKeywords(posts),
		PositiveFeedbackCategories: g.PositiveFeedbackCategories(posts),
		PositiveReviewMetrics:      g.PositiveReviewMetrics(posts),
		NegativeKeywords:           g.NegativeKeywords(posts),
		RecentComplaints:           g.RecentComplaints(posts),
		NegativeReviewMetrics:      g.NegativeReviewMetrics(posts),
		NegativeProblemAreas:       g.NegativeProblemAreas(posts),
	}
}

// KeyInsights distills the brand-experience population into at most two
// narrative insights. Thresholded templates fire first; two guaranteed
// fallbacks cover sparse data.
func (g *Generator) KeyInsights(posts []models.Post, analytics models.Analytics) []models.Insight {
	experience := g.experiencePosts(posts)

	positiveRate := pct(countMentioning(experience, positiveCoreTerms), len(experience))
	negativeRate := pct(countMentioning(experience, negativeCoreTerms), len(experience))

	totalEngagement := 0
	highEngagement := 0
	for _, p := range experience {
		totalEngagement += p.Engagement
		if p.Engagement > 100 {
			highEngagement++
		}
	}
	avgEngagement := roundDiv(totalEngagement, len(experience))
	highEngagementRate := pct(highEngagement, len(experience))

	var insights []models.Insight

	if positiveRate > 50 {
		insights = append(insights, models.Insight{
			Type:       "positive",
			Text:       fmt.Sprintf("%s experience posts show strong satisfaction - %d%% of posts express positive experiences", g.displayBrand, positiveRate),
			Percentage: positiveRate,
		})
	} else if avgEngagement > 80 {
		insights = append(insights, models.Insight{
			Type:       "positive",
			Text:       fmt.Sprintf("%s experience content generates strong engagement with %d average engagement", g.displayBrand, avgEngagement),
			Percentage: int(math.Round(float64(avgEngagement) / 10)),
		})
	}

	if highEngagementRate > 15 {
		insights = append(insights, models.Insight{
			Type:       "growth",
			Text:       fmt.Sprintf("%d%% of %s experience posts achieve exceptional engagement (>100), indicating strong brand resonance", highEngagementRate, g.displayBrand),
			Percentage: highEngagementRate,
		})
	}

	if positiveRate > negativeRate {
		insights = append(insights, models.Insight{
			Type:       "positive",
			Text:       fmt.Sprintf("Customer experience quality is strong - %d%% positive vs %d%% negative mentions", positiveRate, negativeRate),
			Percentage: positiveRate,
		})
	}

	if len(insights) < keyInsightMax {
		insights = append(insights,
			models.Insight{
				Type:       "positive",
				Text:       fmt.Sprintf("%s experience posts average %d engagement, showing strong customer interest", g.displayBrand, avgEngagement),
				Percentage: int(math.Round(float64(avgEngagement) / 10)),
			},
			models.Insight{
				Type:       "growth",
				Text:       fmt.Sprintf("%d posts discuss %s experience, indicating strong brand awareness", len(experience), g.displayBrand),
				Percentage: pct(len(experience), analytics.TotalPosts),
			},
		)
	}

	if len(insights) > keyInsightMax {
		insights = insights[:keyInsightMax]
	}
	return insights
}

// TimeAgo renders a coarse relative timestamp for the review feeds.
func TimeAgo(t, now time.Time) string {
	hours := int(now.Sub(t).Hours())
	if hours < 1 {
		return "Just now"
	}
	if hours < 24 {
		return fmt.Sprintf("%d hrs ago", hours)
	}
	return fmt.Sprintf("%d days ago", hours/24)
}

// pct is a guarded integer percentage; an empty population reads as 0.
func pct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// roundDiv is a guarded rounded average over an integer population.
func roundDiv(sum, n int) int {
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// roundTenth keeps one decimal for the display panels.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// truncate shortens content for feed display. The ellipsis is always
// appended to match the display layer's expectation.
func truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}

func capitalize(word string) string {
	if word == "" {
		return ""
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
