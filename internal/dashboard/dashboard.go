// Package dashboard assembles the presentation document consumed by the
// display layer. The assembler only arranges already-computed values into
// the section/key shape the frontend indexes into; the display layer does
// no computation of its own.
package dashboard

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"spyglass/internal/reports"
	"spyglass/pkg/models"
)

// Sentiment slice colors. The default covers labels outside the known set.
var sentimentColors = map[models.Sentiment]string{
	models.SentimentPositive: "#16a34a",
	models.SentimentNegative: "#dc2626",
	models.SentimentNeutral:  "#0891b2",
}

const defaultSentimentColor = "#6b7280"

// sentimentOrder pins the slice order; map iteration would reshuffle the
// document between runs.
var sentimentOrder = []models.Sentiment{
	models.SentimentPositive,
	models.SentimentNegative,
	models.SentimentNeutral,
}

// Assemble builds the full presentation document. The now argument feeds
// the relative timestamps in the praise feed; callers pass the same value
// used during ingestion so a run is internally consistent.
func Assemble(a models.Analytics, bundle reports.Bundle, now time.Time) models.Dashboard {
	return models.Dashboard{
		OverallSection:         overallSection(a, bundle.KeyInsights),
		OverviewSection:        overviewSection(a),
		PositiveReviewsSection: positiveReviewsSection(a, bundle, now),
		NegativeReviewsSection: negativeReviewsSection(bundle),
		QueriesSection:         queriesSection(a),
		ActionsSection:         actionsSection(a),
		TopIssuesSection:       topIssuesSection(a),
		Tabs:                   tabs(a),
		TimePeriodSelector:     timePeriodSelector(),
	}
}

func overallSection(a models.Analytics, insights []models.Insight) models.OverallSection {
	slices := make([]models.SentimentSlice, 0, len(sentimentOrder))
	for _, s := range sentimentOrder {
		count, ok := a.SentimentCounts[s]
		if !ok {
			continue
		}
		slices = append(slices, models.SentimentSlice{
			Name:  string(s),
			Value: pct(count, a.TotalPosts),
			Color: sentimentColor(s),
		})
	}

	return models.OverallSection{
		HeaderData: models.HeaderData{
			TotalReviews: strconv.Itoa(a.TotalPosts),
			Description:  "Total LinkedIn Posts This Month",
		},
		SentimentData: slices,
		TrendData:     a.Trends,
		MetricCards: []models.MetricCard{
			{
				Title:       "Avg Engagement",
				Value:       strconv.Itoa(int(math.Round(a.AvgEngagement))),
				BgColor:     "bg-secondary/30",
				TextColor:   "text-foreground",
				Description: "Avg Engagement",
			},
			sentimentCard("Positive", a.SentimentCounts[models.SentimentPositive], a.TotalPosts, "bg-green-50", "text-green-600"),
			sentimentCard("Negative", a.SentimentCounts[models.SentimentNegative], a.TotalPosts, "bg-red-50", "text-red-600"),
			sentimentCard("Neutral", a.SentimentCounts[models.SentimentNeutral], a.TotalPosts, "bg-blue-50", "text-blue-600"),
		},
		KeyInsights: insights,
	}
}

func sentimentCard(title string, count, total int, bgColor, textColor string) models.MetricCard {
	return models.MetricCard{
		Title:        title,
		Value:        fmt.Sprintf("%d%%", pct(count, total)),
		BgColor:      bgColor,
		TextColor:    textColor,
		Description:  title,
		SubValue:     fmt.Sprintf("%d posts", count),
		SubTextColor: textColor,
	}
}

func overviewSection(a models.Analytics) models.OverviewSection {
	positive := make([]models.ValuePoint, 0, len(a.Trends))
	negative := make([]models.ValuePoint, 0, len(a.Trends))
	queries := make([]models.ValuePoint, 0, len(a.Trends))
	for _, t := range a.Trends {
		positive = append(positive, models.ValuePoint{Value: t.Positive})
		negative = append(negative, models.ValuePoint{Value: t.Negative})
		queries = append(queries, models.ValuePoint{Value: t.Queries})
	}
	return models.OverviewSection{
		PositiveData: positive,
		NegativeData: negative,
		QueriesData:  queries,
	}
}

// Praise ratings map engagement onto a 1..5 scale at 200 engagement per
// star.
const engagementPerRatingStar = 200

func positiveReviewsSection(a models.Analytics, bundle reports.Bundle, now time.Time) models.PositiveReviewsSection {
	top := a.TopPosts
	if len(top) > 3 {
		top = top[:3]
	}

	praises := make([]models.Praise, 0, len(top))
	for _, p := range top {
		rating := int(math.Round(float64(p.Engagement) / engagementPerRatingStar))
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		praises = append(praises, models.Praise{
			Praise: truncate(p.Content, 100),
			Time:   reports.TimeAgo(p.PublishedAt, now),
			Rating: rating,
		})
	}

	return models.PositiveReviewsSection{
		PositiveKeywords:           bundle.PositiveKeywords,
		RecentPraises:              praises,
		PositiveFeedbackCategories: bundle.PositiveFeedbackCategories,
		PositiveReviewMetrics:      bundle.PositiveReviewMetrics,
	}
}

func negativeReviewsSection(bundle reports.Bundle) models.NegativeReviewsSection {
	return models.NegativeReviewsSection{
		NegativeKeywords:      bundle.NegativeKeywords,
		RecentComplaints:      bundle.RecentComplaints,
		NegativeReviewMetrics: bundle.NegativeReviewMetrics,
		NegativeProblemAreas:  bundle.NegativeProblemAreas,
	}
}

func queriesSection(a models.Analytics) models.QueriesSection {
	return models.QueriesSection{
		QueryTypes: []models.QueryType{
			{Name: "Engagement", Value: 35, Color: "#3b82f6", Count: int(math.Round(float64(a.TotalLikes) * 0.35))},
			{Name: "Comments", Value: 28, Color: "#06b6d4", Count: a.TotalComments},
			{Name: "Shares", Value: 22, Color: "#8b5cf6", Count: a.TotalShares},
			{Name: "Likes", Value: 15, Color: "#10b981", Count: int(math.Round(float64(a.TotalLikes) * 0.15))},
		},
		TopQuestions: []string{
			"How to increase LinkedIn engagement?",
			"What content performs best?",
			"When to post for maximum reach?",
			"How to optimize hashtags?",
			"Best practices for LinkedIn posts?",
		},
	}
}

func actionsSection(a models.Analytics) models.ActionsSection {
	low := len(a.LowEngagementPosts)
	medium := len(a.MediumEngagementPosts)

	return models.ActionsSection{
		FocusAreas: []models.FocusArea{
			{
				ID:           "P1",
				Area:         "Content Engagement Optimization",
				Urgency:      "Critical",
				Impact:       "High",
				Analysis:     fmt.Sprintf("%d posts have low engagement (%d%% of total)", low, pct(low, a.TotalPosts)),
				Solves:       fmt.Sprintf("~%d posts will improve with better content strategy", int(math.Round(float64(low)*0.5))),
				SolvesDetail: "Content team needs to focus on engagement optimization",
				Timeline:     "Immediate",
				Department:   "Content",
				Severity:     "critical",
			},
			{
				ID:           "P2",
				Area:         "Posting Schedule Optimization",
				Urgency:      "High",
				Impact:       "Medium",
				Analysis:     "Posting times affect engagement rates significantly",
				Solves:       fmt.Sprintf("~%d posts will benefit from better timing", int(math.Round(float64(medium)*0.3))),
				SolvesDetail: "Analytics team to analyze optimal posting times",
				Timeline:     "48 hours",
				Department:   "Analytics",
				Severity:     "high",
			},
			{
				ID:           "P3",
				Area:         "Hashtag Strategy Improvement",
				Urgency:      "High",
				Impact:       "Medium",
				Analysis:     "Hashtag usage can increase reach by 25%",
				Solves:       fmt.Sprintf("~%d posts need better hashtag strategy", int(math.Round(float64(a.TotalPosts)*0.2))),
				SolvesDetail: "Marketing team to research trending hashtags",
				Timeline:     "1 week",
				Department:   "Marketing",
				Severity:     "high",
			},
		},
	}
}

func topIssuesSection(a models.Analytics) models.TopIssuesSection {
	trend := make([]models.ValuePoint, 0, len(a.Trends))
	for _, t := range a.Trends {
		trend = append(trend, models.ValuePoint{Value: t.Positive + t.Negative})
	}

	share := func(f float64) int {
		return int(math.Round(float64(a.TotalPosts) * f))
	}

	return models.TopIssuesSection{
		DepartmentData: []models.Department{
			{
				ID:             "content",
				Name:           "Content Team",
				Icon:           "Users",
				Percentage:     pct(len(a.HighEngagementPosts), a.TotalPosts),
				Trend:          "+2.3%",
				TrendDirection: "up",
				Color:          "green",
				BgColor:        "bg-green-50/50",
				BorderColor:    "border-green-200/50",
				Issues: []models.DepartmentIssue{
					{Name: "Low Engagement Posts", Count: len(a.LowEngagementPosts), Urgency: "High", Action: "Content strategy review needed"},
					{Name: "Poor Timing", Count: share(0.2), Urgency: "Medium", Action: "Schedule optimization required"},
					{Name: "Weak CTAs", Count: share(0.15), Urgency: "Medium", Action: "Call-to-action improvement"},
					{Name: "Hashtag Issues", Count: share(0.1), Urgency: "Low", Action: "Hashtag research needed"},
				},
			},
			{
				ID:             "analytics",
				Name:           "Analytics Team",
				Icon:           "Settings",
				Percentage:     pct(len(a.MediumEngagementPosts), a.TotalPosts),
				Trend:          "+1.8%",
				TrendDirection: "up",
				Color:          "blue",
				BgColor:        "bg-blue-50/50",
				BorderColor:    "border-blue-200/50",
				Issues: []models.DepartmentIssue{
					{Name: "Data Tracking", Count: share(0.25), Urgency: "High", Action: "Analytics setup improvement"},
					{Name: "Report Delays", Count: share(0.15), Urgency: "Medium", Action: "Automation needed"},
					{Name: "Insight Quality", Count: share(0.1), Urgency: "Medium", Action: "Analysis methodology review"},
				},
			},
		},
		TrendData: trend,
	}
}

func tabs(a models.Analytics) models.Tabs {
	return models.Tabs{
		Tabs: []models.Tab{
			{ID: "overall", Label: "Overall", Icon: "📊", Description: "Complete overview"},
			{ID: "positive", Label: "Positive", Icon: "👍", Description: fmt.Sprintf("%d posts", a.SentimentCounts[models.SentimentPositive])},
			{ID: "negative", Label: "Negative", Icon: "⚠️", Description: fmt.Sprintf("%d posts", a.SentimentCounts[models.SentimentNegative])},
			{ID: "queries", Label: "Queries", Icon: "❓", Description: fmt.Sprintf("%d queries", a.TotalComments)},
			{ID: "departments", Label: "Teams", Icon: "👥", Description: "Department view"},
			{ID: "actions", Label: "Actions", Icon: "🎯", Description: "Action items"},
		},
	}
}

func timePeriodSelector() models.TimePeriodSelector {
	return models.TimePeriodSelector{
		TimePeriods: []models.TimePeriod{
			{ID: "today", Label: "Today", ShortLabel: "Today"},
			{ID: "yesterday", Label: "Yesterday", ShortLabel: "Yesterday"},
			{ID: "last7days", Label: "Last 7 Days", ShortLabel: "7D"},
			{ID: "thisweek", Label: "This Week", ShortLabel: "This Week"},
			{ID: "lastweek", Label: "Last Week", ShortLabel: "Last Week"},
			{ID: "thismonth", Label: "This Month", ShortLabel: "This Month"},
			{ID: "lastmonth", Label: "Last Month", ShortLabel: "Last Month"},
			{ID: "last3months", Label: "Last 3 Months", ShortLabel: "3M"},
		},
	}
}

func sentimentColor(s models.Sentiment) string {
	if c, ok := sentimentColors[s]; ok {
		return c
	}
	return defaultSentimentColor
}

func pct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

func truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) > max {
		runes = runes[:max]
	}
	return string(runes) + "..."
}
