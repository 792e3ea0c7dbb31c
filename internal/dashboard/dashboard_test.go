package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spyglass/internal/reports"
	"spyglass/pkg/models"
)

var refNow = time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)

func fixtureAnalytics() models.Analytics {
	return models.Analytics{
		TotalPosts:    10,
		TotalLikes:    400,
		TotalComments: 60,
		TotalShares:   25,
		AvgEngagement: 48.5,
		SentimentCounts: map[models.Sentiment]int{
			models.SentimentPositive: 6,
			models.SentimentNegative: 1,
			models.SentimentNeutral:  3,
		},
		Trends: []models.TrendPoint{
			{Day: "18", Positive: 4, Negative: 6, Queries: 10},
			{Day: "19", Positive: 5, Negative: 3, Queries: 8},
		},
		TopPosts: []models.Post{
			{ID: 1, Content: "Top post content", Engagement: 450, PublishedAt: refNow.Add(-4 * time.Hour)},
			{ID: 2, Content: strings.Repeat("long praise ", 20), Engagement: 90, PublishedAt: refNow.Add(-30 * time.Hour)},
		},
		HighEngagementPosts:   make([]models.Post, 2),
		MediumEngagementPosts: make([]models.Post, 5),
		LowEngagementPosts:    make([]models.Post, 3),
	}
}

func TestAssembleOverallSection(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	overall := d.OverallSection
	assert.Equal(t, "10", overall.HeaderData.TotalReviews)
	assert.Equal(t, "Total LinkedIn Posts This Month", overall.HeaderData.Description)

	require.Len(t, overall.SentimentData, 3)
	assert.Equal(t, models.SentimentSlice{Name: "positive", Value: 60, Color: "#16a34a"}, overall.SentimentData[0])
	assert.Equal(t, models.SentimentSlice{Name: "negative", Value: 10, Color: "#dc2626"}, overall.SentimentData[1])
	assert.Equal(t, models.SentimentSlice{Name: "neutral", Value: 30, Color: "#0891b2"}, overall.SentimentData[2])

	require.Len(t, overall.MetricCards, 4)
	avg := overall.MetricCards[0]
	assert.Equal(t, "Avg Engagement", avg.Title)
	assert.Equal(t, "49", avg.Value)
	assert.Equal(t, "bg-secondary/30", avg.BgColor)
	assert.Empty(t, avg.SubValue)

	positive := overall.MetricCards[1]
	assert.Equal(t, "60%", positive.Value)
	assert.Equal(t, "6 posts", positive.SubValue)
	assert.Equal(t, "bg-green-50", positive.BgColor)
	assert.Equal(t, "text-green-600", positive.TextColor)
}

func TestAssembleSentimentSliceSkipsAbsentLabels(t *testing.T) {
	a := fixtureAnalytics()
	a.SentimentCounts = map[models.Sentiment]int{models.SentimentNeutral: 10}

	d := Assemble(a, reports.Bundle{}, refNow)

	require.Len(t, d.OverallSection.SentimentData, 1)
	assert.Equal(t, "neutral", d.OverallSection.SentimentData[0].Name)
	// The negative metric card still renders, at zero.
	assert.Equal(t, "0%", d.OverallSection.MetricCards[2].Value)
	assert.Equal(t, "0 posts", d.OverallSection.MetricCards[2].SubValue)
}

func TestAssembleOverviewMirrorsTrends(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	overview := d.OverviewSection
	require.Len(t, overview.PositiveData, 2)
	assert.Equal(t, 4, overview.PositiveData[0].Value)
	assert.Equal(t, 3, overview.NegativeData[1].Value)
	assert.Equal(t, 10, overview.QueriesData[0].Value)
}

func TestAssembleRecentPraises(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	praises := d.PositiveReviewsSection.RecentPraises
	require.Len(t, praises, 2)

	// 450 engagement / 200 per star rounds to 2.
	assert.Equal(t, 2, praises[0].Rating)
	assert.Equal(t, "4 hrs ago", praises[0].Time)
	assert.Equal(t, "Top post content...", praises[0].Praise)

	// 90/200 rounds to 0, floored to 1 star; long content truncates at 100.
	assert.Equal(t, 1, praises[1].Rating)
	assert.Equal(t, "1 days ago", praises[1].Time)
	assert.LessOrEqual(t, len([]rune(praises[1].Praise)), 103)
	assert.True(t, strings.HasSuffix(praises[1].Praise, "..."))
}

func TestAssembleQueriesSection(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	q := d.QueriesSection
	require.Len(t, q.QueryTypes, 4)
	assert.Equal(t, models.QueryType{Name: "Engagement", Value: 35, Color: "#3b82f6", Count: 140}, q.QueryTypes[0])
	assert.Equal(t, 60, q.QueryTypes[1].Count)
	assert.Equal(t, 25, q.QueryTypes[2].Count)
	assert.Equal(t, models.QueryType{Name: "Likes", Value: 15, Color: "#10b981", Count: 60}, q.QueryTypes[3])
	assert.Len(t, q.TopQuestions, 5)
}

func TestAssembleActionsSection(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	areas := d.ActionsSection.FocusAreas
	require.Len(t, areas, 3)
	assert.Equal(t, "P1", areas[0].ID)
	assert.Equal(t, "3 posts have low engagement (30% of total)", areas[0].Analysis)
	assert.Equal(t, "~2 posts will improve with better content strategy", areas[0].Solves)
	assert.Equal(t, "~2 posts will benefit from better timing", areas[1].Solves)
	assert.Equal(t, "~2 posts need better hashtag strategy", areas[2].Solves)
}

func TestAssembleTopIssuesSection(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	section := d.TopIssuesSection
	require.Len(t, section.DepartmentData, 2)

	content := section.DepartmentData[0]
	assert.Equal(t, "content", content.ID)
	assert.Equal(t, 20, content.Percentage)
	require.Len(t, content.Issues, 4)
	assert.Equal(t, 3, content.Issues[0].Count)

	analytics := section.DepartmentData[1]
	assert.Equal(t, 50, analytics.Percentage)
	require.Len(t, analytics.Issues, 3)

	require.Len(t, section.TrendData, 2)
	assert.Equal(t, 10, section.TrendData[0].Value)
	assert.Equal(t, 8, section.TrendData[1].Value)
}

func TestAssembleTabsAndPeriods(t *testing.T) {
	d := Assemble(fixtureAnalytics(), reports.Bundle{}, refNow)

	require.Len(t, d.Tabs.Tabs, 6)
	assert.Equal(t, "6 posts", d.Tabs.Tabs[1].Description)
	assert.Equal(t, "1 posts", d.Tabs.Tabs[2].Description)
	assert.Equal(t, "60 queries", d.Tabs.Tabs[3].Description)

	require.Len(t, d.TimePeriodSelector.TimePeriods, 8)
	assert.Equal(t, "last7days", d.TimePeriodSelector.TimePeriods[2].ID)
	assert.Equal(t, "7D", d.TimePeriodSelector.TimePeriods[2].ShortLabel)
}

func TestAssembleDeterministic(t *testing.T) {
	a := fixtureAnalytics()
	bundle := reports.Bundle{
		PositiveKeywords: []models.Keyword{{Word: "Excellent", Count: 3, Color: "bg-green-100 text-green-800"}},
	}

	first := Assemble(a, bundle, refNow)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Assemble(a, bundle, refNow))
	}
}

func TestAssembleEmptyAnalytics(t *testing.T) {
	d := Assemble(models.Analytics{SentimentCounts: map[models.Sentiment]int{}}, reports.Bundle{}, refNow)

	assert.Equal(t, "0", d.OverallSection.HeaderData.TotalReviews)
	assert.Empty(t, d.OverallSection.SentimentData)
	assert.Equal(t, "0%", d.OverallSection.MetricCards[1].Value)
	assert.Empty(t, d.OverviewSection.PositiveData)
	assert.Empty(t, d.PositiveReviewsSection.RecentPraises)
}
