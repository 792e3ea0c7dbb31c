package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spyglass/internal/sentiment"
	"spyglass/pkg/models"
)

var testNow = time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

func newTestIngestor() *Ingestor {
	return NewIngestor(sentiment.NewClassifier(sentiment.DefaultLexicon()))
}

func TestNormalizeFullRow(t *testing.T) {
	rows := []Row{{
		"text":        "Loved the ride #shoffr #electric",
		"authorName":  "Asha",
		"occupation":  "Product Manager",
		"postedAtISO": "2025-08-01T09:30:00Z",
		"Likes":       "120",
		"Comments":    "4",
		"Shares":      "6",
		"url":         "https://example.com/p/1",
		"isRepost":    "true",
		"authorType":  "Company",
		"type":        "image",
	}}

	posts := newTestIngestor().Normalize(rows, testNow)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "Asha", p.Author)
	assert.Equal(t, "Product Manager", p.Occupation)
	assert.Equal(t, time.Date(2025, 8, 1, 9, 30, 0, 0, time.UTC), p.PublishedAt)
	assert.Equal(t, 120, p.Likes)
	assert.Equal(t, 4, p.Comments)
	assert.Equal(t, 6, p.Shares)
	assert.Equal(t, 130, p.Engagement)
	assert.Equal(t, []string{"shoffr", "electric"}, p.Hashtags)
	assert.Equal(t, 1200, p.Reach)
	assert.Equal(t, 12, p.Clicks)
	assert.Equal(t, "https://example.com/p/1", p.URL)
	assert.True(t, p.IsRepost)
	assert.Equal(t, "Company", p.AuthorType)
	assert.Equal(t, "image", p.PostType)
	assert.NotEmpty(t, p.Sentiment)
}

func TestNormalizeFallbackFieldNames(t *testing.T) {
	rows := []Row{{
		"content":   "Alternate column names",
		"author":    "Ravi",
		"date":      "2025-08-02",
		"reactions": "33",
		"comments":  "2",
		"reposts":   "1",
		"postType":  "article",
	}}

	posts := newTestIngestor().Normalize(rows, testNow)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, "Alternate column names", p.Content)
	assert.Equal(t, "Ravi", p.Author)
	assert.Equal(t, time.Date(2025, 8, 2, 0, 0, 0, 0, time.UTC), p.PublishedAt)
	assert.Equal(t, 33, p.Likes)
	assert.Equal(t, 2, p.Comments)
	assert.Equal(t, 1, p.Shares)
	assert.Equal(t, "article", p.PostType)
}

func TestNormalizeDefaults(t *testing.T) {
	posts := newTestIngestor().Normalize([]Row{{}}, testNow)

	require.Len(t, posts, 1)
	p := posts[0]
	assert.Equal(t, "", p.Content)
	assert.Equal(t, "Unknown", p.Author)
	assert.Equal(t, "", p.Occupation)
	assert.Equal(t, testNow, p.PublishedAt)
	assert.Zero(t, p.Likes)
	assert.Zero(t, p.Engagement)
	assert.Equal(t, []string{}, p.Hashtags)
	assert.False(t, p.IsRepost)
	assert.Equal(t, "Person", p.AuthorType)
	assert.Equal(t, "text", p.PostType)
}

func TestNormalizeNumericCoercion(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"plain int", "42", 42},
		{"comma separated", "1,234", 1234},
		{"float export", "12.0", 12},
		{"garbage", "n/a", 0},
		{"negative clamps", "-5", 0},
		{"empty", "", 0},
	}

	ing := newTestIngestor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := ing.Normalize([]Row{{"Likes": tt.raw}}, testNow)
			assert.Equal(t, tt.want, posts[0].Likes)
		})
	}
}

func TestNormalizeTimestampLayouts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{"rfc3339", "2025-07-04T10:00:00Z", time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)},
		{"datetime", "2025-07-04 10:00:00", time.Date(2025, 7, 4, 10, 0, 0, 0, time.UTC)},
		{"date only", "2025-07-04", time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)},
		{"unparseable falls back to now", "last tuesday", testNow},
	}

	ing := newTestIngestor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := ing.Normalize([]Row{{"postedAtISO": tt.raw}}, testNow)
			assert.True(t, tt.want.Equal(posts[0].PublishedAt))
		})
	}
}

func TestNormalizePreservesOrderAndCount(t *testing.T) {
	rows := []Row{
		{"text": "first"},
		{"text": "second"},
		{"text": ""},
	}

	posts := newTestIngestor().Normalize(rows, testNow)

	require.Len(t, posts, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{posts[0].ID, posts[1].ID, posts[2].ID})
	assert.Equal(t, "first", posts[0].Content)
	assert.Equal(t, "second", posts[1].Content)
}

func TestExtractHashtags(t *testing.T) {
	tags := extractHashtags("Launch day #shoffr ride with #EV and again #shoffr")
	assert.Equal(t, []string{"shoffr", "EV"}, tags)

	assert.Equal(t, []string{}, extractHashtags("no tags here"))
}

func TestClassifierAssignsEachPost(t *testing.T) {
	rows := []Row{
		{"text": "We are hiring drivers", "Likes": "300"},
		{"text": "Terrible and unreliable", "Likes": "2", "Comments": "1"},
	}

	posts := newTestIngestor().Normalize(rows, testNow)

	assert.Equal(t, models.SentimentNeutral, posts[0].Sentiment)
	assert.Equal(t, models.SentimentNegative, posts[1].Sentiment)
}
