package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spyglass/pkg/models"
)

func TestClassifyOverrides(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	tests := []struct {
		name     string
		content  string
		likes    int
		comments int
		shares   int
		want     models.Sentiment
	}{
		{
			// Hiring override beats any lexical or engagement signal.
			name:    "hiring post is neutral",
			content: "We are hiring a driver",
			likes:   500,
			want:    models.SentimentNeutral,
		},
		{
			name:     "direct complaint is negative",
			content:  "Terrible, unreliable service, very disappointed",
			likes:    2,
			comments: 1,
			want:     models.SentimentNegative,
		},
		{
			name:    "strong praise is positive before engagement is considered",
			content: "Proud to share our milestone",
			likes:   150,
			want:    models.SentimentPositive,
		},
		{
			name:    "join our team phrase is neutral",
			content: "Come join our team in Bangalore!",
			likes:   80,
			want:    models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.content, tt.likes, tt.comments, tt.shares)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyScoring(t *testing.T) {
	c := NewClassifier(DefaultLexicon())

	tests := []struct {
		name     string
		content  string
		likes    int
		comments int
		shares   int
		want     models.Sentiment
	}{
		{
			// No lexicon matches, engagement 5 < 10: bonus -1 flips the
			// balance to negative (finalNegative 1 > finalPositive -1).
			name:    "low engagement with neutral text turns negative",
			content: "Commute notes from this morning",
			likes:   5,
			want:    models.SentimentNegative,
		},
		{
			name:    "empty content mid engagement is neutral",
			content: "",
			likes:   30,
			want:    models.SentimentNeutral,
		},
		{
			name:    "moderate positive words with high engagement",
			content: "Such a great and comfortable airport transfer, highly recommend",
			likes:   120,
			want:    models.SentimentPositive,
		},
		{
			name:     "negative words outweigh",
			content:  "Awful experience, the cab was broken and the wait was a mistake",
			likes:    40,
			comments: 2,
			want:     models.SentimentNegative,
		},
		{
			// positiveScore ties businessScore, so positive cannot win.
			name:    "business wording stays neutral",
			content: "Company announcement about our new partnership and funding round",
			likes:   30,
			want:    models.SentimentNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.content, tt.likes, tt.comments, tt.shares)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(DefaultLexicon())
	first := c.Classify("A decent ride overall, would use again", 12, 3, 1)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, c.Classify("A decent ride overall, would use again", 12, 3, 1))
	}
}

func TestEngagementBonus(t *testing.T) {
	tests := []struct {
		name     string
		likes    int
		comments int
		shares   int
		want     int
	}{
		{"high engagement", 90, 10, 5, HighEngagementBonus},
		{"moderate engagement", 40, 10, 5, ModerateEngagementBonus},
		{"low engagement", 5, 0, 0, LowEngagementPenalty},
		{"mid band no bonus", 20, 5, 0, 0},
		{"controversial post penalized", 50, 10, 50, HighEngagementBonus - 1},
		{"zero likes never divides", 0, 8, 0, LowEngagementPenalty},
		{"ratio high but few comments", 10, 3, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engagementBonus(tt.likes, tt.comments, tt.shares))
		})
	}
}

func TestClassifyWithFixtureLexicon(t *testing.T) {
	lex := Lexicon{
		StrongPositive:   []string{"sunny"},
		StrongNegative:   []string{"rainy"},
		HiringPhrases:    []string{"vacancy"},
		ComplaintPhrases: []string{"refund"},
		PraisePhrases:    []string{"stellar"},
	}
	c := NewClassifier(lex)

	assert.Equal(t, models.SentimentNeutral, c.Classify("open vacancy for pilots", 200, 0, 0))
	assert.Equal(t, models.SentimentNegative, c.Classify("I want a refund", 200, 0, 0))
	assert.Equal(t, models.SentimentPositive, c.Classify("stellar trip", 0, 0, 0))
	// sunny x3 plus mid-band engagement, no business words
	assert.Equal(t, models.SentimentPositive, c.Classify("a sunny afternoon", 20, 0, 0))
	assert.Equal(t, models.SentimentNegative, c.Classify("a rainy afternoon", 20, 0, 0))
}

func TestDefaultLexiconShape(t *testing.T) {
	lex := DefaultLexicon()
	assert.Len(t, lex.StrongPositive, 18)
	assert.Len(t, lex.ModeratePositive, 14)
	assert.Len(t, lex.StrongNegative, 22)
	assert.Len(t, lex.ModerateNegative, 13)
	assert.Len(t, lex.Business, 19)
}
