package models

import "time"

// Sentiment is the classifier-assigned label for a post.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Post is one canonical social-media entry after ingestion normalization.
// Posts are immutable once built; every aggregate downstream is a pure
// function over the post list.
type Post struct {
	ID          int       `json:"id"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	Occupation  string    `json:"occupation"`
	PublishedAt time.Time `json:"date"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	Engagement  int       `json:"engagement"`
	Sentiment   Sentiment `json:"sentiment"`
	Hashtags    []string  `json:"hashtags"`
	Reach       int       `json:"reach"`
	Clicks      int       `json:"clicks"`
	URL         string    `json:"url"`
	IsRepost    bool      `json:"isRepost"`
	AuthorType  string    `json:"authorType"`
	PostType    string    `json:"type"`
}

// PostList is the normalized post artifact written by the pipeline.
type PostList struct {
	Posts []Post `json:"posts"`
}
