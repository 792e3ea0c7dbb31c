package models

// KeywordCount is one entry of a keyword frequency table.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TrendPoint holds one calendar day's normalized activity proxies. Day is
// the day-of-month component of the bucket date.
type TrendPoint struct {
	Day      string `json:"day"`
	Positive int    `json:"positive"`
	Negative int    `json:"negative"`
	Queries  int    `json:"queries"`
}

// AuthorStats aggregates engagement per author.
type AuthorStats struct {
	Author          string `json:"author"`
	Posts           int    `json:"posts"`
	TotalEngagement int    `json:"totalEngagement"`
	TotalLikes      int    `json:"totalLikes"`
	TotalComments   int    `json:"totalComments"`
	TotalShares     int    `json:"totalShares"`
	AvgEngagement   int    `json:"avgEngagement"`
}

// Analytics is the corpus-level aggregate recomputed in full on every run.
type Analytics struct {
	TotalPosts      int `json:"totalPosts"`
	TotalEngagement int `json:"totalEngagement"`
	TotalLikes      int `json:"totalLikes"`
	TotalComments   int `json:"totalComments"`
	TotalShares     int `json:"totalShares"`

	AvgEngagement float64 `json:"avgEngagement"`
	AvgLikes      float64 `json:"avgLikes"`
	AvgComments   float64 `json:"avgComments"`
	AvgShares     float64 `json:"avgShares"`

	// Keys are present only for labels that occur at least once.
	SentimentCounts map[Sentiment]int `json:"sentimentCounts"`

	HighEngagementPosts   []Post `json:"highEngagementPosts"`
	MediumEngagementPosts []Post `json:"mediumEngagementPosts"`
	LowEngagementPosts    []Post `json:"lowEngagementPosts"`

	TopPosts           []Post         `json:"topPosts"`
	ControversialPosts []Post         `json:"controversialPosts"`
	Keywords           []KeywordCount `json:"keywords"`
	Trends             []TrendPoint   `json:"trends"`
	AuthorPerformance  []AuthorStats  `json:"authorPerformance"`
}
