// Package analytics computes the corpus-level aggregate over the normalized
// post list. Every function here is pure: the post list is never mutated and
// a full recompute happens on each pipeline run.
package analytics

import (
	"math"
	"sort"

	"spyglass/pkg/models"
)

// Aggregation bounds and trend scaling coefficients. The trend coefficients
// are display normalizations, not business logic; they are kept as named
// constants so the output stays pinned.
const (
	TopPostsLimit      = 10
	ControversialLimit = 5
	KeywordLimit       = 30

	HighEngagementFloor  = 100 // engagement > 100 is "high"
	MediumEngagementLow  = 20  // 20..100 inclusive is "medium"
	TrendWindowDays      = 7
	trendPositiveDivisor = 10.0
	trendNegativeFactor  = 2.0
	trendQueriesFactor   = 5.0
)

// Compute derives the full aggregate from the post list. An empty list
// yields zero totals and empty collections, never NaN.
func Compute(posts []models.Post) models.Analytics {
	a := models.Analytics{
		TotalPosts:            len(posts),
		SentimentCounts:       map[models.Sentiment]int{},
		HighEngagementPosts:   []models.Post{},
		MediumEngagementPosts: []models.Post{},
		LowEngagementPosts:    []models.Post{},
		TopPosts:              []models.Post{},
		ControversialPosts:    []models.Post{},
		Keywords:              []models.KeywordCount{},
		Trends:                []models.TrendPoint{},
		AuthorPerformance:     []models.AuthorStats{},
	}

	for _, p := range posts {
		a.TotalEngagement += p.Engagement
		a.TotalLikes += p.Likes
		a.TotalComments += p.Comments
		a.TotalShares += p.Shares
		a.SentimentCounts[p.Sentiment]++

		switch {
		case p.Engagement > HighEngagementFloor:
			a.HighEngagementPosts = append(a.HighEngagementPosts, p)
		case p.Engagement >= MediumEngagementLow:
			a.MediumEngagementPosts = append(a.MediumEngagementPosts, p)
		default:
			a.LowEngagementPosts = append(a.LowEngagementPosts, p)
		}
	}

	if len(posts) > 0 {
		n := float64(len(posts))
		a.AvgEngagement = float64(a.TotalEngagement) / n
		a.AvgLikes = float64(a.TotalLikes) / n
		a.AvgComments = float64(a.TotalComments) / n
		a.AvgShares = float64(a.TotalShares) / n
	}

	a.TopPosts = TopPosts(posts, TopPostsLimit)
	a.ControversialPosts = ControversialPosts(posts, ControversialLimit)
	a.Keywords = Keywords(posts, KeywordLimit)
	a.Trends = Trends(posts)
	a.AuthorPerformance = AuthorPerformance(posts)

	return a
}

// TopPosts returns the posts with the highest engagement, descending, ties
// kept in original order.
func TopPosts(posts []models.Post, limit int) []models.Post {
	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Engagement > sorted[j].Engagement
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}

// ControversialPosts ranks posts by comment-to-like ratio. Posts without
// both likes and comments are excluded, which also keeps the ratio defined.
func ControversialPosts(posts []models.Post, limit int) []models.Post {
	eligible := make([]models.Post, 0, len(posts))
	for _, p := range posts {
		if p.Comments > 0 && p.Likes > 0 {
			eligible = append(eligible, p)
		}
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		ri := float64(eligible[i].Comments) / float64(eligible[i].Likes)
		rj := float64(eligible[j].Comments) / float64(eligible[j].Likes)
		return ri > rj
	})
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}

// Trends buckets posts by UTC calendar day, keeps the most recent
// TrendWindowDays distinct days present in the data (chronological), and
// emits normalized per-day activity proxies.
func Trends(posts []models.Post) []models.TrendPoint {
	type bucket struct {
		posts    int
		likes    int
		comments int
		shares   int
	}

	daily := map[string]*bucket{}
	for _, p := range posts {
		day := p.PublishedAt.UTC().Format("2006-01-02")
		b, ok := daily[day]
		if !ok {
			b = &bucket{}
			daily[day] = b
		}
		b.posts++
		b.likes += p.Likes
		b.comments += p.Comments
		b.shares += p.Shares
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	if len(days) > TrendWindowDays {
		days = days[len(days)-TrendWindowDays:]
	}

	trends := make([]models.TrendPoint, 0, len(days))
	for _, day := range days {
		b := daily[day]
		n := float64(b.posts)
		trends = append(trends, models.TrendPoint{
			Day:      day[8:], // day-of-month component of YYYY-MM-DD
			Positive: int(math.Round(float64(b.likes) / n / trendPositiveDivisor)),
			Negative: int(math.Round(float64(b.comments) / n * trendNegativeFactor)),
			Queries:  int(math.Round(float64(b.shares) / n * trendQueriesFactor)),
		})
	}
	return trends
}

// AuthorPerformance aggregates engagement per author and returns the top
// five by average engagement.
func AuthorPerformance(posts []models.Post) []models.AuthorStats {
	byAuthor := map[string]*models.AuthorStats{}
	order := []string{}
	for _, p := range posts {
		s, ok := byAuthor[p.Author]
		if !ok {
			s = &models.AuthorStats{Author: p.Author}
			byAuthor[p.Author] = s
			order = append(order, p.Author)
		}
		s.Posts++
		s.TotalEngagement += p.Engagement
		s.TotalLikes += p.Likes
		s.TotalComments += p.Comments
		s.TotalShares += p.Shares
	}

	stats := make([]models.AuthorStats, 0, len(order))
	for _, author := range order {
		s := byAuthor[author]
		s.AvgEngagement = int(math.Round(float64(s.TotalEngagement) / float64(s.Posts)))
		stats = append(stats, *s)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].AvgEngagement > stats[j].AvgEngagement
	})
	if len(stats) > 5 {
		stats = stats[:5]
	}
	return stats
}
