package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"spyglass/internal/sentiment"
	"spyglass/pkg/models"
)

// Field fallback chains: sources disagree on column names, so the first
// present, parseable value wins.
var (
	contentFields   = []string{"text", "content"}
	authorFields    = []string{"authorName", "author"}
	timestampFields = []string{"postedAtISO", "date", "publishedAt"}
	likesFields     = []string{"Likes", "reactions", "likes"}
	commentsFields  = []string{"Comments", "comments"}
	sharesFields    = []string{"Shares", "reposts", "shares"}
	postTypeFields  = []string{"type", "postType"}
)

// Timestamp layouts tried in order after RFC 3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// Ingestor turns raw rows into canonical posts. It never drops a row: one
// row in, one post out, with ids assigned in input order.
type Ingestor struct {
	classifier *sentiment.Classifier
}

func NewIngestor(classifier *sentiment.Classifier) *Ingestor {
	return &Ingestor{classifier: classifier}
}

// Normalize converts rows into posts. The now argument fills in missing
// timestamps; callers capture it once per run so repeated runs over the same
// input stay byte-identical.
func (ing *Ingestor) Normalize(rows []Row, now time.Time) []models.Post {
	posts := make([]models.Post, 0, len(rows))
	for i, row := range rows {
		posts = append(posts, ing.normalizeRow(i+1, row, now))
	}
	return posts
}

func (ing *Ingestor) normalizeRow(id int, row Row, now time.Time) models.Post {
	content := firstString(row, contentFields)
	likes := firstCount(row, likesFields)
	comments := firstCount(row, commentsFields)
	shares := firstCount(row, sharesFields)

	p := models.Post{
		ID:          id,
		Content:     content,
		Author:      defaultString(firstString(row, authorFields), "Unknown"),
		Occupation:  row["occupation"],
		PublishedAt: firstTimestamp(row, timestampFields, now),
		Likes:       likes,
		Comments:    comments,
		Shares:      shares,
		Engagement:  likes + comments + shares,
		Sentiment:   ing.classifier.Classify(content, likes, comments, shares),
		Hashtags:    extractHashtags(content),
		Reach:       likes * 10,
		Clicks:      int(math.Floor(float64(likes) * 0.1)),
		URL:         row["url"],
		IsRepost:    parseBool(row["isRepost"]),
		AuthorType:  defaultString(row["authorType"], "Person"),
		PostType:    defaultString(firstString(row, postTypeFields), "text"),
	}
	return p
}

func firstString(row Row, fields []string) string {
	for _, f := range fields {
		if v := strings.TrimSpace(row[f]); v != "" {
			return v
		}
	}
	return ""
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// firstCount walks the fallback chain and returns the first parseable
// non-negative count. Unparseable chains default to 0, never an error.
func firstCount(row Row, fields []string) int {
	for _, f := range fields {
		v := strings.TrimSpace(row[f])
		if v == "" {
			continue
		}
		if n, ok := parseCount(v); ok {
			return n
		}
	}
	return 0
}

// parseCount coerces a cell to an integer count. Spreadsheet exports write
// counts as "1,234" or "1234.0"; both are accepted. Negatives clamp to zero.
func parseCount(v string) (int, bool) {
	v = strings.ReplaceAll(v, ",", "")
	n, err := strconv.Atoi(v)
	if err != nil {
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil {
			return 0, false
		}
		n = int(f)
	}
	if n < 0 {
		n = 0
	}
	return n, true
}

func firstTimestamp(row Row, fields []string, now time.Time) time.Time {
	for _, f := range fields {
		v := strings.TrimSpace(row[f])
		if v == "" {
			continue
		}
		for _, layout := range timestampLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t
			}
		}
	}
	return now
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// extractHashtags pulls #token markers out of the content, hash stripped,
// first occurrence order, duplicates removed.
func extractHashtags(content string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return []string{}
	}
	seen := map[string]bool{}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tag := m[1]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}
	return tags
}
