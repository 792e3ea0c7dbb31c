package reports

import (
	"regexp"
	"sort"
	"strings"

	"spyglass/internal/analytics"
	"spyglass/pkg/models"
)

// MinPositiveKeywordLength is the shortest token (exclusive) admitted to the
// positive keyword board. Stricter than the generic table to keep the board
// descriptive.
const MinPositiveKeywordLength = 4

// positiveKeywordColors cycle through the positive board entries.
var positiveKeywordColors = []string{
	"bg-green-100 text-green-800",
	"bg-blue-100 text-blue-800",
	"bg-purple-100 text-purple-800",
	"bg-emerald-100 text-emerald-800",
	"bg-cyan-100 text-cyan-800",
	"bg-indigo-100 text-indigo-800",
	"bg-teal-100 text-teal-800",
	"bg-lime-100 text-lime-800",
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// domainStopWords remove words that describe the product space itself; a
// board full of "service" and "airport" says nothing. Layered on top of the
// generic stop list and the brand name.
var domainStopWords = map[string]bool{
	"my": true, "your": true, "his": true, "its": true, "our": true,
	"their": true, "from": true, "just": true, "like": true, "get": true,
	"got": true, "go": true, "went": true, "come": true, "came": true,
	"see": true, "saw": true, "know": true, "knew": true, "think": true,
	"thought": true, "take": true, "took": true, "make": true, "made": true,
	"give": true, "gave": true, "say": true, "said": true, "tell": true,
	"told": true, "ask": true, "asked": true, "work": true, "worked": true,
	"use": true, "used": true, "find": true, "found": true, "try": true,
	"tried": true, "call": true, "called": true, "look": true, "looked": true,
	"want": true, "wanted": true, "need": true, "needed": true, "feel": true,
	"felt": true, "become": true, "became": true, "leave": true, "left": true,
	"put": true, "mean": true, "meant": true, "keep": true, "kept": true,
	"let": true, "begin": true, "began": true, "seem": true, "seemed": true,
	"help": true, "helped": true, "talk": true, "talked": true, "turn": true,
	"turned": true, "start": true, "started": true, "show": true, "showed": true,
	"hear": true, "heard": true, "play": true, "played": true, "run": true,
	"ran": true, "move": true, "moved": true, "live": true, "lived": true,
	"believe": true, "believed": true, "hold": true, "held": true,
	"bring": true, "brought": true, "happen": true, "happened": true,
	"write": true, "wrote": true, "provide": true, "provided": true,
	"sit": true, "sat": true, "stand": true, "stood": true, "lose": true,
	"lost": true, "pay": true, "paid": true, "meet": true, "met": true,
	"include": true, "included": true, "continue": true, "continued": true,
	"set": true, "learn": true, "learned": true, "change": true,
	"changed": true, "lead": true, "led": true, "understand": true,
	"understood": true, "watch": true, "watched": true, "follow": true,
	"followed": true, "stop": true, "stopped": true, "create": true,
	"created": true, "speak": true, "spoke": true, "read": true,
	"allow": true, "allowed": true, "add": true, "added": true,
	"spend": true, "spent": true, "grow": true, "grew": true, "open": true,
	"opened": true, "walk": true, "walked": true, "win": true, "won": true,
	"offer": true, "offered": true, "remember": true, "remembered": true,
	"love": true, "loved": true, "consider": true, "considered": true,
	"appear": true, "appeared": true, "buy": true, "bought": true,
	"wait": true, "waited": true, "serve": true, "served": true,
	"die": true, "died": true, "send": true, "sent": true, "expect": true,
	"expected": true, "build": true, "built": true, "stay": true,
	"stayed": true, "fall": true, "fell": true, "cut": true, "reach": true,
	"reached": true, "kill": true, "killed": true, "remain": true,
	"remained": true, "suggest": true, "suggested": true, "raise": true,
	"raised": true, "pass": true, "passed": true, "sell": true, "sold": true,
	"require": true, "required": true, "report": true, "reported": true,
	"decide": true, "decided": true, "pull": true, "pulled": true,
	"uber": true, "ola": true, "blusmart": true, "bangalore": true,
	"delhi": true, "india": true, "company": true, "startup": true,
	"business": true, "team": true, "service": true, "customer": true,
	"experience": true, "ride": true, "taxi": true, "cab": true,
	"driver": true, "car": true, "vehicle": true, "app": true,
	"booking": true, "airport": true, "time": true, "day": true,
	"week": true, "month": true, "year": true, "today": true,
	"yesterday": true, "tomorrow": true, "morning": true, "evening": true,
	"night": true,
}

// PositiveKeywords builds the positive board: distinctive words from
// positive brand posts, generic/domain/brand stop words removed, top 8 by
// count with first-occurrence tie order.
func (g *Generator) PositiveKeywords(posts []models.Post) []models.Keyword {
	positive := g.positiveBrandPosts(posts)

	var contents []string
	for _, p := range positive {
		contents = append(contents, p.Content)
	}
	tokens := analytics.Tokenize(strings.Join(contents, " "))

	keep := func(word string) bool {
		return len(word) > MinPositiveKeywordLength &&
			word != g.brand &&
			!analytics.IsGenericStopWord(word) &&
			!domainStopWords[word] &&
			!digitsOnly.MatchString(word)
	}
	counts := analytics.CountWords(tokens, keep, keywordBoardSize)

	board := make([]models.Keyword, 0, len(counts))
	for i, kc := range counts {
		board = append(board, models.Keyword{
			Word:  capitalize(kc.Word),
			Count: kc.Count,
			Color: positiveKeywordColors[i%len(positiveKeywordColors)],
		})
	}
	return board
}

// feedbackCategory pairs a display name with its trigger terms. requireAll
// terms must all appear (used for "driver" + a compliment, "car" + a
// condition word).
type feedbackCategory struct {
	name     string
	anchor   string
	triggers []string
}

var positiveCategories = []feedbackCategory{
	{name: "Customer Service", triggers: []string{
		"service", "support", "customer", "helpful", "responsive", "care",
		"assistance", "attention",
	}},
	{name: "Overall Experience", triggers: []string{
		"experience", "journey", "ride", "trip", "overall", "amazing",
		"wonderful", "fantastic", "excellent", "seamless", "smooth",
	}},
	{name: "App Usability", triggers: []string{
		"app", "booking", "easy", "simple", "convenient", "smooth",
		"user friendly", "interface", "platform",
	}},
	{name: "Vehicle Condition", anchor: "car|vehicle", triggers: []string{
		"clean", "comfortable", "luxury", "premium", "well maintained",
		"spotless", "new", "modern", "electric",
	}},
	{name: "On-Time Pickup", triggers: []string{
		"time", "punctual", "schedule", "on time", "early", "arrived",
		"timely", "prompt",
	}},
	{name: "Safety & Reliability", triggers: []string{
		"safe", "safety", "secure", "reliable", "trust", "dependable",
		"peace of mind",
	}},
	{name: "Driver Professionalism", anchor: "driver", triggers: []string{
		"professional", "courteous", "friendly", "polite", "helpful",
		"experienced", "skilled", "well trained",
	}},
	{name: "Value for Money", triggers: []string{
		"price", "cost", "affordable", "value", "worth", "reasonable",
		"fair", "competitive",
	}},
}

func (c feedbackCategory) matches(text string) bool {
	if c.anchor != "" && !mentionsAny(text, strings.Split(c.anchor, "|")) {
		return false
	}
	return mentionsAny(text, c.triggers)
}

// PositiveFeedbackCategories counts category mentions across positive brand
// posts and keeps the top four. A post can land in several categories.
func (g *Generator) PositiveFeedbackCategories(posts []models.Post) []models.FeedbackCategory {
	positive := g.positiveBrandPosts(posts)

	result := make([]models.FeedbackCategory, 0, len(positiveCategories))
	for _, cat := range positiveCategories {
		count := 0
		for _, p := range positive {
			if cat.matches(strings.ToLower(p.Content)) {
				count++
			}
		}
		result = append(result, models.FeedbackCategory{
			Name:       cat.name,
			Count:      count,
			Percentage: pct(count, len(positive)),
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

// Rating and wait-time heuristics for the positive metrics panel. Ratios of
// themed sub-populations shift a baseline inside clamped display bounds.
var (
	driverPraiseTerms = []string{
		"professional", "friendly", "courteous", "helpful", "experienced",
		"skilled", "good", "great", "excellent",
	}
	punctualityTerms = []string{
		"on time", "punctual", "early", "arrived", "timely", "prompt",
	}
	vehiclePraiseTerms = []string{
		"clean", "comfortable", "luxury", "premium", "well maintained",
		"spotless", "new", "modern", "electric",
	}
	appPraiseTerms = []string{
		"easy", "simple", "convenient", "smooth", "user friendly",
		"interface", "booking", "platform",
	}
)

// PositiveReviewMetrics derives the headline numbers of the positive panel.
// Empty populations yield the zero panel rather than NaN.
func (g *Generator) PositiveReviewMetrics(posts []models.Post) models.PositiveReviewMetrics {
	positive := g.positiveBrandPosts(posts)
	if len(positive) == 0 {
		return models.PositiveReviewMetrics{}
	}

	driverPosts := filterPosts(positive, func(text string) bool {
		return strings.Contains(text, "driver") && mentionsAny(text, driverPraiseTerms)
	})
	waitPosts := filterPosts(positive, func(text string) bool {
		return strings.Contains(text, "time") && mentionsAny(text, punctualityTerms)
	})
	vehiclePosts := filterPosts(positive, func(text string) bool {
		return mentionsAny(text, []string{"car", "vehicle"}) && mentionsAny(text, vehiclePraiseTerms)
	})
	appPosts := filterPosts(positive, func(text string) bool {
		return strings.Contains(text, "app") && mentionsAny(text, appPraiseTerms)
	})

	n := float64(len(positive))
	driverRating := clamp(3.5+float64(len(driverPosts))/n*1.5, 3.5, 5)
	waitMinutes := clamp(5-float64(len(waitPosts))/n*3, 1, 10)

	return models.PositiveReviewMetrics{
		AvgDriverRating:    roundTenth(driverRating),
		AvgWaitTime:        roundTenth(waitMinutes),
		VehiclePraise:      pct(len(vehiclePosts), len(positive)),
		AppUXWins:          pct(len(appPosts), len(positive)),
		DriverEngagement:   avgEngagement(driverPosts),
		VehicleEngagement:  avgEngagement(vehiclePosts),
		AppEngagement:      avgEngagement(appPosts),
		TotalPositivePosts: len(positive),
	}
}

func avgEngagement(posts []models.Post) int {
	sum := 0
	for _, p := range posts {
		sum += p.Engagement
	}
	return roundDiv(sum, len(posts))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
