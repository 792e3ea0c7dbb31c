package models

// Dashboard is the denormalized presentation document read by the display
// layer. Field names are a fixed contract with the frontend; it indexes into
// the document by section and key and performs no computation of its own.
type Dashboard struct {
	OverallSection         OverallSection         `json:"overallSection"`
	OverviewSection        OverviewSection        `json:"overviewSection"`
	PositiveReviewsSection PositiveReviewsSection `json:"positiveReviewsSection"`
	NegativeReviewsSection NegativeReviewsSection `json:"negativeReviewsSection"`
	QueriesSection         QueriesSection         `json:"queriesSection"`
	ActionsSection         ActionsSection         `json:"actionsSection"`
	TopIssuesSection       TopIssuesSection       `json:"topIssuesSection"`
	Tabs                   Tabs                   `json:"tabs"`
	TimePeriodSelector     TimePeriodSelector     `json:"timePeriodSelector"`
}

type HeaderData struct {
	TotalReviews string `json:"totalReviews"`
	Description  string `json:"description"`
}

type SentimentSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type MetricCard struct {
	Title        string `json:"title"`
	Value        string `json:"value"`
	BgColor      string `json:"bgColor"`
	TextColor    string `json:"textColor"`
	Description  string `json:"description"`
	SubValue     string `json:"subValue,omitempty"`
	SubTextColor string `json:"subTextColor,omitempty"`
}

// Insight is one narrative sentence derived from computed percentages.
type Insight struct {
	Type       string `json:"type"`
	Text       string `json:"text"`
	Percentage int    `json:"percentage"`
}

type OverallSection struct {
	HeaderData    HeaderData       `json:"headerData"`
	SentimentData []SentimentSlice `json:"sentimentData"`
	TrendData     []TrendPoint     `json:"trendData"`
	MetricCards   []MetricCard     `json:"metricCards"`
	KeyInsights   []Insight        `json:"keyInsights"`
}

// ValuePoint is a single spark-line datum.
type ValuePoint struct {
	Value int `json:"value"`
}

type OverviewSection struct {
	PositiveData []ValuePoint `json:"positiveData"`
	NegativeData []ValuePoint `json:"negativeData"`
	QueriesData  []ValuePoint `json:"queriesData"`
}

// Keyword is a leaderboard entry with its display color class.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Color string `json:"color"`
}

type Praise struct {
	Praise string `json:"praise"`
	Time   string `json:"time"`
	Rating int    `json:"rating"`
}

type FeedbackCategory struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type PositiveReviewMetrics struct {
	AvgDriverRating    float64 `json:"avgDriverRating"`
	AvgWaitTime        float64 `json:"avgWaitTime"`
	VehiclePraise      int     `json:"vehiclePraise"`
	AppUXWins          int     `json:"appUXWins"`
	DriverEngagement   int     `json:"driverEngagement"`
	VehicleEngagement  int     `json:"vehicleEngagement"`
	AppEngagement      int     `json:"appEngagement"`
	TotalPositivePosts int     `json:"totalPositivePosts"`
}

type PositiveReviewsSection struct {
	PositiveKeywords           []Keyword             `json:"positiveKeywords"`
	RecentPraises              []Praise              `json:"recentPraises"`
	PositiveFeedbackCategories []FeedbackCategory    `json:"positiveFeedbackCategories"`
	PositiveReviewMetrics      PositiveReviewMetrics `json:"positiveReviewMetrics"`
}

type Complaint struct {
	Issue      string `json:"issue"`
	Severity   string `json:"severity"`
	Time       string `json:"time"`
	Engagement int    `json:"engagement"`
}

type ProblemArea struct {
	Name       string `json:"name"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

type NegativeReviewMetrics struct {
	AvgDriverRating    float64 `json:"avgDriverRating"`
	AvgWaitTime        float64 `json:"avgWaitTime"`
	VehicleIssues      int     `json:"vehicleIssues"`
	AppIssues          int     `json:"appIssues"`
	DriverEngagement   int     `json:"driverEngagement"`
	WaitEngagement     int     `json:"waitEngagement"`
	VehicleEngagement  int     `json:"vehicleEngagement"`
	AppEngagement      int     `json:"appEngagement"`
	TotalNegativePosts int     `json:"totalNegativePosts"`
}

type NegativeReviewsSection struct {
	NegativeKeywords      []Keyword             `json:"negativeKeywords"`
	RecentComplaints      []Complaint           `json:"recentComplaints"`
	NegativeReviewMetrics NegativeReviewMetrics `json:"negativeReviewMetrics"`
	NegativeProblemAreas  []ProblemArea         `json:"negativeProblemAreas"`
}

type QueryType struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

type QueriesSection struct {
	QueryTypes   []QueryType `json:"queryTypes"`
	TopQuestions []string    `json:"topQuestions"`
}

type FocusArea struct {
	ID           string `json:"id"`
	Area         string `json:"area"`
	Urgency      string `json:"urgency"`
	Impact       string `json:"impact"`
	Analysis     string `json:"analysis"`
	Solves       string `json:"solves"`
	SolvesDetail string `json:"solvesDetail"`
	Timeline     string `json:"timeline"`
	Department   string `json:"department"`
	Severity     string `json:"severity"`
}

type ActionsSection struct {
	FocusAreas []FocusArea `json:"focusAreas"`
}

type DepartmentIssue struct {
	Name    string `json:"name"`
	Count   int    `json:"count"`
	Urgency string `json:"urgency"`
	Action  string `json:"action"`
}

type Department struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Icon           string            `json:"icon"`
	Percentage     int               `json:"percentage"`
	Trend          string            `json:"trend"`
	TrendDirection string            `json:"trendDirection"`
	Color          string            `json:"color"`
	BgColor        string            `json:"bgColor"`
	BorderColor    string            `json:"borderColor"`
	Issues         []DepartmentIssue `json:"issues"`
}

type TopIssuesSection struct {
	DepartmentData []Department `json:"departmentData"`
	TrendData      []ValuePoint `json:"trendData"`
}

type Tab struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type Tabs struct {
	Tabs []Tab `json:"tabs"`
}

type TimePeriod struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	ShortLabel string `json:"shortLabel"`
}

type TimePeriodSelector struct {
	TimePeriods []TimePeriod `json:"timePeriods"`
}
