package types

// SentimentCounts holds per-sentiment feedback counters.
type SentimentCounts struct {
	Positive int `firestore:"positive" json:"positive"`
	Neutral  int `firestore:"neutral" json:"neutral"`
	Negative int `firestore:"negative" json:"negative"`
}

// LanguageCounts holds per-language feedback counters.
type LanguageCounts struct {
	EN    int `firestore:"en" json:"en"`
	RU    int `firestore:"ru" json:"ru"`
	UZ    int `firestore:"uz" json:"uz"`
	Other int `firestore:"other" json:"other"`
}

// DailyStats is the aggregate bucket for one calendar day. The Date field is
// the local-midnight day formatted as YYYY-MM-DD and doubles as the document
// key, so buckets sort and range lexicographically.
type DailyStats struct {
	Date               string          `firestore:"date" json:"date"`
	TotalFeedbacks     int             `firestore:"totalFeedbacks" json:"totalFeedbacks"`
	Sentiments         SentimentCounts `firestore:"sentiments" json:"sentiments"`
	Languages          LanguageCounts  `firestore:"languages" json:"languages"`
	Airports           map[string]int  `firestore:"airports" json:"airports"`
	Services           map[string]int  `firestore:"services" json:"services"`
	HourlyDistribution map[string]int  `firestore:"hourlyDistribution" json:"hourlyDistribution"`
}

// NameCount is a counter keyed by a dynamic name (airport or service).
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyTrend is one day's row in the dashboard trend chart.
type DailyTrend struct {
	Date           string `json:"date"`
	TotalFeedbacks int    `json:"totalFeedbacks"`
	Positive       int    `json:"positive"`
	Neutral        int    `json:"neutral"`
	Negative       int    `json:"negative"`
}

// DashboardSummary merges daily buckets across a date range.
type DashboardSummary struct {
	TotalFeedbacks     int             `json:"totalFeedbacks"`
	Sentiments         SentimentCounts `json:"sentiments"`
	Languages          LanguageCounts  `json:"languages"`
	Airports           []NameCount     `json:"airports"`
	Services           []NameCount     `json:"services"`
	HourlyDistribution map[string]int  `json:"hourlyDistribution"`
	DailyStats         []DailyTrend    `json:"dailyStats"`
}
