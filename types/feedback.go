package types

import "time"

// Sentiment labels attached to a classified comment.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Language codes the pipeline can resolve. Anything else is counted as "other".
const (
	LangEN    = "en"
	LangRU    = "ru"
	LangUZ    = "uz"
	LangOther = "other"
)

// Feedback represents a submitted comment stored in Firestore, including the
// classification fields computed at ingest time.
type Feedback struct {
	ID              string    `firestore:"-" json:"id"`
	Name            string    `firestore:"name" json:"name"`
	Email           string    `firestore:"email,omitempty" json:"email,omitempty"`
	Airport         string    `firestore:"airport" json:"airport"`
	Service         string    `firestore:"service" json:"service"`
	Comment         string    `firestore:"comment" json:"comment"`
	Language        string    `firestore:"language" json:"language"`
	Sentiment       string    `firestore:"sentiment" json:"sentiment"`
	SentimentScore  float64   `firestore:"sentimentScore" json:"sentimentScore"`
	Keywords        []string  `firestore:"keywords" json:"keywords"`
	IsModerated     bool      `firestore:"isModerated" json:"isModerated"`
	ModerationNotes string    `firestore:"moderationNotes,omitempty" json:"moderationNotes,omitempty"`
	IPAddress       string    `firestore:"ipAddress,omitempty" json:"-"`
	UserAgent       string    `firestore:"userAgent,omitempty" json:"-"`
	CreatedAt       time.Time `firestore:"createdAt" json:"createdAt"`
}

// Classification is the result of running the NLP pipeline over one comment.
// Produced once per comment and attached to exactly one Feedback record.
type Classification struct {
	Sentiment string   `json:"sentiment"`
	Score     float64  `json:"score"`
	Language  string   `json:"language"`
	Keywords  []string `json:"keywords"`
}

// LanguageKey maps a feedback language to one of the four counted buckets.
func LanguageKey(lang string) string {
	switch lang {
	case LangEN, LangRU, LangUZ:
		return lang
	default:
		return LangOther
	}
}
