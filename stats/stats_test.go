package stats

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"airfeedback/types"
)

// memStore applies increments the way the Firestore store does, but in
// memory, so the engine can be exercised without a live document store.
type memStore struct {
	buckets map[string]*types.DailyStats
	err     error
}

func newMemStore() *memStore {
	return &memStore{buckets: make(map[string]*types.DailyStats)}
}

func (m *memStore) IncrementBucket(_ context.Context, day string, inc BucketIncrement) error {
	if m.err != nil {
		return m.err
	}
	b, ok := m.buckets[day]
	if !ok {
		b = &types.DailyStats{
			Date:               day,
			Airports:           map[string]int{},
			Services:           map[string]int{},
			HourlyDistribution: map[string]int{},
		}
		m.buckets[day] = b
	}
	b.TotalFeedbacks++
	switch inc.Sentiment {
	case types.SentimentPositive:
		b.Sentiments.Positive++
	case types.SentimentNeutral:
		b.Sentiments.Neutral++
	case types.SentimentNegative:
		b.Sentiments.Negative++
	}
	switch inc.Language {
	case types.LangEN:
		b.Languages.EN++
	case types.LangRU:
		b.Languages.RU++
	case types.LangUZ:
		b.Languages.UZ++
	default:
		b.Languages.Other++
	}
	if inc.Airport != "" {
		b.Airports[inc.Airport]++
	}
	if inc.Service != "" {
		b.Services[inc.Service]++
	}
	b.HourlyDistribution[HourKey(inc.Hour)]++
	return nil
}

func (m *memStore) BucketsInRange(_ context.Context, startDay, endDay string) ([]types.DailyStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []types.DailyStats
	for day, b := range m.buckets {
		if day >= startDay && day <= endDay {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func feedbackAt(t time.Time, sentiment, language, airport, service string) types.Feedback {
	return types.Feedback{
		Sentiment: sentiment,
		Language:  language,
		Airport:   airport,
		Service:   service,
		CreatedAt: t,
	}
}

func TestRecordFeedbackIncrementsAllCounterGroups(t *testing.T) {
	store := newMemStore()
	created := time.Date(2025, 6, 10, 14, 30, 0, 0, time.Local)
	fb := feedbackAt(created, types.SentimentPositive, types.LangEN, "TAS", "check-in")

	if err := RecordFeedback(context.Background(), store, fb); err != nil {
		t.Fatalf("RecordFeedback failed: %v", err)
	}

	b, ok := store.buckets["2025-06-10"]
	if !ok {
		t.Fatal("bucket for 2025-06-10 was not created")
	}
	if b.TotalFeedbacks != 1 {
		t.Errorf("totalFeedbacks = %d, want 1", b.TotalFeedbacks)
	}
	if b.Sentiments.Positive != 1 {
		t.Errorf("positive = %d, want 1", b.Sentiments.Positive)
	}
	if b.Languages.EN != 1 {
		t.Errorf("en = %d, want 1", b.Languages.EN)
	}
	if b.Airports["TAS"] != 1 {
		t.Errorf("airports[TAS] = %d, want 1", b.Airports["TAS"])
	}
	if b.Services["check-in"] != 1 {
		t.Errorf("services[check-in] = %d, want 1", b.Services["check-in"])
	}
	if b.HourlyDistribution["14"] != 1 {
		t.Errorf("hourlyDistribution[14] = %d, want 1", b.HourlyDistribution["14"])
	}
}

func TestRecordFeedbackDoesNotDeduplicate(t *testing.T) {
	store := newMemStore()
	fb := feedbackAt(time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local),
		types.SentimentNegative, types.LangRU, "SKD", "security")

	// Recording the same record N times must double-count: at-most-once
	// delivery is the caller's job, not this engine's.
	for i := 0; i < 3; i++ {
		if err := RecordFeedback(context.Background(), store, fb); err != nil {
			t.Fatalf("RecordFeedback failed on call %d: %v", i+1, err)
		}
	}

	b := store.buckets["2025-06-10"]
	if b.TotalFeedbacks != 3 {
		t.Errorf("totalFeedbacks = %d, want 3", b.TotalFeedbacks)
	}
	if b.Sentiments.Negative != 3 {
		t.Errorf("negative = %d, want 3", b.Sentiments.Negative)
	}
}

func TestRecordFeedbackBucketInvariant(t *testing.T) {
	store := newMemStore()
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)
	records := []types.Feedback{
		feedbackAt(day.Add(8*time.Hour), types.SentimentPositive, types.LangEN, "TAS", "check-in"),
		feedbackAt(day.Add(9*time.Hour), types.SentimentNegative, types.LangRU, "TAS", "security"),
		feedbackAt(day.Add(10*time.Hour), types.SentimentNeutral, types.LangUZ, "SKD", "baggage"),
		feedbackAt(day.Add(11*time.Hour), types.SentimentPositive, "de", "SKD", "check-in"),
	}
	for _, fb := range records {
		if err := RecordFeedback(context.Background(), store, fb); err != nil {
			t.Fatalf("RecordFeedback failed: %v", err)
		}
	}

	b := store.buckets["2025-06-10"]
	sentimentSum := b.Sentiments.Positive + b.Sentiments.Neutral + b.Sentiments.Negative
	languageSum := b.Languages.EN + b.Languages.RU + b.Languages.UZ + b.Languages.Other
	if b.TotalFeedbacks != sentimentSum {
		t.Errorf("totalFeedbacks = %d, sentiment sum = %d", b.TotalFeedbacks, sentimentSum)
	}
	if b.TotalFeedbacks != languageSum {
		t.Errorf("totalFeedbacks = %d, language sum = %d", b.TotalFeedbacks, languageSum)
	}
	if b.Languages.Other != 1 {
		t.Errorf("unsupported language should count as other, got %d", b.Languages.Other)
	}
}

func TestRecordFeedbackWrapsStoreError(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("firestore unavailable")
	fb := feedbackAt(time.Now(), types.SentimentNeutral, types.LangEN, "TAS", "wifi")

	err := RecordFeedback(context.Background(), store, fb)
	if err == nil {
		t.Fatal("expected an error when the store fails")
	}
	if !errors.Is(err, ErrStatsUpdate) {
		t.Errorf("error %v is not ErrStatsUpdate", err)
	}
}

func TestDashboardSummaryRoundTrip(t *testing.T) {
	store := newMemStore()
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)

	records := []types.Feedback{
		feedbackAt(now, types.SentimentPositive, types.LangEN, "TAS", "check-in"),
		feedbackAt(now, types.SentimentNegative, types.LangRU, "SKD", "security"),
		feedbackAt(yesterday, types.SentimentNeutral, types.LangUZ, "TAS", "check-in"),
	}
	for _, fb := range records {
		if err := RecordFeedback(context.Background(), store, fb); err != nil {
			t.Fatalf("RecordFeedback failed: %v", err)
		}
	}

	summary, err := DashboardSummary(context.Background(), store, 7)
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}

	if summary.TotalFeedbacks != 3 {
		t.Errorf("totalFeedbacks = %d, want 3", summary.TotalFeedbacks)
	}
	want := types.SentimentCounts{Positive: 1, Neutral: 1, Negative: 1}
	if summary.Sentiments != want {
		t.Errorf("sentiments = %+v, want %+v", summary.Sentiments, want)
	}
	wantLangs := types.LanguageCounts{EN: 1, RU: 1, UZ: 1}
	if summary.Languages != wantLangs {
		t.Errorf("languages = %+v, want %+v", summary.Languages, wantLangs)
	}

	airports := map[string]int{}
	for _, nc := range summary.Airports {
		airports[nc.Name] = nc.Count
	}
	if airports["TAS"] != 2 || airports["SKD"] != 1 {
		t.Errorf("airports = %v, want TAS:2 SKD:1", airports)
	}

	services := map[string]int{}
	for _, nc := range summary.Services {
		services[nc.Name] = nc.Count
	}
	if services["check-in"] != 2 || services["security"] != 1 {
		t.Errorf("services = %v, want check-in:2 security:1", services)
	}

	if len(summary.DailyStats) != 2 {
		t.Fatalf("dailyStats has %d rows, want 2", len(summary.DailyStats))
	}
	if summary.DailyStats[0].Date >= summary.DailyStats[1].Date {
		t.Errorf("dailyStats not ordered by day: %v", summary.DailyStats)
	}
	if summary.DailyStats[0].TotalFeedbacks != 1 || summary.DailyStats[1].TotalFeedbacks != 2 {
		t.Errorf("dailyStats totals = %v, want yesterday:1 today:2", summary.DailyStats)
	}
}

func TestDashboardSummarySameDayScenario(t *testing.T) {
	store := newMemStore()
	now := time.Now()

	for _, fb := range []types.Feedback{
		feedbackAt(now, types.SentimentPositive, types.LangEN, "A", "check-in"),
		feedbackAt(now, types.SentimentNegative, types.LangRU, "B", "security"),
	} {
		if err := RecordFeedback(context.Background(), store, fb); err != nil {
			t.Fatalf("RecordFeedback failed: %v", err)
		}
	}

	summary, err := DashboardSummary(context.Background(), store, 1)
	if err != nil {
		t.Fatalf("DashboardSummary failed: %v", err)
	}
	if summary.TotalFeedbacks != 2 {
		t.Errorf("totalFeedbacks = %d, want 2", summary.TotalFeedbacks)
	}
	want := types.SentimentCounts{Positive: 1, Negative: 1}
	if summary.Sentiments != want {
		t.Errorf("sentiments = %+v, want %+v", summary.Sentiments, want)
	}
	wantLangs := types.LanguageCounts{EN: 1, RU: 1}
	if summary.Languages != wantLangs {
		t.Errorf("languages = %+v, want %+v", summary.Languages, wantLangs)
	}
	if len(summary.Airports) != 2 {
		t.Errorf("airports = %v, want two entries", summary.Airports)
	}
}

func TestDashboardSummaryEmptyAndInvalidRanges(t *testing.T) {
	store := newMemStore()

	tests := []struct {
		name string
		days int
	}{
		{"zero days", 0},
		{"negative days", -5},
		{"no buckets in range", 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := DashboardSummary(context.Background(), store, tt.days)
			if err != nil {
				t.Fatalf("DashboardSummary failed: %v", err)
			}
			if summary.TotalFeedbacks != 0 {
				t.Errorf("totalFeedbacks = %d, want 0", summary.TotalFeedbacks)
			}
			if len(summary.DailyStats) != 0 {
				t.Errorf("dailyStats = %v, want empty", summary.DailyStats)
			}
			if summary.Airports == nil || summary.Services == nil {
				t.Error("summary slices should be empty, not nil")
			}
		})
	}
}

func TestDayKeyIsLocalMidnightAligned(t *testing.T) {
	justBeforeMidnight := time.Date(2025, 6, 10, 23, 59, 59, 0, time.Local)
	justAfterMidnight := time.Date(2025, 6, 11, 0, 0, 1, 0, time.Local)
	if DayKey(justBeforeMidnight) != "2025-06-10" {
		t.Errorf("DayKey = %q, want 2025-06-10", DayKey(justBeforeMidnight))
	}
	if DayKey(justAfterMidnight) != "2025-06-11" {
		t.Errorf("DayKey = %q, want 2025-06-11", DayKey(justAfterMidnight))
	}
}
