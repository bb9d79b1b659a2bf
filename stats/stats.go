// Package stats maintains the per-day aggregate buckets that back the admin
// dashboard. Storage sits behind the BucketStore port so the engine itself
// stays pure aggregation; the Firestore implementation lives in the db
// package.
package stats

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"airfeedback/types"
)

// ErrStatsUpdate marks a failed rollup write. Callers must treat it as a
// real failure: a lost increment silently corrupts dashboard totals.
var ErrStatsUpdate = errors.New("stats update failed")

// BucketIncrement describes the +1s one feedback record contributes to its
// day bucket.
type BucketIncrement struct {
	Sentiment string
	Language  string
	Airport   string
	Service   string
	Hour      int
}

// BucketStore is the storage port for daily buckets. IncrementBucket must
// apply all counters atomically with upsert-on-missing semantics, so
// concurrent submissions landing in the same day never lose updates.
type BucketStore interface {
	IncrementBucket(ctx context.Context, day string, inc BucketIncrement) error
	BucketsInRange(ctx context.Context, startDay, endDay string) ([]types.DailyStats, error)
}

// DayKey formats a timestamp as its local calendar day, midnight-aligned.
func DayKey(t time.Time) string {
	return t.Local().Format("2006-01-02")
}

// RecordFeedback folds one persisted feedback record into its day's bucket.
// Each call increments the counters; invoking it twice for the same record
// double-counts. At-most-once delivery is the caller's responsibility.
func RecordFeedback(ctx context.Context, store BucketStore, fb types.Feedback) error {
	local := fb.CreatedAt.Local()
	inc := BucketIncrement{
		Sentiment: fb.Sentiment,
		Language:  types.LanguageKey(fb.Language),
		Airport:   fb.Airport,
		Service:   fb.Service,
		Hour:      local.Hour(),
	}
	if err := store.IncrementBucket(ctx, DayKey(local), inc); err != nil {
		return fmt.Errorf("%w: %v", ErrStatsUpdate, err)
	}
	return nil
}

// DashboardSummary merges the buckets for the inclusive [today-days, today]
// range into one summary plus a day-ordered trend series. A non-positive
// range or an empty one yields a zeroed summary, not an error.
func DashboardSummary(ctx context.Context, store BucketStore, days int) (types.DashboardSummary, error) {
	summary := types.DashboardSummary{
		Airports:           []types.NameCount{},
		Services:           []types.NameCount{},
		HourlyDistribution: map[string]int{},
		DailyStats:         []types.DailyTrend{},
	}
	if days <= 0 {
		return summary, nil
	}

	now := time.Now()
	start := DayKey(now.AddDate(0, 0, -days))
	end := DayKey(now)

	buckets, err := store.BucketsInRange(ctx, start, end)
	if err != nil {
		return summary, fmt.Errorf("fetching buckets in [%s, %s]: %w", start, end, err)
	}

	airports := map[string]int{}
	services := map[string]int{}
	for _, b := range buckets {
		summary.TotalFeedbacks += b.TotalFeedbacks

		summary.Sentiments.Positive += b.Sentiments.Positive
		summary.Sentiments.Neutral += b.Sentiments.Neutral
		summary.Sentiments.Negative += b.Sentiments.Negative

		summary.Languages.EN += b.Languages.EN
		summary.Languages.RU += b.Languages.RU
		summary.Languages.UZ += b.Languages.UZ
		summary.Languages.Other += b.Languages.Other

		for name, count := range b.Airports {
			airports[name] += count
		}
		for name, count := range b.Services {
			services[name] += count
		}
		for hour, count := range b.HourlyDistribution {
			summary.HourlyDistribution[hour] += count
		}

		summary.DailyStats = append(summary.DailyStats, types.DailyTrend{
			Date:           b.Date,
			TotalFeedbacks: b.TotalFeedbacks,
			Positive:       b.Sentiments.Positive,
			Neutral:        b.Sentiments.Neutral,
			Negative:       b.Sentiments.Negative,
		})
	}

	sort.Slice(summary.DailyStats, func(i, j int) bool {
		return summary.DailyStats[i].Date < summary.DailyStats[j].Date
	})
	summary.Airports = sortedCounts(airports)
	summary.Services = sortedCounts(services)

	return summary, nil
}

// sortedCounts flattens a counter map into a deterministic slice, highest
// count first, name as tie-break.
func sortedCounts(m map[string]int) []types.NameCount {
	out := make([]types.NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, types.NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// HourKey is the bucket map key for an hour of day.
func HourKey(hour int) string {
	return strconv.Itoa(hour)
}
