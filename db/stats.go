package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"airfeedback/stats"
	"airfeedback/types"
)

// StatsStore is the Firestore implementation of stats.BucketStore. Buckets
// live in the stats collection keyed by their YYYY-MM-DD day string.
type StatsStore struct {
	client *firestore.Client
}

// NewStatsStore wraps a Firestore client as a bucket store.
func NewStatsStore(client *firestore.Client) *StatsStore {
	return &StatsStore{client: client}
}

// IncrementBucket applies one feedback's counters to the day's bucket in a
// single Set with merge semantics. Every counter is a firestore.Increment
// transform, so the write is atomic per field and creates the bucket when it
// does not exist yet; concurrent submissions on the same day cannot lose
// updates.
func (s *StatsStore) IncrementBucket(ctx context.Context, day string, inc stats.BucketIncrement) error {
	data := map[string]interface{}{
		"date":           day,
		"totalFeedbacks": firestore.Increment(1),
		"sentiments": map[string]interface{}{
			inc.Sentiment: firestore.Increment(1),
		},
		"languages": map[string]interface{}{
			inc.Language: firestore.Increment(1),
		},
		"hourlyDistribution": map[string]interface{}{
			stats.HourKey(inc.Hour): firestore.Increment(1),
		},
	}
	if inc.Airport != "" {
		data["airports"] = map[string]interface{}{inc.Airport: firestore.Increment(1)}
	}
	if inc.Service != "" {
		data["services"] = map[string]interface{}{inc.Service: firestore.Increment(1)}
	}

	_, err := s.client.Collection(statsCollection).Doc(day).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("incrementing bucket %s: %w", day, err)
	}
	return nil
}

// BucketsInRange returns the buckets with day keys in [startDay, endDay]
// inclusive, ascending. Day keys sort lexicographically, so this is a plain
// string range query.
func (s *StatsStore) BucketsInRange(ctx context.Context, startDay, endDay string) ([]types.DailyStats, error) {
	q := s.client.Collection(statsCollection).
		Where("date", ">=", startDay).
		Where("date", "<=", endDay).
		OrderBy("date", firestore.Asc)

	var buckets []types.DailyStats
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("querying stats range: %w", err)
		}
		var b types.DailyStats
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("decoding bucket %s: %w", doc.Ref.ID, err)
		}
		buckets = append(buckets, b)
	}
	return buckets, nil
}
