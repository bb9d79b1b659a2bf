package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"airfeedback/types"
)

// FeedbackFilter narrows a feedback listing. Zero values mean "no filter".
type FeedbackFilter struct {
	Airport   string
	Service   string
	Sentiment string
	Language  string
	StartDate time.Time
	EndDate   time.Time
}

// SaveFeedback writes a new feedback document with an auto-generated ID and
// returns the stored record with its ID set.
func SaveFeedback(ctx context.Context, client *firestore.Client, fb types.Feedback) (types.Feedback, error) {
	ref := client.Collection(feedbackCollection).NewDoc()
	if _, err := ref.Set(ctx, fb); err != nil {
		return fb, fmt.Errorf("saving feedback: %w", err)
	}
	fb.ID = ref.ID
	return fb, nil
}

// GetFeedback fetches one feedback document by ID.
func GetFeedback(ctx context.Context, client *firestore.Client, id string) (types.Feedback, error) {
	var fb types.Feedback
	doc, err := client.Collection(feedbackCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fb, ErrNotFound
		}
		return fb, fmt.Errorf("getting feedback %s: %w", id, err)
	}
	if err := doc.DataTo(&fb); err != nil {
		return fb, fmt.Errorf("decoding feedback %s: %w", id, err)
	}
	fb.ID = doc.Ref.ID
	return fb, nil
}

// ListFeedbacks returns all feedback matching the filter, newest first.
func ListFeedbacks(ctx context.Context, client *firestore.Client, filter FeedbackFilter) ([]types.Feedback, error) {
	q := client.Collection(feedbackCollection).Query
	if filter.Airport != "" {
		q = q.Where("airport", "==", filter.Airport)
	}
	if filter.Service != "" {
		q = q.Where("service", "==", filter.Service)
	}
	if filter.Sentiment != "" {
		q = q.Where("sentiment", "==", filter.Sentiment)
	}
	if filter.Language != "" {
		q = q.Where("language", "==", filter.Language)
	}
	if !filter.StartDate.IsZero() {
		q = q.Where("createdAt", ">=", filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		q = q.Where("createdAt", "<=", filter.EndDate)
	}
	q = q.OrderBy("createdAt", firestore.Desc)

	var feedbacks []types.Feedback
	iter := q.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("listing feedbacks: %w", err)
		}
		var fb types.Feedback
		if err := doc.DataTo(&fb); err != nil {
			return nil, fmt.Errorf("decoding feedback %s: %w", doc.Ref.ID, err)
		}
		fb.ID = doc.Ref.ID
		feedbacks = append(feedbacks, fb)
	}
	return feedbacks, nil
}

// UpdateModeration sets the moderation fields of a feedback document. A nil
// moderated pointer leaves the flag untouched.
func UpdateModeration(ctx context.Context, client *firestore.Client, id string, moderated *bool, notes string) error {
	var updates []firestore.Update
	if moderated != nil {
		updates = append(updates, firestore.Update{Path: "isModerated", Value: *moderated})
	}
	if notes != "" {
		updates = append(updates, firestore.Update{Path: "moderationNotes", Value: notes})
	}
	if len(updates) == 0 {
		return nil
	}
	_, err := client.Collection(feedbackCollection).Doc(id).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("updating feedback %s: %w", id, err)
	}
	return nil
}

// DeleteFeedback removes a feedback document.
func DeleteFeedback(ctx context.Context, client *firestore.Client, id string) error {
	if _, err := client.Collection(feedbackCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("deleting feedback %s: %w", id, err)
	}
	return nil
}
