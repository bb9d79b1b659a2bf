package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"sort"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"airfeedback/db"
	"airfeedback/notify"
	"airfeedback/stats"
	"airfeedback/summarization"
	"airfeedback/types"
)

// UpdateFeedback applies moderation fields to a feedback record.
func UpdateFeedback(c *gin.Context, client *firestore.Client) {
	var req struct {
		IsModerated     *bool  `json:"isModerated"`
		ModerationNotes string `json:"moderationNotes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	id := c.Param("id")
	ctx := c.Request.Context()
	if err := db.UpdateModeration(ctx, client, id, req.IsModerated, req.ModerationNotes); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Feedback not found"})
			return
		}
		log.Printf("Error updating feedback %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update feedback"})
		return
	}

	fb, err := db.GetFeedback(ctx, client, id)
	if err != nil {
		log.Printf("Error reloading feedback %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fb})
}

// DeleteFeedback removes a feedback record. Stats buckets keep their counts;
// the rollup engine never decrements.
func DeleteFeedback(c *gin.Context, client *firestore.Client) {
	id := c.Param("id")
	if err := db.DeleteFeedback(c.Request.Context(), client, id); err != nil {
		log.Printf("Error deleting feedback %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// GetDashboard merges daily buckets over the requested range. Stats store
// failures surface here as server errors; only admins consume this path.
func GetDashboard(c *gin.Context, store stats.BucketStore) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil {
		days = 30
	}

	summary, err := stats.DashboardSummary(c.Request.Context(), store, days)
	if err != nil {
		log.Printf("Error getting dashboard stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// keyBreakdown is one airport's or service's sentiment breakdown.
type keyBreakdown struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	Positive     int     `json:"positive"`
	Neutral      int     `json:"neutral"`
	Negative     int     `json:"negative"`
	AverageScore float64 `json:"averageScore"`
}

// GetAirportComparison aggregates feedback per airport over a date range.
func GetAirportComparison(c *gin.Context, client *firestore.Client) {
	aggregateByKey(c, client, func(fb types.Feedback) string { return fb.Airport })
}

// GetServiceAnalysis aggregates feedback per service, optionally scoped to
// one airport.
func GetServiceAnalysis(c *gin.Context, client *firestore.Client) {
	aggregateByKey(c, client, func(fb types.Feedback) string { return fb.Service })
}

func aggregateByKey(c *gin.Context, client *firestore.Client, key func(types.Feedback) string) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	feedbacks, err := db.ListFeedbacks(c.Request.Context(), client, filter)
	if err != nil {
		log.Printf("Error aggregating feedbacks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to aggregate feedbacks"})
		return
	}

	byKey := map[string]*keyBreakdown{}
	scoreSums := map[string]float64{}
	for _, fb := range feedbacks {
		k := key(fb)
		if k == "" {
			continue
		}
		b, ok := byKey[k]
		if !ok {
			b = &keyBreakdown{Name: k}
			byKey[k] = b
		}
		b.Count++
		scoreSums[k] += fb.SentimentScore
		switch fb.Sentiment {
		case types.SentimentPositive:
			b.Positive++
		case types.SentimentNeutral:
			b.Neutral++
		case types.SentimentNegative:
			b.Negative++
		}
	}

	results := make([]keyBreakdown, 0, len(byKey))
	for k, b := range byKey {
		b.AverageScore = scoreSums[k] / float64(b.Count)
		results = append(results, *b)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Count != results[j].Count {
			return results[i].Count > results[j].Count
		}
		return results[i].Name < results[j].Name
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(results), "data": results})
}

// GetKeywordAnalysis counts stored keywords across the filtered feedback.
func GetKeywordAnalysis(c *gin.Context, client *firestore.Client) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	feedbacks, err := db.ListFeedbacks(c.Request.Context(), client, filter)
	if err != nil {
		log.Printf("Error fetching feedbacks for keywords: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch feedbacks"})
		return
	}

	counts := map[string]int{}
	for _, fb := range feedbacks {
		for _, kw := range fb.Keywords {
			counts[kw]++
		}
	}

	keywords := make([]types.NameCount, 0, len(counts))
	for kw, count := range counts {
		keywords = append(keywords, types.NameCount{Name: kw, Count: count})
	}
	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Name < keywords[j].Name
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(keywords), "data": keywords})
}

// GetSummaryDigest builds an OpenAI digest of the comments from the last
// `days` days.
func GetSummaryDigest(c *gin.Context, client *firestore.Client, openaiClient *openai.Client) {
	if openaiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Summarization is not configured"})
		return
	}

	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	feedbacks, err := db.ListFeedbacks(c.Request.Context(), client, filter)
	if err != nil {
		log.Printf("Error fetching feedbacks for digest: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch feedbacks"})
		return
	}

	comments := make([]string, 0, len(feedbacks))
	for _, fb := range feedbacks {
		if fb.Comment != "" {
			comments = append(comments, fb.Comment)
		}
	}

	digest, err := summarization.GenerateDigest(c.Request.Context(), openaiClient, comments)
	if err != nil {
		log.Printf("Error generating digest: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate digest"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"summary": digest, "comments": len(comments)}})
}

// AdminFeed streams new-feedback events to the admin dashboard over SSE.
func AdminFeed(c *gin.Context, hub *notify.Hub) {
	ch, cancel := hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("new_feedback", ev)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
