package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"airfeedback/db"
	"airfeedback/metrics"
	"airfeedback/nlp"
	"airfeedback/notify"
	"airfeedback/stats"
	"airfeedback/types"
)

const dateLayout = "2006-01-02"

// CreateFeedback accepts a public feedback submission, classifies the
// comment, persists the record, and rolls it into today's stats bucket. A
// rollup failure is logged and counted but never fails the submission; the
// classification itself can never fail.
func CreateFeedback(c *gin.Context, client *firestore.Client, analyzer *nlp.Analyzer, store stats.BucketStore, hub *notify.Hub) {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Airport string `json:"airport"`
		Service string `json:"service"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment is required"})
		return
	}
	if req.Airport == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Airport is required"})
		return
	}
	if req.Service == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Service is required"})
		return
	}

	name := req.Name
	if name == "" {
		name = "Anonymous"
	}

	result := analyzer.Analyze(req.Comment)

	fb := types.Feedback{
		Name:           name,
		Email:          req.Email,
		Airport:        req.Airport,
		Service:        req.Service,
		Comment:        req.Comment,
		Language:       result.Language,
		Sentiment:      result.Sentiment,
		SentimentScore: result.Score,
		Keywords:       result.Keywords,
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		CreatedAt:      time.Now(),
	}

	ctx := c.Request.Context()
	saved, err := db.SaveFeedback(ctx, client, fb)
	if err != nil {
		log.Printf("Error creating feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to save feedback"})
		return
	}

	// The record is durable; a lost rollup only skews dashboards, so the
	// public path stays a 201 while admins see the failure in the metrics.
	if err := stats.RecordFeedback(ctx, store, saved); err != nil {
		log.Printf("Error updating stats for feedback %s: %v", saved.ID, err)
		metrics.RollupFailures.Inc()
	}

	metrics.FeedbacksIngested.WithLabelValues(saved.Sentiment, types.LanguageKey(saved.Language)).Inc()

	hub.Publish(notify.Event{
		ID:        saved.ID,
		Name:      saved.Name,
		Airport:   saved.Airport,
		Service:   saved.Service,
		Comment:   saved.Comment,
		Sentiment: saved.Sentiment,
		Language:  saved.Language,
		CreatedAt: saved.CreatedAt,
	})

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data": gin.H{
			"id":             saved.ID,
			"sentiment":      saved.Sentiment,
			"sentimentScore": saved.SentimentScore,
			"language":       saved.Language,
		},
	})
}

// GetFeedbacks lists feedback with optional filters and pagination.
func GetFeedbacks(c *gin.Context, client *firestore.Client) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	feedbacks, err := db.ListFeedbacks(c.Request.Context(), client, filter)
	if err != nil {
		log.Printf("Error listing feedbacks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to list feedbacks"})
		return
	}

	total := len(feedbacks)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageItems := feedbacks[start:end]

	pages := total / limit
	if total%limit != 0 {
		pages++
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(pageItems),
		"pagination": gin.H{
			"total": total,
			"page":  page,
			"limit": limit,
			"pages": pages,
		},
		"data": pageItems,
	})
}

// GetFeedback returns a single feedback record by ID.
func GetFeedback(c *gin.Context, client *firestore.Client) {
	fb, err := db.GetFeedback(c.Request.Context(), client, c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Feedback not found"})
			return
		}
		log.Printf("Error getting feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get feedback"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": fb})
}

// AnalyzeComment classifies a comment without persisting anything. Useful
// for client previews and for exercising the pipeline directly.
func AnalyzeComment(c *gin.Context, analyzer *nlp.Analyzer) {
	var req struct {
		Comment  string `json:"comment"`
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}
	if req.Comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Comment is required"})
		return
	}

	var result types.Classification
	if req.Language == "" || req.Language == nlp.LangAuto {
		result = analyzer.Analyze(req.Comment)
	} else {
		sentiment, score, lang := analyzer.Classify(req.Comment, req.Language)
		result = types.Classification{
			Sentiment: sentiment,
			Score:     score,
			Language:  lang,
			Keywords:  analyzer.ExtractKeywords(req.Comment),
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}

// parseFilter reads the shared listing filters from the query string. On a
// bad date it writes the 400 itself and returns ok=false.
func parseFilter(c *gin.Context) (db.FeedbackFilter, bool) {
	filter := db.FeedbackFilter{
		Airport:   c.Query("airport"),
		Service:   c.Query("service"),
		Sentiment: c.Query("sentiment"),
		Language:  c.Query("language"),
	}
	if s := c.Query("startDate"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid startDate"})
			return filter, false
		}
		filter.StartDate = t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid endDate"})
			return filter, false
		}
		// Inclusive through the end of the requested day.
		filter.EndDate = t.Add(24*time.Hour - time.Nanosecond)
	}
	return filter, true
}
