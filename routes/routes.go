package routes

import (
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sashabaranov/go-openai"

	"airfeedback/handlers"
	"airfeedback/nlp"
	"airfeedback/notify"
	"airfeedback/stats"
)

// SetupRouter wires the HTTP surface. The openaiClient may be nil when
// summarization is not configured.
func SetupRouter(
	firestoreClient *firestore.Client,
	openaiClient *openai.Client,
	analyzer *nlp.Analyzer,
	store stats.BucketStore,
	hub *notify.Hub,
) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Airport feedback analytics API",
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	feedback := api.Group("/feedback")
	{
		feedback.POST("", func(c *gin.Context) {
			handlers.CreateFeedback(c, firestoreClient, analyzer, store, hub)
		})
		feedback.GET("", func(c *gin.Context) {
			handlers.GetFeedbacks(c, firestoreClient)
		})
		feedback.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeComment(c, analyzer)
		})
		feedback.GET("/:id", func(c *gin.Context) {
			handlers.GetFeedback(c, firestoreClient)
		})
	}

	admin := api.Group("/admin")
	{
		admin.PUT("/feedback/:id", func(c *gin.Context) {
			handlers.UpdateFeedback(c, firestoreClient)
		})
		admin.DELETE("/feedback/:id", func(c *gin.Context) {
			handlers.DeleteFeedback(c, firestoreClient)
		})
		admin.GET("/stats/dashboard", func(c *gin.Context) {
			handlers.GetDashboard(c, store)
		})
		admin.GET("/stats/airports", func(c *gin.Context) {
			handlers.GetAirportComparison(c, firestoreClient)
		})
		admin.GET("/stats/services", func(c *gin.Context) {
			handlers.GetServiceAnalysis(c, firestoreClient)
		})
		admin.GET("/stats/keywords", func(c *gin.Context) {
			handlers.GetKeywordAnalysis(c, firestoreClient)
		})
		admin.POST("/summary", func(c *gin.Context) {
			handlers.GetSummaryDigest(c, firestoreClient, openaiClient)
		})
		admin.GET("/feed", func(c *gin.Context) {
			handlers.AdminFeed(c, hub)
		})
	}

	return r
}

// corsMiddleware allows the configured client origin. Kept hand-rolled; the
// surface is two headers and a preflight short-circuit.
func corsMiddleware() gin.HandlerFunc {
	origin := os.Getenv("CLIENT_URL")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept")
		c.Header("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
