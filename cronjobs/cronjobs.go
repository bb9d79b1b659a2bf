package cronjobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"

	"airfeedback/stats"
)

// InitCronJobs schedules the background reporting jobs. They only read and
// log; all counter writes happen on the ingest path.
func InitCronJobs(store stats.BucketStore) {
	log.Println("Starting cron jobs")
	c := cron.New()

	// Daily digest: shortly after midnight, log yesterday's totals.
	_, err := c.AddFunc("5 0 * * *", func() {
		log.Println("CronJob: daily stats digest running")
		summary, err := stats.DashboardSummary(context.Background(), store, 1)
		if err != nil {
			log.Printf("CronJob: daily digest failed: %v", err)
			return
		}
		log.Printf("CronJob: last day total=%d positive=%d neutral=%d negative=%d",
			summary.TotalFeedbacks,
			summary.Sentiments.Positive,
			summary.Sentiments.Neutral,
			summary.Sentiments.Negative)
	})
	if err != nil {
		log.Println("Error scheduling daily digest:", err)
	}

	// Hourly heartbeat with the running 7-day totals.
	_, err = c.AddFunc("0 * * * *", func() {
		summary, err := stats.DashboardSummary(context.Background(), store, 7)
		if err != nil {
			log.Printf("CronJob: weekly totals failed: %v", err)
			return
		}
		log.Printf("CronJob: 7-day total=%d across %d days",
			summary.TotalFeedbacks, len(summary.DailyStats))
	})
	if err != nil {
		log.Println("Error scheduling hourly totals:", err)
	}

	c.Start()
}
