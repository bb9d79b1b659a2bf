package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"airfeedback/cronjobs"
	"airfeedback/db"
	"airfeedback/nlp"
	"airfeedback/notify"
	"airfeedback/routes"
)

func main() {
	// Load .env file; in production config comes from the environment.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// OpenAI is optional; without a key the summary endpoint reports 503.
	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		openaiClient = openai.NewClient(apiKey)
		log.Println("OPENAI_API_KEY loaded")
	}

	// The lexicon is built once and shared read-only by every request.
	analyzer := nlp.NewAnalyzer(nlp.DefaultLexicon())
	statsStore := db.NewStatsStore(firestoreClient)
	hub := notify.NewHub()

	cronjobs.InitCronJobs(statsStore)

	r := routes.SetupRouter(firestoreClient, openaiClient, analyzer, statsStore, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
