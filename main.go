package main

import (
	"log"
	"net/http"
	"os"

	"notesbot/api"
	"notesbot/extraction"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	provider := extraction.NewDefaultProvider(os.Getenv("COMPLETION_MODEL"))
	if provider == nil {
		log.Fatalf("no completion provider configured: set COHERE_API_KEY or OPENAI_API_KEY")
	}
	log.Printf("Using completion model %s", provider.ModelName())

	extractor := extraction.NewExtractor(provider)

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter(extractor)
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /health")
	log.Println("  POST /api/extract-action-items")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
