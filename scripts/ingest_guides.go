package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"

	"alfredoptarigan/virtual-panel/internal/config"
	"alfredoptarigan/virtual-panel/internal/services"
)

// Guides live under $GUIDES_DIR/interview/*.pdf and $GUIDES_DIR/resume/*.pdf.
var guideDirs = map[string]string{
	"interview": services.DocTypeInterviewGuide,
	"resume":    services.DocTypeResumeGuide,
}

func main() {
	log.Println("🚀 Starting guide ingestion...")

	// Load configuration
	cfg := config.Load()
	if !cfg.Qdrant.Enabled() {
		log.Fatal("❌ QDRANT_URL is not set, nothing to ingest into")
	}

	ctx := context.Background()

	// Initialize services
	llm, err := services.NewLLMClient(ctx, cfg.AI)
	if err != nil {
		log.Fatalf("❌ Failed to initialize %s client: %v", cfg.AI.Provider, err)
	}
	if llm == nil {
		log.Fatal("❌ A valid AI API key is required to embed guides")
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := qdrantService.InitCollection(ctx); err != nil {
		log.Fatalf("❌ Failed to initialize collection: %v", err)
	}

	ingester := services.NewGuideIngester(llm, qdrantService, services.NewPDFParserService(), services.NewTextChunker())

	root := os.Getenv("GUIDES_DIR")
	if root == "" {
		root = "./guides"
	}

	var documents []services.GuideDocument
	for dir, docType := range guideDirs {
		paths, err := filepath.Glob(filepath.Join(root, dir, "*.pdf"))
		if err != nil {
			log.Fatalf("❌ Bad guide path: %v", err)
		}
		for _, p := range paths {
			documents = append(documents, services.GuideDocument{Path: p, DocType: docType})
		}
	}

	if len(documents) == 0 {
		log.Printf("⚠️  No guide PDFs found under %s", root)
		return
	}

	successCount := 0
	failCount := 0

	for _, doc := range documents {
		log.Printf("\n📄 Processing: %s (%s)", doc.Path, doc.DocType)

		report, err := ingester.Ingest(ctx, doc)
		if err != nil {
			log.Printf("   ❌ %v", err)
			failCount++
			continue
		}

		log.Printf("   ✅ Stored %d/%d chunks", report.Stored, report.Chunks)
		successCount++
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Ingestion Summary:")
	log.Printf("   ✅ Successful: %d documents", successCount)
	log.Printf("   ❌ Failed: %d documents", failCount)
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some guides failed to ingest. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All guides ingested successfully!")
}
