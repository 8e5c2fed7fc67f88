package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"asesor-legal-be/internal/config"
	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/internal/repository/implementation"
	"asesor-legal-be/internal/service"
	"asesor-legal-be/pkg/database"
	"asesor-legal-be/pkg/embedding"
	"asesor-legal-be/pkg/pdf"
)

// Synchronous knowledge-base loader: processes every PDF in the directory
// without going through the message queue.
func main() {
	dir := flag.String("dir", "", "directory with PDF files (defaults to KNOWLEDGE_DIR)")
	flag.Parse()

	cfg := config.Load()
	if *dir == "" {
		*dir = cfg.Rag.KnowledgeDir
	}

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
	}

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	ingestService := service.NewIngestService(
		pubSub,
		cfg.Keys.IngestTopic,
		pdf.NewExtractor(),
		embeddingProvider,
		implementation.NewLawChunkRepository(db),
		sysLogger,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
	)

	entries, err := os.ReadDir(*dir)
	if err != nil {
		log.Fatalf("Error: Failed to read directory %s: %v", *dir, err)
	}

	ctx := context.Background()
	totalAdded, totalSkipped := 0, 0
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			continue
		}
		path := filepath.Join(*dir, e.Name())

		added, skipped, err := ingestService.ProcessFile(ctx, path)
		if err != nil {
			log.Printf("Warn: %s failed: %v", e.Name(), err)
			continue
		}
		log.Printf("Indexed %s: %d new, %d duplicated", e.Name(), added, skipped)
		totalAdded += added
		totalSkipped += skipped
	}

	log.Printf("✅ Success: %d fragments stored, %d duplicates skipped.", totalAdded, totalSkipped)
}
