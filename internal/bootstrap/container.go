package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"

	"asesor-legal-be/internal/config"
	"asesor-legal-be/internal/controller"
	"asesor-legal-be/internal/pkg/logger"
	"asesor-legal-be/internal/repository/implementation"
	"asesor-legal-be/internal/repository/memory"
	"asesor-legal-be/internal/service"
	"asesor-legal-be/pkg/ai/router"
	"asesor-legal-be/pkg/embedding"
	"asesor-legal-be/pkg/llm"
	"asesor-legal-be/pkg/llm/factory"
	"asesor-legal-be/pkg/pdf"
	"asesor-legal-be/pkg/rag"
)

type Container struct {
	// Controllers
	AdvisorController    *controller.AdvisorController
	CalculatorController *controller.CalculatorController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Embedding Provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
		log.Printf("[INFO] Using Embedding Provider: GEMINI (%s)", cfg.Ai.EmbeddingModel)
	}

	// LLM Provider. A missing credential is not fatal: the router degrades the
	// generative layer to an advisory and the calculators keep working.
	var llmProvider llm.LLMProvider
	provider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Keys.GoogleGemini,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Printf("[WARN] LLM Provider unavailable: %v", err)
	} else {
		llmProvider = provider
		log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)
	}

	// Repositories
	sessionRepo := memory.NewSessionRepository()
	lawChunkRepo := implementation.NewLawChunkRepository(db)

	// Retrieval + Router
	retriever := rag.NewRetriever(embeddingProvider, lawChunkRepo, sysLogger, cfg.Rag.TopK)
	engine := router.NewEngine(
		router.Probes(),
		retriever,
		llmProvider,
		sessionRepo,
		sysLogger,
		cfg.Rag.TopK,
	)

	// Services
	extractor := pdf.NewExtractor()
	advisorService := service.NewAdvisorService(engine)
	ingestService := service.NewIngestService(
		pubSub,
		cfg.Keys.IngestTopic,
		extractor,
		embeddingProvider,
		lawChunkRepo,
		sysLogger,
		cfg.Rag.ChunkSize,
		cfg.Rag.ChunkOverlap,
	)
	documentService := service.NewDocumentService(extractor, llmProvider, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.IngestTopic, ingestService, sysLogger)

	return &Container{
		AdvisorController: controller.NewAdvisorController(
			advisorService,
			ingestService,
			documentService,
			cfg.Rag.KnowledgeDir,
		),
		CalculatorController: controller.NewCalculatorController(),

		ConsumerService: consumerService,
	}
}
