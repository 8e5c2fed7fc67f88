package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Rag      RagConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
	IngestTopic  string // Chunk embedding topic
}

type AIConfig struct {
	EmbeddingProvider    string // "gemini" or "ollama"
	EmbeddingModel       string
	OllamaBaseURL        string
	OllamaEmbeddingModel string
	LLMProvider          string // "gemini" or "ollama"
	LLMModel             string // e.g. "gemini-1.5-flash", "llama3"
}

type RagConfig struct {
	KnowledgeDir string
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			IngestTopic:  getEnv("EMBED_LAW_CHUNK_TOPIC_NAME", "EMBED_LAW_CHUNK"),
		},
		Ai: AIConfig{
			EmbeddingProvider:    getEnv("EMBEDDING_PROVIDER", "gemini"),
			EmbeddingModel:       getEnv("EMBEDDING_MODEL", "text-embedding-004"),
			OllamaBaseURL:        getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbeddingModel: getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:          getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:             getEnv("LLM_MODEL", "gemini-1.5-flash"),
		},
		Rag: RagConfig{
			KnowledgeDir: getEnv("KNOWLEDGE_DIR", "base_conocimiento"),
			ChunkSize:    getEnvAsInt("CHUNK_SIZE", 1000),
			ChunkOverlap: getEnvAsInt("CHUNK_OVERLAP", 200),
			TopK:         getEnvAsInt("RAG_TOP_K", 15),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
