package config

import (
	"log"
	"os"
)

// Extractor backend selectors.
const (
	ExtractorOpenAI = "openai"
	ExtractorVertex = "vertex"
	ExtractorMock   = "mock"
)

// Session backend selectors.
const (
	SessionsMemory = "memory"
	SessionsRedis  = "redis"
)

// Record backend selectors.
const (
	RecordsPostgres = "postgres"
	RecordsMemory   = "memory"
)

type Config struct {
	Port string

	// Extraction backend
	Extractor     string // "openai", "vertex" or "mock"
	OpenAIKey     string
	OpenAIModel   string // primary model; the fallback variant is fixed
	GCPProjectID  string
	GCPLocation   string
	VertexModel   string

	// Storage backends
	RecordBackend  string // "postgres" or "memory"
	DatabaseURL    string
	SessionBackend string // "memory" or "redis"
	RedisAddr      string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads all env vars and builds the config.
func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "5000"),

		Extractor:    getEnv("BLOODBOT_EXTRACTOR", ExtractorOpenAI),
		OpenAIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-5"),
		GCPProjectID: getEnv("BLOODBOT_GCP_PROJECT", ""),
		GCPLocation:  getEnv("BLOODBOT_GCP_LOCATION", "us-central1"),
		VertexModel:  getEnv("BLOODBOT_VERTEX_MODEL", "gemini-2.5-flash"),

		RecordBackend:  getEnv("BLOODBOT_STORAGE_BACKEND", RecordsPostgres),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		SessionBackend: getEnv("BLOODBOT_SESSION_BACKEND", SessionsMemory),
		RedisAddr:      getEnv("BLOODBOT_REDIS_ADDR", "localhost:6379"),
	}

	// Fail fast on credentials the selected backends cannot run without.
	if cfg.Extractor == ExtractorOpenAI && cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY must be set when BLOODBOT_EXTRACTOR=openai")
	}
	if cfg.Extractor == ExtractorVertex && cfg.GCPProjectID == "" {
		log.Fatal("BLOODBOT_GCP_PROJECT must be set when BLOODBOT_EXTRACTOR=vertex")
	}
	if cfg.RecordBackend == RecordsPostgres && cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL must be set when BLOODBOT_STORAGE_BACKEND=postgres")
	}

	return cfg
}
