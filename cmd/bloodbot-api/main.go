package main

import (
	"context"
	"log"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	httpadapter "github.com/thalaconnect/bloodbot/internal/adapters/http"
	"github.com/thalaconnect/bloodbot/internal/adapters/llm"
	memstore "github.com/thalaconnect/bloodbot/internal/adapters/storage/memory"
	pgstore "github.com/thalaconnect/bloodbot/internal/adapters/storage/postgres"
	redisstore "github.com/thalaconnect/bloodbot/internal/adapters/storage/redis"
	"github.com/thalaconnect/bloodbot/internal/app/conversation"
	"github.com/thalaconnect/bloodbot/internal/config"
	"github.com/thalaconnect/bloodbot/internal/domain"
)

// fallbackOpenAIModel is the alternate variant tried when the primary model
// fails; always distinct from any sensible primary.
const fallbackOpenAIModel = "gpt-4.1-mini"

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Extraction backends, tried in order.
	var backends []llm.Backend
	switch cfg.Extractor {
	case config.ExtractorVertex:
		log.Println("[LLM] Using Vertex extraction backend")
		vb, err := llm.NewVertexBackend(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel)
		if err != nil {
			log.Fatalf("error initializing Vertex backend: %v", err)
		}
		backends = append(backends, vb)

	case config.ExtractorMock:
		log.Println("[LLM] Using MOCK extraction backend")
		backends = append(backends, llm.NewMockBackend())

	default:
		log.Printf("[LLM] Using OpenAI extraction backends (%s, %s)", cfg.OpenAIModel, fallbackOpenAIModel)
		primary, err := llm.NewOpenAIBackend(cfg.OpenAIKey, cfg.OpenAIModel)
		if err != nil {
			log.Fatalf("error initializing OpenAI backend: %v", err)
		}
		fallback, err := llm.NewOpenAIBackend(cfg.OpenAIKey, fallbackOpenAIModel)
		if err != nil {
			log.Fatalf("error initializing OpenAI fallback backend: %v", err)
		}
		backends = append(backends, primary, fallback)
	}
	extractor := llm.NewExtractor(backends...)

	// Sessions: memory or Redis.
	var sessions domain.SessionStore
	switch cfg.SessionBackend {
	case config.SessionsRedis:
		log.Printf("[STORE] Using Redis sessions (%s)", cfg.RedisAddr)
		client := goredis.NewClient(&goredis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		sessions = redisstore.NewSessionStore(client)

	default:
		log.Println("[STORE] Using in-memory sessions")
		sessions = memstore.NewSessionStore()
	}

	// Records: Postgres or memory.
	var records domain.RecordStore
	switch cfg.RecordBackend {
	case config.RecordsMemory:
		log.Println("[STORE] Using in-memory records")
		records = memstore.NewRecordStore()

	default:
		log.Println("[STORE] Using Postgres records")
		store, err := pgstore.NewStore(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("error initializing Postgres store: %v", err)
		}
		defer store.Close()
		records = store
	}

	svc := conversation.NewService(extractor, sessions, records)
	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("Bloodbot API listening on port:", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
