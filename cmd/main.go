package main

import (
	"log"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/archie-app/archie-ai-gateway/internal/auth"
	"github.com/archie-app/archie-ai-gateway/internal/config"
	"github.com/archie-app/archie-ai-gateway/internal/delivery"
	"github.com/archie-app/archie-ai-gateway/internal/speech"
	"github.com/archie-app/archie-ai-gateway/internal/summary"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	// =========================================================================
	// CLIENTS (STT / TTS / LLM)
	// =========================================================================

	elevenClient := speech.NewElevenLabsClient(speech.ElevenLabsConfig{
		APIKey:     cfg.ElevenLabsAPIKey,
		BaseURL:    cfg.ElevenLabsBaseURL,
		STTModel:   cfg.STTModel,
		TTSModel:   cfg.TTSModel,
		STTTimeout: cfg.STTTimeout,
		TTSTimeout: cfg.TTSTimeout,
	})

	openAIClient, err := summary.NewOpenAIClient(summary.OpenAIConfig{
		APIKey:  cfg.OpenAIAPIKey,
		BaseURL: cfg.OpenAIBaseURL,
		Model:   cfg.SummaryModel,
		Timeout: cfg.SummaryTimeout,
	})
	if err != nil {
		log.Fatalf("failed to init openai client: %v", err)
	}

	verifier := auth.NewVerifier(cfg.JWTSecret)

	// =========================================================================
	// SERVICES
	// =========================================================================

	speechService := speech.NewService(elevenClient, elevenClient, speech.Limits{
		MaxAudioBytes:  cfg.MaxAudioBytes,
		MaxTextChars:   cfg.MaxTextChars,
		DefaultVoiceID: cfg.DefaultVoiceID,
	})

	summaryService := summary.NewService(openAIClient)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	speechHandler := delivery.NewSpeechHandler(speechService, cfg.ElevenLabsAPIKey != "", zl)
	summaryHandler := delivery.NewSummaryHandler(summaryService, zl)
	healthHandler := delivery.NewHealthHandler()

	delivery.RegisterRoutes(
		r,
		speechHandler,
		summaryHandler,
		healthHandler,
		verifier,
		cfg.RateLimitPerMinute,
	)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "archie-ai-gateway",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
