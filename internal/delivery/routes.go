package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

func RegisterRoutes(
	r chi.Router,
	hSpeech *SpeechHandler,
	hSummary *SummaryHandler,
	hHealth *HealthHandler,
	verifier TokenVerifier,
	ratePerMinute int,
) {
	// --- liveness, no auth ---
	r.With(httputil.RecoverMiddleware).Get("/", hHealth.Root)
	r.With(httputil.RecoverMiddleware).Get("/health", hHealth.Health)
	r.With(httputil.RecoverMiddleware).Get("/speech/health", hSpeech.Health)

	// --- protected ---
	r.Group(func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			RequestIDMiddleware,
			AuthMiddleware(verifier),
			httprate.LimitByIP(ratePerMinute, time.Minute),
		)

		pr.Post("/speech/transcribe", hSpeech.Transcribe)
		pr.Get("/speech/formats", hSpeech.Formats)
		pr.Post("/speech/synthesize", hSpeech.Synthesize)
		pr.Get("/speech/voices", hSpeech.Voices)

		pr.Post("/ai/summarize", hSummary.Summarize)
	})
}
