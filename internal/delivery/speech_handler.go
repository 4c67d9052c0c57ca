package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
	"github.com/archie-app/archie-ai-gateway/internal/speech"
)

// Multipart form spill-to-disk threshold; the payload size itself is
// bounded by the validator, not here.
const maxMultipartMemory = 32 << 20

const defaultLanguageCode = "en-US"

type SpeechService interface {
	Transcribe(ctx context.Context, req speech.TranscriptionRequest) (*speech.TranscriptionResult, *gwerr.Error)
	Synthesize(ctx context.Context, req speech.SynthesisRequest) (*speech.SynthesisResult, *gwerr.Error)
	Formats() speech.FormatsDescriptor
	Voices() speech.VoiceCatalog
}

type SpeechHandler struct {
	service       SpeechService
	apiConfigured bool
	log           *logger.ZapLogger
}

func NewSpeechHandler(service SpeechService, apiConfigured bool, log *logger.ZapLogger) *SpeechHandler {
	return &SpeechHandler{
		service:       service,
		apiConfigured: apiConfigured,
		log:           log,
	}
}

func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, gwerr.Invalid("invalid multipart form: "+err.Error()))
		return
	}

	file, header, err := r.FormFile("audio_file")
	if err != nil {
		writeError(w, gwerr.Invalid("missing audio_file"))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		writeError(w, gwerr.Invalid("failed to read audio file"))
		return
	}

	language := r.FormValue("language_code")
	if language == "" {
		language = defaultLanguageCode
	}

	identity, _ := IdentityFrom(r.Context())

	result, gerr := h.service.Transcribe(r.Context(), speech.TranscriptionRequest{
		Audio:        audio,
		ContentType:  header.Header.Get("Content-Type"),
		Filename:     header.Filename,
		LanguageCode: language,
	})
	if gerr != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("transcription failed user=%s rid=%s", identity.Subject, RequestIDFrom(r.Context())),
			Service: "speech",
			Error:   gerr,
		})
		writeError(w, gerr)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("transcription completed user=%s", identity.Subject),
		Service: "speech",
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req speech.SynthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, gwerr.Invalid("invalid json: "+err.Error()))
		return
	}

	identity, _ := IdentityFrom(r.Context())

	result, gerr := h.service.Synthesize(r.Context(), req)
	if gerr != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("synthesis failed user=%s rid=%s", identity.Subject, RequestIDFrom(r.Context())),
			Service: "speech",
			Error:   gerr,
		})
		writeError(w, gerr)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("synthesis completed user=%s", identity.Subject),
		Service: "speech",
	})
	writeJSON(w, http.StatusOK, result)
}

func (h *SpeechHandler) Formats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Formats())
}

func (h *SpeechHandler) Voices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Voices())
}

// Health is unauthenticated: load balancers probe it.
func (h *SpeechHandler) Health(w http.ResponseWriter, r *http.Request) {
	if !h.apiConfigured {
		writeError(w, gwerr.Unavailable("speech service unavailable: api key not configured"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "healthy",
		"service":        "elevenlabs-speech",
		"api_configured": true,
	})
}
