package speech

import (
	"context"
	"encoding/base64"
	"log"
	"strings"
	"time"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

// Service runs the validate -> provider -> classify pipeline for both
// speech capabilities. Validation always happens before the network
// call: a payload that cannot pass never costs a provider request.
type Service struct {
	stt    STTClient
	tts    TTSClient
	limits Limits
}

func NewService(stt STTClient, tts TTSClient, limits Limits) *Service {
	return &Service{
		stt:    stt,
		tts:    tts,
		limits: limits,
	}
}

func (s *Service) Transcribe(ctx context.Context, req TranscriptionRequest) (*TranscriptionResult, *gwerr.Error) {
	start := time.Now()

	if gerr := ValidateTranscription(req, s.limits.MaxAudioBytes); gerr != nil {
		return nil, gerr
	}

	tr, gerr := s.stt.Transcribe(ctx, req)
	if gerr != nil {
		return nil, gerr
	}

	// A nominally-successful provider response with a blank transcript
	// is not a valid empty success.
	transcript := strings.TrimSpace(tr.Text)
	if transcript == "" {
		log.Printf("[stt] empty transcript for %d byte payload", len(req.Audio))
		return nil, gwerr.Invalid("no speech detected in audio file, please ensure the audio is clear and contains speech")
	}

	return &TranscriptionResult{
		Transcript: transcript,
		Confidence: tr.Confidence,
		ElapsedMs:  time.Since(start).Milliseconds(),
	}, nil
}

func (s *Service) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, *gwerr.Error) {
	start := time.Now()

	if gerr := ValidateSynthesis(req.Text, s.limits.MaxTextChars); gerr != nil {
		return nil, gerr
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = s.limits.DefaultVoiceID
	}

	audio, gerr := s.tts.Synthesize(ctx, req.Text, voiceID)
	if gerr != nil {
		return nil, gerr
	}

	// The voice actually used is echoed back so the caller can detect
	// provider-side substitution.
	return &SynthesisResult{
		AudioBase64: base64.StdEncoding.EncodeToString(audio),
		ElapsedMs:   time.Since(start).Milliseconds(),
		VoiceID:     voiceID,
	}, nil
}

func (s *Service) Formats() FormatsDescriptor {
	return NewFormatsDescriptor(s.limits.MaxAudioBytes)
}

func (s *Service) Voices() VoiceCatalog {
	return NewVoiceCatalog(s.limits.DefaultVoiceID)
}
