package speech

import (
	"context"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

// Canonical request/result shapes, independent of any provider's wire
// format. Constructed once per call, never retained across requests.

type TranscriptionRequest struct {
	Audio        []byte
	ContentType  string
	Filename     string
	LanguageCode string
}

type TranscriptionResult struct {
	Transcript string  `json:"transcript"`
	Confidence float64 `json:"confidence"`
	ElapsedMs  int64   `json:"processing_time_ms"`
}

type SynthesisRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id"`
}

type SynthesisResult struct {
	AudioBase64 string `json:"audio_base64"`
	ElapsedMs   int64  `json:"processing_time_ms"`
	VoiceID     string `json:"voice_id"`
}

// Transcription is what an STT adapter hands back on success.
type Transcription struct {
	Text       string
	Confidence float64
}

type STTClient interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (Transcription, *gwerr.Error)
}

type TTSClient interface {
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, *gwerr.Error)
}

// Limits is the per-capability input bound set. The values come from
// configuration: provider plans change, the code does not.
type Limits struct {
	MaxAudioBytes  int64
	MaxTextChars   int
	DefaultVoiceID string
}
