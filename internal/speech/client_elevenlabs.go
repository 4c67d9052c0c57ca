package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

// defaultConfidence is reported when the provider response carries no
// language_probability field. The gateway never returns a success with
// an absent confidence.
const defaultConfidence = 0.9

const defaultFilename = "audio.m4a"

// ElevenLabsClient talks to the ElevenLabs STT and TTS HTTP APIs.
// All configuration is injected at construction and immutable after.
type ElevenLabsClient struct {
	apiKey     string
	baseURL    string
	sttModel   string
	ttsModel   string
	sttTimeout time.Duration
	ttsTimeout time.Duration
	httpCli    *http.Client
}

type ElevenLabsConfig struct {
	APIKey     string
	BaseURL    string
	STTModel   string
	TTSModel   string
	STTTimeout time.Duration
	TTSTimeout time.Duration
}

func NewElevenLabsClient(cfg ElevenLabsConfig) *ElevenLabsClient {
	return &ElevenLabsClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		sttModel:   cfg.STTModel,
		ttsModel:   cfg.TTSModel,
		sttTimeout: cfg.STTTimeout,
		ttsTimeout: cfg.TTSTimeout,
		httpCli:    &http.Client{},
	}
}

// AUDIO -> TEXT
func (c *ElevenLabsClient) Transcribe(ctx context.Context, req TranscriptionRequest) (Transcription, *gwerr.Error) {
	ctx, cancel := context.WithTimeout(ctx, c.sttTimeout)
	defer cancel()

	filename := req.Filename
	if filename == "" {
		filename = defaultFilename
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", req.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return Transcription{}, gwerr.Internal("failed to build transcription request")
	}
	if _, err := part.Write(req.Audio); err != nil {
		return Transcription{}, gwerr.Internal("failed to build transcription request")
	}
	_ = w.WriteField("model_id", c.sttModel)
	_ = w.WriteField("language_code", ProviderLanguage(req.LanguageCode))
	if err := w.Close(); err != nil {
		return Transcription{}, gwerr.Internal("failed to build transcription request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/speech-to-text", &body)
	if err != nil {
		return Transcription{}, gwerr.Internal("failed to build transcription request")
	}
	httpReq.Header.Set("Xi-Api-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpCli.Do(httpReq)
	if err != nil {
		log.Printf("[stt] provider request failed: %v", err)
		return Transcription{}, gwerr.FromTransport(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		log.Printf("[stt] provider status %d", resp.StatusCode)
		return Transcription{}, gwerr.FromProviderStatus(resp.StatusCode, string(raw))
	}

	var parsed struct {
		Text                string   `json:"text"`
		LanguageCode        string   `json:"language_code"`
		LanguageProbability *float64 `json:"language_probability"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Transcription{}, gwerr.Internal("failed to decode provider response")
	}

	confidence := defaultConfidence
	if parsed.LanguageProbability != nil {
		confidence = *parsed.LanguageProbability
	}

	return Transcription{Text: parsed.Text, Confidence: confidence}, nil
}

// TEXT -> AUDIO
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, *gwerr.Error) {
	ctx, cancel := context.WithTimeout(ctx, c.ttsTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{
		"text":     text,
		"model_id": c.ttsModel,
	})
	if err != nil {
		return nil, gwerr.Internal("failed to build synthesis request")
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=mp3_44100_128", c.baseURL, voiceID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, gwerr.Internal("failed to build synthesis request")
	}
	httpReq.Header.Set("Xi-Api-Key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpCli.Do(httpReq)
	if err != nil {
		log.Printf("[tts] provider request failed: %v", err)
		return nil, gwerr.FromTransport(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Printf("[tts] provider status %d", resp.StatusCode)
		return nil, gwerr.FromProviderStatus(resp.StatusCode, string(raw))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, gwerr.FromTransport(err)
	}
	return audio, nil
}
