package speech_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
	"github.com/archie-app/archie-ai-gateway/internal/speech"
)

func newTestClient(baseURL string) *speech.ElevenLabsClient {
	return speech.NewElevenLabsClient(speech.ElevenLabsConfig{
		APIKey:     "test-key",
		BaseURL:    baseURL,
		STTModel:   "scribe_v1",
		TTSModel:   "eleven_multilingual_v2",
		STTTimeout: 5 * time.Second,
		TTSTimeout: 5 * time.Second,
	})
}

func sttRequest() speech.TranscriptionRequest {
	return speech.TranscriptionRequest{
		Audio:        []byte("fake-audio"),
		ContentType:  "audio/wav",
		Filename:     "note.wav",
		LanguageCode: "en-US",
	}
}

func TestElevenLabsTranscribeSendsMultipartUpload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/speech-to-text", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("Xi-Api-Key"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "scribe_v1", r.FormValue("model_id"))
		require.Equal(t, "eng", r.FormValue("language_code"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "note.wav", header.Filename)
		require.Equal(t, "audio/wav", header.Header.Get("Content-Type"))
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, []byte("fake-audio"), body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"hello there","language_code":"eng","language_probability":0.97}`))
	}))
	defer srv.Close()

	tr, gerr := newTestClient(srv.URL).Transcribe(context.Background(), sttRequest())
	require.Nil(t, gerr)
	require.Equal(t, "hello there", tr.Text)
	require.Equal(t, 0.97, tr.Confidence)
}

func TestElevenLabsTranscribeDefaultsConfidence(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":"hello","language_code":"eng"}`))
	}))
	defer srv.Close()

	tr, gerr := newTestClient(srv.URL).Transcribe(context.Background(), sttRequest())
	require.Nil(t, gerr)
	require.Equal(t, 0.9, tr.Confidence)
}

func TestElevenLabsTranscribeRateLimitedRegardlessOfBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"detail":"invalid request"}`))
	}))
	defer srv.Close()

	_, gerr := newTestClient(srv.URL).Transcribe(context.Background(), sttRequest())
	require.NotNil(t, gerr)
	require.Equal(t, gwerr.KindRateLimited, gerr.Kind)
	require.Equal(t, http.StatusTooManyRequests, gerr.Status)
}

func TestElevenLabsTranscribeProviderAuthFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"api key sk-nope rejected"}`))
	}))
	defer srv.Close()

	_, gerr := newTestClient(srv.URL).Transcribe(context.Background(), sttRequest())
	require.NotNil(t, gerr)
	require.Equal(t, gwerr.KindUnavailable, gerr.Kind)
	require.NotContains(t, gerr.Message, "sk-nope")
}

func TestElevenLabsTranscribeTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{"text":"late"}`))
	}))
	defer srv.Close()

	client := speech.NewElevenLabsClient(speech.ElevenLabsConfig{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		STTModel:   "scribe_v1",
		TTSModel:   "eleven_multilingual_v2",
		STTTimeout: 50 * time.Millisecond,
		TTSTimeout: 50 * time.Millisecond,
	})

	_, gerr := client.Transcribe(context.Background(), sttRequest())
	require.NotNil(t, gerr)
	require.Equal(t, gwerr.KindTimeout, gerr.Kind)
	require.Equal(t, http.StatusRequestTimeout, gerr.Status)
}

func TestElevenLabsSynthesizeSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/text-to-speech/voice-1", r.URL.Path)
		require.Equal(t, "mp3_44100_128", r.URL.Query().Get("output_format"))
		require.Equal(t, "test-key", r.Header.Get("Xi-Api-Key"))
		require.Equal(t, "audio/mpeg", r.Header.Get("Accept"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), `"text":"hello"`)
		require.Contains(t, string(body), `"model_id":"eleven_multilingual_v2"`)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	audio, gerr := newTestClient(srv.URL).Synthesize(context.Background(), "hello", "voice-1")
	require.Nil(t, gerr)
	require.Equal(t, []byte("mp3-bytes"), audio)
}

func TestElevenLabsSynthesizeProviderRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`voice not found`))
	}))
	defer srv.Close()

	_, gerr := newTestClient(srv.URL).Synthesize(context.Background(), "hello", "ghost-voice")
	require.NotNil(t, gerr)
	require.Equal(t, gwerr.KindInvalidInput, gerr.Kind)
	require.Contains(t, gerr.Message, "voice not found")
}

func TestElevenLabsSynthesizeConnectionFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	_, gerr := newTestClient(srv.URL).Synthesize(context.Background(), "hello", "voice-1")
	require.NotNil(t, gerr)
	require.Equal(t, gwerr.KindUnavailable, gerr.Kind)
}
