package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds everything the gateway reads from the environment.
// All numeric limits are configurable: the right values depend on the
// provider plan, not on the code.
type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	JWTSecret string `env:"SUPABASE_JWT_SECRET"`

	ElevenLabsAPIKey  string `env:"ELEVENLABS_API_KEY"`
	ElevenLabsBaseURL string `env:"ELEVENLABS_BASE_URL" envDefault:"https://api.elevenlabs.io"`
	STTModel          string `env:"STT_MODEL" envDefault:"scribe_v1"`
	TTSModel          string `env:"TTS_MODEL" envDefault:"eleven_multilingual_v2"`
	DefaultVoiceID    string `env:"DEFAULT_VOICE_ID" envDefault:"JBFqnCBsd6RMkjVDRZzb"`

	OpenAIAPIKey  string `env:"OPENAI_API_KEY"`
	OpenAIBaseURL string `env:"OPENAI_BASE_URL"`
	SummaryModel  string `env:"SUMMARY_MODEL" envDefault:"gpt-4o-mini"`

	MaxAudioBytes int64 `env:"MAX_AUDIO_BYTES" envDefault:"1073741824"`
	MaxTextChars  int   `env:"MAX_TEXT_CHARS" envDefault:"5000"`

	STTTimeout     time.Duration `env:"STT_TIMEOUT" envDefault:"120s"`
	TTSTimeout     time.Duration `env:"TTS_TIMEOUT" envDefault:"30s"`
	SummaryTimeout time.Duration `env:"SUMMARY_TIMEOUT" envDefault:"60s"`

	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing required variable at once, so a broken
// deploy can be fixed in one pass. A missing secret or provider key
// means the process cannot possibly serve traffic.
func (c *Config) Validate() error {
	var missing []string
	if c.JWTSecret == "" {
		missing = append(missing, "SUPABASE_JWT_SECRET")
	}
	if c.ElevenLabsAPIKey == "" {
		missing = append(missing, "ELEVENLABS_API_KEY")
	}
	if c.OpenAIAPIKey == "" {
		missing = append(missing, "OPENAI_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	if c.MaxAudioBytes <= 0 {
		return fmt.Errorf("MAX_AUDIO_BYTES must be positive, got %d", c.MaxAudioBytes)
	}
	if c.MaxTextChars <= 0 {
		return fmt.Errorf("MAX_TEXT_CHARS must be positive, got %d", c.MaxTextChars)
	}
	return nil
}
