package summary

import (
	"context"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

type Request struct {
	OriginalText        string   `json:"original_text"`
	ReframedText        *string  `json:"reframed_text,omitempty"`
	TransformationCount int      `json:"transformation_count"`
	Principles          []string `json:"user_principles,omitempty"`
}

type Result struct {
	Summary   string `json:"summary"`
	Tone      string `json:"tone"`
	ElapsedMs int64  `json:"processing_time_ms"`
}

// Generator produces text for a fully-built prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, *gwerr.Error)
}
