package summary

import (
	"context"
	"strings"
	"time"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

// Tone is fixed: the reflection is always delivered as encouragement.
const Tone = "encouraging"

type Service struct {
	llm Generator
}

// NewService accepts a nil generator: that is the detectable
// "model unavailable" state, reported before any call is attempted.
func NewService(llm Generator) *Service {
	return &Service{llm: llm}
}

func (s *Service) Summarize(ctx context.Context, req Request) (*Result, *gwerr.Error) {
	start := time.Now()

	if req.TransformationCount < 0 {
		return nil, gwerr.Invalid("transformation_count must be non-negative")
	}
	if s.llm == nil {
		return nil, gwerr.Unavailable("AI service unavailable")
	}

	text, gerr := s.llm.Generate(ctx, BuildPrompt(req))
	if gerr != nil {
		return nil, gerr
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, gwerr.Internal("summary generation failed, please try again")
	}

	return &Result{
		Summary:   text,
		Tone:      Tone,
		ElapsedMs: time.Since(start).Milliseconds(),
	}, nil
}
