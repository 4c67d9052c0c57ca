package summary

import (
	"fmt"
	"strings"
)

// BuildPrompt assembles the reflection prompt deterministically from
// the request. Optional fields that are absent omit their clause
// entirely, they never leave an empty placeholder behind.
func BuildPrompt(req Request) string {
	// An empty reframed text counts as absent, same as a missing field.
	reframed := req.OriginalText
	if req.ReframedText != nil && *req.ReframedText != "" {
		reframed = *req.ReframedText
	}

	transformationsClause := ""
	if req.TransformationCount > 0 {
		transformationsClause = fmt.Sprintf(
			"\n\nThe user made %d language transformation(s) during this session.",
			req.TransformationCount)
	}

	principlesClause := ""
	if len(req.Principles) > 0 {
		principlesClause = fmt.Sprintf(
			"\n\nUser's core principles: %s", strings.Join(req.Principles, ", "))
	}

	return fmt.Sprintf(`You are The Architect's AI Guide - a wise, encouraging mentor who helps people transform their language to reshape their reality.

A user just completed a reframing session where they examined their internal dialogue and consciously chose more empowering language.

ORIGINAL THOUGHTS:
"%s"

REFRAMED THOUGHTS:
"%s"%s%s

Your role is to provide a personalized, insightful reflection (2-3 sentences) that:
1. Acknowledges their specific journey and growth
2. Highlights the power of their conscious language choices
3. Encourages continued practice of self-authorship
4. Connects their work to larger themes of personal empowerment

Be warm, wise, and specific to their actual experience. Focus on the mindset shift they're creating, not just generic encouragement.`,
		req.OriginalText, reframed, transformationsClause, principlesClause)
}
