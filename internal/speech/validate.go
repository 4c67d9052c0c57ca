package speech

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
)

// AllowedAudioTypes is the provider's supported upload formats,
// including the x-m4a alias iOS recorders use.
var AllowedAudioTypes = []string{
	"audio/wav", "audio/wave", "audio/x-wav",
	"audio/mpeg", "audio/mp3",
	"audio/flac",
	"audio/ogg",
	"audio/webm",
	"audio/m4a",
	"audio/x-m4a",
}

var allowedAudioTypeSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AllowedAudioTypes))
	for _, t := range AllowedAudioTypes {
		m[t] = struct{}{}
	}
	return m
}()

// ValidateTranscription runs before any network call: unsupported
// format, oversized payload and empty payload each fail with a message
// naming the violated constraint. Pure function of its inputs.
func ValidateTranscription(req TranscriptionRequest, maxAudioBytes int64) *gwerr.Error {
	if _, ok := allowedAudioTypeSet[req.ContentType]; !ok {
		return gwerr.Invalid(fmt.Sprintf(
			"unsupported audio format: %s, supported formats: %s",
			req.ContentType, strings.Join(AllowedAudioTypes, ", ")))
	}
	if int64(len(req.Audio)) > maxAudioBytes {
		return gwerr.Invalid(fmt.Sprintf(
			"audio file too large, maximum size: %s", humanize.IBytes(uint64(maxAudioBytes))))
	}
	if len(req.Audio) == 0 {
		return gwerr.Invalid("empty audio file, please upload a valid audio recording")
	}
	return nil
}

// ValidateSynthesis bounds the text payload. The limit counts
// characters, not bytes, so multi-byte scripts get the full quota.
// The voice id is passed through opaquely and validated by the provider.
func ValidateSynthesis(text string, maxTextChars int) *gwerr.Error {
	if utf8.RuneCountInString(text) > maxTextChars {
		return gwerr.Invalid(fmt.Sprintf(
			"text too long, maximum length: %d characters", maxTextChars))
	}
	if strings.TrimSpace(text) == "" {
		return gwerr.Invalid("text cannot be empty")
	}
	return nil
}
