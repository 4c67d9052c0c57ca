package speech

import "github.com/dustin/go-humanize"

// FormatsDescriptor is the static capability sheet for transcription.
type FormatsDescriptor struct {
	SupportedFormats   []string `json:"supported_formats"`
	MaxFileSizeBytes   int64    `json:"max_file_size_bytes"`
	MaxFileSize        string   `json:"max_file_size"`
	Models             []string `json:"models"`
	SupportedLanguages []string `json:"supported_languages"`
}

func NewFormatsDescriptor(maxAudioBytes int64) FormatsDescriptor {
	return FormatsDescriptor{
		SupportedFormats:   AllowedAudioTypes,
		MaxFileSizeBytes:   maxAudioBytes,
		MaxFileSize:        humanize.IBytes(uint64(maxAudioBytes)),
		Models:             []string{"scribe_v1"},
		SupportedLanguages: SupportedProviderLanguages(),
	}
}

type Voice struct {
	VoiceID        string `json:"voice_id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	RecommendedFor string `json:"recommended_for"`
}

type VoiceCatalog struct {
	Voices       []Voice `json:"voices"`
	DefaultVoice string  `json:"default_voice"`
	Provider     string  `json:"provider"`
}

// NewVoiceCatalog returns the curated voice list. The catalog is static
// rather than fetched live: the app only ever offers these three.
func NewVoiceCatalog(defaultVoiceID string) VoiceCatalog {
	return VoiceCatalog{
		Voices: []Voice{
			{
				VoiceID:        "JBFqnCBsd6RMkjVDRZzb",
				Name:           "George",
				Description:    "Warm and encouraging male voice",
				RecommendedFor: "AI guidance and reflection",
			},
			{
				VoiceID:        "21m00Tcm4TlvDq8ikWAM",
				Name:           "Rachel",
				Description:    "Clear and empathetic female voice",
				RecommendedFor: "Supportive conversations",
			},
			{
				VoiceID:        "AZnzlk1XvdvUeBnXmlld",
				Name:           "Domi",
				Description:    "Confident and inspiring female voice",
				RecommendedFor: "Motivational content",
			},
		},
		DefaultVoice: defaultVoiceID,
		Provider:     "ElevenLabs TTS API",
	}
}
