package speech

// ElevenLabs expects ISO-639-3 codes while clients send locale tags.
var providerLanguages = map[string]string{
	"en-US": "eng",
	"en":    "eng",
	"es":    "spa",
	"fr":    "fra",
	"de":    "deu",
	"it":    "ita",
	"pt":    "por",
	"ja":    "jpn",
	"ko":    "kor",
	"zh":    "cmn",
}

const defaultProviderLanguage = "eng"

// ProviderLanguage maps a caller-facing locale tag to the provider's
// language code. Unmapped tags degrade to English rather than failing:
// an odd locale is never a reason to refuse a transcription.
func ProviderLanguage(code string) string {
	if mapped, ok := providerLanguages[code]; ok {
		return mapped
	}
	return defaultProviderLanguage
}

// SupportedProviderLanguages lists the codes advertised by the formats
// descriptor, in a stable order.
func SupportedProviderLanguages() []string {
	return []string{"eng", "spa", "fra", "deu", "ita", "por", "jpn", "kor", "cmn"}
}
