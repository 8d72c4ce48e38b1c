package language

// Language describes a language offered in the UI.
type Language struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	BCP47        string `json:"bcp47"`
	STTSupported bool   `json:"sttSupported"`
	TTSSupported bool   `json:"ttsSupported"`
}

var supported = []Language{
	{"en", "English", "en-US", true, true},
	{"hi", "Hindi", "hi-IN", true, true},
	{"bn", "Bengali", "bn-IN", true, true},
	{"as", "Assamese", "as-IN", false, false},
	{"gu", "Gujarati", "gu-IN", true, true},
	{"kn", "Kannada", "kn-IN", true, true},
	{"ml", "Malayalam", "ml-IN", true, true},
	{"mr", "Marathi", "mr-IN", true, true},
	{"ne", "Nepali", "ne-NP", true, true},
	{"or", "Odia", "or-IN", true, true},
	{"pa", "Punjabi", "pa-IN", true, true},
	{"sa", "Sanskrit", "sa-IN", false, false},
	{"sd", "Sindhi", "sd-IN", false, false},
	{"ta", "Tamil", "ta-IN", true, true},
	{"te", "Telugu", "te-IN", true, true},
	{"ur", "Urdu", "ur-IN", true, true},
	{"yue", "Cantonese", "yue", true, true},
	{"zh", "Chinese (Mandarin)", "zh-CN", true, true},
	{"ja", "Japanese", "ja-JP", true, true},
	{"de", "German", "de-DE", true, true},
	{"fr", "French", "fr-FR", true, true},
	{"es", "Spanish", "es-ES", true, true},
	{"es-mx", "Spanish (Mexico)", "es-MX", true, true},
	{"ar", "Arabic", "ar-SA", true, true},
	{"ko", "Korean", "ko-KR", true, true},
	{"it", "Italian", "it-IT", true, true},
	{"vi", "Vietnamese", "vi-VN", true, true},
	{"ru", "Russian", "ru-RU", true, true},
	{"sw", "Swahili", "sw", false, false},
	{"ga", "Irish", "ga-IE", false, false},
	{"ms", "Malaysian", "ms-MY", false, false},
	{"id", "Indonesian", "id-ID", true, true},
	{"tl", "Tagalog", "tl-PH", true, true},
	{"tr", "Turkish", "tr-TR", true, true},
	{"pl", "Polish", "pl-PL", true, true},
}

// Supported returns the static list of UI languages.
func Supported() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)
	return out
}
