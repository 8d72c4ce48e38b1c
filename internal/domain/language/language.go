// Package language maps user-facing language codes onto translation provider codes.
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

// English is the pivot language of the matching pipeline.
const English = "en"

// providerCodes maps region-qualified tags onto the codes translation providers accept.
// Tags missing here fall back to their base language.
var providerCodes = map[string]string{
	"en": "en", "en-us": "en", "en-gb": "en",
	"hi": "hi", "hi-in": "hi",
	"bn": "bn", "bn-in": "bn", "bn-bd": "bn",
	"ta": "ta", "ta-in": "ta", "ta-lk": "ta",
	"te": "te", "te-in": "te",
	"mr": "mr", "mr-in": "mr",
	"gu": "gu", "gu-in": "gu",
	"kn": "kn", "kn-in": "kn",
	"ml": "ml", "ml-in": "ml",
	"pa": "pa", "pa-in": "pa",
	"or": "or", "or-in": "or",
	"as": "as", "as-in": "as",
	"ur": "ur", "ur-in": "ur", "ur-pk": "ur",
	"ne": "ne", "ne-np": "ne", "ne-in": "ne",
	"sd": "sd", "sd-in": "sd",
	"sa": "sa", "sa-in": "sa",
	"zh": "zh", "zh-cn": "zh", "zh-hans": "zh",
	"zh-tw": "zh-TW", "zh-hant": "zh-TW",
	"ja": "ja", "ja-jp": "ja",
	"ko": "ko", "ko-kr": "ko",
	"ar": "ar", "ar-sa": "ar", "ar-ae": "ar",
	"he": "he", "he-il": "he",
	"de": "de", "de-de": "de",
	"fr": "fr", "fr-fr": "fr",
	"es": "es", "es-es": "es", "es-mx": "es",
	"it": "it", "it-it": "it",
	"ru": "ru", "ru-ru": "ru",
	"pt": "pt", "pt-br": "pt", "pt-pt": "pt",
	"nl": "nl", "nl-nl": "nl",
	"sv": "sv", "sv-se": "sv",
	"da": "da", "da-dk": "da",
	"no": "no", "nb": "no",
	"fi": "fi", "fi-fi": "fi",
	"pl": "pl", "pl-pl": "pl",
	"tr": "tr", "tr-tr": "tr",
	"cs": "cs", "cs-cz": "cs",
	"hu": "hu", "hu-hu": "hu",
	"ro": "ro", "ro-ro": "ro",
	"id": "id", "id-id": "id",
	"ms": "ms", "ms-my": "ms",
	"tl": "tl", "tl-ph": "tl", "fil": "tl",
	"th": "th", "th-th": "th",
	"vi": "vi", "vi-vn": "vi",
}

// IsEnglish reports whether code denotes English. Empty means English.
func IsEnglish(code string) bool {
	c := strings.ToLower(strings.TrimSpace(code))
	return c == "" || c == English || strings.HasPrefix(c, English+"-")
}

// Parse validates code as a BCP-47 tag and returns its provider code.
func Parse(code string) (string, error) {
	c := strings.TrimSpace(code)
	if c == "" {
		return English, nil
	}
	if mapped, ok := providerCodes[strings.ToLower(c)]; ok {
		return mapped, nil
	}
	tag, err := language.Parse(c)
	if err != nil {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, code)
	}
	base, _ := tag.Base()
	if mapped, ok := providerCodes[base.String()]; ok {
		return mapped, nil
	}
	return base.String(), nil
}

// Canonical returns the provider code for code, or code itself when it cannot be parsed.
func Canonical(code string) string {
	c, err := Parse(code)
	if err != nil {
		return code
	}
	return c
}

// Same reports whether a and b resolve to the same provider language.
func Same(a, b string) bool {
	return Canonical(a) == Canonical(b)
}
