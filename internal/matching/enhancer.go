package matching

import (
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

const (
	womenPrefix = "women's "
	menPrefix   = "men's "
)

// Source-language gender indicators. Women are tested first.
var (
	womenIndicators = []string{
		"महिला", "महिलाओं", "स्त्री", "महिलाओ", "लड़कियों", "नारी",
		"মেয়ে", "মহিলা", "নারী", "মহিলাদের", "লড়কিয়োং",
		"girl", "girls", "women", "ladies", "female",
	}
	menIndicators = []string{
		"पुरुष", "आदमी", "लड़का", "लड़के",
		"ছেলে", "পুরুষ",
		"boy", "boys", "men", "male",
	}
)

// Enhance re-asserts gender found in a non-English query as an explicit
// English prefix so it survives translation. The prefixed query is returned
// unnormalized; English queries are only normalized.
func Enhance(query, lang string) string {
	if language.IsEnglish(lang) {
		return Normalize(query)
	}

	lower := strings.ToLower(query)
	if containsAny(lower, womenIndicators) {
		return womenPrefix + query
	}
	if containsAny(lower, menIndicators) {
		return menPrefix + query
	}
	return Normalize(query)
}

func containsAny(s string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(s, t) {
			return true
		}
	}
	return false
}
