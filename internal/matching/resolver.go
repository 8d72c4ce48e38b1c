package matching

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is the outcome of category resolution. The zero value means no
// category resolved.
type Match struct {
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`
	Key         string `json:"matchedKey,omitempty"`
}

// Found reports whether a category resolved.
func (m Match) Found() bool { return m.Category != "" }

// Gendered reports whether the category is matched by exact equality.
func (m Match) Gendered() bool {
	return strings.HasSuffix(m.Category, "_women") || strings.HasSuffix(m.Category, "_men")
}

// Resolve returns the entry for the longest synonym key found in query.
// Keys match on word boundaries and may carry a plural "s" or "es", so
// "ring" matches "rings" but not "earring" or "string".
func Resolve(query string) Match {
	q := strings.ToLower(query)
	for _, s := range synonyms {
		if containsWord(q, s.Key) {
			return Match{Category: s.Category, SubCategory: s.SubCategory, Key: s.Key}
		}
	}
	return Match{}
}

func containsWord(s, key string) bool {
	for from := 0; from <= len(s)-len(key); {
		i := strings.Index(s[from:], key)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(key)
		if boundaryBefore(s, start) && boundaryAfter(s, pluralEnd(s, end)) {
			return true
		}
		_, size := utf8.DecodeRuneInString(s[start:])
		from = start + size
	}
	return false
}

func pluralEnd(s string, end int) int {
	switch {
	case strings.HasPrefix(s[end:], "es") && boundaryAfter(s, end+2):
		return end + 2
	case strings.HasPrefix(s[end:], "s") && boundaryAfter(s, end+1):
		return end + 1
	}
	return end
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
