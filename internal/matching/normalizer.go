// Package matching turns free-form shopping queries into catalog selections.
//
// The pipeline is pure and stateless: Enhance and Normalize rewrite the query
// text, Resolve maps it onto the shared synonym table, and Filter selects
// products from a catalog. Every function is safe for concurrent use.
package matching

import "regexp"

// Rule is a single case-insensitive rewrite. Only the first occurrence of
// Pattern is replaced.
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

func rule(pattern, replacement string) Rule {
	return Rule{Pattern: regexp.MustCompile(`(?i)` + pattern), Replacement: replacement}
}

// garmentRules canonicalizes "<gender> <garment>" phrasing for one gender word.
func garmentRules(gender, canonical string) []Rule {
	return []Rule{
		rule(`\b`+gender+`\s*t[-]?shirts?\b`, canonical+" t-shirt"),
		rule(`\b`+gender+`\s*jackets?\b`, canonical+" jacket"),
		rule(`\b`+gender+`\s*shirts?\b`, canonical+" shirt"),
		rule(`\b`+gender+`\s*tops?\b`, canonical+" top"),
	}
}

// Rules is the ordered rewrite list applied by Normalize. Later rules see the
// output of earlier ones.
var Rules = func() []Rule {
	var rs []Rule
	rs = append(rs, garmentRules("women", "women's")...)
	rs = append(rs, garmentRules("ladies", "ladies")...)
	rs = append(rs, garmentRules("men", "men's")...)
	rs = append(rs, garmentRules("boys", "boys")...)
	rs = append(rs, garmentRules("girls", "girls")...)

	// Over-qualified strings, typically a gender prefix plus a translated
	// gender word, collapse to the canonical phrase.
	rs = append(rs,
		rule(`\bwomen's\s+.*\b(girls?|women|ladies)\b`, "women's t-shirt"),
		rule(`\bmen's\s+.*\b(boys?|men)\b`, "men's t-shirt"),
		rule(`\b(girls?|women|ladies)\s+.*\bt[-]?shirts?\b`, "girls t-shirt"),
		rule(`\b(boys?|men)\s+.*\bt[-]?shirts?\b`, "boys t-shirt"),
	)
	return rs
}()

// Normalize applies Rules in order and returns the rewritten query.
func Normalize(query string) string {
	for _, r := range Rules {
		query = r.Apply(query)
	}
	return query
}

// Apply replaces the first match of the rule in s.
func (r Rule) Apply(s string) string {
	loc := r.Pattern.FindStringIndex(s)
	if loc == nil {
		return s
	}
	return s[:loc[0]] + r.Replacement + s[loc[1]:]
}
