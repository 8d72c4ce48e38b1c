package recommend

import "strings"

// User-facing English messages.
const (
	MessageFound       = "Here are some recommendations for you:"
	MessageNotFound    = "Oops! I could not find your product after performing a query search but here are some recommendations:"
	MessageJewelry     = "Oops! I couldn't find that specific jewelry item, but here are some beautiful jewelry pieces we have available:"
	MessageElectronics = "Oops! I couldn't find that specific electronic item, but here are some great electronics we have available:"
	MessageClothing    = "Oops! I couldn't find that specific clothing item, but here are some stylish clothing options we have available:"
)

var (
	jewelryWords     = []string{"necklace", "jewel", "bracelet", "ring", "earring"}
	electronicsWords = []string{"storage", "ssd", "hdd", "drive", "monitor", "led"}
	clothingWords    = []string{"t-shirt", "shirt", "jacket", "top", "clothing"}
)

// composeMessage picks the response for a result. The not-found variants are
// keyed on a coarse product-type guess from the query.
func composeMessage(query string, found bool, products int) string {
	if found || products == 0 {
		return MessageFound
	}
	q := strings.ToLower(query)
	switch {
	case containsAny(q, jewelryWords):
		return MessageJewelry
	case containsAny(q, electronicsWords):
		return MessageElectronics
	case containsAny(q, clothingWords):
		return MessageClothing
	default:
		return MessageNotFound
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
