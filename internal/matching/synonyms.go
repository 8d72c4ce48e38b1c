package matching

import (
	"sort"
	"unicode/utf8"
)

// Synonym maps a normalized phrase onto a catalog category.
type Synonym struct {
	Key         string
	Category    string
	SubCategory string
}

func syn(key, category string) Synonym { return Synonym{Key: key, Category: category} }

func sub(key, category, subCategory string) Synonym {
	return Synonym{Key: key, Category: category, SubCategory: subCategory}
}

var synonymTable = []Synonym{
	syn("women's t-shirt", "top_women"),
	syn("womens t-shirt", "top_women"),
	syn("women's top", "top_women"),
	syn("womens top", "top_women"),
	syn("women's shirt", "top_women"),
	syn("womens shirt", "top_women"),
	syn("ladies t-shirt", "top_women"),
	syn("ladies top", "top_women"),
	syn("girls t-shirt", "top_women"),
	syn("girls top", "top_women"),
	syn("girls shirt", "top_women"),
	syn("women's jacket", "jacket_women"),
	syn("womens jacket", "jacket_women"),
	syn("ladies jacket", "jacket_women"),
	syn("girls jacket", "jacket_women"),

	syn("women's t-shirts", "top_women"),
	syn("womens t-shirts", "top_women"),
	syn("ladies t-shirts", "top_women"),
	syn("girls t-shirts", "top_women"),
	syn("women's tops", "top_women"),
	syn("womens tops", "top_women"),
	syn("ladies tops", "top_women"),
	syn("girls tops", "top_women"),
	syn("women's shirts", "top_women"),
	syn("womens shirts", "top_women"),
	syn("ladies shirts", "top_women"),
	syn("girls shirts", "top_women"),
	syn("women's jackets", "jacket_women"),
	syn("womens jackets", "jacket_women"),
	syn("ladies jackets", "jacket_women"),
	syn("girls jackets", "jacket_women"),

	syn("jackets for women", "jacket_women"),
	syn("jacket for women", "jacket_women"),
	syn("jackets for ladies", "jacket_women"),
	syn("jacket for ladies", "jacket_women"),
	syn("jackets for girls", "jacket_women"),
	syn("jacket for girls", "jacket_women"),

	syn("men's t-shirt", "t_shirts_men"),
	syn("mens t-shirt", "t_shirts_men"),
	syn("men's top", "t_shirts_men"),
	syn("mens top", "t_shirts_men"),
	syn("men's shirt", "t_shirts_men"),
	syn("mens shirt", "t_shirts_men"),
	syn("men's jacket", "jackets_men"),
	syn("mens jacket", "jackets_men"),
	syn("boys t-shirt", "t_shirts_men"),
	syn("boys top", "t_shirts_men"),
	syn("boys shirt", "t_shirts_men"),
	syn("boys jacket", "jackets_men"),

	syn("necklace", "jewellery"),
	syn("jewellery", "jewellery"),
	syn("jewelry", "jewellery"),
	sub("bracelet", "jewellery", "bracelets"),
	sub("ring", "jewellery", "rings"),
	sub("earring", "jewellery", "earrings"),

	sub("storage", "electronics", "storage"),
	sub("ssd", "electronics", "ssd"),
	sub("hdd", "electronics", "hdd"),
	sub("drive", "electronics", "storage"),
	sub("monitor", "electronics", "led"),
	sub("led", "electronics", "led"),

	syn("bag", "bags"),
	syn("backpack", "bags"),

	syn("t-shirt", "clothing"),
	syn("shirt", "clothing"),
	syn("jacket", "clothing"),
}

// synonyms is synonymTable ordered by descending key length. Equal lengths
// keep table order.
var synonyms = func() []Synonym {
	s := make([]Synonym, len(synonymTable))
	copy(s, synonymTable)
	sort.SliceStable(s, func(i, j int) bool {
		return utf8.RuneCountInString(s[i].Key) > utf8.RuneCountInString(s[j].Key)
	})
	return s
}()

// Synonyms returns the resolution table in match-priority order.
func Synonyms() []Synonym {
	out := make([]Synonym, len(synonyms))
	copy(out, synonyms)
	return out
}
