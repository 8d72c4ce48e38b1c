package assistant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain/query"
)

const (
	storeName = "Bazaar Marketplace"
	storeURL  = "https://bazaar-market-place.netlify.app"
)

const instructions = `Instructions:
1. Provide helpful, friendly responses about products, shopping, and recommendations.
2. If the user wants to add items to cart, search for products, or get recommendations, include appropriate actions.
3. Be conversational and personalized.
4. Always respond in the same language the user used.
5. Format your response as JSON:
{
  "response": "Your helpful response text",
  "needsRecommendations": boolean,
  "actions": [
    {
      "type": "ADD_TO_CART" | "VIEW_PRODUCT" | "SEARCH_PRODUCTS" | "GET_RECOMMENDATIONS",
      "payload": { /* relevant data */ }
    }
  ]
}
`

// buildPrompt renders the model prompt for text, which is the gender-enhanced query.
func buildPrompt(text, lang string, qc *query.Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI shopping assistant for %s (%s). Help customers with their shopping needs.\n\n",
		storeName, storeURL)
	fmt.Fprintf(&b, "User Query: %q\n", text)
	fmt.Fprintf(&b, "Language: %s\n", lang)

	if qc != nil {
		b.WriteString("\nContext:\n")
		cart := qc.CurrentCart
		if cart == nil {
			cart = []any{}
		}
		views := qc.RecentViews
		if views == nil {
			views = []string{}
		}
		prefs := qc.Preferences
		if prefs == nil {
			prefs = map[string]any{}
		}
		fmt.Fprintf(&b, "- Current cart: %s\n", mustJSON(cart))
		fmt.Fprintf(&b, "- Recently viewed: %s\n", mustJSON(views))
		fmt.Fprintf(&b, "- User preferences: %s\n", mustJSON(prefs))
	}

	b.WriteString("\n")
	b.WriteString(instructions)
	return b.String()
}

func mustJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}
