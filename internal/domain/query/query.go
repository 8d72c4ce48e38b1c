package query

import (
	"fmt"
	"unicode/utf8"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

// MaxTextRunes bounds the query text length.
const MaxTextRunes = 1000

// Context carries optional shopper state forwarded by the UI.
type Context struct {
	CurrentCart []any          `json:"currentCart,omitempty"`
	RecentViews []string       `json:"recentViews,omitempty"`
	Preferences map[string]any `json:"preferences,omitempty"`
}

// IsEmpty reports whether no context fields are set.
func (c *Context) IsEmpty() bool {
	return c == nil || (len(c.CurrentCart) == 0 && len(c.RecentViews) == 0 && len(c.Preferences) == 0)
}

// Query is a request-scoped shopping query. Read-only once built.
type Query struct {
	text     string
	language string
	userID   string
	context  *Context
}

// New validates and creates a query. Empty text is allowed.
func New(text, lang, userID string, ctx *Context) (Query, error) {
	if !utf8.ValidString(text) {
		return Query{}, fmt.Errorf("%w: text is not valid UTF-8", domain.ErrInvalidQuery)
	}
	if n := utf8.RuneCountInString(text); n > MaxTextRunes {
		return Query{}, fmt.Errorf("%w: text has %d characters, max %d", domain.ErrInvalidQuery, n, MaxTextRunes)
	}
	if _, err := language.Parse(lang); err != nil {
		return Query{}, fmt.Errorf("%w: %w", domain.ErrInvalidQuery, err)
	}
	return Query{text: text, language: lang, userID: userID, context: ctx}, nil
}

// Text returns the original query text.
func (q Query) Text() string { return q.text }

// Language returns the source language code as supplied by the caller.
func (q Query) Language() string { return q.language }

// UserID returns the optional user identifier.
func (q Query) UserID() string { return q.userID }

// Context returns the optional shopper context (may be nil).
func (q Query) Context() *Context { return q.context }

// IsEnglish reports whether the query needs no translation.
func (q Query) IsEnglish() bool { return language.IsEnglish(q.language) }
