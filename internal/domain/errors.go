package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuery signals a malformed shopping query (bad UTF-8, oversized text, bad language tag).
	ErrInvalidQuery = errors.New("invalid query")
	// ErrProductNotFound signals a missing catalog product.
	ErrProductNotFound = errors.New("product not found")
	// ErrTranslationFailed signals that no translation provider produced a result.
	ErrTranslationFailed = errors.New("translation failed")
	// ErrUnsupportedLanguage signals a language code that cannot be parsed.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrAssistantUnavailable signals that no chat model is configured.
	ErrAssistantUnavailable = errors.New("assistant unavailable")
	// ErrAssistantProviderError signals a chat model failure.
	ErrAssistantProviderError = errors.New("assistant provider error")
	// ErrInvalidAction signals an action without a usable type or payload.
	ErrInvalidAction = errors.New("invalid action")
)

// ProviderError wraps ErrTranslationFailed with the provider that failed.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: provider %s: %v", ErrTranslationFailed.Error(), e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() []error { return []error{ErrTranslationFailed, e.Err} }

// NewProviderError creates a translation provider error.
func NewProviderError(provider string, err error) error {
	return &ProviderError{Provider: provider, Err: err}
}
