package shopassist

import "github.com/kailas-cloud/shopassist/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidQuery        = domain.ErrInvalidQuery
	ErrProductNotFound     = domain.ErrProductNotFound
	ErrTranslationFailed   = domain.ErrTranslationFailed
	ErrUnsupportedLanguage = domain.ErrUnsupportedLanguage
)
