package domain

import "context"

// Translator is the shared text translation contract between layers.
// from and to are language codes (BCP-47 or ISO 639-1).
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// HealthChecker verifies provider availability.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// TranslatorFunc adapts a function to the Translator interface.
type TranslatorFunc func(ctx context.Context, text, from, to string) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(ctx context.Context, text, from, to string) (string, error) {
	return f(ctx, text, from, to)
}

// KeyPrefix namespaces every key this service writes to the KV store.
const KeyPrefix = "shopassist:"
