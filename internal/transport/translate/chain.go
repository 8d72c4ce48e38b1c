package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

// NamedTranslator is a translator that reports its provider name.
type NamedTranslator interface {
	domain.Translator
	Name() string
}

// Chain tries providers in order and returns the first non-empty result.
type Chain struct {
	providers []NamedTranslator
	logger    *zap.Logger
}

// NewChain creates a provider chain. Order is priority.
func NewChain(logger *zap.Logger, providers ...NamedTranslator) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{providers: providers, logger: logger}
}

// Providers returns the provider names in priority order.
func (c *Chain) Providers() []string {
	names := make([]string, len(c.providers))
	for i, p := range c.providers {
		names[i] = p.Name()
	}
	return names
}

// Translate implements domain.Translator. Blank text and same-language
// requests return text without calling any provider.
func (c *Chain) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" || language.Same(from, to) {
		return text, nil
	}
	if len(c.providers) == 0 {
		return "", fmt.Errorf("%w: no providers configured", domain.ErrTranslationFailed)
	}

	errs := make([]error, 0, len(c.providers))
	for _, p := range c.providers {
		out, err := p.Translate(ctx, text, from, to)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
		if err == nil {
			err = errEmptyTranslation
		}
		errs = append(errs, domain.NewProviderError(p.Name(), err))

		if ctx.Err() != nil {
			break
		}
		c.logger.Debug("Translation provider failed, trying next",
			zap.String("provider", p.Name()),
			zap.Error(err),
		)
	}
	return "", errors.Join(errs...)
}

// HealthCheck reports healthy when at least one provider is healthy.
func (c *Chain) HealthCheck(ctx context.Context) error {
	if len(c.providers) == 0 {
		return fmt.Errorf("%w: no providers configured", domain.ErrTranslationFailed)
	}
	errs := make([]error, 0, len(c.providers))
	for _, p := range c.providers {
		hc, ok := p.(domain.HealthChecker)
		if !ok {
			return nil
		}
		err := hc.HealthCheck(ctx)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
	}
	return errors.Join(errs...)
}
