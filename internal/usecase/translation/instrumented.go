// Package translation decorates translators with timeouts and observability.
package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
	"github.com/kailas-cloud/shopassist/internal/metrics"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 5 * time.Second

// InstrumentedTranslator wraps a Translator with a per-call timeout,
// request metrics, and logging.
type InstrumentedTranslator struct {
	inner    domain.Translator
	provider string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewInstrumentedTranslator wraps a translator with timeout and observability.
func NewInstrumentedTranslator(
	inner domain.Translator, provider string, timeout time.Duration, logger *zap.Logger,
) *InstrumentedTranslator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstrumentedTranslator{
		inner:    inner,
		provider: provider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Name returns the wrapped provider name.
func (p *InstrumentedTranslator) Name() string { return p.provider }

// Translate short-circuits no-op requests, then delegates under a timeout.
func (p *InstrumentedTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	if strings.TrimSpace(text) == "" || language.Same(from, to) {
		return text, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()

	out, err := p.inner.Translate(ctx, text, from, to)

	duration := time.Since(start)
	metrics.TranslationDuration.WithLabelValues(p.provider).Observe(duration.Seconds())

	if err != nil {
		metrics.TranslationRequestsTotal.WithLabelValues(p.provider, "error").Inc()
		p.logger.Warn("Translation request failed",
			zap.String("provider", p.provider),
			zap.String("from", from),
			zap.String("to", to),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return "", fmt.Errorf("%s translate: %w", p.provider, err)
	}

	metrics.TranslationRequestsTotal.WithLabelValues(p.provider, "success").Inc()
	p.logger.Debug("Translation request completed",
		zap.String("provider", p.provider),
		zap.String("from", from),
		zap.String("to", to),
		zap.Duration("duration", duration),
		zap.Int("chars", len([]rune(text))),
	)

	return out, nil
}

// HealthCheck delegates to the inner translator when it supports health checks.
func (p *InstrumentedTranslator) HealthCheck(ctx context.Context) error {
	if hc, ok := p.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // transparent decorator
	}
	return nil
}
