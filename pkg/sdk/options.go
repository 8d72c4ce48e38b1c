package shopassist

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Translator converts text between languages. Implementations must honor
// context cancellation.
type Translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	translator       Translator
	translateTimeout time.Duration

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithTranslator sets the translation provider used for non-English queries
// and localized responses. Without one, queries are matched untranslated.
func WithTranslator(t Translator) Option {
	return optionFunc(func(c *clientConfig) {
		c.translator = t
	})
}

// WithTranslateTimeout bounds each translation call. Default: 10s.
func WithTranslateTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.translateTimeout = d
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
