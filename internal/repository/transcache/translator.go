// Package transcache caches translations in a key-value store.
package transcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/db"
	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

// DefaultTTL is used when New receives a non-positive ttl.
const DefaultTTL = 24 * time.Hour

var cacheKeyPrefix = domain.KeyPrefix + "tr_cache:"

// store is the consumer interface for the translation cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachedTranslator caches translations in a key-value store.
type CachedTranslator struct {
	inner      domain.Translator
	store      store
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner domain.Translator,
	s store,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *CachedTranslator {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &CachedTranslator{
		inner:      inner,
		store:      s,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Translate returns a cached translation or calls the inner translator.
// Failed translations are never cached.
func (c *CachedTranslator) Translate(ctx context.Context, text, from, to string) (string, error) {
	key := cacheKey(text, from, to)

	if out, ok := c.getFromCache(ctx, key); ok {
		c.incCache("hit")
		return out, nil
	}

	c.incCache("miss")

	out, err := c.inner.Translate(ctx, text, from, to)
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}

	c.putToCache(ctx, key, out)
	return out, nil
}

// HealthCheck delegates to the inner translator when it supports health checks.
func (c *CachedTranslator) HealthCheck(ctx context.Context) error {
	if hc, ok := c.inner.(domain.HealthChecker); ok {
		return hc.HealthCheck(ctx) //nolint:wrapcheck // transparent decorator
	}
	return nil
}

func (c *CachedTranslator) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// cacheKey hashes canonical languages and text so equivalent tags share entries.
func cacheKey(text, from, to string) string {
	h := sha256.Sum256([]byte(language.Canonical(from) + "|" + language.Canonical(to) + "|" + text))
	return cacheKeyPrefix + hex.EncodeToString(h[:])
}

func (c *CachedTranslator) getFromCache(ctx context.Context, key string) (string, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached translation", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", false
	}
	return string(data), true
}

func (c *CachedTranslator) putToCache(ctx context.Context, key, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if err := c.store.SetWithTTL(ctx, key, []byte(value), c.ttl); err != nil {
		c.logger.Warn("Failed to cache translation", zap.String("key", key), zap.Error(err))
	}
}
