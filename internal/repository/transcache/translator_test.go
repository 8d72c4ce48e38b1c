package transcache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/db"
)

func TestTranslate_CacheMiss(t *testing.T) {
	inner := &mockTranslator{out: "women's T-shirt"}
	ct, ms := newTestCachedTranslator(t, inner)

	var setKey string
	var setValue []byte
	var setTTL time.Duration
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		setKey, setValue, setTTL = key, value, ttl
		return nil
	}

	out, err := ct.Translate(context.Background(), "মেয়েদের টি-শার্ট", "bn", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "women's T-shirt" {
		t.Errorf("unexpected translation: %q", out)
	}
	if inner.calls != 1 {
		t.Errorf("expected 1 inner call, got %d", inner.calls)
	}
	if !strings.HasPrefix(setKey, "shopassist:tr_cache:") {
		t.Errorf("unexpected key: %q", setKey)
	}
	if string(setValue) != out || setTTL != time.Hour {
		t.Errorf("unexpected cache put: %q ttl=%v", setValue, setTTL)
	}
}

func TestTranslate_CacheHit(t *testing.T) {
	inner := &mockTranslator{out: "fresh"}
	ct, ms := newTestCachedTranslator(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("cached"), nil
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		t.Error("SET must not be called on cache hit")
		return nil
	}

	out, err := ct.Translate(context.Background(), "hola", "es", "en")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "cached" {
		t.Errorf("expected cached value, got %q", out)
	}
	if inner.calls != 0 {
		t.Errorf("inner must not be called on hit, got %d calls", inner.calls)
	}
}

func TestTranslate_InnerErrorNotCached(t *testing.T) {
	inner := &mockTranslator{err: errors.New("provider down")}
	ct, ms := newTestCachedTranslator(t, inner)

	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		t.Error("failed translations must not be cached")
		return nil
	}

	if _, err := ct.Translate(context.Background(), "hola", "es", "en"); err == nil {
		t.Fatal("expected error")
	}
}

func TestTranslate_StoreErrorsDegrade(t *testing.T) {
	inner := &mockTranslator{out: "hello"}
	ct, ms := newTestCachedTranslator(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: errors.New("timeout")}
	}
	ms.setFn = func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
		return &db.Error{Op: db.OpSet, Err: errors.New("timeout")}
	}

	out, err := ct.Translate(context.Background(), "hola", "es", "en")
	if err != nil {
		t.Fatalf("store failures must not fail translation: %v", err)
	}
	if out != "hello" {
		t.Errorf("unexpected translation: %q", out)
	}
}

func TestTranslate_EmptyCachedValueIsMiss(t *testing.T) {
	inner := &mockTranslator{out: "hello"}
	ct, ms := newTestCachedTranslator(t, inner)

	ms.getFn = func(_ context.Context, _ string) ([]byte, error) {
		return []byte("  "), nil
	}

	if out, _ := ct.Translate(context.Background(), "hola", "es", "en"); out != "hello" {
		t.Errorf("expected inner translation, got %q", out)
	}
}

func TestCacheKey_CanonicalLanguages(t *testing.T) {
	if cacheKey("hola", "es-MX", "en-US") != cacheKey("hola", "es", "en") {
		t.Error("equivalent language tags should share a cache key")
	}
	if cacheKey("hola", "es", "en") == cacheKey("hola", "en", "es") {
		t.Error("direction must be part of the key")
	}
}

func TestTranslate_CacheMetrics(t *testing.T) {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_cache_total"}, []string{"result"})
	inner := &mockTranslator{out: "hello"}
	ms := &mockKVStore{}
	ct := New(inner, ms, 0, counter, zap.NewNop())

	if ct.ttl != DefaultTTL {
		t.Errorf("expected default ttl, got %v", ct.ttl)
	}

	_, _ = ct.Translate(context.Background(), "hola", "es", "en")
	ms.getFn = func(_ context.Context, _ string) ([]byte, error) { return []byte("hello"), nil }
	_, _ = ct.Translate(context.Background(), "hola", "es", "en")

	if v := testutil.ToFloat64(counter.WithLabelValues("miss")); v != 1 {
		t.Errorf("miss: got %v", v)
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("hit")); v != 1 {
		t.Errorf("hit: got %v", v)
	}
}
