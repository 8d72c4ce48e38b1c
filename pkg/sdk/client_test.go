package shopassist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/kailas-cloud/shopassist/internal/domain/query"
	"github.com/kailas-cloud/shopassist/internal/matching"
	"github.com/kailas-cloud/shopassist/internal/usecase/recommend"
)

// --- Mocks ---

type mockTranslator struct {
	toEnglish   string
	fromEnglish string
	err         error
	calls       int
}

func (m *mockTranslator) Translate(_ context.Context, _, _, to string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if to == "en" {
		return m.toEnglish, nil
	}
	return m.fromEnglish, nil
}

type checkedTranslator struct {
	mockTranslator
	healthErr error
}

func (m *checkedTranslator) HealthCheck(_ context.Context) error { return m.healthErr }

type mockRecommendUC struct {
	fn      func(ctx context.Context, q query.Query) (recommend.Recommendation, error)
	matchFn func(text, lang string) matching.Result
}

func (m *mockRecommendUC) Recommend(ctx context.Context, q query.Query) (recommend.Recommendation, error) {
	return m.fn(ctx, q)
}

func (m *mockRecommendUC) Match(text, lang string) matching.Result {
	return m.matchFn(text, lang)
}

// --- Helpers ---

func mustNew(t *testing.T, opts ...Option) *Client {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func productIDs(ps []Product) string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return strings.Join(ids, ",")
}

// --- Tests ---

func TestProducts(t *testing.T) {
	c := mustNew(t)
	ps := c.Products()
	if len(ps) != 20 {
		t.Fatalf("expected 20 products, got %d", len(ps))
	}
	if ps[0].ID != "1" || ps[0].URL == "" {
		t.Errorf("unexpected first product: %+v", ps[0])
	}
}

func TestProduct(t *testing.T) {
	c := mustNew(t)

	p, err := c.Product("3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID != "3" || p.Name == "" {
		t.Errorf("unexpected product: %+v", p)
	}

	if _, err := c.Product("999"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		query    string
		category string
		found    bool
		want     string
	}{
		{"jackets for women", "jacket_women", true, "15,16,17"},
		{"necklace", "jewellery", true, "5,6,7,8"},
		{"men's jacket", "jackets_men", true, "3"},
		{"xyzzy", "", false, "1,2,3,4,5"},
	}
	c := mustNew(t)
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			res := c.Match(tc.query, "en")
			if res.Category != tc.category {
				t.Errorf("category: got %q, want %q", res.Category, tc.category)
			}
			if res.Found != tc.found {
				t.Errorf("found: got %v, want %v", res.Found, tc.found)
			}
			if got := productIDs(res.Products); got != tc.want {
				t.Errorf("products: got %s, want %s", got, tc.want)
			}
			if res.Query != tc.query {
				t.Errorf("query echo: got %q", res.Query)
			}
		})
	}
}

func TestMatch_NeverTranslates(t *testing.T) {
	tr := &mockTranslator{toEnglish: "necklace"}
	c := mustNew(t, WithTranslator(tr))
	c.Match("হার", "bn")
	if tr.calls != 0 {
		t.Errorf("Match must not translate, got %d calls", tr.calls)
	}
}

func TestMatch_UsesRecommendService(t *testing.T) {
	c := mustNew(t)
	var gotText, gotLang string
	c.recSvc = &mockRecommendUC{
		matchFn: func(text, lang string) matching.Result {
			gotText, gotLang = text, lang
			return matching.Result{
				FinalQuery: "women's jacket",
				Match:      matching.Match{Category: "jacket_women", Key: "women's jacket"},
				Found:      true,
			}
		},
	}

	res := c.Match("jacket", "bn")
	if gotText != "jacket" || gotLang != "bn" {
		t.Errorf("service called with (%q, %q)", gotText, gotLang)
	}
	if res.Query != "jacket" || res.FinalQuery != "women's jacket" || res.MatchedKey != "women's jacket" || !res.Found {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestRecommend_Translated(t *testing.T) {
	tr := &mockTranslator{toEnglish: "women's T-shirt for girls", fromEnglish: "এখানে কিছু সুপারিশ"}
	c := mustNew(t, WithTranslator(tr))

	rec, err := c.Recommend(context.Background(), "মেয়েদের জন্য টি-শার্ট", "bn")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != "top_women" {
		t.Errorf("category: got %q", rec.Category)
	}
	if got := productIDs(rec.Products); got != "18,19,20" {
		t.Errorf("products: got %s", got)
	}
	if rec.Response != recommend.MessageFound || rec.TranslatedResponse != "এখানে কিছু সুপারিশ" {
		t.Errorf("unexpected messages: %+v", rec)
	}
}

func TestRecommend_NoTranslator(t *testing.T) {
	c := mustNew(t)
	rec, err := c.Recommend(context.Background(), "ring", "hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Category != "jewellery" || rec.TranslatedResponse != rec.Response {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
}

func TestRecommend_TranslatorFailureDegrades(t *testing.T) {
	c := mustNew(t, WithTranslator(&mockTranslator{err: errors.New("quota")}))
	rec, err := c.Recommend(context.Background(), "necklace", "es")
	if err != nil {
		t.Fatalf("translation failure must not surface, got %v", err)
	}
	if rec.TranslatedResponse != recommend.MessageFound {
		t.Errorf("expected English fallback, got %q", rec.TranslatedResponse)
	}
}

func TestRecommend_InvalidQuery(t *testing.T) {
	c := mustNew(t)
	_, err := c.Recommend(context.Background(), "\xff", "en")
	if !errors.Is(err, ErrInvalidQuery) {
		t.Errorf("expected ErrInvalidQuery, got %v", err)
	}
}

func TestRecommend_UseCaseError(t *testing.T) {
	c := mustNew(t)
	c.recSvc = &mockRecommendUC{
		fn: func(_ context.Context, _ query.Query) (recommend.Recommendation, error) {
			return recommend.Recommendation{}, context.Canceled
		},
	}
	if _, err := c.Recommend(context.Background(), "ring", "en"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHealth(t *testing.T) {
	c := mustNew(t)
	if h := c.Health(context.Background()); !h.Healthy() || len(h.Checks) != 0 {
		t.Errorf("no translator should be ok with no checks, got %+v", h)
	}

	c = mustNew(t, WithTranslator(&checkedTranslator{healthErr: errors.New("down")}))
	h := c.Health(context.Background())
	if h.Healthy() || h.Status != "error" || h.Checks["translation"] != "error" {
		t.Errorf("unexpected health: %+v", h)
	}
}

func TestWithPrometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := mustNew(t, WithPrometheus(reg))

	c.Match("ring", "en")
	c.Match("necklace", "en")
	_, _ = c.Product("missing")

	ops := c.obs.metrics.operations
	if got := testutil.ToFloat64(ops.WithLabelValues("match", "ok")); got != 2 {
		t.Errorf("match ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(ops.WithLabelValues("product", "error")); got != 1 {
		t.Errorf("product error = %v, want 1", got)
	}

	matches := c.obs.metrics.matches
	if got := testutil.ToFloat64(matches.WithLabelValues(matchFound)); got != 2 {
		t.Errorf("matches found = %v, want 2", got)
	}
	c.Match("xyzzy", "en")
	if got := testutil.ToFloat64(matches.WithLabelValues(matchFallback)); got != 1 {
		t.Errorf("matches fallback = %v, want 1", got)
	}

	// A second client on the same registerer reuses the collectors.
	c2 := mustNew(t, WithPrometheus(reg))
	c2.Match("ring", "en")
	if got := testutil.ToFloat64(ops.WithLabelValues("match", "ok")); got != 4 {
		t.Errorf("match ok after reuse = %v, want 4", got)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := mustNew(t, WithLogger(logger))

	_, _ = c.Product("missing")
	if !strings.Contains(buf.String(), "operation failed") || !strings.Contains(buf.String(), "op=product") ||
		!strings.Contains(buf.String(), "id=missing") {
		t.Errorf("expected failure log, got %q", buf.String())
	}

	buf.Reset()
	c.Match("necklace", "en")
	if !strings.Contains(buf.String(), "category=jewellery") || !strings.Contains(buf.String(), "found=true") {
		t.Errorf("expected match log, got %q", buf.String())
	}
}

func TestWithTranslateTimeout(t *testing.T) {
	cfg := &clientConfig{}
	WithTranslateTimeout(0).apply(cfg)
	if cfg.translateTimeout != 0 {
		t.Errorf("got %v", cfg.translateTimeout)
	}
	// Zero keeps the pipeline default.
	if _, err := New(WithTranslateTimeout(0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
