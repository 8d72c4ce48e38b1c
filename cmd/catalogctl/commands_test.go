package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	shopassist "github.com/kailas-cloud/shopassist/pkg/sdk"
)

// --- Mocks ---

type fakeTranslator struct {
	calls int
}

func (f *fakeTranslator) Translate(_ context.Context, text, _, to string) (string, error) {
	f.calls++
	if to == "en" {
		return "necklace", nil
	}
	return "[" + to + "] " + text, nil
}

// --- Helpers ---

func run(t *testing.T, tf translatorFactory, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out, tf)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func noTranslator(time.Duration, *zap.Logger) shopassist.Translator { return nil }

// --- Tests ---

func TestProductsCmd(t *testing.T) {
	out, err := run(t, noTranslator, "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ps []shopassist.Product
	if err := json.Unmarshal([]byte(out), &ps); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(ps) != 20 {
		t.Errorf("expected 20 products, got %d", len(ps))
	}
}

func TestProductCmd(t *testing.T) {
	out, err := run(t, noTranslator, "product", "5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var p shopassist.Product
	if err := json.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != "5" {
		t.Errorf("got id %q", p.ID)
	}

	if _, err := run(t, noTranslator, "product", "999"); err == nil {
		t.Error("expected error for missing product")
	}
}

func TestMatchCmd(t *testing.T) {
	out, err := run(t, noTranslator, "match", "jackets", "for", "women")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res shopassist.MatchResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Query != "jackets for women" || res.Category != "jacket_women" || !res.Found {
		t.Errorf("unexpected match: %+v", res)
	}
}

func TestMatchCmd_RequiresQuery(t *testing.T) {
	if _, err := run(t, noTranslator, "match"); err == nil {
		t.Error("expected error without a query")
	}
}

func TestRecommendCmd_Offline(t *testing.T) {
	called := false
	tf := func(time.Duration, *zap.Logger) shopassist.Translator {
		called = true
		return nil
	}
	out, err := run(t, tf, "recommend", "necklace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if called {
		t.Error("translator must not be built without --translate")
	}
	var rec shopassist.Recommendation
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Category != "jewellery" || len(rec.Products) == 0 {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
}

func TestRecommendCmd_Translate(t *testing.T) {
	fake := &fakeTranslator{}
	var gotTimeout time.Duration
	tf := func(d time.Duration, _ *zap.Logger) shopassist.Translator {
		gotTimeout = d
		return fake
	}
	out, err := run(t, tf, "recommend", "--translate", "--lang", "bn", "--timeout", "2s", "হার")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotTimeout != 2*time.Second {
		t.Errorf("timeout: got %v", gotTimeout)
	}
	if fake.calls != 2 {
		t.Errorf("expected 2 translation calls, got %d", fake.calls)
	}
	var rec shopassist.Recommendation
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rec.Category != "jewellery" || !strings.HasPrefix(rec.TranslatedResponse, "[bn] ") {
		t.Errorf("unexpected recommendation: %+v", rec)
	}
}

func TestRecommendCmd_InvalidQuery(t *testing.T) {
	if _, err := run(t, noTranslator, "recommend", "--lang", "!!", "ring"); err == nil {
		t.Error("expected error for unparsable language")
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, noTranslator, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"version": "dev"`) {
		t.Errorf("unexpected output: %s", out)
	}
}

func TestNewTranslator_Providers(t *testing.T) {
	tr := newTranslator(time.Second, zap.NewNop())
	chain, ok := tr.(interface{ Providers() []string })
	if !ok {
		t.Fatalf("expected a provider chain, got %T", tr)
	}
	if got := strings.Join(chain.Providers(), ","); got != "google,mymemory" {
		t.Errorf("providers: got %s", got)
	}
}
