package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/config"
	chiTransport "github.com/kailas-cloud/shopassist/internal/transport/chi"
	openaiTransport "github.com/kailas-cloud/shopassist/internal/transport/openai"
)

func TestBuildProviders_Order(t *testing.T) {
	cfg := config.Config{Translation: config.TranslationConfig{
		Providers:  []string{"mymemory", "llm", "google"},
		TimeoutSec: 5,
	}}
	llm := openaiTransport.NewClient(&openaiTransport.Config{APIKey: "k"})

	providers := buildProviders(cfg, llm, zap.NewNop())
	var names []string
	for _, p := range providers {
		names = append(names, p.Name())
	}
	if got := strings.Join(names, ","); got != "mymemory,llm,google" {
		t.Errorf("providers: got %s", got)
	}
}

func TestBuildProviders_SkipsLLMWithoutClient(t *testing.T) {
	cfg := config.Config{Translation: config.TranslationConfig{Providers: []string{"llm", "google"}}}

	providers := buildProviders(cfg, nil, zap.NewNop())
	if len(providers) != 1 || providers[0].Name() != "google" {
		t.Errorf("expected only google, got %d providers", len(providers))
	}
}

func TestJSONRecoverer(t *testing.T) {
	h := jsonRecoverer(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status: got %d", rr.Code)
	}
	var resp chiTransport.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != chiTransport.CodeInternalError {
		t.Errorf("code: got %q", resp.Code)
	}
}

func TestWideEventMiddleware_RequestID(t *testing.T) {
	h := chiMiddleware.RequestID(wideEventMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if rr.Code != http.StatusTeapot {
		t.Errorf("status: got %d", rr.Code)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}
