// Package translate implements HTTP translation providers and the provider chain.
package translate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

const (
	defaultGoogleURL = "https://translate.googleapis.com"
	defaultTimeout   = 5 * time.Second
	userAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	maxBodyBytes     = 1 << 20
)

var errEmptyTranslation = errors.New("empty translation")

// Google translates through the public translate.googleapis.com endpoints.
// It tries the "single" endpoint first and the dictionary endpoint second.
type Google struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGoogle creates a Google provider with the public base URL.
func NewGoogle(timeout time.Duration, logger *zap.Logger) *Google {
	return NewGoogleWithURL(defaultGoogleURL, timeout, logger)
}

// NewGoogleWithURL creates a Google provider with a custom base URL (for testing).
func NewGoogleWithURL(baseURL string, timeout time.Duration, logger *zap.Logger) *Google {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Google{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("adapter", "google")),
	}
}

// Translate implements domain.Translator.
func (g *Google) Translate(ctx context.Context, text, from, to string) (string, error) {
	sl, tl := language.Canonical(from), language.Canonical(to)

	out, err := g.single(ctx, text, sl, tl)
	if err == nil {
		return out, nil
	}
	if ctx.Err() != nil {
		return "", fmt.Errorf("google: %w", ctx.Err())
	}
	g.logger.Debug("Single endpoint failed, trying dictionary endpoint", zap.Error(err))

	out, err2 := g.dict(ctx, text, sl, tl)
	if err2 != nil {
		return "", fmt.Errorf("google: %w", errors.Join(err, err2))
	}
	return out, nil
}

// single calls translate_a/single and joins the translated segments.
func (g *Google) single(ctx context.Context, text, sl, tl string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", sl)
	q.Set("tl", tl)
	q.Set("dt", "t")
	q.Set("q", text)

	body, err := g.get(ctx, "/translate_a/single", q)
	if err != nil {
		return "", err
	}

	// [[["translated","source",...], ...], ...]
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil || len(top) == 0 {
		return "", fmt.Errorf("single: decode response: %w", errors.Join(err, errEmptyTranslation))
	}
	var segments [][]any
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("single: decode segments: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	if strings.TrimSpace(sb.String()) == "" {
		return "", fmt.Errorf("single: %w", errEmptyTranslation)
	}
	return sb.String(), nil
}

// dict calls translate_a/t, which answers ["translated"] or [["translated","lang"]].
func (g *Google) dict(ctx context.Context, text, sl, tl string) (string, error) {
	q := url.Values{}
	q.Set("client", "dict-chrome-ex")
	q.Set("sl", sl)
	q.Set("tl", tl)
	q.Set("q", text)

	body, err := g.get(ctx, "/translate_a/t", q)
	if err != nil {
		return "", err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err != nil || len(items) == 0 {
		return "", fmt.Errorf("dict: decode response: %w", errors.Join(err, errEmptyTranslation))
	}

	var s string
	if json.Unmarshal(items[0], &s) != nil {
		var pair []string
		if err := json.Unmarshal(items[0], &pair); err != nil || len(pair) == 0 {
			return "", fmt.Errorf("dict: unexpected item: %w", errEmptyTranslation)
		}
		s = pair[0]
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("dict: %w", errEmptyTranslation)
	}
	return s, nil
}

func (g *Google) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	return doRequest(g.httpClient, req)
}

// doRequest executes req and returns the body of a 200 response.
func doRequest(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
