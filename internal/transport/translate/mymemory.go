package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

const defaultMyMemoryURL = "https://api.mymemory.translated.net"

// MyMemory translates through the MyMemory public API.
type MyMemory struct {
	baseURL    string
	email      string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewMyMemory creates a MyMemory provider. email raises the anonymous daily
// quota when set.
func NewMyMemory(email string, timeout time.Duration, logger *zap.Logger) *MyMemory {
	return NewMyMemoryWithURL(defaultMyMemoryURL, email, timeout, logger)
}

// NewMyMemoryWithURL creates a MyMemory provider with a custom base URL (for testing).
func NewMyMemoryWithURL(baseURL, email string, timeout time.Duration, logger *zap.Logger) *MyMemory {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MyMemory{
		baseURL:    strings.TrimRight(baseURL, "/"),
		email:      email,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(zap.String("adapter", "mymemory")),
	}
}

type myMemoryResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  json.RawMessage `json:"responseStatus"`
	ResponseDetails string          `json:"responseDetails"`
}

// Translate implements domain.Translator.
func (m *MyMemory) Translate(ctx context.Context, text, from, to string) (string, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", language.Canonical(from)+"|"+language.Canonical(to))
	if m.email != "" {
		q.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/get?"+q.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("mymemory: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := doRequest(m.httpClient, req)
	if err != nil {
		return "", fmt.Errorf("mymemory: %w", err)
	}

	var parsed myMemoryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("mymemory: decode json: %w", err)
	}

	// responseStatus arrives as a number or a quoted number.
	if status := strings.Trim(string(parsed.ResponseStatus), `"`); status != "" && status != "200" {
		m.logger.Debug("MyMemory rejected request",
			zap.String("status", status),
			zap.String("details", parsed.ResponseDetails),
		)
		return "", fmt.Errorf("mymemory: status %s: %s", status, parsed.ResponseDetails)
	}

	out := parsed.ResponseData.TranslatedText
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("mymemory: %w", errEmptyTranslation)
	}
	return out, nil
}
