package openai

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/kailas-cloud/shopassist/internal/domain"
	"github.com/kailas-cloud/shopassist/internal/domain/language"
)

const translatorSystemPrompt = "You are a translation engine for an online store. " +
	"Translate the user's text exactly. Keep product names, sizes and numbers. " +
	"Output only the translation, with no quotes or commentary."

// Translator translates text with a chat model.
type Translator struct {
	client *Client
}

// NewTranslator creates an LLM-backed translator.
func NewTranslator(c *Client) *Translator {
	return &Translator{client: c}
}

// Translate implements domain.Translator.
func (t *Translator) Translate(ctx context.Context, text, from, to string) (string, error) {
	user := fmt.Sprintf("Translate from %s to %s:\n%s", languageName(from), languageName(to), text)

	out, err := t.client.complete(ctx, completion{
		system:      translatorSystemPrompt,
		user:        user,
		// go-openai drops a zero temperature from the request.
		temperature: math.SmallestNonzeroFloat32,
	}, domain.ErrTranslationFailed)
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

// HealthCheck verifies the backing API.
func (t *Translator) HealthCheck(ctx context.Context) error {
	return t.client.HealthCheck(ctx)
}

func languageName(code string) string {
	for _, l := range language.Supported() {
		if language.Same(l.Code, code) {
			return l.Name
		}
	}
	return language.Canonical(code)
}
