package openai

import (
	"context"

	"github.com/kailas-cloud/shopassist/internal/domain"
)

// ChatModel generates assistant replies as JSON documents.
type ChatModel struct {
	client *Client
}

// NewChatModel creates an assistant chat model.
func NewChatModel(c *Client) *ChatModel {
	return &ChatModel{client: c}
}

// Generate returns the raw model reply for prompt.
func (m *ChatModel) Generate(ctx context.Context, prompt string) (string, error) {
	return m.client.complete(ctx, completion{
		user:        prompt,
		temperature: 0.7,
		jsonMode:    true,
	}, domain.ErrAssistantProviderError)
}

// HealthCheck verifies the backing API.
func (m *ChatModel) HealthCheck(ctx context.Context) error {
	return m.client.HealthCheck(ctx)
}
