package repositories

import (
	"context"

	"google.golang.org/genai"
)

// AIClientConfig carries what the client pool needs to authenticate.
type AIClientConfig struct {
	APIKey string
}

// GenAIClientPool hands out the shared Gemini client, creating it lazily
// on first use.
type GenAIClientPool interface {
	GetClient(ctx context.Context) (*genai.Client, error)

	Close() error
}
