package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"github.com/feisong354/AIImageTools/internal/domain/repositories"
)

// genAIClientPool shares one Gemini client across every caller. The
// client is created lazily on first use so construction stays cheap
// and failure surfaces on the first real request.
type genAIClientPool struct {
	config *repositories.AIClientConfig
	client *genai.Client
	mutex  sync.RWMutex
}

func NewGenAIClientPool(config *repositories.AIClientConfig) repositories.GenAIClientPool {
	return &genAIClientPool{
		config: config,
	}
}

func (p *genAIClientPool) GetClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.RLock()
	if p.client != nil {
		defer p.mutex.RUnlock()
		return p.client, nil
	}
	p.mutex.RUnlock()

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Double-checked: another caller may have won the write lock first.
	if p.client != nil {
		return p.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.config.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	p.client = client
	return p.client, nil
}

func (p *genAIClientPool) Close() error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// The GenAI client holds no resources that need explicit cleanup.
	p.client = nil
	return nil
}
