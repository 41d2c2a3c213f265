package repositories

import (
	"context"
	"fmt"
	"sync"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	domainrepos "github.com/feisong354/AIImageTools/internal/domain/repositories"
)

// MemorySessionRepository keeps tool sessions in process memory.
// Sessions are served by pointer, so entity mutations are visible to
// every reader without a re-save.
type MemorySessionRepository struct {
	sessions map[entities.SessionID]*entities.ToolSession
	mu       sync.RWMutex
}

func NewMemorySessionRepository() domainrepos.SessionRepository {
	return &MemorySessionRepository{
		sessions: make(map[entities.SessionID]*entities.ToolSession),
	}
}

func (r *MemorySessionRepository) Save(ctx context.Context, session *entities.ToolSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID()] = session
	return nil
}

func (r *MemorySessionRepository) FindByID(ctx context.Context, id entities.SessionID) (*entities.ToolSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", domainrepos.ErrSessionNotFound, id)
	}

	return session, nil
}

func (r *MemorySessionRepository) Delete(ctx context.Context, id entities.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
