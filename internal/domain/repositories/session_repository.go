package repositories

import (
	"context"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
)

// SessionRepository stores live tool sessions. Sessions are transient by
// design; implementations hold them in process memory.
type SessionRepository interface {
	Save(ctx context.Context, session *entities.ToolSession) error
	FindByID(ctx context.Context, id entities.SessionID) (*entities.ToolSession, error)
	Delete(ctx context.Context, id entities.SessionID) error
}
