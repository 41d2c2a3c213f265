package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	domainrepos "github.com/feisong354/AIImageTools/internal/domain/repositories"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
)

func TestMemorySessionRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trips a session by ID", func(t *testing.T) {
		repo := NewMemorySessionRepository()
		session := entities.NewToolSession(tools.Beauty)

		require.NoError(t, repo.Save(ctx, session))

		found, err := repo.FindByID(ctx, session.ID())
		require.NoError(t, err)
		assert.Same(t, session, found)
	})

	t.Run("a missing ID reports not found", func(t *testing.T) {
		repo := NewMemorySessionRepository()

		_, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, domainrepos.ErrSessionNotFound)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		repo := NewMemorySessionRepository()
		session := entities.NewToolSession(tools.Poster)
		require.NoError(t, repo.Save(ctx, session))

		require.NoError(t, repo.Delete(ctx, session.ID()))
		_, err := repo.FindByID(ctx, session.ID())
		assert.ErrorIs(t, err, domainrepos.ErrSessionNotFound)
	})

	t.Run("deleting a missing session is a no-op", func(t *testing.T) {
		repo := NewMemorySessionRepository()
		assert.NoError(t, repo.Delete(ctx, "missing"))
	})
}
