package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	"github.com/feisong354/AIImageTools/internal/domain/services"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// ErrNoResult marks a result or download request for a session that
// has not produced a result yet.
var ErrNoResult = errors.New("no result available")

// SessionUseCase drives the per-tool editing session: collect inputs
// slot by slot, run the generation, expose result and downloads.
type SessionUseCase struct {
	sessions repositories.SessionRepository
	workflow *services.GenerationDomainService
}

func NewSessionUseCase(sessions repositories.SessionRepository, workflow *services.GenerationDomainService) *SessionUseCase {
	return &SessionUseCase{
		sessions: sessions,
		workflow: workflow,
	}
}

func (uc *SessionUseCase) Create(ctx context.Context, tool string) (*entities.ToolSession, error) {
	def, err := tools.Get(tools.ToolID(tool))
	if err != nil {
		return nil, err
	}

	session := entities.NewToolSession(def.ID)
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *SessionUseCase) Get(ctx context.Context, id string) (*entities.ToolSession, error) {
	return uc.sessions.FindByID(ctx, entities.SessionID(id))
}

func (uc *SessionUseCase) Delete(ctx context.Context, id string) error {
	return uc.sessions.Delete(ctx, entities.SessionID(id))
}

// AttachImage validates one upload into a session slot. On a rejected
// file the session is returned alongside the error so callers can show
// its recorded message.
func (uc *SessionUseCase) AttachImage(ctx context.Context, id, slot string, data []byte, mimeType, fileName string) (*entities.ToolSession, error) {
	session, err := uc.sessions.FindByID(ctx, entities.SessionID(id))
	if err != nil {
		return nil, err
	}

	def, err := tools.Get(session.Tool())
	if err != nil {
		return nil, err
	}
	slotName := tools.Slot(slot)
	if !def.HasSlot(slotName) {
		return session, fmt.Errorf("%w: %q for tool %s", tools.ErrUnknownSlot, slot, def.ID)
	}

	if err := session.AttachImage(slotName, data, mimeType, fileName); err != nil {
		_ = uc.sessions.Save(ctx, session)
		return session, err
	}

	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *SessionUseCase) ClearImage(ctx context.Context, id, slot string) (*entities.ToolSession, error) {
	session, err := uc.sessions.FindByID(ctx, entities.SessionID(id))
	if err != nil {
		return nil, err
	}

	def, err := tools.Get(session.Tool())
	if err != nil {
		return nil, err
	}
	slotName := tools.Slot(slot)
	if !def.HasSlot(slotName) {
		return session, fmt.Errorf("%w: %q for tool %s", tools.ErrUnknownSlot, slot, def.ID)
	}

	session.ClearImage(slotName)
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Generate runs the session's tool against its collected images. The
// session always lands in a terminal state: succeeded with a result or
// failed with a user-facing message, never stuck generating.
func (uc *SessionUseCase) Generate(ctx context.Context, id string, values tools.FormValues) (*entities.GenerationResult, error) {
	session, err := uc.sessions.FindByID(ctx, entities.SessionID(id))
	if err != nil {
		return nil, err
	}

	def, err := tools.Get(session.Tool())
	if err != nil {
		return nil, err
	}

	if err := session.BeginGeneration(); err != nil {
		return nil, err
	}
	_ = uc.sessions.Save(ctx, session)

	params, err := def.ParseParameters(values)
	if err != nil {
		session.FailGeneration(services.UserFacingMessage(err))
		_ = uc.sessions.Save(ctx, session)
		return nil, err
	}

	result, err := uc.workflow.Execute(ctx, def, session.Images(), params)
	if err != nil {
		session.FailGeneration(services.UserFacingMessage(err))
		_ = uc.sessions.Save(ctx, session)
		return nil, err
	}

	session.CompleteGeneration(result)
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *SessionUseCase) Result(ctx context.Context, id string) (*entities.GenerationResult, error) {
	session, err := uc.sessions.FindByID(ctx, entities.SessionID(id))
	if err != nil {
		return nil, err
	}

	result, ok := session.Result()
	if !ok {
		return nil, fmt.Errorf("%w for session %s", ErrNoResult, id)
	}
	return result, nil
}

// Artifact returns one result image as a named PNG download.
func (uc *SessionUseCase) Artifact(ctx context.Context, id string, option int) (string, *valueobjects.ImageData, error) {
	result, err := uc.Result(ctx, id)
	if err != nil {
		return "", nil, err
	}

	image, err := result.Image(option)
	if err != nil {
		return "", nil, err
	}

	png, err := image.ToPNG()
	if err != nil {
		return "", nil, fmt.Errorf("encode download: %w", err)
	}
	return result.ArtifactName(option), png, nil
}
