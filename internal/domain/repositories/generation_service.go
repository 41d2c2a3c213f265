package repositories

import (
	"context"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
)

// ImageEditingService runs one instruction-plus-images call against the
// generation model and returns the single edited image it produced.
type ImageEditingService interface {
	EditImage(ctx context.Context, request *entities.EditRequest) (*entities.GenerationResult, error)

	Close() error
}

// PosterGenerationService runs one text-to-image batch call and returns
// the generated images in order.
type PosterGenerationService interface {
	GeneratePosters(ctx context.Context, request *entities.PosterRequest) (*entities.GenerationResult, error)

	Close() error
}
