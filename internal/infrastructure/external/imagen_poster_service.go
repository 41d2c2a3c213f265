package external

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// ImagenPosterService generates poster base images from text with an
// Imagen model. One call yields the whole option batch.
type ImagenPosterService struct {
	pool   repositories.GenAIClientPool
	logger *zap.Logger
}

func NewImagenPosterService(pool repositories.GenAIClientPool, logger *zap.Logger) repositories.PosterGenerationService {
	return &ImagenPosterService{
		pool:   pool,
		logger: logger,
	}
}

func (s *ImagenPosterService) GeneratePosters(ctx context.Context, request *entities.PosterRequest) (*entities.GenerationResult, error) {
	client, err := s.pool.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire client: %w", err)
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages: int32(request.NumberOfImages()),
		AspectRatio:    request.AspectRatio(),
		OutputMIMEType: valueobjects.MimePNG,
	}

	s.logger.Info("calling poster model",
		zap.String("model", request.Model()),
		zap.Int("numberOfImages", request.NumberOfImages()),
		zap.String("aspectRatio", request.AspectRatio()))

	response, err := client.Models.GenerateImages(ctx, request.Model(), request.Prompt(), config)
	if err != nil {
		return nil, fmt.Errorf("generate images: %w", err)
	}

	images, err := collectGeneratedImages(response)
	if err != nil {
		return nil, err
	}

	result, err := entities.NewGenerationResult(images, "")
	if err != nil {
		return nil, fmt.Errorf("assemble result: %w", err)
	}
	return result, nil
}

func (s *ImagenPosterService) Close() error {
	// The shared client pool owns the underlying client.
	return nil
}

func collectGeneratedImages(response *genai.GenerateImagesResponse) ([]*valueobjects.ImageData, error) {
	if response == nil || len(response.GeneratedImages) == 0 {
		return nil, fmt.Errorf("%w: empty image batch", repositories.ErrNoImageReturned)
	}

	images := make([]*valueobjects.ImageData, 0, len(response.GeneratedImages))
	for i, generated := range response.GeneratedImages {
		if generated == nil || generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
			return nil, fmt.Errorf("%w: option %d carried no bytes", repositories.ErrNoImageReturned, i)
		}

		mimeType := generated.Image.MIMEType
		if mimeType == "" {
			mimeType = valueobjects.MimePNG
		}
		image, err := valueobjects.NewImageData(generated.Image.ImageBytes, mimeType)
		if err != nil {
			return nil, fmt.Errorf("decode generated image %d: %w", i, err)
		}
		images = append(images, image)
	}

	return images, nil
}
