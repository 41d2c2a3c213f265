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

// GeminiEditingService runs image editing requests against a Gemini
// image model. Prompt and input images travel as parts of a single
// user turn; the edited image comes back as inline data.
type GeminiEditingService struct {
	pool   repositories.GenAIClientPool
	logger *zap.Logger
}

func NewGeminiEditingService(pool repositories.GenAIClientPool, logger *zap.Logger) repositories.ImageEditingService {
	return &GeminiEditingService{
		pool:   pool,
		logger: logger,
	}
}

func (s *GeminiEditingService) EditImage(ctx context.Context, request *entities.EditRequest) (*entities.GenerationResult, error) {
	client, err := s.pool.GetClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire client: %w", err)
	}

	parts := make([]*genai.Part, 0, request.ImageCount()+1)
	parts = append(parts, genai.NewPartFromText(request.Prompt()))
	for _, image := range request.Images() {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: image.MimeType(),
				Data:     image.Data(),
			},
		})
	}

	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	s.logger.Info("calling editing model",
		zap.String("model", request.Model()),
		zap.Int("imageCount", request.ImageCount()))

	// The image models reject candidateCount > 1, so the config stays
	// minimal and the first candidate is the whole answer.
	response, err := client.Models.GenerateContent(ctx, request.Model(), contents, &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	})
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	image, text, err := extractInlineImage(response)
	if err != nil {
		return nil, err
	}

	result, err := entities.NewGenerationResult([]*valueobjects.ImageData{image}, text)
	if err != nil {
		return nil, fmt.Errorf("assemble result: %w", err)
	}
	return result, nil
}

func (s *GeminiEditingService) Close() error {
	// The shared client pool owns the underlying client.
	return nil
}

// extractInlineImage walks the first candidate for an inline image
// payload plus any accompanying text. A response without an image is a
// refusal, reported with the model's finish reason so the caller can
// tell a safety block from an empty answer.
func extractInlineImage(response *genai.GenerateContentResponse) (*valueobjects.ImageData, string, error) {
	if response == nil || len(response.Candidates) == 0 {
		return nil, "", fmt.Errorf("%w: response carried no candidates", repositories.ErrNoImageReturned)
	}

	candidate := response.Candidates[0]

	var (
		image *valueobjects.ImageData
		text  string
	)
	if candidate.Content != nil {
		for _, part := range candidate.Content.Parts {
			switch {
			case part == nil:
			case part.Text != "":
				text = part.Text
			case part.InlineData != nil && len(part.InlineData.Data) > 0 && image == nil:
				decoded, err := valueobjects.NewImageData(part.InlineData.Data, part.InlineData.MIMEType)
				if err != nil {
					return nil, "", fmt.Errorf("decode inline image: %w", err)
				}
				image = decoded
			}
		}
	}

	if image == nil {
		reason := string(candidate.FinishReason)
		if reason == "" {
			reason = "unspecified"
		}
		if text != "" {
			return nil, "", fmt.Errorf("%w: model answered with text only (finish reason %s): %s",
				repositories.ErrNoImageReturned, reason, text)
		}
		return nil, "", fmt.Errorf("%w: finish reason %s", repositories.ErrNoImageReturned, reason)
	}

	return image, text, nil
}
