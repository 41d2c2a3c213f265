package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// GenerationDomainService is the single workflow engine behind all six
// tools. A tool's Definition tells it which slots to expect, how to
// render the prompt, and which request shape to use; everything else is
// identical across tools.
type GenerationDomainService struct {
	editor      repositories.ImageEditingService
	poster      repositories.PosterGenerationService
	editModel   string
	posterModel string
	logger      *zap.Logger
}

func NewGenerationDomainService(
	editor repositories.ImageEditingService,
	poster repositories.PosterGenerationService,
	editModel string,
	posterModel string,
	logger *zap.Logger,
) *GenerationDomainService {
	return &GenerationDomainService{
		editor:      editor,
		poster:      poster,
		editModel:   editModel,
		posterModel: posterModel,
		logger:      logger,
	}
}

// Execute runs one generation for a tool: required-slot check, prompt
// rendering, then the definition's request shape. The images map holds
// the validated slot uploads.
func (s *GenerationDomainService) Execute(
	ctx context.Context,
	def *tools.Definition,
	images map[tools.Slot]*valueobjects.ImageData,
	params tools.Parameters,
) (*entities.GenerationResult, error) {
	for _, slot := range def.RequiredSlots() {
		if images[slot] == nil {
			return nil, fmt.Errorf("%w: %s image", tools.ErrMissingInput, slot)
		}
	}

	present := func(slot tools.Slot) bool {
		return images[slot] != nil
	}
	prompt := def.BuildPrompt(params, present)

	s.logger.Info("starting generation",
		zap.String("tool", string(def.ID)),
		zap.String("variant", string(def.Variant)),
		zap.Int("imageCount", len(images)))
	start := time.Now()

	var (
		result *entities.GenerationResult
		err    error
	)
	switch def.Variant {
	case tools.VariantComposite:
		result, err = s.executeComposite(ctx, def, images, params, prompt)
	case tools.VariantPoster:
		result, err = s.executePoster(ctx, def, images, params, prompt)
	default:
		result, err = s.executeEdit(ctx, prompt, s.orderedImages(def, images, ""))
	}
	if err != nil {
		s.logger.Error("generation failed",
			zap.String("tool", string(def.ID)),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("generation finished",
		zap.String("tool", string(def.ID)),
		zap.Int("resultImages", result.ImageCount()),
		zap.Duration("duration", time.Since(start)))

	names := make([]string, result.ImageCount())
	for i := range names {
		names[i] = def.ArtifactName(params, i)
	}
	result.SetArtifactNames(names)

	return result, nil
}

// orderedImages lays the slot uploads out in declaration order so that
// "first image" and "second image" in the prompts stay accurate. The
// exclude slot keeps composite accessories out of the primary call.
func (s *GenerationDomainService) orderedImages(
	def *tools.Definition,
	images map[tools.Slot]*valueobjects.ImageData,
	exclude tools.Slot,
) []*valueobjects.ImageData {
	var ordered []*valueobjects.ImageData
	for _, spec := range def.Slots {
		if spec.Name == exclude {
			continue
		}
		if image := images[spec.Name]; image != nil {
			ordered = append(ordered, image)
		}
	}
	return ordered
}

func (s *GenerationDomainService) executeEdit(
	ctx context.Context,
	prompt string,
	images []*valueobjects.ImageData,
) (*entities.GenerationResult, error) {
	request, err := entities.NewEditRequest(s.editModel, prompt, images)
	if err != nil {
		return nil, fmt.Errorf("failed to build edit request: %w", err)
	}

	result, err := s.editor.EditImage(ctx, request)
	if err != nil {
		return nil, s.classifyServiceError(err)
	}

	return result, nil
}

// executeComposite runs the primary edit, then a sequential second call
// that overlays the accessory slot onto the result. A failing second
// step falls back silently to the primary artifact, which is still
// usable on its own.
func (s *GenerationDomainService) executeComposite(
	ctx context.Context,
	def *tools.Definition,
	images map[tools.Slot]*valueobjects.ImageData,
	params tools.Parameters,
	prompt string,
) (*entities.GenerationResult, error) {
	accessorySlot := def.CompositeSlot()

	base, err := s.executeEdit(ctx, prompt, s.orderedImages(def, images, accessorySlot))
	if err != nil {
		return nil, err
	}

	accessory := images[accessorySlot]
	if accessory == nil {
		return base, nil
	}

	baseImage, err := base.Image(0)
	if err != nil {
		return nil, err
	}

	composited, err := s.executeEdit(ctx, def.BuildCompositePrompt(params),
		[]*valueobjects.ImageData{baseImage, accessory})
	if err != nil {
		s.logger.Warn("composite step failed, returning base result",
			zap.String("tool", string(def.ID)),
			zap.Error(err))
		return base, nil
	}

	return composited, nil
}

// executePoster generates the requested batch of base posters, then
// overlays the logo onto every option concurrently. A failing overlay
// keeps that option's base poster; the batch itself never shrinks.
func (s *GenerationDomainService) executePoster(
	ctx context.Context,
	def *tools.Definition,
	images map[tools.Slot]*valueobjects.ImageData,
	params tools.Parameters,
	prompt string,
) (*entities.GenerationResult, error) {
	posterParams, ok := params.(*valueobjects.PosterParameters)
	if !ok {
		return nil, fmt.Errorf("poster workflow needs poster parameters, got %T", params)
	}

	request, err := entities.NewPosterRequest(s.posterModel, prompt, posterParams.Count(), posterParams.AspectRatio())
	if err != nil {
		return nil, fmt.Errorf("failed to build poster request: %w", err)
	}

	base, err := s.poster.GeneratePosters(ctx, request)
	if err != nil {
		return nil, s.classifyServiceError(err)
	}

	logo := images[def.CompositeSlot()]
	if logo == nil {
		return base, nil
	}

	compositePrompt := def.BuildCompositePrompt(params)
	bases := base.Images()
	composited := make([]*valueobjects.ImageData, len(bases))
	copy(composited, bases)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(len(bases))

	for i, baseImage := range bases {
		group.Go(func() error {
			result, err := s.executeEdit(groupCtx, compositePrompt,
				[]*valueobjects.ImageData{baseImage, logo})
			if err != nil {
				s.logger.Warn("logo overlay failed, keeping base poster",
					zap.Int("option", i),
					zap.Error(err))
				return nil
			}

			image, err := result.Image(0)
			if err != nil {
				return nil
			}
			composited[i] = image
			return nil
		})
	}

	// Overlay failures degrade per option, so the join never errors.
	_ = group.Wait()

	return entities.NewGenerationResult(composited, base.Text())
}

// classifyServiceError tags quota exhaustion so the API layer can map it
// to 429; everything else passes through as a transport failure.
func (s *GenerationDomainService) classifyServiceError(err error) error {
	if isQuotaError(err) {
		return fmt.Errorf("%w: %v", repositories.ErrQuotaExhausted, err)
	}
	return err
}

func isQuotaError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "quota exceeded") ||
		strings.Contains(errStr, "resourceexhausted") ||
		strings.Contains(errStr, "429")
}
