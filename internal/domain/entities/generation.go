package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// ErrNoSuchOption marks a request for a result image index that the
// result does not contain.
var ErrNoSuchOption = errors.New("no such result option")

const (
	// DefaultEditModel handles image editing and compositing.
	DefaultEditModel = "gemini-2.5-flash-image-preview"
	// DefaultPosterModel generates poster base images from text.
	DefaultPosterModel = "imagen-4.0-generate-001"
)

// EditRequest is one editing call: an instruction plus the images it
// operates on, in prompt order.
type EditRequest struct {
	model  string
	prompt string
	images []*valueobjects.ImageData
}

func NewEditRequest(model, prompt string, images []*valueobjects.ImageData) (*EditRequest, error) {
	if model == "" {
		model = DefaultEditModel
	}

	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	if len(images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}
	for i, image := range images {
		if image == nil {
			return nil, fmt.Errorf("image %d is nil", i)
		}
	}

	return &EditRequest{
		model:  model,
		prompt: prompt,
		images: images,
	}, nil
}

func (r *EditRequest) Model() string {
	return r.model
}

func (r *EditRequest) Prompt() string {
	return r.prompt
}

func (r *EditRequest) Images() []*valueobjects.ImageData {
	return r.images
}

func (r *EditRequest) ImageCount() int {
	return len(r.images)
}

// PosterRequest is one batch text-to-image call.
type PosterRequest struct {
	model          string
	prompt         string
	numberOfImages int
	aspectRatio    string
}

func NewPosterRequest(model, prompt string, numberOfImages int, aspectRatio string) (*PosterRequest, error) {
	if model == "" {
		model = DefaultPosterModel
	}

	if prompt == "" {
		return nil, fmt.Errorf("prompt is required")
	}

	if numberOfImages < valueobjects.MinPosterCount || numberOfImages > valueobjects.MaxPosterCount {
		return nil, fmt.Errorf("number of images must be between %d and %d, got %d",
			valueobjects.MinPosterCount, valueobjects.MaxPosterCount, numberOfImages)
	}

	if aspectRatio == "" {
		aspectRatio = "3:4"
	}

	return &PosterRequest{
		model:          model,
		prompt:         prompt,
		numberOfImages: numberOfImages,
		aspectRatio:    aspectRatio,
	}, nil
}

func (r *PosterRequest) Model() string {
	return r.model
}

func (r *PosterRequest) Prompt() string {
	return r.prompt
}

func (r *PosterRequest) NumberOfImages() int {
	return r.numberOfImages
}

func (r *PosterRequest) AspectRatio() string {
	return r.aspectRatio
}

// GenerationResult carries the image payload(s) returned by the service
// plus any accompanying response text. A result always holds at least
// one image; an imageless response is a failure, not an empty result.
type GenerationResult struct {
	images        []*valueobjects.ImageData
	artifactNames []string
	text          string
	createdAt     time.Time
}

func NewGenerationResult(images []*valueobjects.ImageData, text string) (*GenerationResult, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("a generation result requires at least one image")
	}
	for i, image := range images {
		if image == nil {
			return nil, fmt.Errorf("result image %d is nil", i)
		}
	}

	return &GenerationResult{
		images:    images,
		text:      text,
		createdAt: time.Now(),
	}, nil
}

func (r *GenerationResult) Images() []*valueobjects.ImageData {
	return r.images
}

func (r *GenerationResult) Image(index int) (*valueobjects.ImageData, error) {
	if index < 0 || index >= len(r.images) {
		return nil, fmt.Errorf("%w: %d (have %d)", ErrNoSuchOption, index, len(r.images))
	}
	return r.images[index], nil
}

func (r *GenerationResult) ImageCount() int {
	return len(r.images)
}

// SetArtifactNames records the download file name for each image. Names
// beyond the image count are ignored.
func (r *GenerationResult) SetArtifactNames(names []string) {
	if len(names) > len(r.images) {
		names = names[:len(r.images)]
	}
	r.artifactNames = names
}

// ArtifactName returns the download file name for one image, falling
// back to a generic name when none was recorded.
func (r *GenerationResult) ArtifactName(index int) string {
	if index >= 0 && index < len(r.artifactNames) && r.artifactNames[index] != "" {
		return r.artifactNames[index]
	}
	return fmt.Sprintf("result_%d.png", index+1)
}

func (r *GenerationResult) Text() string {
	return r.text
}

func (r *GenerationResult) CreatedAt() time.Time {
	return r.createdAt
}
