package usecases

import (
	"context"
	"fmt"

	"github.com/feisong354/AIImageTools/internal/domain/services"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// SlotUpload is one raw file upload aimed at a named input slot. The
// MIME type is the one the client declared for the file; it is checked
// against the accepted formats, never sniffed from the bytes.
type SlotUpload struct {
	Slot     tools.Slot
	Data     []byte
	MimeType string
	FileName string
}

// GenerateInput drives a one-shot generation without a session.
type GenerateInput struct {
	Tool    string
	Uploads []SlotUpload
	Params  tools.Parameters
}

type GenerateOutput struct {
	Images        []*valueobjects.ImageData
	ArtifactNames []string
	Text          string
}

// GenerateUseCase runs a tool end to end from raw uploads: validate,
// build the prompt, call the generation service, hand back the images.
type GenerateUseCase struct {
	workflow *services.GenerationDomainService
}

func NewGenerateUseCase(workflow *services.GenerationDomainService) *GenerateUseCase {
	return &GenerateUseCase{
		workflow: workflow,
	}
}

func (uc *GenerateUseCase) Execute(ctx context.Context, input GenerateInput) (*GenerateOutput, error) {
	def, err := tools.Get(tools.ToolID(input.Tool))
	if err != nil {
		return nil, err
	}

	images := make(map[tools.Slot]*valueobjects.ImageData, len(input.Uploads))
	for _, upload := range input.Uploads {
		if !def.HasSlot(upload.Slot) {
			return nil, fmt.Errorf("%w: %q for tool %s", tools.ErrUnknownSlot, upload.Slot, def.ID)
		}

		image, err := valueobjects.NewUploadedImage(upload.Data, upload.MimeType, upload.FileName)
		if err != nil {
			return nil, fmt.Errorf("%s image: %w", upload.Slot, err)
		}
		images[upload.Slot] = image
	}

	result, err := uc.workflow.Execute(ctx, def, images, input.Params)
	if err != nil {
		return nil, err
	}

	names := make([]string, result.ImageCount())
	for i := range names {
		names[i] = result.ArtifactName(i)
	}

	return &GenerateOutput{
		Images:        result.Images(),
		ArtifactNames: names,
		Text:          result.Text(),
	}, nil
}
