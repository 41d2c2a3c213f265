package services

import (
	"errors"
	"fmt"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// UserFacingMessage turns a workflow error into the message shown to the
// user. Transport failures keep the underlying error text for diagnosis;
// the other classes get a fixed, actionable message.
func UserFacingMessage(err error) string {
	switch {
	case errors.Is(err, valueobjects.ErrUnsupportedImageType):
		return "Unsupported file type. Please choose a JPEG, PNG, or WebP image."
	case errors.Is(err, tools.ErrMissingInput):
		return err.Error()
	case errors.Is(err, repositories.ErrNoImageReturned):
		return "No image was returned. The request may have been filtered; please try a different photo."
	case errors.Is(err, repositories.ErrQuotaExhausted):
		return "The generation service is busy right now. Please wait a moment and try again."
	case errors.Is(err, entities.ErrGenerationInFlight):
		return "A generation is already running for this tool. Please wait for it to finish."
	default:
		return fmt.Sprintf("Generation failed: %v", err)
	}
}
