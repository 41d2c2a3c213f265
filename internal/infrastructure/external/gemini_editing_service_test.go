package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/feisong354/AIImageTools/internal/domain/repositories"
)

func TestExtractInlineImage(t *testing.T) {
	t.Run("returns the inline image and accompanying text", func(t *testing.T) {
		response := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							genai.NewPartFromText("here is your edit"),
							{
								InlineData: &genai.Blob{
									MIMEType: "image/png",
									Data:     []byte("edited-bytes"),
								},
							},
						},
					},
					FinishReason: genai.FinishReasonStop,
				},
			},
		}

		image, text, err := extractInlineImage(response)
		require.NoError(t, err)
		assert.Equal(t, []byte("edited-bytes"), image.Data())
		assert.Equal(t, "image/png", image.MimeType())
		assert.Equal(t, "here is your edit", text)
	})

	t.Run("keeps the first image when several come back", func(t *testing.T) {
		response := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("first")}},
							{InlineData: &genai.Blob{MIMEType: "image/png", Data: []byte("second")}},
						},
					},
				},
			},
		}

		image, _, err := extractInlineImage(response)
		require.NoError(t, err)
		assert.Equal(t, []byte("first"), image.Data())
	})

	t.Run("a text-only answer is a refusal that carries the text", func(t *testing.T) {
		response := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{
					Content: &genai.Content{
						Parts: []*genai.Part{
							genai.NewPartFromText("I cannot edit this photo."),
						},
					},
					FinishReason: genai.FinishReasonStop,
				},
			},
		}

		_, _, err := extractInlineImage(response)
		assert.ErrorIs(t, err, repositories.ErrNoImageReturned)
		assert.Contains(t, err.Error(), "I cannot edit this photo.")
	})

	t.Run("a safety block reports its finish reason", func(t *testing.T) {
		response := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{FinishReason: genai.FinishReasonSafety},
			},
		}

		_, _, err := extractInlineImage(response)
		assert.ErrorIs(t, err, repositories.ErrNoImageReturned)
		assert.Contains(t, err.Error(), "SAFETY")
	})

	t.Run("an empty response is a refusal", func(t *testing.T) {
		_, _, err := extractInlineImage(&genai.GenerateContentResponse{})
		assert.ErrorIs(t, err, repositories.ErrNoImageReturned)

		_, _, err = extractInlineImage(nil)
		assert.ErrorIs(t, err, repositories.ErrNoImageReturned)
	})
}
