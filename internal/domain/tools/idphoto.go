package tools

import (
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

func newIDPhotoDefinition() *Definition {
	return &Definition{
		ID:          IDPhoto,
		Name:        "ID Photo",
		Description: "Turns a portrait into a formal identification photo with a replaced background.",
		Slots: []SlotSpec{
			{Name: SlotPortrait, Required: true, Label: "Portrait photo"},
			{Name: SlotBackground, Required: false, Label: "Custom background (optional)"},
		},
		Params: []ParamSpec{
			{Name: "outfit", Kind: ParamEnum, Default: "keep", Choices: []string{"keep", "business"}, Label: "Outfit"},
		},
		Variant:         VariantSingle,
		ParseParameters: parseIDPhotoParameters,
		BuildPrompt:     buildIDPhotoPrompt,
		ArtifactName: func(Parameters, int) string {
			return "id_photo.png"
		},
	}
}

func parseIDPhotoParameters(values FormValues) (Parameters, error) {
	return valueobjects.NewIDPhotoParameters(stringValue(values, "outfit", "keep")), nil
}

func buildIDPhotoPrompt(params Parameters, present func(Slot) bool) string {
	p := params.(*valueobjects.IDPhotoParameters)

	var b strings.Builder
	b.WriteString("Create a formal ID photo from the person in the first image. ")
	b.WriteString("Keep the face completely recognizable and front-facing with a neutral expression, ")
	b.WriteString("and crop to a standard head-and-shoulders portrait composition. ")

	if p.Outfit() == "business" {
		b.WriteString("Dress the person in professional business attire: a dark suit jacket over a plain white collared shirt. ")
	} else {
		b.WriteString("Keep the person's original clothing. ")
	}

	if present(SlotBackground) {
		b.WriteString("Replace the background with the scene from the second image, keeping the person cleanly separated from it. ")
	} else {
		b.WriteString("Replace the background with a solid, pure white color (#FFFFFF) with no texture, gradient, or shadow. ")
	}

	b.WriteString("The output must look like a professionally shot identification photo with even studio lighting.")
	return b.String()
}
