package tools

import (
	"fmt"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

func newBeautyDefinition() *Definition {
	return &Definition{
		ID:          Beauty,
		Name:        "Beauty Camera",
		Description: "Retouches a portrait with adjustable smoothing, face and body slimming.",
		Slots: []SlotSpec{
			{Name: SlotPortrait, Required: true, Label: "Portrait photo"},
		},
		Params: []ParamSpec{
			{Name: "skinSmoothing", Kind: ParamInt, Default: "30", Min: valueobjects.MinBeautyLevel, Max: valueobjects.MaxBeautyLevel, Label: "Skin smoothing"},
			{Name: "faceReshape", Kind: ParamInt, Default: "10", Min: valueobjects.MinBeautyLevel, Max: valueobjects.MaxBeautyLevel, Label: "Face slimming"},
			{Name: "bodySlimming", Kind: ParamInt, Default: "10", Min: valueobjects.MinBeautyLevel, Max: valueobjects.MaxBeautyLevel, Label: "Body slimming"},
		},
		Variant:         VariantSingle,
		ParseParameters: parseBeautyParameters,
		BuildPrompt:     buildBeautyPrompt,
		ArtifactName: func(Parameters, int) string {
			return "beauty_photo.png"
		},
	}
}

func parseBeautyParameters(values FormValues) (Parameters, error) {
	return valueobjects.NewBeautyParameters(
		intValue(values, "skinSmoothing", 30),
		intValue(values, "faceReshape", 10),
		intValue(values, "bodySlimming", 10),
	), nil
}

// buildBeautyPrompt renders one clause per active slider. A slider at
// zero contributes nothing.
func buildBeautyPrompt(params Parameters, _ func(Slot) bool) string {
	p := params.(*valueobjects.BeautyParameters)

	var b strings.Builder
	b.WriteString("Retouch the portrait in the image like a professional beauty camera. ")

	if p.SkinSmoothing() > 0 {
		fmt.Fprintf(&b, "Apply skin smoothing at approximately %d%%, evening out the skin tone and softening blemishes while keeping natural skin texture. ", p.SkinSmoothing())
	}
	if p.FaceReshape() > 0 {
		fmt.Fprintf(&b, "Slim the face by approximately %d%%, gently refining the jawline without distorting identity. ", p.FaceReshape())
	}
	if p.BodySlimming() > 0 {
		fmt.Fprintf(&b, "Slim the body by approximately %d%%, keeping the proportions natural. ", p.BodySlimming())
	}

	b.WriteString("Keep the person clearly recognizable and avoid any plastic or artificial look.")
	return b.String()
}
