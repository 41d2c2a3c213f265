package tools

import (
	"fmt"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

func newOutfitDefinition() *Definition {
	return &Definition{
		ID:          Outfit,
		Name:        "Outfit Changer",
		Description: "Dresses the person in a new outfit, optionally decorated with an uploaded brooch.",
		Slots: []SlotSpec{
			{Name: SlotPortrait, Required: true, Label: "Portrait photo"},
			{Name: SlotBrooch, Required: false, Label: "Brooch or accessory (optional)"},
		},
		Params: []ParamSpec{
			{Name: "style", Kind: ParamEnum, Default: "business", Choices: []string{"business", "casual", "formal", "sporty"}, Label: "Outfit style"},
			{Name: "color", Kind: ParamText, Required: true, Label: "Outfit color"},
			{Name: "includeTie", Kind: ParamBool, Default: "false", Label: "Add a tie"},
		},
		Variant:              VariantComposite,
		ParseParameters:      parseOutfitParameters,
		BuildPrompt:          buildOutfitPrompt,
		BuildCompositePrompt: buildOutfitCompositePrompt,
		ArtifactName: func(Parameters, int) string {
			return "outfit_change.png"
		},
	}
}

func parseOutfitParameters(values FormValues) (Parameters, error) {
	params := valueobjects.NewOutfitParameters(
		stringValue(values, "style", "business"),
		stringValue(values, "color", ""),
		boolValue(values, "includeTie", false),
	)

	if params.Color() == "" {
		return nil, fmt.Errorf("%w: outfit color", ErrMissingInput)
	}

	return params, nil
}

func buildOutfitPrompt(params Parameters, _ func(Slot) bool) string {
	p := params.(*valueobjects.OutfitParameters)

	var b strings.Builder
	fmt.Fprintf(&b, "Change the outfit of the person in the image to a %s style outfit in %s color. ", p.Style(), p.Color())
	b.WriteString("Keep the person's face, pose, and body shape exactly as they are. ")

	if p.IncludeTie() {
		b.WriteString("Add a matching tie that complements the outfit. ")
	}

	b.WriteString("Render realistic fabric textures and natural lighting; the result must look like a real photograph.")
	return b.String()
}

// buildOutfitCompositePrompt drives the second call that overlays the
// uploaded brooch onto the already-changed outfit.
func buildOutfitCompositePrompt(Parameters) string {
	return "Take the photo from the first image and add the brooch or accessory from the second image, " +
		"placing it naturally on the chest area of the outfit. " +
		"Do not change anything else about the first image."
}
