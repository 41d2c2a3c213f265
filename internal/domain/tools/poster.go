package tools

import (
	"fmt"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// posterStyleClauses maps each poster style to the art-direction sentence
// appended to the base prompt.
var posterStyleClauses = map[string]string{
	"modern":     "Use a clean contemporary layout with generous negative space and a confident grid.",
	"minimalist": "Use a restrained palette, simple geometry, and very few elements.",
	"vintage":    "Use retro typography, aged paper texture, and muted nostalgic colors.",
	"tech":       "Use a futuristic look with neon accents, smooth gradients, and digital motifs.",
}

func newPosterDefinition() *Definition {
	return &Definition{
		ID:          Poster,
		Name:        "Poster Generator",
		Description: "Generates promotional poster options for a theme, optionally stamped with a logo.",
		Slots: []SlotSpec{
			{Name: SlotLogo, Required: false, Label: "Logo (optional)"},
		},
		Params: []ParamSpec{
			{Name: "theme", Kind: ParamText, Required: true, Label: "Poster theme"},
			{Name: "style", Kind: ParamEnum, Default: "modern", Choices: []string{"modern", "minimalist", "vintage", "tech"}, Label: "Poster style"},
			{Name: "aspectRatio", Kind: ParamEnum, Default: "3:4", Choices: []string{"1:1", "3:4", "4:3", "9:16", "16:9"}, Label: "Aspect ratio"},
			{Name: "count", Kind: ParamInt, Default: "2", Min: valueobjects.MinPosterCount, Max: valueobjects.MaxPosterCount, Label: "Number of options"},
		},
		Variant:              VariantPoster,
		ParseParameters:      parsePosterParameters,
		BuildPrompt:          buildPosterPrompt,
		BuildCompositePrompt: buildPosterCompositePrompt,
		ArtifactName: func(_ Parameters, option int) string {
			return fmt.Sprintf("poster_option_%d.png", option+1)
		},
	}
}

func parsePosterParameters(values FormValues) (Parameters, error) {
	params := valueobjects.NewPosterParameters(
		stringValue(values, "theme", ""),
		stringValue(values, "style", "modern"),
		stringValue(values, "aspectRatio", "3:4"),
		intValue(values, "count", 2),
	)

	if params.Theme() == "" {
		return nil, fmt.Errorf("%w: poster theme", ErrMissingInput)
	}

	return params, nil
}

func buildPosterPrompt(params Parameters, _ func(Slot) bool) string {
	p := params.(*valueobjects.PosterParameters)

	var b strings.Builder
	b.Grow(512)
	fmt.Fprintf(&b, "Design a %s style promotional poster about %q. ", p.Style(), p.Theme())
	b.WriteString("The poster should feature bold, readable typography of the theme text, a strong focal visual, and a cohesive color palette. ")
	b.WriteString(posterStyleClauses[p.Style()])
	b.WriteString(" High resolution, print quality, professional graphic design.")
	return b.String()
}

// buildPosterCompositePrompt drives the per-option overlay call that
// stamps the uploaded logo onto a generated poster.
func buildPosterCompositePrompt(Parameters) string {
	return "Place the logo from the second image onto the poster in the first image. " +
		"Position it discreetly in a corner at an appropriate size, clearly visible but not dominating the design. " +
		"Do not alter any other part of the poster."
}
