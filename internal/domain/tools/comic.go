package tools

import (
	"fmt"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

var comicStyleClauses = map[string]string{
	"manga":      "Render it in black-and-white manga style with screentone shading and expressive linework.",
	"american":   "Render it in bold American comic book style with heavy outlines and saturated colors.",
	"cartoon":    "Render it in a clean, friendly cartoon style with simple shapes and flat colors.",
	"watercolor": "Render it in a soft watercolor style with delicate washes and hand-drawn lines.",
}

func newComicDefinition() *Definition {
	return &Definition{
		ID:          Comic,
		Name:        "Doodle to Comic",
		Description: "Expands a rough doodle into a finished multi-panel comic strip.",
		Slots: []SlotSpec{
			{Name: SlotDoodle, Required: true, Label: "Doodle or sketch"},
		},
		Params: []ParamSpec{
			{Name: "style", Kind: ParamEnum, Default: "manga", Choices: []string{"manga", "american", "cartoon", "watercolor"}, Label: "Comic style"},
			{Name: "panelCount", Kind: ParamInt, Default: "4", Min: valueobjects.MinPanelCount, Max: valueobjects.MaxPanelCount, Label: "Panel count"},
		},
		Variant:         VariantSingle,
		ParseParameters: parseComicParameters,
		BuildPrompt:     buildComicPrompt,
		ArtifactName: func(Parameters, int) string {
			return "comic_strip.png"
		},
	}
}

func parseComicParameters(values FormValues) (Parameters, error) {
	return valueobjects.NewComicParameters(
		stringValue(values, "style", "manga"),
		intValue(values, "panelCount", 4),
	), nil
}

func buildComicPrompt(params Parameters, _ func(Slot) bool) string {
	p := params.(*valueobjects.ComicParameters)

	var b strings.Builder
	b.WriteString("Turn the doodle in the image into a finished comic strip")
	if p.PanelCount() == 1 {
		b.WriteString(" with a single panel. ")
	} else {
		fmt.Fprintf(&b, " with exactly %d panels. ", p.PanelCount())
	}

	b.WriteString("Follow the characters, objects, and story suggested by the doodle, keeping its original idea recognizable. ")
	b.WriteString("Arrange the panels in reading order with clear gutters, and add simple speech bubbles or captions where the doodle implies dialogue. ")
	b.WriteString(comicStyleClauses[p.Style()])
	return b.String()
}
