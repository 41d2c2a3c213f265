package tools

import (
	"fmt"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// platformAesthetics maps each platform to the look the converted photo
// should take on.
var platformAesthetics = map[string]string{
	"instagram":   "bright, airy tones with high contrast and a polished lifestyle feel",
	"xiaohongshu": "soft, warm tones with a clean lifestyle aesthetic and gentle film grain",
	"douyin":      "vivid, high-energy colors with dramatic contrast and a trendy urban feel",
	"wechat":      "natural, understated tones with a calm documentary mood",
}

func newSocialStyleDefinition() *Definition {
	return &Definition{
		ID:          SocialStyle,
		Name:        "Social Style Converter",
		Description: "Restyles a photo to match the visual language of a social platform.",
		Slots: []SlotSpec{
			{Name: SlotPhoto, Required: true, Label: "Photo"},
		},
		Params: []ParamSpec{
			{Name: "platform", Kind: ParamEnum, Default: "instagram", Choices: []string{"instagram", "xiaohongshu", "douyin", "wechat"}, Label: "Target platform"},
		},
		Variant:         VariantSingle,
		ParseParameters: parseSocialStyleParameters,
		BuildPrompt:     buildSocialStylePrompt,
		ArtifactName: func(params Parameters, _ int) string {
			return params.(*valueobjects.SocialStyleParameters).Platform() + "_style.png"
		},
	}
}

func parseSocialStyleParameters(values FormValues) (Parameters, error) {
	return valueobjects.NewSocialStyleParameters(stringValue(values, "platform", "instagram")), nil
}

func buildSocialStylePrompt(params Parameters, _ func(Slot) bool) string {
	p := params.(*valueobjects.SocialStyleParameters)

	var b strings.Builder
	fmt.Fprintf(&b, "Transform the photo into a trendy and eye-catching %q style social media picture. ", p.PlatformDisplayName())
	fmt.Fprintf(&b, "Apply %s. ", platformAesthetics[p.Platform()])
	b.WriteString("Keep the main subject intact and recognizable. ")
	b.WriteString("The final image should look ready to post and stop the scroll.")
	return b.String()
}
