package valueobjects

import "strings"

// Numeric parameter bounds. Out-of-range values are always clamped into
// the declared range, never rejected.
const (
	MinBeautyLevel = 0
	MaxBeautyLevel = 100

	MinPosterCount = 1
	MaxPosterCount = 4

	MinPanelCount = 1
	MaxPanelCount = 9
)

// IDPhotoParameters configures the ID photo tool. The background image is
// optional and handled as an input slot, not a parameter.
type IDPhotoParameters struct {
	outfit string
}

func NewIDPhotoParameters(outfit string) *IDPhotoParameters {
	return &IDPhotoParameters{
		outfit: normalizeChoice(outfit, []string{"keep", "business"}, "keep"),
	}
}

func (p *IDPhotoParameters) Outfit() string {
	return p.outfit
}

// OutfitParameters configures the outfit changer. Color is free text and
// required at submit time; requiredness is checked by the workflow, not
// here, so construction never fails.
type OutfitParameters struct {
	style      string
	color      string
	includeTie bool
}

func NewOutfitParameters(style, color string, includeTie bool) *OutfitParameters {
	return &OutfitParameters{
		style:      normalizeChoice(style, []string{"business", "casual", "formal", "sporty"}, "business"),
		color:      strings.TrimSpace(color),
		includeTie: includeTie,
	}
}

func (p *OutfitParameters) Style() string {
	return p.style
}

func (p *OutfitParameters) Color() string {
	return p.color
}

func (p *OutfitParameters) IncludeTie() bool {
	return p.includeTie
}

// BeautyParameters holds the three retouch sliders, each clamped to
// [0,100].
type BeautyParameters struct {
	skinSmoothing int
	faceReshape   int
	bodySlimming  int
}

func NewBeautyParameters(skinSmoothing, faceReshape, bodySlimming int) *BeautyParameters {
	return &BeautyParameters{
		skinSmoothing: clampInt(skinSmoothing, MinBeautyLevel, MaxBeautyLevel),
		faceReshape:   clampInt(faceReshape, MinBeautyLevel, MaxBeautyLevel),
		bodySlimming:  clampInt(bodySlimming, MinBeautyLevel, MaxBeautyLevel),
	}
}

func (p *BeautyParameters) SkinSmoothing() int {
	return p.skinSmoothing
}

func (p *BeautyParameters) FaceReshape() int {
	return p.faceReshape
}

func (p *BeautyParameters) BodySlimming() int {
	return p.bodySlimming
}

// PosterParameters configures poster generation. Theme is free text and
// required at submit time. Count is clamped to [1,4].
type PosterParameters struct {
	theme       string
	style       string
	aspectRatio string
	count       int
}

func NewPosterParameters(theme, style, aspectRatio string, count int) *PosterParameters {
	return &PosterParameters{
		theme:       strings.TrimSpace(theme),
		style:       normalizeChoice(style, []string{"modern", "minimalist", "vintage", "tech"}, "modern"),
		aspectRatio: normalizeChoice(aspectRatio, []string{"1:1", "3:4", "4:3", "9:16", "16:9"}, "3:4"),
		count:       clampInt(count, MinPosterCount, MaxPosterCount),
	}
}

func (p *PosterParameters) Theme() string {
	return p.theme
}

func (p *PosterParameters) Style() string {
	return p.style
}

func (p *PosterParameters) AspectRatio() string {
	return p.aspectRatio
}

func (p *PosterParameters) Count() int {
	return p.count
}

// SocialStyleParameters selects the target platform for the social style
// converter.
type SocialStyleParameters struct {
	platform string
}

func NewSocialStyleParameters(platform string) *SocialStyleParameters {
	return &SocialStyleParameters{
		platform: normalizeChoice(platform, []string{"instagram", "xiaohongshu", "douyin", "wechat"}, "instagram"),
	}
}

func (p *SocialStyleParameters) Platform() string {
	return p.platform
}

// PlatformDisplayName returns the capitalized platform name used inside
// prompts.
func (p *SocialStyleParameters) PlatformDisplayName() string {
	switch p.platform {
	case "instagram":
		return "Instagram"
	case "xiaohongshu":
		return "Xiaohongshu"
	case "douyin":
		return "Douyin"
	case "wechat":
		return "WeChat"
	default:
		return p.platform
	}
}

// ComicParameters configures the doodle-to-comic tool. Panel count is
// clamped to [1,9].
type ComicParameters struct {
	style      string
	panelCount int
}

func NewComicParameters(style string, panelCount int) *ComicParameters {
	return &ComicParameters{
		style:      normalizeChoice(style, []string{"manga", "american", "cartoon", "watercolor"}, "manga"),
		panelCount: clampInt(panelCount, MinPanelCount, MaxPanelCount),
	}
}

func (p *ComicParameters) Style() string {
	return p.style
}

func (p *ComicParameters) PanelCount() int {
	return p.panelCount
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// normalizeChoice coerces an enumerated field onto its allowed values;
// unknown or empty input normalizes to the default rather than failing.
func normalizeChoice(value string, allowed []string, defaultValue string) string {
	normalized := strings.TrimSpace(strings.ToLower(value))
	for _, candidate := range allowed {
		if normalized == candidate {
			return candidate
		}
	}
	return defaultValue
}
