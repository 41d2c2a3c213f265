package valueobjects

import "testing"

func TestNewComicParameters_PanelCountClamping(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{name: "in range is kept", count: 4, want: 4},
		{name: "above range clamps to max", count: 15, want: 9},
		{name: "zero clamps to min", count: 0, want: 1},
		{name: "negative clamps to min", count: -3, want: 1},
		{name: "max boundary is kept", count: 9, want: 9},
		{name: "min boundary is kept", count: 1, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NewComicParameters("manga", tt.count)
			if params.PanelCount() != tt.want {
				t.Errorf("PanelCount() = %d, want %d", params.PanelCount(), tt.want)
			}
		})
	}
}

func TestNewComicParameters_StyleNormalization(t *testing.T) {
	tests := []struct {
		name  string
		style string
		want  string
	}{
		{name: "known style is kept", style: "american", want: "american"},
		{name: "mixed case is normalized", style: "Manga", want: "manga"},
		{name: "unknown style falls back to default", style: "cubist", want: "manga"},
		{name: "empty style falls back to default", style: "", want: "manga"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NewComicParameters(tt.style, 4)
			if params.Style() != tt.want {
				t.Errorf("Style() = %q, want %q", params.Style(), tt.want)
			}
		})
	}
}

func TestNewBeautyParameters_SliderClamping(t *testing.T) {
	tests := []struct {
		name                string
		smoothing, reshape  int
		slimming            int
		wantSmooth, wantRe  int
		wantSlim            int
	}{
		{name: "in range values are kept", smoothing: 30, reshape: 15, slimming: 20, wantSmooth: 30, wantRe: 15, wantSlim: 20},
		{name: "above range clamps to 100", smoothing: 150, reshape: 101, slimming: 999, wantSmooth: 100, wantRe: 100, wantSlim: 100},
		{name: "below range clamps to 0", smoothing: -1, reshape: -50, slimming: -100, wantSmooth: 0, wantRe: 0, wantSlim: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NewBeautyParameters(tt.smoothing, tt.reshape, tt.slimming)
			if params.SkinSmoothing() != tt.wantSmooth {
				t.Errorf("SkinSmoothing() = %d, want %d", params.SkinSmoothing(), tt.wantSmooth)
			}
			if params.FaceReshape() != tt.wantRe {
				t.Errorf("FaceReshape() = %d, want %d", params.FaceReshape(), tt.wantRe)
			}
			if params.BodySlimming() != tt.wantSlim {
				t.Errorf("BodySlimming() = %d, want %d", params.BodySlimming(), tt.wantSlim)
			}
		})
	}
}

func TestNewPosterParameters(t *testing.T) {
	t.Run("count is clamped to [1,4]", func(t *testing.T) {
		if got := NewPosterParameters("sale", "modern", "3:4", 10).Count(); got != 4 {
			t.Errorf("Count() = %d, want 4", got)
		}
		if got := NewPosterParameters("sale", "modern", "3:4", 0).Count(); got != 1 {
			t.Errorf("Count() = %d, want 1", got)
		}
	})

	t.Run("unknown aspect ratio falls back to default", func(t *testing.T) {
		if got := NewPosterParameters("sale", "modern", "2:3", 2).AspectRatio(); got != "3:4" {
			t.Errorf("AspectRatio() = %q, want %q", got, "3:4")
		}
	})

	t.Run("theme whitespace is trimmed", func(t *testing.T) {
		if got := NewPosterParameters("  summer sale  ", "modern", "3:4", 2).Theme(); got != "summer sale" {
			t.Errorf("Theme() = %q, want %q", got, "summer sale")
		}
	})
}

func TestNewSocialStyleParameters(t *testing.T) {
	tests := []struct {
		name        string
		platform    string
		want        string
		wantDisplay string
	}{
		{name: "instagram", platform: "instagram", want: "instagram", wantDisplay: "Instagram"},
		{name: "xiaohongshu", platform: "xiaohongshu", want: "xiaohongshu", wantDisplay: "Xiaohongshu"},
		{name: "douyin", platform: "douyin", want: "douyin", wantDisplay: "Douyin"},
		{name: "wechat", platform: "wechat", want: "wechat", wantDisplay: "WeChat"},
		{name: "unknown platform falls back to instagram", platform: "myspace", want: "instagram", wantDisplay: "Instagram"},
		{name: "case is normalized", platform: "Instagram", want: "instagram", wantDisplay: "Instagram"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := NewSocialStyleParameters(tt.platform)
			if params.Platform() != tt.want {
				t.Errorf("Platform() = %q, want %q", params.Platform(), tt.want)
			}
			if params.PlatformDisplayName() != tt.wantDisplay {
				t.Errorf("PlatformDisplayName() = %q, want %q", params.PlatformDisplayName(), tt.wantDisplay)
			}
		})
	}
}

func TestNewOutfitParameters(t *testing.T) {
	t.Run("color is trimmed but otherwise free text", func(t *testing.T) {
		params := NewOutfitParameters("casual", " navy blue ", true)
		if params.Color() != "navy blue" {
			t.Errorf("Color() = %q, want %q", params.Color(), "navy blue")
		}
		if !params.IncludeTie() {
			t.Error("IncludeTie() = false, want true")
		}
	})

	t.Run("empty color stays empty for the workflow to reject", func(t *testing.T) {
		if got := NewOutfitParameters("casual", "   ", false).Color(); got != "" {
			t.Errorf("Color() = %q, want empty", got)
		}
	})

	t.Run("unknown style falls back to business", func(t *testing.T) {
		if got := NewOutfitParameters("steampunk", "red", false).Style(); got != "business" {
			t.Errorf("Style() = %q, want %q", got, "business")
		}
	})
}
