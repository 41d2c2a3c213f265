package valueobjects

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestNewImageData(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		mimeType string
		wantErr  bool
	}{
		{
			name:     "empty data should fail",
			data:     []byte{},
			mimeType: "image/jpeg",
			wantErr:  true,
		},
		{
			name:     "nil data should fail",
			data:     nil,
			mimeType: "image/jpeg",
			wantErr:  true,
		},
		{
			name:     "empty mime type should fail",
			data:     []byte{0x01},
			mimeType: "",
			wantErr:  true,
		},
		{
			name:     "payload with mime type is accepted without sniffing",
			data:     []byte{0x00, 0x01, 0x02},
			mimeType: "image/png",
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageData(tt.data, tt.mimeType)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewImageData() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewUploadedImage(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF}

	tests := []struct {
		name        string
		mimeType    string
		wantErr     bool
		unsupported bool
	}{
		{name: "jpeg is accepted", mimeType: "image/jpeg"},
		{name: "png is accepted", mimeType: "image/png"},
		{name: "webp is accepted", mimeType: "image/webp"},
		{name: "uppercase declared type is normalized", mimeType: "IMAGE/JPEG"},
		{name: "parameter suffix is ignored", mimeType: "image/png; charset=binary"},
		{name: "gif is rejected", mimeType: "image/gif", wantErr: true, unsupported: true},
		{name: "bmp is rejected", mimeType: "image/bmp", wantErr: true, unsupported: true},
		{name: "pdf is rejected", mimeType: "application/pdf", wantErr: true, unsupported: true},
		{name: "empty declared type is rejected", mimeType: "", wantErr: true, unsupported: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := NewUploadedImage(payload, tt.mimeType, "photo.bin")
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewUploadedImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.unsupported && !errors.Is(err, ErrUnsupportedImageType) {
				t.Errorf("expected ErrUnsupportedImageType, got %v", err)
			}
			if !tt.wantErr && img.FileName() != "photo.bin" {
				t.Errorf("FileName() = %q, want %q", img.FileName(), "photo.bin")
			}
		})
	}

	t.Run("empty file is rejected as invalid upload", func(t *testing.T) {
		_, err := NewUploadedImage(nil, "image/jpeg", "empty.jpg")
		if !errors.Is(err, ErrUnsupportedImageType) {
			t.Errorf("expected ErrUnsupportedImageType for empty file, got %v", err)
		}
	})
}

func TestImageData_ToPNG(t *testing.T) {
	// Create a simple test image
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("Failed to create test JPEG: %v", err)
	}

	jpegData, err := NewImageData(jpegBuf.Bytes(), "image/jpeg")
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	t.Run("JPEG payload is re-encoded as PNG", func(t *testing.T) {
		result, err := jpegData.ToPNG()
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}
		if result.MimeType() != MimePNG {
			t.Errorf("MimeType() = %q, want %q", result.MimeType(), MimePNG)
		}
		if _, err := png.Decode(bytes.NewReader(result.Data())); err != nil {
			t.Errorf("re-encoded payload is not decodable PNG: %v", err)
		}
	})

	t.Run("PNG payload is returned unchanged", func(t *testing.T) {
		var pngBuf bytes.Buffer
		if err := png.Encode(&pngBuf, img); err != nil {
			t.Fatalf("Failed to create test PNG: %v", err)
		}
		pngData, err := NewImageData(pngBuf.Bytes(), "image/png")
		if err != nil {
			t.Fatalf("Failed to create ImageData: %v", err)
		}

		result, err := pngData.ToPNG()
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}
		if result != pngData {
			t.Errorf("expected same instance for PNG to PNG conversion")
		}
	})

	t.Run("undecodable payload fails", func(t *testing.T) {
		broken, err := NewImageData([]byte{0x00, 0x01}, "image/jpeg")
		if err != nil {
			t.Fatalf("Failed to create ImageData: %v", err)
		}
		if _, err := broken.ToPNG(); err == nil {
			t.Error("expected decode error for garbage payload")
		}
	})
}

func TestImageData_ToBase64(t *testing.T) {
	imageData, err := NewImageData([]byte("hello"), "image/png")
	if err != nil {
		t.Fatalf("Failed to create ImageData: %v", err)
	}

	if got := imageData.ToBase64(); got != "aGVsbG8=" {
		t.Errorf("ToBase64() = %q, want %q", got, "aGVsbG8=")
	}
}
