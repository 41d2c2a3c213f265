package valueobjects

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// ErrUnsupportedImageType rejects uploads whose declared MIME type is not
// on the accepted-format allow-list.
var ErrUnsupportedImageType = errors.New("unsupported image type")

const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeWEBP = "image/webp"
)

// acceptedUploadTypes is the fixed allow-list for user uploads. Acceptance
// is decided on the declared type alone; the bytes are never sniffed.
var acceptedUploadTypes = map[string]bool{
	MimeJPEG: true,
	MimePNG:  true,
	MimeWEBP: true,
}

type ImageData struct {
	data     []byte
	mimeType string
	fileName string
}

// NewImageData wraps an image payload with its declared MIME type. Used
// for payloads coming back from the generation service, so no allow-list
// is applied here.
func NewImageData(data []byte, mimeType string) (*ImageData, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("image data cannot be empty")
	}

	normalized := normalizeMimeType(mimeType)
	if normalized == "" {
		return nil, fmt.Errorf("image mime type cannot be empty")
	}

	return &ImageData{
		data:     data,
		mimeType: normalized,
	}, nil
}

// NewUploadedImage builds an ImageData from a user-selected file. The
// declared MIME type must be on the allow-list or the input is rejected
// and never stored.
func NewUploadedImage(data []byte, declaredMimeType, fileName string) (*ImageData, error) {
	normalized := normalizeMimeType(declaredMimeType)
	if !acceptedUploadTypes[normalized] {
		return nil, fmt.Errorf("%w: %q (accepted: JPEG, PNG, WebP)", ErrUnsupportedImageType, declaredMimeType)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrUnsupportedImageType, fileName)
	}

	img, err := NewImageData(data, normalized)
	if err != nil {
		return nil, err
	}
	img.fileName = fileName

	return img, nil
}

func (i *ImageData) Data() []byte {
	return i.data
}

func (i *ImageData) MimeType() string {
	return i.mimeType
}

func (i *ImageData) FileName() string {
	return i.fileName
}

func (i *ImageData) IsPNG() bool {
	return i.mimeType == MimePNG
}

// ToPNG re-encodes the payload as PNG. Download artifacts are always
// served as PNG regardless of what the service returned.
func (i *ImageData) ToPNG() (*ImageData, error) {
	if i.IsPNG() {
		return i, nil
	}

	reader := bytes.NewReader(i.data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode to PNG: %w", err)
	}

	return &ImageData{
		data:     buf.Bytes(),
		mimeType: MimePNG,
		fileName: i.fileName,
	}, nil
}

func (i *ImageData) ToBase64() string {
	return base64.StdEncoding.EncodeToString(i.data)
}

// normalizeMimeType lowercases the declared type and drops any parameter
// suffix ("image/jpeg; charset=utf-8" -> "image/jpeg").
func normalizeMimeType(mimeType string) string {
	normalized := strings.TrimSpace(strings.ToLower(mimeType))
	if idx := strings.IndexByte(normalized, ';'); idx >= 0 {
		normalized = strings.TrimSpace(normalized[:idx])
	}
	return normalized
}
