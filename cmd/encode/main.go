package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// Batch-encodes the images in a directory to base64 text files, for
// seeding front-end fixtures and API examples without binary uploads.
func main() {
	var (
		inputDir  = flag.String("in", "images", "directory holding the source images")
		outputDir = flag.String("out", "encoded", "directory receiving the .txt files")
	)
	flag.Parse()

	files, err := os.ReadDir(*inputDir)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		log.Fatal(err)
	}

	validExtensions := []string{".jpg", ".jpeg", ".png", ".webp"}

	for _, file := range files {
		if file.IsDir() || !slices.Contains(validExtensions, strings.ToLower(filepath.Ext(file.Name()))) {
			continue
		}

		encoded, err := encode(filepath.Join(*inputDir, file.Name()))
		if err != nil {
			log.Fatalf("encode %s: %v", file.Name(), err)
		}

		name := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		target := filepath.Join(*outputDir, name+".txt")
		if err := os.WriteFile(target, []byte(encoded), 0o644); err != nil {
			log.Fatalf("write %s: %v", target, err)
		}
		fmt.Println(target)
	}
}

// encode normalizes the image to PNG and returns its base64 form.
func encode(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	image, err := valueobjects.NewUploadedImage(data, mimeTypeForExt(filepath.Ext(path)), filepath.Base(path))
	if err != nil {
		return "", err
	}

	png, err := image.ToPNG()
	if err != nil {
		return "", err
	}
	return png.ToBase64(), nil
}

func mimeTypeForExt(ext string) string {
	switch strings.ToLower(ext) {
	case ".jpg", ".jpeg":
		return valueobjects.MimeJPEG
	case ".webp":
		return valueobjects.MimeWEBP
	default:
		return valueobjects.MimePNG
	}
}
