// Package cards inspects rendered thumbnail card images before they are published.
package cards

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	_ "golang.org/x/image/webp"
)

var (
	// ErrUnsupportedFormat is returned for image formats cards cannot be published in.
	ErrUnsupportedFormat = errors.New("unsupported card format")
	// ErrFormatMismatch is returned when the image bytes do not match the declared format.
	ErrFormatMismatch = errors.New("card content does not match declared format")
	// ErrEmptyImage is returned for an empty upload.
	ErrEmptyImage = errors.New("card image is empty")
)

// Info describes a decoded card image header.
type Info struct {
	Format string
	Width  int
	Height int
}

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"webp": "image/webp",
}

// NormalizeFormat lowercases format and folds "jpeg" into "jpg".
func NormalizeFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "jpeg" {
		return "jpg"
	}
	return format
}

// ContentType returns the MIME type for a supported card format.
func ContentType(format string) (string, error) {
	ct, ok := contentTypes[NormalizeFormat(format)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return ct, nil
}

// Inspect decodes the image header in data and checks that it matches want.
func Inspect(data []byte, want string) (Info, error) {
	want = NormalizeFormat(want)
	if _, ok := contentTypes[want]; !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, want)
	}
	if len(data) == 0 {
		return Info{}, ErrEmptyImage
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrFormatMismatch, err)
	}

	format = NormalizeFormat(format)
	if format != want {
		return Info{}, fmt.Errorf("%w: got %s want %s", ErrFormatMismatch, format, want)
	}

	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// ObjectKey builds a unique storage key for a card, named after title when one is given.
func ObjectKey(title, format string) string {
	name := slug.Make(title)
	if name == "" {
		name = "thumbnail"
	}
	return fmt.Sprintf("cards/%s/%s.%s", uuid.NewString(), name, NormalizeFormat(format))
}
