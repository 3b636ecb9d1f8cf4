package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// EncodedImage contains image data encoded as base64 PNG.
type EncodedImage struct {
	// Width of the encoded image in pixels.
	Width int `json:"width"`

	// Height of the encoded image in pixels.
	Height int `json:"height"`

	// ImageBase64 is the image encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// EncodePNG encodes img as base64 PNG.
//
// When maxSize is positive and either dimension exceeds it, the image is
// first downscaled to fit within maxSize×maxSize, preserving aspect ratio.
// Downscaling uses nearest-neighbour sampling so that flat regions keep
// their exact colors.
func EncodePNG(img image.Image, maxSize int) (*EncodedImage, error) {
	if img == nil {
		return nil, ErrNilImage
	}

	out := img
	b := img.Bounds()
	if maxSize > 0 && (b.Dx() > maxSize || b.Dy() > maxSize) {
		out = imaging.Fit(img, maxSize, maxSize, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// Save writes img to path. The format is chosen from the file extension.
func Save(img image.Image, path string) error {
	if img == nil {
		return ErrNilImage
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
