// Package processing handles image decode and encode at the pipeline edges.
package processing

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Processor handles image loading and saving for the cropping pipeline.
type Processor struct{}

// NewProcessor creates a new image processor.
func NewProcessor() *Processor {
	return &Processor{}
}

// LoadImage loads a PNG file and normalizes it to NRGBA. Sources without an
// alpha channel come back fully opaque, so downstream code can always read
// per-pixel alpha.
func (p *Processor) LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return EnsureAlpha(img), nil
}

// SaveImage writes the image to path; the format follows the file extension.
func (p *Processor) SaveImage(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// EnsureAlpha converts any image to NRGBA. Opaque source formats gain an
// alpha channel with every pixel at full opacity.
func EnsureAlpha(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}
