// Package pow2crop crops transparent PNG images to the smallest canvas that
// contains their non-transparent content.
//
// Each image's alpha channel is reduced to a boolean mask, the minimal
// bounding box of non-transparent pixels is found, and the content is copied
// centered onto a fresh transparent canvas. By default the canvas is the
// smallest power-of-two size per axis that fits the content, which suits
// sprite and texture pipelines; exact mode keeps the content dimensions as
// they are. In uniform mode a whole batch shares one canvas size derived
// from the largest content found across the batch.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/menta2k/pow2crop"
//		"github.com/menta2k/pow2crop/pkg/sizing"
//	)
//
//	func main() {
//		cropper := pow2crop.NewWithMode(sizing.Mode{Uniform: true})
//
//		results, err := cropper.ProcessDirectory("./sprites", "")
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		for _, r := range results {
//			log.Printf("%s: %s -> %s (%s)", r.File, r.Content, r.Target, r.Outcome)
//		}
//	}
//
// The package consists of five main components:
//
// 1. Mask (pkg/mask): derives a transparency mask from the alpha channel
// 2. Bounds (pkg/bounds): finds the minimal box enclosing mask content
// 3. Sizing (pkg/sizing): resolves output dimensions per the selected mode
// 4. Compositor (pkg/compositor): centers content on a transparent canvas
// 5. Batch (pkg/batch): runs the pipeline over a set of files
//
// Fully transparent images are skipped rather than treated as errors, and a
// failure on one file never aborts a batch run.
package pow2crop

import (
	"image"
	"path/filepath"

	"github.com/menta2k/pow2crop/internal/utils"
	"github.com/menta2k/pow2crop/pkg/batch"
	"github.com/menta2k/pow2crop/pkg/bounds"
	"github.com/menta2k/pow2crop/pkg/compositor"
	"github.com/menta2k/pow2crop/pkg/mask"
	"github.com/menta2k/pow2crop/pkg/processing"
	"github.com/menta2k/pow2crop/pkg/sizing"
	"github.com/menta2k/pow2crop/pkg/types"
)

// Version of the pow2crop library
const Version = "1.2.0"

// Cropper provides a high-level interface for alpha-bounds cropping
type Cropper struct {
	mode sizing.Mode
}

// New creates a new Cropper with the default mode: per-image power-of-two
// dimensions.
func New() *Cropper {
	return &Cropper{}
}

// NewWithMode creates a new Cropper with the given sizing mode
func NewWithMode(mode sizing.Mode) *Cropper {
	return &Cropper{mode: mode}
}

// Mode returns the sizing mode the cropper was created with
func (c *Cropper) Mode() sizing.Mode {
	return c.mode
}

// CropImage crops a single in-memory image to its content bounds. The
// returned flag is false when the image is fully transparent, in which case
// there is no content to crop and no image is returned. Uniform mode has no
// effect for a single image.
func (c *Cropper) CropImage(img image.Image) (image.Image, bool) {
	src := processing.EnsureAlpha(img)
	box, ok := bounds.Find(mask.FromImage(src))
	if !ok {
		return nil, false
	}
	target := c.mode.Target(box.Dimensions())
	return compositor.Composite(src, box, target), true
}

// ProcessDirectory crops every PNG file in inDir and writes the outputs to
// outDir, preserving file names. An empty outDir defaults to a "cropped"
// subdirectory of inDir.
func (c *Cropper) ProcessDirectory(inDir, outDir string) ([]types.Result, error) {
	files, err := utils.ListPNGFiles(inDir, false)
	if err != nil {
		return nil, err
	}
	if outDir == "" {
		outDir = filepath.Join(inDir, "cropped")
	}
	return batch.New(c.mode).Run(files, outDir)
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
