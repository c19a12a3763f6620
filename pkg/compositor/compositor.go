// Package compositor places bounding-box content centered on a new canvas.
package compositor

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/menta2k/pow2crop/pkg/bounds"
	"github.com/menta2k/pow2crop/pkg/types"
)

// Composite copies the bounding-box region of src onto a fresh, fully
// transparent canvas of exactly the target size, centered. Pixel values are
// copied verbatim with no resampling. Target must be at least as large as
// the box on both axes; sizing guarantees this by construction.
//
// Centering uses floor division, so an odd padding difference puts the
// extra pixel on the right/bottom side.
func Composite(src *image.NRGBA, box bounds.Box, target types.Dimensions) *image.NRGBA {
	content := box.Dimensions()
	offX := (target.Width - content.Width) / 2
	offY := (target.Height - content.Height) / 2

	dst := image.NewNRGBA(image.Rect(0, 0, target.Width, target.Height))
	r := image.Rect(offX, offY, offX+content.Width, offY+content.Height)
	sp := image.Pt(src.Bounds().Min.X+box.MinX, src.Bounds().Min.Y+box.MinY)
	draw.Draw(dst, r, src, sp, draw.Src)
	return dst
}
