// Package bounds finds the minimal rectangle enclosing mask content.
package bounds

import (
	"github.com/menta2k/pow2crop/pkg/mask"
	"github.com/menta2k/pow2crop/pkg/types"
)

// Box is an axis-aligned rectangle with inclusive maximum coordinates.
type Box struct {
	MinX int
	MinY int
	MaxX int
	MaxY int
}

// Dimensions returns the width and height of the box.
func (b Box) Dimensions() types.Dimensions {
	return types.Dimensions{
		Width:  b.MaxX - b.MinX + 1,
		Height: b.MaxY - b.MinY + 1,
	}
}

// Contains reports whether (x, y) lies within the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Find scans the mask and returns the smallest box enclosing all true
// cells. The second return value is false when the mask is entirely false,
// which is the fully transparent case with no box at all.
func Find(m *mask.Mask) (Box, bool) {
	minX, minY := m.Width, m.Height
	maxX, maxY := -1, -1
	i := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[i] {
				if x < minX {
					minX = x
				}
				if x > maxX {
					maxX = x
				}
				if y < minY {
					minY = y
				}
				if y > maxY {
					maxY = y
				}
			}
			i++
		}
	}
	if maxX < 0 {
		return Box{}, false
	}
	return Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}, true
}
