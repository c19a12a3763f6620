// Package mask derives boolean transparency masks from image alpha channels.
package mask

import "image"

// Mask is a width x height grid of booleans where true marks a
// non-transparent pixel. Pix is stored row-major.
type Mask struct {
	Width  int
	Height int
	Pix    []bool
}

// New creates an all-false mask of the given size.
func New(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
}

// FromImage builds a mask from the alpha channel of an NRGBA image.
// A pixel is marked true when its alpha value is greater than zero, so a
// fully opaque image produces an all-true mask.
func FromImage(img *image.NRGBA) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	i := 0
	for y := 0; y < m.Height; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < m.Width; x++ {
			m.Pix[i] = row[x*4+3] > 0
			i++
		}
	}
	return m
}

// At reports the mask value at (x, y).
func (m *Mask) At(x, y int) bool {
	return m.Pix[y*m.Width+x]
}

// Set updates the mask value at (x, y).
func (m *Mask) Set(x, y int, v bool) {
	m.Pix[y*m.Width+x] = v
}
