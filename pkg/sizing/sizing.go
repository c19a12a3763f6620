// Package sizing resolves output canvas dimensions from content dimensions.
package sizing

import (
	"math/bits"

	"github.com/menta2k/pow2crop/pkg/types"
)

// Mode selects how target dimensions are derived for a batch run.
// Uniform and Exact are independent axes, giving four configurations.
type Mode struct {
	// Uniform gives every image in the batch one shared target size based
	// on the largest content found across the batch.
	Uniform bool
	// Exact uses content dimensions directly instead of rounding each
	// axis up to the next power of two.
	Exact bool
}

func (m Mode) String() string {
	s := "individual"
	if m.Uniform {
		s = "uniform"
	}
	if m.Exact {
		return s + " exact"
	}
	return s + " power-of-two"
}

// NextPow2 returns the smallest power of two that is >= n.
// Values below one map to one.
func NextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// Target resolves the output dimensions for the given content dimensions.
// Width and height are rounded independently, so 434x115 resolves to
// 512x128 rather than a single shared power.
func (m Mode) Target(content types.Dimensions) types.Dimensions {
	if m.Exact {
		return content
	}
	return types.Dimensions{
		Width:  NextPow2(content.Width),
		Height: NextPow2(content.Height),
	}
}

// MaxDimensions reduces a set of content dimensions to their element-wise
// maximum. Width and height maxima may come from different entries. The
// reduction is order-independent.
func MaxDimensions(dims []types.Dimensions) types.Dimensions {
	var max types.Dimensions
	for _, d := range dims {
		if d.Width > max.Width {
			max.Width = d.Width
		}
		if d.Height > max.Height {
			max.Height = d.Height
		}
	}
	return max
}
