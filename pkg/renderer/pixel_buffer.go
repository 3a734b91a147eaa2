package renderer

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"golang.org/x/xerrors"
)

// PixelBuffer holds unnormalized per-pixel color sums and the number of
// samples that went into every pixel
type PixelBuffer struct {
	Width   int
	Height  int
	Pixels  []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
	Samples int         // Samples accumulated into each pixel
}

// NewPixelBuffer creates an all-black buffer with no samples
func NewPixelBuffer(width, height int) *PixelBuffer {
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Add accumulates a sample color into pixel (x, y)
func (b *PixelBuffer) Add(x, y int, color core.Vec3) {
	i := y*b.Width + x
	b.Pixels[i] = b.Pixels[i].Add(color)
}

// Sum returns the accumulated color of pixel (x, y)
func (b *PixelBuffer) Sum(x, y int) core.Vec3 {
	return b.Pixels[y*b.Width+x]
}

// Color returns the average color of pixel (x, y), black if no samples were taken
func (b *PixelBuffer) Color(x, y int) core.Vec3 {
	if b.Samples == 0 {
		return core.Vec3{}
	}
	return b.Sum(x, y).Divide(float64(b.Samples))
}

// Merge adds the sums and sample count of other into b. Both buffers must
// cover the same image.
func (b *PixelBuffer) Merge(other *PixelBuffer) error {
	if other.Width != b.Width || other.Height != b.Height {
		return xerrors.Errorf("cannot merge %dx%d buffer into %dx%d buffer", other.Width, other.Height, b.Width, b.Height)
	}
	for i := range b.Pixels {
		b.Pixels[i] = b.Pixels[i].Add(other.Pixels[i])
	}
	b.Samples += other.Samples
	return nil
}
