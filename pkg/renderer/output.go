package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/neudoerf/raytracing/pkg/core"
	"golang.org/x/xerrors"
)

// Supported output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// toByte maps a linear channel average to an 8-bit gamma-2 value
func toByte(linear float64) int {
	gamma := 0.0
	if linear > 0 {
		gamma = math.Sqrt(linear)
	}
	return int(256 * core.NewInterval(0, 0.999).Clamp(gamma))
}

// pixelBytes returns the 8-bit RGB triple for pixel (x, y)
func pixelBytes(buffer *PixelBuffer, x, y int) (r, g, b int) {
	c := buffer.Color(x, y)
	return toByte(c.X), toByte(c.Y), toByte(c.Z)
}

// WritePPM writes the buffer as a plain-text PPM image, top row first
func WritePPM(w io.Writer, buffer *PixelBuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", buffer.Width, buffer.Height); err != nil {
		return xerrors.Errorf("while writing PPM header: %w", err)
	}

	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			r, g, b := pixelBytes(buffer, x, y)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return xerrors.Errorf("while writing PPM pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return xerrors.Errorf("while flushing PPM: %w", err)
	}
	return nil
}

// ToImage converts the buffer to an RGBA image using the same mapping as WritePPM
func ToImage(buffer *PixelBuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, buffer.Width, buffer.Height))
	for y := 0; y < buffer.Height; y++ {
		for x := 0; x < buffer.Width; x++ {
			r, g, b := pixelBytes(buffer, x, y)
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// WritePNG encodes the buffer as a PNG image
func WritePNG(w io.Writer, buffer *PixelBuffer) error {
	if err := png.Encode(w, ToImage(buffer)); err != nil {
		return xerrors.Errorf("while encoding PNG: %w", err)
	}
	return nil
}

// SaveImage writes the buffer to path in the given format, creating parent
// directories as needed
func SaveImage(path string, buffer *PixelBuffer, format string) (err error) {
	var encode func(io.Writer, *PixelBuffer) error
	switch format {
	case FormatPPM:
		encode = WritePPM
	case FormatPNG:
		encode = WritePNG
	default:
		return xerrors.Errorf("unsupported output format %q", format)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return xerrors.Errorf("while creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("while creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = xerrors.Errorf("while closing %s: %w", path, cerr)
		}
	}()

	return encode(f, buffer)
}
