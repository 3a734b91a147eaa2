package loaders

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
	"golang.org/x/xerrors"
)

// maxImageSearchDepth is how many parent directories are searched for images/
const maxImageSearchDepth = 6

// ImageData contains loaded image data as Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage loads a PNG or JPEG image and converts it to Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, xerrors.Errorf("while opening image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, xerrors.Errorf("while decoding image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// imageCandidates lists where name is looked for, in order: imageDir (if set),
// the path itself, then images/ in the working directory and its parents
func imageCandidates(name, imageDir string) []string {
	var candidates []string
	if imageDir != "" {
		candidates = append(candidates, filepath.Join(imageDir, name))
	}
	candidates = append(candidates, name)

	prefix := ""
	for depth := 0; depth <= maxImageSearchDepth; depth++ {
		candidates = append(candidates, filepath.Join(prefix, "images", name))
		prefix = filepath.Join(prefix, "..")
	}
	return candidates
}

// FindImage returns the first existing file for name on the image search path
func FindImage(name, imageDir string) (string, error) {
	candidates := imageCandidates(name, imageDir)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", xerrors.Errorf("image %q not found in %s: %w", name, strings.Join(candidates, ", "), os.ErrNotExist)
}

// LoadImageTexture finds, loads and wraps an image as a texture. A missing or
// unreadable image is logged and yields an empty texture, which renders cyan.
func LoadImageTexture(name, imageDir string) *material.ImageTexture {
	path, err := FindImage(name, imageDir)
	if err != nil {
		glog.Warningf("Could not load image file: %v", err)
		return material.NewImageTexture(0, 0, nil)
	}

	data, err := LoadImage(path)
	if err != nil {
		glog.Warningf("Could not load image file: %v", err)
		return material.NewImageTexture(0, 0, nil)
	}

	glog.V(1).Infof("Loaded %dx%d texture from %s", data.Width, data.Height, path)
	return material.NewImageTexture(data.Width, data.Height, data.Pixels)
}
