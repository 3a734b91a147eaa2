package renderer

import (
	"context"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// Raytracer renders a fixed world through a camera. It holds no mutable
// state, so one instance can be shared by every worker.
type Raytracer struct {
	world      geometry.Hittable
	camera     *Camera
	integrator integrator.Integrator
	seed       uint64
}

// NewRaytracer creates a new raytracer. seed selects the family of random
// streams; the same seed always renders the same image.
func NewRaytracer(world geometry.Hittable, camera *Camera, lightTransport integrator.Integrator, seed uint64) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: lightTransport,
		seed:       seed,
	}
}

// Camera returns the camera the raytracer renders through
func (rt *Raytracer) Camera() *Camera {
	return rt.camera
}

// Render traces samples [firstSample, firstSample+count) for every pixel and
// returns their unnormalized sums. The context is checked once per row.
func (rt *Raytracer) Render(ctx context.Context, firstSample, count int) (*PixelBuffer, error) {
	width, height := rt.camera.Width(), rt.camera.Height()
	buffer := NewPixelBuffer(width, height)
	sampler := core.NewStreamSampler(rt.seed)

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < width; i++ {
			pixelIndex := j*width + i
			for s := firstSample; s < firstSample+count; s++ {
				sampler.Reset(pixelIndex, s)
				ray := rt.camera.GetRay(i, j, sampler)
				buffer.Add(i, j, rt.integrator.Radiance(ray, rt.world, sampler))
			}
		}
	}

	buffer.Samples = max(count, 0)
	return buffer, nil
}
