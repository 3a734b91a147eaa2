package scene

import (
	"math/rand"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      geometry.Hittable       // Objects in the scene, usually behind a BVH
	Camera     renderer.CameraConfig   // Default camera for the scene
	Sampling   renderer.SamplingConfig // Default sample count and bounce limit
	Background integrator.Background   // Radiance of escaping rays
}

// Options control how scenes are built
type Options struct {
	Random   *rand.Rand // Drives random placement, textures and BVH axes; seeded with 42 if nil
	ImageDir string     // Extra directory searched first for texture images
}

func (o Options) random() *rand.Rand {
	if o.Random == nil {
		return rand.New(rand.NewSource(42))
	}
	return o.Random
}

// NewIntegrator returns the path tracer for the scene's background and bounce limit
func (s *Scene) NewIntegrator() *integrator.PathTracingIntegrator {
	return integrator.NewPathTracingIntegrator(s.Sampling.MaxDepth, s.Background)
}

// NewRaytracer wires the scene's world, camera and integrator into a raytracer
func (s *Scene) NewRaytracer(seed uint64) *renderer.Raytracer {
	return renderer.NewRaytracer(s.World, renderer.NewCamera(s.Camera), s.NewIntegrator(), seed)
}

// skyColor is the flat light-blue background of the outdoor scenes
var skyColor = core.NewVec3(0.7, 0.8, 1.0)

// outdoorCamera is the 16:9 camera shared by the sphere scenes
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:         400,
		AspectRatio:   16.0 / 9.0,
		VFov:          20,
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0.6,
		FocusDistance: 10.0,
	}
}

// cornellCamera looks into the 555 unit Cornell box from the open side
func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Width:         600,
		AspectRatio:   1.0,
		VFov:          40,
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0,
		FocusDistance: 10.0,
	}
}

// randomColor returns a vector with each component uniform in [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	return core.NewVec3(
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
		lo+(hi-lo)*random.Float64(),
	)
}
