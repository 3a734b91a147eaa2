package renderer

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/integrator"
	"github.com/neudoerf/raytracing/pkg/material"
)

// constantSampler returns the same value for every dimension
type constantSampler float64

func (c constantSampler) Get1D() float64 { return float64(c) }
func (c constantSampler) Get2D() core.Vec2 {
	return core.NewVec2(float64(c), float64(c))
}
func (c constantSampler) Get3D() core.Vec3 {
	return core.NewVec3(float64(c), float64(c), float64(c))
}

// testLogger implements core.Logger for testing by discarding all output
type testLogger struct{}

var _ core.Logger = (*testLogger)(nil)

func (tl *testLogger) Printf(format string, args ...interface{}) {}

// createTestWorld builds a small scene exercising every scattering material
func createTestWorld() geometry.Hittable {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	left := material.NewDielectric(1.5)
	right := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	light := material.NewDiffuseLight(core.NewVec3(2, 2, 2))

	return geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, left),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, right),
		geometry.NewQuad(core.NewVec3(-1, 2, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 1), light),
	)
}

// createTestRaytracer renders createTestWorld through a small camera
func createTestRaytracer(maxDepth int) *Raytracer {
	config := DefaultCameraConfig()
	config.Width = 8
	config.AspectRatio = 4.0 / 3.0
	camera := NewCamera(config)
	pt := integrator.NewPathTracingIntegrator(maxDepth, integrator.NewSkyBackground())
	return NewRaytracer(createTestWorld(), camera, pt, 42)
}
