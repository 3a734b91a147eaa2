package integrator

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Radiance estimates the light arriving along ray from the world
	Radiance(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}
