package geometry

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
)

// ConstantMedium is a volume of uniform density filling a closed boundary,
// such as smoke or fog. Rays passing through it scatter at a random depth.
type ConstantMedium struct {
	Boundary      Hittable
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium whose scattering albedo is a texture
func NewConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// NewConstantMediumColor creates a medium with a solid scattering albedo
func NewConstantMediumColor(boundary Hittable, density float64, albedo core.Color) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// Hit samples a free-flight distance and reports a scattering event if it
// falls before the ray leaves the boundary. The boundary must be convex.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}
	tEnter := entry.T

	exit, ok := m.Boundary.Hit(ray, core.NewInterval(tEnter+0.0001, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}
	tExit := exit.T

	tEnter = math.Max(tEnter, rayT.Min)
	tExit = math.Min(tExit, rayT.Max)
	if tEnter >= tExit {
		return nil, false
	}
	tEnter = math.Max(tEnter, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEnter) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
