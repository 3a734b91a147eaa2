package integrator

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/geometry"
	"github.com/neudoerf/raytracing/pkg/material"
)

// minHitDistance keeps scattered rays from re-hitting the surface they left
const minHitDistance = 0.001

// PathTracingIntegrator implements unidirectional path tracing with
// material-driven scattering only
type PathTracingIntegrator struct {
	MaxDepth   int        // Maximum number of bounces per camera ray
	Background Background // Radiance for rays that escape; nil means black
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// Radiance traces ray through the world for up to MaxDepth bounces
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, world, pt.MaxDepth, sampler)
}

// RayColor computes the color for a single ray with depth bounces remaining
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(minHitDistance, math.Inf(1)), sampler)
	if !isHit {
		return pt.backgroundColor(ray)
	}

	colorEmitted := material.Emitted(hit.Material, hit.UV, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return colorEmitted
	}

	colorScattered := scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, depth-1, sampler))

	return colorEmitted.Add(colorScattered)
}

func (pt *PathTracingIntegrator) backgroundColor(ray core.Ray) core.Vec3 {
	if pt.Background == nil {
		return core.Vec3{}
	}
	return pt.Background.Emit(ray)
}
