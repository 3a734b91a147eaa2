package geometry

import (
	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
)

// Hittable is anything a ray can be intersected with
type Hittable interface {
	// Hit returns the nearest intersection with parameter strictly inside rayT.
	// The sampler is only consumed by volumes that scatter probabilistically.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}
