package geometry

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
)

// NewBox returns the closed axis-aligned box with opposite corners a and b,
// built from six outward-facing quads
func NewBox(a, b core.Point3, mat material.Material) *HittableList {
	sides := NewHittableList()

	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	// front, right, back, left, top, bottom
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, mat))
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, mat))
	sides.Add(NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, mat))
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, mat))
	sides.Add(NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), mat))
	sides.Add(NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, mat))

	return sides
}
