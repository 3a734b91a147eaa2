package geometry

import (
	"math"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
)

// Interior decides whether planar coordinates (alpha, beta) lie on a planar
// primitive and returns the texture coordinates for the hit if they do
type Interior func(alpha, beta float64) (core.Vec2, bool)

// UnitSquare accepts the parallelogram spanned by the edge vectors
func UnitSquare(alpha, beta float64) (core.Vec2, bool) {
	unit := core.NewInterval(0, 1)
	if !unit.Contains(alpha) || !unit.Contains(beta) {
		return core.Vec2{}, false
	}
	return core.NewVec2(alpha, beta), true
}

// UnitTriangle accepts the triangle with vertices Q, Q+u and Q+v
func UnitTriangle(alpha, beta float64) (core.Vec2, bool) {
	if alpha <= 0 || beta <= 0 || alpha+beta >= 1 {
		return core.Vec2{}, false
	}
	return core.NewVec2(alpha, beta), true
}

// UnitDisc accepts the ellipse centered on Q with semi-axes u and v
func UnitDisc(alpha, beta float64) (core.Vec2, bool) {
	if alpha*alpha+beta*beta > 1 {
		return core.Vec2{}, false
	}
	return core.NewVec2(alpha/2+0.5, beta/2+0.5), true
}

// Quad represents a planar surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Point3       // Q, one corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Material material.Material // Material of the quad
	Interior Interior          // Which (alpha, beta) lie on the surface
	Normal   core.Vec3         // Unit normal (u × v normalized)
	D        float64           // Plane equation constant: n·p = D
	W        core.Vec3         // n / (n·n), used for planar coordinates
	bbox     core.AABB
}

// NewQuad creates a parallelogram from a corner point and two edge vectors
func NewQuad(corner core.Point3, u, v core.Vec3, mat material.Material) *Quad {
	return newPlanar(corner, u, v, mat, UnitSquare)
}

// NewTriangle creates the triangle with vertices corner, corner+u and corner+v
func NewTriangle(corner core.Point3, u, v core.Vec3, mat material.Material) *Quad {
	return newPlanar(corner, u, v, mat, UnitTriangle)
}

// NewDisc creates an ellipse centered on center with semi-axes u and v
func NewDisc(center core.Point3, u, v core.Vec3, mat material.Material) *Quad {
	q := newPlanar(center, u, v, mat, UnitDisc)
	// The disc extends in both directions from its center
	q.bbox = core.NewAABBFromPoints(
		center.Add(u).Add(v), center.Add(u).Subtract(v),
		center.Subtract(u).Add(v), center.Subtract(u).Subtract(v),
	).Pad()
	return q
}

func newPlanar(corner core.Point3, u, v core.Vec3, mat material.Material, interior Interior) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: mat,
		Interior: interior,
		Normal:   normal,
		D:        normal.Dot(corner),
		W:        n.Divide(n.Dot(n)),
		bbox: core.NewAABB(corner, corner.Add(u).Add(v)).
			Union(core.NewAABB(corner.Add(u), corner.Add(v))).
			Pad(),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Parallel rays, including those lying in the plane, never hit
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	// Express the hit point in the (u, v) frame anchored at the corner
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	interior := q.Interior
	if interior == nil {
		interior = UnitSquare
	}
	uv, ok := interior(alpha, beta)
	if !ok {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		UV:       uv,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the padded box around the quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
