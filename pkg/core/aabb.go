package core

import "math"

// minAABBThickness is the smallest extent Pad leaves on any axis
const minAABBThickness = 0.0001

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// EmptyAABB bounds nothing and is the identity for Union
var EmptyAABB = AABB{X: EmptyInterval, Y: EmptyInterval, Z: EmptyInterval}

// NewAABB creates the box spanned by two opposite corners, in any order
func NewAABB(a, b Point3) AABB {
	return AABB{
		X: NewInterval(math.Min(a.X, b.X), math.Max(a.X, b.X)),
		Y: NewInterval(math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)),
		Z: NewInterval(math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)),
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Point3) AABB {
	box := EmptyAABB
	for _, p := range points {
		box = box.Union(NewAABB(p, p))
	}
	return box
}

// Axis returns the interval for axis n (0=X, 1=Y, 2=Z)
func (aabb AABB) Axis(n int) Interval {
	switch n {
	case 1:
		return aabb.Y
	case 2:
		return aabb.Z
	default:
		return aabb.X
	}
}

// HitRange runs the slab test and returns the part of rayT spent inside the box.
// Zero direction components divide to ±Inf, which the comparisons handle.
func (aabb AABB) HitRange(ray Ray, rayT Interval) (Interval, bool) {
	for axis := 0; axis < 3; axis++ {
		slab := aabb.Axis(axis)
		invD := 1 / ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (slab.Min - origin) * invD
		t1 := (slab.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayT.Min {
			rayT.Min = t0
		}
		if t1 < rayT.Max {
			rayT.Max = t1
		}

		if rayT.Max <= rayT.Min {
			return rayT, false
		}
	}

	return rayT, true
}

// Hit tests if a ray intersects with this AABB within rayT using the slab method
func (aabb AABB) Hit(ray Ray, rayT Interval) bool {
	_, hit := aabb.HitRange(ray, rayT)
	return hit
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		X: MergeIntervals(aabb.X, other.X),
		Y: MergeIntervals(aabb.Y, other.Y),
		Z: MergeIntervals(aabb.Z, other.Z),
	}
}

// Pad widens any axis thinner than 1e-4 so flat primitives keep a volume
func (aabb AABB) Pad() AABB {
	pad := func(i Interval) Interval {
		if i.Size() >= minAABBThickness {
			return i
		}
		return i.Expand(minAABBThickness)
	}
	return AABB{X: pad(aabb.X), Y: pad(aabb.Y), Z: pad(aabb.Z)}
}

// Offset translates the box by v
func (aabb AABB) Offset(v Vec3) AABB {
	return AABB{X: aabb.X.Offset(v.X), Y: aabb.Y.Offset(v.Y), Z: aabb.Z.Offset(v.Z)}
}

// Min returns the minimum corner
func (aabb AABB) Min() Point3 {
	return NewVec3(aabb.X.Min, aabb.Y.Min, aabb.Z.Min)
}

// Max returns the maximum corner
func (aabb AABB) Max() Point3 {
	return NewVec3(aabb.X.Max, aabb.Y.Max, aabb.Z.Max)
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Point3 {
	return aabb.Min().Add(aabb.Max()).Multiply(0.5)
}
