package geometry

import (
	"math/rand"
	"sort"

	"github.com/neudoerf/raytracing/pkg/core"
	"github.com/neudoerf/raytracing/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. Children are
// either further nodes or scene objects; a node built from a single object
// holds it on both sides.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVHFromList builds a hierarchy over the objects of a list
func NewBVHFromList(list *HittableList, random *rand.Rand) *BVHNode {
	return NewBVH(list.Objects, random)
}

// NewBVH constructs a BVH over objects, splitting each level along a random
// axis. The input slice is not modified. Panics if objects is empty.
func NewBVH(objects []Hittable, random *rand.Rand) *BVHNode {
	if len(objects) == 0 {
		panic("geometry: NewBVH called with no objects")
	}

	// Work on a copy so callers (and concurrent builders) keep their ordering
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, random)
}

// buildBVH recursively splits objects at the median along a random axis
func buildBVH(objects []Hittable, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	boxMin := func(h Hittable) float64 {
		return h.BoundingBox().Axis(axis).Min
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left = objects[0]
		node.Right = objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
		if boxMin(node.Right) < boxMin(node.Left) {
			node.Left, node.Right = node.Right, node.Left
		}
	default:
		sort.SliceStable(objects, func(i, j int) bool {
			return boxMin(objects[i]) < boxMin(objects[j])
		})
		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid], random)
		node.Right = buildBVH(objects[mid:], random)
	}

	node.bbox = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

// Hit returns the nearest hit in either subtree. The right subtree is only
// searched up to the left subtree's hit, if any.
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, rightT, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the union of both children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}
