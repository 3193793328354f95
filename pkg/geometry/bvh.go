package geometry

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/headcrab360/Ray-Tracing/pkg/core"
	"github.com/headcrab360/Ray-Tracing/pkg/material"
)

// BVHNode is a binary spatial partition over a collection of hittables.
// The node's box is the union of its children's boxes, computed once at
// construction; the hierarchy is immutable after build, which is what makes
// lock-free concurrent traversal safe.
type BVHNode struct {
	left  Hittable
	right Hittable
	box   core.AABB
}

// bvhEntry pairs an object with its bounding box so the recursive build can
// sort without re-querying boxes
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVH builds a BVH over the given objects for the given time interval.
// It returns an error if the collection is empty or any object lacks a
// bounding box: unbounded primitives cannot participate in a BVH.
func NewBVH(objects []Hittable, time0, time1 float64, random *rand.Rand) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, fmt.Errorf("bvh: cannot build over an empty collection")
	}

	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("bvh: object %d has no bounding box", i)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, random), nil
}

// buildBVH recursively splits the span at the median along a randomly chosen axis
func buildBVH(entries []bvhEntry, random *rand.Rand) *BVHNode {
	axis := random.Intn(3)
	node := &BVHNode{}

	switch len(entries) {
	case 1:
		// Duplicate the single object into both children so traversal never
		// branches on nil
		node.left = entries[0].object
		node.right = entries[0].object
		node.box = entries[0].box
	case 2:
		a, b := entries[0], entries[1]
		if b.box.Min.Axis(axis) < a.box.Min.Axis(axis) {
			a, b = b, a
		}
		node.left = a.object
		node.right = b.object
		node.box = a.box.Union(b.box)
	default:
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].box.Min.Axis(axis) < entries[j].box.Min.Axis(axis)
		})

		mid := len(entries) / 2
		left := buildBVH(entries[:mid], random)
		right := buildBVH(entries[mid:], random)
		node.left = left
		node.right = right
		node.box = left.box.Union(right.box)
	}

	return node
}

// Hit tests the node's box first and short-circuits on a miss, so subtrees
// whose box misses are never descended. On a box hit it tests left then right,
// narrowing tMax to the left hit's t before testing right.
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.left.Hit(ray, tMin, tMax, sampler)

	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}

	rightHit, hitRight := n.right.Hit(ray, tMin, closestSoFar, sampler)
	if hitRight {
		return rightHit, true
	}
	if hitLeft {
		return leftHit, true
	}
	return nil, false
}

// BoundingBox returns the node's precomputed box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.box, true
}
