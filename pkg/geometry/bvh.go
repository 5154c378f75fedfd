package geometry

import (
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// bvhNode is a node in the flat BVH node slice.
// Leaves store surface handles in Left and Right (equal for a single surface);
// interior nodes store child node indices.
type bvhNode struct {
	box   core.AABB
	left  int
	right int
	leaf  bool
}

// BVH represents a Bounding Volume Hierarchy over surfaces of a World.
// Nodes are immutable once built; nodes[0] is the root.
type BVH struct {
	members []Handle
	nodes   []bvhNode
}

// NewBVH builds a BVH over the given handles. The handle slice is copied.
func NewBVH(w *World, members []Handle) *BVH {
	bvh := &BVH{members: append([]Handle(nil), members...)}
	bvh.build(w)
	return bvh
}

// build (re)constructs the node slice from the current member boxes
func (bvh *BVH) build(w *World) {
	bvh.nodes = bvh.nodes[:0]
	if len(bvh.members) == 0 {
		return
	}

	handles := append([]Handle(nil), bvh.members...)
	bvh.nodes = make([]bvhNode, 0, 2*len(handles))
	bvh.buildRange(w, handles, 0, len(handles))
}

// buildRange builds the subtree for handles[start:end] and returns its node index.
// It sorts the range in place.
func (bvh *BVH) buildRange(w *World, handles []Handle, start, end int) int {
	box := core.EmptyAABB
	for _, h := range handles[start:end] {
		box = core.NewAABBUnion(box, w.BoundingBox(h))
	}

	index := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{box: box})

	span := end - start
	switch span {
	case 1:
		bvh.nodes[index].leaf = true
		bvh.nodes[index].left = int(handles[start])
		bvh.nodes[index].right = int(handles[start])
	case 2:
		bvh.nodes[index].leaf = true
		bvh.nodes[index].left = int(handles[start])
		bvh.nodes[index].right = int(handles[start+1])
	default:
		axis := box.LongestAxis()
		section := handles[start:end]
		sort.Slice(section, func(i, j int) bool {
			return w.BoundingBox(section[i]).Axis(axis).Min < w.BoundingBox(section[j]).Axis(axis).Min
		})

		mid := start + span/2
		left := bvh.buildRange(w, handles, start, mid)
		right := bvh.buildRange(w, handles, mid, end)
		bvh.nodes[index].left = left
		bvh.nodes[index].right = right
	}

	return index
}

// Hit returns the nearest intersection with any member surface
func (bvh *BVH) Hit(w *World, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	if len(bvh.nodes) == 0 {
		return material.HitRecord{}, false
	}
	return bvh.hitNode(w, 0, ray, rayT, sampler)
}

// hitNode tests the left side first and searches the right side only up to the left hit
func (bvh *BVH) hitNode(w *World, index int, ray core.Ray, rayT core.Interval, sampler core.Sampler) (material.HitRecord, bool) {
	node := &bvh.nodes[index]
	if !node.box.Hit(ray, rayT) {
		return material.HitRecord{}, false
	}

	var leftHit, rightHit material.HitRecord
	var hitLeft, hitRight bool
	if node.leaf {
		leftHit, hitLeft = w.Hit(Handle(node.left), ray, rayT, sampler)
	} else {
		leftHit, hitLeft = bvh.hitNode(w, node.left, ray, rayT, sampler)
	}

	upper := rayT.Max
	if hitLeft {
		upper = leftHit.T
	}
	remaining := core.NewInterval(rayT.Min, upper)

	if node.leaf {
		// A duplicated slot would sample media twice
		if node.right == node.left {
			return leftHit, hitLeft
		}
		rightHit, hitRight = w.Hit(Handle(node.right), ray, remaining, sampler)
	} else {
		rightHit, hitRight = bvh.hitNode(w, node.right, ray, remaining, sampler)
	}

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the root box, or EmptyAABB for an empty BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if len(bvh.nodes) == 0 {
		return core.EmptyAABB
	}
	return bvh.nodes[0].box
}

// Len returns the number of member surfaces
func (bvh *BVH) Len() int {
	return len(bvh.members)
}
