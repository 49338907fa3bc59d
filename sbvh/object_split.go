package sbvh

import (
	"sort"

	"github.com/achilleasa/go-sbvh/types"
)

// objectSplit is the SAH-best plane found by sorting references by
// centroid and sweeping once across the sorted order.
type objectSplit struct {
	axis                  Axis
	cost                  float32
	leftBB, rightBB       types.BBox
	leftCount, rightCount int
	found                 bool
}

func newObjectSplit() objectSplit {
	return objectSplit{cost: maxCost}
}

// sortRefsByCentroid orders refs by centroid along axis, breaking ties by
// id so the build stays deterministic across repeated axis sorts of the
// same slice.
func sortRefsByCentroid(refs []ref, axis Axis) {
	sort.Slice(refs, func(i, j int) bool {
		ca := refs[i].centroid(axis)
		cb := refs[j].centroid(axis)
		if ca != cb {
			return ca < cb
		}
		return refs[i].id < refs[j].id
	})
}

// findObjectSplit sorts refs by centroid along axis and sweeps left to
// right, updating split whenever a strictly cheaper partition is found
// (across any axis already tried).
func findObjectSplit(split *objectSplit, axis Axis, refs []ref, cost CostFn, rightBBs []types.BBox) {
	refCount := len(refs)
	if refCount < 2 {
		return
	}

	sortRefsByCentroid(refs, axis)

	// Sweep from the right, accumulating suffix bounding boxes.
	curBB := types.EmptyBBox()
	for i := refCount - 1; i > 0; i-- {
		curBB = curBB.Extend(refs[i].bb)
		rightBBs[i-1] = curBB
	}

	// Sweep from the left and evaluate the SAH cost of every split.
	curBB = types.EmptyBBox()
	for i := 0; i < refCount-1; i++ {
		curBB = curBB.Extend(refs[i].bb)
		c := cost.LeafCost(i+1, curBB.HalfArea()) + cost.LeafCost(refCount-i-1, rightBBs[i].HalfArea())
		if c < split.cost {
			split.axis = axis
			split.cost = c
			split.leftCount = i + 1
			split.rightCount = refCount - i - 1
			split.leftBB = curBB
			split.rightBB = rightBBs[i]
			split.found = true
		}
	}
}

// applyObjectSplit partitions refs in place: sorting by the chosen axis's
// centroid makes the prefix [0, leftCount) the left child and the suffix
// the right child, with no allocation.
func applyObjectSplit(split objectSplit, refs []ref) {
	sortRefsByCentroid(refs, split.axis)
}
