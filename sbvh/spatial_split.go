package sbvh

import "github.com/achilleasa/go-sbvh/types"

// spatialSplit is the best plane found by binned SAH search across a
// candidate axis.
type spatialSplit struct {
	axis     Axis
	cost     float32
	position float32
	found    bool
}

func newSpatialSplit() spatialSplit {
	return spatialSplit{cost: maxCost}
}

// bin is one axis-aligned slab of the binning interval, accumulating the
// bounding box of every reference (or clipped reference piece) that
// falls in it, plus entry/exit counts used to sweep left/right counts
// without rescanning references per candidate plane.
type bin struct {
	bb    types.BBox
	entry int
	exit  int
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// spatialBinning runs one binning pass over [axisMin, axisMax], updating
// split whenever a strictly cheaper boundary is found, and returns the
// index of the best interior boundary this pass found (or -1 if none
// improved on split.cost).
func spatialBinning(bins []bin, split *spatialSplit, tris []Tri, axis Axis, refs []ref, axisMin, axisMax float32, rightBBs []types.BBox, cost CostFn) int {
	numBins := len(bins)
	for i := range bins {
		bins[i] = bin{bb: types.EmptyBBox()}
	}

	binSize := (axisMax - axisMin) / float32(numBins)
	invSize := 1.0 / binSize

	for _, r := range refs {
		firstBin := clampInt(int(invSize*(r.bb.Min[axis]-axisMin)), 0, numBins-1)
		lastBin := clampInt(int(invSize*(r.bb.Max[axis]-axisMin)), 0, numBins-1)

		// Walk the reference through every bin it straddles, clipping
		// it exactly against each interior boundary plane. curBB
		// tracks the portion of the reference still to the right of
		// the current boundary; it is explicitly reassigned from the
		// intersection rather than relying on Overlap to mutate in
		// place.
		curBB := r.bb
		for j := firstBin; j < lastBin; j++ {
			plane := axisMax
			if j < numBins-1 {
				plane = axisMin + float32(j+1)*binSize
			}
			leftPiece, rightPiece := tris[r.id].ComputeSplit(axis, plane)
			bins[j].bb = bins[j].bb.Extend(leftPiece.Overlap(curBB))
			curBB = curBB.Overlap(rightPiece)
		}
		bins[lastBin].bb = bins[lastBin].bb.Extend(curBB)
		bins[firstBin].entry++
		bins[lastBin].exit++
	}

	// Right-prefix bin bounding boxes.
	prefixBB := types.EmptyBBox()
	for i := numBins - 1; i > 0; i-- {
		prefixBB = prefixBB.Extend(bins[i].bb)
		rightBBs[i-1] = prefixBB
	}

	// Sweep from the left, evaluating the SAH cost at every interior
	// boundary.
	leftCount, rightCount := 0, len(refs)
	sweepBB := types.EmptyBBox()
	splitIndex := -1
	for i := 0; i < numBins-1; i++ {
		leftCount += bins[i].entry
		rightCount -= bins[i].exit
		sweepBB = sweepBB.Extend(bins[i].bb)

		c := cost.LeafCost(leftCount, sweepBB.HalfArea()) + cost.LeafCost(rightCount, rightBBs[i].HalfArea())
		if c < split.cost {
			split.axis = axis
			split.cost = c
			split.position = axisMin + float32(i+1)*binSize
			split.found = true
			splitIndex = i
		}
	}
	return splitIndex
}

// findSpatialSplit runs the binning search along axis, then refines the
// plane with additional narrower passes around the best position found
// so far. Later passes only overwrite split when they find a strictly
// cheaper plane, so the result after all axes and passes is the best
// plane seen across the whole search.
func findSpatialSplit(split *spatialSplit, parentBB types.BBox, tris []Tri, axis Axis, refs []ref, numBins, passes int, cost CostFn, rightBBs []types.BBox) {
	axisMin := parentBB.Min[axis]
	axisMax := parentBB.Max[axis]
	if axisMax <= axisMin {
		return
	}

	bins := make([]bin, numBins)
	for n := 0; n < passes; n++ {
		if axisMax <= axisMin {
			break
		}
		splitIndex := spatialBinning(bins, split, tris, axis, refs, axisMin, axisMax, rightBBs, cost)
		if splitIndex < 0 {
			break
		}
		binSize := (axisMax - axisMin) / float32(numBins)
		axisMin = split.position - binSize
		axisMax = split.position + binSize
	}
}
