package sbvh

import "github.com/achilleasa/go-sbvh/types"

// applySpatialSplit partitions refs into a left and right child using an
// in-place three-region scan: pure-left references are swapped to the
// front, pure-right references are swapped to the back,
// and every straddler in between is resolved by picking the cheapest of
// unsplit-left, unsplit-right, or duplicate. Only the duplicate case
// forces allocation of a fresh right-child buffer; the left child always
// reuses the incoming slice.
func applySpatialSplit(split spatialSplit, tris []Tri, refs []ref, ar *arena, cost CostFn) (leftRefs []ref, leftBB types.BBox, rightRefs []ref, rightBB types.BBox) {
	refCount := len(refs)
	firstRight := refCount
	curRef := 0
	leftCount := 0

	leftBB = types.EmptyBBox()
	rightBB = types.EmptyBBox()

	for curRef < firstRight {
		r := refs[curRef]
		switch {
		case r.bb.Max[split.axis] <= split.position:
			leftBB = leftBB.Extend(r.bb)
			refs[curRef], refs[leftCount] = refs[leftCount], refs[curRef]
			curRef++
			leftCount++
		case r.bb.Min[split.axis] >= split.position:
			rightBB = rightBB.Extend(r.bb)
			firstRight--
			refs[curRef], refs[firstRight] = refs[firstRight], refs[curRef]
		default:
			curRef++
		}
	}

	rightCount := refCount - firstRight

	var dupRefs []ref
	for leftCount < firstRight {
		r := refs[leftCount]
		leftSplitBB, rightSplitBB := tris[r.id].ComputeSplit(split.axis, split.position)
		leftSplitBB = leftSplitBB.Overlap(r.bb)
		rightSplitBB = rightSplitBB.Overlap(r.bb)

		leftUnsplitBB := leftBB.Extend(r.bb)
		rightUnsplitBB := rightBB.Extend(r.bb)
		leftDupBB := leftBB.Extend(leftSplitBB)
		rightDupBB := rightBB.Extend(rightSplitBB)

		unsplitLeftCost := cost.LeafCost(leftCount+1, leftUnsplitBB.HalfArea()) + cost.LeafCost(rightCount, rightBB.HalfArea())
		unsplitRightCost := cost.LeafCost(leftCount, leftBB.HalfArea()) + cost.LeafCost(rightCount+1, rightUnsplitBB.HalfArea())
		dupCost := cost.LeafCost(leftCount+1, leftDupBB.HalfArea()) + cost.LeafCost(rightCount+1, rightDupBB.HalfArea())

		minCost := min3(unsplitLeftCost, unsplitRightCost, dupCost)

		switch {
		case minCost == unsplitLeftCost:
			leftBB = leftUnsplitBB
			leftCount++
		case minCost == unsplitRightCost:
			rightBB = rightUnsplitBB
			firstRight--
			refs[firstRight], refs[leftCount] = refs[leftCount], refs[firstRight]
			rightCount++
		default:
			leftBB = leftDupBB
			rightBB = rightDupBB
			refs[leftCount].bb = leftSplitBB
			dupRefs = append(dupRefs, ref{id: r.id, bb: rightSplitBB})
			leftCount++
			rightCount++
		}
	}

	if len(dupRefs) == 0 {
		leftRefs = refs[:leftCount]
		rightRefs = refs[firstRight:refCount]
	} else {
		leftRefs = refs[:leftCount]
		rightRefs = ar.allocRefs(rightCount)
		copy(rightRefs[:len(dupRefs)], dupRefs)
		copy(rightRefs[len(dupRefs):], refs[firstRight:refCount])
	}

	if leftCount == 0 || rightCount == 0 || leftBB.IsEmpty() || rightBB.IsEmpty() {
		panic("sbvh: spatial split produced an empty child")
	}

	return leftRefs, leftBB, rightRefs, rightBB
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
