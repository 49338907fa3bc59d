package sbvh

import "github.com/achilleasa/go-sbvh/types"

// arena owns every reference buffer allocated during a single build plus
// the rightBBs scratch buffer reused by every sweep. Spatial splits can
// *duplicate* references, so buffers must be able to grow past the
// input triangle count. Go's GC makes an explicit free unnecessary; the
// arena's job here is solely to track how many references have been
// allocated so the builder can fall back to object splits only once
// growth passes a budget.
type arena struct {
	rightBBs  []types.BBox
	totalRefs int
	budget    int
}

// refBudgetMultiplier bounds total live references to this multiple of
// the input triangle count before the builder starts refusing spatial
// splits that would duplicate references.
const refBudgetMultiplier = 4

func newArena(triCount, spatialBins int) *arena {
	scratchSize := spatialBins
	if triCount > scratchSize {
		scratchSize = triCount
	}
	budget := triCount * refBudgetMultiplier
	if budget < triCount {
		budget = triCount
	}
	return &arena{
		rightBBs: make([]types.BBox, scratchSize),
		budget:   budget,
	}
}

// allocRefs returns a fresh, zeroed buffer of n refs and accounts for it
// against the arena's budget.
func (a *arena) allocRefs(n int) []ref {
	a.totalRefs += n
	return make([]ref, n)
}

// overBudget reports whether the arena has already handed out more
// references than the configured budget allows. Once true, the builder
// stops attempting spatial splits (which can only grow the reference
// count further) and continues with object splits only.
func (a *arena) overBudget() bool {
	return a.totalRefs > a.budget
}
