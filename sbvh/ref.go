package sbvh

import "github.com/achilleasa/go-sbvh/types"

// ref is the atomic unit the builder partitions: a triangle index paired
// with a (possibly clipped) bounding box. Multiple refs may carry the
// same id after a spatial split duplicates a straddling triangle across
// both children; their boxes are then disjoint (or nearly so, per the
// unsplit heuristic in applySpatialSplit).
type ref struct {
	id uint32
	bb types.BBox
}

// centroid returns bb.Min[axis] + bb.Max[axis] (twice the true centroid,
// which is enough for the strict ordering the sort needs and avoids a
// division on the hot path).
func (r ref) centroid(axis Axis) float32 {
	return r.bb.Min[axis] + r.bb.Max[axis]
}
