package types

import "math"

// BBox is an axis-aligned bounding box. The teacher tracks bounding
// extents as raw Min/Max Vec3 pairs wherever a bvh node is built
// (scene.BvhNode, bvhSplitCandidate); BBox packages that same pair with
// the extend/overlap/half-area operations the SBVH builder needs on the
// hot path.
type BBox struct {
	Min, Max Vec3
}

// EmptyBBox returns a bounding box that contains no points. Extending it
// with any point or box yields exactly that point or box.
func EmptyBBox() BBox {
	return BBox{
		Min: Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// IsEmpty reports whether the box contains no points.
func (b BBox) IsEmpty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// ExtendPoint grows the box, if needed, to contain p.
func (b BBox) ExtendPoint(p Vec3) BBox {
	return BBox{
		Min: MinVec3(b.Min, p),
		Max: MaxVec3(b.Max, p),
	}
}

// Extend grows the box, if needed, to contain other.
func (b BBox) Extend(other BBox) BBox {
	if other.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return other
	}
	return BBox{
		Min: MinVec3(b.Min, other.Min),
		Max: MaxVec3(b.Max, other.Max),
	}
}

// Overlap returns the intersection of the two boxes. The result is empty
// (IsEmpty() == true) if the boxes do not overlap along some axis.
func (b BBox) Overlap(other BBox) BBox {
	return BBox{
		Min: Vec3{
			max32(b.Min[0], other.Min[0]),
			max32(b.Min[1], other.Min[1]),
			max32(b.Min[2], other.Min[2]),
		},
		Max: Vec3{
			min32(b.Max[0], other.Max[0]),
			min32(b.Max[1], other.Max[1]),
			min32(b.Max[2], other.Max[2]),
		},
	}
}

// HalfArea returns half the surface area of the box: proportional to the
// probability, under a uniform random ray, that the box is hit. Empty
// boxes report zero.
func (b BBox) HalfArea() float32 {
	if b.IsEmpty() {
		return 0
	}
	d := b.Max.Sub(b.Min)
	return d[0]*d[1] + d[1]*d[2] + d[0]*d[2]
}

// Extent returns Max[axis] - Min[axis].
func (b BBox) Extent(axis int) float32 {
	return b.Max[axis] - b.Min[axis]
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
