package sbvh

import "github.com/achilleasa/go-sbvh/types"

// Axis names an axis of the coordinate system.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Tri is a read-only triangle primitive. The builder never mutates the
// input triangle set; every reference it produces is a (Tri index, BBox)
// pair pointing back into this array.
type Tri struct {
	V0, V1, V2 types.Vec3
}

// ComputeBBox returns the tight bounding box of the triangle's three
// vertices.
func (t Tri) ComputeBBox() types.BBox {
	return types.BBox{
		Min: types.MinVec3(t.V0, types.MinVec3(t.V1, t.V2)),
		Max: types.MaxVec3(t.V0, types.MaxVec3(t.V1, t.V2)),
	}
}

// vertex returns the i'th vertex; used to iterate edges uniformly.
func (t Tri) vertex(i int) types.Vec3 {
	switch i {
	case 0:
		return t.V0
	case 1:
		return t.V1
	default:
		return t.V2
	}
}

// ComputeSplit clips the triangle against the plane x[axis] == plane and
// returns the tight bounding boxes of the two pieces: the part with
// x[axis] <= plane and the part with x[axis] >= plane. Vertices exactly
// on the plane contribute to both. Edges crossing the plane contribute
// their exact intersection point to both boxes, so the split is exact,
// not an approximation from vertex classification alone.
func (t Tri) ComputeSplit(axis Axis, plane float32) (left, right types.BBox) {
	left = types.EmptyBBox()
	right = types.EmptyBBox()

	var onLeft [3]bool
	for i := 0; i < 3; i++ {
		v := t.vertex(i)
		onLeft[i] = v[axis] <= plane
		if onLeft[i] {
			left = left.ExtendPoint(v)
		}
		if v[axis] >= plane {
			right = right.ExtendPoint(v)
		}
	}

	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		if onLeft[i] == onLeft[j] {
			continue
		}
		vi, vj := t.vertex(i), t.vertex(j)
		p := clipEdge(axis, plane, vi, vj.Sub(vi))
		left = left.ExtendPoint(p)
		right = right.ExtendPoint(p)
	}

	return left, right
}

// clipEdge returns the point where the edge starting at p with direction
// edge crosses x[axis] == plane.
func clipEdge(axis Axis, plane float32, p, edge types.Vec3) types.Vec3 {
	t := (plane - p[axis]) / edge[axis]
	return p.Add(edge.Mul(t))
}
