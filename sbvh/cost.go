package sbvh

// CostFn is the pluggable SAH cost strategy every split search consults
// to score candidate planes.
//
// Implementations must be pure and total: same inputs, same output, no
// side effects, never negative.
type CostFn interface {
	// LeafCost is the SAH cost of a leaf holding n references with the
	// given half surface area.
	LeafCost(n int, halfArea float32) float32

	// TraversalCost is the SAH cost of visiting an interior node with
	// the given half surface area (excluding its children).
	TraversalCost(halfArea float32) float32
}

// DefaultCost implements the textbook SAH cost model:
// leaf_cost = n * half_area * CIntersect, traversal_cost = half_area *
// CTraverse.
type DefaultCost struct {
	// CIntersect is the relative cost of a single ray/triangle
	// intersection test.
	CIntersect float32

	// CTraverse is the relative cost of descending through one interior
	// node.
	CTraverse float32
}

// NewDefaultCost returns the standard SAH cost model with CIntersect = 1
// and CTraverse = 1, an un-weighted count * area formula.
func NewDefaultCost() DefaultCost {
	return DefaultCost{CIntersect: 1, CTraverse: 1}
}

func (c DefaultCost) LeafCost(n int, halfArea float32) float32 {
	return float32(n) * halfArea * c.CIntersect
}

func (c DefaultCost) TraversalCost(halfArea float32) float32 {
	return halfArea * c.CTraverse
}
