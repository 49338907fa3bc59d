package sbvh

import "github.com/achilleasa/go-sbvh/types"

// node is a working record for one candidate child while it lives on the
// stack or inside a multiNode. refs is always a view into an arena
// buffer; the node never owns memory itself.
type node struct {
	refs   []ref
	bbox   types.BBox
	cost   float32
	tested bool
}

func newNode(refs []ref, bbox types.BBox, cost CostFn) node {
	return node{
		refs: refs,
		bbox: bbox,
		cost: cost.LeafCost(len(refs), bbox.HalfArea()),
	}
}

func (n node) refCount() int {
	return len(n.refs)
}
