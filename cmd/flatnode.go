package cmd

import "github.com/achilleasa/go-sbvh/types"

// FlatNode is the CLI's own minimal in-memory tree representation, built
// by wiring sbvh.NodeSink/sbvh.LeafSink into flatEncoder. Children are
// kept as a plain index slice instead of packed left/right offsets,
// since a build may emit up to Config.N children per node.
type FlatNode struct {
	Min, Max types.Vec3

	// Children holds indices into the encoder's node slice. Empty for
	// leaves.
	Children []int

	// FirstRef/RefCount address a run inside the encoder's ref pool.
	// Only meaningful for leaves (len(Children) == 0).
	FirstRef int
	RefCount int
}

// flatEncoder turns the DFS pre-order stream of NodeSink/LeafSink calls
// into a FlatNode tree. It works because the builder always finishes
// emitting one stack entry (node or leaf) completely before the next
// call arrives, so a LIFO of "which flat index does the next call belong
// under" mirrors the builder's own work stack exactly.
type flatEncoder struct {
	nodes   []FlatNode
	refs    []uint32
	pending []int
}

func newFlatEncoder() *flatEncoder {
	return &flatEncoder{pending: []int{-1}}
}

func (e *flatEncoder) popPending() int {
	n := len(e.pending) - 1
	p := e.pending[n]
	e.pending = e.pending[:n]
	return p
}

func (e *flatEncoder) reserve(bbox types.BBox, parent int) int {
	idx := len(e.nodes)
	e.nodes = append(e.nodes, FlatNode{Min: bbox.Min, Max: bbox.Max})
	if parent >= 0 {
		e.nodes[parent].Children = append(e.nodes[parent].Children, idx)
	}
	return idx
}

func (e *flatEncoder) nodeSink(bbox types.BBox, childCount int, childBBox func(int) types.BBox) {
	idx := e.reserve(bbox, e.popPending())
	for i := 0; i < childCount; i++ {
		e.pending = append(e.pending, idx)
	}
}

func (e *flatEncoder) leafSink(bbox types.BBox, refCount int, refID func(int) uint32) {
	idx := e.reserve(bbox, e.popPending())
	e.nodes[idx].FirstRef = len(e.refs)
	e.nodes[idx].RefCount = refCount
	for i := 0; i < refCount; i++ {
		e.refs = append(e.refs, refID(i))
	}
}
