package sbvh

import (
	"math"
	"sort"

	"github.com/achilleasa/go-sbvh/types"
)

// MaxChildren bounds the compile-time array backing a multiNode. An
// array's length must be a Go constant, not a type parameter, so N is a
// runtime Config field bounded by this constant instead.
const MaxChildren = 8

// multiNode is a working group of up to N child candidates being
// greedily expanded before emission.
type multiNode struct {
	nodes [MaxChildren]node
	bbox  types.BBox
	count int
	n     int
}

func newMultiNode(root node, n int) *multiNode {
	mn := &multiNode{
		bbox:  root.bbox,
		count: 1,
		n:     n,
	}
	mn.nodes[0] = root
	return mn
}

func (mn *multiNode) isFull() bool {
	return mn.count == mn.n
}

func (mn *multiNode) isLeaf() bool {
	return mn.count == 1
}

func (mn *multiNode) nodeAvailable() bool {
	for i := 0; i < mn.count; i++ {
		if !mn.nodes[i].tested {
			return true
		}
	}
	return false
}

// nextNode picks the cheapest untested child, ties broken by lowest
// index (the scan below only overwrites on a strictly lower cost, so an
// earlier equal-cost index always wins).
func (mn *multiNode) nextNode() int {
	if mn.n == 2 {
		return 0
	}
	minCost := float32(math.MaxFloat32)
	minIdx := 0
	for i := 0; i < mn.count; i++ {
		if !mn.nodes[i].tested && mn.nodes[i].cost < minCost {
			minIdx = i
			minCost = mn.nodes[i].cost
		}
	}
	return minIdx
}

// splitNode replaces slot i with left and appends right as a new
// candidate slot.
func (mn *multiNode) splitNode(i int, left, right node) {
	mn.nodes[i] = left
	mn.nodes[mn.count] = right
	mn.count++
}

// sortByRefCount orders the live children ascending by reference count,
// so emission pushes the smallest work last and it is popped first,
// leaving the largest remaining subtree deepest in the work stack.
func (mn *multiNode) sortByRefCount() {
	sort.Slice(mn.nodes[:mn.count], func(i, j int) bool {
		return mn.nodes[i].refCount() < mn.nodes[j].refCount()
	})
}
