package sbvh

import (
	"time"

	"github.com/achilleasa/go-sbvh/log"
	"github.com/achilleasa/go-sbvh/types"
)

// NodeSink is invoked once per interior node, in DFS pre-order, before
// any of its children are emitted. It must not retain childBBox beyond
// the call.
type NodeSink func(bbox types.BBox, childCount int, childBBox func(i int) types.BBox)

// LeafSink is invoked once per leaf. It must not retain refID beyond the
// call. Triangle ids may repeat across leaves when a spatial split
// duplicated a reference.
type LeafSink func(bbox types.BBox, refCount int, refID func(i int) uint32)

// stackEntry pairs a working node with its depth, purely for the
// MaxDepth statistic — the node type itself carries no depth field.
type stackEntry struct {
	n     node
	depth int
}

type builder struct {
	logger           log.Logger
	tris             []Tri
	cfg              Config
	arena            *arena
	spatialThreshold float32
}

// Build runs the SBVH construction algorithm over tris and reports the
// resulting tree through nodeSink and leafSink. tris must be non-empty
// and cfg must be valid; Build panics otherwise, treating both as
// programmer-error preconditions rather than recoverable failures.
func Build(tris []Tri, cfg Config, nodeSink NodeSink, leafSink LeafSink) Stats {
	if len(tris) == 0 {
		panic("sbvh: Build requires a non-empty triangle set")
	}
	if err := cfg.Validate(); err != nil {
		panic("sbvh: " + err.Error())
	}

	b := &builder{
		logger: log.New("sbvh"),
		tris:   tris,
		cfg:    cfg,
		arena:  newArena(len(tris), cfg.SpatialBins),
	}
	return b.run(nodeSink, leafSink)
}

func (b *builder) run(nodeSink NodeSink, leafSink LeafSink) Stats {
	start := time.Now()

	triCount := len(b.tris)
	initialRefs := b.arena.allocRefs(triCount)
	meshBB := types.EmptyBBox()
	for i, t := range b.tris {
		bb := t.ComputeBBox()
		initialRefs[i] = ref{id: uint32(i), bb: bb}
		meshBB = meshBB.Extend(bb)
	}
	b.spatialThreshold = meshBB.HalfArea() * b.cfg.Alpha

	stats := Stats{InitialRefs: triCount}

	stack := newWorkStack(b.cfg.StackCapacity)
	stack.push(stackEntry{n: newNode(initialRefs, meshBB, b.cfg.Cost)})

	for !stack.isEmpty() {
		entry := stack.pop()
		if entry.depth > stats.MaxDepth {
			stats.MaxDepth = entry.depth
		}

		mn := newMultiNode(entry.n, b.cfg.N)
		b.expand(mn, &stats)
		mn.sortByRefCount()

		if mn.isLeaf() {
			b.emitLeaf(mn.nodes[0], leafSink, &stats)
			continue
		}

		b.emitNode(mn, nodeSink, &stats)

		if stack.hasRoomFor(mn.count) {
			for i := mn.count - 1; i >= 0; i-- {
				stack.push(stackEntry{n: mn.nodes[i], depth: entry.depth + 1})
			}
		} else {
			// Stack is full: emit every pending child directly as a
			// leaf rather than growing past the configured capacity.
			for i := 0; i < mn.count; i++ {
				b.emitLeaf(mn.nodes[i], leafSink, &stats)
			}
		}
	}

	stats.Duration = time.Since(start)
	b.logger.Debugf(
		"BVH tree build time: %d ms, maxDepth: %d, nodes: %d, leafs: %d, refs: %d\n",
		stats.Duration.Nanoseconds()/1e6, stats.MaxDepth, stats.Nodes, stats.Leafs, stats.TotalRefs,
	)
	return stats
}

// expand grows multiNode by repeatedly splitting its cheapest untested
// child until it is full or every remaining child refuses to split.
func (b *builder) expand(mn *multiNode, stats *Stats) {
	for !mn.isFull() && mn.nodeAvailable() {
		idx := mn.nextNode()
		candidate := mn.nodes[idx]
		parentBB := candidate.bbox

		if candidate.refCount() <= b.cfg.LeafThreshold {
			mn.nodes[idx].tested = true
			continue
		}

		objSplit := newObjectSplit()
		for axis := AxisX; axis <= AxisZ; axis++ {
			findObjectSplit(&objSplit, axis, candidate.refs, b.cfg.Cost, b.arena.rightBBs)
		}

		spatSplit := b.trySpatialSplit(parentBB, candidate.refs, objSplit)

		useSpatial := spatSplit.found && spatSplit.cost < objSplit.cost
		splitCost := objSplit.cost
		if useSpatial {
			splitCost = spatSplit.cost
		}

		if splitCost+b.cfg.Cost.TraversalCost(parentBB.HalfArea()) >= candidate.cost {
			mn.nodes[idx].tested = true
			continue
		}

		var left, right node
		if useSpatial {
			leftRefs, leftBB, rightRefs, rightBB := applySpatialSplit(spatSplit, b.tris, candidate.refs, b.arena, b.cfg.Cost)
			left = newNode(leftRefs, leftBB, b.cfg.Cost)
			right = newNode(rightRefs, rightBB, b.cfg.Cost)
			stats.SpatialSplits++
		} else {
			applyObjectSplit(objSplit, candidate.refs)
			leftRefs := candidate.refs[:objSplit.leftCount]
			rightRefs := candidate.refs[objSplit.leftCount:]
			left = newNode(leftRefs, objSplit.leftBB, b.cfg.Cost)
			right = newNode(rightRefs, objSplit.rightBB, b.cfg.Cost)
			stats.ObjectSplits++
		}
		mn.splitNode(idx, left, right)
	}
}

func (b *builder) emitLeaf(n node, leafSink LeafSink, stats *Stats) {
	leafSink(n.bbox, len(n.refs), func(i int) uint32 { return n.refs[i].id })
	stats.Leafs++
	stats.TotalRefs += len(n.refs)
}

func (b *builder) emitNode(mn *multiNode, nodeSink NodeSink, stats *Stats) {
	nodeSink(mn.bbox, mn.count, func(i int) types.BBox { return mn.nodes[i].bbox })
	stats.Nodes++
}

// trySpatialSplit runs the spatial-split search when the object split's
// two children still overlap significantly and the arena has not
// exceeded its duplication budget. It skips axes whose parent extent
// is zero.
func (b *builder) trySpatialSplit(parentBB types.BBox, refs []ref, objSplit objectSplit) spatialSplit {
	spatSplit := newSpatialSplit()
	if !objSplit.found || b.arena.overBudget() {
		return spatSplit
	}

	overlap := objSplit.leftBB.Overlap(objSplit.rightBB)
	if overlap.HalfArea() <= b.spatialThreshold {
		return spatSplit
	}

	for axis := AxisX; axis <= AxisZ; axis++ {
		if parentBB.Extent(int(axis)) == 0 {
			continue
		}
		findSpatialSplit(&spatSplit, parentBB, b.tris, axis, refs, b.cfg.SpatialBins, b.cfg.BinningPasses, b.cfg.Cost, b.arena.rightBBs)
	}
	return spatSplit
}
