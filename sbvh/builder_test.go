package sbvh

import (
	"testing"

	"github.com/achilleasa/go-sbvh/types"
)

// countingSinks records every node/leaf call the builder makes so tests
// can assert on call counts and reference coverage without needing a
// real flat-tree encoder.
type countingSinks struct {
	nodeCalls int
	leafCalls int
	nodeChild []int
	leafRefs  [][]uint32
}

func (s *countingSinks) node(bbox types.BBox, childCount int, childBBox func(int) types.BBox) {
	s.nodeCalls++
	s.nodeChild = append(s.nodeChild, childCount)
	for i := 0; i < childCount; i++ {
		_ = childBBox(i)
	}
}

func (s *countingSinks) leaf(bbox types.BBox, refCount int, refID func(int) uint32) {
	s.leafCalls++
	ids := make([]uint32, refCount)
	for i := 0; i < refCount; i++ {
		ids[i] = refID(i)
	}
	s.leafRefs = append(s.leafRefs, ids)
}

func (s *countingSinks) allRefIDs() []uint32 {
	var out []uint32
	for _, ids := range s.leafRefs {
		out = append(out, ids...)
	}
	return out
}

func (s *countingSinks) idCounts() map[uint32]int {
	counts := map[uint32]int{}
	for _, id := range s.allRefIDs() {
		counts[id]++
	}
	return counts
}

func triAt(min types.Vec3, size float32) Tri {
	return Tri{
		V0: min,
		V1: types.XYZ(min[0]+size, min[1], min[2]),
		V2: types.XYZ(min[0], min[1]+size, min[2]),
	}
}

// TestSingleTriangle verifies a single triangle produces exactly one
// leaf call whose bbox matches the triangle and whose refs are [0].
func TestSingleTriangle(t *testing.T) {
	tris := []Tri{triAt(types.XYZ(0, 0, 0), 1)}
	cfg := DefaultConfig()
	cfg.LeafThreshold = 1

	sinks := &countingSinks{}
	stats := Build(tris, cfg, sinks.node, sinks.leaf)

	if sinks.leafCalls != 1 {
		t.Fatalf("expected 1 leaf call, got %d", sinks.leafCalls)
	}
	if sinks.nodeCalls != 0 {
		t.Fatalf("expected 0 node calls, got %d", sinks.nodeCalls)
	}
	if got := sinks.leafRefs[0]; len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected leaf refs [0], got %v", got)
	}
	if stats.Leafs != 1 || stats.Nodes != 0 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

// TestTwoDisjointTriangles verifies two well-separated triangles split
// into a single root node with two leaf children, one triangle each.
func TestTwoDisjointTriangles(t *testing.T) {
	tris := []Tri{
		triAt(types.XYZ(0, 0, 0), 1),
		triAt(types.XYZ(2, 0, 0), 1),
	}
	cfg := DefaultConfig()
	cfg.LeafThreshold = 1

	sinks := &countingSinks{}
	Build(tris, cfg, sinks.node, sinks.leaf)

	if sinks.nodeCalls != 1 {
		t.Fatalf("expected 1 node call, got %d", sinks.nodeCalls)
	}
	if sinks.nodeChild[0] != 2 {
		t.Fatalf("expected root to report 2 children, got %d", sinks.nodeChild[0])
	}
	if sinks.leafCalls != 2 {
		t.Fatalf("expected 2 leaf calls, got %d", sinks.leafCalls)
	}
	counts := sinks.idCounts()
	if counts[0] != 1 || counts[1] != 1 {
		t.Fatalf("expected each triangle to appear exactly once, got %v", counts)
	}
}

// TestLeafThreshold verifies five heavily overlapping triangles with
// LeafThreshold=5 are emitted as a single leaf with no node call at all.
func TestLeafThreshold(t *testing.T) {
	tris := make([]Tri, 5)
	for i := range tris {
		tris[i] = triAt(types.XYZ(0, 0, 0), 1)
	}
	cfg := DefaultConfig()
	cfg.LeafThreshold = 5

	sinks := &countingSinks{}
	Build(tris, cfg, sinks.node, sinks.leaf)

	if sinks.nodeCalls != 0 {
		t.Fatalf("expected 0 node calls, got %d", sinks.nodeCalls)
	}
	if sinks.leafCalls != 1 {
		t.Fatalf("expected 1 leaf call, got %d", sinks.leafCalls)
	}
	if len(sinks.leafRefs[0]) != 5 {
		t.Fatalf("expected leaf to hold all 5 refs, got %d", len(sinks.leafRefs[0]))
	}
}

// TestDegenerateFlatMesh verifies a mesh where every triangle lies on
// z=0, so the root's z extent is zero and no split may pick that axis.
// The build must still complete and cover every triangle exactly once
// (the triangles are disjoint along x, so no object split leaves any
// overlap, the spatial split search never runs, and nothing is
// duplicated).
func TestDegenerateFlatMesh(t *testing.T) {
	const n = 12
	tris := make([]Tri, n)
	for i := 0; i < n; i++ {
		tris[i] = triAt(types.XYZ(float32(i)*2, 0, 0), 1)
	}
	cfg := DefaultConfig()
	cfg.LeafThreshold = 1

	sinks := &countingSinks{}
	Build(tris, cfg, sinks.node, sinks.leaf)

	counts := sinks.idCounts()
	if len(counts) != n {
		t.Fatalf("expected all %d triangles covered, got %d distinct ids", n, len(counts))
	}
	for id, c := range counts {
		if c != 1 {
			t.Fatalf("triangle %d duplicated on a flat mesh: %d occurrences", id, c)
		}
	}
}

// TestTeapotInStadium verifies a dense cluster of small triangles plus
// one triangle spanning [-100,100] on x. With a tiny alpha the spatial
// split search must trigger at least once, observable as a duplicated
// triangle id across leaves; with alpha=1 no spatial split should ever
// look worthwhile and no duplication should occur.
func TestTeapotInStadium(t *testing.T) {
	const clusterSize = 100
	tris := make([]Tri, 0, clusterSize+1)
	for i := 0; i < clusterSize; i++ {
		u := float32(i%10) / 10
		v := float32((i/10)%10) / 10
		tris = append(tris, triAt(types.XYZ(u, v, 0), 0.02))
	}
	tris = append(tris, Tri{
		V0: types.XYZ(-100, 0, 0),
		V1: types.XYZ(100, 0, 0),
		V2: types.XYZ(0, 0.01, 0),
	})

	cfgTight := DefaultConfig()
	cfgTight.Alpha = 1e-5
	sinksTight := &countingSinks{}
	statsTight := Build(tris, cfgTight, sinksTight.node, sinksTight.leaf)
	if statsTight.SpatialSplits == 0 {
		t.Fatalf("expected at least one spatial split with alpha=1e-5")
	}
	if statsTight.TotalRefs <= len(tris) {
		t.Fatalf("expected spatial splits to duplicate references: total refs %d, triangles %d", statsTight.TotalRefs, len(tris))
	}

	cfgLoose := DefaultConfig()
	cfgLoose.Alpha = 1
	sinksLoose := &countingSinks{}
	statsLoose := Build(tris, cfgLoose, sinksLoose.node, sinksLoose.leaf)
	if statsLoose.SpatialSplits != 0 {
		t.Fatalf("expected zero spatial splits with alpha=1, got %d", statsLoose.SpatialSplits)
	}
	if statsLoose.TotalRefs != len(tris) {
		t.Fatalf("expected no duplication with alpha=1: total refs %d, triangles %d", statsLoose.TotalRefs, len(tris))
	}
}

// TestMultiNodeChildCount verifies eight well-separated clusters with
// N=4 produce a root reporting between 2 and 4 children, and every leaf
// triangle remains reachable.
func TestMultiNodeChildCount(t *testing.T) {
	var tris []Tri
	for c := 0; c < 8; c++ {
		base := types.XYZ(float32(c)*10, 0, 0)
		for j := 0; j < 3; j++ {
			offset := types.XYZ(float32(j)*0.1, 0, 0)
			tris = append(tris, triAt(base.Add(offset), 0.5))
		}
	}
	cfg := DefaultConfig()
	cfg.N = 4
	cfg.LeafThreshold = 1

	sinks := &countingSinks{}
	Build(tris, cfg, sinks.node, sinks.leaf)

	if len(sinks.nodeChild) == 0 {
		t.Fatalf("expected at least one node call")
	}
	rootChildren := sinks.nodeChild[0]
	if rootChildren < 2 || rootChildren > 4 {
		t.Fatalf("expected root child count in [2,4], got %d", rootChildren)
	}

	counts := sinks.idCounts()
	if len(counts) != len(tris) {
		t.Fatalf("expected all %d triangles covered, got %d", len(tris), len(counts))
	}
}

// TestBuildPanicsOnEmptyInput checks the documented precondition that
// Build panics rather than returning a zero Stats.
func TestBuildPanicsOnEmptyInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Build to panic on an empty triangle set")
		}
	}()
	Build(nil, DefaultConfig(), func(types.BBox, int, func(int) types.BBox) {}, func(types.BBox, int, func(int) uint32) {})
}

// TestBuildPanicsOnInvalidConfig checks that an un-validated bad config
// is also treated as a precondition violation.
func TestBuildPanicsOnInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Build to panic on an invalid config")
		}
	}()
	cfg := DefaultConfig()
	cfg.N = 1
	Build([]Tri{triAt(types.XYZ(0, 0, 0), 1)}, cfg, func(types.BBox, int, func(int) types.BBox) {}, func(types.BBox, int, func(int) uint32) {})
}
