package sbvh

import "fmt"

// Config bundles every tunable knob of the build algorithm.
// DefaultConfig returns a reasonable set of defaults.
type Config struct {
	// N is the maximum number of children an emitted interior node may
	// have. N == 2 degenerates to binary SBVH construction.
	N int

	// LeafThreshold forces a leaf once a candidate's reference count
	// drops to this value or below.
	LeafThreshold int

	// Alpha controls when the spatial-split search runs: it fires once
	// the best object split still leaves an overlap whose half-area
	// exceeds Alpha * root.HalfArea().
	Alpha float32

	// SpatialBins is the bin count used by each spatial-split search.
	SpatialBins int

	// BinningPasses is the total number of binning passes run per axis
	// (the first pass plus BinningPasses-1 narrowing passes).
	BinningPasses int

	// StackCapacity bounds the depth-first work stack. Once exceeded,
	// the builder falls back to emitting every pending child as a leaf
	// rather than failing the build.
	StackCapacity int

	// Cost is the SAH cost strategy. Defaults to NewDefaultCost().
	Cost CostFn
}

// DefaultConfig returns the standard set of tuning values.
func DefaultConfig() Config {
	return Config{
		N:             2,
		LeafThreshold: 1,
		Alpha:         1e-5,
		SpatialBins:   64,
		BinningPasses: 2,
		StackCapacity: 128,
		Cost:          NewDefaultCost(),
	}
}

// Validate rejects configuration values a caller could plausibly get
// wrong. Everything else in this package treats bad input as a
// precondition violation (a panic); these are the one place where
// mis-configuration is reported as an ordinary error instead, since a
// Config is typically built from CLI flags or a settings file rather
// than computed internally.
func (c Config) Validate() error {
	switch {
	case c.N < 2:
		return fmt.Errorf("sbvh: N must be >= 2, got %d", c.N)
	case c.N > MaxChildren:
		return fmt.Errorf("sbvh: N must be <= %d, got %d", MaxChildren, c.N)
	case c.LeafThreshold < 1:
		return fmt.Errorf("sbvh: LeafThreshold must be >= 1, got %d", c.LeafThreshold)
	case c.Alpha < 0 || c.Alpha > 1:
		return fmt.Errorf("sbvh: Alpha must be in [0,1], got %f", c.Alpha)
	case c.SpatialBins < 16:
		return fmt.Errorf("sbvh: SpatialBins must be >= 16, got %d", c.SpatialBins)
	case c.BinningPasses < 1:
		return fmt.Errorf("sbvh: BinningPasses must be >= 1, got %d", c.BinningPasses)
	case c.StackCapacity < 1:
		return fmt.Errorf("sbvh: StackCapacity must be >= 1, got %d", c.StackCapacity)
	case c.Cost == nil:
		return fmt.Errorf("sbvh: Cost must not be nil")
	}
	return nil
}
