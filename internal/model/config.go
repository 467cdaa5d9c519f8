package model

import (
	"errors"
	"fmt"
)

// Algorithm selects the placement heuristic used to fill a bin.
type Algorithm string

const (
	AlgorithmMaxRectsBSSF Algorithm = "maxrects-bssf" // maximal rectangles, best short-side fit
	AlgorithmMaxRectsBAF  Algorithm = "maxrects-baf"  // maximal rectangles, best area fit
	AlgorithmBottomLeft   Algorithm = "bottom-left"   // lowest-then-leftmost scan
	AlgorithmSkyline      Algorithm = "skyline-bl"    // skyline profile, bottom-left placement
)

// Algorithms returns every supported placement heuristic, in display order.
func Algorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMaxRectsBSSF,
		AlgorithmMaxRectsBAF,
		AlgorithmBottomLeft,
		AlgorithmSkyline,
	}
}

// Valid reports whether a is one of the supported algorithms.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmMaxRectsBSSF, AlgorithmMaxRectsBAF, AlgorithmBottomLeft, AlgorithmSkyline:
		return true
	}
	return false
}

// IsMaxRects reports whether the algorithm maintains a free-rectangle list.
// Only these variants get the post-fill retry pass.
func (a Algorithm) IsMaxRects() bool {
	return a == AlgorithmMaxRectsBSSF || a == AlgorithmMaxRectsBAF
}

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the bin geometry, spacing parameters, and packing options for
// one run. All dimensions share a unit (typically mm).
type Config struct {
	BinWidth    float64   `json:"bin_width"`
	BinHeight   float64   `json:"bin_height"`
	InnerMargin float64   `json:"inner_margin"` // gap kept around each part, per side
	EdgeMargin  float64   `json:"edge_margin"`  // trim from the bin border, not packable
	Kerf        float64   `json:"kerf"`         // material removed by the cutting tool
	AllowRotate bool      `json:"allow_rotate"` // permit 90 degree rotation
	Algorithm   Algorithm `json:"algorithm"`
	MaxBins     int       `json:"max_bins"` // 0 = unlimited
	Seed        int64     `json:"seed"`     // shuffle seed for multi-bin rounds
}

// DefaultConfig returns the configuration new projects start from.
func DefaultConfig() Config {
	return Config{
		BinWidth:    500,
		BinHeight:   300,
		InnerMargin: 1,
		EdgeMargin:  0,
		Kerf:        0,
		AllowRotate: true,
		Algorithm:   AlgorithmMaxRectsBAF,
		MaxBins:     0,
		Seed:        42,
	}
}

// Validate rejects configurations no packing attempt should run with.
// Invalid values are reported, never silently clamped.
func (c Config) Validate() error {
	if c.BinWidth <= 0 || c.BinHeight <= 0 {
		return fmt.Errorf("%w: bin dimensions must be positive, got %g x %g",
			ErrInvalidConfig, c.BinWidth, c.BinHeight)
	}
	if c.InnerMargin < 0 {
		return fmt.Errorf("%w: inner margin must not be negative, got %g", ErrInvalidConfig, c.InnerMargin)
	}
	if c.EdgeMargin < 0 {
		return fmt.Errorf("%w: edge margin must not be negative, got %g", ErrInvalidConfig, c.EdgeMargin)
	}
	if c.Kerf < 0 {
		return fmt.Errorf("%w: kerf must not be negative, got %g", ErrInvalidConfig, c.Kerf)
	}
	if c.MaxBins < 0 {
		return fmt.Errorf("%w: max bins must not be negative, got %d", ErrInvalidConfig, c.MaxBins)
	}
	if !c.Algorithm.Valid() {
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, c.Algorithm)
	}
	return nil
}
