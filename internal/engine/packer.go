// Package engine implements the 2D bin-packing core: three free-space
// placement heuristics (MaxRects, Bottom-Left, Skyline), the spacing
// transform for kerf and margins, and single- and multi-bin orchestration.
package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/BinForm/internal/model"
)

// eps is the shared tolerance for geometric comparisons. Coordinates closer
// than this are treated as equal across all engines and the pruning/merging
// passes.
const eps = 1e-9

// binPacker is the single capability every placement engine provides: try to
// place one rectangle, report the placement or failure. Engines are stateful
// and live for exactly one bin.
type binPacker interface {
	insert(r model.Rect) (model.Placement, bool)
}

// newBinPacker builds the engine selected by the configuration, sized to the
// working area (bin minus edge margins). Config is assumed valid.
func newBinPacker(cfg model.Config) binPacker {
	w := math.Max(0, cfg.BinWidth-2*cfg.EdgeMargin)
	h := math.Max(0, cfg.BinHeight-2*cfg.EdgeMargin)
	switch cfg.Algorithm {
	case model.AlgorithmMaxRectsBSSF:
		return newMaxRectsBin(w, h, cfg.AllowRotate, bestShortSideFit)
	case model.AlgorithmMaxRectsBAF:
		return newMaxRectsBin(w, h, cfg.AllowRotate, bestAreaFit)
	case model.AlgorithmBottomLeft:
		return newBottomLeftBin(w, h, cfg.AllowRotate)
	default:
		return newSkylineBin(w, h, cfg.AllowRotate)
	}
}

// PackSingleBin packs as many rectangles as possible into one bin. It returns
// the placements with draw coordinates filled in, plus the rectangles that
// did not fit, restored to their original dimensions.
func PackSingleBin(cfg model.Config, rects []model.Rect) ([]model.Placement, []model.Rect, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	placed, rest := packBin(cfg, rects)
	return placed, rest, nil
}

// packBin runs one bin worth of placement. Config is assumed valid.
func packBin(cfg model.Config, rects []model.Rect) ([]model.Placement, []model.Rect) {
	s := spacingPerSide(cfg.InnerMargin, cfg.Kerf)
	working := inflate(rects, s)

	// Largest first: placing big parts early keeps fragmentation down.
	sort.SliceStable(working, func(i, j int) bool {
		return working[i].Area() > working[j].Area()
	})

	packer := newBinPacker(cfg)
	var placed []model.Placement
	var failed []model.Rect

	for _, r := range working {
		p, ok := packer.insert(r)
		if !ok {
			failed = append(failed, r)
			continue
		}
		setDrawRect(&p, s, cfg.EdgeMargin)
		placed = append(placed, p)
	}

	if cfg.Algorithm.IsMaxRects() {
		placed, failed = postFill(packer, placed, failed, s, cfg.EdgeMargin)
	}

	var remaining []model.Rect
	for _, r := range failed {
		remaining = append(remaining, deflate(r, s))
	}
	return placed, remaining
}

// postFill retries the leftovers against the same engine, smallest first;
// small parts are the likeliest to fit residual free nodes. Rounds repeat
// until one places nothing, which is the fixed point.
func postFill(packer binPacker, placed []model.Placement, failed []model.Rect, s, edgeMargin float64) ([]model.Placement, []model.Rect) {
	for changed := true; changed; {
		changed = false
		sort.SliceStable(failed, func(i, j int) bool {
			return failed[i].Area() < failed[j].Area()
		})
		var still []model.Rect
		for _, r := range failed {
			p, ok := packer.insert(r)
			if !ok {
				still = append(still, r)
				continue
			}
			setDrawRect(&p, s, edgeMargin)
			placed = append(placed, p)
			changed = true
		}
		failed = still
	}
	return placed, failed
}
