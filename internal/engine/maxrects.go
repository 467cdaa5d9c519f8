package engine

import (
	"math"

	"github.com/piwi3910/BinForm/internal/model"
)

// scoreMode selects how candidate free rectangles are ranked.
type scoreMode int

const (
	bestShortSideFit scoreMode = iota // smallest leftover on the short side wins
	bestAreaFit                       // smallest leftover area wins
)

// freeNode is one maximal free rectangle. After every placement the union of
// all free nodes equals the working area minus the union of placements, and
// no node is strictly contained in another.
type freeNode struct {
	x, y, w, h float64
}

// maxRectsBin tracks free space as an explicit list of maximal rectangles.
type maxRectsBin struct {
	width, height float64
	allowRotate   bool
	mode          scoreMode
	free          []freeNode
	used          []model.Placement
}

func newMaxRectsBin(width, height float64, allowRotate bool, mode scoreMode) *maxRectsBin {
	return &maxRectsBin{
		width:       width,
		height:      height,
		allowRotate: allowRotate,
		mode:        mode,
		free:        []freeNode{{0, 0, width, height}},
	}
}

func (b *maxRectsBin) insert(r model.Rect) (model.Placement, bool) {
	p, ok := b.findBest(r.Width, r.Height, false)
	if !ok && b.allowRotate {
		p, ok = b.findBest(r.Height, r.Width, true)
	}
	if !ok {
		return model.Placement{}, false
	}
	p.ID = r.ID
	b.place(p)
	return p, true
}

// findBest scans the free list for the lowest-scoring node that fits a w x h
// rectangle. Scores compare lexicographically (primary, then secondary).
func (b *maxRectsBin) findBest(w, h float64, rotated bool) (model.Placement, bool) {
	bestPrimary := math.Inf(1)
	bestSecondary := math.Inf(1)
	var best model.Placement
	found := false

	for _, fr := range b.free {
		if w > fr.w+eps || h > fr.h+eps {
			continue
		}
		dw, dh := fr.w-w, fr.h-h
		var primary, secondary float64
		if b.mode == bestAreaFit {
			primary = fr.w*fr.h - w*h
			secondary = math.Abs(dw - dh)
		} else {
			primary = math.Min(dw, dh)
			secondary = math.Max(dw, dh)
		}
		if primary < bestPrimary-eps ||
			(primary < bestPrimary+eps && secondary < bestSecondary-eps) {
			bestPrimary, bestSecondary = primary, secondary
			best = model.Placement{X: fr.x, Y: fr.y, W: w, H: h, Rotated: rotated}
			found = true
		}
	}
	return best, found
}

// place commits a placement: every free node overlapping it is replaced by
// its residual strips, then contained nodes are pruned away.
func (b *maxRectsBin) place(p model.Placement) {
	next := make([]freeNode, 0, len(b.free)+3)
	for _, fr := range b.free {
		if !overlapsNode(p, fr) {
			next = append(next, fr)
			continue
		}
		next = append(next, splitNode(fr, p)...)
	}
	b.free = pruneContained(next)
	b.used = append(b.used, p)
}

// overlapsNode reports whether the placement and node share interior area.
// Touching edges do not count.
func overlapsNode(p model.Placement, n freeNode) bool {
	return p.X < n.x+n.w-eps && p.X+p.W > n.x+eps &&
		p.Y < n.y+n.h-eps && p.Y+p.H > n.y+eps
}

// splitNode carves p out of free, returning the up-to-four residual strips
// with positive area. Each strip keeps the node's full extent on its long
// axis, which is what keeps the free rectangles maximal.
func splitNode(free freeNode, p model.Placement) []freeNode {
	var out []freeNode
	if p.X > free.x+eps {
		out = append(out, freeNode{free.x, free.y, p.X - free.x, free.h})
	}
	if p.X+p.W < free.x+free.w-eps {
		out = append(out, freeNode{p.X + p.W, free.y, free.x + free.w - (p.X + p.W), free.h})
	}
	if p.Y > free.y+eps {
		out = append(out, freeNode{free.x, free.y, free.w, p.Y - free.y})
	}
	if p.Y+p.H < free.y+free.h-eps {
		out = append(out, freeNode{free.x, p.Y + p.H, free.w, free.y + free.h - (p.Y + p.H)})
	}
	return out
}

// pruneContained drops every node fully contained in another, keeping the
// free list bounded. Of two identical nodes the first survives.
func pruneContained(nodes []freeNode) []freeNode {
	if len(nodes) <= 1 {
		return nodes
	}
	kept := make([]freeNode, 0, len(nodes))
	for i, a := range nodes {
		contained := false
		for j, other := range nodes {
			if i == j || !containsNode(other, a) {
				continue
			}
			if containsNode(a, other) && j > i {
				continue // identical twin later in the list; keep this one
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

// containsNode reports whether outer fully contains inner.
func containsNode(outer, inner freeNode) bool {
	return outer.x <= inner.x+eps && outer.y <= inner.y+eps &&
		outer.x+outer.w >= inner.x+inner.w-eps &&
		outer.y+outer.h >= inner.y+inner.h-eps
}
