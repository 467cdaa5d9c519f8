package engine

import "github.com/piwi3910/BinForm/internal/model"

// bottomLeftBin places each rectangle at the lowest, then leftmost, feasible
// position. It keeps no auxiliary free-space structure; every insert re-scans
// the placements made so far.
type bottomLeftBin struct {
	width, height float64
	allowRotate   bool
	placed        []model.Placement
}

func newBottomLeftBin(width, height float64, allowRotate bool) *bottomLeftBin {
	return &bottomLeftBin{width: width, height: height, allowRotate: allowRotate}
}

func (b *bottomLeftBin) insert(r model.Rect) (model.Placement, bool) {
	var best model.Placement
	found := false

	orientations := []bool{false}
	if b.allowRotate {
		orientations = append(orientations, true)
	}
	for _, rotated := range orientations {
		w, h := r.Width, r.Height
		if rotated {
			w, h = h, w
		}
		for _, x := range b.candidateXs(w) {
			y, ok := b.lowestY(x, w, h)
			if !ok {
				continue
			}
			if !found || y < best.Y-eps || (y < best.Y+eps && x < best.X-eps) {
				best = model.Placement{ID: r.ID, X: x, Y: y, W: w, H: h, Rotated: rotated}
				found = true
			}
		}
	}
	if found {
		b.placed = append(b.placed, best)
	}
	return best, found
}

// candidateXs returns the x positions worth testing: the left wall plus the
// left and right edge of every placement, filtered to those keeping a
// rectangle of width w inside the working area.
func (b *bottomLeftBin) candidateXs(w float64) []float64 {
	xs := make([]float64, 0, 2*len(b.placed)+1)
	xs = append(xs, 0)
	for _, p := range b.placed {
		xs = append(xs, p.X, p.X+p.W)
	}
	fit := xs[:0]
	for _, x := range xs {
		if x+w <= b.width+eps {
			fit = append(fit, x)
		}
	}
	return fit
}

// lowestY finds the smallest y at which a w x h rectangle in column x clears
// every placement, jumping to a blocker's top edge on each collision until
// the working height runs out.
func (b *bottomLeftBin) lowestY(x, w, h float64) (float64, bool) {
	y := 0.0
	for y+h <= b.height+eps {
		blocked := false
		for _, p := range b.placed {
			if x+w <= p.X+eps || x >= p.X+p.W-eps ||
				y+h <= p.Y+eps || y >= p.Y+p.H-eps {
				continue
			}
			y = p.Y + p.H
			blocked = true
			break
		}
		if !blocked {
			return y, true
		}
	}
	return 0, false
}
