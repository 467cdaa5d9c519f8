package engine

import (
	"math"

	"github.com/piwi3910/BinForm/internal/model"
)

// skySegment is one horizontal run of the skyline profile: it spans
// [x, x+w) at height y.
type skySegment struct {
	x, y, w float64
}

// skylineBin tracks the packed region as an ordered segment list that always
// partitions [0, width): ascending x, widths summing to the bin width, and no
// two adjacent segments at equal height.
type skylineBin struct {
	width, height float64
	allowRotate   bool
	sky           []skySegment
	placed        []model.Placement
}

func newSkylineBin(width, height float64, allowRotate bool) *skylineBin {
	return &skylineBin{
		width:       width,
		height:      height,
		allowRotate: allowRotate,
		sky:         []skySegment{{0, 0, width}},
	}
}

func (b *skylineBin) insert(r model.Rect) (model.Placement, bool) {
	type fit struct {
		idx     int
		x, y    float64
		w, h    float64
		rotated bool
	}
	var best fit
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
		idx, x, y, ok := b.findPosition(w)
		if !ok || y+h > b.height+eps {
			continue
		}
		if !found || y < best.y-eps || (y < best.y+eps && x < best.x-eps) {
			best = fit{idx: idx, x: x, y: y, w: w, h: h, rotated: rotated}
			found = true
		}
	}
	if !found {
		return model.Placement{}, false
	}

	b.addLevel(best.idx, best.x, best.y, best.w, best.h)
	p := model.Placement{ID: r.ID, X: best.x, Y: best.y, W: best.w, H: best.h, Rotated: best.rotated}
	b.placed = append(b.placed, p)
	return p, true
}

// findPosition returns the segment index and resting position giving the
// lowest top edge for a rectangle of the given width, leftmost on ties.
func (b *skylineBin) findPosition(w float64) (int, float64, float64, bool) {
	bestIdx := -1
	bestX := 0.0
	bestY := math.Inf(1)
	for i, s := range b.sky {
		if s.w+eps < w {
			continue
		}
		y := b.heightOver(i, s.x, w)
		if y < bestY-eps || (y < bestY+eps && s.x < bestX-eps) {
			bestIdx, bestX, bestY = i, s.x, y
		}
	}
	if bestIdx < 0 {
		return 0, 0, 0, false
	}
	return bestIdx, bestX, bestY, true
}

// heightOver walks forward from segment idx and returns the maximum height a
// rectangle of width w starting at x would rest on.
func (b *skylineBin) heightOver(idx int, x, w float64) float64 {
	end := x + w
	y := b.sky[idx].y
	cur := x
	for i := idx; i < len(b.sky) && cur < end-eps; i++ {
		s := b.sky[i]
		if s.x+s.w > cur+eps {
			if s.y > y {
				y = s.y
			}
			cur = math.Min(end, s.x+s.w)
		}
	}
	return y
}

// addLevel inserts the new top segment for a placed rectangle and repairs the
// profile: segments under the footprint are shrunk or dropped, then
// equal-height neighbors are merged back together.
func (b *skylineBin) addLevel(idx int, x, y, w, h float64) {
	b.sky = append(b.sky, skySegment{})
	copy(b.sky[idx+1:], b.sky[idx:])
	b.sky[idx] = skySegment{x: x, y: y + h, w: w}

	end := x + w
	for i := idx + 1; i < len(b.sky); {
		s := b.sky[i]
		if s.x >= end-eps {
			break
		}
		overlap := math.Min(s.w, end-s.x)
		if s.w-overlap <= eps {
			b.sky = append(b.sky[:i], b.sky[i+1:]...)
			continue
		}
		b.sky[i] = skySegment{x: s.x + overlap, y: s.y, w: s.w - overlap}
		i++
	}
	b.mergeSegments()
}

// mergeSegments coalesces adjacent segments of equal height so the profile
// stays canonical.
func (b *skylineBin) mergeSegments() {
	for i := 0; i < len(b.sky)-1; {
		a, c := b.sky[i], b.sky[i+1]
		if math.Abs(a.x+a.w-c.x) < eps && math.Abs(a.y-c.y) < eps {
			b.sky[i].w = a.w + c.w
			b.sky = append(b.sky[:i+1], b.sky[i+2:]...)
		} else {
			i++
		}
	}
}
