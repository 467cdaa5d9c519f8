package engine

import (
	"math"

	"github.com/piwi3910/BinForm/internal/model"
)

// spacingPerSide converts the gap parameters into the inflation applied to
// each side of a rectangle. Kerf is material removed by the cut, so half of
// it belongs to each neighboring part; adjacent parts end up separated by
// exactly the kerf plus two inner margins.
func spacingPerSide(innerMargin, kerf float64) float64 {
	return innerMargin + kerf/2
}

// inflate grows every rectangle by the spacing on all four sides. The input
// slice is left untouched.
func inflate(rects []model.Rect, s float64) []model.Rect {
	out := make([]model.Rect, len(rects))
	for i, r := range rects {
		r.Width += 2 * s
		r.Height += 2 * s
		out[i] = r
	}
	return out
}

// deflate undoes inflate, recovering the original dimensions exactly.
func deflate(r model.Rect, s float64) model.Rect {
	r.Width -= 2 * s
	r.Height -= 2 * s
	return r
}

// setDrawRect derives the caller-facing rectangle from the packed one:
// spacing inflation removed, edge margin offset applied.
func setDrawRect(p *model.Placement, s, edgeMargin float64) {
	p.DrawX = p.X + s + edgeMargin
	p.DrawY = p.Y + s + edgeMargin
	p.DrawW = math.Max(0, p.W-2*s)
	p.DrawH = math.Max(0, p.H-2*s)
}
