package model

// Placement is one rectangle placed inside a bin. X/Y/W/H are the packed
// geometry in working-area coordinates, still carrying the spacing inflation.
// The Draw fields are what consumers render and export: spacing removed,
// edge margin applied.
type Placement struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Rotated bool    `json:"rotated"`

	DrawX float64 `json:"draw_x"`
	DrawY float64 `json:"draw_y"`
	DrawW float64 `json:"draw_w"`
	DrawH float64 `json:"draw_h"`
}

// DrawArea returns the area of the draw rectangle.
func (p Placement) DrawArea() float64 {
	return p.DrawW * p.DrawH
}

// BinLayout is one packed bin: its placements and the fill percentage
// (placed draw area over bin area).
type BinLayout struct {
	Placements []Placement `json:"placements"`
	Fill       float64     `json:"fill"`
}

// PackResult is the outcome of a multi-bin run: the bins in packing order and
// whatever could not be placed anywhere, in original (un-inflated) units.
type PackResult struct {
	Bins      []BinLayout `json:"bins"`
	Remaining []Rect      `json:"remaining"`
}

// PlacedCount returns the number of placements across all bins.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, b := range r.Bins {
		n += len(b.Placements)
	}
	return n
}

// TotalFill returns the mean fill percentage across all bins, 0 when no bin
// was used.
func (r PackResult) TotalFill() float64 {
	if len(r.Bins) == 0 {
		return 0
	}
	var sum float64
	for _, b := range r.Bins {
		sum += b.Fill
	}
	return sum / float64(len(r.Bins))
}
