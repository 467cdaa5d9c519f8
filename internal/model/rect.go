// Package model defines the value records shared by the packing engine and
// its import/export collaborators: rectangles, placements, bin layouts, and
// the packing configuration.
package model

import "github.com/google/uuid"

// Rect is an axis-aligned rectangle waiting to be packed. The ID identifies
// the rectangle in exports and previews; it does not have to be unique (the
// same id may appear on several copies of a duplicated part).
type Rect struct {
	ID     string  `json:"id"`
	Label  string  `json:"label,omitempty"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle with a fresh short id.
func NewRect(label string, width, height float64) Rect {
	return Rect{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  width,
		Height: height,
	}
}

// Area returns width times height.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}
