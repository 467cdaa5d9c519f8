// Package export writes packing results to interchange and shop-floor
// formats: JSON documents, PDF layout sheets, QR label sheets, and DXF
// outlines.
package export

import (
	"encoding/json"
	"os"

	"github.com/piwi3910/BinForm/internal/model"
)

// Document is the persisted interchange form of a packing run. Field names
// and nesting are stable: existing consumers parse exactly this shape.
type Document struct {
	Bin       BinSpec         `json:"bin"`
	Algo      string          `json:"algo"`
	Bins      []BinDocument   `json:"bins"`
	Remaining []RemainingRect `json:"remaining"`
}

// BinSpec echoes the bin geometry and spacing the run was packed with.
type BinSpec struct {
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	InnerMargin float64 `json:"inner_margin"`
	EdgeMargin  float64 `json:"edge_margin"`
	Kerf        float64 `json:"kerf"`
}

// BinDocument is one packed bin.
type BinDocument struct {
	Fill       float64         `json:"fill"`
	Placements []PlacementSpec `json:"placements"`
}

// PlacementSpec is a placement in draw coordinates: spacing inflation
// removed, edge margin applied.
type PlacementSpec struct {
	ID      string  `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	W       float64 `json:"w"`
	H       float64 `json:"h"`
	Rotated bool    `json:"rotated"`
}

// RemainingRect is an unplaced rectangle in its original units.
type RemainingRect struct {
	ID     string  `json:"id"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// BuildDocument assembles the interchange document for a result.
func BuildDocument(cfg model.Config, result model.PackResult) Document {
	doc := Document{
		Bin: BinSpec{
			Width:       cfg.BinWidth,
			Height:      cfg.BinHeight,
			InnerMargin: cfg.InnerMargin,
			EdgeMargin:  cfg.EdgeMargin,
			Kerf:        cfg.Kerf,
		},
		Algo:      string(cfg.Algorithm),
		Bins:      make([]BinDocument, 0, len(result.Bins)),
		Remaining: make([]RemainingRect, 0, len(result.Remaining)),
	}

	for _, b := range result.Bins {
		bd := BinDocument{Fill: b.Fill, Placements: make([]PlacementSpec, 0, len(b.Placements))}
		for _, p := range b.Placements {
			bd.Placements = append(bd.Placements, PlacementSpec{
				ID:      p.ID,
				X:       p.DrawX,
				Y:       p.DrawY,
				W:       p.DrawW,
				H:       p.DrawH,
				Rotated: p.Rotated,
			})
		}
		doc.Bins = append(doc.Bins, bd)
	}
	for _, r := range result.Remaining {
		doc.Remaining = append(doc.Remaining, RemainingRect{ID: r.ID, Width: r.Width, Height: r.Height})
	}
	return doc
}

// WriteJSON writes the interchange document for a result to path.
func WriteJSON(path string, cfg model.Config, result model.PackResult) error {
	data, err := json.MarshalIndent(BuildDocument(cfg, result), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
