package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/BinForm/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() (model.Config, model.PackResult) {
	cfg := model.Config{
		BinWidth:    100,
		BinHeight:   100,
		InnerMargin: 1,
		Kerf:        2,
		AllowRotate: true,
		Algorithm:   model.AlgorithmMaxRectsBAF,
	}
	result := model.PackResult{
		Bins: []model.BinLayout{
			{
				Fill: 25,
				Placements: []model.Placement{
					{
						ID: "a", X: 0, Y: 0, W: 54, H: 54, Rotated: true,
						DrawX: 2, DrawY: 2, DrawW: 50, DrawH: 50,
					},
				},
			},
		},
		Remaining: []model.Rect{{ID: "b", Width: 200, Height: 10}},
	}
	return cfg, result
}

func TestBuildDocumentUsesDrawCoordinates(t *testing.T) {
	cfg, result := sampleResult()
	doc := BuildDocument(cfg, result)

	assert.Equal(t, 100.0, doc.Bin.Width)
	assert.Equal(t, 1.0, doc.Bin.InnerMargin)
	assert.Equal(t, 2.0, doc.Bin.Kerf)
	assert.Equal(t, "maxrects-baf", doc.Algo)

	require.Len(t, doc.Bins, 1)
	assert.Equal(t, 25.0, doc.Bins[0].Fill)
	require.Len(t, doc.Bins[0].Placements, 1)

	p := doc.Bins[0].Placements[0]
	assert.Equal(t, "a", p.ID)
	assert.Equal(t, 2.0, p.X)
	assert.Equal(t, 2.0, p.Y)
	assert.Equal(t, 50.0, p.W)
	assert.Equal(t, 50.0, p.H)
	assert.True(t, p.Rotated)

	require.Len(t, doc.Remaining, 1)
	assert.Equal(t, "b", doc.Remaining[0].ID)
	assert.Equal(t, 200.0, doc.Remaining[0].Width)
}

func TestBuildDocumentEmptyResultHasEmptyArrays(t *testing.T) {
	cfg, _ := sampleResult()
	doc := BuildDocument(cfg, model.PackResult{})
	// Consumers expect [] in the JSON, never null.
	assert.NotNil(t, doc.Bins)
	assert.NotNil(t, doc.Remaining)
	assert.Empty(t, doc.Bins)
	assert.Empty(t, doc.Remaining)
}

func TestWriteJSONFieldNames(t *testing.T) {
	cfg, result := sampleResult()
	path := filepath.Join(t.TempDir(), "layout.json")
	require.NoError(t, WriteJSON(path, cfg, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "bin")
	assert.Contains(t, raw, "algo")
	assert.Contains(t, raw, "bins")
	assert.Contains(t, raw, "remaining")

	bin := raw["bin"].(map[string]any)
	assert.Contains(t, bin, "width")
	assert.Contains(t, bin, "inner_margin")
	assert.Contains(t, bin, "edge_margin")
	assert.Contains(t, bin, "kerf")

	bins := raw["bins"].([]any)
	require.Len(t, bins, 1)
	first := bins[0].(map[string]any)
	assert.Contains(t, first, "fill")
	placements := first["placements"].([]any)
	require.Len(t, placements, 1)
	p := placements[0].(map[string]any)
	for _, key := range []string{"id", "x", "y", "w", "h", "rotated"} {
		assert.Contains(t, p, key)
	}
}
