package export

import (
	"fmt"

	"github.com/piwi3910/BinForm/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// binGap is the horizontal spacing between bins laid side by side in the
// DXF output.
const binGap = 50.0

// WriteDXF writes the packed layout as a DXF drawing: one layer per bin,
// each bin outlined and offset horizontally, every placement drawn as a
// rectangle in draw coordinates.
func WriteDXF(path string, cfg model.Config, result model.PackResult) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	d := dxf.NewDrawing()
	for i, bin := range result.Bins {
		layer := fmt.Sprintf("BIN_%d", i+1)
		if _, err := d.AddLayer(layer, dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
			return fmt.Errorf("layer %s: %w", layer, err)
		}

		offsetX := float64(i) * (cfg.BinWidth + binGap)
		drawRectOutline(d, offsetX, 0, cfg.BinWidth, cfg.BinHeight)
		for _, p := range bin.Placements {
			drawRectOutline(d, offsetX+p.DrawX, p.DrawY, p.DrawW, p.DrawH)
		}
	}
	return d.SaveAs(path)
}

// drawRectOutline draws the four edges of a rectangle at z=0.
func drawRectOutline(d *drawing.Drawing, x, y, w, h float64) {
	d.Line(x, y, 0, x+w, y, 0)
	d.Line(x+w, y, 0, x+w, y+h, 0)
	d.Line(x+w, y+h, 0, x, y+h, 0)
	d.Line(x, y+h, 0, x, y, 0)
}
