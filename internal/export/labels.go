package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/BinForm/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// Label is the data encoded into one part label's QR code.
type Label struct {
	ID      string  `json:"id"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Bin     int     `json:"bin"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Rotated bool    `json:"rotated"`
}

// Label sheet layout: 2 columns x 7 rows of 99 x 38.1 mm labels on A4
// (Avery L7163 compatible).
const (
	labelSheetWidth = 210.0
	labelMarginTop  = 8.5
	labelMarginLeft = 5.0
	labelWidth      = 99.1
	labelHeight     = 38.1
	labelCols       = 2
	labelRows       = 7
	labelsPerSheet  = labelCols * labelRows
	labelQRSize     = 28.0
	labelPadding    = 3.0
)

// CollectLabels flattens a result into one label per placement, in bin
// order. Width/height are the draw dimensions, what the cut part measures.
func CollectLabels(result model.PackResult) []Label {
	var labels []Label
	for binIdx, bin := range result.Bins {
		for _, p := range bin.Placements {
			labels = append(labels, Label{
				ID:      p.ID,
				Width:   p.DrawW,
				Height:  p.DrawH,
				Bin:     binIdx + 1,
				X:       p.DrawX,
				Y:       p.DrawY,
				Rotated: p.Rotated,
			})
		}
	}
	return labels
}

// WriteLabels generates a PDF of QR-coded labels, one per placed rectangle,
// on a standard A4 label sheet grid.
func WriteLabels(path string, result model.PackResult) error {
	labels := CollectLabels(result)
	if len(labels) == 0 {
		return fmt.Errorf("no placements to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerSheet == 0 {
			pdf.AddPage()
		}
		pos := i % labelsPerSheet
		x := labelMarginLeft + float64(pos%labelCols)*labelWidth
		y := labelMarginTop + float64(pos/labelCols)*labelHeight
		if err := renderLabel(pdf, x, y, i, label); err != nil {
			return fmt.Errorf("label for %q: %w", label.ID, err)
		}
	}
	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label cell at (x, y).
func renderLabel(pdf *fpdf.Fpdf, x, y float64, seq int, label Label) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	payload, err := json.Marshal(label)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return err
	}

	imgName := fmt.Sprintf("qr_%d", seq)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(png))
	pdf.ImageOptions(imgName,
		x+labelWidth-labelQRSize-labelPadding, y+(labelHeight-labelQRSize)/2,
		labelQRSize, labelQRSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - labelQRSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 5, label.ID, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(textX, y+labelPadding+6)
	pdf.CellFormat(textW, 4, fmt.Sprintf("%.0f x %.0f", label.Width, label.Height), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+11)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("bin %d @ (%.0f, %.0f)", label.Bin, label.X, label.Y), "", 1, "L", false, 0, "")

	if label.Rotated {
		pdf.SetFont("Helvetica", "I", 7)
		pdf.SetTextColor(150, 100, 0)
		pdf.SetXY(textX, y+labelPadding+15.5)
		pdf.CellFormat(textW, 3.5, "rotated 90\xb0", "", 0, "L", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	return nil
}
