package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/piwi3910/BinForm/internal/model"
)

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	pageMargin   = 15.0
	headerHeight = 12.0
	legendHeight = 18.0
	drawAreaTop  = pageMargin + headerHeight + 5.0
)

// placementColor returns a stable, visually distinct color for the i-th
// placement. Stepping the hue by the golden angle keeps neighbors apart
// without any randomness.
func placementColor(i int) (r, g, b int) {
	hue := math.Mod(float64(i)*137.508, 360)
	c := colorful.Hsv(hue, 0.55, 0.85)
	cr, cg, cb := c.RGB255()
	return int(cr), int(cg), int(cb)
}

// WritePDF renders one page per bin (scaled layout with colored, labeled
// parts) followed by a run summary page.
func WritePDF(path string, cfg model.Config, result model.PackResult) error {
	if len(result.Bins) == 0 {
		return fmt.Errorf("no bins to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pageMargin)

	for i, bin := range result.Bins {
		pdf.AddPage()
		renderBinPage(pdf, cfg, bin, i+1)
	}

	pdf.AddPage()
	renderSummaryPage(pdf, cfg, result)

	return pdf.OutputFileAndClose(path)
}

// renderBinPage draws one bin layout on the current page.
func renderBinPage(pdf *fpdf.Fpdf, cfg model.Config, bin model.BinLayout, binNum int) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(pageMargin, pageMargin)
	title := fmt.Sprintf("Bin %d (%.0f x %.0f) - %d parts, fill %.2f%%",
		binNum, cfg.BinWidth, cfg.BinHeight, len(bin.Placements), bin.Fill)
	pdf.CellFormat(pageWidth-2*pageMargin, headerHeight, title, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - 2*pageMargin
	drawHeight := pageHeight - drawAreaTop - pageMargin - legendHeight
	scale := math.Min(drawWidth/cfg.BinWidth, drawHeight/cfg.BinHeight)

	canvasW := cfg.BinWidth * scale
	canvasH := cfg.BinHeight * scale
	offsetX := pageMargin + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Bin outline
	pdf.SetFillColor(245, 245, 240)
	pdf.SetDrawColor(80, 80, 80)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Edge margin guide
	if cfg.EdgeMargin > 0 {
		em := cfg.EdgeMargin * scale
		pdf.SetDrawColor(180, 180, 180)
		pdf.SetLineWidth(0.2)
		pdf.Rect(offsetX+em, offsetY+em, canvasW-2*em, canvasH-2*em, "D")
	}

	for i, p := range bin.Placements {
		r, g, b := placementColor(i)
		px := offsetX + p.DrawX*scale
		py := offsetY + p.DrawY*scale
		pw := p.DrawW * scale
		ph := p.DrawH * scale

		pdf.SetFillColor(r, g, b)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		if pw > 10 && ph > 6 {
			label := p.ID
			if p.Rotated {
				label += " R"
			}
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(label)
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		}
	}

	// Dimension annotation below the bin
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)
	dims := fmt.Sprintf("%.0f x %.0f", cfg.BinWidth, cfg.BinHeight)
	dimsW := pdf.GetStringWidth(dims)
	pdf.SetXY(offsetX+(canvasW-dimsW)/2, offsetY+canvasH+1)
	pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// renderSummaryPage draws the final page with the run totals.
func renderSummaryPage(pdf *fpdf.Fpdf, cfg model.Config, result model.PackResult) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(pageMargin, pageMargin)
	pdf.CellFormat(pageWidth-2*pageMargin, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(pageMargin, pageMargin+12, pageWidth-pageMargin, pageMargin+12)

	y := pageMargin + 18.0
	items := []struct {
		label string
		value string
	}{
		{"Algorithm", string(cfg.Algorithm)},
		{"Bins used", fmt.Sprintf("%d", len(result.Bins))},
		{"Parts placed", fmt.Sprintf("%d", result.PlacedCount())},
		{"Parts remaining", fmt.Sprintf("%d", len(result.Remaining))},
		{"Average fill", fmt.Sprintf("%.2f%%", result.TotalFill())},
		{"Inner margin", fmt.Sprintf("%.1f", cfg.InnerMargin)},
		{"Edge margin", fmt.Sprintf("%.1f", cfg.EdgeMargin)},
		{"Kerf", fmt.Sprintf("%.1f", cfg.Kerf)},
	}
	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(pageMargin+5, y)
		pdf.CellFormat(50, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(60, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	if len(result.Remaining) > 0 {
		y += 6
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(200, 0, 0)
		pdf.SetXY(pageMargin, y)
		pdf.CellFormat(200, 7, "Unplaced rectangles", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)
		for _, r := range result.Remaining {
			pdf.SetXY(pageMargin+5, y)
			text := fmt.Sprintf("- %s: %.0f x %.0f", r.ID, r.Width, r.Height)
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}
}

// labelFontSize picks a font size the label can live with at this part size.
func labelFontSize(w, h float64) float64 {
	switch minDim := math.Min(w, h); {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
