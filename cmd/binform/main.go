// BinForm - 2D rectangle bin packer
//
// Packs a list of rectangles into fixed-size bins using MaxRects,
// Bottom-Left, or Skyline placement, and writes the layout as JSON, PDF,
// QR label sheets, or DXF.
//
// Build:
//   go build -o binform ./cmd/binform

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/piwi3910/BinForm/internal/engine"
	"github.com/piwi3910/BinForm/internal/export"
	"github.com/piwi3910/BinForm/internal/importer"
	"github.com/piwi3910/BinForm/internal/model"
)

func main() {
	var (
		in        = flag.String("in", "", "part list to import (.csv or .xlsx)")
		binW      = flag.Float64("bin-width", 500, "bin width")
		binH      = flag.Float64("bin-height", 300, "bin height")
		inner     = flag.Float64("inner-margin", 0, "gap kept around each part, per side")
		edge      = flag.Float64("edge-margin", 0, "trim from the bin border")
		kerf      = flag.Float64("kerf", 0, "width consumed by the cutting tool")
		rotate    = flag.Bool("rotate", true, "allow 90 degree rotation")
		algo      = flag.String("algo", string(model.AlgorithmMaxRectsBAF), "placement algorithm (maxrects-bssf, maxrects-baf, bottom-left, skyline-bl)")
		maxBins   = flag.Int("max-bins", 0, "bin count cap, 0 = unlimited")
		seed      = flag.Int64("seed", 42, "shuffle seed for multi-bin rounds")
		compare   = flag.Bool("compare", false, "pack with every algorithm and print a comparison")
		jsonOut   = flag.String("json", "", "write interchange JSON to this path")
		pdfOut    = flag.String("pdf", "", "write layout PDF to this path")
		labelsOut = flag.String("labels", "", "write QR label PDF to this path")
		dxfOut    = flag.String("dxf", "", "write DXF outlines to this path")
	)
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	var imported importer.ImportResult
	if strings.HasSuffix(strings.ToLower(*in), ".xlsx") {
		imported = importer.ImportExcel(*in)
	} else {
		imported = importer.ImportCSV(*in)
	}
	for _, w := range imported.Warnings {
		log.Printf("warning: %s", w)
	}
	if len(imported.Errors) > 0 {
		for _, e := range imported.Errors {
			log.Printf("error: %s", e)
		}
		os.Exit(1)
	}
	if len(imported.Rects) == 0 {
		log.Fatal("no rectangles imported")
	}

	cfg := model.Config{
		BinWidth:    *binW,
		BinHeight:   *binH,
		InnerMargin: *inner,
		EdgeMargin:  *edge,
		Kerf:        *kerf,
		AllowRotate: *rotate,
		Algorithm:   model.Algorithm(*algo),
		MaxBins:     *maxBins,
		Seed:        *seed,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad configuration: %v", err)
	}

	if *compare {
		comparisons, err := engine.CompareAlgorithms(cfg, imported.Rects)
		if err != nil {
			log.Fatalf("comparison failed: %v", err)
		}
		fmt.Printf("%-16s %6s %8s %10s\n", "algorithm", "bins", "fill", "unplaced")
		for _, c := range comparisons {
			fmt.Printf("%-16s %6d %7.2f%% %10d\n", c.Algorithm, c.BinsUsed, c.TotalFill, c.Unplaced)
		}
		return
	}

	result, err := engine.Pack(cfg, imported.Rects)
	if err != nil {
		log.Fatalf("packing failed: %v", err)
	}

	fmt.Printf("bins used: %d | placed: %d | remaining: %d | avg fill: %.2f%%\n",
		len(result.Bins), result.PlacedCount(), len(result.Remaining), result.TotalFill())
	for i, bin := range result.Bins {
		fmt.Printf("  bin #%d: %d parts, fill %.2f%%\n", i+1, len(bin.Placements), bin.Fill)
	}
	for _, r := range result.Remaining {
		fmt.Printf("  unplaced: %s (%.0f x %.0f)\n", r.ID, r.Width, r.Height)
	}

	if *jsonOut != "" {
		if err := export.WriteJSON(*jsonOut, cfg, result); err != nil {
			log.Fatalf("JSON export: %v", err)
		}
		log.Printf("wrote %s", *jsonOut)
	}
	if *pdfOut != "" {
		if err := export.WritePDF(*pdfOut, cfg, result); err != nil {
			log.Fatalf("PDF export: %v", err)
		}
		log.Printf("wrote %s", *pdfOut)
	}
	if *labelsOut != "" {
		if err := export.WriteLabels(*labelsOut, result); err != nil {
			log.Fatalf("label export: %v", err)
		}
		log.Printf("wrote %s", *labelsOut)
	}
	if *dxfOut != "" {
		if err := export.WriteDXF(*dxfOut, cfg, result); err != nil {
			log.Fatalf("DXF export: %v", err)
		}
		log.Printf("wrote %s", *dxfOut)
	}
}
