// Package importer reads rectangle lists from CSV and Excel files. It
// detects the delimiter automatically, maps columns by header aliases
// case-insensitively, and expands quantity columns into individual
// rectangles.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/BinForm/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the rectangles produced by an import plus any per-row
// errors and warnings. Errors skip the offending row only.
type ImportResult struct {
	Rects    []model.Rect
	Errors   []string
	Warnings []string
}

// columnMapping maps semantic column roles to their indices in the data.
// A value of -1 means the role is absent.
type columnMapping struct {
	label    int
	width    int
	height   int
	quantity int
	id       int
}

// headerAliases maps canonical column roles to accepted header spellings
// (all lowercase).
var headerAliases = map[string][]string{
	"label":    {"label", "name", "part", "description", "item"},
	"width":    {"width", "w", "x"},
	"height":   {"height", "h", "y"},
	"quantity": {"quantity", "qty", "count", "num", "pcs"},
	"id":       {"id", "rid"},
}

// DetectCSVDelimiter determines the most likely delimiter among comma,
// semicolon, tab, and pipe: the one producing the most consistent
// multi-column row shape wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	best := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) == 0 {
			continue
		}
		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}
		consistent := 0
		for _, row := range records {
			if len(row) == firstCols {
				consistent++
			}
		}
		weighted := consistent*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			best = delim
		}
	}
	return best
}

// detectColumns examines a candidate header row. It returns the mapping and
// true when a header was recognized, or the positional fallback
// (width, height, quantity, id) and false otherwise.
func detectColumns(row []string) (columnMapping, bool) {
	mapping := columnMapping{label: -1, width: -1, height: -1, quantity: -1, id: -1}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized != alias {
					continue
				}
				isHeader = true
				switch role {
				case "label":
					if mapping.label == -1 {
						mapping.label = i
					}
				case "width":
					if mapping.width == -1 {
						mapping.width = i
					}
				case "height":
					if mapping.height == -1 {
						mapping.height = i
					}
				case "quantity":
					if mapping.quantity == -1 {
						mapping.quantity = i
					}
				case "id":
					if mapping.id == -1 {
						mapping.id = i
					}
				}
			}
		}
	}

	if !isHeader {
		return columnMapping{width: 0, height: 1, quantity: 2, id: 3, label: -1}, false
	}
	return mapping, true
}

// getCell safely retrieves a trimmed cell value by column index.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseRow extracts the rectangles described by one row: width, height,
// optional quantity (default 1), optional id and label. A supplied id is
// shared by every copy; otherwise each copy gets a fresh one.
func parseRow(row []string, mapping columnMapping, rowLabel string) ([]model.Rect, string) {
	widthStr := getCell(row, mapping.width)
	if widthStr == "" {
		return nil, fmt.Sprintf("%s: missing width value", rowLabel)
	}
	width, err := strconv.ParseFloat(widthStr, 64)
	if err != nil {
		return nil, fmt.Sprintf("%s: invalid width %q", rowLabel, widthStr)
	}

	heightStr := getCell(row, mapping.height)
	if heightStr == "" {
		return nil, fmt.Sprintf("%s: missing height value", rowLabel)
	}
	height, err := strconv.ParseFloat(heightStr, 64)
	if err != nil {
		return nil, fmt.Sprintf("%s: invalid height %q", rowLabel, heightStr)
	}

	qty := 1
	if qtyStr := getCell(row, mapping.quantity); qtyStr != "" {
		qty, err = strconv.Atoi(qtyStr)
		if err != nil {
			return nil, fmt.Sprintf("%s: invalid quantity %q", rowLabel, qtyStr)
		}
	}

	if width <= 0 || height <= 0 || qty <= 0 {
		return nil, fmt.Sprintf("%s: width, height, and quantity must be positive", rowLabel)
	}

	label := getCell(row, mapping.label)
	id := getCell(row, mapping.id)

	rects := make([]model.Rect, 0, qty)
	for i := 0; i < qty; i++ {
		r := model.NewRect(label, width, height)
		if id != "" {
			r.ID = id
		}
		rects = append(rects, r)
	}
	return rects, ""
}

// isEmptyRow reports whether the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports rectangles from a CSV file, auto-detecting the delimiter
// and the column layout.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open file: %v", err))
		return result
	}
	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "file is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		names := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}
		result.Warnings = append(result.Warnings, fmt.Sprintf("detected %s delimiter", names[delimiter]))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}
	return importFromRows(records, "line", result.Warnings)
}

// ImportCSVFromReader imports rectangles from a CSV stream with a known
// delimiter. Useful when the format was already sniffed, and in tests.
func ImportCSVFromReader(r io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read CSV: %v", err))
		return result
	}
	return importFromRows(records, "line", nil)
}

// ImportExcel imports rectangles from the first sheet of an .xlsx file.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("cannot read Excel data: %v", err))
		return result
	}
	return importFromRows(rows, "row", nil)
}

// importFromRows is the shared import path for CSV and Excel data.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{Warnings: initialWarnings}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "no data rows found")
		return result
	}

	mapping, hasHeader := detectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "detected header row, skipping")
		var missing []string
		if mapping.width == -1 {
			missing = append(missing, "width")
		}
		if mapping.height == -1 {
			missing = append(missing, "height")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 2 {
		// A non-numeric first cell on an unrecognized row is still most
		// likely a header; skip it but keep the positional mapping.
		if _, err := strconv.ParseFloat(strings.TrimSpace(rows[0][0]), 64); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "detected header row, skipping")
		}
	}

	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}
		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		rects, errMsg := parseRow(row, mapping, rowLabel)
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		result.Rects = append(result.Rects, rects...)
	}
	return result
}
