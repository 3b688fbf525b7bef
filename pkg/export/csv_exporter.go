package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
)

// formulaPrefixes start a formula in spreadsheet applications.
const formulaPrefixes = "=+-@\t\r"

// CSVExporter renders datasets as CSV.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// Render produces CSV encoded bytes, headers first.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	if err := data.validate(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(escapeRecord(data.Headers)); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range data.Rows {
		if err := writer.Write(escapeRecord(row)); err != nil {
			return nil, fmt.Errorf("write csv rows: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("write csv rows: %w", err)
	}
	return buf.Bytes(), nil
}

// escapeRecord quotes cells that a spreadsheet would evaluate as formulas.
func escapeRecord(record []string) []string {
	out := make([]string, len(record))
	for i, cell := range record {
		if cell != "" && strings.ContainsRune(formulaPrefixes, rune(cell[0])) {
			cell = "'" + cell
		}
		out[i] = cell
	}
	return out
}
