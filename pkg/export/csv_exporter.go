package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"unicode/utf8"
)

const utf8BOM = "\ufeff"

// CSVOption tweaks a CSVExporter.
type CSVOption func(*CSVExporter)

// WithDelimiter sets the field separator. Spreadsheets in es-UY expect ';'.
func WithDelimiter(r rune) CSVOption {
	return func(e *CSVExporter) { e.delimiter = r }
}

// WithoutBOM drops the UTF-8 byte order mark, for piping into other tools.
func WithoutBOM() CSVOption {
	return func(e *CSVExporter) { e.bom = false }
}

// CSVExporter streams a Dataset as CSV, one record per row in header order.
type CSVExporter struct {
	delimiter rune
	bom       bool
}

// NewCSVExporter builds a comma separated exporter that writes a BOM so spreadsheet
// tools keep accented names intact.
func NewCSVExporter(opts ...CSVOption) *CSVExporter {
	e := &CSVExporter{delimiter: ',', bom: true}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseDelimiter accepts a single character, or the names "comma", "semicolon" and "tab".
func ParseDelimiter(raw string) (rune, error) {
	switch raw {
	case "", "comma":
		return ',', nil
	case "semicolon":
		return ';', nil
	case "tab", `\t`:
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(raw)
	if size != len(raw) || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid csv delimiter %q", raw)
	}
	return r, nil
}

// Write encodes data to w. Cells missing from a row are written empty.
func (e *CSVExporter) Write(w io.Writer, data Dataset) error {
	if len(data.Headers) == 0 {
		return fmt.Errorf("csv requires at least one header")
	}
	if e.bom {
		if _, err := io.WriteString(w, utf8BOM); err != nil {
			return fmt.Errorf("write csv bom: %w", err)
		}
	}
	writer := csv.NewWriter(w)
	writer.Comma = e.delimiter
	if err := writer.Write(data.Headers); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}
	record := make([]string, len(data.Headers))
	for n, row := range data.Rows {
		for i, header := range data.Headers {
			record[i] = row[header]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", n+1, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// Render returns the encoded dataset.
func (e *CSVExporter) Render(data Dataset) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
