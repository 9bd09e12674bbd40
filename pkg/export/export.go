package export

import (
	"fmt"
	"strings"
)

// Format identifies an export encoding.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat normalises a user supplied format, defaulting to CSV.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case "", FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("unsupported export format %q", raw)
	}
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Dataset defines tabular export content.
type Dataset struct {
	Title   string
	Headers []string
	Rows    []map[string]string
}

// Exporter renders datasets in every supported format.
type Exporter struct {
	csv *CSVExporter
	pdf *PDFExporter
}

// NewExporter builds an exporter backed by the CSV and PDF renderers.
func NewExporter(csvOpts ...CSVOption) *Exporter {
	return &Exporter{csv: NewCSVExporter(csvOpts...), pdf: NewPDFExporter()}
}

// Render encodes data in the requested format.
func (e *Exporter) Render(format Format, data Dataset) ([]byte, error) {
	switch format {
	case FormatPDF:
		return e.pdf.Render(data, data.Title)
	case FormatCSV:
		return e.csv.Render(data)
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// Filename builds an attachment name from a base and the format extension.
func Filename(base string, format Format) string {
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		case r == ' ':
			return '-'
		}
		return -1
	}, base)
	if base == "" {
		base = "export"
	}
	return base + "." + string(format)
}
