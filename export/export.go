// Package export renders extracted items and price histories for people
// and for other programs.
//
// A price history is laid out as a matrix, one row per item and one column
// per invoice date, the way a price book is kept in a spreadsheet:
//
//	| Item    | 2023-04-01 | 2023-04-08 |
//	|---------|------------|------------|
//	| Milk 2L | $3.10      | $3.30      |
//
// Item lists are written one item per row. The machine formats (CSV, JSON,
// YAML) carry the price both as a decimal string and as integer cents.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/pricebook/model"
)

// Format is an output format.
type Format int

const (
	Markdown Format = iota
	CSV
	JSON
	YAML
	XLSX
)

var formatNames = map[Format]string{
	Markdown: "markdown",
	CSV:      "csv",
	JSON:     "json",
	YAML:     "yaml",
	XLSX:     "xlsx",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Binary reports whether the format is not text and should not be
// written to a terminal.
func (f Format) Binary() bool {
	return f == XLSX
}

// ParseFormat parses a format name. "md" and "yml" are accepted as aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "markdown", "md", "":
		return Markdown, nil
	case "csv":
		return CSV, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "xlsx", "excel":
		return XLSX, nil
	}
	return 0, fmt.Errorf("unknown export format %q", s)
}

// FormatFromFilename picks a format from an output file's extension,
// falling back to def.
func FormatFromFilename(name string, def Format) Format {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return def
	}
	if f, err := ParseFormat(name[i+1:]); err == nil && name[i+1:] != "" {
		return f
	}
	return def
}

// Write renders a price history.
func Write(w io.Writer, h *model.PriceHistory, f Format) error {
	if h == nil {
		h = model.NewPriceHistory()
	}
	switch f {
	case Markdown:
		return writeHistoryMarkdown(w, h)
	case CSV:
		return writeHistoryCSV(w, h)
	case JSON:
		return writeJSON(w, historyRecords(h))
	case YAML:
		return writeYAML(w, historyRecords(h))
	case XLSX:
		return writeHistoryXLSX(w, h)
	}
	return fmt.Errorf("unsupported export format %v", f)
}

// WriteItems renders a list of items in the order given.
func WriteItems(w io.Writer, items []model.Item, f Format) error {
	switch f {
	case Markdown:
		return writeItemsMarkdown(w, items)
	case CSV:
		return writeItemsCSV(w, items)
	case JSON:
		return writeJSON(w, itemRecords(items))
	case YAML:
		return writeYAML(w, itemRecords(items))
	case XLSX:
		return writeItemsXLSX(w, items)
	}
	return fmt.Errorf("unsupported export format %v", f)
}

// WriteRows renders raw reconstructed rows, with _ for missing cells in
// Markdown. Only Markdown and CSV are supported.
func WriteRows(w io.Writer, rows []model.Row, f Format) error {
	switch f {
	case Markdown:
		return writeRowsMarkdown(w, rows)
	case CSV:
		return writeRowsCSV(w, rows)
	}
	return fmt.Errorf("rows cannot be exported as %v", f)
}

// matrix lays a history out as a header and one row per item, rendering
// prices with cell
func matrix(h *model.PriceHistory, cell func(model.Price) string) (header []string, rows [][]string) {
	dates := h.AllDates()
	header = append([]string{"Item"}, dates...)
	for _, name := range h.Names() {
		row := make([]string, 0, len(header))
		row = append(row, name)
		for _, d := range dates {
			if p, ok := h.Get(name, d); ok {
				row = append(row, cell(p))
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}
	return header, rows
}
