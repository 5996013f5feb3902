package export

import (
	"io"
	"strings"

	"github.com/tsawler/pricebook/model"
)

func writeHistoryMarkdown(w io.Writer, h *model.PriceHistory) error {
	header, rows := matrix(h, model.Price.String)
	return writeTable(w, header, rows)
}

func writeItemsMarkdown(w io.Writer, items []model.Item) error {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.Date, it.Name, it.Price.String()}
	}
	return writeTable(w, []string{"Date", "Item", "Price"}, rows)
}

func writeRowsMarkdown(w io.Writer, rows []model.Row) error {
	header := make([]string, model.RowColumns)
	for i := range header {
		header[i] = model.ColumnName(i)
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, model.RowColumns)
		for j := range cells[i] {
			if v, ok := r.Value(j); ok {
				cells[i][j] = v
			} else {
				cells[i][j] = "_"
			}
		}
	}
	return writeTable(w, header, cells)
}

// writeTable writes a GitHub-flavoured Markdown table
func writeTable(w io.Writer, header []string, rows [][]string) error {
	var sb strings.Builder

	// Header row
	for _, cell := range header {
		sb.WriteString("| ")
		sb.WriteString(escapeCell(cell))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")

	// Separator
	for range header {
		sb.WriteString("|---")
	}
	sb.WriteString("|\n")

	// Data rows
	for _, row := range rows {
		for _, cell := range row {
			sb.WriteString("| ")
			sb.WriteString(escapeCell(cell))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
