package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/tsawler/pricebook/model"
)

func writeHistoryCSV(w io.Writer, h *model.PriceHistory) error {
	header, rows := matrix(h, plainDecimal)
	return writeCSV(w, header, rows)
}

func writeItemsCSV(w io.Writer, items []model.Item) error {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{it.Date, it.Name, plainDecimal(it.Price), strconv.FormatInt(it.Price.Cents(), 10)}
	}
	return writeCSV(w, []string{"date", "item", "price", "cents"}, rows)
}

func writeRowsCSV(w io.Writer, rows []model.Row) error {
	header := make([]string, model.RowColumns)
	for i := range header {
		header[i] = model.ColumnName(i)
	}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = make([]string, model.RowColumns)
		for j := range cells[i] {
			cells[i][j], _ = r.Value(j)
		}
	}
	return writeCSV(w, header, cells)
}

// plainDecimal renders 3.10 rather than $3.10 for spreadsheets
func plainDecimal(p model.Price) string {
	return p.Decimal().StringFixed(2)
}

func writeCSV(w io.Writer, header []string, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(rows); err != nil {
		return err
	}
	return cw.Error()
}
