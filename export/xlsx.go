package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/tsawler/pricebook/model"
)

const (
	historySheet = "Price History"
	itemsSheet   = "Items"

	// excelize built-in number format "0.00"
	numFmtTwoDecimals = 2
)

// newWorkbook creates a workbook whose only sheet is named sheet
func newWorkbook(sheet string) (*excelize.File, int, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, 0, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, 0, err
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, 0, err
	}
	return f, style, nil
}

func writeHistoryXLSX(w io.Writer, h *model.PriceHistory) error {
	f, money, err := newWorkbook(historySheet)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	defer f.Close()

	dates := h.AllDates()
	header := append([]string{"Item"}, dates...)
	for i, v := range header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(historySheet, cell, v)
	}

	for r, name := range h.Names() {
		row := r + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		_ = f.SetCellValue(historySheet, cell, name)
		for c, d := range dates {
			p, ok := h.Get(name, d)
			if !ok {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+2, row)
			_ = f.SetCellValue(historySheet, cell, p.Decimal().InexactFloat64())
			_ = f.SetCellStyle(historySheet, cell, cell, money)
		}
	}

	_ = f.SetColWidth(historySheet, "A", "A", 40)
	if len(dates) > 0 {
		last, _ := excelize.ColumnNumberToName(len(dates) + 1)
		_ = f.SetColWidth(historySheet, "B", last, 12)
	}
	_ = f.SetPanes(historySheet, &excelize.Panes{Freeze: true, XSplit: 1, YSplit: 1, TopLeftCell: "B2", ActivePane: "bottomRight"})

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeItemsXLSX(w io.Writer, items []model.Item) error {
	f, money, err := newWorkbook(itemsSheet)
	if err != nil {
		return fmt.Errorf("xlsx: %w", err)
	}
	defer f.Close()

	for i, h := range []string{"Date", "Item", "Price"} {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(itemsSheet, cell, h)
	}

	for i, it := range items {
		row := i + 2
		write := func(col int, v any) string {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(itemsSheet, cell, v)
			return cell
		}
		write(1, it.Date)
		write(2, it.Name)
		cell := write(3, it.Price.Decimal().InexactFloat64())
		_ = f.SetCellStyle(itemsSheet, cell, cell, money)
	}

	_ = f.SetColWidth(itemsSheet, "A", "A", 12)
	_ = f.SetColWidth(itemsSheet, "B", "B", 40)
	_ = f.SetColWidth(itemsSheet, "C", "C", 10)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}
