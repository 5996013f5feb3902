package tables

import (
	"fmt"

	"github.com/tsawler/pricebook/htmldoc"
	"github.com/tsawler/pricebook/model"
	"github.com/tsawler/pricebook/text"
)

// Result holds the rows reconstructed from one document
type Result struct {
	Rows []model.Row

	// Sections counts the item tables entered
	Sections int
}

// Reconstructor runs the section scanner, column assigner and row builder
// over one document's fragments. The zero value is ready to use.
type Reconstructor struct {
	// OnRow, if set, is called with each row as it is completed.
	OnRow func(model.Row)
}

// Reconstruct rebuilds the item table rows of fragments, which must be in
// reading order
func Reconstruct(fragments []htmldoc.Fragment) (*Result, error) {
	return Reconstructor{}.Run(fragments)
}

// Run rebuilds the item table rows of fragments
func (r Reconstructor) Run(fragments []htmldoc.Fragment) (*Result, error) {
	var (
		state   State
		columns Columns
		rows    = RowBuilder{OnFlush: r.OnRow}
		result  Result
	)

	for _, f := range fragments {
		token := text.Clean(f.Text())
		next := Next(state, token)

		switch {
		case next.InTable() && !state.InTable():
			columns.Reset()
			result.Sections++
		case state.InTable() && !next.InTable():
			rows.EndTable()
			columns.Reset()
		}
		state = next
		if !state.InTable() {
			continue
		}

		if err := r.cell(f, &columns, &rows); err != nil {
			return nil, err
		}
	}
	rows.EndTable()

	result.Rows = rows.Rows()
	return &result, nil
}

// cell handles one fragment inside an item table
func (r Reconstructor) cell(f htmldoc.Fragment, columns *Columns, rows *RowBuilder) error {
	lead, leading := f.LeadingText()
	if !leading && !columns.Started() {
		return nil
	}

	pos, err := f.Position()
	if err != nil {
		return fmt.Errorf("table cell %q: %w", f.Text(), err)
	}
	columns.Observe(pos, leading)
	if !leading {
		return nil
	}

	i, ok := columns.Assign(pos.X)
	if !ok {
		return fmt.Errorf("table cell %q: %w", lead,
			model.NewStructuralError("column anchors on the first table row", lead))
	}

	cell := text.Clean(lead)
	if i == model.ColumnDescription {
		cell = text.ItemName(cell)
	}
	return rows.Add(i, cell)
}
