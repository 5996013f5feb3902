package tables

import (
	"fmt"

	"github.com/tsawler/pricebook/model"
)

// RowBuilder accumulates assigned cells into rows. A new row starts when a
// cell's column index is not greater than the previous cell's.
type RowBuilder struct {
	rows    []model.Row
	current model.Row
	filled  bool
	prev    int

	// OnFlush, if set, is called with each row as it is completed.
	OnFlush func(model.Row)
}

// Add places text in column i of the row in progress
func (b *RowBuilder) Add(i int, text string) error {
	next := b.current
	starts := b.filled && i <= b.prev
	if starts {
		next = model.Row{}
	}
	if err := next.SetCell(i, text); err != nil {
		return fmt.Errorf("cell %q: %w", text, err)
	}

	if starts {
		b.Flush()
	}
	b.current = next
	b.filled = true
	b.prev = i
	return nil
}

// Flush completes the row in progress, if it has any cell
func (b *RowBuilder) Flush() {
	if !b.filled {
		return
	}
	row := b.current
	b.rows = append(b.rows, row)
	if b.OnFlush != nil {
		b.OnFlush(row)
	}
	b.current = model.Row{}
	b.filled = false
}

// EndTable flushes the row in progress and forgets the previous column,
// so that the next table starts afresh
func (b *RowBuilder) EndTable() {
	b.Flush()
	b.prev = 0
}

// Rows returns the completed rows
func (b *RowBuilder) Rows() []model.Row {
	return b.rows
}
