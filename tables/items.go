package tables

import (
	"fmt"

	"github.com/tsawler/pricebook/model"
	"github.com/tsawler/pricebook/price"
)

// Items turns reconstructed rows into dated items. Rows lacking either a
// description or a price are not items and are returned as dropped. A
// price that cannot be normalized fails the whole document.
func Items(date string, rows []model.Row) (items []model.Item, dropped []model.Row, err error) {
	for _, row := range rows {
		name, hasName := row.Value(model.ColumnDescription)
		quote, hasPrice := row.Value(model.ColumnPrice)
		if !hasName || !hasPrice {
			dropped = append(dropped, row)
			continue
		}

		p, err := price.Normalize(name, quote)
		if err != nil {
			return nil, nil, fmt.Errorf("item %q: %w", name, err)
		}
		items = append(items, model.Item{Date: date, Name: name, Price: p})
	}
	return items, dropped, nil
}
