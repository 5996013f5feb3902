// Package model provides the data types produced by invoice extraction.
//
// This package defines the user-facing values that every other package of
// pricebook exchanges. Parsing and table reconstruction ultimately produce
// these types, making them the primary API for consuming extracted content.
//
// # Geometry
//
// Positions are expressed in the pixel space of the rendered page:
//
//   - [Coordinate] - an (x, y) position read from a fragment's inline style
//   - [BBox] - a rectangle, used for OCR word and line boxes
//
// Y grows downward, as in the HTML renderings the coordinates come from.
//
// # Rows and Items
//
// A reconstructed invoice table row is a [Row] with six optional cells:
//
//	row.Description // *string, nil when the cell is missing
//	row.Price
//
// A row that carries both a description and a price becomes an [Item]
// with a normalized [Price].
//
// # Price History
//
// [PriceHistory] merges items from many invoices into a per-item,
// per-date table of prices:
//
//	h := model.NewPriceHistory()
//	h.Add(item)
//	for _, name := range h.Names() {
//	    for _, date := range h.Dates(name) {
//	        p, _ := h.Get(name, date)
//	        fmt.Println(name, date, p)
//	    }
//	}
//
// # Errors
//
// Extraction failures are classified by the sentinels [ErrStructural],
// [ErrFormat] and [ErrIO]. The typed errors [StructuralError] and
// [FormatError] carry the failed expectation and the offending input.
package model
