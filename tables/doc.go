// Package tables reconstructs invoice item tables from positioned text.
//
// The input is the reading-order fragment stream of one document (see
// package layout). Three cooperating stages turn it into rows:
//
//  1. The section scanner, a finite-state machine driven by [Next], finds
//     the item table by its literal header tokens
//     "Supplied", "Line", "Description", "Ordered", "Supplied", "Price",
//     "Amount" and leaves it at a terminator token ("Sub Total:" or text
//     starting with "Registered Office: ").
//  2. [Columns] takes the x positions of the table's first row as column
//     anchors and assigns every later cell to its nearest anchor.
//  3. [RowBuilder] starts a new row whenever the column index fails to
//     increase.
//
// [Reconstruct] runs all three:
//
//	fragments := layout.Linearize(doc.Pages())
//	result, err := tables.Reconstruct(fragments)
//	items, dropped, err := tables.Items(date, result.Rows)
//
// A document may contain several item tables, for example continuation
// pages or concatenated invoices. Anchors and the row in progress never
// carry over from one table to the next.
package tables
