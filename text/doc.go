// Package text provides the text normalization applied to invoice
// fragments before they are matched or stored.
//
// # Space Cleaning
//
// PDF-to-HTML converters emit non-breaking spaces between words, so the
// literal header and terminator tokens of an invoice only match after
// [Clean] has mapped every non-breaking space variant to a plain space:
//
//	text.Clean("Sub\u00a0Total:") // "Sub Total:"
//
// # Item Names
//
// The description column of an invoice decorates item names with bullet
// and substitution markers. [ItemName] strips them:
//
//	text.ItemName("* (Sub) Lamb Leg 1kg - 0.75kg") // "Lamb Leg 1kg - 0.75kg"
package text
