// Package layout puts the positioned text of a document into reading
// order.
//
// Converted invoices list their text in whatever order the converter
// emitted it. [Linearize] flattens the pages of a document into one
// sequence, sorting each page top to bottom and then left to right:
//
//	doc, err := htmldoc.Open("invoice.html")
//	if err != nil {
//		return err
//	}
//	fragments := layout.Linearize(doc.Pages)
//
// Pages never interleave. Fragments without a usable position stay in
// document order after the positioned fragments of their page, so the
// caller can decide what to do with them.
package layout
