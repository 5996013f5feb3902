// Package pricebook provides a fluent API for extracting dated item prices
// from supplier invoices rendered as positioned HTML.
//
// Invoices are usually PDF files converted with pdftohtml, which writes
// one absolutely positioned <p> element per text fragment. pricebook finds
// the item table in that layout, rebuilds its rows, normalizes every price
// to a per-unit value and records it against the invoice date.
//
// Basic usage:
//
//	items, warnings, err := pricebook.Open("invoice.html").Items()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pricebook.FormatWarnings(warnings))
//	}
//
// Building a price history from many invoices:
//
//	result, err := pricebook.Collect(ctx, []*pricebook.Extractor{
//	    pricebook.Open("2023-04-01.html"),
//	    pricebook.Open("2023-04-08.html"),
//	}, pricebook.SkipFailed, logger)
//	price, ok := result.History.Get("Milk 2L", "2023-04-08")
//
// Scanned invoices can be read through Tesseract when built with the ocr
// tag. hOCR output carries no invoice date, so one must be supplied:
//
//	items, _, err := pricebook.FromImage("scan.png", "2023-04-01").Items()
//
// For advanced use cases the lower-level htmldoc, layout and tables
// packages are also available.
package pricebook

import (
	"io"

	"github.com/tsawler/pricebook/htmldoc"
)

// Open opens an invoice file and returns an Extractor for fluent
// configuration. The format is detected from the content, falling back to
// the file extension. The file is read when a terminal operation such as
// Items() runs.
//
// Example:
//
//	items, warnings, err := pricebook.Open("invoice.html").Items()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		name:     filename,
		options:  defaultOptions(),
	}
}

// FromReader creates an Extractor that reads an invoice from r. The name
// is used for format detection and in diagnostics.
//
// Example:
//
//	resp, err := http.Get(url)
//	...
//	items, _, err := pricebook.FromReader(resp.Body, "invoice.html").Items()
func FromReader(r io.Reader, name string) *Extractor {
	return &Extractor{
		src:     r,
		name:    name,
		options: defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-loaded document.
// This is useful when you need more control over the document lifecycle.
// Note: The caller is responsible for closing the document.
//
// Example:
//
//	doc, err := htmldoc.Open("invoice.html")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	rows, _, err := pricebook.FromDocument(doc).Rows()
func FromDocument(doc *htmldoc.Document) *Extractor {
	return &Extractor{
		name:    "document",
		doc:     doc,
		opened:  true,
		options: defaultOptions(),
	}
}

// FromImage opens a scanned invoice image. The image is recognized with
// Tesseract, so this requires a build with the ocr tag; otherwise terminal
// operations return ocr.ErrOCRNotEnabled.
//
// Example:
//
//	items, _, err := pricebook.FromImage("scan.tiff", "2023-04-01").Items()
func FromImage(filename, date string) *Extractor {
	e := Open(filename).WithDate(date)
	e.requireImage = true
	return e
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	date := pricebook.Must(pricebook.Open("invoice.html").Date())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustItems is a helper that wraps a call to Items(), Rows() or
// Fragments() and panics if the error is non-nil. It discards warnings and
// returns just the value.
//
// Example:
//
//	items := pricebook.MustItems(pricebook.Open("invoice.html").Items())
func MustItems[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
