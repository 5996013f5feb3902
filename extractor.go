package pricebook

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/tsawler/pricebook/format"
	"github.com/tsawler/pricebook/htmldoc"
	"github.com/tsawler/pricebook/layout"
	"github.com/tsawler/pricebook/model"
	"github.com/tsawler/pricebook/ocr"
	"github.com/tsawler/pricebook/tables"
)

// Extractor provides a fluent interface for extracting invoice items.
// Each configuration method returns a new Extractor instance, making it
// safe to share a configured base and allowing method chaining.
type Extractor struct {
	// Source
	filename     string
	src          io.Reader
	data         []byte // input already drained from src
	name         string
	requireImage bool

	// Lifecycle
	doc     *htmldoc.Document
	ownsDoc bool // true if we loaded the document and should close it
	opened  bool // true if the document has been loaded
	format  format.Format

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:     e.filename,
		src:          e.src,
		data:         e.data,
		name:         e.name,
		requireImage: e.requireImage,
		doc:          e.doc,
		ownsDoc:      e.ownsDoc,
		opened:       e.opened,
		format:       e.format,
		options:      e.options.clone(),
		err:          e.err,
		warnings:     append([]Warning(nil), e.warnings...),
	}
}

// Name returns the name the extractor reports in diagnostics: the file
// name, or the name given to FromReader.
func (e *Extractor) Name() string {
	return e.name
}

// WithLogger sets the logger for diagnostics. The parsed date and every
// reconstructed row are logged at debug level. By default slog.Default()
// is used.
//
// Example:
//
//	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
//	rows, _, err := pricebook.Open("invoice.html").WithLogger(logger).Rows()
func (e *Extractor) WithLogger(logger *slog.Logger) *Extractor {
	newExt := e.clone()
	newExt.options.logger = logger
	return newExt
}

// WithDate sets the invoice date. It is required for hOCR and image input,
// which carry no date, and replaces the date of an HTML document.
//
// Example:
//
//	items, _, err := pricebook.Open("scan.hocr").WithDate("2023-04-01").Items()
func (e *Extractor) WithDate(date string) *Extractor {
	newExt := e.clone()
	newExt.options.date = date
	newExt.options.dateSet = true
	return newExt
}

// MinImageWidth sets the width below which scanned images are upscaled
// before recognition. Zero disables upscaling.
//
// Example:
//
//	items, _, err := pricebook.FromImage("scan.png", "2023-04-01").MinImageWidth(3000).Items()
func (e *Extractor) MinImageWidth(width int) *Extractor {
	newExt := e.clone()
	newExt.options.minImageWidth = width
	return newExt
}

// Language sets the Tesseract language(s) for image input, e.g. "eng" or
// "eng+fra".
func (e *Extractor) Language(lang string) *Extractor {
	newExt := e.clone()
	newExt.options.language = lang
	return newExt
}

// PageSegMode sets the Tesseract page segmentation mode for image input.
func (e *Extractor) PageSegMode(mode ocr.PageSegMode) *Extractor {
	newExt := e.clone()
	newExt.options.pageSegMode = mode
	return newExt
}

func (e *Extractor) logger() *slog.Logger {
	if e.options.logger != nil {
		return e.options.logger
	}
	return slog.Default()
}

func (e *Extractor) warn(code WarningCode, format string, args ...any) {
	w := Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Source:  e.name,
	}
	// a reloaded document reports the same warnings again
	if slices.Contains(e.warnings, w) {
		return
	}
	e.warnings = append(e.warnings, w)
}

// ensureDocument loads the document if not already loaded.
func (e *Extractor) ensureDocument() error {
	if e.opened {
		return nil
	}

	var data []byte
	var err error
	switch {
	case e.data != nil:
		data = e.data
	case e.src != nil:
		data, err = io.ReadAll(e.src)
		if err != nil {
			return model.WrapIO("read "+e.name, err)
		}
		// a reader can only be drained once; later loads reuse the bytes
		e.data, e.src = data, nil
	case e.filename != "":
		data, err = os.ReadFile(e.filename)
		if err != nil {
			return model.WrapIO("read", err)
		}
	default:
		return fmt.Errorf("no filename specified")
	}

	e.format = format.DetectFile(e.name, data)
	if e.requireImage && !e.format.IsImage() {
		return fmt.Errorf("%s: expected an image, got %s", e.name, e.format)
	}

	doc, err := e.load(data)
	if err != nil {
		return err
	}
	e.doc = doc
	e.ownsDoc = true
	e.opened = true
	return nil
}

// load parses data according to the detected format.
func (e *Extractor) load(data []byte) (*htmldoc.Document, error) {
	switch {
	case e.format == format.HTML:
		return htmldoc.OpenReader(bytes.NewReader(data))

	case e.format == format.HOCR:
		if !e.options.dateSet {
			return nil, model.NewStructuralError("invoice date for hOCR input (WithDate)", "")
		}
		return htmldoc.OpenHOCR(bytes.NewReader(data), e.options.date)

	case e.format.IsImage():
		if !e.options.dateSet {
			return nil, model.NewStructuralError("invoice date for image input (WithDate)", "")
		}
		markup, err := e.recognize(data)
		if err != nil {
			return nil, err
		}
		return htmldoc.OpenHOCR(bytes.NewReader([]byte(markup)), e.options.date)

	default:
		return nil, fmt.Errorf("unsupported file format: %s", e.format)
	}
}

// recognize runs OCR over an image and returns hOCR markup.
func (e *Extractor) recognize(data []byte) (string, error) {
	prepared, err := ocr.Preprocess(data, e.options.minImageWidth)
	if err != nil {
		return "", fmt.Errorf("%s: %w", e.name, err)
	}

	client, err := ocr.New()
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err := client.SetLanguage(e.options.language); err != nil {
		return "", fmt.Errorf("OCR language %q: %w", e.options.language, err)
	}
	if err := client.SetPageSegMode(e.options.pageSegMode); err != nil {
		return "", fmt.Errorf("OCR page mode: %w", err)
	}

	e.logger().Debug("recognizing image", "source", e.name, "format", e.format.String())
	return client.HOCR(prepared)
}

// Close releases resources associated with the Extractor.
// It is safe to call Close multiple times. A later operation loads the
// document again.
func (e *Extractor) Close() error {
	if e.ownsDoc && e.doc != nil {
		err := e.doc.Close()
		e.doc = nil
		e.ownsDoc = false
		e.opened = false
		return err
	}
	return nil
}

// Date returns the invoice date: the date set with WithDate, or else the
// content of the document's date meta element.
// Note: This does NOT close the document, allowing further operations.
//
// Example:
//
//	ext := pricebook.Open("invoice.html")
//	defer ext.Close()
//	date, err := ext.Date()
func (e *Extractor) Date() (string, error) {
	if e.err != nil {
		return "", e.err
	}
	if err := e.ensureDocument(); err != nil {
		return "", err
	}
	return e.date()
}

func (e *Extractor) date() (string, error) {
	if e.options.dateSet {
		if own, err := e.doc.Date(); err == nil && own != e.options.date {
			e.warn(WarnDateOverridden, "document date %s replaced by %s", own, e.options.date)
		}
		return e.options.date, nil
	}
	return e.doc.Date()
}

// Fragments returns the document's text fragments in reading order.
// This is a terminal operation that closes the underlying document.
//
// Example:
//
//	fragments, _, err := pricebook.Open("invoice.html").Fragments()
//	for _, f := range fragments {
//	    pos, _ := f.Position()
//	    fmt.Printf("%6.1f %6.1f %s\n", pos.Y, pos.X, f.Text())
//	}
func (e *Extractor) Fragments() ([]htmldoc.Fragment, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	return layout.Linearize(e.doc.Pages()), e.warnings, nil
}

// Rows reconstructs the rows of the document's item tables.
// This is a terminal operation that closes the underlying document.
//
// A document without a date fails before any row is built.
//
// Example:
//
//	rows, _, err := pricebook.Open("invoice.html").Rows()
//	for _, r := range rows {
//	    fmt.Println(r)
//	}
func (e *Extractor) Rows() ([]model.Row, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return nil, nil, err
	}
	defer e.Close()

	_, rows, err := e.rows()
	if err != nil {
		return nil, e.warnings, err
	}
	return rows, e.warnings, nil
}

func (e *Extractor) rows() (string, []model.Row, error) {
	log := e.logger()

	date, err := e.date()
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", e.name, err)
	}
	log.Debug("invoice date", "source", e.name, "date", date)

	r := tables.Reconstructor{
		OnRow: func(row model.Row) {
			log.Debug("row", "source", e.name, "row", row.String())
		},
	}
	res, err := r.Run(layout.Linearize(e.doc.Pages()))
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", e.name, err)
	}
	if res.Sections == 0 {
		e.warn(WarnNoTable, "no item table header found")
	}
	return date, res.Rows, nil
}

// Items extracts the dated, normalized item prices of the invoice.
// Rows without a description or price are skipped with a warning.
// This is a terminal operation that closes the underlying document.
//
// Example:
//
//	items, warnings, err := pricebook.Open("invoice.html").Items()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", pricebook.FormatWarnings(warnings))
//	}
//	for _, it := range items {
//	    fmt.Printf("%s %s %s\n", it.Date, it.Name, it.Price)
//	}
func (e *Extractor) Items() ([]model.Item, []Warning, error) {
	_, items, warnings, err := e.datedItems()
	return items, warnings, err
}

// datedItems is Items that also returns the invoice date, which an
// invoice without items would otherwise not reveal.
func (e *Extractor) datedItems() (string, []model.Item, []Warning, error) {
	if e.err != nil {
		return "", nil, nil, e.err
	}
	if err := e.ensureDocument(); err != nil {
		return "", nil, nil, err
	}
	defer e.Close()

	date, rows, err := e.rows()
	if err != nil {
		return "", nil, e.warnings, err
	}

	items, dropped, err := tables.Items(date, rows)
	if err != nil {
		return date, nil, e.warnings, fmt.Errorf("%s: %w", e.name, err)
	}
	for _, row := range dropped {
		e.warn(WarnRowDropped, "row %s has no description or price", row)
	}
	return date, items, e.warnings, nil
}

// IsOCRUnavailable reports whether err means the binary was built without
// OCR support.
func IsOCRUnavailable(err error) bool {
	return errors.Is(err, ocr.ErrOCRNotEnabled)
}
