package pricebook

import (
	"log/slog"

	"github.com/tsawler/pricebook/ocr"
)

// ExtractOptions holds configuration for invoice extraction.
type ExtractOptions struct {
	// Invoice date supplied by the caller, replacing the document's own
	date    string
	dateSet bool

	// OCR options, used only for image input
	minImageWidth int
	language      string
	pageSegMode   ocr.PageSegMode

	logger *slog.Logger
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		minImageWidth: ocr.DefaultMinWidth,
		language:      "eng",
		pageSegMode:   ocr.PageSparseText,
	}
}

// clone creates a copy of ExtractOptions. The logger is shared.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}
