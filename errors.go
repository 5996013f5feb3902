package pricebook

import "github.com/tsawler/pricebook/model"

// Error classes, re-exported from package model for convenience.
//
//	_, _, err := pricebook.Open("invoice.html").Items()
//	switch {
//	case errors.Is(err, pricebook.ErrStructural):
//	    // not a supported invoice layout
//	case errors.Is(err, pricebook.ErrFormat):
//	    // a cell did not match its expected pattern
//	}
var (
	ErrStructural = model.ErrStructural
	ErrFormat     = model.ErrFormat
	ErrIO         = model.ErrIO
)
