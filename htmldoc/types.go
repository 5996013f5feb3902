package htmldoc

import (
	"golang.org/x/net/html"

	"github.com/tsawler/pricebook/model"
)

// Fragment is a text-bearing node of a loaded document together with its
// position on the page.
type Fragment struct {
	node *html.Node

	text    string
	lead    string
	hasLead bool

	pos    model.Coordinate
	posErr error
}

// Text returns all text beneath the fragment, concatenated in document order.
func (f Fragment) Text() string {
	return f.text
}

// LeadingText returns the fragment's first child when that child is a text
// node. Fragments that start with markup (for example <p><b>..</b></p>)
// have no leading text.
func (f Fragment) LeadingText() (string, bool) {
	return f.lead, f.hasLead
}

// Position returns the fragment's (x, y) pixel position, or a structural
// error when the fragment carries no usable positioning style.
func (f Fragment) Position() (model.Coordinate, error) {
	return f.pos, f.posErr
}

// HasPosition reports whether Position succeeds
func (f Fragment) HasPosition() bool {
	return f.posErr == nil
}

// Node returns the underlying node. It belongs to the Document the
// fragment was read from.
func (f Fragment) Node() *html.Node {
	return f.node
}

// NewFragment builds a fragment that is not backed by a document node.
// Its whole text is its leading text. It is intended for tests and for
// callers producing fragments from their own sources.
func NewFragment(text string, pos model.Coordinate) Fragment {
	return Fragment{text: text, lead: text, hasLead: true, pos: pos}
}

// WithoutLeadingText returns a copy of f whose content behaves like markup
// (for example a bold header) rather than a plain text cell.
func (f Fragment) WithoutLeadingText() Fragment {
	f.lead, f.hasLead = "", false
	return f
}

// Page is one page container of a document
type Page struct {
	// Number is the 1-based page index in document order.
	Number int
	// ID is the container's id attribute, e.g. "page1-div".
	ID string
	// Fragments in document order.
	Fragments []Fragment
}
