package layout

import (
	"cmp"
	"slices"

	"github.com/tsawler/pricebook/htmldoc"
)

// Linearize returns the fragments of every page in approximate reading
// order: pages in document order, and within a page top to bottom, then
// left to right. Fragments without a position keep their document order
// after the positioned fragments of their page.
func Linearize(pages []htmldoc.Page) []htmldoc.Fragment {
	n := 0
	for _, p := range pages {
		n += len(p.Fragments)
	}

	ordered := make([]htmldoc.Fragment, 0, n)
	for _, p := range pages {
		ordered = append(ordered, SortPage(p.Fragments)...)
	}
	return ordered
}

// SortPage returns a copy of one page's fragments sorted by (y, x).
// Coordinates are compared with a total order, so the result is
// deterministic for any input.
func SortPage(fragments []htmldoc.Fragment) []htmldoc.Fragment {
	sorted := slices.Clone(fragments)
	slices.SortStableFunc(sorted, compareReadingOrder)
	return sorted
}

// compareReadingOrder orders positioned fragments by y then x, and places
// unpositioned fragments last.
func compareReadingOrder(a, b htmldoc.Fragment) int {
	pa, errA := a.Position()
	pb, errB := b.Position()

	switch {
	case errA != nil && errB != nil:
		return 0
	case errA != nil:
		return 1
	case errB != nil:
		return -1
	}

	if c := cmp.Compare(pa.Y, pb.Y); c != 0 {
		return c
	}
	return cmp.Compare(pa.X, pb.X)
}
