package tables

import (
	"math"

	"github.com/tsawler/pricebook/model"
)

// Columns holds the column anchors of one table instance. The zero value
// is an empty set ready for a new table.
type Columns struct {
	anchors   []float64
	firstRowY float64
	started   bool
}

// Reset discards the anchors and the first-row marker
func (c *Columns) Reset() {
	c.anchors = c.anchors[:0]
	c.firstRowY = 0
	c.started = false
}

// Started reports whether the first row has been seen
func (c *Columns) Started() bool {
	return c.started
}

// FirstRowY returns the y of the table's first row
func (c *Columns) FirstRowY() (float64, bool) {
	return c.firstRowY, c.started
}

// Anchors returns the anchors in the order they were found
func (c *Columns) Anchors() []float64 {
	return c.anchors
}

// Observe feeds a table fragment's position. The first fragment with
// leading text fixes the first row; every fragment on exactly that row,
// the first included, adds its x as the next anchor.
func (c *Columns) Observe(pos model.Coordinate, leading bool) {
	if !c.started && leading {
		c.firstRowY = pos.Y
		c.started = true
	}
	if c.started && pos.Y == c.firstRowY {
		c.anchors = append(c.anchors, pos.X)
	}
}

// Assign returns the index of the anchor nearest to x
func (c *Columns) Assign(x float64) (int, bool) {
	return Nearest(c.anchors, x)
}

// Nearest returns the index of the anchor closest to x. When several
// anchors are equally close the lowest index wins. It returns false when
// there are no anchors.
func Nearest(anchors []float64, x float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, a := range anchors {
		d := math.Abs(a - x)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, best >= 0
}
