package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Price is an exact monetary value as whole units and sub-units (cents).
// Sub is always in [0, 100). A Price is for display and storage only.
type Price struct {
	Whole int
	Sub   int
}

// PriceFromCents converts a (possibly fractional) number of cents to a
// Price. Both parts are truncated toward zero; precision below one cent is
// discarded.
func PriceFromCents(cents float64) Price {
	return Price{
		Whole: int(math.Trunc(cents / 100)),
		Sub:   int(math.Trunc(math.Mod(cents, 100))),
	}
}

// NewPrice returns the Price of a whole number of cents
func NewPrice(cents int64) Price {
	return Price{Whole: int(cents / 100), Sub: int(cents % 100)}
}

// Cents returns the value in sub-units
func (p Price) Cents() int64 {
	return int64(p.Whole)*100 + int64(p.Sub)
}

// Decimal returns the value as a decimal with two fractional digits
func (p Price) Decimal() decimal.Decimal {
	return decimal.New(p.Cents(), -2)
}

// String renders the price as $W.SS
func (p Price) String() string {
	return fmt.Sprintf("$%d.%02d", p.Whole, p.Sub)
}

// Item is one extracted invoice line: the invoice date, the normalized item
// name and the normalized price.
type Item struct {
	Date  string
	Name  string
	Price Price
}

func (it Item) String() string {
	return fmt.Sprintf("%s %q %s", it.Date, it.Name, it.Price)
}
