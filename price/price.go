// Package price normalizes invoice price cells into exact [model.Price]
// values.
//
// Two price shapes are recognized: a unit price such as "$12.34", and a
// per-kilogram price such as "$10.00/Kg". A per-kilogram price is resolved
// to the price actually charged by multiplying with the weight factor
// embedded in the item name:
//
//	price.Normalize("Lamb Leg 1kg - 0.75kg", "$10.00/Kg") // $7.50
//	price.Normalize("Lamb Leg 1kg - 500g", "$10.00/Kg")   // $5.00
package price

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/pricebook/model"
)

// Kind is the shape of a quoted price
type Kind int

const (
	// Unit is an absolute price for the line.
	Unit Kind = iota
	// PerKilogram is a price per kilogram of the item's weight.
	PerKilogram
)

// String returns "unit" or "per-kg"
func (k Kind) String() string {
	if k == PerKilogram {
		return "per-kg"
	}
	return "unit"
}

var (
	perKgPattern = regexp.MustCompile(`[$]([0-9]+[.][0-9][0-9])/Kg`)
	unitPattern  = regexp.MustCompile(`[$]([0-9]+[.][0-9][0-9])`)

	// weightPattern matches "<item> <package-weight> - <factor-weight>".
	weightPattern = regexp.MustCompile(`(?P<name>.+) (?:[^ ]+k?g) - (?P<factor>[^ ]+k?g)`)
	factorIndex   = weightPattern.SubexpIndex("factor")
)

// Quote is a parsed price cell
type Quote struct {
	Cents float64
	Kind  Kind
}

// ParseQuote parses a price cell. The per-kilogram shape is tried first.
func ParseQuote(text string) (Quote, error) {
	kind := PerKilogram
	m := perKgPattern.FindStringSubmatch(text)
	if m == nil {
		kind = Unit
		m = unitPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return Quote{}, model.NewFormatError("price is neither $N.NN nor $N.NN/Kg", text)
	}

	digits := strings.Replace(m[1], ".", "", 1)
	cents, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return Quote{}, fmt.Errorf("price %q: %w", text, model.NewFormatError("price amount is not a number", m[1]))
	}
	return Quote{Cents: cents, Kind: kind}, nil
}

// Factor returns the weight in kilograms embedded in an item name of the
// form "<item> <package-weight> - <factor-weight>". A factor ending in
// "kg" is taken as kilograms, one ending in "g" as grams.
func Factor(name string) (float64, error) {
	m := weightPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, model.NewFormatError("price is per-kg but name pattern \"<item> <weight> - <weight>\" absent", name)
	}

	factor := m[factorIndex]
	var (
		value   string
		divisor float64
	)
	switch {
	case strings.HasSuffix(factor, "kg"):
		value, divisor = strings.TrimSuffix(factor, "kg"), 1
	case strings.HasSuffix(factor, "g"):
		value, divisor = strings.TrimSuffix(factor, "g"), 1000
	default:
		return 0, model.NewFormatError("weight factor must end in kg or g", factor)
	}

	w, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, model.NewFormatError("weight factor is not a number", factor)
	}
	return w / divisor, nil
}

// Normalize parses the price cell of an item and returns the price charged.
// Per-kilogram prices are multiplied by the weight factor found in name;
// unit prices are returned as quoted. Sub-cent precision is truncated.
func Normalize(name, price string) (model.Price, error) {
	q, err := ParseQuote(price)
	if err != nil {
		return model.Price{}, err
	}

	factor := 1.0
	if q.Kind == PerKilogram {
		factor, err = Factor(name)
		if err != nil {
			return model.Price{}, fmt.Errorf("price %q: %w", price, err)
		}
	}

	return model.PriceFromCents(q.Cents * factor), nil
}
