package htmldoc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tsawler/pricebook/model"
)

var (
	topPattern  = regexp.MustCompile(`top:([^p]+)px`)
	leftPattern = regexp.MustCompile(`left:([^p]+)px`)
)

// positionSyntax describes the expected positioning style
const positionSyntax = "positioning style top:<Y>px; left:<X>px"

// ParseStyle extracts the (left, top) pixel offsets from an inline style
// attribute such as "position:absolute;top:112px;left:68px".
func ParseStyle(style string) (model.Coordinate, error) {
	top := topPattern.FindStringSubmatch(style)
	left := leftPattern.FindStringSubmatch(style)
	if top == nil || left == nil {
		return model.Coordinate{}, model.NewStructuralError(positionSyntax, style)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(top[1]), 64)
	if err != nil {
		return model.Coordinate{}, model.NewStructuralError(positionSyntax, style)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(left[1]), 64)
	if err != nil {
		return model.Coordinate{}, model.NewStructuralError(positionSyntax, style)
	}

	return model.Coordinate{X: x, Y: y}, nil
}
