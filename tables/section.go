package tables

import (
	"fmt"
	"strings"
)

// State is a state of the section scanner. States below InTable are
// seeking the header; InTable means fragments are table cells.
type State int

const (
	SeekSupplied State = iota
	SeekLine
	SeekDescription
	SeekOrdered
	SeekSecondSupplied
	SeekPrice
	SeekAmount
	InTable
)

// Terminator tokens, after space cleaning
const (
	SubtotalMarker         = "Sub Total:"
	RegisteredOfficePrefix = "Registered Office: "
)

// headerTokens[s] is the token that advances state s
var headerTokens = [InTable]string{
	SeekSupplied:       "Supplied",
	SeekLine:           "Line",
	SeekDescription:    "Description",
	SeekOrdered:        "Ordered",
	SeekSecondSupplied: "Supplied",
	SeekPrice:          "Price",
	SeekAmount:         "Amount",
}

// String returns a readable name for the state
func (s State) String() string {
	if s == InTable {
		return "in-table"
	}
	if s >= 0 && s < InTable {
		return fmt.Sprintf("seek-%s", strings.ToLower(headerTokens[s]))
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// InTable reports whether s is inside an item table
func (s State) InTable() bool {
	return s == InTable
}

// IsTerminator reports whether token ends an item table
func IsTerminator(token string) bool {
	return token == SubtotalMarker || strings.HasPrefix(token, RegisteredOfficePrefix)
}

// Next is the scanner's transition function. The header must match
// exactly and contiguously; any other token while seeking returns to
// SeekSupplied, discarding partial progress. Inside a table only a
// terminator leaves it.
func Next(s State, token string) State {
	if s == InTable {
		if IsTerminator(token) {
			return SeekSupplied
		}
		return InTable
	}
	if s >= 0 && s < InTable && token == headerTokens[s] {
		return s + 1
	}
	return SeekSupplied
}
