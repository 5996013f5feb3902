package pricebook

import (
	"fmt"
	"strings"
)

// WarningCode classifies a Warning.
type WarningCode int

const (
	// WarnNoTable means no item table header was found in the document.
	WarnNoTable WarningCode = iota + 1
	// WarnRowDropped means a table row lacked a description or a price
	// and produced no item.
	WarnRowDropped
	// WarnDateOverridden means the caller's date replaced the date the
	// document carries.
	WarnDateOverridden
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarnNoTable:
		return "no-table"
	case WarnRowDropped:
		return "row-dropped"
	case WarnDateOverridden:
		return "date-overridden"
	default:
		return fmt.Sprintf("warning(%d)", int(c))
	}
}

// Warning is a non-fatal issue found during extraction. Extraction
// succeeded but the result may be incomplete.
type Warning struct {
	Code    WarningCode
	Message string
	// Source names the document the warning came from.
	Source string
}

func (w Warning) String() string {
	if w.Source == "" {
		return fmt.Sprintf("%s: %s", w.Code, w.Message)
	}
	return fmt.Sprintf("%s: %s: %s", w.Source, w.Code, w.Message)
}

// FormatWarnings joins warnings into one human-readable string, one per line.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
