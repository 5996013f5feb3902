package model

import (
	"errors"
	"fmt"
)

// Error classes for extraction failures. Use errors.Is to classify an
// error returned by any pricebook package.
var (
	// ErrStructural marks a required element or attribute missing from a document.
	ErrStructural = errors.New("structural error")
	// ErrFormat marks text that does not match an expected pattern.
	ErrFormat = errors.New("format error")
	// ErrIO marks input that could not be read.
	ErrIO = errors.New("i/o error")
)

// StructuralError reports a required document element or attribute that is
// missing or unusable.
type StructuralError struct {
	// What names the missing element, e.g. `meta[name=date]`.
	What string
	// Input is the offending markup or attribute value, if any.
	Input string
}

// NewStructuralError creates a StructuralError
func NewStructuralError(what, input string) *StructuralError {
	return &StructuralError{What: what, Input: input}
}

func (e *StructuralError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("structural error: %s", e.What)
	}
	return fmt.Sprintf("structural error: %s (input %q)", e.What, e.Input)
}

// Unwrap returns ErrStructural
func (e *StructuralError) Unwrap() error {
	return ErrStructural
}

// FormatError reports text that failed to match an expected pattern.
type FormatError struct {
	// Pattern describes the expected shape.
	Pattern string
	// Input is the text that failed to match.
	Input string
}

// NewFormatError creates a FormatError
func NewFormatError(pattern, input string) *FormatError {
	return &FormatError{Pattern: pattern, Input: input}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s (input %q)", e.Pattern, e.Input)
}

// Unwrap returns ErrFormat
func (e *FormatError) Unwrap() error {
	return ErrFormat
}

// WrapIO marks err as an I/O failure while keeping it inspectable.
func WrapIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}
