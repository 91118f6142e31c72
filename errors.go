package hufftree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyAlphabet is returned by BuildTree when there are no symbols
	// to build a tree from.
	ErrEmptyAlphabet = errors.New("hufftree: empty alphabet")

	// ErrMissingCode is wrapped by *MissingCodeError.
	ErrMissingCode = errors.New("hufftree: no code for symbol")

	// ErrMalformedDescriptor is returned when a tree descriptor cannot be
	// parsed back into a strict binary tree.
	ErrMalformedDescriptor = errors.New("hufftree: malformed tree descriptor")
)

// MissingCodeError is returned when encoding a byte that has no entry in
// the CodeTable, which means the table was built for some other input.
type MissingCodeError struct {
	Symbol Symbol
	Offset int
}

func (err *MissingCodeError) Error() string {
	return fmt.Sprintf("hufftree: no code for symbol %#02x at offset %d", byte(err.Symbol), err.Offset)
}

func (err *MissingCodeError) Unwrap() error {
	return ErrMissingCode
}

func malformedf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrMalformedDescriptor, fmt.Sprintf(format, args...))
}
