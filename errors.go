package soll

import "fmt"

// Error is a string type for declaring sentinel errors as
// constants. Errors wrapped with fmt.Errorf and %w remain
// comparable with errors.Is.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

const (
	// ErrOutOfRange is returned (wrapped) by operations that receive
	// a position outside of the list. Reads and removals accept
	// 0 <= pos < Len(); Insert accepts 0 <= pos <= Len().
	ErrOutOfRange Error = "out of range"

	// ErrUninitializedContainer is the content of the panic produced
	// when adding values to a nil list, or to a list constructed
	// without an ordering function.
	ErrUninitializedContainer Error = "uninitialized container"

	// ErrCorrupted is returned (wrapped) by Validate when the
	// structure of the list violates one of its invariants.
	ErrCorrupted Error = "corrupted list structure"
)

// NotFound is the index Search returns when no element matches.
const NotFound = -1

func rangeError(pos, length int) error {
	return fmt.Errorf("position %d, length %d: %w", pos, length, ErrOutOfRange)
}
