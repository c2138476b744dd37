package plonkish

import "errors"

// Assignment and binding failures. These indicate structural mistakes in
// synthesis code, never bad witness data; a failed synthesis aborts before
// any verification is attempted and retrying cannot succeed.
var (
	// ErrUnregisteredColumn is returned when a cell write targets a column
	// the constraint system never allocated.
	ErrUnregisteredColumn = errors.New("column is not registered in the constraint system")

	// ErrEqualityNotEnabled is returned when a copy constraint touches a
	// column whose equality was not enabled during configuration.
	ErrEqualityNotEnabled = errors.New("equality is not enabled on the column")

	// ErrNoConstantColumn is returned by the constant-binding path when no
	// fixed column was enabled for constants.
	ErrNoConstantColumn = errors.New("no fixed column is enabled for constants")

	// ErrNotEnoughRows is returned when an assignment falls outside the
	// 2^k rows of the circuit.
	ErrNotEnoughRows = errors.New("row is out of range for the circuit size")

	// ErrInstanceOutOfRange reports a public binding whose instance row
	// exceeds the supplied public input length. It is detected by the
	// engine at verification time, not during synthesis.
	ErrInstanceOutOfRange = errors.New("instance row exceeds the public input length")
)
