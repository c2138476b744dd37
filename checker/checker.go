// Package checker is a mock proving engine. It lays a circuit out over 2^k
// rows, records every cell write, selector row and copy constraint, and then
// checks each declared identity directly against the witness instead of
// producing a proof. It implements the plonkish.Assignment interface and is
// the engine used by circuit tests and key-material derivation.
package checker

import (
	"fmt"

	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/logger"

	"github.com/zkcollective/plonkish"
	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/value"
)

// CopyConstraint binds two cells to carry equal values.
type CopyConstraint struct {
	A, B plonkish.CellRef
}

// Checker holds the fully laid-out table of one synthesis pass.
type Checker struct {
	k int
	n int
	f field.Field

	cs *plonkish.ConstraintSystem

	advice    [][]value.Value
	fixed     [][]constraint.Element
	selectors [][]bool
	copies    []CopyConstraint

	// public input vectors, one per instance column; nil when running a
	// structure-only pass for key derivation
	instance [][]constraint.Element
}

// Run configures the circuit, synthesizes it over 2^k rows and returns the
// laid-out table. instance carries one public input vector per instance
// column; pass nil for a structure-only pass (key derivation), in which case
// Verify must not be called.
func Run[C any](k int, circuit plonkish.Circuit[C], instance [][]constraint.Element, f field.Field) (*Checker, error) {
	if k < 1 || k > 30 {
		return nil, fmt.Errorf("circuit size parameter k=%d out of range", k)
	}

	cs := plonkish.NewConstraintSystem()
	config := circuit.Configure(cs)

	if instance != nil && len(instance) != cs.NumInstance() {
		return nil, fmt.Errorf("expected %d public input vectors, got %d", cs.NumInstance(), len(instance))
	}

	n := 1 << k
	ch := &Checker{
		k:         k,
		n:         n,
		f:         f,
		cs:        cs,
		advice:    make([][]value.Value, cs.NumAdvice()),
		fixed:     make([][]constraint.Element, cs.NumFixed()),
		selectors: make([][]bool, cs.NumSelectors()),
		instance:  instance,
	}
	for i := range ch.advice {
		ch.advice[i] = make([]value.Value, n)
	}
	for i := range ch.fixed {
		ch.fixed[i] = make([]constraint.Element, n)
	}
	for i := range ch.selectors {
		ch.selectors[i] = make([]bool, n)
	}

	l := plonkish.NewLayouter(ch, cs, f)
	if err := circuit.Synthesize(config, l); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().
		Int("k", k).
		Int("nbGates", len(cs.Gates())).
		Int("nbCopies", len(ch.copies)).
		Msg("circuit synthesized")

	return ch, nil
}

// EnableSelector implements plonkish.Assignment.
func (ch *Checker) EnableSelector(s plonkish.Selector, row int) error {
	if row < 0 || row >= ch.n {
		return fmt.Errorf("%w: selector %d at row %d, n=%d", plonkish.ErrNotEnoughRows, s.Index(), row, ch.n)
	}
	ch.selectors[s.Index()][row] = true
	return nil
}

// AssignAdvice implements plonkish.Assignment.
func (ch *Checker) AssignAdvice(col plonkish.Column, row int, v value.Value) (plonkish.CellRef, error) {
	if col.Kind != plonkish.Advice || col.Index >= len(ch.advice) {
		return plonkish.CellRef{}, fmt.Errorf("%w: %v", plonkish.ErrUnregisteredColumn, col)
	}
	if row < 0 || row >= ch.n {
		return plonkish.CellRef{}, fmt.Errorf("%w: %v row %d, n=%d", plonkish.ErrNotEnoughRows, col, row, ch.n)
	}
	ch.advice[col.Index][row] = v
	return plonkish.CellRef{Column: col, Row: row}, nil
}

// AssignFixed implements plonkish.Assignment.
func (ch *Checker) AssignFixed(col plonkish.Column, row int, c constraint.Element) (plonkish.CellRef, error) {
	if col.Kind != plonkish.Fixed || col.Index >= len(ch.fixed) {
		return plonkish.CellRef{}, fmt.Errorf("%w: %v", plonkish.ErrUnregisteredColumn, col)
	}
	if row < 0 || row >= ch.n {
		return plonkish.CellRef{}, fmt.Errorf("%w: %v row %d, n=%d", plonkish.ErrNotEnoughRows, col, row, ch.n)
	}
	ch.fixed[col.Index][row] = c
	return plonkish.CellRef{Column: col, Row: row}, nil
}

// Copy implements plonkish.Assignment.
func (ch *Checker) Copy(a, b plonkish.CellRef) error {
	ch.copies = append(ch.copies, CopyConstraint{A: a, B: b})
	return nil
}

func (ch *Checker) K() int {
	return ch.k
}

func (ch *Checker) ConstraintSystem() *plonkish.ConstraintSystem {
	return ch.cs
}

// FixedColumns returns a copy of the fixed column values.
func (ch *Checker) FixedColumns() [][]constraint.Element {
	out := make([][]constraint.Element, len(ch.fixed))
	for i, col := range ch.fixed {
		out[i] = append([]constraint.Element(nil), col...)
	}
	return out
}

// SelectorAssignment returns a copy of the per-row selector flags.
func (ch *Checker) SelectorAssignment() [][]bool {
	out := make([][]bool, len(ch.selectors))
	for i, col := range ch.selectors {
		out[i] = append([]bool(nil), col...)
	}
	return out
}

// CopyConstraints returns the recorded copy constraints.
func (ch *Checker) CopyConstraints() []CopyConstraint {
	return append([]CopyConstraint(nil), ch.copies...)
}
