package plonkish

import (
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/value"
)

// Assignment is the narrow interface an engine exposes to synthesis: raw
// cell writes, selector enabling and copy constraints, all at absolute rows.
// Engines are expected to bounds-check rows against their 2^k table size.
type Assignment interface {
	EnableSelector(s Selector, row int) error
	AssignAdvice(col Column, row int, v value.Value) (CellRef, error)
	AssignFixed(col Column, row int, c constraint.Element) (CellRef, error)
	Copy(a, b CellRef) error
}

// AssignedCell is the handle returned by a cell write. It carries the cell's
// table identity, used later for equality binding, and the value written.
type AssignedCell struct {
	ref CellRef
	val value.Value
}

func (c AssignedCell) Ref() CellRef {
	return c.ref
}

func (c AssignedCell) Value() value.Value {
	return c.val
}

// Layouter places regions onto the table and routes assignments to the
// engine. It is a single-pass floor planner: each region starts at the first
// row after the previous one, and the fixed column enabled for constants is
// reserved for the constant side table.
type Layouter struct {
	engine Assignment
	cs     *ConstraintSystem
	f      field.Field

	nextRow int

	// committed constants, one fixed cell per distinct value
	constants   map[constraint.Element]CellRef
	constantRow int
}

func NewLayouter(engine Assignment, cs *ConstraintSystem, f field.Field) *Layouter {
	return &Layouter{
		engine:    engine,
		cs:        cs,
		f:         f,
		constants: make(map[constraint.Element]CellRef),
	}
}

func (l *Layouter) Field() field.Field {
	return l.f
}

// AssignRegion runs fn inside a fresh region. Offsets used by fn are
// relative to the region's start row.
func (l *Layouter) AssignRegion(name string, fn func(r *Region) error) error {
	r := &Region{layouter: l, name: name, start: l.nextRow}
	if err := fn(r); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	l.nextRow = r.start + r.rows
	return nil
}

// ConstrainInstance binds a previously assigned cell to the instance column
// entry at the given absolute row. The binding is checked by the engine at
// verification time; a row beyond the public input length is only rejected
// there.
func (l *Layouter) ConstrainInstance(cell CellRef, col Column, row int) error {
	if !l.cs.Registered(col) || col.Kind != Instance {
		return fmt.Errorf("%w: %v", ErrUnregisteredColumn, col)
	}
	if !l.cs.EqualityEnabled(col) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, col)
	}
	if !l.cs.EqualityEnabled(cell.Column) {
		return fmt.Errorf("%w: %v", ErrEqualityNotEnabled, cell.Column)
	}
	return l.engine.Copy(cell, CellRef{Column: col, Row: row})
}

// constantCell returns the fixed cell committed to c, allocating it on first
// use. Every advice cell bound to the same constant is copy-constrained to
// the same fixed cell, so all instances of the constant necessarily agree.
func (l *Layouter) constantCell(c constraint.Element) (CellRef, error) {
	if ref, ok := l.constants[c]; ok {
		return ref, nil
	}
	cols := l.cs.ConstantColumns()
	if len(cols) == 0 {
		return CellRef{}, ErrNoConstantColumn
	}
	ref, err := l.engine.AssignFixed(cols[0], l.constantRow, c)
	if err != nil {
		return CellRef{}, err
	}
	l.constantRow++
	l.constants[c] = ref
	return ref, nil
}

// Region is a sequential, row-indexed scope for related cell assignments.
// Offsets are relative; the layouter fixes the region's absolute position.
type Region struct {
	layouter *Layouter
	name     string
	start    int
	rows     int
}

func (r *Region) grow(offset int) {
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
}

// EnableSelector turns the selector on at the given offset. The offset must
// be the row holding the gate's current-row operands; enabling a selector at
// any other row silently leaves the gate unconstrained, so callers should
// treat the offset as part of the gate's contract, not a layout detail.
func (r *Region) EnableSelector(s Selector, offset int) error {
	if s.Index() >= r.layouter.cs.NumSelectors() {
		return fmt.Errorf("selector %d is not registered in the constraint system", s.Index())
	}
	if err := r.layouter.engine.EnableSelector(s, r.start+offset); err != nil {
		return err
	}
	r.grow(offset)
	return nil
}

// AssignAdvice writes a witness value into an advice column at the given
// offset and returns the cell handle.
func (r *Region) AssignAdvice(name string, col Column, offset int, v value.Value) (AssignedCell, error) {
	if !r.layouter.cs.Registered(col) || col.Kind != Advice {
		return AssignedCell{}, fmt.Errorf("%w: %v (%s)", ErrUnregisteredColumn, col, name)
	}
	ref, err := r.layouter.engine.AssignAdvice(col, r.start+offset, v)
	if err != nil {
		return AssignedCell{}, fmt.Errorf("%s: %w", name, err)
	}
	r.grow(offset)
	return AssignedCell{ref: ref, val: v}, nil
}

// AssignAdviceFromConstant writes a constant into an advice column and
// copy-constrains the cell against the fixed cell committed to that
// constant. The column must have equality enabled.
func (r *Region) AssignAdviceFromConstant(name string, col Column, offset int, c constraint.Element) (AssignedCell, error) {
	if !r.layouter.cs.EqualityEnabled(col) {
		return AssignedCell{}, fmt.Errorf("%w: %v (%s)", ErrEqualityNotEnabled, col, name)
	}
	fixed, err := r.layouter.constantCell(c)
	if err != nil {
		return AssignedCell{}, fmt.Errorf("%s: %w", name, err)
	}
	cell, err := r.AssignAdvice(name, col, offset, value.Known(c))
	if err != nil {
		return AssignedCell{}, err
	}
	if err := r.layouter.engine.Copy(cell.ref, fixed); err != nil {
		return AssignedCell{}, fmt.Errorf("%s: %w", name, err)
	}
	return cell, nil
}
