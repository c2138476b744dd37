package plonkish

import "fmt"

// ColumnKind distinguishes the three data lanes of a Plonkish table.
type ColumnKind uint8

const (
	// Advice columns hold private, per-instance witness values.
	Advice ColumnKind = iota
	// Instance columns hold public, per-instance values.
	Instance
	// Fixed columns hold circuit-wide constants baked into key material.
	Fixed
)

func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	case Fixed:
		return "fixed"
	}
	return fmt.Sprintf("column kind %d", uint8(k))
}

// Column is a handle to a lane of cells across all circuit rows.
// Handles are allocated by the ConstraintSystem and are only meaningful
// for the system that created them.
type Column struct {
	Kind  ColumnKind
	Index int
}

func (c Column) String() string {
	return fmt.Sprintf("%s[%d]", c.Kind, c.Index)
}

// Selector is a per-row binary flag deciding whether a gate's polynomial
// identity is enforced at that row.
type Selector struct {
	index int
}

func (s Selector) Index() int {
	return s.index
}

// Rotation addresses a row relative to the row a gate is evaluated at.
type Rotation int

const (
	RotationPrev Rotation = -1
	RotationCur  Rotation = 0
	RotationNext Rotation = 1
)

// CellRef identifies an assigned cell by its absolute table position.
// It is the identity used for copy constraints.
type CellRef struct {
	Column Column
	Row    int
}

func (c CellRef) String() string {
	return fmt.Sprintf("%v@%d", c.Column, c.Row)
}
