// Package plonkish implements a minimal Plonkish arithmetization layer:
// advice/instance/fixed columns, selectors, polynomial gates over relative
// row rotations, region-scoped witness assignment with deferred values,
// copy constraints and constant binding. The static shape of a circuit is
// declared once on a ConstraintSystem; an engine (see the checker package)
// then drives synthesis and checks that every declared identity holds.
package plonkish

import "fmt"

// Gate is a named polynomial identity enforced at every row where its
// selector is enabled. Gates are declared during configuration and never
// mutated afterwards.
type Gate struct {
	name     string
	selector Selector
	polys    []Expression
}

func (g *Gate) Name() string {
	return g.name
}

func (g *Gate) Selector() Selector {
	return g.selector
}

func (g *Gate) Polynomials() []Expression {
	return g.polys
}

// ConstraintSystem collects the static shape of a circuit: the columns and
// selectors it uses and the gates binding them. It is independent of any
// witness and may be reused across many synthesis passes.
//
// Shape misdeclarations (querying an unregistered column, gating a fixed
// column with equality, ...) are programmer errors and panic; there is no
// data-dependent failure path during configuration.
type ConstraintSystem struct {
	numAdvice    int
	numInstance  int
	numFixed     int
	numSelectors int

	equality  map[Column]struct{}
	constants []Column
	gates     []*Gate
}

func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{
		equality: make(map[Column]struct{}),
	}
}

// AdviceColumn allocates a new advice column.
func (cs *ConstraintSystem) AdviceColumn() Column {
	c := Column{Kind: Advice, Index: cs.numAdvice}
	cs.numAdvice++
	return c
}

// InstanceColumn allocates a new instance column.
func (cs *ConstraintSystem) InstanceColumn() Column {
	c := Column{Kind: Instance, Index: cs.numInstance}
	cs.numInstance++
	return c
}

// FixedColumn allocates a new fixed column.
func (cs *ConstraintSystem) FixedColumn() Column {
	c := Column{Kind: Fixed, Index: cs.numFixed}
	cs.numFixed++
	return c
}

// Selector allocates a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	s := Selector{index: cs.numSelectors}
	cs.numSelectors++
	return s
}

// EnableEquality allows cells of the column to participate in copy
// constraints. Only advice and instance columns support equality.
func (cs *ConstraintSystem) EnableEquality(col Column) {
	cs.mustBeRegistered(col)
	if col.Kind == Fixed {
		panic("equality is only supported on advice and instance columns")
	}
	cs.equality[col] = struct{}{}
}

// EnableConstant marks a fixed column as the backing store for committed
// constants used by Region.AssignAdviceFromConstant.
func (cs *ConstraintSystem) EnableConstant(col Column) {
	cs.mustBeRegistered(col)
	if col.Kind != Fixed {
		panic("constants can only be enabled on fixed columns")
	}
	cs.constants = append(cs.constants, col)
}

// CreateGate declares a named gate. The callback queries cells through the
// VirtualCells and must register its constraints with WithSelector.
func (cs *ConstraintSystem) CreateGate(name string, f func(v *VirtualCells)) {
	v := &VirtualCells{cs: cs, gate: &Gate{name: name}}
	f(v)
	if !v.selectorSet {
		panic(fmt.Sprintf("gate %q declares no selector", name))
	}
	cs.gates = append(cs.gates, v.gate)
}

func (cs *ConstraintSystem) NumAdvice() int    { return cs.numAdvice }
func (cs *ConstraintSystem) NumInstance() int  { return cs.numInstance }
func (cs *ConstraintSystem) NumFixed() int     { return cs.numFixed }
func (cs *ConstraintSystem) NumSelectors() int { return cs.numSelectors }

func (cs *ConstraintSystem) Gates() []*Gate {
	return cs.gates
}

// EqualityEnabled reports whether copy constraints may touch the column.
func (cs *ConstraintSystem) EqualityEnabled(col Column) bool {
	_, ok := cs.equality[col]
	return ok
}

// ConstantColumns returns the fixed columns enabled for constant binding.
func (cs *ConstraintSystem) ConstantColumns() []Column {
	return cs.constants
}

// Registered reports whether the column handle was allocated by this system.
func (cs *ConstraintSystem) Registered(col Column) bool {
	if col.Index < 0 {
		return false
	}
	switch col.Kind {
	case Advice:
		return col.Index < cs.numAdvice
	case Instance:
		return col.Index < cs.numInstance
	case Fixed:
		return col.Index < cs.numFixed
	}
	return false
}

func (cs *ConstraintSystem) mustBeRegistered(col Column) {
	if !cs.Registered(col) {
		panic(fmt.Sprintf("column %v is not registered in this constraint system", col))
	}
}

// VirtualCells gives a gate declaration access to symbolic cell queries.
type VirtualCells struct {
	cs          *ConstraintSystem
	gate        *Gate
	selectorSet bool
}

// QueryAdvice returns the value of an advice column at the given rotation
// from the gate's row.
func (v *VirtualCells) QueryAdvice(col Column, at Rotation) Expression {
	v.cs.mustBeRegistered(col)
	if col.Kind != Advice {
		panic(fmt.Sprintf("QueryAdvice on %v", col))
	}
	return adviceQuery{col: col, at: at}
}

// QueryFixed returns the value of a fixed column at the given rotation from
// the gate's row.
func (v *VirtualCells) QueryFixed(col Column, at Rotation) Expression {
	v.cs.mustBeRegistered(col)
	if col.Kind != Fixed {
		panic(fmt.Sprintf("QueryFixed on %v", col))
	}
	return fixedQuery{col: col, at: at}
}

// WithSelector registers the gate's constraints, active only at rows where
// the selector is enabled.
func (v *VirtualCells) WithSelector(s Selector, polys ...Expression) {
	if s.index >= v.cs.numSelectors {
		panic("selector is not registered in this constraint system")
	}
	if v.selectorSet {
		panic(fmt.Sprintf("gate %q sets its selector twice", v.gate.name))
	}
	v.selectorSet = true
	v.gate.selector = s
	v.gate.polys = polys
}
