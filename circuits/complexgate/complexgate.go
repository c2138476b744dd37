// Package complexgate proves knowledge of three private inputs a, b, c
// satisfying
//
//	d   = a^2 * b^2 * c
//	e   = c + d
//	out = e^3
//
// revealing only out as a public value.
//
// Table layout, one region of two rows:
//
//	| instance | advice0 | advice1 | advice2 | s_cpx |
//	|----------|---------|---------|---------|-------|
//	|   out    |    a    |    b    |    c    |   1   |
//	|          |   out   |         |         |       |
package complexgate

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkcollective/plonkish"
	"github.com/zkcollective/plonkish/value"
)

// Config captures the column and selector handles of the circuit shape.
type Config struct {
	Advice   [3]plonkish.Column
	Instance plonkish.Column
	SCpx     plonkish.Selector
}

// Chip assigns the witness cells the complex gate reads and writes.
type Chip struct {
	config Config
}

func NewChip(config Config) *Chip {
	return &Chip{config: config}
}

// Configure declares the circuit shape: three advice columns, one instance
// column, one fixed column for constants, one selector, and the single
// "complex_gate" identity
//
//	(((l*r) * (l*r)) * c + c)^3 - out = 0
//
// with l, r, c read at the selector row and out at the next row of advice0.
func Configure(meta *plonkish.ConstraintSystem) Config {
	advice := [3]plonkish.Column{
		meta.AdviceColumn(),
		meta.AdviceColumn(),
		meta.AdviceColumn(),
	}
	instance := meta.InstanceColumn()
	constant := meta.FixedColumn()

	meta.EnableEquality(instance)
	meta.EnableConstant(constant)
	for _, col := range advice {
		meta.EnableEquality(col)
	}
	sCpx := meta.Selector()

	meta.CreateGate("complex_gate", func(v *plonkish.VirtualCells) {
		l := v.QueryAdvice(advice[0], plonkish.RotationCur)
		r := v.QueryAdvice(advice[1], plonkish.RotationCur)
		c := v.QueryAdvice(advice[2], plonkish.RotationCur)
		out := v.QueryAdvice(advice[0], plonkish.RotationNext)

		lr := plonkish.Product(l, r)
		e := plonkish.Sum(plonkish.Product(plonkish.Product(lr, lr), c), c)
		eCub := plonkish.Product(plonkish.Product(e, e), e)

		v.WithSelector(sCpx, plonkish.Sub(eCub, out))
	})

	return Config{Advice: advice, Instance: instance, SCpx: sCpx}
}

// Assign fills one region with the gate's operands and output and returns
// the output cell. a and b are plain witness cells; c goes through the
// constant-binding path, committing its value to the fixed column.
//
// The selector is enabled at offset 0, the row holding a, b and c, and the
// output is written at offset 1. The gate reads its output at RotationNext,
// so both offsets are part of its contract: shifting either one leaves the
// identity checking unrelated (or unassigned) cells.
func (ch *Chip) Assign(l *plonkish.Layouter, a, b value.Value, c constraint.Element) (plonkish.AssignedCell, error) {
	f := l.Field()
	var out plonkish.AssignedCell
	err := l.AssignRegion("load private & witness", func(r *plonkish.Region) error {
		offset := 0
		if err := r.EnableSelector(ch.config.SCpx, offset); err != nil {
			return err
		}

		aCell, err := r.AssignAdvice("private input a", ch.config.Advice[0], offset, a)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdvice("private input b", ch.config.Advice[1], offset, b)
		if err != nil {
			return err
		}
		cCell, err := r.AssignAdviceFromConstant("private input c", ch.config.Advice[2], offset, c)
		if err != nil {
			return err
		}
		offset++

		// mirror the gate polynomial exactly: e = a*b * a*b * c + c
		ab := aCell.Value().Mul(f, bCell.Value())
		e := ab.Mul(f, ab).Mul(f, cCell.Value()).Add(f, cCell.Value())
		eCub := e.Mul(f, e).Mul(f, e)

		out, err = r.AssignAdvice("out", ch.config.Advice[0], offset, eCub)
		return err
	})
	if err != nil {
		return plonkish.AssignedCell{}, err
	}
	return out, nil
}

// ExposePublic binds the output cell to the instance column at the given
// absolute row.
func (ch *Chip) ExposePublic(l *plonkish.Layouter, out plonkish.AssignedCell, row int) error {
	return l.ConstrainInstance(out.Ref(), ch.config.Instance, row)
}

// Circuit is the driver holding one witness: a and b as deferred values, c
// as the field element committed through the constant path. The zero value
// is the witness-free circuit.
type Circuit struct {
	A value.Value
	B value.Value
	C constraint.Element
}

// WithoutWitnesses blanks a and b and keeps c, which is part of the
// circuit's structural configuration rather than a per-proof secret.
func (c *Circuit) WithoutWitnesses() plonkish.Circuit[Config] {
	return &Circuit{A: value.Unknown(), B: value.Unknown(), C: c.C}
}

func (c *Circuit) Configure(meta *plonkish.ConstraintSystem) Config {
	return Configure(meta)
}

func (c *Circuit) Synthesize(config Config, l *plonkish.Layouter) error {
	chip := NewChip(config)
	out, err := chip.Assign(l, c.A, c.B, c.C)
	if err != nil {
		return err
	}
	return chip.ExposePublic(l, out, 0)
}
