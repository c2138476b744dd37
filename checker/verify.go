package checker

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark/constraint"

	"github.com/zkcollective/plonkish"
	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/value"
)

// Verify checks every gate at every selector-enabled row, every copy
// constraint, and every instance binding against the supplied public inputs.
// It returns nil on acceptance and the joined list of failures on rejection.
// A failure is a value, never a panic: a structurally valid circuit with a
// wrong public input must reject, not crash.
func (ch *Checker) Verify() error {
	var failures []error

	for _, g := range ch.cs.Gates() {
		enabled := ch.selectors[g.Selector().Index()]
		for row := 0; row < ch.n; row++ {
			if !enabled[row] {
				continue
			}
			ctx := &rowContext{ch: ch, row: row}
			for i, p := range g.Polynomials() {
				v, ok := p.Eval(ctx).Unwrap()
				if !ok {
					failures = append(failures, fmt.Errorf(
						"gate %q constraint %d at row %d reads an unassigned cell", g.Name(), i, row))
					continue
				}
				if !v.IsZero() {
					failures = append(failures, fmt.Errorf(
						"gate %q constraint %d is not satisfied at row %d: %s != 0",
						g.Name(), i, row, ch.f.String(v)))
				}
			}
		}
	}

	for _, cp := range ch.copies {
		av, err := ch.cellValue(cp.A)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		bv, err := ch.cellValue(cp.B)
		if err != nil {
			failures = append(failures, err)
			continue
		}
		if av != bv {
			failures = append(failures, fmt.Errorf(
				"copy constraint %v = %v is not satisfied: %s != %s",
				cp.A, cp.B, ch.f.String(av), ch.f.String(bv)))
		}
	}

	return errors.Join(failures...)
}

func (ch *Checker) cellValue(ref plonkish.CellRef) (constraint.Element, error) {
	switch ref.Column.Kind {
	case plonkish.Advice:
		v, ok := ch.advice[ref.Column.Index][ref.Row].Unwrap()
		if !ok {
			return constraint.Element{}, fmt.Errorf("cell %v is unassigned", ref)
		}
		return v, nil
	case plonkish.Fixed:
		return ch.fixed[ref.Column.Index][ref.Row], nil
	case plonkish.Instance:
		if ch.instance == nil {
			return constraint.Element{}, fmt.Errorf("cell %v: no public inputs supplied", ref)
		}
		vec := ch.instance[ref.Column.Index]
		if ref.Row < 0 || ref.Row >= len(vec) {
			return constraint.Element{}, fmt.Errorf("%w: %v, public input length %d",
				plonkish.ErrInstanceOutOfRange, ref, len(vec))
		}
		return vec[ref.Row], nil
	}
	return constraint.Element{}, fmt.Errorf("cell %v has unknown column kind", ref)
}

// rowContext anchors gate evaluation at one row. Rotations wrap around the
// 2^k table, matching the wrap-around semantics of the polynomial domain.
type rowContext struct {
	ch  *Checker
	row int
}

func (c *rowContext) resolve(at plonkish.Rotation) int {
	return ((c.row+int(at))%c.ch.n + c.ch.n) % c.ch.n
}

func (c *rowContext) Advice(col plonkish.Column, at plonkish.Rotation) value.Value {
	return c.ch.advice[col.Index][c.resolve(at)]
}

func (c *rowContext) Fixed(col plonkish.Column, at plonkish.Rotation) value.Value {
	return value.Known(c.ch.fixed[col.Index][c.resolve(at)])
}

func (c *rowContext) Field() field.Field {
	return c.ch.f
}
