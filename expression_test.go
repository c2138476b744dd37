package plonkish

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/field/bn254"
	"github.com/zkcollective/plonkish/value"
)

// mapContext resolves queries from fixed per-column, per-rotation tables.
type mapContext struct {
	f      field.Field
	advice map[Column]map[Rotation]value.Value
	fixed  map[Column]map[Rotation]value.Value
}

func (c *mapContext) Advice(col Column, at Rotation) value.Value {
	return c.advice[col][at]
}

func (c *mapContext) Fixed(col Column, at Rotation) value.Value {
	return c.fixed[col][at]
}

func (c *mapContext) Field() field.Field {
	return c.f
}

func TestExpressionEval(t *testing.T) {
	f := &bn254.Field{}
	cs := NewConstraintSystem()
	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	sel := cs.Selector()

	var poly Expression
	cs.CreateGate("g", func(v *VirtualCells) {
		x := v.QueryAdvice(a, RotationCur)
		y := v.QueryAdvice(b, RotationCur)
		z := v.QueryAdvice(a, RotationNext)
		// x*y + x - z
		poly = Sub(Sum(Product(x, y), x), z)
		v.WithSelector(sel, poly)
	})

	ctx := &mapContext{
		f: f,
		advice: map[Column]map[Rotation]value.Value{
			a: {
				RotationCur:  value.Known(f.FromInterface(3)),
				RotationNext: value.Known(f.FromInterface(15)),
			},
			b: {RotationCur: value.Known(f.FromInterface(4))},
		},
	}

	// 3*4 + 3 - 15 = 0
	v, ok := poly.Eval(ctx).Unwrap()
	require.True(t, ok)
	assert.True(t, v.IsZero())

	// unknown operand collapses the whole evaluation
	ctx.advice[b][RotationCur] = value.Unknown()
	assert.False(t, poly.Eval(ctx).IsKnown())
}

func TestExpressionDegree(t *testing.T) {
	cs := NewConstraintSystem()
	a := cs.AdviceColumn()
	sel := cs.Selector()

	cs.CreateGate("g", func(v *VirtualCells) {
		x := v.QueryAdvice(a, RotationCur)
		cube := Product(Product(x, x), x)
		assert.Equal(t, 3, cube.Degree())
		assert.Equal(t, 3, Sum(cube, x).Degree())
		assert.Equal(t, 0, Constant(constraint.Element{1}).Degree())
		assert.Equal(t, 1, Neg(x).Degree())
		v.WithSelector(sel, cube)
	})
}

func TestConstantExpression(t *testing.T) {
	f := &bn254.Field{}
	ctx := &mapContext{f: f}

	v, ok := Constant(f.FromInterface(42)).Eval(ctx).Unwrap()
	require.True(t, ok)
	assert.Equal(t, f.FromInterface(42), v)
}
