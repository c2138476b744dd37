package plonkish

import (
	"github.com/consensys/gnark/constraint"

	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/value"
)

// Expression is a node of a gate polynomial: a query of a cell at a relative
// rotation, a constant, or a combination of sub-expressions. Expressions are
// built during configuration and evaluated row by row by the engine.
type Expression interface {
	// Eval resolves the expression at the row the context is anchored to.
	// The result is unknown if any queried cell is unassigned.
	Eval(ctx EvalContext) value.Value
	// Degree returns the degree of the polynomial, counting every cell
	// query as degree one.
	Degree() int
}

// EvalContext resolves queried cells when a gate is evaluated at some row.
// Implemented by the engine checking the circuit.
type EvalContext interface {
	Advice(col Column, at Rotation) value.Value
	Fixed(col Column, at Rotation) value.Value
	Field() field.Field
}

type adviceQuery struct {
	col Column
	at  Rotation
}

func (q adviceQuery) Eval(ctx EvalContext) value.Value {
	return ctx.Advice(q.col, q.at)
}

func (q adviceQuery) Degree() int { return 1 }

type fixedQuery struct {
	col Column
	at  Rotation
}

func (q fixedQuery) Eval(ctx EvalContext) value.Value {
	return ctx.Fixed(q.col, q.at)
}

func (q fixedQuery) Degree() int { return 1 }

type constExpr struct {
	c constraint.Element
}

func (e constExpr) Eval(ctx EvalContext) value.Value {
	return value.Known(e.c)
}

func (e constExpr) Degree() int { return 0 }

type sumExpr struct {
	a, b Expression
}

func (e sumExpr) Eval(ctx EvalContext) value.Value {
	return e.a.Eval(ctx).Add(ctx.Field(), e.b.Eval(ctx))
}

func (e sumExpr) Degree() int {
	return max(e.a.Degree(), e.b.Degree())
}

type productExpr struct {
	a, b Expression
}

func (e productExpr) Eval(ctx EvalContext) value.Value {
	return e.a.Eval(ctx).Mul(ctx.Field(), e.b.Eval(ctx))
}

func (e productExpr) Degree() int {
	return e.a.Degree() + e.b.Degree()
}

type negExpr struct {
	a Expression
}

func (e negExpr) Eval(ctx EvalContext) value.Value {
	return e.a.Eval(ctx).Neg(ctx.Field())
}

func (e negExpr) Degree() int {
	return e.a.Degree()
}

// Constant returns the expression holding a fixed field element.
func Constant(c constraint.Element) Expression {
	return constExpr{c: c}
}

// Sum returns a + b.
func Sum(a, b Expression) Expression {
	return sumExpr{a: a, b: b}
}

// Sub returns a - b.
func Sub(a, b Expression) Expression {
	return sumExpr{a: a, b: negExpr{a: b}}
}

// Product returns a * b.
func Product(a, b Expression) Expression {
	return productExpr{a: a, b: b}
}

// Neg returns -a.
func Neg(a Expression) Expression {
	return negExpr{a: a}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
