// Package value implements a deferred field element: a cell value that is
// either concretely known or symbolically unknown. The same synthesis code
// runs with known values when proving and with unknown values when deriving
// key material, so all arithmetic is lifted through this wrapper and
// collapses to unknown whenever any operand is unknown.
package value

import "github.com/consensys/gnark/constraint"

type Value struct {
	known bool
	inner constraint.Element
}

// Known wraps a concrete field element.
func Known(v constraint.Element) Value {
	return Value{known: true, inner: v}
}

// Unknown returns the symbolic placeholder used during key generation.
// It is also the zero value of Value.
func Unknown() Value {
	return Value{}
}

func (v Value) IsKnown() bool {
	return v.known
}

// Unwrap returns the wrapped element and whether it is known.
func (v Value) Unwrap() (constraint.Element, bool) {
	return v.inner, v.known
}

func (v Value) Add(f constraint.Field, o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return Known(f.Add(v.inner, o.inner))
}

func (v Value) Mul(f constraint.Field, o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return Known(f.Mul(v.inner, o.inner))
}

func (v Value) Sub(f constraint.Field, o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	return Known(f.Sub(v.inner, o.inner))
}

func (v Value) Neg(f constraint.Field) Value {
	if !v.known {
		return Unknown()
	}
	return Known(f.Neg(v.inner))
}

// Equal reports whether both values are known and carry the same element.
func (v Value) Equal(o Value) bool {
	return v.known && o.known && v.inner == o.inner
}

func (v Value) String(f constraint.Field) string {
	if !v.known {
		return "<unknown>"
	}
	return f.String(v.inner)
}
