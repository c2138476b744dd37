package value

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zkcollective/plonkish/field/bn254"
)

func TestKnownArithmetic(t *testing.T) {
	f := &bn254.Field{}
	a := Known(f.FromInterface(3))
	b := Known(f.FromInterface(4))

	sum, ok := a.Add(f, b).Unwrap()
	assert.True(t, ok)
	assert.Equal(t, f.FromInterface(7), sum)

	prod, ok := a.Mul(f, b).Unwrap()
	assert.True(t, ok)
	assert.Equal(t, f.FromInterface(12), prod)

	diff, ok := b.Sub(f, a).Unwrap()
	assert.True(t, ok)
	assert.Equal(t, f.FromInterface(1), diff)

	neg := a.Neg(f).Add(f, a)
	v, ok := neg.Unwrap()
	assert.True(t, ok)
	assert.True(t, v.IsZero())
}

func TestUnknownPropagates(t *testing.T) {
	f := &bn254.Field{}
	k := Known(f.FromInterface(5))
	u := Unknown()

	assert.False(t, k.Add(f, u).IsKnown())
	assert.False(t, u.Add(f, k).IsKnown())
	assert.False(t, k.Mul(f, u).IsKnown())
	assert.False(t, u.Mul(f, u).IsKnown())
	assert.False(t, u.Neg(f).IsKnown())
	assert.False(t, k.Equal(u))
}

func TestZeroValueIsUnknown(t *testing.T) {
	var v Value
	assert.False(t, v.IsKnown())
	_, ok := v.Unwrap()
	assert.False(t, ok)
}
