package complexgate

import (
	"testing"

	"github.com/consensys/gnark/constraint"
	"github.com/stretchr/testify/require"

	"github.com/zkcollective/plonkish"
	"github.com/zkcollective/plonkish/checker"
	"github.com/zkcollective/plonkish/field"
	"github.com/zkcollective/plonkish/field/bls12381"
	"github.com/zkcollective/plonkish/field/bn254"
	"github.com/zkcollective/plonkish/test"
	"github.com/zkcollective/plonkish/value"
)

const k = 5

func witnessed(f field.Field, a, b, c uint64) *Circuit {
	return &Circuit{
		A: value.Known(f.FromInterface(a)),
		B: value.Known(f.FromInterface(b)),
		C: f.FromInterface(c),
	}
}

// outFor computes ((a*b)^2 * c + c)^3 outside the circuit.
func outFor(f field.Field, a, b, c uint64) constraint.Element {
	ab := f.Mul(f.FromInterface(a), f.FromInterface(b))
	e := f.Add(f.Mul(f.Mul(ab, ab), f.FromInterface(c)), f.FromInterface(c))
	return f.Mul(f.Mul(e, e), e)
}

func TestComplexGate(t *testing.T) {
	fields := []struct {
		name string
		f    field.Field
	}{
		{"bn254", &bn254.Field{}},
		{"bls12381", &bls12381.Field{}},
	}

	for _, tc := range fields {
		t.Run(tc.name, func(t *testing.T) {
			assert := test.NewAssert(t)
			f := tc.f

			// a=2, b=3, c=2: e = 2*4*9 + 2 = 74, out = 74^3 = 405224
			out := outFor(f, 2, 3, 2)
			require.Equal(t, f.FromInterface(405224), out)

			ch, err := checker.Run[Config](k, witnessed(f, 2, 3, 2), [][]constraint.Element{{out}}, f)
			require.NoError(t, err)
			assert.Accepts(ch)

			bad := f.Add(out, f.One())
			ch, err = checker.Run[Config](k, witnessed(f, 2, 3, 2), [][]constraint.Element{{bad}}, f)
			require.NoError(t, err)
			assert.Rejects(ch)
		})
	}
}

func TestAcceptRejectTable(t *testing.T) {
	assert := test.NewAssert(t)
	f := &bn254.Field{}

	cases := []struct {
		a, b, c uint64
	}{
		{0, 0, 0},
		{1, 1, 1},
		{2, 3, 2},
		{7, 11, 13},
		{1 << 31, 3, 5},
	}
	for _, tc := range cases {
		out := outFor(f, tc.a, tc.b, tc.c)
		ch, err := checker.Run[Config](k, witnessed(f, tc.a, tc.b, tc.c), [][]constraint.Element{{out}}, f)
		require.NoError(t, err)
		assert.Accepts(ch)

		bad := f.Add(out, f.One())
		ch, err = checker.Run[Config](k, witnessed(f, tc.a, tc.b, tc.c), [][]constraint.Element{{bad}}, f)
		require.NoError(t, err)
		assert.Rejects(ch)
	}
}

func TestWitnessFreeSynthesis(t *testing.T) {
	f := &bn254.Field{}
	circuit := witnessed(f, 2, 3, 2).WithoutWitnesses()

	// structure-only pass must lay out without secrets
	_, err := checker.Run[Config](k, circuit, nil, f)
	require.NoError(t, err)
}

// alignmentCircuit reproduces the chip's assignment with tunable offsets, to
// pin down that the gate's row alignment is load-bearing.
type alignmentCircuit struct {
	a, b value.Value
	c    constraint.Element

	selectorOffset int
	outputOffset   int
	skipSelector   bool

	// when known, written to the output cell instead of the computed value
	forcedOut value.Value
}

func (c *alignmentCircuit) WithoutWitnesses() plonkish.Circuit[Config] {
	cp := *c
	cp.a = value.Unknown()
	cp.b = value.Unknown()
	cp.forcedOut = value.Unknown()
	return &cp
}

func (c *alignmentCircuit) Configure(meta *plonkish.ConstraintSystem) Config {
	return Configure(meta)
}

func (c *alignmentCircuit) Synthesize(config Config, l *plonkish.Layouter) error {
	f := l.Field()
	var out plonkish.AssignedCell
	err := l.AssignRegion("misaligned", func(r *plonkish.Region) error {
		if !c.skipSelector {
			if err := r.EnableSelector(config.SCpx, c.selectorOffset); err != nil {
				return err
			}
		}
		aCell, err := r.AssignAdvice("a", config.Advice[0], 0, c.a)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdvice("b", config.Advice[1], 0, c.b)
		if err != nil {
			return err
		}
		cCell, err := r.AssignAdviceFromConstant("c", config.Advice[2], 0, c.c)
		if err != nil {
			return err
		}

		ab := aCell.Value().Mul(f, bCell.Value())
		e := ab.Mul(f, ab).Mul(f, cCell.Value()).Add(f, cCell.Value())
		eCub := e.Mul(f, e).Mul(f, e)
		if c.forcedOut.IsKnown() {
			eCub = c.forcedOut
		}
		out, err = r.AssignAdvice("out", config.Advice[0], c.outputOffset, eCub)
		return err
	})
	if err != nil {
		return err
	}
	return NewChip(config).ExposePublic(l, out, 0)
}

func TestSelectorOffsetIsLoadBearing(t *testing.T) {
	assert := test.NewAssert(t)
	f := &bn254.Field{}
	out := outFor(f, 2, 3, 2)

	// selector on the output row: the gate reads its operands from the
	// wrong cells and must not verify, even with the correct public input
	circuit := &alignmentCircuit{
		a: value.Known(f.FromInterface(2)),
		b: value.Known(f.FromInterface(3)),
		c: f.FromInterface(2),

		selectorOffset: 1,
		outputOffset:   1,
	}
	ch, err := checker.Run[Config](k, circuit, [][]constraint.Element{{out}}, f)
	require.NoError(t, err)
	assert.Rejects(ch)
}

func TestOutputOffsetIsLoadBearing(t *testing.T) {
	assert := test.NewAssert(t)
	f := &bn254.Field{}
	out := outFor(f, 2, 3, 2)

	// output two rows below the operands: the gate's next-row reference
	// points at an unassigned cell and must not verify
	circuit := &alignmentCircuit{
		a: value.Known(f.FromInterface(2)),
		b: value.Known(f.FromInterface(3)),
		c: f.FromInterface(2),

		selectorOffset: 0,
		outputOffset:   2,
	}
	ch, err := checker.Run[Config](k, circuit, [][]constraint.Element{{out}}, f)
	require.NoError(t, err)
	assert.Rejects(ch)
}

func TestGateIsVacuousWithoutSelector(t *testing.T) {
	assert := test.NewAssert(t)
	f := &bn254.Field{}

	// with the selector never enabled, an arbitrary output passes every
	// remaining check; this is the silent failure mode that makes the
	// selector offset part of the gate's contract
	wrong := f.FromInterface(999)
	circuit := &alignmentCircuit{
		a: value.Known(f.FromInterface(2)),
		b: value.Known(f.FromInterface(3)),
		c: f.FromInterface(2),

		skipSelector: true,
		outputOffset: 1,
		forcedOut:    value.Known(wrong),
	}
	ch, err := checker.Run[Config](k, circuit, [][]constraint.Element{{wrong}}, f)
	require.NoError(t, err)
	assert.Accepts(ch)

	// the honest layout rejects the same output
	honest := &alignmentCircuit{
		a: value.Known(f.FromInterface(2)),
		b: value.Known(f.FromInterface(3)),
		c: f.FromInterface(2),

		selectorOffset: 0,
		outputOffset:   1,
		forcedOut:      value.Known(wrong),
	}
	ch, err = checker.Run[Config](k, honest, [][]constraint.Element{{wrong}}, f)
	require.NoError(t, err)
	assert.Rejects(ch)
}
