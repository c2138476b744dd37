// Package keygen derives verification key material from circuit structure
// alone. A structure-only synthesis pass (the circuit with its witnesses
// blanked) yields everything the verifier side commits to: the shape, the
// fixed-column values, the selector layout and the copy constraints. The
// material is independent of any secret witness, which is exactly the
// key-independence property circuit tests pin down.
//
// Note that constants committed through the constant-binding path, including
// the demo circuit's private input c, land in the fixed columns and are
// therefore visible in this material.
package keygen

import (
	"bytes"

	"github.com/consensys/gnark/constraint"
	"github.com/fxamacker/cbor/v2"

	"github.com/zkcollective/plonkish"
	"github.com/zkcollective/plonkish/checker"
	"github.com/zkcollective/plonkish/field"
)

// VerifyingKey is the structural commitment of one circuit shape at one
// size parameter.
type VerifyingKey struct {
	K int `cbor:"k"`

	NumAdvice    int `cbor:"numAdvice"`
	NumInstance  int `cbor:"numInstance"`
	NumFixed     int `cbor:"numFixed"`
	NumSelectors int `cbor:"numSelectors"`

	GateNames []string `cbor:"gateNames"`

	Fixed     [][]constraint.Element   `cbor:"fixed"`
	Selectors [][]bool                 `cbor:"selectors"`
	Copies    []checker.CopyConstraint `cbor:"copies"`
}

// Generate runs a structure-only synthesis of the circuit's witness-free
// counterpart and extracts its key material.
func Generate[C any](k int, circuit plonkish.Circuit[C], f field.Field) (*VerifyingKey, error) {
	ch, err := checker.Run(k, circuit.WithoutWitnesses(), nil, f)
	if err != nil {
		return nil, err
	}
	return FromChecker(ch), nil
}

// FromChecker extracts key material from an already laid-out table. Used by
// tests to compare the structure of witnessed and witness-free passes.
func FromChecker(ch *checker.Checker) *VerifyingKey {
	cs := ch.ConstraintSystem()
	names := make([]string, 0, len(cs.Gates()))
	for _, g := range cs.Gates() {
		names = append(names, g.Name())
	}
	return &VerifyingKey{
		K:            ch.K(),
		NumAdvice:    cs.NumAdvice(),
		NumInstance:  cs.NumInstance(),
		NumFixed:     cs.NumFixed(),
		NumSelectors: cs.NumSelectors(),
		GateNames:    names,
		Fixed:        ch.FixedColumns(),
		Selectors:    ch.SelectorAssignment(),
		Copies:       ch.CopyConstraints(),
	}
}

// Bytes encodes the key material with CBOR.
func (vk *VerifyingKey) Bytes() ([]byte, error) {
	return cbor.Marshal(vk)
}

// ParseVerifyingKey decodes key material produced by Bytes.
func ParseVerifyingKey(data []byte) (*VerifyingKey, error) {
	vk := new(VerifyingKey)
	if err := cbor.Unmarshal(data, vk); err != nil {
		return nil, err
	}
	return vk, nil
}

// Equal reports whether two keys commit to the same structure.
func (vk *VerifyingKey) Equal(o *VerifyingKey) bool {
	a, err := vk.Bytes()
	if err != nil {
		return false
	}
	b, err := o.Bytes()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}
