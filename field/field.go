// Package field abstracts the finite field a circuit is arithmetized over.
// A Field is gnark's constraint.Field engine plus modulus introspection, so
// any gnark-crypto scalar field can back a circuit through a thin wrapper.
package field

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/constraint"

	"github.com/zkcollective/plonkish/field/bls12381"
	"github.com/zkcollective/plonkish/field/bn254"
)

type Field interface {
	constraint.Field
	Field() *big.Int
	FieldBitLen() int
}

func GetFieldFromOrder(x *big.Int) Field {
	if x.Cmp(bn254.ScalarField) == 0 {
		return &bn254.Field{}
	}
	if x.Cmp(bls12381.ScalarField) == 0 {
		return &bls12381.Field{}
	}
	panic(fmt.Sprintf("unknown field %v", x))
}
