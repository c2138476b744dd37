// Package utils provides small helpers shared by the field engines.
package utils

import (
	"fmt"
	"math/big"
)

// FromInterface converts an interface to a big.Int element.
// Supports the numeric types a caller is likely to hand to a field engine;
// panics on anything else, since a bad witness type is a programmer error.
func FromInterface(input interface{}) big.Int {
	var r big.Int

	switch v := input.(type) {
	case big.Int:
		r.Set(&v)
	case *big.Int:
		r.Set(v)
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case uint:
		r.SetUint64(uint64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case int:
		r.SetInt64(int64(v))
	case string:
		if _, ok := r.SetString(v, 0); !ok {
			panic("unable to set big.Int from string " + v)
		}
	case []byte:
		r.SetBytes(v)
	default:
		if v, ok := input.(interface{ ToBigIntRegular(*big.Int) *big.Int }); ok {
			v.ToBigIntRegular(&r)
			return r
		}
		panic(fmt.Sprintf("can't convert %T to big.Int", input))
	}

	return r
}
