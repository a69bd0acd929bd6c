// Package lanes holds the lane-by-lane kernels behind every engine's register
// types. Each kernel takes slices over register storage, so one implementation
// serves a 1-lane scalar register and a 32-lane AVX2 register alike. Where
// instruction sets disagree on a result (NaN handling, out-of-range converts,
// oversized shift counts) the caller passes the engine's Rules.
//
// Destination slices may alias their inputs.
package lanes

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Int is the set of integer lane types.
type Int interface {
	int8 | int16 | int32 | int64
}

// Float is the set of floating-point lane types.
type Float interface {
	float32 | float64
}

// Lane is the set of all lane types.
type Lane interface {
	Int | Float
}

// MaxLanes is the widest register any engine has, in lanes (AVX2 int8).
const MaxLanes = 32

// Bits returns the number of bits in one lane of type T.
func Bits[T Lane]() uint64 {
	var z T
	return uint64(unsafe.Sizeof(z)) * 8
}

// ToBits returns the raw bit pattern of x, sign-extended for integers.
func ToBits[T Lane](x T) uint64 {
	switch v := any(x).(type) {
	case float32:
		return uint64(math.Float32bits(v))
	case float64:
		return math.Float64bits(v)
	case int8:
		return uint64(v)
	case int16:
		return uint64(v)
	case int32:
		return uint64(v)
	case int64:
		return uint64(v)
	}
	panic("unreachable")
}

// FromBits returns the lane value whose bit pattern is the low Bits[T]() bits of b.
func FromBits[T Lane](b uint64) T {
	var z T
	switch any(z).(type) {
	case float32:
		return any(math.Float32frombits(uint32(b))).(T)
	case float64:
		return any(math.Float64frombits(b)).(T)
	case int8:
		return any(int8(b)).(T)
	case int16:
		return any(int16(b)).(T)
	case int32:
		return any(int32(b)).(T)
	case int64:
		return any(int64(b)).(T)
	}
	panic("unreachable")
}

// SignBit reports whether the top bit of x is set. It is the bit that masks,
// blends and GetMask look at.
func SignBit[T Lane](x T) bool {
	return ToBits(x)>>(Bits[T]()-1)&1 == 1
}

// True is the all-ones lane value a comparison yields for true.
func True[T Lane]() T {
	return FromBits[T](^uint64(0))
}

func maskOf[T Lane](ok bool) T {
	if ok {
		return True[T]()
	}
	return 0
}

// minMaxInt returns the smallest and largest values of T.
func minMaxInt[T constraints.Signed]() (T, T) {
	var one T = 1
	var z T
	lo := one << (uint64(unsafe.Sizeof(z))*8 - 1)
	return lo, ^lo
}
