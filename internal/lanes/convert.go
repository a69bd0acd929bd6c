package lanes

import (
	"math"
	"unsafe"
)

// FloatToInt converts every lane of src to the nearest integer, ties to even.
// NaN and values outside the range of I follow rule.
func FloatToInt[F Float, I Int](dst []I, src []F, rule ConvertRule) {
	lo, hi := minMaxInt[I]()
	limit := math.Ldexp(1, int(Bits[I]()-1))
	for i := range dst {
		r := math.RoundToEven(float64(src[i]))
		switch {
		case r != r:
			if rule == ConvertIndefinite {
				dst[i] = lo
			} else {
				dst[i] = 0
			}
		case r >= limit:
			if rule == ConvertIndefinite {
				dst[i] = lo
			} else {
				dst[i] = hi
			}
		case r < -limit:
			dst[i] = lo
		default:
			dst[i] = I(r)
		}
	}
}

// IntToFloat converts every lane of src to the nearest representable float.
func IntToFloat[I Int, F Float](dst []F, src []I) {
	for i := range dst {
		dst[i] = F(src[i])
	}
}

// Reinterpret copies the bytes of src into dst unchanged, the way a register
// cast relabels its contents. Both slices must cover the same number of bytes.
func Reinterpret[S, D Lane](dst []D, src []S) {
	var s S
	var d D
	n := len(src) * int(unsafe.Sizeof(s))
	if n != len(dst)*int(unsafe.Sizeof(d)) {
		panic("simd: reinterpret between registers of different sizes")
	}
	copy(unsafe.Slice((*byte)(unsafe.Pointer(&dst[0])), n), unsafe.Slice((*byte)(unsafe.Pointer(&src[0])), n))
}

// Extend sign-extends src into the wider lanes of dst.
func Extend[S, D Int](dst []D, src []S) {
	for i := range dst {
		dst[i] = D(src[i])
	}
}

// NarrowSat fills dst with the lanes of a followed by the lanes of b, each
// clamped to the range of D (packss). Lanes that do not fit in dst are dropped.
func NarrowSat[S, D Int](dst []D, a, b []S) {
	lo, hi := minMaxInt[D]()
	for i := range dst {
		var x S
		if i < len(a) {
			x = a[i]
		} else {
			x = b[i-len(a)]
		}
		switch {
		case int64(x) < int64(lo):
			dst[i] = lo
		case int64(x) > int64(hi):
			dst[i] = hi
		default:
			dst[i] = D(x)
		}
	}
}
