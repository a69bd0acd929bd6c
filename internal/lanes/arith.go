package lanes

import "math"

// Add sets dst[i] = a[i] + b[i]. Integer lanes wrap.
func Add[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Sub sets dst[i] = a[i] - b[i].
func Sub[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Mul sets dst[i] = a[i] * b[i], keeping the low half of integer products.
func Mul[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Div sets dst[i] = a[i] / b[i].
func Div[T Float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

// Neg sets dst[i] = -a[i]. The most negative integer negates to itself.
func Neg[T Lane](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

// AbsInt sets dst[i] = |a[i]|, wrapping like pabs for the most negative value.
func AbsInt[T Int](dst, a []T) {
	for i := range dst {
		x := a[i]
		if x < 0 {
			x = -x
		}
		dst[i] = x
	}
}

// AbsFloat clears the sign bit of every lane, NaNs included.
func AbsFloat[T Float](dst, a []T) {
	sign := uint64(1) << (Bits[T]() - 1)
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) &^ sign)
	}
}

// MulAdd sets dst[i] = a[i]*b[i] + c[i], rounding once when fused is set and
// twice otherwise.
func MulAdd[T Float](dst, a, b, c []T, fused bool) {
	for i := range dst {
		if fused {
			if Bits[T]() == 32 {
				dst[i] = T(FMA32(float32(a[i]), float32(b[i]), float32(c[i])))
			} else {
				dst[i] = T(math.FMA(float64(a[i]), float64(b[i]), float64(c[i])))
			}
			continue
		}
		// The conversion stops the compiler from fusing the pair.
		dst[i] = T(a[i]*b[i]) + c[i]
	}
}

// FMA32 returns a*b + c rounded once to float32. The product is exact in
// float64; the sum is rounded to odd there so that the final narrowing
// cannot round a second time across a float32 midpoint.
func FMA32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	s := p + float64(c)
	if math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	// TwoSum: err is the exact p + c - s.
	bv := s - p
	err := (p - (s - bv)) + (float64(c) - bv)
	if bits := math.Float64bits(s); err != 0 && bits&1 == 0 {
		if (err > 0) == (s > 0) {
			bits++
		} else {
			bits--
		}
		s = math.Float64frombits(bits)
	}
	return float32(s)
}

// MinInt sets dst[i] to the smaller of a[i] and b[i].
func MinInt[T Int](dst, a, b []T) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

// MaxInt sets dst[i] to the larger of a[i] and b[i].
func MaxInt[T Int](dst, a, b []T) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

// MinFloat sets dst[i] to the smaller of a[i] and b[i] under rule.
func MinFloat[T Float](dst, a, b []T, rule MinMaxRule) {
	for i := range dst {
		dst[i] = MinOf(a[i], b[i], rule)
	}
}

// MaxFloat sets dst[i] to the larger of a[i] and b[i] under rule.
func MaxFloat[T Float](dst, a, b []T, rule MinMaxRule) {
	for i := range dst {
		dst[i] = MaxOf(a[i], b[i], rule)
	}
}

// MinOf is the two-operand float minimum under rule.
func MinOf[T Float](x, y T, rule MinMaxRule) T {
	switch rule {
	case MinMaxX86:
		if x < y {
			return x
		}
		return y
	case MinMaxPropagate:
		if x != x {
			return x
		}
		if y != y {
			return y
		}
		if x == 0 && y == 0 {
			if math.Signbit(float64(x)) {
				return x
			}
			return y
		}
	default:
		if x != x {
			return y
		}
		if y != y {
			return x
		}
	}
	if x < y {
		return x
	}
	return y
}

// MaxOf is the two-operand float maximum under rule.
func MaxOf[T Float](x, y T, rule MinMaxRule) T {
	switch rule {
	case MinMaxX86:
		if x > y {
			return x
		}
		return y
	case MinMaxPropagate:
		if x != x {
			return x
		}
		if y != y {
			return y
		}
		if x == 0 && y == 0 {
			if math.Signbit(float64(x)) {
				return y
			}
			return x
		}
	default:
		if x != x {
			return y
		}
		if y != y {
			return x
		}
	}
	if x > y {
		return x
	}
	return y
}

// AddSat sets dst[i] = a[i] + b[i] clamped to the range of T.
func AddSat[T Int](dst, a, b []T) {
	lo, hi := minMaxInt[T]()
	for i := range dst {
		x, y := a[i], b[i]
		s := x + y
		switch {
		case x > 0 && y > 0 && s < 0:
			s = hi
		case x < 0 && y < 0 && s >= 0:
			s = lo
		}
		dst[i] = s
	}
}

// SubSat sets dst[i] = a[i] - b[i] clamped to the range of T.
func SubSat[T Int](dst, a, b []T) {
	lo, hi := minMaxInt[T]()
	for i := range dst {
		x, y := a[i], b[i]
		s := x - y
		switch {
		case x >= 0 && y < 0 && s < 0:
			s = hi
		case x < 0 && y > 0 && s >= 0:
			s = lo
		}
		dst[i] = s
	}
}

// Sqrt sets dst[i] to the correctly rounded square root of a[i].
func Sqrt[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Sqrt(float64(a[i])))
	}
}

// Floor rounds every lane toward negative infinity.
func Floor[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Floor(float64(a[i])))
	}
}

// Ceil rounds every lane toward positive infinity.
func Ceil[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.Ceil(float64(a[i])))
	}
}

// Round rounds every lane to the nearest integer, ties to even.
func Round[T Float](dst, a []T) {
	for i := range dst {
		dst[i] = T(math.RoundToEven(float64(a[i])))
	}
}
