package lanes

// And sets dst[i] to the bitwise AND of a[i] and b[i]. Float lanes are
// combined bit for bit, as andps does.
func And[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) & ToBits(b[i]))
	}
}

// Or sets dst[i] to the bitwise OR of a[i] and b[i].
func Or[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) | ToBits(b[i]))
	}
}

// Xor sets dst[i] to the bitwise XOR of a[i] and b[i].
func Xor[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) ^ ToBits(b[i]))
	}
}

// AndNot sets dst[i] = a[i] &^ b[i].
func AndNot[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = FromBits[T](ToBits(a[i]) &^ ToBits(b[i]))
	}
}

// Not flips every bit.
func Not[T Lane](dst, a []T) {
	for i := range dst {
		dst[i] = FromBits[T](^ToBits(a[i]))
	}
}

// Equal sets dst[i] to all ones where a[i] == b[i] and to zero elsewhere.
func Equal[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] == b[i])
	}
}

// NotEqual is the complement of Equal. It is the only float comparison that
// is true for NaN.
func NotEqual[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] != b[i])
	}
}

// Less masks lanes where a[i] < b[i].
func Less[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] < b[i])
	}
}

// LessEqual masks lanes where a[i] <= b[i].
func LessEqual[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] <= b[i])
	}
}

// Greater masks lanes where a[i] > b[i].
func Greater[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] > b[i])
	}
}

// GreaterEqual masks lanes where a[i] >= b[i].
func GreaterEqual[T Lane](dst, a, b []T) {
	for i := range dst {
		dst[i] = maskOf[T](a[i] >= b[i])
	}
}

// Select sets dst[i] to yes[i] where the sign bit of mask[i] is set and to
// no[i] elsewhere, like blendv.
func Select[T Lane](dst, mask, yes, no []T) {
	for i := range dst {
		if SignBit(mask[i]) {
			dst[i] = yes[i]
		} else {
			dst[i] = no[i]
		}
	}
}

// SignMask packs the sign bit of lane k into bit k of the result.
func SignMask[T Lane](a []T) uint32 {
	var m uint32
	for k, x := range a {
		if SignBit(x) {
			m |= 1 << k
		}
	}
	return m
}
