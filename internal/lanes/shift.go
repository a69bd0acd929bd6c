package lanes

// ShiftLeft shifts every lane of a left by n under rule.
func ShiftLeft[T Int](dst, a []T, n uint64, rule ShiftRule) {
	for i := range dst {
		dst[i] = shl(a[i], n, rule)
	}
}

// ShiftRight shifts every lane of a right by n, copying the sign bit in.
func ShiftRight[T Int](dst, a []T, n uint64, rule ShiftRule) {
	for i := range dst {
		dst[i] = sar(a[i], n, rule)
	}
}

// ShiftRightLogical shifts every lane of a right by n, shifting zeros in.
func ShiftRightLogical[T Int](dst, a []T, n uint64, rule ShiftRule) {
	for i := range dst {
		dst[i] = shr(a[i], n, rule)
	}
}

// ShiftLeftVar shifts lane i of a left by counts[i]. Counts are read as
// unsigned, so negative counts behave like very large ones.
func ShiftLeftVar[T Int](dst, a, counts []T, rule ShiftRule) {
	for i := range dst {
		dst[i] = shl(a[i], countOf(counts[i]), rule)
	}
}

// ShiftRightVar shifts lane i of a right by counts[i], copying the sign bit in.
func ShiftRightVar[T Int](dst, a, counts []T, rule ShiftRule) {
	for i := range dst {
		dst[i] = sar(a[i], countOf(counts[i]), rule)
	}
}

func countOf[T Int](c T) uint64 {
	bits := Bits[T]()
	return ToBits(c) & (^uint64(0) >> (64 - bits))
}

func shl[T Int](x T, n uint64, rule ShiftRule) T {
	bits := Bits[T]()
	if rule == ShiftModulo {
		n %= bits
	}
	if n >= bits {
		return 0
	}
	return x << n
}

func sar[T Int](x T, n uint64, rule ShiftRule) T {
	bits := Bits[T]()
	if rule == ShiftModulo {
		n %= bits
	}
	if n >= bits {
		n = bits - 1
	}
	return x >> n
}

func shr[T Int](x T, n uint64, rule ShiftRule) T {
	bits := Bits[T]()
	if rule == ShiftModulo {
		n %= bits
	}
	if n >= bits {
		return 0
	}
	u := ToBits(x) & (^uint64(0) >> (64 - bits))
	return FromBits[T](u >> n)
}
