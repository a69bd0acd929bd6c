package lanes

// SumInt adds the lanes of a from left to right with wrapping.
func SumInt[T Int](a []T) T {
	var s T
	for _, x := range a {
		s += x
	}
	return s
}

// MinIntOf returns the smallest lane of a.
func MinIntOf[T Int](a []T) T {
	m := a[0]
	for _, x := range a[1:] {
		m = min(m, x)
	}
	return m
}

// MaxIntOf returns the largest lane of a.
func MaxIntOf[T Int](a []T) T {
	m := a[0]
	for _, x := range a[1:] {
		m = max(m, x)
	}
	return m
}

// SumFloat adds the lanes of a in the given association order.
func SumFloat[T Float](a []T, order ReduceOrder) T {
	return Fold(a, order, func(x, y T) T { return x + y })
}

// MinFloatOf returns the smallest lane of a, combining lanes in the given
// order under rule.
func MinFloatOf[T Float](a []T, order ReduceOrder, rule MinMaxRule) T {
	return Fold(a, order, func(x, y T) T { return MinOf(x, y, rule) })
}

// MaxFloatOf returns the largest lane of a, combining lanes in the given
// order under rule.
func MaxFloatOf[T Float](a []T, order ReduceOrder, rule MinMaxRule) T {
	return Fold(a, order, func(x, y T) T { return MaxOf(x, y, rule) })
}

// Fold reduces a power-of-two number of lanes to one with f.
func Fold[T Lane](a []T, order ReduceOrder, f func(x, y T) T) T {
	var t [MaxLanes]T
	n := copy(t[:], a)
	for n > 1 {
		h := n / 2
		for i := 0; i < h; i++ {
			if order == ReduceAdjacent {
				t[i] = f(t[2*i], t[2*i+1])
			} else {
				t[i] = f(t[i], t[i+h])
			}
		}
		n = h
	}
	return t[0]
}

// PairwiseAdd is hadd. Within each block of 16 bytes it writes the sums of
// adjacent pairs of a followed by the sums of adjacent pairs of b. A register
// with a single lane yields a[0] + b[0].
func PairwiseAdd[T Lane](dst, a, b []T) {
	if len(dst) == 1 {
		dst[0] = a[0] + b[0]
		return
	}
	var t [MaxLanes]T
	block := min(len(dst), int(128/Bits[T]()))
	half := block / 2
	for base := 0; base < len(dst); base += block {
		for j := 0; j < half; j++ {
			t[base+j] = a[base+2*j] + a[base+2*j+1]
			t[base+half+j] = b[base+2*j] + b[base+2*j+1]
		}
	}
	copy(dst, t[:len(dst)])
}

// Shuffle32 is pshufd: lane j of every group of four takes lane
// (imm >> 2j) & 3 of the same group. Registers narrower than four lanes use
// the selector modulo their width.
func Shuffle32[T Lane](dst, a []T, imm uint8) {
	var t [MaxLanes]T
	group := min(len(a), 4)
	for base := 0; base < len(a); base += group {
		for j := 0; j < group; j++ {
			sel := int(imm>>(2*j)) & 3
			t[base+j] = a[base+sel%group]
		}
	}
	copy(dst, t[:len(a)])
}
