package simd

import "unsafe"

// Zero returns the all-zero register of type V.
func Zero[V any]() V {
	var v V
	return v
}

// Broadcast returns a register of type V with every lane set to x.
func Broadcast[V Vector[V, T], T Lanes](x T) V {
	var v V
	return v.Broadcast(x)
}

// Load returns a register of type V holding the first lanes of src.
func Load[V Vector[V, T], T Lanes](src []T) V {
	var v V
	return v.Load(src)
}

// Width returns the lane count of register type V.
func Width[V interface{ Width() int }]() int {
	var v V
	return v.Width()
}

// MakeAligned returns a slice of n elements whose first element sits on an
// align-byte boundary, suitable for LoadAligned and StoreAligned.
func MakeAligned[T Lanes](n, align int) []T {
	var z T
	size := int(unsafe.Sizeof(z))
	if align <= size {
		return make([]T, n)
	}
	buf := make([]T, n+align/size)
	off := 0
	for uintptr(unsafe.Pointer(&buf[off]))%uintptr(align) != 0 {
		off++
	}
	return buf[off : off+n : off+n]
}
