package lanes

import "unsafe"

// MaskLoad sets dst[i] = src[i] where the sign bit of mask[i] is set and zero
// elsewhere. Unselected lanes never touch src, so src may end early.
func MaskLoad[T Lane](dst, mask, src []T) {
	for i := range dst {
		if SignBit(mask[i]) {
			dst[i] = src[i]
		} else {
			dst[i] = 0
		}
	}
}

// MaskStore writes v[i] to dst[i] where the sign bit of mask[i] is set.
func MaskStore[T Lane](dst, mask, v []T) {
	for i := range mask {
		if SignBit(mask[i]) {
			dst[i] = v[i]
		}
	}
}

// Gather sets dst[i] = src[idx[i]]. An index outside src panics.
func Gather[I Int, T Lane](dst, src []T, idx []I) {
	for i := range dst {
		dst[i] = src[idx[i]]
	}
}

// CheckAligned panics unless the first element of s sits on an align-byte
// boundary.
func CheckAligned[T Lane](s []T, align int) {
	if align > 1 && uintptr(unsafe.Pointer(&s[0]))%uintptr(align) != 0 {
		panic("simd: aligned access to an address that is not register aligned")
	}
}
