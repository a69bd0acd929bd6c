package simd

import (
	"testing"
	"unsafe"
)

func TestMakeAligned(t *testing.T) {
	for _, align := range []int{8, 16, 32, 64} {
		s := MakeAligned[float32](37, align)
		if len(s) != 37 || cap(s) != 37 {
			t.Errorf("align %d: len %d cap %d, want 37", align, len(s), cap(s))
		}
		if p := uintptr(unsafe.Pointer(&s[0])); p%uintptr(align) != 0 {
			t.Errorf("align %d: address %#x is misaligned", align, p)
		}
	}
	if s := MakeAligned[int64](4, 4); len(s) != 4 {
		t.Errorf("small alignment: len %d, want 4", len(s))
	}
}

func TestZero(t *testing.T) {
	if z := Zero[[4]int32](); z != [4]int32{} {
		t.Errorf("Zero: got %v", z)
	}
}
