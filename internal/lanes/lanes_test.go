package lanes

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBitsRoundTrip(t *testing.T) {
	if got := FromBits[int8](ToBits(int8(-3))); got != -3 {
		t.Errorf("int8: got %v, want -3", got)
	}
	if got := ToBits(int16(-1)); got != math.MaxUint64 {
		t.Errorf("ToBits(int16(-1)): got %#x, want sign extension", got)
	}
	nan := math.Float32frombits(0x7fc00001)
	if got := math.Float32bits(FromBits[float32](ToBits(nan))); got != 0x7fc00001 {
		t.Errorf("float32 NaN payload: got %#x", got)
	}
	if !SignBit(True[float64]()) {
		t.Error("True[float64] has no sign bit")
	}
	if SignBit(int32(1)) || !SignBit(int32(-1)) {
		t.Error("SignBit(int32) wrong")
	}
}

func TestMinMaxRules(t *testing.T) {
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))

	tests := []struct {
		name string
		rule MinMaxRule
		x, y float32
		min  float32
		max  float32
	}{
		{"number/nan-first", MinMaxNumber, nan, 2, 2, 2},
		{"number/nan-second", MinMaxNumber, 2, nan, 2, 2},
		{"x86/nan-first", MinMaxX86, nan, 2, 2, 2},
		{"x86/nan-second", MinMaxX86, 2, nan, nan, nan},
		{"x86/ordered", MinMaxX86, 1, 2, 1, 2},
		{"propagate/nan-second", MinMaxPropagate, 2, nan, nan, nan},
		{"propagate/ordered", MinMaxPropagate, 3, -1, -1, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MinOf(tt.x, tt.y, tt.rule); !sameFloat(got, tt.min) {
				t.Errorf("MinOf(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.min)
			}
			if got := MaxOf(tt.x, tt.y, tt.rule); !sameFloat(got, tt.max) {
				t.Errorf("MaxOf(%v, %v): got %v, want %v", tt.x, tt.y, got, tt.max)
			}
		})
	}

	if got := MinOf(0, negZero, MinMaxPropagate); !math.Signbit(float64(got)) {
		t.Errorf("MinOf(+0, -0) propagate: got %v, want -0", got)
	}
	if got := MaxOf(negZero, 0, MinMaxPropagate); math.Signbit(float64(got)) {
		t.Errorf("MaxOf(-0, +0) propagate: got -0, want +0")
	}
	// minps returns the second operand when the operands compare equal.
	if got := MinOf(negZero, 0, MinMaxX86); math.Signbit(float64(got)) {
		t.Errorf("MinOf(-0, +0) x86: got -0, want +0")
	}
}

func sameFloat(a, b float32) bool {
	if a != a || b != b {
		return a != a && b != b
	}
	return a == b
}

func TestMulAddFused(t *testing.T) {
	// (1+2^-12)^2 has a 2^-24 term that float32 rounding drops; only the
	// fused form keeps it.
	a := []float32{1 + 1.0/(1<<12)}
	c := []float32{-(1 + 2.0/(1<<12))}
	fused := make([]float32, 1)
	split := make([]float32, 1)
	MulAdd(fused, a, a, c, true)
	MulAdd(split, a, a, c, false)
	if fused[0] == split[0] {
		t.Errorf("fused and unfused results agree (%v); expected different rounding", fused[0])
	}
	if want := float32(1.0 / (1 << 24)); fused[0] != want {
		t.Errorf("fused: got %v, want %v", fused[0], want)
	}
}

func TestFMA32SingleRounding(t *testing.T) {
	// (1+2^-12)^2 = 1 + 2^-11 + 2^-24 sits exactly between two float32s.
	a := float32(1 + 1.0/(1<<12))
	tiny := float32(math.Ldexp(1, -80))
	tests := []struct {
		name    string
		a, b, c float32
		want    uint32
	}{
		{"above midpoint", a, a, tiny, 0x3f801001},
		{"below midpoint", a, a, -tiny, 0x3f801000},
		{"on midpoint", a, a, 0, 0x3f801000},
		{"negative above midpoint", -a, a, -tiny, 0xbf801001},
		{"exact", 3, 5, 7, math.Float32bits(22)},
		{"overflow", math.MaxFloat32, 2, 0, math.Float32bits(float32(math.Inf(1)))},
	}
	for _, tt := range tests {
		if got := math.Float32bits(FMA32(tt.a, tt.b, tt.c)); got != tt.want {
			t.Errorf("%s: got %#08x, want %#08x", tt.name, got, tt.want)
		}
	}
	if got := FMA32(float32(math.NaN()), 1, 1); !math.IsNaN(float64(got)) {
		t.Errorf("NaN input: got %v, want NaN", got)
	}

	dst := make([]float32, 1)
	MulAdd(dst, []float32{a}, []float32{a}, []float32{tiny}, true)
	if got := math.Float32bits(dst[0]); got != 0x3f801001 {
		t.Errorf("MulAdd fused: got %#08x, want 0x3f801001", got)
	}
}

func TestSaturating(t *testing.T) {
	dst := make([]int8, 4)
	AddSat(dst, []int8{120, -120, 5, -128}, []int8{10, -10, 5, -1})
	if diff := cmp.Diff([]int8{127, -128, 10, -128}, dst); diff != "" {
		t.Errorf("AddSat mismatch (-want +got):\n%s", diff)
	}
	SubSat(dst, []int8{0, -120, 5, 127}, []int8{-128, 10, 5, -1})
	if diff := cmp.Diff([]int8{127, -128, 0, 127}, dst); diff != "" {
		t.Errorf("SubSat mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftRules(t *testing.T) {
	src := []int32{-8, 8}
	dst := make([]int32, 2)

	ShiftLeft(dst, src, 32, ShiftSaturate)
	if diff := cmp.Diff([]int32{0, 0}, dst); diff != "" {
		t.Errorf("ShiftLeft saturate (-want +got):\n%s", diff)
	}
	ShiftLeft(dst, src, 33, ShiftModulo)
	if diff := cmp.Diff([]int32{-16, 16}, dst); diff != "" {
		t.Errorf("ShiftLeft modulo (-want +got):\n%s", diff)
	}
	ShiftRight(dst, src, 40, ShiftSaturate)
	if diff := cmp.Diff([]int32{-1, 0}, dst); diff != "" {
		t.Errorf("ShiftRight saturate (-want +got):\n%s", diff)
	}
	ShiftRightLogical(dst, src, 28, ShiftSaturate)
	if diff := cmp.Diff([]int32{0xf, 0}, dst); diff != "" {
		t.Errorf("ShiftRightLogical (-want +got):\n%s", diff)
	}
	ShiftLeftVar(dst, src, []int32{-1, 2}, ShiftSaturate)
	if diff := cmp.Diff([]int32{0, 32}, dst); diff != "" {
		t.Errorf("ShiftLeftVar (-want +got):\n%s", diff)
	}
	ShiftRightVar(dst, src, []int32{1, 100}, ShiftSaturate)
	if diff := cmp.Diff([]int32{-4, 0}, dst); diff != "" {
		t.Errorf("ShiftRightVar (-want +got):\n%s", diff)
	}
}

func TestFloatToIntRules(t *testing.T) {
	src := []float32{2.5, -1.5, float32(math.NaN()), 3e9, -3e9, 3.5}
	dst := make([]int32, len(src))

	FloatToInt(dst, src, ConvertIndefinite)
	want := []int32{2, -2, math.MinInt32, math.MinInt32, math.MinInt32, 4}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("indefinite (-want +got):\n%s", diff)
	}

	FloatToInt(dst, src, ConvertSaturate)
	want = []int32{2, -2, 0, math.MaxInt32, math.MinInt32, 4}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("saturate (-want +got):\n%s", diff)
	}
}

func TestReinterpretRoundTrip(t *testing.T) {
	src := []float32{1, -2, float32(math.Inf(1)), math.Float32frombits(0x7fc00123)}
	mid := make([]float64, 2)
	back := make([]float32, 4)
	Reinterpret(mid, src)
	Reinterpret(back, mid)
	for i := range src {
		if math.Float32bits(back[i]) != math.Float32bits(src[i]) {
			t.Errorf("lane %d: got %#x, want %#x", i, math.Float32bits(back[i]), math.Float32bits(src[i]))
		}
	}
}

func TestNarrowAndExtend(t *testing.T) {
	dst := make([]int8, 4)
	NarrowSat(dst, []int16{300, -5}, []int16{-300, 127})
	if diff := cmp.Diff([]int8{127, -5, -128, 127}, dst); diff != "" {
		t.Errorf("NarrowSat (-want +got):\n%s", diff)
	}
	wide := make([]int64, 2)
	Extend(wide, []int32{-1, math.MaxInt32})
	if diff := cmp.Diff([]int64{-1, math.MaxInt32}, wide); diff != "" {
		t.Errorf("Extend (-want +got):\n%s", diff)
	}
}

func TestFoldOrders(t *testing.T) {
	a := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	var order []int32
	Fold(a, ReduceHalving, func(x, y int32) int32 {
		order = append(order, x, y)
		return x + y
	})
	// 1+5, 2+6, 3+7, 4+8, then 6+10, 8+12, then 16+20.
	want := []int32{1, 5, 2, 6, 3, 7, 4, 8, 6, 10, 8, 12, 16, 20}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("halving order (-want +got):\n%s", diff)
	}

	order = order[:0]
	Fold(a[:4], ReduceAdjacent, func(x, y int32) int32 {
		order = append(order, x, y)
		return x + y
	})
	want = []int32{1, 2, 3, 4, 3, 7}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("adjacent order (-want +got):\n%s", diff)
	}
	if got := SumInt(a); got != 36 {
		t.Errorf("SumInt: got %d, want 36", got)
	}
}

func TestPairwiseAdd(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	b := []float32{10, 20, 30, 40, 50, 60, 70, 80}
	dst := make([]float32, 8)
	PairwiseAdd(dst, a, b)
	want := []float32{3, 7, 30, 70, 11, 15, 110, 150}
	if diff := cmp.Diff(want, dst); diff != "" {
		t.Errorf("PairwiseAdd 256-bit (-want +got):\n%s", diff)
	}

	one := make([]int32, 1)
	PairwiseAdd(one, []int32{4}, []int32{5})
	if one[0] != 9 {
		t.Errorf("PairwiseAdd single lane: got %d, want 9", one[0])
	}
}

func TestShuffle32(t *testing.T) {
	a := []int32{0, 1, 2, 3, 4, 5, 6, 7}
	dst := make([]int32, 8)
	Shuffle32(dst, a, 0x1b) // reverse each group
	if diff := cmp.Diff([]int32{3, 2, 1, 0, 7, 6, 5, 4}, dst); diff != "" {
		t.Errorf("Shuffle32 (-want +got):\n%s", diff)
	}
	Shuffle32(a[:4], a[:4], 0x00)
	if diff := cmp.Diff([]int32{0, 0, 0, 0}, a[:4]); diff != "" {
		t.Errorf("Shuffle32 in place (-want +got):\n%s", diff)
	}
}

func TestMaskLoadSkipsUnselected(t *testing.T) {
	dst := make([]int32, 4)
	MaskLoad(dst, []int32{-1, 0, -1, 0}, []int32{11, 22, 33})
	if diff := cmp.Diff([]int32{11, 0, 33, 0}, dst); diff != "" {
		t.Errorf("MaskLoad (-want +got):\n%s", diff)
	}
	if got := SignMask(dst); got != 0 {
		t.Errorf("SignMask: got %b, want 0", got)
	}
	if got := SignMask([]int8{-1, 0, -1}); got != 0b101 {
		t.Errorf("SignMask: got %b, want 101", got)
	}
}
