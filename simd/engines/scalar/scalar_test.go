package scalar_test

import (
	"math"
	"math/bits"
	"slices"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/scalar"
)

func TestGetMask(t *testing.T) {
	var v scalar.I8x1
	v.Set(0, -1)
	assert.Equal(t, uint32(1), v.GetMask())
	assert.Equal(t, 0, bits.TrailingZeros32(v.GetMask()))
	assert.Equal(t, uint32(0), v.With(0, 5).GetMask())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, simd.Width[scalar.I8x1]())
	assert.Equal(t, 1, simd.Width[scalar.F64x1]())
	assert.Equal(t, 0, scalar.Engine.RegisterBytes())
	assert.True(t, scalar.Engine.Supported())

	// One lane of T per register, so each register is sizeof(T) bytes.
	assert.Equal(t, uintptr(1), unsafe.Sizeof(scalar.I8x1{}))
	assert.Equal(t, uintptr(2), unsafe.Sizeof(scalar.I16x1{}))
	assert.Equal(t, uintptr(4), unsafe.Sizeof(scalar.I32x1{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(scalar.I64x1{}))
	assert.Equal(t, uintptr(4), unsafe.Sizeof(scalar.F32x1{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(scalar.F64x1{}))
}

func TestSingleLaneDegenerates(t *testing.T) {
	v := scalar.I16x1{-300}
	assert.Equal(t, scalar.I32x1{-300}, v.ExtendLo())
	assert.Equal(t, scalar.I32x1{-300}, v.ExtendHi())
	assert.Equal(t, scalar.I8x1{-128}, v.NarrowSat(scalar.I16x1{5}))
	assert.Equal(t, scalar.I16x1{-295}, v.HorizontalAdd(scalar.I16x1{5}))

	w := scalar.I32x1{42}
	for _, imm := range []uint8{0x00, 0x1b, 0xff} {
		assert.Equal(t, w, w.Shuffle(imm))
	}
	assert.Equal(t, scalar.F64x1{3.5}, scalar.F64x1{1}.HorizontalAdd(scalar.F64x1{2.5}))
}

func TestIEEEMinMax(t *testing.T) {
	nan := math.NaN()
	one := scalar.F64x1{1}
	n := scalar.F64x1{nan}
	assert.Equal(t, one, one.Min(n))
	assert.Equal(t, one, n.Min(one))
	assert.Equal(t, one, n.Max(one))
	assert.Equal(t, 1.0, one.ReduceMin())
}

func TestConvertSaturates(t *testing.T) {
	tests := []struct {
		in   float32
		want int32
	}{
		{2.5, 2},
		{-3.5, -4},
		{float32(math.NaN()), 0},
		{3e9, math.MaxInt32},
		{-3e9, math.MinInt32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, scalar.F32x1{tt.in}.ConvertToInt32().Get(0), "ConvertToInt32(%v)", tt.in)
	}
	assert.Equal(t, int64(math.MaxInt64), scalar.F64x1{1e300}.ConvertToInt64().Get(0))
	assert.Equal(t, scalar.F32x1{-7}, scalar.I32x1{-7}.ConvertToFloat32())
}

func TestShiftsPastWidth(t *testing.T) {
	v := scalar.I64x1{-8}
	assert.Equal(t, int64(0), v.ShiftAllLeft(64).Get(0))
	assert.Equal(t, int64(-1), v.ShiftAllRight(200).Get(0))
	assert.Equal(t, int64(math.MaxInt64>>2), v.ShiftAllRightLogical(3).Get(0))
	assert.Equal(t, int64(-32), v.ShiftLeft(scalar.I64x1{2}).Get(0))
}

func TestFloatCastsRoundTrip(t *testing.T) {
	for _, bitsIn := range []uint32{0, 0x80000000, 0x3f800000, 0x7f800001, 0xffffffff} {
		v := scalar.F32x1{math.Float32frombits(bitsIn)}
		wide := v.AsFloat64()
		assert.Equal(t, uint64(bitsIn), math.Float64bits(wide.Get(0)))
		assert.Equal(t, bitsIn, math.Float32bits(wide.AsFloat32().Get(0)))
	}
	assert.Equal(t, int64(math.Float64bits(-2)), scalar.F64x1{-2}.AsInt64().Get(0))
}

func TestMemory(t *testing.T) {
	var z scalar.F32x1
	src := []float32{3, 4}
	assert.Equal(t, float32(3), z.Load(src).Get(0))
	assert.Equal(t, float32(4), z.LoadAligned(src[1:]).Get(0))
	assert.Panics(t, func() { z.Load(nil) })

	dst := []float32{0, 0}
	z.Broadcast(9).Store(dst[1:])
	assert.Equal(t, []float32{0, 9}, dst)

	mask := scalar.F32x1{}.Broadcast(1).Less(z.Broadcast(2))
	assert.Equal(t, float32(3), mask.MaskLoad(src).Get(0))
	assert.Equal(t, float32(0), mask.Not().MaskLoad(nil).Get(0))
	assert.Equal(t, []float32{3}, slices.Collect(z.Load(src).Values()))
}

func TestGather(t *testing.T) {
	idx := scalar.I32x1{2}
	assert.Equal(t, int32(30), idx.Gather([]int32{10, 20, 30}).Get(0))
	assert.Equal(t, float32(1.5), idx.GatherFloat32([]float32{0, 0, 1.5}).Get(0))
	assert.Equal(t, 2.5, scalar.I64x1{0}.GatherFloat64([]float64{2.5}).Get(0))
}

func TestInvoke(t *testing.T) {
	got := scalar.Invoke(func() float32 {
		var z scalar.F32x1
		return z.Broadcast(2).MulAdd(z.Broadcast(3), z.Broadcast(1)).ReduceSum()
	})
	assert.Equal(t, float32(7), got)
}
