package sse2_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/sse2"
	"github.com/ajroetker/go-simdeez/simd/engines/sse41"
)

func TestGather(t *testing.T) {
	arr := []int32{10, 20, 30, 40, 50, 60, 70, 80}
	idx := sse2.I32x4{7, 0, 3, 5}
	if diff := cmp.Diff([4]int32{80, 10, 40, 60}, [4]int32(idx.Gather(arr))); diff != "" {
		t.Errorf("Gather (-want +got):\n%s", diff)
	}
	assert.Panics(t, func() { sse2.I32x4{8}.Gather(arr) })
}

func TestMaskLoad(t *testing.T) {
	mask := sse2.I32x4{-1, 0, -1, 0}
	got := mask.MaskLoad([]int32{11, 22, 33, 44})
	assert.Equal(t, sse2.I32x4{11, 0, 33, 0}, got)

	dst := []int32{1, 2, 3, 4}
	mask.MaskStore(sse2.I32x4{}.Broadcast(9), dst)
	assert.Equal(t, []int32{9, 2, 9, 4}, dst)
}

func TestCastRoundTrip(t *testing.T) {
	src := sse2.F32x4{1.5, float32(math.Inf(1)), math.Float32frombits(0x7fa00001), -2}
	back := src.AsFloat64().AsFloat32()
	for i := range src {
		assert.Equal(t, math.Float32bits(src[i]), math.Float32bits(back[i]), "lane %d", i)
	}
}

func TestCompareAndMerge(t *testing.T) {
	a := sse2.F32x4{1, 5, 3, float32(math.NaN())}
	b := sse2.F32x4{2, 2, 3, 0}

	assert.Equal(t, uint32(0b0001), a.Less(b).GetMask())
	assert.Equal(t, uint32(0b0110), a.GreaterEqual(b).GetMask())
	assert.Equal(t, uint32(0b1011), a.NotEqual(b).GetMask())
	assert.Equal(t, uint32(0b0100), a.Equal(b).GetMask())

	m := a.Greater(b)
	got := a.Merge(b, m)
	assert.Equal(t, [3]float32{2, 5, 3}, [3]float32(got[:3]))
}

func TestX86Semantics(t *testing.T) {
	nan := float32(math.NaN())
	a := sse2.F32x4{nan, 1, 2, 3}
	b := sse2.F32x4{0, nan, 2, 3}
	got := a.Max(b)
	assert.Equal(t, float32(0), got[0])
	assert.True(t, math.IsNaN(float64(got[1])))

	c := sse2.F32x4{1e10, -1e10, nan, 1.5}.ConvertToInt32()
	assert.Equal(t, sse2.I32x4{math.MinInt32, math.MinInt32, math.MinInt32, 2}, c)

	// No FMA: the product is rounded before the add.
	x := sse2.F32x4{}.Broadcast(1 + 1.0/(1<<12))
	y := sse2.F32x4{}.Broadcast(-(1 + 2.0/(1<<12)))
	assert.Equal(t, float32(0), x.MulAdd(x, y).Get(0))

	assert.Equal(t, sse2.I16x8{}, sse2.I16x8{}.Broadcast(1).ShiftAllLeft(16))
}

func TestReduceOrder(t *testing.T) {
	// Halving: (1e8 + -1e8) + (1 + 1).
	v := sse2.F32x4{1e8, 1, -1e8, 1}
	assert.Equal(t, float32(2), v.ReduceSum())
	assert.Equal(t, float32(1e8), v.ReduceMax())
	assert.Equal(t, float32(-1e8), v.ReduceMin())
}

func TestAligned(t *testing.T) {
	buf := simd.MakeAligned[int64](4, sse2.RegisterBytes)
	var z sse2.I64x2
	z.Broadcast(-3).StoreAligned(buf)
	assert.Equal(t, []int64{-3, -3, 0, 0}, buf)
	assert.Equal(t, int64(-6), z.LoadAligned(buf).ReduceSum())
	assert.Panics(t, func() { z.LoadAligned(buf[1:]) })
}

func TestDistinctPerEngine(t *testing.T) {
	assert.NotEqual(t, reflect.TypeOf(sse2.F32x4{}), reflect.TypeOf(sse41.F32x4{}))
	assert.Equal(t, sse2.F32x4{3, 3, 3, 3}, sse2.F32x4{}.Broadcast(3))
	assert.Equal(t, sse41.Level, sse41.Engine)
	assert.Equal(t, []string{"sse2", "sse4.1"}, sse41.Engine.Features())
}

func TestNarrowExtend(t *testing.T) {
	v := sse2.I32x4{70000, -70000, 5, -5}
	n := v.NarrowSat(sse2.I32x4{1, 2, 3, 4})
	assert.Equal(t, sse2.I16x8{32767, -32768, 5, -5, 1, 2, 3, 4}, n)
	assert.Equal(t, sse2.I32x4{32767, -32768, 5, -5}, n.ExtendLo())
	assert.Equal(t, sse2.I32x4{1, 2, 3, 4}, n.ExtendHi())
	assert.Equal(t, sse2.I64x2{5, -5}, v.ExtendHi())
}
