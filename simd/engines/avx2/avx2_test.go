package avx2_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/avx2"
	"github.com/ajroetker/go-simdeez/simd/engines/sse2"
)

func TestAddBroadcast(t *testing.T) {
	requireHost(t)
	var z avx2.F32x8
	got := z.Broadcast(4).Add(z.Broadcast(5))
	want := [8]float32{9, 9, 9, 9, 9, 9, 9, 9}
	assert.Equal(t, want, [8]float32(got))
	assert.Equal(t, 8, got.Width())
	assert.Equal(t, avx2.F32Lanes, got.Width())
}

func TestReduceSumMatchesHalves(t *testing.T) {
	src := []int32{1, 2, 3, 4, 5, 6, 7, 8}
	var z avx2.I32x8
	wide := z.Load(src).ReduceSum()
	assert.Equal(t, int32(36), wide)

	var h sse2.I32x4
	halves := h.Load(src).Add(h.Load(src[4:])).ReduceSum()
	assert.Equal(t, wide, halves)
}

func TestFloatArithmetic(t *testing.T) {
	requireHost(t)
	var z avx2.F64x4
	a := z.Load([]float64{1, -2, 3, -4})
	b := z.Load([]float64{2, 2, 2, 2})

	assert.Equal(t, [4]float64{3, 0, 5, -2}, [4]float64(a.Add(b)))
	assert.Equal(t, [4]float64{-1, -4, 1, -6}, [4]float64(a.Sub(b)))
	assert.Equal(t, [4]float64{2, -4, 6, -8}, [4]float64(a.Mul(b)))
	assert.Equal(t, [4]float64{0.5, -1, 1.5, -2}, [4]float64(a.Div(b)))
	assert.Equal(t, [4]float64{1, -2, 2, -4}, [4]float64(a.Min(b)))
	assert.Equal(t, [4]float64{2, 2, 3, 2}, [4]float64(a.Max(b)))
	assert.Equal(t, [4]float64{3, -3, 7, -7}, [4]float64(a.MulAdd(b, z.Broadcast(1))))
}

func TestMulAddIsFused(t *testing.T) {
	requireHost(t)
	var z avx2.F32x8
	a := z.Broadcast(1 + 1.0/(1<<12))
	c := z.Broadcast(-(1 + 2.0/(1<<12)))
	assert.Equal(t, float32(1.0/(1<<24)), a.MulAdd(a, c).Get(0))
}

func TestMinMaxNaN(t *testing.T) {
	requireHost(t)
	nan := float32(math.NaN())
	var z avx2.F32x8
	two := z.Broadcast(2)
	nans := z.Broadcast(nan)

	// minps returns the second operand when either is NaN. The float kernels
	// differ between builds, so run this with GOEXPERIMENT=simd as well.
	assert.Equal(t, float32(2), nans.Min(two).Get(0))
	assert.Equal(t, float32(2), nans.Max(two).Get(5))
	assert.True(t, math.IsNaN(float64(two.Min(nans).Get(3))))
	assert.True(t, math.IsNaN(float64(two.Max(nans).Get(7))))

	var d avx2.F64x4
	dnans := d.Broadcast(math.NaN())
	assert.Equal(t, -1.0, dnans.Min(d.Broadcast(-1)).Get(1))
	assert.Equal(t, -1.0, dnans.Max(d.Broadcast(-1)).Get(2))
	assert.True(t, math.IsNaN(d.Broadcast(-1).Max(dnans).Get(0)))
}

func TestMulAddRoundsOnce(t *testing.T) {
	requireHost(t)
	var z avx2.F32x8
	// a*a lies on a float32 midpoint; c pushes the exact sum above it.
	a := z.Broadcast(1 + 1.0/(1<<12))
	c := z.Broadcast(float32(math.Ldexp(1, -80)))
	assert.Equal(t, uint32(0x3f801001), math.Float32bits(a.MulAdd(a, c).Get(6)))
}

func TestIntegerFastPaths(t *testing.T) {
	requireHost(t)
	var z avx2.I64x4
	a := z.Load([]int64{1, -1, math.MaxInt64, 0x0f})
	b := z.Load([]int64{2, 2, 1, 0xf0})

	assert.Equal(t, [4]int64{3, 1, math.MinInt64, 0xff}, [4]int64(a.Add(b)))
	assert.Equal(t, [4]int64{-1, -3, math.MaxInt64 - 1, 0x0f - 0xf0}, [4]int64(a.Sub(b)))
	assert.Equal(t, [4]int64{0, 2, 1, 0}, [4]int64(a.And(b)))
	assert.Equal(t, [4]int64{3, -1, math.MaxInt64, 0xff}, [4]int64(a.Or(b)))
	assert.Equal(t, [4]int64{3, -3, math.MaxInt64 - 1, 0xff}, [4]int64(a.Xor(b)))
	assert.Equal(t, [4]int64{2, -2, math.MaxInt64, 0xf0 * 0x0f}, [4]int64(a.Mul(b)))

	var w avx2.I32x8
	x := w.Broadcast(6)
	assert.Equal(t, int32(6*8), x.Add(w).ReduceSum())
	assert.Equal(t, int32(0), x.Xor(x).ReduceMax())
}

func TestPairOpsStayInHalves(t *testing.T) {
	var z avx2.I32x8
	a := z.Load([]int32{0, 1, 2, 3, 4, 5, 6, 7})

	if diff := cmp.Diff([8]int32{3, 2, 1, 0, 7, 6, 5, 4}, [8]int32(a.Shuffle(0x1b))); diff != "" {
		t.Errorf("Shuffle (-want +got):\n%s", diff)
	}
	b := z.Broadcast(10)
	if diff := cmp.Diff([8]int32{1, 5, 20, 20, 9, 13, 20, 20}, [8]int32(a.HorizontalAdd(b))); diff != "" {
		t.Errorf("HorizontalAdd (-want +got):\n%s", diff)
	}
}

func TestConvertIndefinite(t *testing.T) {
	var z avx2.F32x8
	v := z.Load([]float32{2.5, 3.5, -2.5, float32(math.NaN()), 3e9, -3e9, 0.49, -0.51})
	want := [8]int32{2, 4, -2, math.MinInt32, math.MinInt32, math.MinInt32, 0, -1}
	assert.Equal(t, want, [8]int32(v.ConvertToInt32()))
}

func TestWideningAndNarrowing(t *testing.T) {
	var z avx2.I16x16
	src := make([]int16, avx2.I16Lanes)
	for i := range src {
		src[i] = int16(i*100 - 700)
	}
	v := z.Load(src)
	lo, hi := v.ExtendLo(), v.ExtendHi()
	for i := range 8 {
		assert.Equal(t, int32(src[i]), lo.Get(i))
		assert.Equal(t, int32(src[8+i]), hi.Get(i))
	}
	assert.Equal(t, v, lo.NarrowSat(hi))

	n := v.NarrowSat(v)
	assert.Equal(t, int8(-128), n.Get(0))
	assert.Equal(t, int8(0), n.Get(7))
	assert.Equal(t, int8(127), n.Get(15))
	assert.Equal(t, int8(-128), n.Get(16))
}

func TestLoadAligned(t *testing.T) {
	buf := simd.MakeAligned[float32](2*avx2.F32Lanes, avx2.RegisterBytes)
	for i := range buf {
		buf[i] = float32(i)
	}
	var z avx2.F32x8
	assert.Equal(t, float32(28), z.LoadAligned(buf).ReduceSum())

	assert.PanicsWithValue(t, "simd: aligned access to an address that is not register aligned", func() {
		z.LoadAligned(buf[1:])
	})
	assert.Panics(t, func() { z.Load(buf[:7]) })

	out := simd.MakeAligned[float32](avx2.F32Lanes, avx2.RegisterBytes)
	z.Broadcast(1).StoreAligned(out)
	assert.Equal(t, []float32{1, 1, 1, 1, 1, 1, 1, 1}, out)
}

func TestCastRoundTrip(t *testing.T) {
	var z avx2.F32x8
	src := []float32{1, -0.0, float32(math.Inf(-1)), math.Float32frombits(0x7fc0beef), 5, 6, 7, 8}
	back := z.Load(src).AsFloat64().AsFloat32()
	for i, x := range src {
		assert.Equal(t, math.Float32bits(x), math.Float32bits(back.Get(i)), "lane %d", i)
	}
	ints := z.Load(src).AsInt32()
	assert.Equal(t, int32(0x3f800000), ints.Get(0))
	assert.Equal(t, z.Load(src).GetMask(), ints.GetMask())
}

func TestInvoke(t *testing.T) {
	t.Cleanup(simd.ResetDetection)

	simd.SetForcedFeatures(simd.Features{Architecture: "amd64", HasSSE2: true, HasSSE41: true})
	require.PanicsWithValue(t, "simd: avx2 kernels invoked on a host without [sse2 sse4.1 avx2 fma]", func() {
		avx2.Invoke(func() int { return 1 })
	})

	simd.SetForcedFeatures(simd.Features{Architecture: "amd64", HasSSE2: true, HasSSE41: true, HasAVX2: true, HasFMA: true})
	ran := false
	avx2.Run(func() { ran = true })
	assert.True(t, ran)
	assert.Equal(t, 32, avx2.Engine.RegisterBytes())
}
