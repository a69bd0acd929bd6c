package neon_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/neon"
)

func TestMinMaxPropagateNaN(t *testing.T) {
	nan := float32(math.NaN())
	a := neon.F32x4{nan, 1, 2, 3}
	b := neon.F32x4{0, nan, 2, 3}
	for _, got := range []neon.F32x4{a.Min(b), a.Max(b)} {
		assert.True(t, math.IsNaN(float64(got[0])))
		assert.True(t, math.IsNaN(float64(got[1])))
		assert.Equal(t, float32(2), got[2])
	}
	assert.True(t, math.IsNaN(float64(a.ReduceMax())))
}

func TestReduceAdjacent(t *testing.T) {
	// faddp order: (1e8 + 1) + (-1e8 + 1), each pair rounding away the 1.
	v := neon.F32x4{1e8, 1, -1e8, 1}
	assert.Equal(t, float32(0), v.ReduceSum())
}

func TestConvertSaturates(t *testing.T) {
	c := neon.F64x2{1e300, math.NaN()}.ConvertToInt64()
	assert.Equal(t, neon.I64x2{math.MaxInt64, 0}, c)
	assert.Equal(t, neon.I32x4{2, -2, 4, math.MinInt32}, neon.F32x4{2.5, -2.5, 3.5, -1e12}.ConvertToInt32())
}

func TestFusedMulAdd(t *testing.T) {
	x := neon.F32x4{}.Broadcast(1 + 1.0/(1<<12))
	y := neon.F32x4{}.Broadcast(-(1 + 2.0/(1<<12)))
	assert.Equal(t, float32(1.0/(1<<24)), x.MulAdd(x, y).Get(2))
}

func TestUnalignedLoadsAllowed(t *testing.T) {
	buf := simd.MakeAligned[float64](3, neon.RegisterBytes)
	buf[1], buf[2] = 4, 5
	var z neon.F64x2
	assert.Equal(t, neon.F64x2{4, 5}, z.LoadAligned(buf[1:]))
}

func TestInvoke(t *testing.T) {
	t.Cleanup(simd.ResetDetection)
	simd.SetForcedFeatures(simd.Features{Architecture: "arm64", HasNEON: true})
	got := neon.Invoke(func() int8 {
		return neon.I8x16{}.Broadcast(100).AddSat(neon.I8x16{}.Broadcast(100)).ReduceMax()
	})
	assert.Equal(t, int8(127), got)

	simd.SetForcedFeatures(simd.Features{Architecture: "arm64", HasNEON: true, ForceScalar: true})
	assert.Panics(t, func() { neon.Run(func() {}) })
}
