package wasm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajroetker/go-simdeez/simd/engines/wasm"
)

func TestShiftCountsWrap(t *testing.T) {
	v := wasm.I32x4{1, -1, 8, -8}
	assert.Equal(t, wasm.I32x4{2, -2, 16, -16}, v.ShiftAllLeft(33))
	assert.Equal(t, wasm.I32x4{0, -1, 4, -4}, v.ShiftAllRight(33))
	assert.Equal(t, wasm.I16x8{}.Broadcast(2), wasm.I16x8{}.Broadcast(1).ShiftAllLeft(17))
	assert.Equal(t, v, v.ShiftLeft(wasm.I32x4{}.Broadcast(32)))
}

func TestNoFMA(t *testing.T) {
	x := wasm.F32x4{}.Broadcast(1 + 1.0/(1<<12))
	y := wasm.F32x4{}.Broadcast(-(1 + 2.0/(1<<12)))
	assert.Equal(t, float32(0), x.MulAdd(x, y).Get(0))
}

func TestNaNRules(t *testing.T) {
	nan := math.NaN()
	assert.True(t, math.IsNaN(wasm.F64x2{1, 2}.Max(wasm.F64x2{nan, 0}).Get(0)))
	assert.Equal(t, wasm.I64x2{0, math.MinInt64}, wasm.F64x2{nan, -1e300}.ConvertToInt64())
}

func TestHorizontalAdd(t *testing.T) {
	a := wasm.I16x8{1, 2, 3, 4, 5, 6, 7, 8}
	b := wasm.I16x8{}.Broadcast(-1)
	assert.Equal(t, wasm.I16x8{3, 7, 11, 15, -2, -2, -2, -2}, a.HorizontalAdd(b))
}
