// Package wasm is the WebAssembly SIMD128 engine.
//
// Float min and max propagate NaN, conversions saturate, and shift counts are
// taken modulo the lane width as the i*x*.shl instructions do. There is no
// fused multiply-add.
package wasm

import (
	"github.com/ajroetker/go-simdeez/internal/lanes"
	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/internal/x128"
)

// Level is the dispatch level of this engine.
const Level = simd.DispatchWASM

// Engine describes the WASM-SIMD128 engine.
var Engine simd.Engine = Level

// Lane counts of the WASM-SIMD128 registers.
const (
	I8Lanes  = x128.I8Lanes
	I16Lanes = x128.I16Lanes
	I32Lanes = x128.I32Lanes
	I64Lanes = x128.I64Lanes
	F32Lanes = x128.F32Lanes
	F64Lanes = x128.F64Lanes

	RegisterBytes = x128.RegisterBytes
)

type rules struct{}

func (rules) Rules() lanes.Rules { return ruleset }

var ruleset = lanes.Rules{
	MinMax:        lanes.MinMaxPropagate,
	Convert:       lanes.ConvertSaturate,
	Shift:         lanes.ShiftModulo,
	Reduce:        lanes.ReduceHalving,
	RegisterBytes: RegisterBytes,
}

// Register types.
type (
	I8x16 = x128.I8x16[rules]
	I16x8 = x128.I16x8[rules]
	I32x4 = x128.I32x4[rules]
	I64x2 = x128.I64x2[rules]
	F32x4 = x128.F32x4[rules]
	F64x2 = x128.F64x2[rules]
)

var _ simd.Registers[I8x16, I16x8, I32x4, I64x2, F32x4, F64x2]

// Invoke runs body on the WASM-SIMD128 engine and returns its result. It panics if
// the host cannot run WASM-SIMD128 code.
func Invoke[R any](body func() R) R {
	return simd.InvokeWith(Level, body)
}

// Run is Invoke for a body without a result.
func Run(body func()) {
	simd.RunWith(Level, body)
}
