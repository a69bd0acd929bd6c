// Package sse41 is the SSE4.1 engine. It behaves like sse2; the later
// instruction set only shortens the sequences behind blendv, round, pmulld
// and the 32-bit integer min and max.
package sse41

import (
	"github.com/ajroetker/go-simdeez/internal/lanes"
	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/internal/x128"
)

// Level is the dispatch level of this engine.
const Level = simd.DispatchSSE41

// Engine describes the SSE4.1 engine.
var Engine simd.Engine = Level

// Lane counts of the SSE4.1 registers.
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
	MinMax:        lanes.MinMaxX86,
	Convert:       lanes.ConvertIndefinite,
	Shift:         lanes.ShiftSaturate,
	Reduce:        lanes.ReduceHalving,
	AlignedFaults: true,
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

// Invoke runs body on the SSE4.1 engine and returns its result. It panics if
// the host cannot run SSE4.1 code.
func Invoke[R any](body func() R) R {
	return simd.InvokeWith(Level, body)
}

// Run is Invoke for a body without a result.
func Run(body func()) {
	simd.RunWith(Level, body)
}
