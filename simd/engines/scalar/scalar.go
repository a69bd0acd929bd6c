// Package scalar is the fallback engine. Every register holds exactly one
// lane and every operation is plain Go arithmetic, so it runs anywhere.
//
// Where the SIMD engines disagree the scalar engine follows IEEE 754 and Go:
// min and max return the number when one operand is NaN, MulAdd is fused,
// float-to-int conversion saturates with NaN giving zero, and shifts by the
// lane width or more clear the lane (or fill it with the sign for arithmetic
// right shifts).
//
// Operations defined over pairs or halves of a register degenerate on one
// lane: ExtendLo and ExtendHi both widen lane 0, HorizontalAdd returns a+b,
// NarrowSat keeps only the receiver's lane and Shuffle is the identity.
package scalar

import (
	"github.com/ajroetker/go-simdeez/internal/lanes"
	"github.com/ajroetker/go-simdeez/simd"
)

// Level is the dispatch level of this engine.
const Level = simd.DispatchScalar

// Engine describes the scalar engine.
var Engine simd.Engine = Level

// Every scalar register has one lane.
const (
	I8Lanes  = 1
	I16Lanes = 1
	I32Lanes = 1
	I64Lanes = 1
	F32Lanes = 1
	F64Lanes = 1

	// RegisterBytes is 0: scalar registers have no common size. Each holds
	// one lane, sizeof(T) bytes.
	RegisterBytes = 0
)

var ruleset = lanes.Rules{
	MinMax:        lanes.MinMaxNumber,
	FusedMulAdd:   true,
	Convert:       lanes.ConvertSaturate,
	Shift:         lanes.ShiftSaturate,
	Reduce:        lanes.ReduceHalving,
	RegisterBytes: RegisterBytes,
}

var _ simd.Registers[I8x1, I16x1, I32x1, I64x1, F32x1, F64x1]

// Invoke runs body and returns its result. The scalar engine is supported
// everywhere, so it never panics on its own.
func Invoke[R any](body func() R) R {
	return simd.InvokeWith(Level, body)
}

// Run is Invoke for a body without a result.
func Run(body func()) {
	simd.RunWith(Level, body)
}
