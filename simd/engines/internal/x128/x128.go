// Package x128 implements the 128-bit register family shared by the SSE2,
// SSE4.1, NEON and WASM-SIMD128 engines.
//
// The types are parameterised by a Rulebook so each engine package gets its
// own distinct register types while the lane arithmetic lives in one place.
// Engines differ only where their instruction sets do: NaN handling in
// min and max, FMA, float-to-int conversion of out-of-range lanes, shift
// counts past the lane width, and the order reductions associate in.
package x128

import "github.com/ajroetker/go-simdeez/internal/lanes"

// Rulebook is implemented by an engine's marker type.
type Rulebook interface {
	Rules() lanes.Rules
}

func rulesOf[R Rulebook]() lanes.Rules {
	var r R
	return r.Rules()
}

// Lane counts of the 128-bit registers.
const (
	I8Lanes  = 16
	I16Lanes = 8
	I32Lanes = 4
	I64Lanes = 2
	F32Lanes = 4
	F64Lanes = 2

	RegisterBytes = 16
)
