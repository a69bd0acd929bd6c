// Copyright 2025 go-simdeez Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sse2 is the x86-64 baseline engine: 128-bit registers, no FMA.
//
// Float min and max follow minps: when either operand is NaN the second one
// is returned. Conversions of NaN or out-of-range floats give the integer
// indefinite value, the most negative integer. Reductions fold the upper half
// onto the lower half.
package sse2

import (
	"github.com/ajroetker/go-simdeez/internal/lanes"
	"github.com/ajroetker/go-simdeez/simd"
	"github.com/ajroetker/go-simdeez/simd/engines/internal/x128"
)

// Level is the dispatch level of this engine.
const Level = simd.DispatchSSE2

// Engine describes the SSE2 engine.
var Engine simd.Engine = Level

// Lane counts of the SSE2 registers.
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

// Invoke runs body on the SSE2 engine and returns its result. It panics if
// the host cannot run SSE2 code.
func Invoke[R any](body func() R) R {
	return simd.InvokeWith(Level, body)
}

// Run is Invoke for a body without a result.
func Run(body func()) {
	simd.RunWith(Level, body)
}
