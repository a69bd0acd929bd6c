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

// Package avx2 is the 256-bit x86-64 engine. It requires AVX2 and FMA.
//
// Built with GOEXPERIMENT=simd on amd64, the float arithmetic and the 32- and
// 64-bit integer add, sub and bitwise operations run on simd/archsimd
// vectors. Everything else, and every operation in other builds, goes through
// the portable lane kernels with the same results.
//
// Semantics follow the instructions: minps/maxps return the second operand
// when either is NaN, conversions of NaN or out-of-range floats give the
// integer indefinite value, and operations on pairs (HorizontalAdd, Shuffle)
// work within each 128-bit half.
package avx2

import (
	"github.com/ajroetker/go-simdeez/internal/lanes"
	"github.com/ajroetker/go-simdeez/simd"
)

// Level is the dispatch level of this engine.
const Level = simd.DispatchAVX2

// Engine describes the AVX2 engine.
var Engine simd.Engine = Level

// Lane counts of the AVX2 registers.
const (
	I8Lanes  = 32
	I16Lanes = 16
	I32Lanes = 8
	I64Lanes = 4
	F32Lanes = 8
	F64Lanes = 4

	RegisterBytes = 32
)

var ruleset = lanes.Rules{
	MinMax:        lanes.MinMaxX86,
	FusedMulAdd:   true,
	Convert:       lanes.ConvertIndefinite,
	Shift:         lanes.ShiftSaturate,
	Reduce:        lanes.ReduceHalving,
	AlignedFaults: true,
	RegisterBytes: RegisterBytes,
}

var _ simd.Registers[I8x32, I16x16, I32x8, I64x4, F32x8, F64x4]

// Invoke runs body on the AVX2 engine and returns its result. It panics if
// the host lacks AVX2 or FMA.
func Invoke[R any](body func() R) R {
	return simd.InvokeWith(Level, body)
}

// Run is Invoke for a body without a result.
func Run(body func()) {
	simd.RunWith(Level, body)
}
