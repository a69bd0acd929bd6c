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

//go:build !(amd64 && goexperiment.simd)

package avx2

import "github.com/ajroetker/go-simdeez/internal/lanes"

func addF32(a, b F32x8) F32x8 {
	lanes.Add(a[:], a[:], b[:])
	return a
}

func subF32(a, b F32x8) F32x8 {
	lanes.Sub(a[:], a[:], b[:])
	return a
}

func mulF32(a, b F32x8) F32x8 {
	lanes.Mul(a[:], a[:], b[:])
	return a
}

func divF32(a, b F32x8) F32x8 {
	lanes.Div(a[:], a[:], b[:])
	return a
}

func minF32(a, b F32x8) F32x8 {
	lanes.MinFloat(a[:], a[:], b[:], ruleset.MinMax)
	return a
}

func maxF32(a, b F32x8) F32x8 {
	lanes.MaxFloat(a[:], a[:], b[:], ruleset.MinMax)
	return a
}

func mulAddF32(a, b, c F32x8) F32x8 {
	lanes.MulAdd(a[:], a[:], b[:], c[:], true)
	return a
}

func addF64(a, b F64x4) F64x4 {
	lanes.Add(a[:], a[:], b[:])
	return a
}

func subF64(a, b F64x4) F64x4 {
	lanes.Sub(a[:], a[:], b[:])
	return a
}

func mulF64(a, b F64x4) F64x4 {
	lanes.Mul(a[:], a[:], b[:])
	return a
}

func divF64(a, b F64x4) F64x4 {
	lanes.Div(a[:], a[:], b[:])
	return a
}

func minF64(a, b F64x4) F64x4 {
	lanes.MinFloat(a[:], a[:], b[:], ruleset.MinMax)
	return a
}

func maxF64(a, b F64x4) F64x4 {
	lanes.MaxFloat(a[:], a[:], b[:], ruleset.MinMax)
	return a
}

func mulAddF64(a, b, c F64x4) F64x4 {
	lanes.MulAdd(a[:], a[:], b[:], c[:], true)
	return a
}

func addI32(a, b I32x8) I32x8 {
	lanes.Add(a[:], a[:], b[:])
	return a
}

func subI32(a, b I32x8) I32x8 {
	lanes.Sub(a[:], a[:], b[:])
	return a
}

func andI32(a, b I32x8) I32x8 {
	lanes.And(a[:], a[:], b[:])
	return a
}

func orI32(a, b I32x8) I32x8 {
	lanes.Or(a[:], a[:], b[:])
	return a
}

func xorI32(a, b I32x8) I32x8 {
	lanes.Xor(a[:], a[:], b[:])
	return a
}

func addI64(a, b I64x4) I64x4 {
	lanes.Add(a[:], a[:], b[:])
	return a
}

func subI64(a, b I64x4) I64x4 {
	lanes.Sub(a[:], a[:], b[:])
	return a
}

func andI64(a, b I64x4) I64x4 {
	lanes.And(a[:], a[:], b[:])
	return a
}

func orI64(a, b I64x4) I64x4 {
	lanes.Or(a[:], a[:], b[:])
	return a
}

func xorI64(a, b I64x4) I64x4 {
	lanes.Xor(a[:], a[:], b[:])
	return a
}
