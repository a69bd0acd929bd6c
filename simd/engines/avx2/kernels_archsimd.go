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

//go:build amd64 && goexperiment.simd

package avx2

import "simd/archsimd"

func addF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(a[:]).Add(archsimd.LoadFloat32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func subF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(a[:]).Sub(archsimd.LoadFloat32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func mulF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(a[:]).Mul(archsimd.LoadFloat32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func divF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(a[:]).Div(archsimd.LoadFloat32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

// archsimd returns the receiver for NaN lanes, so b is the receiver to get
// minps(a, b).
func minF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(b[:]).Min(archsimd.LoadFloat32x8Slice(a[:])).StoreSlice(r[:])
	return r
}

func maxF32(a, b F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(b[:]).Max(archsimd.LoadFloat32x8Slice(a[:])).StoreSlice(r[:])
	return r
}

func mulAddF32(a, b, c F32x8) F32x8 {
	var r F32x8
	archsimd.LoadFloat32x8Slice(a[:]).MulAdd(archsimd.LoadFloat32x8Slice(b[:]), archsimd.LoadFloat32x8Slice(c[:])).StoreSlice(r[:])
	return r
}

func addF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(a[:]).Add(archsimd.LoadFloat64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func subF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(a[:]).Sub(archsimd.LoadFloat64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func mulF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(a[:]).Mul(archsimd.LoadFloat64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func divF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(a[:]).Div(archsimd.LoadFloat64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func minF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(b[:]).Min(archsimd.LoadFloat64x4Slice(a[:])).StoreSlice(r[:])
	return r
}

func maxF64(a, b F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(b[:]).Max(archsimd.LoadFloat64x4Slice(a[:])).StoreSlice(r[:])
	return r
}

func mulAddF64(a, b, c F64x4) F64x4 {
	var r F64x4
	archsimd.LoadFloat64x4Slice(a[:]).MulAdd(archsimd.LoadFloat64x4Slice(b[:]), archsimd.LoadFloat64x4Slice(c[:])).StoreSlice(r[:])
	return r
}

func addI32(a, b I32x8) I32x8 {
	var r I32x8
	archsimd.LoadInt32x8Slice(a[:]).Add(archsimd.LoadInt32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func subI32(a, b I32x8) I32x8 {
	var r I32x8
	archsimd.LoadInt32x8Slice(a[:]).Sub(archsimd.LoadInt32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func andI32(a, b I32x8) I32x8 {
	var r I32x8
	archsimd.LoadInt32x8Slice(a[:]).And(archsimd.LoadInt32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func orI32(a, b I32x8) I32x8 {
	var r I32x8
	archsimd.LoadInt32x8Slice(a[:]).Or(archsimd.LoadInt32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func xorI32(a, b I32x8) I32x8 {
	var r I32x8
	archsimd.LoadInt32x8Slice(a[:]).Xor(archsimd.LoadInt32x8Slice(b[:])).StoreSlice(r[:])
	return r
}

func addI64(a, b I64x4) I64x4 {
	var r I64x4
	archsimd.LoadInt64x4Slice(a[:]).Add(archsimd.LoadInt64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func subI64(a, b I64x4) I64x4 {
	var r I64x4
	archsimd.LoadInt64x4Slice(a[:]).Sub(archsimd.LoadInt64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func andI64(a, b I64x4) I64x4 {
	var r I64x4
	archsimd.LoadInt64x4Slice(a[:]).And(archsimd.LoadInt64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func orI64(a, b I64x4) I64x4 {
	var r I64x4
	archsimd.LoadInt64x4Slice(a[:]).Or(archsimd.LoadInt64x4Slice(b[:])).StoreSlice(r[:])
	return r
}

func xorI64(a, b I64x4) I64x4 {
	var r I64x4
	archsimd.LoadInt64x4Slice(a[:]).Xor(archsimd.LoadInt64x4Slice(b[:])).StoreSlice(r[:])
	return r
}
