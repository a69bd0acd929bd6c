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

package avx2

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// F64x4 is a 256-bit register of four float64 lanes.
type F64x4 [4]float64

// Width returns the number of lanes, 4.
func (v F64x4) Width() int {
	return len(v)
}

// Get returns lane i.
func (v F64x4) Get(i int) float64 {
	return v[i]
}

// Set replaces lane i with x.
func (v *F64x4) Set(i int, x float64) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v F64x4) With(i int, x float64) F64x4 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (F64x4) Broadcast(x float64) F64x4 {
	var b F64x4
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 4 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (F64x4) Load(src []float64) F64x4 {
	var b F64x4
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v F64x4) LoadAligned(src []float64) F64x4 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v F64x4) Store(dst []float64) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v F64x4) StoreAligned(dst []float64) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v F64x4) MaskLoad(src []float64) F64x4 {
	var b F64x4
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v F64x4) MaskStore(x F64x4, dst []float64) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v F64x4) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o.
func (v F64x4) Add(o F64x4) F64x4 {
	return addF64(v, o)
}

// Sub returns v - o.
func (v F64x4) Sub(o F64x4) F64x4 {
	return subF64(v, o)
}

// Mul returns v * o.
func (v F64x4) Mul(o F64x4) F64x4 {
	return mulF64(v, o)
}

// Div returns v / o.
func (v F64x4) Div(o F64x4) F64x4 {
	return divF64(v, o)
}

// AddScalar adds x to every lane.
func (v F64x4) AddScalar(x float64) F64x4 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v F64x4) SubScalar(x float64) F64x4 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v F64x4) MulScalar(x float64) F64x4 {
	return v.Mul(v.Broadcast(x))
}

// DivScalar divides every lane by x.
func (v F64x4) DivScalar(x float64) F64x4 {
	return v.Div(v.Broadcast(x))
}

// MulAdd returns v*b + c with a single rounding.
func (v F64x4) MulAdd(b, c F64x4) F64x4 {
	return mulAddF64(v, b, c)
}

// Neg returns -v. Only the sign bits change.
func (v F64x4) Neg() F64x4 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs clears the sign bit of every lane.
func (v F64x4) Abs() F64x4 {
	lanes.AbsFloat(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum under the engine's NaN rule.
func (v F64x4) Min(o F64x4) F64x4 {
	return minF64(v, o)
}

// Max returns the lane-wise maximum under the engine's NaN rule.
func (v F64x4) Max(o F64x4) F64x4 {
	return maxF64(v, o)
}

// And returns v & o on the raw bits.
func (v F64x4) And(o F64x4) F64x4 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o on the raw bits.
func (v F64x4) Or(o F64x4) F64x4 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o on the raw bits.
func (v F64x4) Xor(o F64x4) F64x4 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o on the raw bits.
func (v F64x4) AndNot(o F64x4) F64x4 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v F64x4) Not() F64x4 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v F64x4) Equal(o F64x4) F64x4 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o. NaN lanes compare unequal.
func (v F64x4) NotEqual(o F64x4) F64x4 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v F64x4) Less(o F64x4) F64x4 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v F64x4) LessEqual(o F64x4) F64x4 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v F64x4) Greater(o F64x4) F64x4 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v F64x4) GreaterEqual(o F64x4) F64x4 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v F64x4) Merge(other, mask F64x4) F64x4 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v F64x4) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes. The association order is the engine's.
func (v F64x4) ReduceSum() float64 {
	return lanes.SumFloat(v[:], ruleset.Reduce)
}

// ReduceMax returns the largest lane.
func (v F64x4) ReduceMax() float64 {
	rules := ruleset
	return lanes.MaxFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// ReduceMin returns the smallest lane.
func (v F64x4) ReduceMin() float64 {
	rules := ruleset
	return lanes.MinFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// Sqrt returns the square root of every lane.
func (v F64x4) Sqrt() F64x4 {
	lanes.Sqrt(v[:], v[:])
	return v
}

// Floor rounds every lane toward negative infinity.
func (v F64x4) Floor() F64x4 {
	lanes.Floor(v[:], v[:])
	return v
}

// Ceil rounds every lane toward positive infinity.
func (v F64x4) Ceil() F64x4 {
	lanes.Ceil(v[:], v[:])
	return v
}

// Round rounds every lane to the nearest integer, ties to even.
func (v F64x4) Round() F64x4 {
	lanes.Round(v[:], v[:])
	return v
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v F64x4) HorizontalAdd(o F64x4) F64x4 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ConvertToInt64 rounds every lane to the nearest int64, ties to even.
// NaN and out-of-range lanes follow the engine's conversion rule.
func (v F64x4) ConvertToInt64() I64x4 {
	var c I64x4
	lanes.FloatToInt(c[:], v[:], ruleset.Convert)
	return c
}

// AsInt64 reinterprets the register's bits as int64 lanes.
func (v F64x4) AsInt64() I64x4 {
	var c I64x4
	lanes.Reinterpret(c[:], v[:])
	return c
}

// AsFloat32 reinterprets the register's bits as float32 lanes.
func (v F64x4) AsFloat32() F32x8 {
	var s F32x8
	lanes.Reinterpret(s[:], v[:])
	return s
}
