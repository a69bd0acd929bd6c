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

// F32x8 is a 256-bit register of eight float32 lanes.
type F32x8 [8]float32

// Width returns the number of lanes, 8.
func (v F32x8) Width() int {
	return len(v)
}

// Get returns lane i.
func (v F32x8) Get(i int) float32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *F32x8) Set(i int, x float32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v F32x8) With(i int, x float32) F32x8 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (F32x8) Broadcast(x float32) F32x8 {
	var b F32x8
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 8 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (F32x8) Load(src []float32) F32x8 {
	var b F32x8
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v F32x8) LoadAligned(src []float32) F32x8 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v F32x8) Store(dst []float32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v F32x8) StoreAligned(dst []float32) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v F32x8) MaskLoad(src []float32) F32x8 {
	var b F32x8
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v F32x8) MaskStore(x F32x8, dst []float32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v F32x8) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o.
func (v F32x8) Add(o F32x8) F32x8 {
	return addF32(v, o)
}

// Sub returns v - o.
func (v F32x8) Sub(o F32x8) F32x8 {
	return subF32(v, o)
}

// Mul returns v * o.
func (v F32x8) Mul(o F32x8) F32x8 {
	return mulF32(v, o)
}

// Div returns v / o.
func (v F32x8) Div(o F32x8) F32x8 {
	return divF32(v, o)
}

// AddScalar adds x to every lane.
func (v F32x8) AddScalar(x float32) F32x8 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v F32x8) SubScalar(x float32) F32x8 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v F32x8) MulScalar(x float32) F32x8 {
	return v.Mul(v.Broadcast(x))
}

// DivScalar divides every lane by x.
func (v F32x8) DivScalar(x float32) F32x8 {
	return v.Div(v.Broadcast(x))
}

// MulAdd returns v*b + c with a single rounding.
func (v F32x8) MulAdd(b, c F32x8) F32x8 {
	return mulAddF32(v, b, c)
}

// Neg returns -v. Only the sign bits change.
func (v F32x8) Neg() F32x8 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs clears the sign bit of every lane.
func (v F32x8) Abs() F32x8 {
	lanes.AbsFloat(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum under the engine's NaN rule.
func (v F32x8) Min(o F32x8) F32x8 {
	return minF32(v, o)
}

// Max returns the lane-wise maximum under the engine's NaN rule.
func (v F32x8) Max(o F32x8) F32x8 {
	return maxF32(v, o)
}

// And returns v & o on the raw bits.
func (v F32x8) And(o F32x8) F32x8 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o on the raw bits.
func (v F32x8) Or(o F32x8) F32x8 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o on the raw bits.
func (v F32x8) Xor(o F32x8) F32x8 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o on the raw bits.
func (v F32x8) AndNot(o F32x8) F32x8 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v F32x8) Not() F32x8 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v F32x8) Equal(o F32x8) F32x8 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o. NaN lanes compare unequal.
func (v F32x8) NotEqual(o F32x8) F32x8 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v F32x8) Less(o F32x8) F32x8 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v F32x8) LessEqual(o F32x8) F32x8 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v F32x8) Greater(o F32x8) F32x8 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v F32x8) GreaterEqual(o F32x8) F32x8 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v F32x8) Merge(other, mask F32x8) F32x8 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v F32x8) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes. The association order is the engine's.
func (v F32x8) ReduceSum() float32 {
	return lanes.SumFloat(v[:], ruleset.Reduce)
}

// ReduceMax returns the largest lane.
func (v F32x8) ReduceMax() float32 {
	rules := ruleset
	return lanes.MaxFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// ReduceMin returns the smallest lane.
func (v F32x8) ReduceMin() float32 {
	rules := ruleset
	return lanes.MinFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// Sqrt returns the square root of every lane.
func (v F32x8) Sqrt() F32x8 {
	lanes.Sqrt(v[:], v[:])
	return v
}

// Floor rounds every lane toward negative infinity.
func (v F32x8) Floor() F32x8 {
	lanes.Floor(v[:], v[:])
	return v
}

// Ceil rounds every lane toward positive infinity.
func (v F32x8) Ceil() F32x8 {
	lanes.Ceil(v[:], v[:])
	return v
}

// Round rounds every lane to the nearest integer, ties to even.
func (v F32x8) Round() F32x8 {
	lanes.Round(v[:], v[:])
	return v
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v F32x8) HorizontalAdd(o F32x8) F32x8 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ConvertToInt32 rounds every lane to the nearest int32, ties to even.
// NaN and out-of-range lanes follow the engine's conversion rule.
func (v F32x8) ConvertToInt32() I32x8 {
	var c I32x8
	lanes.FloatToInt(c[:], v[:], ruleset.Convert)
	return c
}

// AsInt32 reinterprets the register's bits as int32 lanes.
func (v F32x8) AsInt32() I32x8 {
	var c I32x8
	lanes.Reinterpret(c[:], v[:])
	return c
}

// AsFloat64 reinterprets the register's bits as float64 lanes.
func (v F32x8) AsFloat64() F64x4 {
	var d F64x4
	lanes.Reinterpret(d[:], v[:])
	return d
}
