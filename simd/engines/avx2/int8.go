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

// I8x32 is a 256-bit register of thirty-two int8 lanes.
type I8x32 [32]int8

// Width returns the number of lanes, 32.
func (v I8x32) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I8x32) Get(i int) int8 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I8x32) Set(i int, x int8) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I8x32) With(i int, x int8) I8x32 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I8x32) Broadcast(x int8) I8x32 {
	var b I8x32
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 32 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I8x32) Load(src []int8) I8x32 {
	var b I8x32
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I8x32) LoadAligned(src []int8) I8x32 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I8x32) Store(dst []int8) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I8x32) StoreAligned(dst []int8) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I8x32) MaskLoad(src []int8) I8x32 {
	var b I8x32
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I8x32) MaskStore(x I8x32, dst []int8) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I8x32) Values() iter.Seq[int8] {
	return func(yield func(int8) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I8x32) Add(o I8x32) I8x32 {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I8x32) Sub(o I8x32) I8x32 {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I8x32) Mul(o I8x32) I8x32 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I8x32) AddScalar(x int8) I8x32 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I8x32) SubScalar(x int8) I8x32 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I8x32) MulScalar(x int8) I8x32 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I8x32) Neg() I8x32 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I8x32) Abs() I8x32 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I8x32) Min(o I8x32) I8x32 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I8x32) Max(o I8x32) I8x32 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I8x32) And(o I8x32) I8x32 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I8x32) Or(o I8x32) I8x32 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I8x32) Xor(o I8x32) I8x32 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I8x32) AndNot(o I8x32) I8x32 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I8x32) Not() I8x32 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I8x32) Equal(o I8x32) I8x32 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I8x32) NotEqual(o I8x32) I8x32 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I8x32) Less(o I8x32) I8x32 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I8x32) LessEqual(o I8x32) I8x32 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I8x32) Greater(o I8x32) I8x32 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I8x32) GreaterEqual(o I8x32) I8x32 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I8x32) Merge(other, mask I8x32) I8x32 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I8x32) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I8x32) ReduceSum() int8 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I8x32) ReduceMax() int8 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I8x32) ReduceMin() int8 {
	return lanes.MinIntOf(v[:])
}

// ShiftAllLeft shifts every lane left by n. Counts of 8 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I8x32) ShiftAllLeft(n uint64) I8x32 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I8x32) ShiftAllRight(n uint64) I8x32 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I8x32) ShiftAllRightLogical(n uint64) I8x32 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I8x32) ShiftLeft(counts I8x32) I8x32 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I8x32) ShiftRight(counts I8x32) I8x32 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int8 range.
func (v I8x32) AddSat(o I8x32) I8x32 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int8 range.
func (v I8x32) SubSat(o I8x32) I8x32 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// ExtendLo sign-extends the lower half of the lanes to int16.
func (v I8x32) ExtendLo() I16x16 {
	var w I16x16
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int16.
func (v I8x32) ExtendHi() I16x16 {
	var w I16x16
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
