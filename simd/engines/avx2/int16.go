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

// I16x16 is a 256-bit register of sixteen int16 lanes.
type I16x16 [16]int16

// Width returns the number of lanes, 16.
func (v I16x16) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I16x16) Get(i int) int16 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I16x16) Set(i int, x int16) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I16x16) With(i int, x int16) I16x16 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I16x16) Broadcast(x int16) I16x16 {
	var b I16x16
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 16 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I16x16) Load(src []int16) I16x16 {
	var b I16x16
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I16x16) LoadAligned(src []int16) I16x16 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I16x16) Store(dst []int16) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I16x16) StoreAligned(dst []int16) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I16x16) MaskLoad(src []int16) I16x16 {
	var b I16x16
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I16x16) MaskStore(x I16x16, dst []int16) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I16x16) Values() iter.Seq[int16] {
	return func(yield func(int16) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I16x16) Add(o I16x16) I16x16 {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I16x16) Sub(o I16x16) I16x16 {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I16x16) Mul(o I16x16) I16x16 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I16x16) AddScalar(x int16) I16x16 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I16x16) SubScalar(x int16) I16x16 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I16x16) MulScalar(x int16) I16x16 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I16x16) Neg() I16x16 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I16x16) Abs() I16x16 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I16x16) Min(o I16x16) I16x16 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I16x16) Max(o I16x16) I16x16 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I16x16) And(o I16x16) I16x16 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I16x16) Or(o I16x16) I16x16 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I16x16) Xor(o I16x16) I16x16 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I16x16) AndNot(o I16x16) I16x16 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I16x16) Not() I16x16 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I16x16) Equal(o I16x16) I16x16 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I16x16) NotEqual(o I16x16) I16x16 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I16x16) Less(o I16x16) I16x16 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I16x16) LessEqual(o I16x16) I16x16 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I16x16) Greater(o I16x16) I16x16 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I16x16) GreaterEqual(o I16x16) I16x16 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I16x16) Merge(other, mask I16x16) I16x16 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I16x16) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I16x16) ReduceSum() int16 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I16x16) ReduceMax() int16 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I16x16) ReduceMin() int16 {
	return lanes.MinIntOf(v[:])
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v I16x16) HorizontalAdd(o I16x16) I16x16 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ShiftAllLeft shifts every lane left by n. Counts of 16 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I16x16) ShiftAllLeft(n uint64) I16x16 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I16x16) ShiftAllRight(n uint64) I16x16 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I16x16) ShiftAllRightLogical(n uint64) I16x16 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I16x16) ShiftLeft(counts I16x16) I16x16 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I16x16) ShiftRight(counts I16x16) I16x16 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int16 range.
func (v I16x16) AddSat(o I16x16) I16x16 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int16 range.
func (v I16x16) SubSat(o I16x16) I16x16 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// NarrowSat packs the lanes of v followed by those of o into int8 lanes,
// clamping each to the int8 range.
func (v I16x16) NarrowSat(o I16x16) I8x32 {
	var p I8x32
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}

// ExtendLo sign-extends the lower half of the lanes to int32.
func (v I16x16) ExtendLo() I32x8 {
	var w I32x8
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int32.
func (v I16x16) ExtendHi() I32x8 {
	var w I32x8
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
