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

// I32x8 is a 256-bit register of eight int32 lanes.
type I32x8 [8]int32

// Width returns the number of lanes, 8.
func (v I32x8) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I32x8) Get(i int) int32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I32x8) Set(i int, x int32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I32x8) With(i int, x int32) I32x8 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I32x8) Broadcast(x int32) I32x8 {
	var b I32x8
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 8 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I32x8) Load(src []int32) I32x8 {
	var b I32x8
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I32x8) LoadAligned(src []int32) I32x8 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I32x8) Store(dst []int32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I32x8) StoreAligned(dst []int32) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I32x8) MaskLoad(src []int32) I32x8 {
	var b I32x8
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I32x8) MaskStore(x I32x8, dst []int32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I32x8) Values() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I32x8) Add(o I32x8) I32x8 {
	return addI32(v, o)
}

// Sub returns v - o.
func (v I32x8) Sub(o I32x8) I32x8 {
	return subI32(v, o)
}

// Mul returns the low half of each lane's product.
func (v I32x8) Mul(o I32x8) I32x8 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I32x8) AddScalar(x int32) I32x8 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I32x8) SubScalar(x int32) I32x8 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I32x8) MulScalar(x int32) I32x8 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I32x8) Neg() I32x8 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I32x8) Abs() I32x8 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I32x8) Min(o I32x8) I32x8 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I32x8) Max(o I32x8) I32x8 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I32x8) And(o I32x8) I32x8 {
	return andI32(v, o)
}

// Or returns v | o.
func (v I32x8) Or(o I32x8) I32x8 {
	return orI32(v, o)
}

// Xor returns v ^ o.
func (v I32x8) Xor(o I32x8) I32x8 {
	return xorI32(v, o)
}

// AndNot returns v &^ o.
func (v I32x8) AndNot(o I32x8) I32x8 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I32x8) Not() I32x8 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I32x8) Equal(o I32x8) I32x8 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I32x8) NotEqual(o I32x8) I32x8 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I32x8) Less(o I32x8) I32x8 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I32x8) LessEqual(o I32x8) I32x8 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I32x8) Greater(o I32x8) I32x8 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I32x8) GreaterEqual(o I32x8) I32x8 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I32x8) Merge(other, mask I32x8) I32x8 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I32x8) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I32x8) ReduceSum() int32 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I32x8) ReduceMax() int32 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I32x8) ReduceMin() int32 {
	return lanes.MinIntOf(v[:])
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v I32x8) HorizontalAdd(o I32x8) I32x8 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ShiftAllLeft shifts every lane left by n. Counts of 32 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I32x8) ShiftAllLeft(n uint64) I32x8 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I32x8) ShiftAllRight(n uint64) I32x8 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I32x8) ShiftAllRightLogical(n uint64) I32x8 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I32x8) ShiftLeft(counts I32x8) I32x8 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I32x8) ShiftRight(counts I32x8) I32x8 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int32 range.
func (v I32x8) AddSat(o I32x8) I32x8 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int32 range.
func (v I32x8) SubSat(o I32x8) I32x8 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I32x8) Gather(src []int32) I32x8 {
	var b I32x8
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat32 is Gather from a float32 slice.
func (v I32x8) GatherFloat32(src []float32) F32x8 {
	var b F32x8
	lanes.Gather(b[:], src, v[:])
	return b
}

// Shuffle is pshufd: lane j of every group of four takes lane
// (imm >> 2j) & 3 of the same group. Both 128-bit halves use the same imm.
func (v I32x8) Shuffle(imm uint8) I32x8 {
	lanes.Shuffle32(v[:], v[:], imm)
	return v
}

// ConvertToFloat32 converts every lane to the nearest float32.
func (v I32x8) ConvertToFloat32() F32x8 {
	var f F32x8
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat32 reinterprets the register's bits as float32 lanes.
func (v I32x8) AsFloat32() F32x8 {
	var f F32x8
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat packs the lanes of v followed by those of o into int16 lanes,
// clamping each to the int16 range.
func (v I32x8) NarrowSat(o I32x8) I16x16 {
	var p I16x16
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}

// ExtendLo sign-extends the lower half of the lanes to int64.
func (v I32x8) ExtendLo() I64x4 {
	var w I64x4
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int64.
func (v I32x8) ExtendHi() I64x4 {
	var w I64x4
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
