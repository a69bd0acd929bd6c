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

// I64x4 is a 256-bit register of four int64 lanes.
type I64x4 [4]int64

// Width returns the number of lanes, 4.
func (v I64x4) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I64x4) Get(i int) int64 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I64x4) Set(i int, x int64) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I64x4) With(i int, x int64) I64x4 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I64x4) Broadcast(x int64) I64x4 {
	var b I64x4
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 4 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I64x4) Load(src []int64) I64x4 {
	var b I64x4
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I64x4) LoadAligned(src []int64) I64x4 {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I64x4) Store(dst []int64) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I64x4) StoreAligned(dst []int64) {
	if rules := ruleset; rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I64x4) MaskLoad(src []int64) I64x4 {
	var b I64x4
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I64x4) MaskStore(x I64x4, dst []int64) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I64x4) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I64x4) Add(o I64x4) I64x4 {
	return addI64(v, o)
}

// Sub returns v - o.
func (v I64x4) Sub(o I64x4) I64x4 {
	return subI64(v, o)
}

// Mul returns the low 64 bits of each product. No x86 or NEON
// instruction multiplies 64-bit lanes; this is done lane by lane.
func (v I64x4) Mul(o I64x4) I64x4 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I64x4) AddScalar(x int64) I64x4 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I64x4) SubScalar(x int64) I64x4 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I64x4) MulScalar(x int64) I64x4 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I64x4) Neg() I64x4 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I64x4) Abs() I64x4 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I64x4) Min(o I64x4) I64x4 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I64x4) Max(o I64x4) I64x4 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I64x4) And(o I64x4) I64x4 {
	return andI64(v, o)
}

// Or returns v | o.
func (v I64x4) Or(o I64x4) I64x4 {
	return orI64(v, o)
}

// Xor returns v ^ o.
func (v I64x4) Xor(o I64x4) I64x4 {
	return xorI64(v, o)
}

// AndNot returns v &^ o.
func (v I64x4) AndNot(o I64x4) I64x4 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I64x4) Not() I64x4 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I64x4) Equal(o I64x4) I64x4 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I64x4) NotEqual(o I64x4) I64x4 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I64x4) Less(o I64x4) I64x4 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I64x4) LessEqual(o I64x4) I64x4 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I64x4) Greater(o I64x4) I64x4 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I64x4) GreaterEqual(o I64x4) I64x4 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I64x4) Merge(other, mask I64x4) I64x4 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I64x4) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I64x4) ReduceSum() int64 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I64x4) ReduceMax() int64 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I64x4) ReduceMin() int64 {
	return lanes.MinIntOf(v[:])
}

// ShiftAllLeft shifts every lane left by n. Counts of 64 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I64x4) ShiftAllLeft(n uint64) I64x4 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I64x4) ShiftAllRight(n uint64) I64x4 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I64x4) ShiftAllRightLogical(n uint64) I64x4 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I64x4) ShiftLeft(counts I64x4) I64x4 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I64x4) ShiftRight(counts I64x4) I64x4 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int64 range.
func (v I64x4) AddSat(o I64x4) I64x4 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int64 range.
func (v I64x4) SubSat(o I64x4) I64x4 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I64x4) Gather(src []int64) I64x4 {
	var b I64x4
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat64 is Gather from a float64 slice.
func (v I64x4) GatherFloat64(src []float64) F64x4 {
	var b F64x4
	lanes.Gather(b[:], src, v[:])
	return b
}

// ConvertToFloat64 converts every lane to the nearest float64.
func (v I64x4) ConvertToFloat64() F64x4 {
	var f F64x4
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat64 reinterprets the register's bits as float64 lanes.
func (v I64x4) AsFloat64() F64x4 {
	var f F64x4
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat packs the lanes of v followed by those of o into int32 lanes,
// clamping each to the int32 range.
func (v I64x4) NarrowSat(o I64x4) I32x8 {
	var p I32x8
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}
