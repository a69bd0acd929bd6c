package scalar

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I32x1 is a one-lane int32 register.
type I32x1 [1]int32

// Width returns the number of lanes, 1.
func (v I32x1) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I32x1) Get(i int) int32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I32x1) Set(i int, x int32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I32x1) With(i int, x int32) I32x1 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I32x1) Broadcast(x int32) I32x1 {
	var b I32x1
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the element of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I32x1) Load(src []int32) I32x1 {
	var b I32x1
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load; a one-lane register has no alignment requirement.
func (v I32x1) LoadAligned(src []int32) I32x1 {
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I32x1) Store(dst []int32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store.
func (v I32x1) StoreAligned(dst []int32) {
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I32x1) MaskLoad(src []int32) I32x1 {
	var b I32x1
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I32x1) MaskStore(x I32x1, dst []int32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I32x1) Values() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I32x1) Add(o I32x1) I32x1 {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I32x1) Sub(o I32x1) I32x1 {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I32x1) Mul(o I32x1) I32x1 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I32x1) AddScalar(x int32) I32x1 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I32x1) SubScalar(x int32) I32x1 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I32x1) MulScalar(x int32) I32x1 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I32x1) Neg() I32x1 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I32x1) Abs() I32x1 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I32x1) Min(o I32x1) I32x1 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I32x1) Max(o I32x1) I32x1 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I32x1) And(o I32x1) I32x1 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I32x1) Or(o I32x1) I32x1 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I32x1) Xor(o I32x1) I32x1 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I32x1) AndNot(o I32x1) I32x1 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I32x1) Not() I32x1 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I32x1) Equal(o I32x1) I32x1 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I32x1) NotEqual(o I32x1) I32x1 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I32x1) Less(o I32x1) I32x1 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I32x1) LessEqual(o I32x1) I32x1 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I32x1) Greater(o I32x1) I32x1 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I32x1) GreaterEqual(o I32x1) I32x1 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I32x1) Merge(other, mask I32x1) I32x1 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I32x1) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I32x1) ReduceSum() int32 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I32x1) ReduceMax() int32 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I32x1) ReduceMin() int32 {
	return lanes.MinIntOf(v[:])
}

// HorizontalAdd returns v + o, the only pair two one-lane registers have.
func (v I32x1) HorizontalAdd(o I32x1) I32x1 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ShiftAllLeft shifts every lane left by n. Counts of 32 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I32x1) ShiftAllLeft(n uint64) I32x1 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I32x1) ShiftAllRight(n uint64) I32x1 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I32x1) ShiftAllRightLogical(n uint64) I32x1 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I32x1) ShiftLeft(counts I32x1) I32x1 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I32x1) ShiftRight(counts I32x1) I32x1 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int32 range.
func (v I32x1) AddSat(o I32x1) I32x1 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int32 range.
func (v I32x1) SubSat(o I32x1) I32x1 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I32x1) Gather(src []int32) I32x1 {
	var b I32x1
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat32 is Gather from a float32 slice.
func (v I32x1) GatherFloat32(src []float32) F32x1 {
	var b F32x1
	lanes.Gather(b[:], src, v[:])
	return b
}

// Shuffle returns v: every selector of a one-lane register picks lane 0.
func (v I32x1) Shuffle(imm uint8) I32x1 {
	lanes.Shuffle32(v[:], v[:], imm)
	return v
}

// ConvertToFloat32 converts every lane to the nearest float32.
func (v I32x1) ConvertToFloat32() F32x1 {
	var f F32x1
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat32 reinterprets the register's bits as float32 lanes.
func (v I32x1) AsFloat32() F32x1 {
	var f F32x1
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat clamps lane 0 of v to the int16 range. o has no room in a
// one-lane result and is ignored.
func (v I32x1) NarrowSat(o I32x1) I16x1 {
	var p I16x1
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}

// ExtendLo sign-extends lane 0.
func (v I32x1) ExtendLo() I64x1 {
	var w I64x1
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends lane 0; a one-lane register is its own upper half.
func (v I32x1) ExtendHi() I64x1 {
	var w I64x1
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
