package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I16x8 is a 128-bit register of eight int16 lanes. R selects the engine whose
// rules the operations follow.
type I16x8[R Rulebook] [8]int16

// Width returns the number of lanes, 8.
func (v I16x8[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I16x8[R]) Get(i int) int16 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I16x8[R]) Set(i int, x int16) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I16x8[R]) With(i int, x int16) I16x8[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I16x8[R]) Broadcast(x int16) I16x8[R] {
	var b I16x8[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 8 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I16x8[R]) Load(src []int16) I16x8[R] {
	var b I16x8[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I16x8[R]) LoadAligned(src []int16) I16x8[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I16x8[R]) Store(dst []int16) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I16x8[R]) StoreAligned(dst []int16) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I16x8[R]) MaskLoad(src []int16) I16x8[R] {
	var b I16x8[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I16x8[R]) MaskStore(x I16x8[R], dst []int16) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I16x8[R]) Values() iter.Seq[int16] {
	return func(yield func(int16) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I16x8[R]) Add(o I16x8[R]) I16x8[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I16x8[R]) Sub(o I16x8[R]) I16x8[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I16x8[R]) Mul(o I16x8[R]) I16x8[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I16x8[R]) AddScalar(x int16) I16x8[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I16x8[R]) SubScalar(x int16) I16x8[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I16x8[R]) MulScalar(x int16) I16x8[R] {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I16x8[R]) Neg() I16x8[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I16x8[R]) Abs() I16x8[R] {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I16x8[R]) Min(o I16x8[R]) I16x8[R] {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I16x8[R]) Max(o I16x8[R]) I16x8[R] {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I16x8[R]) And(o I16x8[R]) I16x8[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I16x8[R]) Or(o I16x8[R]) I16x8[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I16x8[R]) Xor(o I16x8[R]) I16x8[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I16x8[R]) AndNot(o I16x8[R]) I16x8[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I16x8[R]) Not() I16x8[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I16x8[R]) Equal(o I16x8[R]) I16x8[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I16x8[R]) NotEqual(o I16x8[R]) I16x8[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I16x8[R]) Less(o I16x8[R]) I16x8[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I16x8[R]) LessEqual(o I16x8[R]) I16x8[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I16x8[R]) Greater(o I16x8[R]) I16x8[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I16x8[R]) GreaterEqual(o I16x8[R]) I16x8[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I16x8[R]) Merge(other, mask I16x8[R]) I16x8[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I16x8[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I16x8[R]) ReduceSum() int16 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I16x8[R]) ReduceMax() int16 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I16x8[R]) ReduceMin() int16 {
	return lanes.MinIntOf(v[:])
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v I16x8[R]) HorizontalAdd(o I16x8[R]) I16x8[R] {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ShiftAllLeft shifts every lane left by n. Counts of 16 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I16x8[R]) ShiftAllLeft(n uint64) I16x8[R] {
	lanes.ShiftLeft(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I16x8[R]) ShiftAllRight(n uint64) I16x8[R] {
	lanes.ShiftRight(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I16x8[R]) ShiftAllRightLogical(n uint64) I16x8[R] {
	lanes.ShiftRightLogical(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I16x8[R]) ShiftLeft(counts I16x8[R]) I16x8[R] {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I16x8[R]) ShiftRight(counts I16x8[R]) I16x8[R] {
	lanes.ShiftRightVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// AddSat returns v + o clamped to the int16 range.
func (v I16x8[R]) AddSat(o I16x8[R]) I16x8[R] {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int16 range.
func (v I16x8[R]) SubSat(o I16x8[R]) I16x8[R] {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// NarrowSat packs the lanes of v followed by those of o into int8 lanes,
// clamping each to the int8 range.
func (v I16x8[R]) NarrowSat(o I16x8[R]) I8x16[R] {
	var p I8x16[R]
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}

// ExtendLo sign-extends the lower half of the lanes to int32.
func (v I16x8[R]) ExtendLo() I32x4[R] {
	var w I32x4[R]
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int32.
func (v I16x8[R]) ExtendHi() I32x4[R] {
	var w I32x4[R]
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
