package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I8x16 is a 128-bit register of sixteen int8 lanes. R selects the engine whose
// rules the operations follow.
type I8x16[R Rulebook] [16]int8

// Width returns the number of lanes, 16.
func (v I8x16[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I8x16[R]) Get(i int) int8 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I8x16[R]) Set(i int, x int8) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I8x16[R]) With(i int, x int8) I8x16[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I8x16[R]) Broadcast(x int8) I8x16[R] {
	var b I8x16[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 16 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I8x16[R]) Load(src []int8) I8x16[R] {
	var b I8x16[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I8x16[R]) LoadAligned(src []int8) I8x16[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I8x16[R]) Store(dst []int8) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I8x16[R]) StoreAligned(dst []int8) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I8x16[R]) MaskLoad(src []int8) I8x16[R] {
	var b I8x16[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I8x16[R]) MaskStore(x I8x16[R], dst []int8) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I8x16[R]) Values() iter.Seq[int8] {
	return func(yield func(int8) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I8x16[R]) Add(o I8x16[R]) I8x16[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I8x16[R]) Sub(o I8x16[R]) I8x16[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I8x16[R]) Mul(o I8x16[R]) I8x16[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I8x16[R]) AddScalar(x int8) I8x16[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I8x16[R]) SubScalar(x int8) I8x16[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I8x16[R]) MulScalar(x int8) I8x16[R] {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I8x16[R]) Neg() I8x16[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I8x16[R]) Abs() I8x16[R] {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I8x16[R]) Min(o I8x16[R]) I8x16[R] {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I8x16[R]) Max(o I8x16[R]) I8x16[R] {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I8x16[R]) And(o I8x16[R]) I8x16[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I8x16[R]) Or(o I8x16[R]) I8x16[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I8x16[R]) Xor(o I8x16[R]) I8x16[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I8x16[R]) AndNot(o I8x16[R]) I8x16[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I8x16[R]) Not() I8x16[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I8x16[R]) Equal(o I8x16[R]) I8x16[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I8x16[R]) NotEqual(o I8x16[R]) I8x16[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I8x16[R]) Less(o I8x16[R]) I8x16[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I8x16[R]) LessEqual(o I8x16[R]) I8x16[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I8x16[R]) Greater(o I8x16[R]) I8x16[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I8x16[R]) GreaterEqual(o I8x16[R]) I8x16[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I8x16[R]) Merge(other, mask I8x16[R]) I8x16[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I8x16[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I8x16[R]) ReduceSum() int8 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I8x16[R]) ReduceMax() int8 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I8x16[R]) ReduceMin() int8 {
	return lanes.MinIntOf(v[:])
}

// ShiftAllLeft shifts every lane left by n. Counts of 8 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I8x16[R]) ShiftAllLeft(n uint64) I8x16[R] {
	lanes.ShiftLeft(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I8x16[R]) ShiftAllRight(n uint64) I8x16[R] {
	lanes.ShiftRight(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I8x16[R]) ShiftAllRightLogical(n uint64) I8x16[R] {
	lanes.ShiftRightLogical(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I8x16[R]) ShiftLeft(counts I8x16[R]) I8x16[R] {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I8x16[R]) ShiftRight(counts I8x16[R]) I8x16[R] {
	lanes.ShiftRightVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// AddSat returns v + o clamped to the int8 range.
func (v I8x16[R]) AddSat(o I8x16[R]) I8x16[R] {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int8 range.
func (v I8x16[R]) SubSat(o I8x16[R]) I8x16[R] {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// ExtendLo sign-extends the lower half of the lanes to int16.
func (v I8x16[R]) ExtendLo() I16x8[R] {
	var w I16x8[R]
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int16.
func (v I8x16[R]) ExtendHi() I16x8[R] {
	var w I16x8[R]
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
