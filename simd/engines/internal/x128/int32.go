package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I32x4 is a 128-bit register of four int32 lanes. R selects the engine whose
// rules the operations follow.
type I32x4[R Rulebook] [4]int32

// Width returns the number of lanes, 4.
func (v I32x4[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I32x4[R]) Get(i int) int32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I32x4[R]) Set(i int, x int32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I32x4[R]) With(i int, x int32) I32x4[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I32x4[R]) Broadcast(x int32) I32x4[R] {
	var b I32x4[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 4 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I32x4[R]) Load(src []int32) I32x4[R] {
	var b I32x4[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I32x4[R]) LoadAligned(src []int32) I32x4[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I32x4[R]) Store(dst []int32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I32x4[R]) StoreAligned(dst []int32) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I32x4[R]) MaskLoad(src []int32) I32x4[R] {
	var b I32x4[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I32x4[R]) MaskStore(x I32x4[R], dst []int32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I32x4[R]) Values() iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I32x4[R]) Add(o I32x4[R]) I32x4[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I32x4[R]) Sub(o I32x4[R]) I32x4[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I32x4[R]) Mul(o I32x4[R]) I32x4[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I32x4[R]) AddScalar(x int32) I32x4[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I32x4[R]) SubScalar(x int32) I32x4[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I32x4[R]) MulScalar(x int32) I32x4[R] {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I32x4[R]) Neg() I32x4[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I32x4[R]) Abs() I32x4[R] {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I32x4[R]) Min(o I32x4[R]) I32x4[R] {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I32x4[R]) Max(o I32x4[R]) I32x4[R] {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I32x4[R]) And(o I32x4[R]) I32x4[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I32x4[R]) Or(o I32x4[R]) I32x4[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I32x4[R]) Xor(o I32x4[R]) I32x4[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I32x4[R]) AndNot(o I32x4[R]) I32x4[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I32x4[R]) Not() I32x4[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I32x4[R]) Equal(o I32x4[R]) I32x4[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I32x4[R]) NotEqual(o I32x4[R]) I32x4[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I32x4[R]) Less(o I32x4[R]) I32x4[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I32x4[R]) LessEqual(o I32x4[R]) I32x4[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I32x4[R]) Greater(o I32x4[R]) I32x4[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I32x4[R]) GreaterEqual(o I32x4[R]) I32x4[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I32x4[R]) Merge(other, mask I32x4[R]) I32x4[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I32x4[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I32x4[R]) ReduceSum() int32 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I32x4[R]) ReduceMax() int32 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I32x4[R]) ReduceMin() int32 {
	return lanes.MinIntOf(v[:])
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v I32x4[R]) HorizontalAdd(o I32x4[R]) I32x4[R] {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ShiftAllLeft shifts every lane left by n. Counts of 32 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I32x4[R]) ShiftAllLeft(n uint64) I32x4[R] {
	lanes.ShiftLeft(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I32x4[R]) ShiftAllRight(n uint64) I32x4[R] {
	lanes.ShiftRight(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I32x4[R]) ShiftAllRightLogical(n uint64) I32x4[R] {
	lanes.ShiftRightLogical(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I32x4[R]) ShiftLeft(counts I32x4[R]) I32x4[R] {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I32x4[R]) ShiftRight(counts I32x4[R]) I32x4[R] {
	lanes.ShiftRightVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// AddSat returns v + o clamped to the int32 range.
func (v I32x4[R]) AddSat(o I32x4[R]) I32x4[R] {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int32 range.
func (v I32x4[R]) SubSat(o I32x4[R]) I32x4[R] {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I32x4[R]) Gather(src []int32) I32x4[R] {
	var b I32x4[R]
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat32 is Gather from a float32 slice.
func (v I32x4[R]) GatherFloat32(src []float32) F32x4[R] {
	var b F32x4[R]
	lanes.Gather(b[:], src, v[:])
	return b
}

// Shuffle is pshufd: lane j of every group of four takes lane
// (imm >> 2j) & 3 of the same group.
func (v I32x4[R]) Shuffle(imm uint8) I32x4[R] {
	lanes.Shuffle32(v[:], v[:], imm)
	return v
}

// ConvertToFloat32 converts every lane to the nearest float32.
func (v I32x4[R]) ConvertToFloat32() F32x4[R] {
	var f F32x4[R]
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat32 reinterprets the register's bits as float32 lanes.
func (v I32x4[R]) AsFloat32() F32x4[R] {
	var f F32x4[R]
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat packs the lanes of v followed by those of o into int16 lanes,
// clamping each to the int16 range.
func (v I32x4[R]) NarrowSat(o I32x4[R]) I16x8[R] {
	var p I16x8[R]
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}

// ExtendLo sign-extends the lower half of the lanes to int64.
func (v I32x4[R]) ExtendLo() I64x2[R] {
	var w I64x2[R]
	lanes.Extend(w[:], v[:len(w)])
	return w
}

// ExtendHi sign-extends the upper half of the lanes to int64.
func (v I32x4[R]) ExtendHi() I64x2[R] {
	var w I64x2[R]
	lanes.Extend(w[:], v[len(v)-len(w):])
	return w
}
