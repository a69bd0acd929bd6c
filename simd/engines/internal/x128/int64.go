package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I64x2 is a 128-bit register of two int64 lanes. R selects the engine whose
// rules the operations follow.
type I64x2[R Rulebook] [2]int64

// Width returns the number of lanes, 2.
func (v I64x2[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I64x2[R]) Get(i int) int64 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I64x2[R]) Set(i int, x int64) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I64x2[R]) With(i int, x int64) I64x2[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I64x2[R]) Broadcast(x int64) I64x2[R] {
	var b I64x2[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 2 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I64x2[R]) Load(src []int64) I64x2[R] {
	var b I64x2[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v I64x2[R]) LoadAligned(src []int64) I64x2[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I64x2[R]) Store(dst []int64) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v I64x2[R]) StoreAligned(dst []int64) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I64x2[R]) MaskLoad(src []int64) I64x2[R] {
	var b I64x2[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I64x2[R]) MaskStore(x I64x2[R], dst []int64) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I64x2[R]) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I64x2[R]) Add(o I64x2[R]) I64x2[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I64x2[R]) Sub(o I64x2[R]) I64x2[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low 64 bits of each product. No x86 or NEON
// instruction multiplies 64-bit lanes; this is done lane by lane.
func (v I64x2[R]) Mul(o I64x2[R]) I64x2[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I64x2[R]) AddScalar(x int64) I64x2[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I64x2[R]) SubScalar(x int64) I64x2[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I64x2[R]) MulScalar(x int64) I64x2[R] {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I64x2[R]) Neg() I64x2[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I64x2[R]) Abs() I64x2[R] {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I64x2[R]) Min(o I64x2[R]) I64x2[R] {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I64x2[R]) Max(o I64x2[R]) I64x2[R] {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I64x2[R]) And(o I64x2[R]) I64x2[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I64x2[R]) Or(o I64x2[R]) I64x2[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I64x2[R]) Xor(o I64x2[R]) I64x2[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I64x2[R]) AndNot(o I64x2[R]) I64x2[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I64x2[R]) Not() I64x2[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I64x2[R]) Equal(o I64x2[R]) I64x2[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I64x2[R]) NotEqual(o I64x2[R]) I64x2[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I64x2[R]) Less(o I64x2[R]) I64x2[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I64x2[R]) LessEqual(o I64x2[R]) I64x2[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I64x2[R]) Greater(o I64x2[R]) I64x2[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I64x2[R]) GreaterEqual(o I64x2[R]) I64x2[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I64x2[R]) Merge(other, mask I64x2[R]) I64x2[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I64x2[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I64x2[R]) ReduceSum() int64 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I64x2[R]) ReduceMax() int64 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I64x2[R]) ReduceMin() int64 {
	return lanes.MinIntOf(v[:])
}

// ShiftAllLeft shifts every lane left by n. Counts of 64 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I64x2[R]) ShiftAllLeft(n uint64) I64x2[R] {
	lanes.ShiftLeft(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I64x2[R]) ShiftAllRight(n uint64) I64x2[R] {
	lanes.ShiftRight(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I64x2[R]) ShiftAllRightLogical(n uint64) I64x2[R] {
	lanes.ShiftRightLogical(v[:], v[:], n, rulesOf[R]().Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I64x2[R]) ShiftLeft(counts I64x2[R]) I64x2[R] {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I64x2[R]) ShiftRight(counts I64x2[R]) I64x2[R] {
	lanes.ShiftRightVar(v[:], v[:], counts[:], rulesOf[R]().Shift)
	return v
}

// AddSat returns v + o clamped to the int64 range.
func (v I64x2[R]) AddSat(o I64x2[R]) I64x2[R] {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int64 range.
func (v I64x2[R]) SubSat(o I64x2[R]) I64x2[R] {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I64x2[R]) Gather(src []int64) I64x2[R] {
	var b I64x2[R]
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat64 is Gather from a float64 slice.
func (v I64x2[R]) GatherFloat64(src []float64) F64x2[R] {
	var b F64x2[R]
	lanes.Gather(b[:], src, v[:])
	return b
}

// ConvertToFloat64 converts every lane to the nearest float64.
func (v I64x2[R]) ConvertToFloat64() F64x2[R] {
	var f F64x2[R]
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat64 reinterprets the register's bits as float64 lanes.
func (v I64x2[R]) AsFloat64() F64x2[R] {
	var f F64x2[R]
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat packs the lanes of v followed by those of o into int32 lanes,
// clamping each to the int32 range.
func (v I64x2[R]) NarrowSat(o I64x2[R]) I32x4[R] {
	var p I32x4[R]
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}
