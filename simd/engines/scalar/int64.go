package scalar

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// I64x1 is a one-lane int64 register.
type I64x1 [1]int64

// Width returns the number of lanes, 1.
func (v I64x1) Width() int {
	return len(v)
}

// Get returns lane i.
func (v I64x1) Get(i int) int64 {
	return v[i]
}

// Set replaces lane i with x.
func (v *I64x1) Set(i int, x int64) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v I64x1) With(i int, x int64) I64x1 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (I64x1) Broadcast(x int64) I64x1 {
	var b I64x1
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the element of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (I64x1) Load(src []int64) I64x1 {
	var b I64x1
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load; a one-lane register has no alignment requirement.
func (v I64x1) LoadAligned(src []int64) I64x1 {
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v I64x1) Store(dst []int64) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store.
func (v I64x1) StoreAligned(dst []int64) {
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v I64x1) MaskLoad(src []int64) I64x1 {
	var b I64x1
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v I64x1) MaskStore(x I64x1, dst []int64) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v I64x1) Values() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o. Lanes wrap on overflow.
func (v I64x1) Add(o I64x1) I64x1 {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v I64x1) Sub(o I64x1) I64x1 {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns the low half of each lane's product.
func (v I64x1) Mul(o I64x1) I64x1 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v I64x1) AddScalar(x int64) I64x1 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v I64x1) SubScalar(x int64) I64x1 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v I64x1) MulScalar(x int64) I64x1 {
	return v.Mul(v.Broadcast(x))
}

// Neg returns -v.
func (v I64x1) Neg() I64x1 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs returns |v|; the most negative value stays negative.
func (v I64x1) Abs() I64x1 {
	lanes.AbsInt(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum.
func (v I64x1) Min(o I64x1) I64x1 {
	lanes.MinInt(v[:], v[:], o[:])
	return v
}

// Max returns the lane-wise maximum.
func (v I64x1) Max(o I64x1) I64x1 {
	lanes.MaxInt(v[:], v[:], o[:])
	return v
}

// And returns v & o.
func (v I64x1) And(o I64x1) I64x1 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o.
func (v I64x1) Or(o I64x1) I64x1 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o.
func (v I64x1) Xor(o I64x1) I64x1 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o.
func (v I64x1) AndNot(o I64x1) I64x1 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v I64x1) Not() I64x1 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v I64x1) Equal(o I64x1) I64x1 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o.
func (v I64x1) NotEqual(o I64x1) I64x1 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v I64x1) Less(o I64x1) I64x1 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v I64x1) LessEqual(o I64x1) I64x1 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v I64x1) Greater(o I64x1) I64x1 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v I64x1) GreaterEqual(o I64x1) I64x1 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v I64x1) Merge(other, mask I64x1) I64x1 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v I64x1) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes from left to right, wrapping.
func (v I64x1) ReduceSum() int64 {
	return lanes.SumInt(v[:])
}

// ReduceMax returns the largest lane.
func (v I64x1) ReduceMax() int64 {
	return lanes.MaxIntOf(v[:])
}

// ReduceMin returns the smallest lane.
func (v I64x1) ReduceMin() int64 {
	return lanes.MinIntOf(v[:])
}

// ShiftAllLeft shifts every lane left by n. Counts of 64 or more clear the lane, or wrap on engines that take
// counts modulo the lane width.
func (v I64x1) ShiftAllLeft(n uint64) I64x1 {
	lanes.ShiftLeft(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRight shifts every lane right by n, copying the sign bit in.
func (v I64x1) ShiftAllRight(n uint64) I64x1 {
	lanes.ShiftRight(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftAllRightLogical shifts every lane right by n, shifting zeros in.
func (v I64x1) ShiftAllRightLogical(n uint64) I64x1 {
	lanes.ShiftRightLogical(v[:], v[:], n, ruleset.Shift)
	return v
}

// ShiftLeft shifts lane i left by counts[i].
func (v I64x1) ShiftLeft(counts I64x1) I64x1 {
	lanes.ShiftLeftVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// ShiftRight shifts lane i right by counts[i], copying the sign bit in.
func (v I64x1) ShiftRight(counts I64x1) I64x1 {
	lanes.ShiftRightVar(v[:], v[:], counts[:], ruleset.Shift)
	return v
}

// AddSat returns v + o clamped to the int64 range.
func (v I64x1) AddSat(o I64x1) I64x1 {
	lanes.AddSat(v[:], v[:], o[:])
	return v
}

// SubSat returns v - o clamped to the int64 range.
func (v I64x1) SubSat(o I64x1) I64x1 {
	lanes.SubSat(v[:], v[:], o[:])
	return v
}

// Gather uses the lanes of v as indices: lane i reads src[v[i]].
func (v I64x1) Gather(src []int64) I64x1 {
	var b I64x1
	lanes.Gather(b[:], src, v[:])
	return b
}

// GatherFloat64 is Gather from a float64 slice.
func (v I64x1) GatherFloat64(src []float64) F64x1 {
	var b F64x1
	lanes.Gather(b[:], src, v[:])
	return b
}

// ConvertToFloat64 converts every lane to the nearest float64.
func (v I64x1) ConvertToFloat64() F64x1 {
	var f F64x1
	lanes.IntToFloat(f[:], v[:])
	return f
}

// AsFloat64 reinterprets the register's bits as float64 lanes.
func (v I64x1) AsFloat64() F64x1 {
	var f F64x1
	lanes.Reinterpret(f[:], v[:])
	return f
}

// NarrowSat clamps lane 0 of v to the int32 range. o has no room in a
// one-lane result and is ignored.
func (v I64x1) NarrowSat(o I64x1) I32x1 {
	var p I32x1
	lanes.NarrowSat(p[:], v[:], o[:])
	return p
}
