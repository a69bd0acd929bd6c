package scalar

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// F32x1 is a one-lane float32 register.
type F32x1 [1]float32

// Width returns the number of lanes, 1.
func (v F32x1) Width() int {
	return len(v)
}

// Get returns lane i.
func (v F32x1) Get(i int) float32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *F32x1) Set(i int, x float32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v F32x1) With(i int, x float32) F32x1 {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (F32x1) Broadcast(x float32) F32x1 {
	var b F32x1
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the element of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (F32x1) Load(src []float32) F32x1 {
	var b F32x1
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load; a one-lane register has no alignment requirement.
func (v F32x1) LoadAligned(src []float32) F32x1 {
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v F32x1) Store(dst []float32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store.
func (v F32x1) StoreAligned(dst []float32) {
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v F32x1) MaskLoad(src []float32) F32x1 {
	var b F32x1
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v F32x1) MaskStore(x F32x1, dst []float32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v F32x1) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o.
func (v F32x1) Add(o F32x1) F32x1 {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v F32x1) Sub(o F32x1) F32x1 {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns v * o.
func (v F32x1) Mul(o F32x1) F32x1 {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// Div returns v / o.
func (v F32x1) Div(o F32x1) F32x1 {
	lanes.Div(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v F32x1) AddScalar(x float32) F32x1 {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v F32x1) SubScalar(x float32) F32x1 {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v F32x1) MulScalar(x float32) F32x1 {
	return v.Mul(v.Broadcast(x))
}

// DivScalar divides every lane by x.
func (v F32x1) DivScalar(x float32) F32x1 {
	return v.Div(v.Broadcast(x))
}

// MulAdd returns v*b + c, fused when the engine has FMA.
func (v F32x1) MulAdd(b, c F32x1) F32x1 {
	lanes.MulAdd(v[:], v[:], b[:], c[:], ruleset.FusedMulAdd)
	return v
}

// Neg returns -v. Only the sign bits change.
func (v F32x1) Neg() F32x1 {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs clears the sign bit of every lane.
func (v F32x1) Abs() F32x1 {
	lanes.AbsFloat(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum under the engine's NaN rule.
func (v F32x1) Min(o F32x1) F32x1 {
	lanes.MinFloat(v[:], v[:], o[:], ruleset.MinMax)
	return v
}

// Max returns the lane-wise maximum under the engine's NaN rule.
func (v F32x1) Max(o F32x1) F32x1 {
	lanes.MaxFloat(v[:], v[:], o[:], ruleset.MinMax)
	return v
}

// And returns v & o on the raw bits.
func (v F32x1) And(o F32x1) F32x1 {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o on the raw bits.
func (v F32x1) Or(o F32x1) F32x1 {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o on the raw bits.
func (v F32x1) Xor(o F32x1) F32x1 {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o on the raw bits.
func (v F32x1) AndNot(o F32x1) F32x1 {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v F32x1) Not() F32x1 {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v F32x1) Equal(o F32x1) F32x1 {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o. NaN lanes compare unequal.
func (v F32x1) NotEqual(o F32x1) F32x1 {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v F32x1) Less(o F32x1) F32x1 {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v F32x1) LessEqual(o F32x1) F32x1 {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v F32x1) Greater(o F32x1) F32x1 {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v F32x1) GreaterEqual(o F32x1) F32x1 {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v F32x1) Merge(other, mask F32x1) F32x1 {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v F32x1) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes.
func (v F32x1) ReduceSum() float32 {
	return lanes.SumFloat(v[:], ruleset.Reduce)
}

// ReduceMax returns the largest lane.
func (v F32x1) ReduceMax() float32 {
	rules := ruleset
	return lanes.MaxFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// ReduceMin returns the smallest lane.
func (v F32x1) ReduceMin() float32 {
	rules := ruleset
	return lanes.MinFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// Sqrt returns the square root of every lane.
func (v F32x1) Sqrt() F32x1 {
	lanes.Sqrt(v[:], v[:])
	return v
}

// Floor rounds every lane toward negative infinity.
func (v F32x1) Floor() F32x1 {
	lanes.Floor(v[:], v[:])
	return v
}

// Ceil rounds every lane toward positive infinity.
func (v F32x1) Ceil() F32x1 {
	lanes.Ceil(v[:], v[:])
	return v
}

// Round rounds every lane to the nearest integer, ties to even.
func (v F32x1) Round() F32x1 {
	lanes.Round(v[:], v[:])
	return v
}

// HorizontalAdd returns v + o, the only pair two one-lane registers have.
func (v F32x1) HorizontalAdd(o F32x1) F32x1 {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ConvertToInt32 rounds every lane to the nearest int32, ties to even.
// NaN and out-of-range lanes follow the engine's conversion rule.
func (v F32x1) ConvertToInt32() I32x1 {
	var c I32x1
	lanes.FloatToInt(c[:], v[:], ruleset.Convert)
	return c
}

// AsInt32 reinterprets the register's bits as int32 lanes.
func (v F32x1) AsInt32() I32x1 {
	var c I32x1
	lanes.Reinterpret(c[:], v[:])
	return c
}

// AsFloat64 places the float32 bits in the low half of a float64 lane
// with the upper half zero. AsFloat32 undoes it.
func (v F32x1) AsFloat64() F64x1 {
	return F64x1{lanes.FromBits[float64](lanes.ToBits(v[0]))}
}
