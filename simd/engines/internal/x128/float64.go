package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// F64x2 is a 128-bit register of two float64 lanes. R selects the engine whose
// rules the operations follow.
type F64x2[R Rulebook] [2]float64

// Width returns the number of lanes, 2.
func (v F64x2[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v F64x2[R]) Get(i int) float64 {
	return v[i]
}

// Set replaces lane i with x.
func (v *F64x2[R]) Set(i int, x float64) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v F64x2[R]) With(i int, x float64) F64x2[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (F64x2[R]) Broadcast(x float64) F64x2[R] {
	var b F64x2[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 2 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (F64x2[R]) Load(src []float64) F64x2[R] {
	var b F64x2[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v F64x2[R]) LoadAligned(src []float64) F64x2[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v F64x2[R]) Store(dst []float64) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v F64x2[R]) StoreAligned(dst []float64) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v F64x2[R]) MaskLoad(src []float64) F64x2[R] {
	var b F64x2[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v F64x2[R]) MaskStore(x F64x2[R], dst []float64) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v F64x2[R]) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o.
func (v F64x2[R]) Add(o F64x2[R]) F64x2[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v F64x2[R]) Sub(o F64x2[R]) F64x2[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns v * o.
func (v F64x2[R]) Mul(o F64x2[R]) F64x2[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// Div returns v / o.
func (v F64x2[R]) Div(o F64x2[R]) F64x2[R] {
	lanes.Div(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v F64x2[R]) AddScalar(x float64) F64x2[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v F64x2[R]) SubScalar(x float64) F64x2[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v F64x2[R]) MulScalar(x float64) F64x2[R] {
	return v.Mul(v.Broadcast(x))
}

// DivScalar divides every lane by x.
func (v F64x2[R]) DivScalar(x float64) F64x2[R] {
	return v.Div(v.Broadcast(x))
}

// MulAdd returns v*b + c, fused when the engine has FMA.
func (v F64x2[R]) MulAdd(b, c F64x2[R]) F64x2[R] {
	lanes.MulAdd(v[:], v[:], b[:], c[:], rulesOf[R]().FusedMulAdd)
	return v
}

// Neg returns -v. Only the sign bits change.
func (v F64x2[R]) Neg() F64x2[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs clears the sign bit of every lane.
func (v F64x2[R]) Abs() F64x2[R] {
	lanes.AbsFloat(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum under the engine's NaN rule.
func (v F64x2[R]) Min(o F64x2[R]) F64x2[R] {
	lanes.MinFloat(v[:], v[:], o[:], rulesOf[R]().MinMax)
	return v
}

// Max returns the lane-wise maximum under the engine's NaN rule.
func (v F64x2[R]) Max(o F64x2[R]) F64x2[R] {
	lanes.MaxFloat(v[:], v[:], o[:], rulesOf[R]().MinMax)
	return v
}

// And returns v & o on the raw bits.
func (v F64x2[R]) And(o F64x2[R]) F64x2[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o on the raw bits.
func (v F64x2[R]) Or(o F64x2[R]) F64x2[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o on the raw bits.
func (v F64x2[R]) Xor(o F64x2[R]) F64x2[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o on the raw bits.
func (v F64x2[R]) AndNot(o F64x2[R]) F64x2[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v F64x2[R]) Not() F64x2[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v F64x2[R]) Equal(o F64x2[R]) F64x2[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o. NaN lanes compare unequal.
func (v F64x2[R]) NotEqual(o F64x2[R]) F64x2[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v F64x2[R]) Less(o F64x2[R]) F64x2[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v F64x2[R]) LessEqual(o F64x2[R]) F64x2[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v F64x2[R]) Greater(o F64x2[R]) F64x2[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v F64x2[R]) GreaterEqual(o F64x2[R]) F64x2[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v F64x2[R]) Merge(other, mask F64x2[R]) F64x2[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v F64x2[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes. The association order is the engine's.
func (v F64x2[R]) ReduceSum() float64 {
	return lanes.SumFloat(v[:], rulesOf[R]().Reduce)
}

// ReduceMax returns the largest lane.
func (v F64x2[R]) ReduceMax() float64 {
	rules := rulesOf[R]()
	return lanes.MaxFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// ReduceMin returns the smallest lane.
func (v F64x2[R]) ReduceMin() float64 {
	rules := rulesOf[R]()
	return lanes.MinFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// Sqrt returns the square root of every lane.
func (v F64x2[R]) Sqrt() F64x2[R] {
	lanes.Sqrt(v[:], v[:])
	return v
}

// Floor rounds every lane toward negative infinity.
func (v F64x2[R]) Floor() F64x2[R] {
	lanes.Floor(v[:], v[:])
	return v
}

// Ceil rounds every lane toward positive infinity.
func (v F64x2[R]) Ceil() F64x2[R] {
	lanes.Ceil(v[:], v[:])
	return v
}

// Round rounds every lane to the nearest integer, ties to even.
func (v F64x2[R]) Round() F64x2[R] {
	lanes.Round(v[:], v[:])
	return v
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v F64x2[R]) HorizontalAdd(o F64x2[R]) F64x2[R] {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ConvertToInt64 rounds every lane to the nearest int64, ties to even.
// NaN and out-of-range lanes follow the engine's conversion rule.
func (v F64x2[R]) ConvertToInt64() I64x2[R] {
	var c I64x2[R]
	lanes.FloatToInt(c[:], v[:], rulesOf[R]().Convert)
	return c
}

// AsInt64 reinterprets the register's bits as int64 lanes.
func (v F64x2[R]) AsInt64() I64x2[R] {
	var c I64x2[R]
	lanes.Reinterpret(c[:], v[:])
	return c
}

// AsFloat32 reinterprets the register's bits as float32 lanes.
func (v F64x2[R]) AsFloat32() F32x4[R] {
	var s F32x4[R]
	lanes.Reinterpret(s[:], v[:])
	return s
}
