package x128

import (
	"iter"

	"github.com/ajroetker/go-simdeez/internal/lanes"
)

// F32x4 is a 128-bit register of four float32 lanes. R selects the engine whose
// rules the operations follow.
type F32x4[R Rulebook] [4]float32

// Width returns the number of lanes, 4.
func (v F32x4[R]) Width() int {
	return len(v)
}

// Get returns lane i.
func (v F32x4[R]) Get(i int) float32 {
	return v[i]
}

// Set replaces lane i with x.
func (v *F32x4[R]) Set(i int, x float32) {
	v[i] = x
}

// With returns a copy of v with lane i replaced by x.
func (v F32x4[R]) With(i int, x float32) F32x4[R] {
	v[i] = x
	return v
}

// Broadcast returns a register with every lane set to x. The receiver is
// ignored.
func (F32x4[R]) Broadcast(x float32) F32x4[R] {
	var b F32x4[R]
	for i := range b {
		b[i] = x
	}
	return b
}

// Load returns the first 4 elements of src. The receiver is ignored.
// It panics if src is shorter than the register.
func (F32x4[R]) Load(src []float32) F32x4[R] {
	var b F32x4[R]
	_ = src[len(b)-1]
	copy(b[:], src)
	return b
}

// LoadAligned is Load for src aligned to the register size. On engines
// whose aligned loads fault, a misaligned src panics.
func (v F32x4[R]) LoadAligned(src []float32) F32x4[R] {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(src, rules.RegisterBytes)
	}
	return v.Load(src)
}

// Store writes the lanes to the start of dst.
func (v F32x4[R]) Store(dst []float32) {
	_ = dst[len(v)-1]
	copy(dst, v[:])
}

// StoreAligned is Store for dst aligned to the register size.
func (v F32x4[R]) StoreAligned(dst []float32) {
	if rules := rulesOf[R](); rules.AlignedFaults {
		lanes.CheckAligned(dst, rules.RegisterBytes)
	}
	v.Store(dst)
}

// MaskLoad treats v as a mask: lane i reads src[i] if its sign bit is set
// and is zero otherwise. Unselected lanes do not touch src.
func (v F32x4[R]) MaskLoad(src []float32) F32x4[R] {
	var b F32x4[R]
	lanes.MaskLoad(b[:], v[:], src)
	return b
}

// MaskStore treats v as a mask and writes lane i of x to dst[i] where
// the mask is set.
func (v F32x4[R]) MaskStore(x F32x4[R], dst []float32) {
	lanes.MaskStore(dst, v[:], x[:])
}

// Values yields the lanes in order.
func (v F32x4[R]) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, x := range v {
			if !yield(x) {
				return
			}
		}
	}
}

// Add returns v + o.
func (v F32x4[R]) Add(o F32x4[R]) F32x4[R] {
	lanes.Add(v[:], v[:], o[:])
	return v
}

// Sub returns v - o.
func (v F32x4[R]) Sub(o F32x4[R]) F32x4[R] {
	lanes.Sub(v[:], v[:], o[:])
	return v
}

// Mul returns v * o.
func (v F32x4[R]) Mul(o F32x4[R]) F32x4[R] {
	lanes.Mul(v[:], v[:], o[:])
	return v
}

// Div returns v / o.
func (v F32x4[R]) Div(o F32x4[R]) F32x4[R] {
	lanes.Div(v[:], v[:], o[:])
	return v
}

// AddScalar adds x to every lane.
func (v F32x4[R]) AddScalar(x float32) F32x4[R] {
	return v.Add(v.Broadcast(x))
}

// SubScalar subtracts x from every lane.
func (v F32x4[R]) SubScalar(x float32) F32x4[R] {
	return v.Sub(v.Broadcast(x))
}

// MulScalar multiplies every lane by x.
func (v F32x4[R]) MulScalar(x float32) F32x4[R] {
	return v.Mul(v.Broadcast(x))
}

// DivScalar divides every lane by x.
func (v F32x4[R]) DivScalar(x float32) F32x4[R] {
	return v.Div(v.Broadcast(x))
}

// MulAdd returns v*b + c, fused when the engine has FMA.
func (v F32x4[R]) MulAdd(b, c F32x4[R]) F32x4[R] {
	lanes.MulAdd(v[:], v[:], b[:], c[:], rulesOf[R]().FusedMulAdd)
	return v
}

// Neg returns -v. Only the sign bits change.
func (v F32x4[R]) Neg() F32x4[R] {
	lanes.Neg(v[:], v[:])
	return v
}

// Abs clears the sign bit of every lane.
func (v F32x4[R]) Abs() F32x4[R] {
	lanes.AbsFloat(v[:], v[:])
	return v
}

// Min returns the lane-wise minimum under the engine's NaN rule.
func (v F32x4[R]) Min(o F32x4[R]) F32x4[R] {
	lanes.MinFloat(v[:], v[:], o[:], rulesOf[R]().MinMax)
	return v
}

// Max returns the lane-wise maximum under the engine's NaN rule.
func (v F32x4[R]) Max(o F32x4[R]) F32x4[R] {
	lanes.MaxFloat(v[:], v[:], o[:], rulesOf[R]().MinMax)
	return v
}

// And returns v & o on the raw bits.
func (v F32x4[R]) And(o F32x4[R]) F32x4[R] {
	lanes.And(v[:], v[:], o[:])
	return v
}

// Or returns v | o on the raw bits.
func (v F32x4[R]) Or(o F32x4[R]) F32x4[R] {
	lanes.Or(v[:], v[:], o[:])
	return v
}

// Xor returns v ^ o on the raw bits.
func (v F32x4[R]) Xor(o F32x4[R]) F32x4[R] {
	lanes.Xor(v[:], v[:], o[:])
	return v
}

// AndNot returns v &^ o on the raw bits.
func (v F32x4[R]) AndNot(o F32x4[R]) F32x4[R] {
	lanes.AndNot(v[:], v[:], o[:])
	return v
}

// Not flips every bit.
func (v F32x4[R]) Not() F32x4[R] {
	lanes.Not(v[:], v[:])
	return v
}

// Equal sets lanes where v == o to all ones and the rest to zero.
func (v F32x4[R]) Equal(o F32x4[R]) F32x4[R] {
	lanes.Equal(v[:], v[:], o[:])
	return v
}

// NotEqual masks lanes where v != o. NaN lanes compare unequal.
func (v F32x4[R]) NotEqual(o F32x4[R]) F32x4[R] {
	lanes.NotEqual(v[:], v[:], o[:])
	return v
}

// Less masks lanes where v < o.
func (v F32x4[R]) Less(o F32x4[R]) F32x4[R] {
	lanes.Less(v[:], v[:], o[:])
	return v
}

// LessEqual masks lanes where v <= o.
func (v F32x4[R]) LessEqual(o F32x4[R]) F32x4[R] {
	lanes.LessEqual(v[:], v[:], o[:])
	return v
}

// Greater masks lanes where v > o.
func (v F32x4[R]) Greater(o F32x4[R]) F32x4[R] {
	lanes.Greater(v[:], v[:], o[:])
	return v
}

// GreaterEqual masks lanes where v >= o.
func (v F32x4[R]) GreaterEqual(o F32x4[R]) F32x4[R] {
	lanes.GreaterEqual(v[:], v[:], o[:])
	return v
}

// Merge is blendv: lanes of v where the sign bit of mask is set, lanes of
// other elsewhere.
func (v F32x4[R]) Merge(other, mask F32x4[R]) F32x4[R] {
	lanes.Select(v[:], mask[:], v[:], other[:])
	return v
}

// GetMask returns the sign bit of lane k in bit k.
func (v F32x4[R]) GetMask() uint32 {
	return lanes.SignMask(v[:])
}

// ReduceSum adds all lanes. The association order is the engine's.
func (v F32x4[R]) ReduceSum() float32 {
	return lanes.SumFloat(v[:], rulesOf[R]().Reduce)
}

// ReduceMax returns the largest lane.
func (v F32x4[R]) ReduceMax() float32 {
	rules := rulesOf[R]()
	return lanes.MaxFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// ReduceMin returns the smallest lane.
func (v F32x4[R]) ReduceMin() float32 {
	rules := rulesOf[R]()
	return lanes.MinFloatOf(v[:], rules.Reduce, rules.MinMax)
}

// Sqrt returns the square root of every lane.
func (v F32x4[R]) Sqrt() F32x4[R] {
	lanes.Sqrt(v[:], v[:])
	return v
}

// Floor rounds every lane toward negative infinity.
func (v F32x4[R]) Floor() F32x4[R] {
	lanes.Floor(v[:], v[:])
	return v
}

// Ceil rounds every lane toward positive infinity.
func (v F32x4[R]) Ceil() F32x4[R] {
	lanes.Ceil(v[:], v[:])
	return v
}

// Round rounds every lane to the nearest integer, ties to even.
func (v F32x4[R]) Round() F32x4[R] {
	lanes.Round(v[:], v[:])
	return v
}

// HorizontalAdd is hadd: within each 128-bit block, the sums of adjacent
// pairs of v followed by those of o.
func (v F32x4[R]) HorizontalAdd(o F32x4[R]) F32x4[R] {
	lanes.PairwiseAdd(v[:], v[:], o[:])
	return v
}

// ConvertToInt32 rounds every lane to the nearest int32, ties to even.
// NaN and out-of-range lanes follow the engine's conversion rule.
func (v F32x4[R]) ConvertToInt32() I32x4[R] {
	var c I32x4[R]
	lanes.FloatToInt(c[:], v[:], rulesOf[R]().Convert)
	return c
}

// AsInt32 reinterprets the register's bits as int32 lanes.
func (v F32x4[R]) AsInt32() I32x4[R] {
	var c I32x4[R]
	lanes.Reinterpret(c[:], v[:])
	return c
}

// AsFloat64 reinterprets the register's bits as float64 lanes.
func (v F32x4[R]) AsFloat64() F64x2[R] {
	var d F64x2[R]
	lanes.Reinterpret(d[:], v[:])
	return d
}
