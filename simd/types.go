// Package simd is a portable SIMD abstraction: write a vector algorithm
// once, generic over the register types of an engine, and run the copy for
// the best engine the CPU supports.
//
// An engine (Scalar, SSE2, SSE4.1, AVX2, NEON, WASM-SIMD128) lives in its own
// package under simd/engines and provides six register types, one per lane
// type. Every register type implements the catalogue described by the
// interfaces in this file. User code is written against those interfaces:
//
//	func BaseScale[F simd.Float32s[F]](dst, src []float32, k float32) {
//		var z F
//		kv := z.Broadcast(k)
//		n := z.Width()
//		for i := 0; i+n <= len(src); i += n {
//			z.Load(src[i:]).Mul(kv).Store(dst[i:])
//		}
//	}
//
// cmd/simdgen turns Base functions into one specialisation per engine plus a
// Dispatcher that picks one on first call.
package simd

import "iter"

// Floats is a constraint for floating-point lane types.
type Floats interface {
	float32 | float64
}

// SignedInts is a constraint for integer lane types.
type SignedInts interface {
	int8 | int16 | int32 | int64
}

// Lanes is a constraint for all types that can be stored in register lanes.
type Lanes interface {
	Floats | SignedInts
}

// Vector is the part of the catalogue every register type implements. V is
// the register type itself and T its lane type.
//
// Constructors (Broadcast, Load, LoadAligned) ignore their receiver; call them
// on the zero value. MaskLoad and MaskStore take the mask as receiver. A lane
// takes part in a mask when its sign bit is set, so comparison results work as
// masks directly.
type Vector[V any, T Lanes] interface {
	// Width is the number of lanes.
	Width() int
	Get(i int) T
	With(i int, x T) V
	Broadcast(x T) V
	Load(src []T) V
	LoadAligned(src []T) V
	Store(dst []T)
	StoreAligned(dst []T)
	MaskLoad(src []T) V
	MaskStore(v V, dst []T)
	Values() iter.Seq[T]

	Add(o V) V
	Sub(o V) V
	Mul(o V) V
	AddScalar(x T) V
	SubScalar(x T) V
	MulScalar(x T) V
	Neg() V
	Abs() V
	Min(o V) V
	Max(o V) V

	And(o V) V
	Or(o V) V
	Xor(o V) V
	AndNot(o V) V
	Not() V

	Equal(o V) V
	NotEqual(o V) V
	Less(o V) V
	LessEqual(o V) V
	Greater(o V) V
	GreaterEqual(o V) V

	// Merge is blendv: lanes of the receiver where mask is set, of other elsewhere.
	Merge(other, mask V) V
	GetMask() uint32

	ReduceSum() T
	ReduceMax() T
	ReduceMin() T
}

// Float adds the float-only operations.
type Float[V any, T Floats] interface {
	Vector[V, T]
	Div(o V) V
	DivScalar(x T) V
	// MulAdd returns v*b + c, fused on engines with FMA.
	MulAdd(b, c V) V
	Sqrt() V
	Floor() V
	Ceil() V
	Round() V
	HorizontalAdd(o V) V
}

// Integer adds shifts and saturating arithmetic.
type Integer[V any, T SignedInts] interface {
	Vector[V, T]
	ShiftAllLeft(n uint64) V
	ShiftAllRight(n uint64) V
	ShiftAllRightLogical(n uint64) V
	ShiftLeft(counts V) V
	ShiftRight(counts V) V
	AddSat(o V) V
	SubSat(o V) V
}

// Int8s is satisfied by the int8 register of every engine.
type Int8s[V any] interface {
	Integer[V, int8]
}

// Int16s is satisfied by the int16 register of every engine.
type Int16s[V any] interface {
	Integer[V, int16]
	HorizontalAdd(o V) V
}

// Int32s is satisfied by the int32 register of every engine.
type Int32s[V any] interface {
	Integer[V, int32]
	HorizontalAdd(o V) V
	// Gather reads src[v[i]] into lane i.
	Gather(src []int32) V
	// Shuffle is pshufd: within every group of four lanes, lane j takes lane
	// (imm >> 2j) & 3.
	Shuffle(imm uint8) V
}

// Int64s is satisfied by the int64 register of every engine.
type Int64s[V any] interface {
	Integer[V, int64]
	Gather(src []int64) V
}

// Float32s is satisfied by the float32 register of every engine.
type Float32s[V any] interface {
	Float[V, float32]
}

// Float64s is satisfied by the float64 register of every engine.
type Float64s[V any] interface {
	Float[V, float64]
}

// Int8Conv adds widening to the int16 register W.
type Int8Conv[V, W any] interface {
	Int8s[V]
	ExtendLo() W
	ExtendHi() W
}

// Int16Conv adds narrowing to the int8 register N and widening to the int32
// register W.
type Int16Conv[V, N, W any] interface {
	Int16s[V]
	NarrowSat(o V) N
	ExtendLo() W
	ExtendHi() W
}

// Int32Conv adds conversions to the float32 register F, narrowing to the
// int16 register N and widening to the int64 register W.
type Int32Conv[V, F, N, W any] interface {
	Int32s[V]
	ConvertToFloat32() F
	AsFloat32() F
	GatherFloat32(src []float32) F
	NarrowSat(o V) N
	ExtendLo() W
	ExtendHi() W
}

// Int64Conv adds conversions to the float64 register F and narrowing to the
// int32 register N.
type Int64Conv[V, F, N any] interface {
	Int64s[V]
	ConvertToFloat64() F
	AsFloat64() F
	GatherFloat64(src []float64) F
	NarrowSat(o V) N
}

// Float32Conv adds conversions to the int32 register I and the float64
// register D.
type Float32Conv[V, I, D any] interface {
	Float32s[V]
	// ConvertToInt32 rounds to nearest, ties to even.
	ConvertToInt32() I
	AsInt32() I
	AsFloat64() D
}

// Float64Conv adds conversions to the int64 register I and the float32
// register S.
type Float64Conv[V, I, S any] interface {
	Float64s[V]
	ConvertToInt64() I
	AsInt64() I
	AsFloat32() S
}

// Registers names the six register types of one engine. Engine packages
// declare a variable of their instantiation, so an engine that misses part of
// the catalogue does not compile.
type Registers[
	I8 Int8Conv[I8, I16],
	I16 Int16Conv[I16, I8, I32],
	I32 Int32Conv[I32, F32, I16, I64],
	I64 Int64Conv[I64, F64, I32],
	F32 Float32Conv[F32, I32, F64],
	F64 Float64Conv[F64, I64, F32],
] struct{}
