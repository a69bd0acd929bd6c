//go:build wasm && !simd128

package simd

const (
	targetLevel = DispatchScalar
	simd128     = false
)
