//go:build wasm && simd128

package simd

const (
	targetLevel = DispatchWASM
	simd128     = true
)
