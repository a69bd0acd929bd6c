//go:build !386 && !amd64 && !arm64 && !wasm

package simd

const targetLevel = DispatchScalar
