//go:build arm64

package simd

const targetLevel = DispatchNEON
