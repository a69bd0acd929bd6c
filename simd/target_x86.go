//go:build 386 || (amd64 && !amd64.v2)

package simd

const targetLevel = DispatchSSE2
