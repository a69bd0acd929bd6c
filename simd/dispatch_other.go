//go:build !386 && !amd64 && !arm64 && !wasm

package simd

import "runtime"

func probeHost() Features {
	return Features{Architecture: runtime.GOARCH}
}
