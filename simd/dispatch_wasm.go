//go:build wasm

package simd

import "runtime"

// SIMD128 cannot be probed from inside a module; it is fixed when building.
func probeHost() Features {
	return Features{
		Architecture: runtime.GOARCH,
		HasSIMD128:   simd128,
	}
}
