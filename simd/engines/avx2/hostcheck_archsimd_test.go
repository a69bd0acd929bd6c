//go:build amd64 && goexperiment.simd

package avx2_test

import (
	"testing"

	"github.com/ajroetker/go-simdeez/simd/engines/avx2"
)

// requireHost skips tests that would execute AVX2 instructions on a host
// without them.
func requireHost(t *testing.T) {
	t.Helper()
	if !avx2.Engine.Supported() {
		t.Skip("host has no AVX2+FMA")
	}
}
