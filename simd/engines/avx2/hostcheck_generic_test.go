//go:build !(amd64 && goexperiment.simd)

package avx2_test

import "testing"

// requireHost is a no-op: without archsimd the registers are plain Go.
func requireHost(t *testing.T) { t.Helper() }
