//go:build 386 || amd64

package simd

import (
	"testing"

	"github.com/klauspost/cpuid/v2"
)

// The probe and cpuid read the same CPUID leaves; they must agree.
func TestProbeMatchesCPUID(t *testing.T) {
	f := probeHost()
	if got, want := f.HasAVX2 && f.HasFMA, cpuid.CPU.Supports(cpuid.AVX2, cpuid.FMA3); got != want {
		t.Errorf("AVX2+FMA: probe %v, cpuid %v", got, want)
	}
	if got, want := f.HasSSE41, cpuid.CPU.Supports(cpuid.SSE4); got != want {
		t.Errorf("SSE4.1: probe %v, cpuid %v", got, want)
	}
	if !f.HasSSE2 && cpuid.CPU.Supports(cpuid.SSE2) {
		t.Error("SSE2: probe missed it")
	}
}
