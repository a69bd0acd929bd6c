package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeWith(t *testing.T) {
	t.Cleanup(ResetDetection)
	SetForcedFeatures(x86SSE41)

	got := InvokeWith(DispatchSSE41, func() int { return 42 })
	assert.Equal(t, 42, got)

	ran := false
	RunWith(DispatchScalar, func() { ran = true })
	assert.True(t, ran)

	ran = false
	require.PanicsWithValue(t, "simd: avx2 kernels invoked on a host without [sse2 sse4.1 avx2 fma]", func() {
		RunWith(DispatchAVX2, func() { ran = true })
	})
	assert.False(t, ran, "body ran under an unsupported engine")
}

func TestLevelIsEngine(t *testing.T) {
	var e Engine = DispatchNEON
	assert.Equal(t, "neon", e.String())
	assert.Equal(t, "arm64", e.Arch())
	assert.Equal(t, []string{"asimd"}, e.Features())
}
