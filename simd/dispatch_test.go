package simd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x86Full  = Features{Architecture: "amd64", HasSSE2: true, HasSSE41: true, HasAVX2: true, HasFMA: true}
	x86SSE41 = Features{Architecture: "amd64", HasSSE2: true, HasSSE41: true}
	x86SSE2  = Features{Architecture: "amd64", HasSSE2: true}
	arm      = Features{Architecture: "arm64", HasNEON: true}
)

func TestLevelString(t *testing.T) {
	for _, l := range Levels() {
		parsed, ok := ParseLevel(l.String())
		if !ok || parsed != l {
			t.Errorf("ParseLevel(%q): got %v, %v", l.String(), parsed, ok)
		}
	}
	if got := Level(99).String(); got != "unknown" {
		t.Errorf("Level(99).String(): got %q", got)
	}
	if _, ok := ParseLevel("avx512"); ok {
		t.Error("ParseLevel accepted an engine that does not exist")
	}
	if l, ok := ParseLevel(" SSE4.1 "); !ok || l != DispatchSSE41 {
		t.Errorf("ParseLevel(SSE4.1): got %v, %v", l, ok)
	}
}

func TestRegisterBytes(t *testing.T) {
	want := map[Level]int{
		DispatchScalar: 0,
		DispatchSSE2:   16,
		DispatchSSE41:  16,
		DispatchAVX2:   32,
		DispatchNEON:   16,
		DispatchWASM:   16,
	}
	for l, n := range want {
		if got := l.RegisterBytes(); got != n {
			t.Errorf("%v.RegisterBytes(): got %d, want %d", l, got, n)
		}
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    Level
		want     bool
	}{
		{"scalar always", Features{}, DispatchScalar, true},
		{"scalar when forced", Features{ForceScalar: true}, DispatchScalar, true},
		{"avx2 full", x86Full, DispatchAVX2, true},
		{"avx2 without fma", Features{HasSSE2: true, HasSSE41: true, HasAVX2: true}, DispatchAVX2, false},
		{"sse41 on sse2 host", x86SSE2, DispatchSSE41, false},
		{"sse2 on sse2 host", x86SSE2, DispatchSSE2, true},
		{"neon on x86", x86Full, DispatchNEON, false},
		{"neon on arm", arm, DispatchNEON, true},
		{"wasm", Features{HasSIMD128: true}, DispatchWASM, true},
		{"forced scalar", Features{HasSSE2: true, ForceScalar: true}, DispatchSSE2, false},
		{"capped", Features{HasSSE2: true, HasSSE41: true, HasAVX2: true, HasFMA: true, MaxLevel: DispatchSSE2}, DispatchSSE41, false},
		{"cap allows lower", Features{HasSSE2: true, MaxLevel: DispatchSSE41}, DispatchSSE2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.features.Supports(tt.level))
		})
	}
}

func TestBest(t *testing.T) {
	assert.Equal(t, DispatchAVX2, x86Full.Best())
	assert.Equal(t, DispatchSSE41, x86SSE41.Best())
	assert.Equal(t, DispatchSSE2, x86SSE2.Best())
	assert.Equal(t, DispatchNEON, arm.Best())
	assert.Equal(t, DispatchScalar, Features{}.Best())
}

func TestForcedFeatures(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(x86SSE2)
	assert.Equal(t, DispatchSSE2, BestLevel())
	assert.False(t, DispatchAVX2.Supported())

	ResetDetection()
	assert.True(t, DispatchScalar.Supported())
	assert.True(t, BestLevel().Supported())
}

func TestNoSimdEnvSeesLaterChanges(t *testing.T) {
	t.Setenv(EnvNoSimd, "")
	require.False(t, NoSimdEnv())
	t.Setenv(EnvNoSimd, "true")
	assert.True(t, NoSimdEnv())
}

func TestApplyEnv(t *testing.T) {
	// Read once first so the variables below change after env has cached.
	_ = NoSimdEnv()

	t.Setenv(EnvNoSimd, "true")
	f := x86Full
	applyEnv(&f)
	require.True(t, f.ForceScalar)
	assert.Equal(t, DispatchScalar, f.Best())

	t.Setenv(EnvNoSimd, "")
	t.Setenv(EnvMaxLevel, "sse2")
	f = x86Full
	applyEnv(&f)
	assert.False(t, f.ForceScalar)
	assert.Equal(t, DispatchSSE2, f.Best())

	t.Setenv(EnvMaxLevel, "scalar")
	f = arm
	applyEnv(&f)
	assert.True(t, f.ForceScalar)

	t.Setenv(EnvMaxLevel, "pentium")
	f = x86Full
	applyEnv(&f)
	assert.Equal(t, x86Full, f)
}

func TestTargetLevelIsNative(t *testing.T) {
	target := TargetLevel()
	if target != DispatchScalar {
		assert.Equal(t, target.Arch(), probeHost().Best().Arch())
	}
}
