package simd

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type levelFunc func() Level

func allImpls() []Impl[levelFunc] {
	var impls []Impl[levelFunc]
	for _, l := range Levels() {
		impls = append(impls, Impl[levelFunc]{Level: l, Fn: func() Level { return l }})
	}
	return impls
}

func withProbe(d *Dispatcher[levelFunc], f Features) *int {
	calls := new(int)
	d.probe = func() Features {
		*calls++
		return f
	}
	return calls
}

func TestDispatcherSelectsBest(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     Level
	}{
		{"avx2", x86Full, DispatchAVX2},
		{"sse41", x86SSE41, DispatchSSE41},
		{"sse2", x86SSE2, DispatchSSE2},
		{"neon", arm, DispatchNEON},
		{"wasm", Features{HasSIMD128: true}, DispatchWASM},
		{"nothing", Features{}, DispatchScalar},
		{"forced scalar", Features{HasSSE2: true, ForceScalar: true}, DispatchScalar},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Runtime("f", allImpls()...)
			withProbe(d, tt.features)
			assert.Equal(t, tt.want, d.Func()())
			assert.Equal(t, tt.want, d.Level())
			assert.True(t, tt.features.Supports(d.Level()))
		})
	}
}

func TestDispatcherProbesOnce(t *testing.T) {
	d := Runtime("f", allImpls()...)
	calls := withProbe(d, x86SSE41)
	for i := 0; i < 1000; i++ {
		require.Equal(t, DispatchSSE41, d.Func()())
	}
	assert.Equal(t, 1, *calls)
	assert.Equal(t, 1, d.Probes())
}

func TestDispatcherOrderIndependent(t *testing.T) {
	impls := allImpls()
	for i, j := 0, len(impls)-1; i < j; i, j = i+1, j-1 {
		impls[i], impls[j] = impls[j], impls[i]
	}
	d := Runtime("reversed", impls...)
	withProbe(d, x86Full)
	assert.Equal(t, DispatchAVX2, d.Level())
	assert.Equal(t, "reversed", d.Name())
}

func TestDispatcherConcurrentFirstCalls(t *testing.T) {
	d := Runtime("f", allImpls()...)
	d.probe = func() Features { return x86Full }

	const goroutines = 64
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		seen  = make([]*Impl[levelFunc], goroutines)
	)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			seen[g] = d.resolve()
		}()
	}
	close(start)
	wg.Wait()

	for g := 1; g < goroutines; g++ {
		require.Same(t, seen[0], seen[g], "goroutine %d observed a different slot", g)
	}
	assert.Equal(t, DispatchAVX2, seen[0].Level)
	assert.GreaterOrEqual(t, d.Probes(), 1)
}

func TestDispatcherKeepsChoice(t *testing.T) {
	t.Cleanup(ResetDetection)

	SetForcedFeatures(x86SSE41)
	d := Runtime("f", allImpls()...)
	require.Equal(t, DispatchSSE41, d.Level())
	require.True(t, d.Level().Supported())

	SetForcedFeatures(x86Full)
	assert.Equal(t, DispatchSSE41, d.Level())
	assert.Equal(t, 1, d.Probes())
}

func TestDispatcherWithoutCandidate(t *testing.T) {
	d := Runtime("onlyAVX2", Impl[levelFunc]{Level: DispatchAVX2, Fn: func() Level { return DispatchAVX2 }})
	withProbe(d, x86SSE2)
	require.PanicsWithValue(t, "simd: no specialisation of onlyAVX2 supports this host", func() { d.Func() })
}

func TestCompileTime(t *testing.T) {
	t.Cleanup(ResetDetection)
	// The host is irrelevant to compile-time selection.
	SetForcedFeatures(Features{ForceScalar: true})

	assert.Equal(t, TargetLevel(), CompileTime(allImpls()...)())

	scalarOnly := []Impl[levelFunc]{{Level: DispatchScalar, Fn: func() Level { return DispatchScalar }}}
	assert.Equal(t, DispatchScalar, CompileTime(scalarOnly...)())

	require.Panics(t, func() {
		CompileTime(Impl[levelFunc]{Level: Level(99), Fn: nil})
	})
}
