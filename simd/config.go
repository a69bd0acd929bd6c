package simd

import "github.com/xyproto/env/v2"

const (
	// EnvNoSimd, when set to a true value, forces every dispatch to the
	// scalar engine.
	EnvNoSimd = "SIMDEEZ_NO_SIMD"

	// EnvMaxLevel caps dispatch at the named engine (for example "sse2").
	// Unknown names are ignored.
	EnvMaxLevel = "SIMDEEZ_MAX_LEVEL"
)

// NoSimdEnv reports whether SIMDEEZ_NO_SIMD asks for scalar code.
func NoSimdEnv() bool {
	env.Load()
	return env.Bool(EnvNoSimd)
}

// applyEnv reads the variables afresh; env caches os.Environ on first use.
func applyEnv(f *Features) {
	if NoSimdEnv() {
		f.ForceScalar = true
		return
	}
	l, ok := ParseLevel(env.Str(EnvMaxLevel))
	if !ok {
		return
	}
	if l == DispatchScalar {
		f.ForceScalar = true
		return
	}
	f.MaxLevel = l
}
