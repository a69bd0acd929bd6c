package simd

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Level identifies an engine. It implements Engine.
type Level int

const (
	// DispatchScalar is one lane per register, plain Go arithmetic.
	DispatchScalar Level = iota

	// DispatchSSE2 is the x86-64 baseline, 128-bit registers.
	DispatchSSE2

	// DispatchSSE41 adds blendv, pmulld, round and the wider integer min/max.
	DispatchSSE41

	// DispatchAVX2 is 256-bit registers with FMA.
	DispatchAVX2

	// DispatchNEON is ARM Advanced SIMD, 128-bit registers.
	DispatchNEON

	// DispatchWASM is WebAssembly SIMD128.
	DispatchWASM
)

// Levels lists every engine from least to most preferred within its architecture.
func Levels() []Level {
	return []Level{DispatchScalar, DispatchSSE2, DispatchSSE41, DispatchAVX2, DispatchNEON, DispatchWASM}
}

// String returns the engine's name.
func (l Level) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSE41:
		return "sse41"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	case DispatchWASM:
		return "wasm"
	default:
		return "unknown"
	}
}

// ParseLevel maps an engine name back to its Level, ignoring case.
func ParseLevel(name string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar", "none", "fallback":
		return DispatchScalar, true
	case "sse2":
		return DispatchSSE2, true
	case "sse41", "sse4.1", "sse4":
		return DispatchSSE41, true
	case "avx2":
		return DispatchAVX2, true
	case "neon", "asimd":
		return DispatchNEON, true
	case "wasm", "simd128":
		return DispatchWASM, true
	}
	return DispatchScalar, false
}

// RegisterBytes is the native register size. The scalar engine reports 0:
// its registers are exactly one lane wide, so a scalar register of T holds
// sizeof(T) bytes and lanes times lane size still equals the register size
// for every lane type.
func (l Level) RegisterBytes() int {
	switch l {
	case DispatchSSE2, DispatchSSE41, DispatchNEON, DispatchWASM:
		return 16
	case DispatchAVX2:
		return 32
	default:
		return 0
	}
}

// Arch is the architecture family the engine runs on; empty for scalar.
func (l Level) Arch() string {
	switch l {
	case DispatchSSE2, DispatchSSE41, DispatchAVX2:
		return "x86"
	case DispatchNEON:
		return "arm64"
	case DispatchWASM:
		return "wasm"
	default:
		return ""
	}
}

// Features lists the CPU features the engine's kernels need.
func (l Level) Features() []string {
	switch l {
	case DispatchSSE2:
		return []string{"sse2"}
	case DispatchSSE41:
		return []string{"sse2", "sse4.1"}
	case DispatchAVX2:
		return []string{"sse2", "sse4.1", "avx2", "fma"}
	case DispatchNEON:
		return []string{"asimd"}
	case DispatchWASM:
		return []string{"simd128"}
	default:
		return nil
	}
}

// Supported reports whether the engine may run on this host.
func (l Level) Supported() bool {
	return Detect().Supports(l)
}

// rank orders engines within one architecture.
func (l Level) rank() int {
	switch l {
	case DispatchSSE2, DispatchNEON, DispatchWASM:
		return 1
	case DispatchSSE41:
		return 2
	case DispatchAVX2:
		return 3
	default:
		return 0
	}
}

// Features is the result of probing the host.
type Features struct {
	// Architecture is runtime.GOARCH of the probed host.
	Architecture string

	HasSSE2  bool
	HasSSE41 bool
	HasAVX2  bool
	HasFMA   bool

	HasNEON bool

	HasSIMD128 bool

	// ForceScalar restricts every dispatch to the scalar engine.
	ForceScalar bool

	// MaxLevel caps dispatch within MaxLevel's architecture.
	// DispatchScalar means no cap; use ForceScalar for that.
	MaxLevel Level
}

// Supports reports whether engine l may run on a host with these features.
func (f Features) Supports(l Level) bool {
	if l == DispatchScalar {
		return true
	}
	if f.ForceScalar {
		return false
	}
	if f.MaxLevel != DispatchScalar && l.Arch() == f.MaxLevel.Arch() && l.rank() > f.MaxLevel.rank() {
		return false
	}
	switch l {
	case DispatchSSE2:
		return f.HasSSE2
	case DispatchSSE41:
		return f.HasSSE2 && f.HasSSE41
	case DispatchAVX2:
		return f.HasSSE2 && f.HasSSE41 && f.HasAVX2 && f.HasFMA
	case DispatchNEON:
		return f.HasNEON
	case DispatchWASM:
		return f.HasSIMD128
	}
	return false
}

// Best returns the most preferred engine the features support.
func (f Features) Best() Level {
	best := DispatchScalar
	for _, l := range Levels() {
		if f.Supports(l) && l.rank() > best.rank() {
			best = l
		}
	}
	return best
}

var (
	detectOnce sync.Once
	detected   Features
	forced     atomic.Pointer[Features]
)

// Detect probes the host once and returns the cached result, adjusted by the
// SIMDEEZ_NO_SIMD and SIMDEEZ_MAX_LEVEL environment variables. Forced
// features, when set, take precedence.
func Detect() Features {
	if f := forced.Load(); f != nil {
		return *f
	}
	detectOnce.Do(func() {
		detected = probeHost()
		applyEnv(&detected)
	})
	return detected
}

// SetForcedFeatures makes Detect return f. It is meant for tests that need a
// particular host. Dispatchers that already chose an engine keep it.
func SetForcedFeatures(f Features) {
	forced.Store(&f)
}

// ResetDetection undoes SetForcedFeatures.
func ResetDetection() {
	forced.Store(nil)
}

// BestLevel is the most preferred engine the running host supports.
func BestLevel() Level {
	return Detect().Best()
}

// TargetLevel is the engine the build target guarantees, chosen from build
// tags (GOARCH, GOAMD64 and the simd128 tag on wasm) without probing.
func TargetLevel() Level {
	return targetLevel
}
