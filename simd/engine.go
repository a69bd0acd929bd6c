package simd

import "fmt"

// Engine describes one backend. Level implements it; each engine package
// exports its value as Engine.
type Engine interface {
	fmt.Stringer
	RegisterBytes() int
	Arch() string
	Features() []string
	Supported() bool
}

// InvokeWith runs body under engine e and returns its result. Go cannot
// enable target features for a block, so the gate is a check: body only runs
// if the host supports e, and calling it otherwise panics. Register values
// created inside body belong to e.
func InvokeWith[R any](e Engine, body func() R) R {
	mustSupport(e)
	return body()
}

// RunWith is InvokeWith for bodies without a result.
func RunWith(e Engine, body func()) {
	mustSupport(e)
	body()
}

func mustSupport(e Engine) {
	if !e.Supported() {
		panic(fmt.Sprintf("simd: %s kernels invoked on a host without %v", e, e.Features()))
	}
}
