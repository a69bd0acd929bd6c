package simd

import (
	"cmp"
	"fmt"
	"slices"
	"sync/atomic"
)

// Impl is the specialisation of one function for one engine.
type Impl[F any] struct {
	Level Level
	Fn    F
}

// Dispatcher routes calls of one function to the best specialisation the
// host supports. The choice is made on the first call and never changes.
//
// The slot is an atomic pointer. Concurrent first callers may each probe,
// but only the first CompareAndSwap publishes, so every caller gets the same
// specialisation.
type Dispatcher[F any] struct {
	name   string
	impls  []Impl[F]
	probe  func() Features
	slot   atomic.Pointer[Impl[F]]
	probes atomic.Int32
}

// Runtime builds the runtime-dispatched form of a function from its
// specialisations. The order of impls does not matter. A scalar
// specialisation should always be present; without one, a host supporting
// none of the others panics on first call.
func Runtime[F any](name string, impls ...Impl[F]) *Dispatcher[F] {
	sorted := slices.Clone(impls)
	slices.SortStableFunc(sorted, func(a, b Impl[F]) int {
		return cmp.Compare(b.Level.rank(), a.Level.rank())
	})
	return &Dispatcher[F]{name: name, impls: sorted, probe: Detect}
}

// Func returns the chosen specialisation, choosing it first if needed.
func (d *Dispatcher[F]) Func() F {
	return d.resolve().Fn
}

// Level returns the engine of the chosen specialisation.
func (d *Dispatcher[F]) Level() Level {
	return d.resolve().Level
}

// Name returns the name the dispatcher was built with.
func (d *Dispatcher[F]) Name() string {
	return d.name
}

// Probes returns how many times the dispatcher has probed the host. It is
// one after any number of calls from a single goroutine.
func (d *Dispatcher[F]) Probes() int {
	return int(d.probes.Load())
}

func (d *Dispatcher[F]) resolve() *Impl[F] {
	if p := d.slot.Load(); p != nil {
		return p
	}
	chosen := d.choose()
	if d.slot.CompareAndSwap(nil, chosen) {
		return chosen
	}
	return d.slot.Load()
}

func (d *Dispatcher[F]) choose() *Impl[F] {
	d.probes.Add(1)
	f := d.probe()
	for i := range d.impls {
		if f.Supports(d.impls[i].Level) {
			return &d.impls[i]
		}
	}
	panic(fmt.Sprintf("simd: no specialisation of %s supports this host", d.name))
}

// CompileTime picks the specialisation for the build target (see
// TargetLevel) without probing the host. If the target's own engine is
// missing, the best lower engine of the same architecture is used, then
// scalar.
func CompileTime[F any](impls ...Impl[F]) F {
	target := TargetLevel()
	var best *Impl[F]
	for i := range impls {
		l := impls[i].Level
		if l == target {
			return impls[i].Fn
		}
		fits := l == DispatchScalar || l.Arch() == target.Arch() && l.rank() < target.rank()
		if fits && (best == nil || l.rank() > best.Level.rank()) {
			best = &impls[i]
		}
	}
	if best == nil {
		panic(fmt.Sprintf("simd: no specialisation for build target %s", target))
	}
	return best.Fn
}
