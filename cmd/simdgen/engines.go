// Copyright 2025 go-simdeez Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Family is the lane type of a register type parameter.
type Family string

const (
	FamilyI8  Family = "I8"
	FamilyI16 Family = "I16"
	FamilyI32 Family = "I32"
	FamilyI64 Family = "I64"
	FamilyF32 Family = "F32"
	FamilyF64 Family = "F64"
)

// familyOf maps a constraint such as "simd.Float32s[F]" or
// "simd.Int32Conv[I, F, N, W]" to the family of registers satisfying it.
func familyOf(constraint string) (Family, bool) {
	name := constraint
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	switch name {
	case "Int8s", "Int8Conv":
		return FamilyI8, true
	case "Int16s", "Int16Conv":
		return FamilyI16, true
	case "Int32s", "Int32Conv":
		return FamilyI32, true
	case "Int64s", "Int64Conv":
		return FamilyI64, true
	case "Float32s", "Float32Conv":
		return FamilyF32, true
	case "Float64s", "Float64Conv":
		return FamilyF64, true
	}
	return "", false
}

// Engine is one generation target.
type Engine struct {
	Name    string // "AVX2"
	Package string // "avx2"
	Blocks  int    // 128-bit blocks per register, 0 for scalar
}

// Suffix is appended to specialisation names, e.g. "_avx2".
func (e Engine) Suffix() string {
	return "_" + e.Package
}

// ImportPath returns the engine package's import path.
func (e Engine) ImportPath() string {
	return modulePath + "/simd/engines/" + e.Package
}

// TypeName returns the register type of the family, e.g. "F32x8".
func (e Engine) TypeName(f Family) string {
	if e.Blocks == 0 {
		return string(f) + "x1"
	}
	bits := map[Family]int{FamilyI8: 8, FamilyI16: 16, FamilyI32: 32, FamilyI64: 64, FamilyF32: 32, FamilyF64: 64}[f]
	return string(f) + "x" + strconv.Itoa(128*e.Blocks/bits)
}

const modulePath = "github.com/ajroetker/go-simdeez"

var (
	Scalar = Engine{Name: "Scalar", Package: "scalar"}
	SSE2   = Engine{Name: "SSE2", Package: "sse2", Blocks: 1}
	SSE41  = Engine{Name: "SSE41", Package: "sse41", Blocks: 1}
	AVX2   = Engine{Name: "AVX2", Package: "avx2", Blocks: 2}
	NEON   = Engine{Name: "NEON", Package: "neon", Blocks: 1}
	WASM   = Engine{Name: "WASM", Package: "wasm", Blocks: 1}
)

// Arch groups the engines compiled for one architecture family into one
// output file.
type Arch struct {
	Name     string // file suffix, "x86"
	BuildTag string
	Engines  []Engine // most preferred first, scalar excluded
}

// Archs lists the per-architecture output files. Every build compiles
// exactly one of them.
func Archs() []Arch {
	return []Arch{
		{Name: "x86", BuildTag: "386 || amd64", Engines: []Engine{AVX2, SSE41, SSE2}},
		{Name: "arm64", BuildTag: "arm64", Engines: []Engine{NEON}},
		{Name: "wasm", BuildTag: "wasm", Engines: []Engine{WASM}},
		{Name: "other", BuildTag: "!386 && !amd64 && !arm64 && !wasm"},
	}
}

// ParseEngines resolves a comma-separated engine list; "all" or an empty
// string selects every engine. Scalar is always included.
func ParseEngines(s string) (map[string]bool, error) {
	keep := map[string]bool{Scalar.Package: true}
	if s == "" || s == "all" {
		for _, e := range []Engine{SSE2, SSE41, AVX2, NEON, WASM} {
			keep[e.Package] = true
		}
		return keep, nil
	}
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "":
		case "scalar", "sse2", "sse41", "avx2", "neon", "wasm":
			keep[name] = true
		default:
			return nil, fmt.Errorf("unknown engine %q (valid: scalar, sse2, sse41, avx2, neon, wasm, all)", name)
		}
	}
	return keep, nil
}
