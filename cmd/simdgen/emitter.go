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
	"bytes"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/tools/imports"
)

const generatedHeader = "// Code generated by simdgen. DO NOT EDIT.\n"

// names holds the identifiers generated for one Base function.
type names struct {
	wrapper    string // Dot
	lower      string // dot
	funcType   string // dotFunc
	dispatcher string // dotDispatcher
	impls      string // dotImpls
}

func namesOf(pf ParsedFunc) names {
	stripped := pf.Name[len("Base"):]
	lower := strings.ToLower(stripped[:1]) + stripped[1:]
	n := names{wrapper: stripped, lower: lower}
	if pf.Private {
		n.wrapper = lower
	}
	n.funcType = lower + "Func"
	n.dispatcher = lower + "Dispatcher"
	n.impls = lower + "Impls"
	return n
}

// specName is the name of pf's specialisation for engine e, e.g. dot_avx2.
func specName(pf ParsedFunc, e Engine) string {
	return namesOf(pf).lower + e.Suffix()
}

func paramNames(pf ParsedFunc) []string {
	return lo.Map(pf.Params, func(p Param, i int) string {
		if p.Name == "" || p.Name == "_" {
			return fmt.Sprintf("p%d", i)
		}
		return p.Name
	})
}

// signature renders "(a []float32, b []float32) float32".
func signature(pf ParsedFunc) string {
	pn := paramNames(pf)
	params := lo.Map(pf.Params, func(p Param, i int) string { return pn[i] + " " + p.Type })
	s := "(" + strings.Join(params, ", ") + ")"
	switch len(pf.Returns) {
	case 0:
	case 1:
		s += " " + pf.Returns[0].Type
	default:
		s += " (" + strings.Join(lo.Map(pf.Returns, func(p Param, _ int) string { return p.Type }), ", ") + ")"
	}
	return s
}

// callArgs renders the argument list forwarding every parameter.
func callArgs(pf ParsedFunc) string {
	args := strings.Join(paramNames(pf), ", ")
	if pf.Variadic {
		args += "..."
	}
	return args
}

// instantiate renders BaseDot[avx2.F32x8].
func instantiate(pf ParsedFunc, e Engine) string {
	typeArgs := lo.Map(pf.TypeParams, func(tp TypeParam, _ int) string {
		return e.Package + "." + e.TypeName(tp.Family)
	})
	return pf.Name + "[" + strings.Join(typeArgs, ", ") + "]"
}

// emitSpecialisation writes pf's copy for engine e, running under e's gate.
func emitSpecialisation(buf *bytes.Buffer, pf ParsedFunc, e Engine) {
	call := instantiate(pf, e) + "(" + callArgs(pf) + ")"
	fmt.Fprintf(buf, "func %s%s {\n", specName(pf, e), signature(pf))
	switch len(pf.Returns) {
	case 0:
		fmt.Fprintf(buf, "\t%s.Run(func() {\n\t\t%s\n\t})\n", e.Package, call)
	case 1:
		t := pf.Returns[0].Type
		fmt.Fprintf(buf, "\treturn %s.Invoke(func() %s {\n\t\treturn %s\n\t})\n", e.Package, t, call)
	default:
		results := lo.Map(pf.Returns, func(_ Param, i int) string { return fmt.Sprintf("r%d", i) })
		for i, r := range pf.Returns {
			fmt.Fprintf(buf, "\tvar %s %s\n", results[i], r.Type)
		}
		fmt.Fprintf(buf, "\t%s.Run(func() {\n\t\t%s = %s\n\t})\n", e.Package, strings.Join(results, ", "), call)
		fmt.Fprintf(buf, "\treturn %s\n", strings.Join(results, ", "))
	}
	fmt.Fprintf(buf, "}\n\n")
}

var qualifier = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\.`)

// signatureImports returns the import paths the generated signatures need.
func signatureImports(res *ParseResult) []string {
	var paths []string
	for _, pf := range res.Funcs {
		for _, p := range slices.Concat(pf.Params, pf.Returns) {
			for _, m := range qualifier.FindAllStringSubmatch(p.Type, -1) {
				if path, ok := res.Imports[m[1]]; ok {
					paths = append(paths, path)
				}
			}
		}
	}
	return lo.Uniq(paths)
}

func writeImports(buf *bytes.Buffer, paths []string) {
	paths = lo.Uniq(paths)
	slices.Sort(paths)
	buf.WriteString("import (\n")
	for _, p := range paths {
		fmt.Fprintf(buf, "\t%q\n", p)
	}
	buf.WriteString(")\n\n")
}

// wrapperDoc rewrites the Base function's doc comment for the dispatched
// wrapper.
func wrapperDoc(pf ParsedFunc) string {
	n := namesOf(pf)
	if pf.Doc == nil {
		return fmt.Sprintf("// %s runs %s on the best engine the host supports.\n", n.wrapper, pf.Name)
	}
	var b strings.Builder
	for _, c := range pf.Doc.List {
		b.WriteString(strings.Replace(c.Text, pf.Name, n.wrapper, 1))
		b.WriteByte('\n')
	}
	return b.String()
}

// EmitCommon renders z_<prefix>.go: the untagged file with the function
// types, the exported wrappers, their dispatchers and the scalar
// specialisations.
func EmitCommon(res *ParseResult, static bool) []byte {
	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", res.PackageName)
	writeImports(&buf, append([]string{modulePath + "/simd", Scalar.ImportPath()}, signatureImports(res)...))

	for _, pf := range res.Funcs {
		n := namesOf(pf)
		fmt.Fprintf(&buf, "type %s = func%s\n\n", n.funcType, signature(pf))
		call := "(" + callArgs(pf) + ")"
		if static {
			fmt.Fprintf(&buf, "var %s = simd.CompileTime(%s()...)\n\n", n.dispatcher, n.impls)
			call = n.dispatcher + call
		} else {
			fmt.Fprintf(&buf, "var %s = simd.Runtime(%q, %s()...)\n\n", n.dispatcher, n.wrapper, n.impls)
			call = n.dispatcher + ".Func()" + call
		}
		buf.WriteString(wrapperDoc(pf))
		fmt.Fprintf(&buf, "func %s%s {\n", n.wrapper, signature(pf))
		if len(pf.Returns) == 0 {
			fmt.Fprintf(&buf, "\t%s\n}\n\n", call)
		} else {
			fmt.Fprintf(&buf, "\treturn %s\n}\n\n", call)
		}
		emitSpecialisation(&buf, pf, Scalar)
	}
	return buf.Bytes()
}

// EmitArch renders z_<prefix>_<arch>.go: the specialisations for the
// architecture's engines and the candidate list of every function.
func EmitArch(res *ParseResult, arch Arch, keep map[string]bool) []byte {
	engines := lo.Filter(arch.Engines, func(e Engine, _ int) bool { return keep[e.Package] })

	var buf bytes.Buffer
	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "\n//go:build %s\n\npackage %s\n\n", arch.BuildTag, res.PackageName)
	paths := []string{modulePath + "/simd", Scalar.ImportPath()}
	paths = append(paths, lo.Map(engines, func(e Engine, _ int) string { return e.ImportPath() })...)
	writeImports(&buf, append(paths, signatureImports(res)...))

	for _, pf := range res.Funcs {
		n := namesOf(pf)
		fmt.Fprintf(&buf, "func %s() []simd.Impl[%s] {\n\treturn []simd.Impl[%s]{\n", n.impls, n.funcType, n.funcType)
		for _, e := range append(slices.Clone(engines), Scalar) {
			fmt.Fprintf(&buf, "\t\t{Level: %s.Level, Fn: %s},\n", e.Package, specName(pf, e))
		}
		buf.WriteString("\t}\n}\n\n")
		for _, e := range engines {
			emitSpecialisation(&buf, pf, e)
		}
	}
	return buf.Bytes()
}

// formatSource runs goimports over generated code. On failure the
// unformatted source is returned with the error so it can be inspected.
func formatSource(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return src, fmt.Errorf("format %s: %w", filename, err)
	}
	return out, nil
}
