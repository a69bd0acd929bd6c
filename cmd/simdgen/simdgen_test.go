package main

import (
	"bytes"
	"context"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-simdeez/simd"
)

const baseSource = `package kernels

import (
	"io"

	"github.com/ajroetker/go-simdeez/simd"
)

// BaseDot returns the dot product of a and b.
func BaseDot[F simd.Float32s[F]](a, b []float32) float32 {
	return 0
}

func BaseBounds[I simd.Int32s[I]](a []int32) (lo, hi int32) {
	return 0, 0
}

func BaseLog[F simd.Float64Conv[F, I, S], I simd.Int64s[I], S simd.Float32s[S]](w io.Writer, xs ...float64) {
}

func baseFill[F simd.Float32s[F]](dst []float32, x float32) {}

func BaseStep[F simd.Float32s[F]](v F) F {
	return v
}

func BaseAny[T any](x T) T {
	return x
}

func helper() {}
`

func writeBase(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kernels_base.go")
	require.NoError(t, os.WriteFile(path, []byte(baseSource), 0o644))
	return path
}

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		constraint string
		want       Family
		ok         bool
	}{
		{"simd.Float32s[F]", FamilyF32, true},
		{"simd.Int32Conv[I, F, N, W]", FamilyI32, true},
		{"Int8s[V]", FamilyI8, true},
		{"simd.Float64Conv[D, I, S]", FamilyF64, true},
		{"any", "", false},
		{"simd.Lanes", "", false},
	}
	for _, tt := range tests {
		got, ok := familyOf(tt.constraint)
		assert.Equal(t, tt.ok, ok, tt.constraint)
		assert.Equal(t, tt.want, got, tt.constraint)
	}
}

func TestEngineTypeNames(t *testing.T) {
	assert.Equal(t, "F32x8", AVX2.TypeName(FamilyF32))
	assert.Equal(t, "I8x32", AVX2.TypeName(FamilyI8))
	assert.Equal(t, "I64x2", NEON.TypeName(FamilyI64))
	assert.Equal(t, "I16x8", SSE41.TypeName(FamilyI16))
	assert.Equal(t, "F64x1", Scalar.TypeName(FamilyF64))
	assert.Equal(t, "github.com/ajroetker/go-simdeez/simd/engines/wasm", WASM.ImportPath())
}

func TestParseEngines(t *testing.T) {
	keep, err := ParseEngines("AVX2, neon")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"scalar": true, "avx2": true, "neon": true}, keep)

	all, err := ParseEngines("all")
	require.NoError(t, err)
	assert.Len(t, all, 6)

	_, err = ParseEngines("avx512")
	assert.ErrorContains(t, err, `unknown engine "avx512"`)
}

func TestParse(t *testing.T) {
	res, err := Parse(writeBase(t))
	require.NoError(t, err)
	assert.Equal(t, "kernels", res.PackageName)
	assert.Equal(t, "io", res.Imports["io"])

	var got []string
	for _, pf := range res.Funcs {
		got = append(got, pf.Name)
	}
	assert.Equal(t, []string{"BaseDot", "BaseBounds", "BaseLog", "baseFill"}, got)

	wantSkipped := []Skipped{
		{Name: "BaseStep", Reason: "register type in parameters"},
		{Name: "BaseAny", Reason: "type parameter constraint any is not a register family"},
	}
	if diff := cmp.Diff(wantSkipped, res.Skipped); diff != "" {
		t.Errorf("Skipped (-want +got):\n%s", diff)
	}

	dot := res.Funcs[0]
	assert.Equal(t, []Param{{Name: "a", Type: "[]float32"}, {Name: "b", Type: "[]float32"}}, dot.Params)
	assert.Equal(t, "BaseDot returns the dot product of a and b.", strings.TrimSpace(dot.Doc.Text()))

	log := res.Funcs[2]
	assert.True(t, log.Variadic)
	assert.Equal(t, []Family{FamilyF64, FamilyI64, FamilyF32},
		[]Family{log.TypeParams[0].Family, log.TypeParams[1].Family, log.TypeParams[2].Family})
	assert.True(t, res.Funcs[3].Private)
}

func TestEmitSpecialisation(t *testing.T) {
	res, err := Parse(writeBase(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	emitSpecialisation(&buf, res.Funcs[0], AVX2)
	want := `func dot_avx2(a []float32, b []float32) float32 {
	return avx2.Invoke(func() float32 {
		return BaseDot[avx2.F32x8](a, b)
	})
}

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("single result (-want +got):\n%s", diff)
	}

	buf.Reset()
	emitSpecialisation(&buf, res.Funcs[1], NEON)
	want = `func bounds_neon(a []int32) (int32, int32) {
	var r0 int32
	var r1 int32
	neon.Run(func() {
		r0, r1 = BaseBounds[neon.I32x4](a)
	})
	return r0, r1
}

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("two results (-want +got):\n%s", diff)
	}

	buf.Reset()
	emitSpecialisation(&buf, res.Funcs[2], SSE2)
	assert.Contains(t, buf.String(), "sse2.Run(func() {\n\t\tBaseLog[sse2.F64x2, sse2.I64x2, sse2.F32x4](w, xs...)\n\t})")
}

func TestEmitArch(t *testing.T) {
	res, err := Parse(writeBase(t))
	require.NoError(t, err)

	keep, err := ParseEngines("avx2,sse2")
	require.NoError(t, err)
	src := string(EmitArch(res, Archs()[0], keep))

	assert.Contains(t, src, "//go:build 386 || amd64\n")
	assert.Contains(t, src, "{Level: avx2.Level, Fn: dot_avx2},\n\t\t{Level: sse2.Level, Fn: dot_sse2},\n\t\t{Level: scalar.Level, Fn: dot_scalar},")
	assert.NotContains(t, src, "sse41")
	assert.Contains(t, src, `"io"`)

	other := string(EmitArch(res, Archs()[3], keep))
	assert.Contains(t, other, "{Level: scalar.Level, Fn: fill_scalar},")
	assert.NotContains(t, other, "avx2")
}

func TestEmitCommon(t *testing.T) {
	res, err := Parse(writeBase(t))
	require.NoError(t, err)

	src := string(EmitCommon(res, false))
	assert.Contains(t, src, "type dotFunc = func(a []float32, b []float32) float32\n")
	assert.Contains(t, src, `var dotDispatcher = simd.Runtime("Dot", dotImpls()...)`)
	assert.Contains(t, src, "// Dot returns the dot product of a and b.\nfunc Dot(a []float32, b []float32) float32 {\n\treturn dotDispatcher.Func()(a, b)\n}")
	assert.Contains(t, src, "func fill(dst []float32, x float32) {\n\tfillDispatcher.Func()(dst, x)\n}")
	assert.Contains(t, src, "// Bounds runs BaseBounds on the best engine the host supports.\n")
	assert.Contains(t, src, "func dot_scalar(")

	static := string(EmitCommon(res, true))
	assert.Contains(t, static, "var dotDispatcher = simd.CompileTime(dotImpls()...)")
	assert.Contains(t, static, "return dotDispatcher(a, b)")
}

func TestGenerate(t *testing.T) {
	input := writeBase(t)
	out := t.TempDir()
	g := &Generator{Inputs: []string{input}, OutputDir: out}
	results, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)

	var names []string
	for _, f := range results[0].Files {
		names = append(names, filepath.Base(f))
	}
	assert.Equal(t, []string{
		"z_kernels.go", "z_kernels_x86.go", "z_kernels_arm64.go", "z_kernels_wasm.go", "z_kernels_other.go",
	}, names)

	fset := token.NewFileSet()
	for _, f := range results[0].Files {
		src, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), generatedHeader), f)
		_, err = parser.ParseFile(fset, f, src, parser.AllErrors)
		assert.NoError(t, err, f)
	}
}

func TestGenerateErrors(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty_base.go")
	require.NoError(t, os.WriteFile(empty, []byte("package empty\n"), 0o644))

	g := &Generator{Inputs: []string{empty}}
	_, err := g.Run(context.Background())
	assert.ErrorContains(t, err, "no dispatchable Base functions")

	g = &Generator{Inputs: []string{empty, empty}, Prefix: "x"}
	_, err = g.Run(context.Background())
	assert.ErrorContains(t, err, "--prefix needs exactly one input")

	_, err = (&Generator{Inputs: []string{filepath.Join(t.TempDir(), "missing.go")}}).Run(context.Background())
	assert.ErrorContains(t, err, "parse input")
}

func TestGenerateCommand(t *testing.T) {
	input := writeBase(t)
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"generate", "--engines", "neon", input})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, stdout.String(), "generated BaseDot, BaseBounds, BaseLog, baseFill in 5 files")
	assert.Contains(t, stderr.String(), "skipping BaseStep: register type in parameters")

	x86, err := os.ReadFile(filepath.Join(filepath.Dir(input), "z_kernels_x86.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(x86), "avx2")
}

func TestInfoCommand(t *testing.T) {
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"info"})
	require.NoError(t, cmd.Execute())

	out := stdout.String()
	assert.Contains(t, out, "engines:   scalar")
	assert.Contains(t, out, "best:      "+simd.BestLevel().String())
	assert.Contains(t, out, "target:    "+simd.TargetLevel().String())
}
