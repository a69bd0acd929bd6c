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
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParsedFunc is a Base function found in the input file.
type ParsedFunc struct {
	Name       string      // BaseDot
	TypeParams []TypeParam // register type parameters, in declaration order
	Params     []Param
	Returns    []Param
	Variadic   bool              // last parameter is ...T
	Doc        *ast.CommentGroup // doc comment of the Base function
	Private    bool              // "base" prefix: the dispatched wrapper is unexported
}

// TypeParam is one register type parameter and the family its constraint
// selects.
type TypeParam struct {
	Name       string // F
	Constraint string // simd.Float32s[F]
	Family     Family
}

// Param is a function parameter or result.
type Param struct {
	Name string // may be empty for results
	Type string // type expression as source text
}

// Skipped records a Base function that cannot be dispatched and why.
type Skipped struct {
	Name   string
	Reason string
}

// ParseResult is everything the emitter needs from one input file.
type ParseResult struct {
	PackageName string
	Imports     map[string]string // local name -> import path
	Funcs       []ParsedFunc
	Skipped     []Skipped
}

// Parse reads filename and collects its Base functions.
func Parse(filename string) (*ParseResult, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse file: %w", err)
	}

	result := &ParseResult{
		PackageName: file.Name.Name,
		Imports:     make(map[string]string),
	}
	for _, imp := range file.Imports {
		importPath, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", imp.Path.Value, err)
		}
		localName := path.Base(importPath)
		if imp.Name != nil {
			localName = imp.Name.Name
		}
		if localName != "_" && localName != "." {
			result.Imports[localName] = importPath
		}
	}

	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Recv != nil || !hasBasePrefix(funcDecl.Name.Name) {
			continue
		}
		pf, reason := parseFunc(funcDecl)
		if reason != "" {
			result.Skipped = append(result.Skipped, Skipped{Name: funcDecl.Name.Name, Reason: reason})
			continue
		}
		result.Funcs = append(result.Funcs, pf)
	}
	return result, nil
}

// hasBasePrefix returns true if the name starts with "Base" or "base".
func hasBasePrefix(name string) bool {
	return strings.HasPrefix(name, "Base") || strings.HasPrefix(name, "base")
}

// parseFunc extracts one Base function. A non-empty reason means the
// function cannot be dispatched.
func parseFunc(fd *ast.FuncDecl) (ParsedFunc, string) {
	pf := ParsedFunc{
		Name:    fd.Name.Name,
		Doc:     fd.Doc,
		Private: strings.HasPrefix(fd.Name.Name, "base"),
	}
	if fd.Type.TypeParams == nil {
		return pf, "no type parameters"
	}
	for _, field := range fd.Type.TypeParams.List {
		constraint := exprToString(field.Type)
		fam, ok := familyOf(constraint)
		if !ok {
			return pf, fmt.Sprintf("type parameter constraint %s is not a register family", constraint)
		}
		for _, name := range field.Names {
			pf.TypeParams = append(pf.TypeParams, TypeParam{Name: name.Name, Constraint: constraint, Family: fam})
		}
	}

	registers := lo.SliceToMap(pf.TypeParams, func(tp TypeParam) (string, bool) { return tp.Name, true })
	fields := func(list *ast.FieldList) ([]Param, bool) {
		if list == nil {
			return nil, true
		}
		var out []Param
		for _, field := range list.List {
			if mentions(field.Type, registers) {
				return nil, false
			}
			typ := exprToString(field.Type)
			if len(field.Names) == 0 {
				out = append(out, Param{Type: typ})
				continue
			}
			for _, name := range field.Names {
				out = append(out, Param{Name: name.Name, Type: typ})
			}
		}
		return out, true
	}

	var ok bool
	if pf.Params, ok = fields(fd.Type.Params); !ok {
		return pf, "register type in parameters"
	}
	if pf.Returns, ok = fields(fd.Type.Results); !ok {
		return pf, "register type in results"
	}
	if n := len(pf.Params); n > 0 {
		pf.Variadic = strings.HasPrefix(pf.Params[n-1].Type, "...")
	}
	return pf, ""
}

// mentions reports whether expr refers to any of the named identifiers.
// A register type only exists under its engine's gate, so functions that
// pass registers in or out have no engine-independent signature.
func mentions(expr ast.Expr, names map[string]bool) bool {
	found := false
	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.SelectorExpr:
			// pkg.Name refers to another package.
			return false
		case *ast.Ident:
			found = found || names[n.Name]
		}
		return !found
	})
	return found
}

// exprToString renders a type expression as source text.
func exprToString(expr ast.Expr) string {
	if expr == nil {
		return ""
	}
	switch e := expr.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return exprToString(e.X) + "." + e.Sel.Name
	case *ast.StarExpr:
		return "*" + exprToString(e.X)
	case *ast.Ellipsis:
		return "..." + exprToString(e.Elt)
	case *ast.ArrayType:
		if e.Len == nil {
			return "[]" + exprToString(e.Elt)
		}
		return "[" + exprToString(e.Len) + "]" + exprToString(e.Elt)
	case *ast.MapType:
		return "map[" + exprToString(e.Key) + "]" + exprToString(e.Value)
	case *ast.ChanType:
		switch e.Dir {
		case ast.SEND:
			return "chan<- " + exprToString(e.Value)
		case ast.RECV:
			return "<-chan " + exprToString(e.Value)
		}
		return "chan " + exprToString(e.Value)
	case *ast.IndexExpr:
		return exprToString(e.X) + "[" + exprToString(e.Index) + "]"
	case *ast.IndexListExpr:
		args := lo.Map(e.Indices, func(x ast.Expr, _ int) string { return exprToString(x) })
		return exprToString(e.X) + "[" + strings.Join(args, ", ") + "]"
	case *ast.BasicLit:
		return e.Value
	case *ast.BinaryExpr:
		return exprToString(e.X) + " " + e.Op.String() + " " + exprToString(e.Y)
	case *ast.ParenExpr:
		return "(" + exprToString(e.X) + ")"
	case *ast.InterfaceType:
		if len(e.Methods.List) == 0 {
			return "any"
		}
		return "interface{...}"
	case *ast.FuncType:
		params := fieldTypes(e.Params)
		results := fieldTypes(e.Results)
		s := "func(" + strings.Join(params, ", ") + ")"
		switch len(results) {
		case 0:
		case 1:
			s += " " + results[0]
		default:
			s += " (" + strings.Join(results, ", ") + ")"
		}
		return s
	default:
		return fmt.Sprintf("%T", expr)
	}
}

func fieldTypes(list *ast.FieldList) []string {
	if list == nil {
		return nil
	}
	var out []string
	for _, field := range list.List {
		typ := exprToString(field.Type)
		out = append(out, lo.Times(max(1, len(field.Names)), func(int) string { return typ })...)
	}
	return out
}
