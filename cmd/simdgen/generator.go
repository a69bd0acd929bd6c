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
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Generator turns the Base functions of one or more input files into
// per-engine specialisations and dispatched wrappers.
type Generator struct {
	Inputs    []string        // *_base.go files
	OutputDir string          // defaults to each input's directory
	Prefix    string          // output file prefix; only valid with a single input
	Engines   map[string]bool // engine packages to generate; see ParseEngines
	Static    bool            // compile-time selection instead of a runtime Dispatcher
}

// Result describes the files written for one input.
type Result struct {
	Input   string
	Files   []string
	Funcs   []string
	Skipped []Skipped
}

// Run generates every input concurrently. Results are in input order.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	if g.Prefix != "" && len(g.Inputs) > 1 {
		return nil, fmt.Errorf("--prefix needs exactly one input, got %d", len(g.Inputs))
	}
	if g.Engines == nil {
		g.Engines, _ = ParseEngines("all")
	}

	results := make([]Result, len(g.Inputs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, input := range g.Inputs {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := g.generate(input)
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (g *Generator) generate(input string) (Result, error) {
	res, err := Parse(input)
	if err != nil {
		return Result{}, fmt.Errorf("parse input: %w", err)
	}
	r := Result{Input: input, Skipped: res.Skipped}
	if len(res.Funcs) == 0 {
		return r, fmt.Errorf("no dispatchable Base functions found")
	}
	for _, pf := range res.Funcs {
		r.Funcs = append(r.Funcs, pf.Name)
	}

	dir := g.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	prefix := g.Prefix
	if prefix == "" {
		prefix = outputPrefix(input)
	}

	write := func(name string, src []byte) error {
		path := filepath.Join(dir, name)
		formatted, err := formatSource(path, src)
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		r.Files = append(r.Files, path)
		return nil
	}

	if err := write("z_"+prefix+".go", EmitCommon(res, g.Static)); err != nil {
		return r, err
	}
	for _, arch := range Archs() {
		if err := write("z_"+prefix+"_"+arch.Name+".go", EmitArch(res, arch, g.Engines)); err != nil {
			return r, err
		}
	}
	return r, nil
}

// outputPrefix derives "vecops" from "vecops_base.go".
func outputPrefix(input string) string {
	name := strings.TrimSuffix(filepath.Base(input), ".go")
	return strings.TrimSuffix(name, "_base")
}
