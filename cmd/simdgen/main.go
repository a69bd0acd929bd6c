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

// Command simdgen generates per-engine specialisations of portable SIMD
// functions and the dispatchers that choose between them.
//
// Usage:
//
//	simdgen generate vecops_base.go
//	simdgen generate --engines avx2,neon --static kernels_base.go
//	simdgen info
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/go-simdeez/cmd/simdgen generate $GOFILE
//
// generate reads the Base functions of each input, generic over register
// types constrained by the simd families (simd.Float32s[F] and so on), and
// writes:
//  1. z_<prefix>.go with the exported wrappers, their dispatchers and the
//     scalar specialisations
//  2. z_<prefix>_{x86,arm64,wasm,other}.go with the specialisations of each
//     architecture's engines, selected by build tags
//
// info prints what the running host supports.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-simdeez/simd"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "simdgen",
		Short:        "Generate dispatched SIMD specialisations from Base functions",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newInfoCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		outputDir string
		prefix    string
		engines   string
		static    bool
	)
	cmd := &cobra.Command{
		Use:   "generate [flags] FILE...",
		Short: "Generate specialisations and dispatchers for *_base.go files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keep, err := ParseEngines(engines)
			if err != nil {
				return err
			}
			g := &Generator{
				Inputs:    args,
				OutputDir: outputDir,
				Prefix:    prefix,
				Engines:   keep,
				Static:    static,
			}
			results, err := g.Run(cmd.Context())
			if err != nil {
				return err
			}
			for _, r := range results {
				for _, s := range r.Skipped {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: skipping %s: %s\n", r.Input, s.Name, s.Reason)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: generated %s in %d files\n", r.Input, strings.Join(r.Funcs, ", "), len(r.Files))
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&outputDir, "output", "o", "", "output directory (default: next to each input)")
	flags.StringVar(&prefix, "prefix", "", "output file prefix (default: input name without _base.go)")
	flags.StringVar(&engines, "engines", "all", "comma-separated engines to generate (scalar is always included)")
	flags.BoolVar(&static, "static", false, "select the engine at compile time from build tags instead of probing the CPU")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the engines this host supports",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			writeInfo(cmd, simd.Describe())
		},
	}
}

func writeInfo(cmd *cobra.Command, h simd.HostInfo) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "arch:      %s\n", h.Arch)
	if h.Vendor != "" || h.Brand != "" {
		fmt.Fprintf(w, "cpu:       %s %s (%d logical cores)\n", h.Vendor, h.Brand, h.Cores)
	}
	if len(h.CPUFeatures) > 0 {
		fmt.Fprintf(w, "features:  %s\n", strings.Join(h.CPUFeatures, " "))
	}
	supported := make([]string, len(h.Supported))
	for i, l := range h.Supported {
		supported[i] = l.String()
	}
	fmt.Fprintf(w, "engines:   %s\n", strings.Join(supported, ", "))
	fmt.Fprintf(w, "best:      %s\n", h.Best)
	fmt.Fprintf(w, "target:    %s\n", h.Target)
	if simd.NoSimdEnv() {
		fmt.Fprintf(w, "note:      %s is set, dispatch uses scalar\n", simd.EnvNoSimd)
	}
}
