// Copyright 2025 go-vmath Authors
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

// Package main provides the vmathinfo CLI, which reports the SIMD dispatch
// target detected at startup and the register geometry per scalar type.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-vmath/vmath"
	"github.com/ajroetker/go-vmath/vmath/batch"
)

var version = "0.1.0"

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vmathinfo",
		Short: "Report the SIMD capabilities the vmath library detected",
		Long: `vmathinfo prints the dispatch target the vmath library selected for
this machine: the instruction set, the register width, and how many lanes a
full register holds for each scalar type.

Set VMATH_NO_SIMD=1 to force the scalar fallback and verify that results
are unchanged.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "arch:            %s\n", runtime.GOARCH)
			fmt.Fprintf(out, "dispatch target: %s\n", vmath.CurrentName())
			fmt.Fprintf(out, "dispatch level:  %s\n", vmath.CurrentLevel())
			fmt.Fprintf(out, "register width:  %d bytes\n", vmath.CurrentWidth())
			if vmath.NoSimdEnv() {
				fmt.Fprintln(out, "note:            VMATH_NO_SIMD is set, scalar fallback forced")
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "lanes per full register:")
			fmt.Fprintf(out, "  float32: %d\n", vmath.MaxLanes[float32]())
			fmt.Fprintf(out, "  float64: %d\n", vmath.MaxLanes[float64]())
			fmt.Fprintf(out, "  int32:   %d\n", vmath.MaxLanes[int32]())
			fmt.Fprintf(out, "  int64:   %d\n", vmath.MaxLanes[int64]())
			fmt.Fprintf(out, "  uint32:  %d\n", vmath.MaxLanes[uint32]())
			fmt.Fprintf(out, "  uint64:  %d\n", vmath.MaxLanes[uint64]())

			info := batch.Info()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "batch slice kernels:")
			fmt.Fprintf(out, "  cpu features: %s\n", info.Features)
			fmt.Fprintf(out, "  float32 accelerated: %v\n", info.Float32Accelerated)
			fmt.Fprintf(out, "  float64 accelerated: %v\n", info.Float64Accelerated)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
