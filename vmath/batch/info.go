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

package batch

import (
	"strings"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"
)

// RuntimeInfo describes the acceleration backing the float32 and float64
// slice kernels.
type RuntimeInfo struct {
	// Features names the CPU features the kernels were compiled against.
	Features string

	// Float32Accelerated reports whether []float32 operations run on SIMD
	// assembly rather than the pure Go fallback.
	Float32Accelerated bool

	// Float64Accelerated is the same for []float64 operations.
	Float64Accelerated bool
}

// Info reports how the slice kernels execute on this machine. Scalar types
// other than float32 and float64 always use plain loops.
func Info() RuntimeInfo {
	i32 := vek32.Info()
	i64 := vek.Info()
	return RuntimeInfo{
		Features:           strings.Join(i32.CPUFeatures, " "),
		Float32Accelerated: i32.Acceleration,
		Float64Accelerated: i64.Acceleration,
	}
}
