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
	"fmt"

	"github.com/ajroetker/go-vmath/vmath"
)

// Packed-triple operations. Slices hold 3-component vectors back to back
// (x0, y0, z0, x1, y1, z1, ...) and must have a length divisible by three.

func checkTriples[T vmath.Scalar](op string, s []T) int {
	if len(s)%3 != 0 {
		panic(fmt.Sprintf("vmath/batch: %s: slice length %d is not a multiple of 3", op, len(s)))
	}
	return len(s) / 3
}

// Cross3 writes the per-triple cross product of a and b into dst.
func Cross3[T vmath.Scalar](dst, a, b []T) {
	n := checkTriples("Cross3", a)
	checkLen("Cross3", a, b)
	checkDst("Cross3", dst, a)
	for i := 0; i < n; i++ {
		va := vmath.Vec3FromSlice(a[i*3:])
		vb := vmath.Vec3FromSlice(b[i*3:])
		vmath.CrossV3(va, vb).CopyTo(dst[i*3:])
	}
}

// Dot3 writes the per-triple dot product of a and b into dst, which holds
// one scalar per triple.
func Dot3[T vmath.Scalar](dst []T, a, b []T) {
	n := checkTriples("Dot3", a)
	checkLen("Dot3", a, b)
	if len(dst) < n {
		panic(fmt.Sprintf("vmath/batch: Dot3: destination length %d < %d", len(dst), n))
	}
	for i := 0; i < n; i++ {
		va := vmath.Vec3FromSlice(a[i*3:])
		vb := vmath.Vec3FromSlice(b[i*3:])
		dst[i] = va.Dot(vb)
	}
}

// Normalize3 normalizes each packed triple of v in place, leaving every
// triple with unit length. Zero triples become NaN, as in the aggregate
// NormalizeV3.
func Normalize3[T vmath.Floats](v []T) {
	n := checkTriples("Normalize3", v)
	for i := 0; i < n; i++ {
		t := vmath.Vec3FromSlice(v[i*3:])
		vmath.NormalizeV3(t).CopyTo(v[i*3:])
	}
}

// Length3 writes the Euclidean length of each packed triple of v into dst.
func Length3[T vmath.Floats](dst []T, v []T) {
	n := checkTriples("Length3", v)
	if len(dst) < n {
		panic(fmt.Sprintf("vmath/batch: Length3: destination length %d < %d", len(dst), n))
	}
	for i := 0; i < n; i++ {
		dst[i] = vmath.LengthV3(vmath.Vec3FromSlice(v[i*3:]))
	}
}
