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

// Package batch provides elementwise and reduction operations over flat
// slices of scalars, for workloads that stream many vectors at once rather
// than operating on one small aggregate.
//
// Slices of float32 and float64 route through the vek SIMD kernels; every
// other scalar type falls back to a plain loop. Binary operations panic if
// the operand lengths differ, matching the underlying kernels.
package batch

import (
	"fmt"
	stdmath "math"

	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-vmath/vmath"
)

func checkLen[T vmath.Scalar](op string, a, b []T) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("vmath/batch: %s: length mismatch %d != %d", op, len(a), len(b)))
	}
}

func checkDst[T vmath.Scalar](op string, dst, a []T) {
	if len(dst) < len(a) {
		panic(fmt.Sprintf("vmath/batch: %s: destination length %d < %d", op, len(dst), len(a)))
	}
}

// Add writes a[i] + b[i] into dst.
func Add[T vmath.Scalar](dst, a, b []T) {
	checkLen("Add", a, b)
	checkDst("Add", dst, a)
	switch d := any(dst).(type) {
	case []float32:
		vek32.Add_Into(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		vek.Add_Into(d, any(a).([]float64), any(b).([]float64))
	default:
		for i := range a {
			dst[i] = a[i] + b[i]
		}
	}
}

// Sub writes a[i] - b[i] into dst.
func Sub[T vmath.Scalar](dst, a, b []T) {
	checkLen("Sub", a, b)
	checkDst("Sub", dst, a)
	switch d := any(dst).(type) {
	case []float32:
		vek32.Sub_Into(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		vek.Sub_Into(d, any(a).([]float64), any(b).([]float64))
	default:
		for i := range a {
			dst[i] = a[i] - b[i]
		}
	}
}

// Mul writes a[i] * b[i] into dst.
func Mul[T vmath.Scalar](dst, a, b []T) {
	checkLen("Mul", a, b)
	checkDst("Mul", dst, a)
	switch d := any(dst).(type) {
	case []float32:
		vek32.Mul_Into(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		vek.Mul_Into(d, any(a).([]float64), any(b).([]float64))
	default:
		for i := range a {
			dst[i] = a[i] * b[i]
		}
	}
}

// Div writes a[i] / b[i] into dst.
func Div[T vmath.Scalar](dst, a, b []T) {
	checkLen("Div", a, b)
	checkDst("Div", dst, a)
	switch d := any(dst).(type) {
	case []float32:
		vek32.Div_Into(d, any(a).([]float32), any(b).([]float32))
	case []float64:
		vek.Div_Into(d, any(a).([]float64), any(b).([]float64))
	default:
		for i := range a {
			dst[i] = a[i] / b[i]
		}
	}
}

// Scale writes a[i] * s into dst.
func Scale[T vmath.Scalar](dst, a []T, s T) {
	checkDst("Scale", dst, a)
	switch d := any(dst).(type) {
	case []float32:
		vek32.MulNumber_Into(d, any(a).([]float32), any(s).(float32))
	case []float64:
		vek.MulNumber_Into(d, any(a).([]float64), any(s).(float64))
	default:
		for i := range a {
			dst[i] = a[i] * s
		}
	}
}

// Dot returns the dot product of a and b, accumulated left to right in the
// fallback path.
func Dot[T vmath.Scalar](a, b []T) T {
	checkLen("Dot", a, b)
	switch av := any(a).(type) {
	case []float32:
		return any(vek32.Dot(av, any(b).([]float32))).(T)
	case []float64:
		return any(vek.Dot(av, any(b).([]float64))).(T)
	default:
		var acc T
		for i := range a {
			acc += a[i] * b[i]
		}
		return acc
	}
}

// Norm returns the Euclidean norm of a.
func Norm[T vmath.Floats](a []T) T {
	switch av := any(a).(type) {
	case []float32:
		return any(vek32.Norm(av)).(T)
	case []float64:
		return any(vek.Norm(av)).(T)
	default:
		var acc float64
		for _, x := range a {
			acc += float64(x) * float64(x)
		}
		return T(stdmath.Sqrt(acc))
	}
}

// Distance returns the Euclidean distance between a and b.
func Distance[T vmath.Floats](a, b []T) T {
	checkLen("Distance", a, b)
	switch av := any(a).(type) {
	case []float32:
		return any(vek32.Distance(av, any(b).([]float32))).(T)
	case []float64:
		return any(vek.Distance(av, any(b).([]float64))).(T)
	default:
		var acc float64
		for i := range a {
			d := float64(a[i]) - float64(b[i])
			acc += d * d
		}
		return T(stdmath.Sqrt(acc))
	}
}

// Normalize divides every element of v by Norm(v), in place. A zero slice
// norm yields NaN elements, the same as the scalar division.
func Normalize[T vmath.Floats](v []T) {
	if len(v) == 0 {
		return
	}
	switch vv := any(v).(type) {
	case []float32:
		vek32.DivNumber_Inplace(vv, vek32.Norm(vv))
	case []float64:
		vek.DivNumber_Inplace(vv, vek.Norm(vv))
	default:
		n := Norm(v)
		for i := range v {
			v[i] /= n
		}
	}
}

// Lerp writes a[i]*(1-t) + b[i]*t into dst, the same plain formula the
// aggregate LerpV functions use.
func Lerp[T vmath.Floats](dst, a, b []T, t T) {
	checkLen("Lerp", a, b)
	checkDst("Lerp", dst, a)
	for i := range a {
		dst[i] = a[i]*(1-t) + b[i]*t
	}
}
