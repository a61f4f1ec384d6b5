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

package vmath

// This file models fixed-width vector registers. A regN[T] has the exact
// memory layout of N contiguous scalars, so a VecN aggregate of the same
// scalar type can be reinterpreted into it byte for byte (see bitcast.go).
// The lane loops below are written over fixed-size arrays so the compiler
// unrolls and vectorizes them; they are the single source of truth for the
// register path and use the same per-lane kernels as the scalar fallback,
// which keeps the two paths bit-identical.

// vop identifies an elementwise binary register operation.
type vop uint8

const (
	vadd vop = iota
	vsub
	vmul
	vdiv
	vmin
	vmax
)

// padFor returns the value placed in unused register lanes when a
// 3-component vector is widened to a 4-lane register. Division pads with
// one so the dead lane cannot fault or produce a NaN that traps under
// floating-point exception reporting.
func padFor[T Scalar](op vop) T {
	if op == vdiv {
		return T(1)
	}
	return T(0)
}

// reg2 is a 2-lane register (64-bit for float32, 128-bit for float64).
type reg2[T Scalar] [2]T

func (a reg2[T]) bin(op vop, b reg2[T]) reg2[T] {
	var r reg2[T]
	switch op {
	case vadd:
		for i := range a {
			r[i] = a[i] + b[i]
		}
	case vsub:
		for i := range a {
			r[i] = a[i] - b[i]
		}
	case vmul:
		for i := range a {
			r[i] = a[i] * b[i]
		}
	case vdiv:
		for i := range a {
			r[i] = a[i] / b[i]
		}
	case vmin:
		for i := range a {
			r[i] = minScalar(a[i], b[i])
		}
	case vmax:
		for i := range a {
			r[i] = maxScalar(a[i], b[i])
		}
	}
	return r
}

func (a reg2[T]) abs() reg2[T] {
	var r reg2[T]
	for i := range a {
		r[i] = absScalar(a[i])
	}
	return r
}

func (a reg2[T]) neg() reg2[T] {
	var r reg2[T]
	for i := range a {
		r[i] = -a[i]
	}
	return r
}

func (a reg2[T]) eq(b reg2[T]) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// reg4 is a 4-lane register (128-bit for float32, 256-bit for float64).
type reg4[T Scalar] [4]T

func (a reg4[T]) bin(op vop, b reg4[T]) reg4[T] {
	var r reg4[T]
	switch op {
	case vadd:
		for i := range a {
			r[i] = a[i] + b[i]
		}
	case vsub:
		for i := range a {
			r[i] = a[i] - b[i]
		}
	case vmul:
		for i := range a {
			r[i] = a[i] * b[i]
		}
	case vdiv:
		for i := range a {
			r[i] = a[i] / b[i]
		}
	case vmin:
		for i := range a {
			r[i] = minScalar(a[i], b[i])
		}
	case vmax:
		for i := range a {
			r[i] = maxScalar(a[i], b[i])
		}
	}
	return r
}

func (a reg4[T]) abs() reg4[T] {
	var r reg4[T]
	for i := range a {
		r[i] = absScalar(a[i])
	}
	return r
}

func (a reg4[T]) neg() reg4[T] {
	var r reg4[T]
	for i := range a {
		r[i] = -a[i]
	}
	return r
}

func (a reg4[T]) eq(b reg4[T]) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// reg8 is an 8-lane register, used for whole-matrix comparisons where two
// rows fit one 256-bit (float32) or 512-bit (float64) register.
type reg8[T Scalar] [8]T

func (a reg8[T]) eq(b reg8[T]) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reg16 is a 16-lane register, used for whole-matrix comparisons where the
// full 4x4 float32 matrix fits one 512-bit register.
type reg16[T Scalar] [16]T

func (a reg16[T]) eq(b reg16[T]) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
