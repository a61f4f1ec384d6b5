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

import "fmt"

// Vec2 is an immutable 2-component vector of scalar type T.
// The components are stored contiguously in declared order with no interior
// padding, which is what permits reinterpreting the aggregate as a register
// (register.go) or as a shorter/longer vector of the same scalar type.
type Vec2[T Scalar] struct {
	X, Y T
}

// SplatV2 returns a vector with both components set to v.
func SplatV2[T Scalar](v T) Vec2[T] {
	return Vec2[T]{X: v, Y: v}
}

// ZeroV2 returns the all-zero vector.
func ZeroV2[T Scalar]() Vec2[T] {
	return Vec2[T]{}
}

// OneV2 returns the all-ones vector.
func OneV2[T Scalar]() Vec2[T] {
	return Vec2[T]{X: 1, Y: 1}
}

// UnitXV2 returns (1, 0).
func UnitXV2[T Scalar]() Vec2[T] {
	return Vec2[T]{X: 1}
}

// UnitYV2 returns (0, 1).
func UnitYV2[T Scalar]() Vec2[T] {
	return Vec2[T]{Y: 1}
}

// Vec2FromSlice constructs a vector from the first two elements of s.
// It panics if s holds fewer than two elements.
func Vec2FromSlice[T Scalar](s []T) Vec2[T] {
	if len(s) < 2 {
		panic(fmt.Sprintf("vmath: Vec2FromSlice: slice length %d < 2", len(s)))
	}
	return Vec2[T]{X: s[0], Y: s[1]}
}

// At returns the component at index i (0 = X, 1 = Y).
// It panics if i is out of range.
func (v Vec2[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		panic(fmt.Sprintf("vmath: Vec2 index %d out of range [0, 2)", i))
	}
}

// WithX returns a copy of v with the X component replaced.
func (v Vec2[T]) WithX(x T) Vec2[T] {
	v.X = x
	return v
}

// WithY returns a copy of v with the Y component replaced.
func (v Vec2[T]) WithY(y T) Vec2[T] {
	v.Y = y
	return v
}

// CopyTo writes the components into dst in declared order.
// It panics if dst holds fewer than two elements.
func (v Vec2[T]) CopyTo(dst []T) {
	if len(dst) < 2 {
		panic(fmt.Sprintf("vmath: Vec2.CopyTo: destination length %d < 2", len(dst)))
	}
	dst[0] = v.X
	dst[1] = v.Y
}

// TryCopyTo writes the components into dst and reports whether dst was
// large enough. On failure dst is left unmodified.
func (v Vec2[T]) TryCopyTo(dst []T) bool {
	if len(dst) < 2 {
		return false
	}
	dst[0] = v.X
	dst[1] = v.Y
	return true
}

// Slice returns the components as a freshly allocated slice.
func (v Vec2[T]) Slice() []T {
	return []T{v.X, v.Y}
}
