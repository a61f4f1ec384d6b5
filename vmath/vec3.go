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

// Vec3 is an immutable 3-component vector of scalar type T.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// SplatV3 returns a vector with all components set to v.
func SplatV3[T Scalar](v T) Vec3[T] {
	return Vec3[T]{X: v, Y: v, Z: v}
}

// ZeroV3 returns the all-zero vector.
func ZeroV3[T Scalar]() Vec3[T] {
	return Vec3[T]{}
}

// OneV3 returns the all-ones vector.
func OneV3[T Scalar]() Vec3[T] {
	return Vec3[T]{X: 1, Y: 1, Z: 1}
}

// UnitXV3 returns (1, 0, 0).
func UnitXV3[T Scalar]() Vec3[T] {
	return Vec3[T]{X: 1}
}

// UnitYV3 returns (0, 1, 0).
func UnitYV3[T Scalar]() Vec3[T] {
	return Vec3[T]{Y: 1}
}

// UnitZV3 returns (0, 0, 1).
func UnitZV3[T Scalar]() Vec3[T] {
	return Vec3[T]{Z: 1}
}

// Vec3FromVec2 appends z to a 2-component vector.
func Vec3FromVec2[T Scalar](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: z}
}

// Vec3FromSlice constructs a vector from the first three elements of s.
// It panics if s holds fewer than three elements.
func Vec3FromSlice[T Scalar](s []T) Vec3[T] {
	if len(s) < 3 {
		panic(fmt.Sprintf("vmath: Vec3FromSlice: slice length %d < 3", len(s)))
	}
	return Vec3[T]{X: s[0], Y: s[1], Z: s[2]}
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z).
// It panics if i is out of range.
func (v Vec3[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	default:
		panic(fmt.Sprintf("vmath: Vec3 index %d out of range [0, 3)", i))
	}
}

// XY drops the trailing component.
func (v Vec3[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// WithX returns a copy of v with the X component replaced.
func (v Vec3[T]) WithX(x T) Vec3[T] {
	v.X = x
	return v
}

// WithY returns a copy of v with the Y component replaced.
func (v Vec3[T]) WithY(y T) Vec3[T] {
	v.Y = y
	return v
}

// WithZ returns a copy of v with the Z component replaced.
func (v Vec3[T]) WithZ(z T) Vec3[T] {
	v.Z = z
	return v
}

// CopyTo writes the components into dst in declared order.
// It panics if dst holds fewer than three elements.
func (v Vec3[T]) CopyTo(dst []T) {
	if len(dst) < 3 {
		panic(fmt.Sprintf("vmath: Vec3.CopyTo: destination length %d < 3", len(dst)))
	}
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
}

// TryCopyTo writes the components into dst and reports whether dst was
// large enough. On failure dst is left unmodified.
func (v Vec3[T]) TryCopyTo(dst []T) bool {
	if len(dst) < 3 {
		return false
	}
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
	return true
}

// Slice returns the components as a freshly allocated slice.
func (v Vec3[T]) Slice() []T {
	return []T{v.X, v.Y, v.Z}
}
