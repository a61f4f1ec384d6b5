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

// Vec4 is an immutable 4-component vector of scalar type T.
type Vec4[T Scalar] struct {
	X, Y, Z, W T
}

// SplatV4 returns a vector with all components set to v.
func SplatV4[T Scalar](v T) Vec4[T] {
	return Vec4[T]{X: v, Y: v, Z: v, W: v}
}

// ZeroV4 returns the all-zero vector.
func ZeroV4[T Scalar]() Vec4[T] {
	return Vec4[T]{}
}

// OneV4 returns the all-ones vector.
func OneV4[T Scalar]() Vec4[T] {
	return Vec4[T]{X: 1, Y: 1, Z: 1, W: 1}
}

// UnitXV4 returns (1, 0, 0, 0).
func UnitXV4[T Scalar]() Vec4[T] {
	return Vec4[T]{X: 1}
}

// UnitYV4 returns (0, 1, 0, 0).
func UnitYV4[T Scalar]() Vec4[T] {
	return Vec4[T]{Y: 1}
}

// UnitZV4 returns (0, 0, 1, 0).
func UnitZV4[T Scalar]() Vec4[T] {
	return Vec4[T]{Z: 1}
}

// UnitWV4 returns (0, 0, 0, 1).
func UnitWV4[T Scalar]() Vec4[T] {
	return Vec4[T]{W: 1}
}

// Vec4FromVec3 appends w to a 3-component vector.
func Vec4FromVec3[T Scalar](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec4FromVec2 appends z and w to a 2-component vector.
func Vec4FromVec2[T Scalar](v Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: z, W: w}
}

// Vec4FromSlice constructs a vector from the first four elements of s.
// It panics if s holds fewer than four elements.
func Vec4FromSlice[T Scalar](s []T) Vec4[T] {
	if len(s) < 4 {
		panic(fmt.Sprintf("vmath: Vec4FromSlice: slice length %d < 4", len(s)))
	}
	return Vec4[T]{X: s[0], Y: s[1], Z: s[2], W: s[3]}
}

// At returns the component at index i (0 = X, 1 = Y, 2 = Z, 3 = W).
// It panics if i is out of range.
func (v Vec4[T]) At(i int) T {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	default:
		panic(fmt.Sprintf("vmath: Vec4 index %d out of range [0, 4)", i))
	}
}

// XYZ drops the trailing component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// XY drops the two trailing components.
func (v Vec4[T]) XY() Vec2[T] {
	return Vec2[T]{X: v.X, Y: v.Y}
}

// WithX returns a copy of v with the X component replaced.
func (v Vec4[T]) WithX(x T) Vec4[T] {
	v.X = x
	return v
}

// WithY returns a copy of v with the Y component replaced.
func (v Vec4[T]) WithY(y T) Vec4[T] {
	v.Y = y
	return v
}

// WithZ returns a copy of v with the Z component replaced.
func (v Vec4[T]) WithZ(z T) Vec4[T] {
	v.Z = z
	return v
}

// WithW returns a copy of v with the W component replaced.
func (v Vec4[T]) WithW(w T) Vec4[T] {
	v.W = w
	return v
}

// CopyTo writes the components into dst in declared order.
// It panics if dst holds fewer than four elements.
func (v Vec4[T]) CopyTo(dst []T) {
	if len(dst) < 4 {
		panic(fmt.Sprintf("vmath: Vec4.CopyTo: destination length %d < 4", len(dst)))
	}
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
	dst[3] = v.W
}

// TryCopyTo writes the components into dst and reports whether dst was
// large enough. On failure dst is left unmodified.
func (v Vec4[T]) TryCopyTo(dst []T) bool {
	if len(dst) < 4 {
		return false
	}
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
	dst[3] = v.W
	return true
}

// Slice returns the components as a freshly allocated slice.
func (v Vec4[T]) Slice() []T {
	return []T{v.X, v.Y, v.Z, v.W}
}
