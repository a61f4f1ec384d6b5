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

import (
	"fmt"
	"unsafe"
)

// Cross-type vector casts. Each cast first tries the bit-compatible fast
// path: when T and U share the same machine representation (for example a
// named type over float32 and float32 itself) the whole aggregate is
// reinterpreted byte for byte. Otherwise each component is converted with
// the requested policy. The two tiers agree exactly for representable
// values.
//
// Checked casts convert component by component in declared order and stop
// at the first unrepresentable component; the error names it. Component
// conversion has no side effect, so the partial evaluation is unobservable.

func sameKind[U, T Scalar]() bool {
	return kindOf[T]() == kindOf[U]()
}

// AsV2 converts each component to U with truncating semantics.
func AsV2[U, T Scalar](v Vec2[T]) Vec2[U] {
	if sameKind[U, T]() {
		return *(*Vec2[U])(unsafe.Pointer(&v))
	}
	return Vec2[U]{convertTruncating[U](v.X), convertTruncating[U](v.Y)}
}

// AsV3 converts each component to U with truncating semantics.
func AsV3[U, T Scalar](v Vec3[T]) Vec3[U] {
	if sameKind[U, T]() {
		return *(*Vec3[U])(unsafe.Pointer(&v))
	}
	return Vec3[U]{convertTruncating[U](v.X), convertTruncating[U](v.Y), convertTruncating[U](v.Z)}
}

// AsV4 converts each component to U with truncating semantics.
func AsV4[U, T Scalar](v Vec4[T]) Vec4[U] {
	if sameKind[U, T]() {
		return *(*Vec4[U])(unsafe.Pointer(&v))
	}
	return Vec4[U]{convertTruncating[U](v.X), convertTruncating[U](v.Y), convertTruncating[U](v.Z), convertTruncating[U](v.W)}
}

// AsSaturatingV2 converts each component to U, clamping out-of-range
// values to U's min/max.
func AsSaturatingV2[U, T Scalar](v Vec2[T]) Vec2[U] {
	if sameKind[U, T]() {
		return *(*Vec2[U])(unsafe.Pointer(&v))
	}
	return Vec2[U]{convertSaturating[U](v.X), convertSaturating[U](v.Y)}
}

// AsSaturatingV3 converts each component to U, clamping out-of-range
// values to U's min/max.
func AsSaturatingV3[U, T Scalar](v Vec3[T]) Vec3[U] {
	if sameKind[U, T]() {
		return *(*Vec3[U])(unsafe.Pointer(&v))
	}
	return Vec3[U]{convertSaturating[U](v.X), convertSaturating[U](v.Y), convertSaturating[U](v.Z)}
}

// AsSaturatingV4 converts each component to U, clamping out-of-range
// values to U's min/max.
func AsSaturatingV4[U, T Scalar](v Vec4[T]) Vec4[U] {
	if sameKind[U, T]() {
		return *(*Vec4[U])(unsafe.Pointer(&v))
	}
	return Vec4[U]{convertSaturating[U](v.X), convertSaturating[U](v.Y), convertSaturating[U](v.Z), convertSaturating[U](v.W)}
}

// AsCheckedV2 converts each component to U, returning an error wrapping
// ErrOverflow for the first component not representable in U.
func AsCheckedV2[U, T Scalar](v Vec2[T]) (Vec2[U], error) {
	if sameKind[U, T]() {
		return *(*Vec2[U])(unsafe.Pointer(&v)), nil
	}
	var r Vec2[U]
	var err error
	if r.X, err = convertChecked[U](v.X); err != nil {
		return Vec2[U]{}, fmt.Errorf("component X (%v): %w", v.X, err)
	}
	if r.Y, err = convertChecked[U](v.Y); err != nil {
		return Vec2[U]{}, fmt.Errorf("component Y (%v): %w", v.Y, err)
	}
	return r, nil
}

// AsCheckedV3 converts each component to U, returning an error wrapping
// ErrOverflow for the first component not representable in U.
func AsCheckedV3[U, T Scalar](v Vec3[T]) (Vec3[U], error) {
	if sameKind[U, T]() {
		return *(*Vec3[U])(unsafe.Pointer(&v)), nil
	}
	var r Vec3[U]
	var err error
	if r.X, err = convertChecked[U](v.X); err != nil {
		return Vec3[U]{}, fmt.Errorf("component X (%v): %w", v.X, err)
	}
	if r.Y, err = convertChecked[U](v.Y); err != nil {
		return Vec3[U]{}, fmt.Errorf("component Y (%v): %w", v.Y, err)
	}
	if r.Z, err = convertChecked[U](v.Z); err != nil {
		return Vec3[U]{}, fmt.Errorf("component Z (%v): %w", v.Z, err)
	}
	return r, nil
}

// AsCheckedV4 converts each component to U, returning an error wrapping
// ErrOverflow for the first component not representable in U.
func AsCheckedV4[U, T Scalar](v Vec4[T]) (Vec4[U], error) {
	if sameKind[U, T]() {
		return *(*Vec4[U])(unsafe.Pointer(&v)), nil
	}
	var r Vec4[U]
	var err error
	if r.X, err = convertChecked[U](v.X); err != nil {
		return Vec4[U]{}, fmt.Errorf("component X (%v): %w", v.X, err)
	}
	if r.Y, err = convertChecked[U](v.Y); err != nil {
		return Vec4[U]{}, fmt.Errorf("component Y (%v): %w", v.Y, err)
	}
	if r.Z, err = convertChecked[U](v.Z); err != nil {
		return Vec4[U]{}, fmt.Errorf("component Z (%v): %w", v.Z, err)
	}
	if r.W, err = convertChecked[U](v.W); err != nil {
		return Vec4[U]{}, fmt.Errorf("component W (%v): %w", v.W, err)
	}
	return r, nil
}
