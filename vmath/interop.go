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
	"unsafe"

	"golang.org/x/image/math/f32"
)

// Interop with golang.org/x/image/math/f32. The struct and array layouts
// are identical (N consecutive float32 values), so every conversion is a
// bit-exact reinterpretation rather than a per-component copy.

var (
	_ = [1]struct{}{}[unsafe.Sizeof(Vec2[float32]{})-unsafe.Sizeof(f32.Vec2{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Vec3[float32]{})-unsafe.Sizeof(f32.Vec3{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Vec4[float32]{})-unsafe.Sizeof(f32.Vec4{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4[float32]{})-unsafe.Sizeof(f32.Mat4{})]
)

// ToF32V2 reinterprets v as an f32.Vec2.
func ToF32V2(v Vec2[float32]) f32.Vec2 {
	return *(*f32.Vec2)(unsafe.Pointer(&v))
}

// FromF32V2 reinterprets v as a Vec2[float32].
func FromF32V2(v f32.Vec2) Vec2[float32] {
	return *(*Vec2[float32])(unsafe.Pointer(&v))
}

// ToF32V3 reinterprets v as an f32.Vec3.
func ToF32V3(v Vec3[float32]) f32.Vec3 {
	return *(*f32.Vec3)(unsafe.Pointer(&v))
}

// FromF32V3 reinterprets v as a Vec3[float32].
func FromF32V3(v f32.Vec3) Vec3[float32] {
	return *(*Vec3[float32])(unsafe.Pointer(&v))
}

// ToF32V4 reinterprets v as an f32.Vec4.
func ToF32V4(v Vec4[float32]) f32.Vec4 {
	return *(*f32.Vec4)(unsafe.Pointer(&v))
}

// FromF32V4 reinterprets v as a Vec4[float32].
func FromF32V4(v f32.Vec4) Vec4[float32] {
	return *(*Vec4[float32])(unsafe.Pointer(&v))
}

// ToF32M4 reinterprets m as an f32.Mat4 in row-major order.
func ToF32M4(m Mat4[float32]) f32.Mat4 {
	return *(*f32.Mat4)(unsafe.Pointer(&m))
}

// FromF32M4 reinterprets m, taken as row-major, as a Mat4[float32].
func FromF32M4(m f32.Mat4) Mat4[float32] {
	return *(*Mat4[float32])(unsafe.Pointer(&m))
}
