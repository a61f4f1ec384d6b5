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

import "unsafe"

// Byte-for-byte reinterpretation between vector aggregates and registers.
// These casts are only valid because VecN and regN hold exactly N scalars
// of the same type with no interior padding; the guards below make that
// invariant a compile error to break.

// Compile-time layout guards: a nonzero size difference indexes out of a
// one-element array and fails the build.
var (
	_ = [1]struct{}{}[unsafe.Sizeof(Vec2[float64]{})-unsafe.Sizeof(reg2[float64]{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Vec4[float32]{})-unsafe.Sizeof(reg4[float32]{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4[float32]{})-unsafe.Sizeof(reg16[float32]{})]
	_ = [1]struct{}{}[unsafe.Sizeof(Mat4[float64]{})-unsafe.Sizeof([2]reg8[float64]{})]
)

func vec2AsReg[T Scalar](v *Vec2[T]) *reg2[T] {
	return (*reg2[T])(unsafe.Pointer(v))
}

func regAsVec2[T Scalar](r *reg2[T]) Vec2[T] {
	return *(*Vec2[T])(unsafe.Pointer(r))
}

func vec4AsReg[T Scalar](v *Vec4[T]) *reg4[T] {
	return (*reg4[T])(unsafe.Pointer(v))
}

func regAsVec4[T Scalar](r *reg4[T]) Vec4[T] {
	return *(*Vec4[T])(unsafe.Pointer(r))
}

// vec4AsHalves views a 4-component vector as two 2-lane registers, for
// targets whose accelerated width holds only half the aggregate (for
// example Vec4[float64] on 128-bit NEON).
func vec4AsHalves[T Scalar](v *Vec4[T]) *[2]reg2[T] {
	return (*[2]reg2[T])(unsafe.Pointer(v))
}

func halvesAsVec4[T Scalar](h *[2]reg2[T]) Vec4[T] {
	return *(*Vec4[T])(unsafe.Pointer(h))
}

func mat4AsReg[T Scalar](m *Mat4[T]) *reg16[T] {
	return (*reg16[T])(unsafe.Pointer(m))
}

func mat4AsHalves[T Scalar](m *Mat4[T]) *[2]reg8[T] {
	return (*[2]reg8[T])(unsafe.Pointer(m))
}

func mat4AsQuarters[T Scalar](m *Mat4[T]) *[4]reg4[T] {
	return (*[4]reg4[T])(unsafe.Pointer(m))
}
