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

// Hyperbolic functions applied per component.

// SinhV2 computes sinh(x) per component.
func SinhV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, sinhScalar[T]) }

// SinhV3 computes sinh(x) per component.
func SinhV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, sinhScalar[T]) }

// SinhV4 computes sinh(x) per component.
func SinhV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, sinhScalar[T]) }

// CoshV2 computes cosh(x) per component.
func CoshV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, coshScalar[T]) }

// CoshV3 computes cosh(x) per component.
func CoshV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, coshScalar[T]) }

// CoshV4 computes cosh(x) per component.
func CoshV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, coshScalar[T]) }

// TanhV2 computes tanh(x) per component.
func TanhV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, tanhScalar[T]) }

// TanhV3 computes tanh(x) per component.
func TanhV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, tanhScalar[T]) }

// TanhV4 computes tanh(x) per component.
func TanhV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, tanhScalar[T]) }

// AsinhV2 computes asinh(x) per component.
func AsinhV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, asinhScalar[T]) }

// AsinhV3 computes asinh(x) per component.
func AsinhV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, asinhScalar[T]) }

// AsinhV4 computes asinh(x) per component.
func AsinhV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, asinhScalar[T]) }

// AcoshV2 computes acosh(x) per component.
func AcoshV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, acoshScalar[T]) }

// AcoshV3 computes acosh(x) per component.
func AcoshV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, acoshScalar[T]) }

// AcoshV4 computes acosh(x) per component.
func AcoshV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, acoshScalar[T]) }

// AtanhV2 computes atanh(x) per component.
func AtanhV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, atanhScalar[T]) }

// AtanhV3 computes atanh(x) per component.
func AtanhV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, atanhScalar[T]) }

// AtanhV4 computes atanh(x) per component.
func AtanhV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, atanhScalar[T]) }
