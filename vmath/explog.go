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

// Exponential, logarithmic, power, and root functions applied per
// component. Domain errors (log of a negative, sqrt of a negative) yield
// whatever the scalar kernel yields, typically NaN; this layer never
// intercepts them.

// ExpV2 computes e**x per component.
func ExpV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, expScalar[T]) }

// ExpV3 computes e**x per component.
func ExpV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, expScalar[T]) }

// ExpV4 computes e**x per component.
func ExpV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, expScalar[T]) }

// Exp2V2 computes 2**x per component.
func Exp2V2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, exp2Scalar[T]) }

// Exp2V3 computes 2**x per component.
func Exp2V3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, exp2Scalar[T]) }

// Exp2V4 computes 2**x per component.
func Exp2V4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, exp2Scalar[T]) }

// Exp10V2 computes 10**x per component.
func Exp10V2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, exp10Scalar[T]) }

// Exp10V3 computes 10**x per component.
func Exp10V3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, exp10Scalar[T]) }

// Exp10V4 computes 10**x per component.
func Exp10V4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, exp10Scalar[T]) }

// Expm1V2 computes e**x - 1 per component, accurate near zero.
func Expm1V2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, expm1Scalar[T]) }

// Expm1V3 computes e**x - 1 per component, accurate near zero.
func Expm1V3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, expm1Scalar[T]) }

// Expm1V4 computes e**x - 1 per component, accurate near zero.
func Expm1V4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, expm1Scalar[T]) }

// LogV2 computes the natural logarithm per component.
func LogV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, logScalar[T]) }

// LogV3 computes the natural logarithm per component.
func LogV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, logScalar[T]) }

// LogV4 computes the natural logarithm per component.
func LogV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, logScalar[T]) }

// Log2V2 computes the base-2 logarithm per component.
func Log2V2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, log2Scalar[T]) }

// Log2V3 computes the base-2 logarithm per component.
func Log2V3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, log2Scalar[T]) }

// Log2V4 computes the base-2 logarithm per component.
func Log2V4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, log2Scalar[T]) }

// Log10V2 computes the base-10 logarithm per component.
func Log10V2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, log10Scalar[T]) }

// Log10V3 computes the base-10 logarithm per component.
func Log10V3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, log10Scalar[T]) }

// Log10V4 computes the base-10 logarithm per component.
func Log10V4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, log10Scalar[T]) }

// Log1pV2 computes log(1 + x) per component, accurate near zero.
func Log1pV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, log1pScalar[T]) }

// Log1pV3 computes log(1 + x) per component, accurate near zero.
func Log1pV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, log1pScalar[T]) }

// Log1pV4 computes log(1 + x) per component, accurate near zero.
func Log1pV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, log1pScalar[T]) }

// PowV2 computes x**y per component pair.
func PowV2[T Floats](x, y Vec2[T]) Vec2[T] { return applyPairV2(x, y, powScalar[T]) }

// PowV3 computes x**y per component pair.
func PowV3[T Floats](x, y Vec3[T]) Vec3[T] { return applyPairV3(x, y, powScalar[T]) }

// PowV4 computes x**y per component pair.
func PowV4[T Floats](x, y Vec4[T]) Vec4[T] { return applyPairV4(x, y, powScalar[T]) }

// SqrtV2 computes the square root per component.
func SqrtV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, sqrtScalar[T]) }

// SqrtV3 computes the square root per component.
func SqrtV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, sqrtScalar[T]) }

// SqrtV4 computes the square root per component.
func SqrtV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, sqrtScalar[T]) }

// CbrtV2 computes the cube root per component.
func CbrtV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, cbrtScalar[T]) }

// CbrtV3 computes the cube root per component.
func CbrtV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, cbrtScalar[T]) }

// CbrtV4 computes the cube root per component.
func CbrtV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, cbrtScalar[T]) }

// HypotV2 computes hypot(x, y) per component pair without undue overflow.
func HypotV2[T Floats](x, y Vec2[T]) Vec2[T] { return applyPairV2(x, y, hypotScalar[T]) }

// HypotV3 computes hypot(x, y) per component pair without undue overflow.
func HypotV3[T Floats](x, y Vec3[T]) Vec3[T] { return applyPairV3(x, y, hypotScalar[T]) }

// HypotV4 computes hypot(x, y) per component pair without undue overflow.
func HypotV4[T Floats](x, y Vec4[T]) Vec4[T] { return applyPairV4(x, y, hypotScalar[T]) }
