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

import stdmath "math"

// Trigonometric functions applied per component. Special cases (NaN, Inf,
// domain errors) are whatever the scalar kernel defines and are propagated
// unchanged.

// SinV2 computes sin(x) per component.
func SinV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, sinScalar[T]) }

// SinV3 computes sin(x) per component.
func SinV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, sinScalar[T]) }

// SinV4 computes sin(x) per component.
func SinV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, sinScalar[T]) }

// CosV2 computes cos(x) per component.
func CosV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, cosScalar[T]) }

// CosV3 computes cos(x) per component.
func CosV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, cosScalar[T]) }

// CosV4 computes cos(x) per component.
func CosV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, cosScalar[T]) }

// SinCosV2 computes sin(x) and cos(x) per component in one pass.
func SinCosV2[T Floats](v Vec2[T]) (sin, cos Vec2[T]) {
	sx, cx := sincosScalar(v.X)
	sy, cy := sincosScalar(v.Y)
	return Vec2[T]{sx, sy}, Vec2[T]{cx, cy}
}

// SinCosV3 computes sin(x) and cos(x) per component in one pass.
func SinCosV3[T Floats](v Vec3[T]) (sin, cos Vec3[T]) {
	sx, cx := sincosScalar(v.X)
	sy, cy := sincosScalar(v.Y)
	sz, cz := sincosScalar(v.Z)
	return Vec3[T]{sx, sy, sz}, Vec3[T]{cx, cy, cz}
}

// SinCosV4 computes sin(x) and cos(x) per component in one pass.
func SinCosV4[T Floats](v Vec4[T]) (sin, cos Vec4[T]) {
	sx, cx := sincosScalar(v.X)
	sy, cy := sincosScalar(v.Y)
	sz, cz := sincosScalar(v.Z)
	sw, cw := sincosScalar(v.W)
	return Vec4[T]{sx, sy, sz, sw}, Vec4[T]{cx, cy, cz, cw}
}

// TanV2 computes tan(x) per component.
func TanV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, tanScalar[T]) }

// TanV3 computes tan(x) per component.
func TanV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, tanScalar[T]) }

// TanV4 computes tan(x) per component.
func TanV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, tanScalar[T]) }

// AsinV2 computes asin(x) per component.
func AsinV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, asinScalar[T]) }

// AsinV3 computes asin(x) per component.
func AsinV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, asinScalar[T]) }

// AsinV4 computes asin(x) per component.
func AsinV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, asinScalar[T]) }

// AcosV2 computes acos(x) per component.
func AcosV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, acosScalar[T]) }

// AcosV3 computes acos(x) per component.
func AcosV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, acosScalar[T]) }

// AcosV4 computes acos(x) per component.
func AcosV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, acosScalar[T]) }

// AtanV2 computes atan(x) per component.
func AtanV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, atanScalar[T]) }

// AtanV3 computes atan(x) per component.
func AtanV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, atanScalar[T]) }

// AtanV4 computes atan(x) per component.
func AtanV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, atanScalar[T]) }

// Atan2V2 computes atan2(y, x) per component pair.
func Atan2V2[T Floats](y, x Vec2[T]) Vec2[T] { return applyPairV2(y, x, atan2Scalar[T]) }

// Atan2V3 computes atan2(y, x) per component pair.
func Atan2V3[T Floats](y, x Vec3[T]) Vec3[T] { return applyPairV3(y, x, atan2Scalar[T]) }

// Atan2V4 computes atan2(y, x) per component pair.
func Atan2V4[T Floats](y, x Vec4[T]) Vec4[T] { return applyPairV4(y, x, atan2Scalar[T]) }

// sinPiScalar computes sin(pi*x).
func sinPiScalar[T Floats](x T) T {
	return sinScalar(x * T(stdmath.Pi))
}

// cosPiScalar computes cos(pi*x).
func cosPiScalar[T Floats](x T) T {
	return cosScalar(x * T(stdmath.Pi))
}

// SinPiV2 computes sin(pi*x) per component.
func SinPiV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, sinPiScalar[T]) }

// SinPiV3 computes sin(pi*x) per component.
func SinPiV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, sinPiScalar[T]) }

// SinPiV4 computes sin(pi*x) per component.
func SinPiV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, sinPiScalar[T]) }

// CosPiV2 computes cos(pi*x) per component.
func CosPiV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, cosPiScalar[T]) }

// CosPiV3 computes cos(pi*x) per component.
func CosPiV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, cosPiScalar[T]) }

// CosPiV4 computes cos(pi*x) per component.
func CosPiV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, cosPiScalar[T]) }

// SinCosPiV2 computes sin(pi*x) and cos(pi*x) per component.
func SinCosPiV2[T Floats](v Vec2[T]) (sin, cos Vec2[T]) {
	return SinCosV2(v.Scale(T(stdmath.Pi)))
}

// SinCosPiV3 computes sin(pi*x) and cos(pi*x) per component.
func SinCosPiV3[T Floats](v Vec3[T]) (sin, cos Vec3[T]) {
	return SinCosV3(v.Scale(T(stdmath.Pi)))
}

// SinCosPiV4 computes sin(pi*x) and cos(pi*x) per component.
func SinCosPiV4[T Floats](v Vec4[T]) (sin, cos Vec4[T]) {
	return SinCosV4(v.Scale(T(stdmath.Pi)))
}
