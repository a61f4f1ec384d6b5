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

// Geometric algorithms composed from the elementwise operations and the
// scalar kernels. Dot products are evaluated left to right so the result is
// deterministic for floating-point types regardless of dispatch level.
//
// Functions that require roots or interpolation demand the Floats
// constraint at compile time; integer vectors use the *As variants, which
// promote each component to a floating result type first.

// Dot returns the dot product v . w.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Dot returns the dot product v . w.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Dot returns the dot product v . w.
func (v Vec4[T]) Dot(w Vec4[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// DotAsV2 returns the dot product with each component promoted to R before
// multiplying. For T == R it agrees exactly with Dot.
func DotAsV2[R, T Scalar](a, b Vec2[T]) R {
	return R(a.X)*R(b.X) + R(a.Y)*R(b.Y)
}

// DotAsV3 returns the dot product with each component promoted to R before
// multiplying. For T == R it agrees exactly with Dot.
func DotAsV3[R, T Scalar](a, b Vec3[T]) R {
	return R(a.X)*R(b.X) + R(a.Y)*R(b.Y) + R(a.Z)*R(b.Z)
}

// DotAsV4 returns the dot product with each component promoted to R before
// multiplying. For T == R it agrees exactly with Dot.
func DotAsV4[R, T Scalar](a, b Vec4[T]) R {
	return R(a.X)*R(b.X) + R(a.Y)*R(b.Y) + R(a.Z)*R(b.Z) + R(a.W)*R(b.W)
}

// LengthSquared returns Dot(v, v).
func (v Vec2[T]) LengthSquared() T { return v.Dot(v) }

// LengthSquared returns Dot(v, v).
func (v Vec3[T]) LengthSquared() T { return v.Dot(v) }

// LengthSquared returns Dot(v, v).
func (v Vec4[T]) LengthSquared() T { return v.Dot(v) }

// LengthV2 returns the Euclidean length of v.
func LengthV2[T Floats](v Vec2[T]) T {
	return sqrtScalar(v.LengthSquared())
}

// LengthV3 returns the Euclidean length of v.
func LengthV3[T Floats](v Vec3[T]) T {
	return sqrtScalar(v.LengthSquared())
}

// LengthV4 returns the Euclidean length of v.
func LengthV4[T Floats](v Vec4[T]) T {
	return sqrtScalar(v.LengthSquared())
}

// LengthAsV2 returns the Euclidean length of an arbitrary scalar vector,
// computed in the floating type R.
func LengthAsV2[R Floats, T Scalar](v Vec2[T]) R {
	return sqrtScalar(DotAsV2[R](v, v))
}

// LengthAsV3 returns the Euclidean length of an arbitrary scalar vector,
// computed in the floating type R.
func LengthAsV3[R Floats, T Scalar](v Vec3[T]) R {
	return sqrtScalar(DotAsV3[R](v, v))
}

// LengthAsV4 returns the Euclidean length of an arbitrary scalar vector,
// computed in the floating type R.
func LengthAsV4[R Floats, T Scalar](v Vec4[T]) R {
	return sqrtScalar(DotAsV4[R](v, v))
}

// DistanceSquaredV2 returns |a - b|^2, computed as LengthSquared(a - b).
func DistanceSquaredV2[T Scalar](a, b Vec2[T]) T {
	return a.Sub(b).LengthSquared()
}

// DistanceSquaredV3 returns |a - b|^2, computed as LengthSquared(a - b).
func DistanceSquaredV3[T Scalar](a, b Vec3[T]) T {
	return a.Sub(b).LengthSquared()
}

// DistanceSquaredV4 returns |a - b|^2, computed as LengthSquared(a - b).
func DistanceSquaredV4[T Scalar](a, b Vec4[T]) T {
	return a.Sub(b).LengthSquared()
}

// DistanceV2 returns the Euclidean distance between a and b, computed as
// Length(a - b) so it is always consistent with LengthV2.
func DistanceV2[T Floats](a, b Vec2[T]) T {
	return LengthV2(a.Sub(b))
}

// DistanceV3 returns the Euclidean distance between a and b, computed as
// Length(a - b) so it is always consistent with LengthV3.
func DistanceV3[T Floats](a, b Vec3[T]) T {
	return LengthV3(a.Sub(b))
}

// DistanceV4 returns the Euclidean distance between a and b, computed as
// Length(a - b) so it is always consistent with LengthV4.
func DistanceV4[T Floats](a, b Vec4[T]) T {
	return LengthV4(a.Sub(b))
}

// LerpV2 interpolates componentwise as a*(1-t) + b*t. This is the plain
// two-multiply-one-add formula, not a fused or monotonic lerp.
func LerpV2[T Floats](a, b Vec2[T], t T) Vec2[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpV3 interpolates componentwise as a*(1-t) + b*t. This is the plain
// two-multiply-one-add formula, not a fused or monotonic lerp.
func LerpV3[T Floats](a, b Vec3[T], t T) Vec3[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpV4 interpolates componentwise as a*(1-t) + b*t. This is the plain
// two-multiply-one-add formula, not a fused or monotonic lerp.
func LerpV4[T Floats](a, b Vec4[T], t T) Vec4[T] {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// LerpClampedV2 clamps t to [0, 1] and then interpolates.
func LerpClampedV2[T Floats](a, b Vec2[T], t T) Vec2[T] {
	return LerpV2(a, b, minScalar(maxScalar(t, 0), 1))
}

// LerpClampedV3 clamps t to [0, 1] and then interpolates.
func LerpClampedV3[T Floats](a, b Vec3[T], t T) Vec3[T] {
	return LerpV3(a, b, minScalar(maxScalar(t, 0), 1))
}

// LerpClampedV4 clamps t to [0, 1] and then interpolates.
func LerpClampedV4[T Floats](a, b Vec4[T], t T) Vec4[T] {
	return LerpV4(a, b, minScalar(maxScalar(t, 0), 1))
}

// NormalizeV2 returns v / Length(v). A zero vector yields NaN components,
// exactly as the scalar division defines.
func NormalizeV2[T Floats](v Vec2[T]) Vec2[T] {
	return v.Div(SplatV2(LengthV2(v)))
}

// NormalizeV3 returns v / Length(v). A zero vector yields NaN components,
// exactly as the scalar division defines.
func NormalizeV3[T Floats](v Vec3[T]) Vec3[T] {
	return v.Div(SplatV3(LengthV3(v)))
}

// NormalizeV4 returns v / Length(v). A zero vector yields NaN components,
// exactly as the scalar division defines.
func NormalizeV4[T Floats](v Vec4[T]) Vec4[T] {
	return v.Div(SplatV4(LengthV4(v)))
}

// ReflectV2 reflects v about the unit normal n: v - 2*Dot(v,n)*n.
func ReflectV2[T Floats](v, n Vec2[T]) Vec2[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ReflectV3 reflects v about the unit normal n: v - 2*Dot(v,n)*n.
func ReflectV3[T Floats](v, n Vec3[T]) Vec3[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ReflectV4 reflects v about the unit normal n: v - 2*Dot(v,n)*n.
func ReflectV4[T Floats](v, n Vec4[T]) Vec4[T] {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// CrossV3 returns the cross product a x b.
func CrossV3[T Scalar](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}
