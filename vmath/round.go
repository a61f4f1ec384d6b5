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

// Rounding. The float-to-float forms keep the scalar type; the *ToInt
// forms round and then narrow with saturating semantics, so infinities and
// values beyond the integer range clamp to the target's min/max and NaN
// becomes zero.

// RoundV2 rounds each component to the nearest integer, half away from zero.
func RoundV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, roundScalar[T]) }

// RoundV3 rounds each component to the nearest integer, half away from zero.
func RoundV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, roundScalar[T]) }

// RoundV4 rounds each component to the nearest integer, half away from zero.
func RoundV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, roundScalar[T]) }

// FloorV2 rounds each component toward negative infinity.
func FloorV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, floorScalar[T]) }

// FloorV3 rounds each component toward negative infinity.
func FloorV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, floorScalar[T]) }

// FloorV4 rounds each component toward negative infinity.
func FloorV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, floorScalar[T]) }

// CeilV2 rounds each component toward positive infinity.
func CeilV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, ceilScalar[T]) }

// CeilV3 rounds each component toward positive infinity.
func CeilV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, ceilScalar[T]) }

// CeilV4 rounds each component toward positive infinity.
func CeilV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, ceilScalar[T]) }

// TruncV2 rounds each component toward zero.
func TruncV2[T Floats](v Vec2[T]) Vec2[T] { return applyV2(v, truncScalar[T]) }

// TruncV3 rounds each component toward zero.
func TruncV3[T Floats](v Vec3[T]) Vec3[T] { return applyV3(v, truncScalar[T]) }

// TruncV4 rounds each component toward zero.
func TruncV4[T Floats](v Vec4[T]) Vec4[T] { return applyV4(v, truncScalar[T]) }

// RoundToIntV2 rounds half away from zero and converts to I, saturating.
func RoundToIntV2[I Integers, T Floats](v Vec2[T]) Vec2[I] {
	return Vec2[I]{
		convertSaturating[I](roundScalar(v.X)),
		convertSaturating[I](roundScalar(v.Y)),
	}
}

// RoundToIntV3 rounds half away from zero and converts to I, saturating.
func RoundToIntV3[I Integers, T Floats](v Vec3[T]) Vec3[I] {
	return Vec3[I]{
		convertSaturating[I](roundScalar(v.X)),
		convertSaturating[I](roundScalar(v.Y)),
		convertSaturating[I](roundScalar(v.Z)),
	}
}

// RoundToIntV4 rounds half away from zero and converts to I, saturating.
func RoundToIntV4[I Integers, T Floats](v Vec4[T]) Vec4[I] {
	return Vec4[I]{
		convertSaturating[I](roundScalar(v.X)),
		convertSaturating[I](roundScalar(v.Y)),
		convertSaturating[I](roundScalar(v.Z)),
		convertSaturating[I](roundScalar(v.W)),
	}
}

// FloorToIntV2 rounds toward negative infinity and converts to I, saturating.
func FloorToIntV2[I Integers, T Floats](v Vec2[T]) Vec2[I] {
	return Vec2[I]{
		convertSaturating[I](floorScalar(v.X)),
		convertSaturating[I](floorScalar(v.Y)),
	}
}

// FloorToIntV3 rounds toward negative infinity and converts to I, saturating.
func FloorToIntV3[I Integers, T Floats](v Vec3[T]) Vec3[I] {
	return Vec3[I]{
		convertSaturating[I](floorScalar(v.X)),
		convertSaturating[I](floorScalar(v.Y)),
		convertSaturating[I](floorScalar(v.Z)),
	}
}

// FloorToIntV4 rounds toward negative infinity and converts to I, saturating.
func FloorToIntV4[I Integers, T Floats](v Vec4[T]) Vec4[I] {
	return Vec4[I]{
		convertSaturating[I](floorScalar(v.X)),
		convertSaturating[I](floorScalar(v.Y)),
		convertSaturating[I](floorScalar(v.Z)),
		convertSaturating[I](floorScalar(v.W)),
	}
}

// CeilToIntV2 rounds toward positive infinity and converts to I, saturating.
func CeilToIntV2[I Integers, T Floats](v Vec2[T]) Vec2[I] {
	return Vec2[I]{
		convertSaturating[I](ceilScalar(v.X)),
		convertSaturating[I](ceilScalar(v.Y)),
	}
}

// CeilToIntV3 rounds toward positive infinity and converts to I, saturating.
func CeilToIntV3[I Integers, T Floats](v Vec3[T]) Vec3[I] {
	return Vec3[I]{
		convertSaturating[I](ceilScalar(v.X)),
		convertSaturating[I](ceilScalar(v.Y)),
		convertSaturating[I](ceilScalar(v.Z)),
	}
}

// CeilToIntV4 rounds toward positive infinity and converts to I, saturating.
func CeilToIntV4[I Integers, T Floats](v Vec4[T]) Vec4[I] {
	return Vec4[I]{
		convertSaturating[I](ceilScalar(v.X)),
		convertSaturating[I](ceilScalar(v.Y)),
		convertSaturating[I](ceilScalar(v.Z)),
		convertSaturating[I](ceilScalar(v.W)),
	}
}
