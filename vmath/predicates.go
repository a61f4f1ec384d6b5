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

// IsNaNV2 reports whether any component is NaN.
func IsNaNV2[T Floats](v Vec2[T]) bool {
	return isNaNScalar(v.X) || isNaNScalar(v.Y)
}

// IsNaNV3 reports whether any component is NaN.
func IsNaNV3[T Floats](v Vec3[T]) bool {
	return isNaNScalar(v.X) || isNaNScalar(v.Y) || isNaNScalar(v.Z)
}

// IsNaNV4 reports whether any component is NaN.
func IsNaNV4[T Floats](v Vec4[T]) bool {
	return isNaNScalar(v.X) || isNaNScalar(v.Y) || isNaNScalar(v.Z) || isNaNScalar(v.W)
}

// IsInfV2 reports whether any component is an infinity of either sign.
func IsInfV2[T Floats](v Vec2[T]) bool {
	return isInfScalar(v.X) || isInfScalar(v.Y)
}

// IsInfV3 reports whether any component is an infinity of either sign.
func IsInfV3[T Floats](v Vec3[T]) bool {
	return isInfScalar(v.X) || isInfScalar(v.Y) || isInfScalar(v.Z)
}

// IsInfV4 reports whether any component is an infinity of either sign.
func IsInfV4[T Floats](v Vec4[T]) bool {
	return isInfScalar(v.X) || isInfScalar(v.Y) || isInfScalar(v.Z) || isInfScalar(v.W)
}

// IsFiniteV2 reports whether every component is finite.
func IsFiniteV2[T Floats](v Vec2[T]) bool {
	return !IsNaNV2(v) && !IsInfV2(v)
}

// IsFiniteV3 reports whether every component is finite.
func IsFiniteV3[T Floats](v Vec3[T]) bool {
	return !IsNaNV3(v) && !IsInfV3(v)
}

// IsFiniteV4 reports whether every component is finite.
func IsFiniteV4[T Floats](v Vec4[T]) bool {
	return !IsNaNV4(v) && !IsInfV4(v)
}
