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

// Helpers for lifting scalar kernels over vector components. The
// transcendental families have no cross-component interaction, so every
// function in trig.go, hyperbolic.go, and explog.go is one of these
// applications.

func applyV2[T Floats](v Vec2[T], f func(T) T) Vec2[T] {
	return Vec2[T]{f(v.X), f(v.Y)}
}

func applyV3[T Floats](v Vec3[T], f func(T) T) Vec3[T] {
	return Vec3[T]{f(v.X), f(v.Y), f(v.Z)}
}

func applyV4[T Floats](v Vec4[T], f func(T) T) Vec4[T] {
	return Vec4[T]{f(v.X), f(v.Y), f(v.Z), f(v.W)}
}

func applyPairV2[T Floats](a, b Vec2[T], f func(T, T) T) Vec2[T] {
	return Vec2[T]{f(a.X, b.X), f(a.Y, b.Y)}
}

func applyPairV3[T Floats](a, b Vec3[T], f func(T, T) T) Vec3[T] {
	return Vec3[T]{f(a.X, b.X), f(a.Y, b.Y), f(a.Z, b.Z)}
}

func applyPairV4[T Floats](a, b Vec4[T], f func(T, T) T) Vec4[T] {
	return Vec4[T]{f(a.X, b.X), f(a.Y, b.Y), f(a.Z, b.Z), f(a.W, b.W)}
}
