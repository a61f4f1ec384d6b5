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

// Package vmath provides generic fixed-size vector types (Vec2, Vec3, Vec4)
// and a 4x4 matrix (Mat4), parameterized over a numeric scalar type.
//
// Every operation has two implementations with identical observable
// behavior: a per-component scalar loop that works for any admissible
// scalar type, and a register path that reinterprets the aggregate as a
// fixed-width hardware-style vector when the runtime reports the required
// register width as accelerated and the scalar type fits a register lane.
// The register path is chosen per operation at runtime; setting the
// VMATH_NO_SIMD environment variable forces the scalar path everywhere.
//
// Basic usage:
//
//	v := vmath.Vec2[float32]{X: 3, Y: 4}
//	w := v.Scale(2)               // (6, 8)
//	l := vmath.LengthV2(v)        // 5
//	d := v.Dot(w)                 // 50
//
// All values are immutable: methods return new values and never modify
// their receiver, so vectors and matrices are safe to share across
// goroutines without synchronization.
package vmath
