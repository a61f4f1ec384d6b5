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

// Elementwise operations on Vec2. Each operation first offers itself to the
// register dispatcher; when the scalar type or the machine does not qualify
// it runs the per-component loop. The two paths produce bit-identical
// results, including NaN, signed zero, and integer wrapping.

// vbin2 performs a binary elementwise op through a 2-lane register.
func vbin2[T Scalar](op vop, a, b Vec2[T]) (Vec2[T], bool) {
	if !useRegister[T](2) {
		return Vec2[T]{}, false
	}
	rc := vec2AsReg(&a).bin(op, *vec2AsReg(&b))
	return regAsVec2(&rc), true
}

// Add returns v + w componentwise.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vadd, v, w); ok {
		return r
	}
	return Vec2[T]{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w componentwise.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vsub, v, w); ok {
		return r
	}
	return Vec2[T]{v.X - w.X, v.Y - w.Y}
}

// Mul returns v * w componentwise (Hadamard product).
func (v Vec2[T]) Mul(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vmul, v, w); ok {
		return r
	}
	return Vec2[T]{v.X * w.X, v.Y * w.Y}
}

// Div returns v / w componentwise. Integer division by zero panics, as it
// does for the underlying scalar type.
func (v Vec2[T]) Div(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vdiv, v, w); ok {
		return r
	}
	return Vec2[T]{v.X / w.X, v.Y / w.Y}
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] {
	return v.Mul(SplatV2(s))
}

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] {
	if useRegister[T](2) {
		r := vec2AsReg(&v).neg()
		return regAsVec2(&r)
	}
	return Vec2[T]{-v.X, -v.Y}
}

// Abs returns the componentwise absolute value.
func (v Vec2[T]) Abs() Vec2[T] {
	if useRegister[T](2) {
		r := vec2AsReg(&v).abs()
		return regAsVec2(&r)
	}
	return Vec2[T]{absScalar(v.X), absScalar(v.Y)}
}

// Min returns the componentwise minimum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec2[T]) Min(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vmin, v, w); ok {
		return r
	}
	return Vec2[T]{minScalar(v.X, w.X), minScalar(v.Y, w.Y)}
}

// Max returns the componentwise maximum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec2[T]) Max(w Vec2[T]) Vec2[T] {
	if r, ok := vbin2(vmax, v, w); ok {
		return r
	}
	return Vec2[T]{maxScalar(v.X, w.X), maxScalar(v.Y, w.Y)}
}

// Clamp restricts each component to [lo, hi] as Min(Max(v, lo), hi).
// The max-then-min order makes an inverted range (lo > hi) resolve
// deterministically to hi.
func (v Vec2[T]) Clamp(lo, hi Vec2[T]) Vec2[T] {
	return v.Max(lo).Min(hi)
}

// Equal reports componentwise equality using the scalar type's own
// equality, so NaN components are never equal.
func (v Vec2[T]) Equal(w Vec2[T]) bool {
	if useRegister[T](2) {
		return vec2AsReg(&v).eq(*vec2AsReg(&w))
	}
	return v.X == w.X && v.Y == w.Y
}
