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

// Elementwise operations on Vec3. A 3-component vector does not fill a
// register, so unlike Vec2 and Vec4 it cannot be reinterpreted in place:
// the 12- or 24-byte aggregate is copied into a 4-lane register with a
// padding lane, and only the first three lanes are read back. The padding
// lane is chosen per operation (padFor) so it can never fault.

// vbin3 performs a binary elementwise op through a padded 4-lane register.
func vbin3[T Scalar](op vop, a, b Vec3[T]) (Vec3[T], bool) {
	if !useRegister[T](4) {
		return Vec3[T]{}, false
	}
	pad := padFor[T](op)
	ra := reg4[T]{a.X, a.Y, a.Z, pad}
	rb := reg4[T]{b.X, b.Y, b.Z, pad}
	rc := ra.bin(op, rb)
	return Vec3[T]{rc[0], rc[1], rc[2]}, true
}

// Add returns v + w componentwise.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vadd, v, w); ok {
		return r
	}
	return Vec3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns v - w componentwise.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vsub, v, w); ok {
		return r
	}
	return Vec3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Mul returns v * w componentwise (Hadamard product).
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vmul, v, w); ok {
		return r
	}
	return Vec3[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z}
}

// Div returns v / w componentwise. Integer division by zero panics, as it
// does for the underlying scalar type.
func (v Vec3[T]) Div(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vdiv, v, w); ok {
		return r
	}
	return Vec3[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z}
}

// Scale returns v with every component multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return v.Mul(SplatV3(s))
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	if useRegister[T](4) {
		r := reg4[T]{v.X, v.Y, v.Z, 0}.neg()
		return Vec3[T]{r[0], r[1], r[2]}
	}
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Abs returns the componentwise absolute value.
func (v Vec3[T]) Abs() Vec3[T] {
	if useRegister[T](4) {
		r := reg4[T]{v.X, v.Y, v.Z, 0}.abs()
		return Vec3[T]{r[0], r[1], r[2]}
	}
	return Vec3[T]{absScalar(v.X), absScalar(v.Y), absScalar(v.Z)}
}

// Min returns the componentwise minimum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec3[T]) Min(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vmin, v, w); ok {
		return r
	}
	return Vec3[T]{minScalar(v.X, w.X), minScalar(v.Y, w.Y), minScalar(v.Z, w.Z)}
}

// Max returns the componentwise maximum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec3[T]) Max(w Vec3[T]) Vec3[T] {
	if r, ok := vbin3(vmax, v, w); ok {
		return r
	}
	return Vec3[T]{maxScalar(v.X, w.X), maxScalar(v.Y, w.Y), maxScalar(v.Z, w.Z)}
}

// Clamp restricts each component to [lo, hi] as Min(Max(v, lo), hi).
// The max-then-min order makes an inverted range (lo > hi) resolve
// deterministically to hi.
func (v Vec3[T]) Clamp(lo, hi Vec3[T]) Vec3[T] {
	return v.Max(lo).Min(hi)
}

// Equal reports componentwise equality using the scalar type's own
// equality, so NaN components are never equal.
func (v Vec3[T]) Equal(w Vec3[T]) bool {
	if useRegister[T](4) {
		// Both padding lanes are zero, so they compare equal and cannot
		// influence the result.
		ra := reg4[T]{v.X, v.Y, v.Z, 0}
		rb := reg4[T]{w.X, w.Y, w.Z, 0}
		return ra.eq(rb)
	}
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z
}
