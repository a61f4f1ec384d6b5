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

// Elementwise operations on Vec4. Register widths are tried in decreasing
// order: the whole aggregate in one 4-lane register when the machine
// accelerates that width, otherwise two 2-lane halves (for example
// Vec4[float64] on 128-bit NEON), otherwise the scalar loop.

// vbin4 performs a binary elementwise op through registers.
func vbin4[T Scalar](op vop, a, b Vec4[T]) (Vec4[T], bool) {
	if !registerKind(kindOf[T]()) {
		return Vec4[T]{}, false
	}
	es := elemSize[T]()
	if accelerated(es * 4) {
		rc := vec4AsReg(&a).bin(op, *vec4AsReg(&b))
		return regAsVec4(&rc), true
	}
	if accelerated(es * 2) {
		ha, hb := vec4AsHalves(&a), vec4AsHalves(&b)
		out := [2]reg2[T]{ha[0].bin(op, hb[0]), ha[1].bin(op, hb[1])}
		return halvesAsVec4(&out), true
	}
	return Vec4[T]{}, false
}

// vun4 performs a unary elementwise op through registers.
func vun4[T Scalar](a Vec4[T], full func(reg4[T]) reg4[T], half func(reg2[T]) reg2[T]) (Vec4[T], bool) {
	if !registerKind(kindOf[T]()) {
		return Vec4[T]{}, false
	}
	es := elemSize[T]()
	if accelerated(es * 4) {
		rc := full(*vec4AsReg(&a))
		return regAsVec4(&rc), true
	}
	if accelerated(es * 2) {
		ha := vec4AsHalves(&a)
		out := [2]reg2[T]{half(ha[0]), half(ha[1])}
		return halvesAsVec4(&out), true
	}
	return Vec4[T]{}, false
}

// Add returns v + w componentwise.
func (v Vec4[T]) Add(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vadd, v, w); ok {
		return r
	}
	return Vec4[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z, v.W + w.W}
}

// Sub returns v - w componentwise.
func (v Vec4[T]) Sub(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vsub, v, w); ok {
		return r
	}
	return Vec4[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z, v.W - w.W}
}

// Mul returns v * w componentwise (Hadamard product).
func (v Vec4[T]) Mul(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vmul, v, w); ok {
		return r
	}
	return Vec4[T]{v.X * w.X, v.Y * w.Y, v.Z * w.Z, v.W * w.W}
}

// Div returns v / w componentwise. Integer division by zero panics, as it
// does for the underlying scalar type.
func (v Vec4[T]) Div(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vdiv, v, w); ok {
		return r
	}
	return Vec4[T]{v.X / w.X, v.Y / w.Y, v.Z / w.Z, v.W / w.W}
}

// Scale returns v with every component multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return v.Mul(SplatV4(s))
}

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] {
	if r, ok := vun4(v, reg4[T].neg, reg2[T].neg); ok {
		return r
	}
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

// Abs returns the componentwise absolute value.
func (v Vec4[T]) Abs() Vec4[T] {
	if r, ok := vun4(v, reg4[T].abs, reg2[T].abs); ok {
		return r
	}
	return Vec4[T]{absScalar(v.X), absScalar(v.Y), absScalar(v.Z), absScalar(v.W)}
}

// Min returns the componentwise minimum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec4[T]) Min(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vmin, v, w); ok {
		return r
	}
	return Vec4[T]{minScalar(v.X, w.X), minScalar(v.Y, w.Y), minScalar(v.Z, w.Z), minScalar(v.W, w.W)}
}

// Max returns the componentwise maximum, preferring the non-NaN operand
// when one side is NaN.
func (v Vec4[T]) Max(w Vec4[T]) Vec4[T] {
	if r, ok := vbin4(vmax, v, w); ok {
		return r
	}
	return Vec4[T]{maxScalar(v.X, w.X), maxScalar(v.Y, w.Y), maxScalar(v.Z, w.Z), maxScalar(v.W, w.W)}
}

// Clamp restricts each component to [lo, hi] as Min(Max(v, lo), hi).
// The max-then-min order makes an inverted range (lo > hi) resolve
// deterministically to hi.
func (v Vec4[T]) Clamp(lo, hi Vec4[T]) Vec4[T] {
	return v.Max(lo).Min(hi)
}

// Equal reports componentwise equality using the scalar type's own
// equality, so NaN components are never equal.
func (v Vec4[T]) Equal(w Vec4[T]) bool {
	if registerKind(kindOf[T]()) {
		es := elemSize[T]()
		if accelerated(es * 4) {
			return vec4AsReg(&v).eq(*vec4AsReg(&w))
		}
		if accelerated(es * 2) {
			ha, hb := vec4AsHalves(&v), vec4AsHalves(&w)
			return ha[0].eq(hb[0]) && ha[1].eq(hb[1])
		}
	}
	return v.X == w.X && v.Y == w.Y && v.Z == w.Z && v.W == w.W
}
