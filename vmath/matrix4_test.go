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

import (
	stdmath "math"
	"testing"
)

func sequentialMat4() Mat4[float64] {
	return Mat4FromSlice([]float64{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	})
}

func TestIdentity(t *testing.T) {
	id := IdentityM4[float64]()
	if !id.IsIdentity() {
		t.Fatal("IdentityM4 does not report IsIdentity")
	}
	m := sequentialMat4()
	if m.IsIdentity() {
		t.Error("sequential matrix reports IsIdentity")
	}
	if got := m.Mul(id); !got.Equal(m) {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := id.Mul(m); !got.Equal(m) {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	v := Vec4[float64]{1, 2, 3, 4}
	if got := TransformV4(v, id); got != v {
		t.Errorf("v * I = %v, want %v", got, v)
	}
}

func TestMat4FromSlice(t *testing.T) {
	m := sequentialMat4()
	if m.R0 != (Vec4[float64]{1, 2, 3, 4}) || m.R3 != (Vec4[float64]{13, 14, 15, 16}) {
		t.Errorf("Mat4FromSlice rows wrong: %v", m)
	}
	mustPanic(t, "Mat4FromSlice short", func() { Mat4FromSlice([]float64{1, 2, 3}) })
}

func TestMatrixElementwise(t *testing.T) {
	m := sequentialMat4()
	z := m.Sub(m)
	if !z.Equal(Mat4[float64]{}) {
		t.Errorf("m - m = %v, want zero", z)
	}
	if got := m.Add(m.Neg()); !got.Equal(Mat4[float64]{}) {
		t.Errorf("m + (-m) = %v, want zero", got)
	}
	if got := m.Scale(2); !got.Equal(m.Add(m)) {
		t.Errorf("m * 2 = %v, want m + m", got)
	}
}

func TestMatrixMulOrder(t *testing.T) {
	// Scaling then translating is not the same as translating then
	// scaling; the product order must be preserved.
	s := ScalingM4(SplatV3(2.0))
	tr := TranslationM4(Vec3[float64]{10, 0, 0})

	p := Vec3[float64]{1, 1, 1}
	scaleThenTranslate := TransformPointV3(p, s.Mul(tr))
	translateThenScale := TransformPointV3(p, tr.Mul(s))

	if scaleThenTranslate != (Vec3[float64]{12, 2, 2}) {
		t.Errorf("p * (S*T) = %v, want (12, 2, 2)", scaleThenTranslate)
	}
	if translateThenScale != (Vec3[float64]{22, 2, 2}) {
		t.Errorf("p * (T*S) = %v, want (22, 2, 2)", translateThenScale)
	}

	// Composition through the product equals sequential application.
	if got := TransformPointV3(TransformPointV3(p, s), tr); got != scaleThenTranslate {
		t.Errorf("sequential transform %v differs from composed %v", got, scaleThenTranslate)
	}
}

func TestTransform(t *testing.T) {
	tr := TranslationM4(Vec3[float64]{1, 2, 3})
	if got := tr.Translation(); got != (Vec3[float64]{1, 2, 3}) {
		t.Errorf("Translation = %v", got)
	}
	// Points pick up the translation, directions do not.
	if got := TransformPointV3(ZeroV3[float64](), tr); got != (Vec3[float64]{1, 2, 3}) {
		t.Errorf("point transform = %v, want (1, 2, 3)", got)
	}
	if got := TransformDirV3(UnitXV3[float64](), tr); got != UnitXV3[float64]() {
		t.Errorf("direction transform = %v, want unit X", got)
	}
	// Full Vec4 transform against a hand-computed product.
	m := sequentialMat4()
	v := Vec4[float64]{1, 0, 2, 0}
	if got := TransformV4(v, m); got != (Vec4[float64]{19, 22, 25, 28}) {
		t.Errorf("TransformV4 = %v, want (19, 22, 25, 28)", got)
	}
}

func TestMatrixIndexing(t *testing.T) {
	m := sequentialMat4()
	if got := m.Row(2); got != (Vec4[float64]{9, 10, 11, 12}) {
		t.Errorf("Row(2) = %v", got)
	}
	if got := m.Col(1); got != (Vec4[float64]{2, 6, 10, 14}) {
		t.Errorf("Col(1) = %v", got)
	}
	if got := m.At(1, 3); got != 8 {
		t.Errorf("At(1, 3) = %v, want 8", got)
	}
	mustPanic(t, "Row(4)", func() { m.Row(4) })
	mustPanic(t, "Col(-1)", func() { m.Col(-1) })
	mustPanic(t, "At(4, 0)", func() { m.At(4, 0) })
	mustPanic(t, "At(0, 4)", func() { m.At(0, 4) })
}

func TestMatrixEqual(t *testing.T) {
	m := sequentialMat4()
	if !m.Equal(m) {
		t.Error("matrix not equal to itself")
	}
	n := m
	n.R2 = n.R2.WithZ(99)
	if m.Equal(n) {
		t.Error("matrices differing in one element compare equal")
	}
	// A NaN element makes the matrix unequal to itself.
	n = m
	n.R0 = n.R0.WithX(stdmath.NaN())
	if n.Equal(n) {
		t.Error("matrix with NaN element compares equal to itself")
	}

	// The register tiers and the row-wise fallback must agree.
	eqSelf := m.Equal(m)
	eqNaN := n.Equal(n)
	forceScalar(t)
	if m.Equal(m) != eqSelf || n.Equal(n) != eqNaN {
		t.Error("matrix equality differs between dispatched and scalar paths")
	}
}

func TestMatrixString(t *testing.T) {
	m := IdentityM4[int32]()
	want := "[<1, 0, 0, 0>; <0, 1, 0, 0>; <0, 0, 1, 0>; <0, 0, 0, 1>]"
	if got := m.String(); got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
}
