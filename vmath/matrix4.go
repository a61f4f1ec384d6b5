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

import "fmt"

// Mat4 is an immutable 4x4 matrix of scalar type T, stored as four row
// vectors. The library uses the row-vector convention: points transform as
// v' = v * M, so a translation lives in the last row and composed
// transforms apply left to right (v * A * B applies A first).
type Mat4[T Scalar] struct {
	R0, R1, R2, R3 Vec4[T]
}

// IdentityM4 returns the 4x4 identity matrix.
func IdentityM4[T Scalar]() Mat4[T] {
	return Mat4[T]{
		R0: UnitXV4[T](),
		R1: UnitYV4[T](),
		R2: UnitZV4[T](),
		R3: UnitWV4[T](),
	}
}

// TranslationM4 returns the matrix that translates row vectors by t.
func TranslationM4[T Scalar](t Vec3[T]) Mat4[T] {
	return Mat4[T]{
		R0: UnitXV4[T](),
		R1: UnitYV4[T](),
		R2: UnitZV4[T](),
		R3: Vec4FromVec3(t, 1),
	}
}

// ScalingM4 returns the matrix that scales row vectors componentwise by s.
func ScalingM4[T Scalar](s Vec3[T]) Mat4[T] {
	return Mat4[T]{
		R0: Vec4[T]{X: s.X},
		R1: Vec4[T]{Y: s.Y},
		R2: Vec4[T]{Z: s.Z},
		R3: UnitWV4[T](),
	}
}

// Mat4FromSlice constructs a matrix from the first sixteen elements of s in
// row-major order. It panics if s holds fewer than sixteen elements.
func Mat4FromSlice[T Scalar](s []T) Mat4[T] {
	if len(s) < 16 {
		panic(fmt.Sprintf("vmath: Mat4FromSlice: slice length %d < 16", len(s)))
	}
	return Mat4[T]{
		R0: Vec4FromSlice(s[0:4]),
		R1: Vec4FromSlice(s[4:8]),
		R2: Vec4FromSlice(s[8:12]),
		R3: Vec4FromSlice(s[12:16]),
	}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4[T]) IsIdentity() bool {
	return m.Equal(IdentityM4[T]())
}

// Row returns row i. It panics if i is out of range.
func (m Mat4[T]) Row(i int) Vec4[T] {
	switch i {
	case 0:
		return m.R0
	case 1:
		return m.R1
	case 2:
		return m.R2
	case 3:
		return m.R3
	default:
		panic(fmt.Sprintf("vmath: Mat4 row %d out of range [0, 4)", i))
	}
}

// Col gathers column j. It panics if j is out of range.
func (m Mat4[T]) Col(j int) Vec4[T] {
	return Vec4[T]{m.R0.At(j), m.R1.At(j), m.R2.At(j), m.R3.At(j)}
}

// At returns the element at (row, col). The row bound is checked here; the
// column bound is checked by the row vector's own indexer, so both
// violations panic, with messages naming the dimension that failed.
func (m Mat4[T]) At(row, col int) T {
	return m.Row(row).At(col)
}

// Translation returns the translation component, the first three elements
// of the last row.
func (m Mat4[T]) Translation() Vec3[T] {
	return m.R3.XYZ()
}

// Add returns m + n elementwise.
func (m Mat4[T]) Add(n Mat4[T]) Mat4[T] {
	return Mat4[T]{
		R0: m.R0.Add(n.R0),
		R1: m.R1.Add(n.R1),
		R2: m.R2.Add(n.R2),
		R3: m.R3.Add(n.R3),
	}
}

// Sub returns m - n elementwise.
func (m Mat4[T]) Sub(n Mat4[T]) Mat4[T] {
	return Mat4[T]{
		R0: m.R0.Sub(n.R0),
		R1: m.R1.Sub(n.R1),
		R2: m.R2.Sub(n.R2),
		R3: m.R3.Sub(n.R3),
	}
}

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] {
	return Mat4[T]{
		R0: m.R0.Neg(),
		R1: m.R1.Neg(),
		R2: m.R2.Neg(),
		R3: m.R3.Neg(),
	}
}

// Scale returns m with every element multiplied by s.
func (m Mat4[T]) Scale(s T) Mat4[T] {
	return Mat4[T]{
		R0: m.R0.Scale(s),
		R1: m.R1.Scale(s),
		R2: m.R2.Scale(s),
		R3: m.R3.Scale(s),
	}
}

// Mul returns the matrix product m * n. Under the row-vector convention
// row i of the result is row i of m transformed by n, so
// TransformV4(v, m.Mul(n)) == TransformV4(TransformV4(v, m), n).
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	return Mat4[T]{
		R0: TransformV4(m.R0, n),
		R1: TransformV4(m.R1, n),
		R2: TransformV4(m.R2, n),
		R3: TransformV4(m.R3, n),
	}
}

// TransformV4 applies m to the row vector v, returning v * m. Each result
// component is accumulated in component order: x*m.R0 + y*m.R1 + z*m.R2 +
// w*m.R3, evaluated left to right.
func TransformV4[T Scalar](v Vec4[T], m Mat4[T]) Vec4[T] {
	r := m.R0.Scale(v.X)
	r = r.Add(m.R1.Scale(v.Y))
	r = r.Add(m.R2.Scale(v.Z))
	r = r.Add(m.R3.Scale(v.W))
	return r
}

// TransformPointV3 applies m to the point p, treating it as (x, y, z, 1),
// and drops the resulting w. No perspective divide is performed.
func TransformPointV3[T Scalar](p Vec3[T], m Mat4[T]) Vec3[T] {
	return TransformV4(Vec4FromVec3(p, 1), m).XYZ()
}

// TransformDirV3 applies m to the direction d, treating it as
// (x, y, z, 0), so the translation row has no effect.
func TransformDirV3[T Scalar](d Vec3[T], m Mat4[T]) Vec3[T] {
	return TransformV4(Vec4FromVec3(d, 0), m).XYZ()
}

// Equal reports elementwise equality using the scalar type's own equality,
// so NaN elements are never equal. The sixteen scalars are compared through
// the widest accelerated register that holds them: one 16-lane register,
// two 8-lane halves, four 4-lane quarters, or row by row.
func (m Mat4[T]) Equal(n Mat4[T]) bool {
	if registerKind(kindOf[T]()) {
		es := elemSize[T]()
		if accelerated(es * 16) {
			return mat4AsReg(&m).eq(*mat4AsReg(&n))
		}
		if accelerated(es * 8) {
			hm, hn := mat4AsHalves(&m), mat4AsHalves(&n)
			return hm[0].eq(hn[0]) && hm[1].eq(hn[1])
		}
		if accelerated(es * 4) {
			qm, qn := mat4AsQuarters(&m), mat4AsQuarters(&n)
			return qm[0].eq(qn[0]) && qm[1].eq(qn[1]) && qm[2].eq(qn[2]) && qm[3].eq(qn[3])
		}
	}
	return m.R0.Equal(n.R0) && m.R1.Equal(n.R1) && m.R2.Equal(n.R2) && m.R3.Equal(n.R3)
}

// String returns the matrix as its four rows separated by "; ".
func (m Mat4[T]) String() string {
	return fmt.Sprintf("[%s; %s; %s; %s]", m.R0, m.R1, m.R2, m.R3)
}
