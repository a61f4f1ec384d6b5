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

import "unsafe"

// Floats is a constraint for floating-point scalar types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer scalar types. Plain int is
// admitted and treated as its platform width (32 or 64 bits).
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// UnsignedInts is a constraint for unsigned integer scalar types. Plain uint
// is admitted and treated as its platform width (32 or 64 bits).
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Integers is a constraint for all integer scalar types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Scalar is the constraint satisfied by every type usable as a vector or
// matrix element. It requires ordinary arithmetic, comparison, and ordering,
// which excludes complex types (they have no defined ordering).
type Scalar interface {
	Floats | Integers
}

// kind identifies the machine representation of a scalar type. It is what
// the register dispatcher consults to decide whether a type can occupy a
// hardware vector lane, and what the conversion kernels use to pick bounds.
type kind uint8

const (
	kindOther kind = iota
	kindF32
	kindF64
	kindI8
	kindI16
	kindI32
	kindI64
	kindU8
	kindU16
	kindU32
	kindU64
)

// kindOf classifies T by its underlying representation. The probes below
// work for named types as well: 3/2 != 1 only holds under float division,
// and 0-1 < 0 only holds for signed types.
func kindOf[T Scalar]() kind {
	var z T
	size := unsafe.Sizeof(z)
	if T(3)/T(2) != T(1) {
		if size == 4 {
			return kindF32
		}
		return kindF64
	}
	if T(0)-T(1) < T(0) {
		switch size {
		case 1:
			return kindI8
		case 2:
			return kindI16
		case 4:
			return kindI32
		default:
			return kindI64
		}
	}
	switch size {
	case 1:
		return kindU8
	case 2:
		return kindU16
	case 4:
		return kindU32
	default:
		return kindU64
	}
}

// registerKind reports whether scalars of kind k can occupy a vector
// register lane. Sub-32-bit integers are excluded: with at most four
// components they never fill enough of a register to beat the scalar loop.
func registerKind(k kind) bool {
	switch k {
	case kindF32, kindF64, kindI32, kindI64, kindU32, kindU64:
		return true
	}
	return false
}

// isFloatKind reports whether k is a floating-point representation.
func isFloatKind(k kind) bool {
	return k == kindF32 || k == kindF64
}

// elemSize returns the size in bytes of one scalar of type T.
func elemSize[T Scalar]() int {
	var z T
	return int(unsafe.Sizeof(z))
}
