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

import stdmath "math"

// Scalar conversion kernels with three policies:
//
//   - truncating: the plain Go conversion; fractional parts are discarded,
//     out-of-range integer conversions wrap, and out-of-range
//     float-to-integer conversions are implementation-defined, exactly as
//     for the underlying language conversion.
//   - saturating: out-of-range values clamp to the target type's min/max;
//     NaN saturates to zero.
//   - checked: out-of-range values (and NaN) report ErrOverflow instead.
//
// For values representable in the target type all three agree exactly.

// intRange returns the value range of an integer kind. For signed kinds hi
// is the maximum as a uint64; lo is zero for unsigned kinds.
func intRange(k kind) (lo int64, hi uint64, signed bool) {
	switch k {
	case kindI8:
		return stdmath.MinInt8, stdmath.MaxInt8, true
	case kindI16:
		return stdmath.MinInt16, stdmath.MaxInt16, true
	case kindI32:
		return stdmath.MinInt32, stdmath.MaxInt32, true
	case kindI64:
		return stdmath.MinInt64, stdmath.MaxInt64, true
	case kindU8:
		return 0, stdmath.MaxUint8, false
	case kindU16:
		return 0, stdmath.MaxUint16, false
	case kindU32:
		return 0, stdmath.MaxUint32, false
	default:
		return 0, stdmath.MaxUint64, false
	}
}

func isSignedKind(k kind) bool {
	switch k {
	case kindI8, kindI16, kindI32, kindI64:
		return true
	}
	return false
}

// convertTruncating narrows by discarding information, with the semantics
// of the plain Go conversion.
func convertTruncating[U, T Scalar](x T) U {
	return U(x)
}

// convertChecked converts x to U, reporting ErrOverflow if the value is
// out of U's range (or is NaN and U is an integer type). Fractional parts
// are truncated toward zero before the range check, so only magnitude
// violations fail.
func convertChecked[U, T Scalar](x T) (U, error) {
	ku := kindOf[U]()
	kt := kindOf[T]()
	if isFloatKind(ku) {
		// Every admissible scalar value is within float64 range, and
		// infinities carry over, so the only overflow is a finite float64
		// that exceeds the float32 range.
		if ku == kindF32 && kt == kindF64 {
			f := float64(x)
			if !stdmath.IsInf(f, 0) && stdmath.Abs(f) > stdmath.MaxFloat32 {
				var zero U
				return zero, ErrOverflow
			}
		}
		return U(x), nil
	}

	lo, hi, signed := intRange(ku)
	var zero U
	switch {
	case isFloatKind(kt):
		f := float64(x)
		if f != f {
			return zero, ErrOverflow
		}
		t := stdmath.Trunc(f)
		// Both bounds are exact powers of two in float64, so the
		// comparisons below are exact: loF = -2^(n-1) and hiExcl = 2^(n-1)
		// for signed kinds, 0 and 2^n for unsigned kinds.
		loF := float64(lo)
		hiExcl := float64(hi) + 1
		if t < loF || t >= hiExcl {
			return zero, ErrOverflow
		}
		if signed {
			return U(int64(t)), nil
		}
		return U(uint64(t)), nil
	case isSignedKind(kt):
		i := int64(x)
		if i < lo || (i > 0 && uint64(i) > hi) {
			return zero, ErrOverflow
		}
		return U(x), nil
	default:
		u := uint64(x)
		if u > hi {
			return zero, ErrOverflow
		}
		return U(x), nil
	}
}

// convertSaturating converts x to U, clamping out-of-range values to U's
// min or max. NaN saturates to zero; infinities convert to infinities for
// float targets and clamp for integer targets.
func convertSaturating[U, T Scalar](x T) U {
	ku := kindOf[U]()
	kt := kindOf[T]()
	if isFloatKind(ku) {
		if ku == kindF32 && kt == kindF64 {
			f := float64(x)
			if !stdmath.IsInf(f, 0) {
				maxF32 := float64(stdmath.MaxFloat32)
				if f > maxF32 {
					return U(maxF32)
				}
				if f < -maxF32 {
					return U(-maxF32)
				}
			}
		}
		return U(x)
	}

	lo, hi, signed := intRange(ku)
	switch {
	case isFloatKind(kt):
		f := float64(x)
		if f != f {
			return U(0)
		}
		t := stdmath.Trunc(f)
		loF := float64(lo)
		hiExcl := float64(hi) + 1
		if t < loF {
			return U(lo)
		}
		if t >= hiExcl {
			return U(hi)
		}
		if signed {
			return U(int64(t))
		}
		return U(uint64(t))
	case isSignedKind(kt):
		i := int64(x)
		if i < lo {
			return U(lo)
		}
		if i > 0 && uint64(i) > hi {
			return U(hi)
		}
		return U(x)
	default:
		u := uint64(x)
		if u > hi {
			return U(hi)
		}
		return U(x)
	}
}
