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

	"github.com/chewxy/math32"
)

// Per-component scalar kernels. Both the scalar loop and the register path
// call these, so the two paths cannot drift apart.
//
// float32 inputs go through math32 to avoid the float32->float64->float32
// round trip; named types with a float32 underlying representation take the
// float64 route through the default branch, which is still correct.

// minScalar returns the smaller operand, preferring the non-NaN operand
// when exactly one side is NaN (HLSL min semantics, not IEEE minNum).
func minScalar[T Scalar](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a < b {
		return a
	}
	return b
}

// maxScalar returns the larger operand, preferring the non-NaN operand
// when exactly one side is NaN.
func maxScalar[T Scalar](a, b T) T {
	if a != a {
		return b
	}
	if b != b {
		return a
	}
	if a > b {
		return a
	}
	return b
}

// absScalar returns |x|. For floats this clears the sign bit, so
// absScalar(-0.0) is +0.0.
func absScalar[T Scalar](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Abs(v))
	case float64:
		return T(stdmath.Abs(v))
	default:
		if x < 0 {
			return -x
		}
		return x
	}
}

func isNaNScalar[T Scalar](x T) bool {
	return x != x
}

func isInfScalar[T Floats](x T) bool {
	switch v := any(x).(type) {
	case float32:
		return math32.IsInf(v, 0)
	default:
		return stdmath.IsInf(float64(x), 0)
	}
}

func sqrtScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	default:
		return T(stdmath.Sqrt(float64(x)))
	}
}

func cbrtScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cbrt(v))
	default:
		return T(stdmath.Cbrt(float64(x)))
	}
}

func hypotScalar[T Floats](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Hypot(v, any(y).(float32)))
	default:
		return T(stdmath.Hypot(float64(x), float64(y)))
	}
}

func sinScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sin(v))
	default:
		return T(stdmath.Sin(float64(x)))
	}
}

func cosScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	default:
		return T(stdmath.Cos(float64(x)))
	}
}

func sincosScalar[T Floats](x T) (sin, cos T) {
	switch v := any(x).(type) {
	case float32:
		s, c := math32.Sincos(v)
		return T(s), T(c)
	default:
		s, c := stdmath.Sincos(float64(x))
		return T(s), T(c)
	}
}

func tanScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tan(v))
	default:
		return T(stdmath.Tan(float64(x)))
	}
}

func asinScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Asin(v))
	default:
		return T(stdmath.Asin(float64(x)))
	}
}

func acosScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Acos(v))
	default:
		return T(stdmath.Acos(float64(x)))
	}
}

func atanScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Atan(v))
	default:
		return T(stdmath.Atan(float64(x)))
	}
}

func atan2Scalar[T Floats](y, x T) T {
	switch v := any(y).(type) {
	case float32:
		return T(math32.Atan2(v, any(x).(float32)))
	default:
		return T(stdmath.Atan2(float64(y), float64(x)))
	}
}

func sinhScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sinh(v))
	default:
		return T(stdmath.Sinh(float64(x)))
	}
}

func coshScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cosh(v))
	default:
		return T(stdmath.Cosh(float64(x)))
	}
}

func tanhScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Tanh(v))
	default:
		return T(stdmath.Tanh(float64(x)))
	}
}

func asinhScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Asinh(v))
	default:
		return T(stdmath.Asinh(float64(x)))
	}
}

func acoshScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Acosh(v))
	default:
		return T(stdmath.Acosh(float64(x)))
	}
}

func atanhScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Atanh(v))
	default:
		return T(stdmath.Atanh(float64(x)))
	}
}

func expScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp(v))
	default:
		return T(stdmath.Exp(float64(x)))
	}
}

func exp2Scalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Exp2(v))
	default:
		return T(stdmath.Exp2(float64(x)))
	}
}

// exp10Scalar computes 10**x. Neither math nor math32 has Exp10, so it is
// defined as Pow(10, x).
func exp10Scalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(10, v))
	default:
		return T(stdmath.Pow(10, float64(x)))
	}
}

func expm1Scalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Expm1(v))
	default:
		return T(stdmath.Expm1(float64(x)))
	}
}

func logScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log(v))
	default:
		return T(stdmath.Log(float64(x)))
	}
}

func log2Scalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log2(v))
	default:
		return T(stdmath.Log2(float64(x)))
	}
}

func log10Scalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log10(v))
	default:
		return T(stdmath.Log10(float64(x)))
	}
}

func log1pScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Log1p(v))
	default:
		return T(stdmath.Log1p(float64(x)))
	}
}

func powScalar[T Floats](x, y T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Pow(v, any(y).(float32)))
	default:
		return T(stdmath.Pow(float64(x), float64(y)))
	}
}

// roundScalar rounds half away from zero.
func roundScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Round(v))
	default:
		return T(stdmath.Round(float64(x)))
	}
}

func floorScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Floor(v))
	default:
		return T(stdmath.Floor(float64(x)))
	}
}

func ceilScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Ceil(v))
	default:
		return T(stdmath.Ceil(float64(x)))
	}
}

func truncScalar[T Floats](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Trunc(v))
	default:
		return T(stdmath.Trunc(float64(x)))
	}
}
