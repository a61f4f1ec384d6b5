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

	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestTrig(t *testing.T) {
	v := Vec4[float64]{0, stdmath.Pi / 6, stdmath.Pi / 4, stdmath.Pi / 2}
	s := SinV4(v)
	c := CosV4(v)
	if s.X != 0 || c.X != 1 {
		t.Errorf("sin/cos at 0 = %v, %v", s.X, c.X)
	}
	if !scalar.EqualWithinAbs(s.Y, 0.5, tol) {
		t.Errorf("sin(pi/6) = %v, want 0.5", s.Y)
	}
	if !scalar.EqualWithinAbs(c.Z, stdmath.Sqrt2/2, tol) {
		t.Errorf("cos(pi/4) = %v", c.Z)
	}
	if !scalar.EqualWithinAbs(s.W, 1, tol) {
		t.Errorf("sin(pi/2) = %v, want 1", s.W)
	}

	// Each component goes through math.Sin/math.Cos exactly, so the
	// results match the stdlib bit for bit.
	x := Vec2[float64]{1.2345, -9.876}
	got := SinV2(x)
	if got.X != stdmath.Sin(x.X) || got.Y != stdmath.Sin(x.Y) {
		t.Error("SinV2 differs from per-component math.Sin")
	}
	if got := TanV2(x); got.X != stdmath.Tan(x.X) {
		t.Error("TanV2 differs from math.Tan")
	}
}

func TestSinCos(t *testing.T) {
	v := Vec3[float64]{0.3, 1.7, -2.9}
	s, c := SinCosV3(v)
	ss := SinV3(v)
	cc := CosV3(v)
	// math.Sincos agrees with Sin and Cos on finite inputs.
	if s != ss || c != cc {
		t.Errorf("SinCosV3 = %v, %v; separate calls = %v, %v", s, c, ss, cc)
	}

	sp, cp := SinCosPiV2(Vec2[float64]{0.5, 1})
	if !scalar.EqualWithinAbs(sp.X, 1, tol) || !scalar.EqualWithinAbs(cp.Y, -1, tol) {
		t.Errorf("SinCosPi at (0.5, 1) = %v, %v", sp, cp)
	}
	if got := SinPiV2(Vec2[float64]{0.5, 1.5}); !scalar.EqualWithinAbs(got.X, 1, tol) || !scalar.EqualWithinAbs(got.Y, -1, tol) {
		t.Errorf("SinPiV2 = %v", got)
	}
	if got := CosPiV2(Vec2[float64]{0, 1}); !scalar.EqualWithinAbs(got.X, 1, tol) || !scalar.EqualWithinAbs(got.Y, -1, tol) {
		t.Errorf("CosPiV2 = %v", got)
	}
}

func TestInverseTrig(t *testing.T) {
	v := Vec2[float64]{0.5, -0.5}
	if got := SinV2(AsinV2(v)); !scalar.EqualWithinAbs(got.X, 0.5, tol) || !scalar.EqualWithinAbs(got.Y, -0.5, tol) {
		t.Errorf("sin(asin(x)) = %v, want %v", got, v)
	}
	if got := AcosV2(Vec2[float64]{1, -1}); got.X != 0 || !scalar.EqualWithinAbs(got.Y, stdmath.Pi, tol) {
		t.Errorf("AcosV2 = %v", got)
	}
	if got := AtanV2(Vec2[float64]{1, 0}); !scalar.EqualWithinAbs(got.X, stdmath.Pi/4, tol) || got.Y != 0 {
		t.Errorf("AtanV2 = %v", got)
	}
	// Atan2 takes y first, matching the stdlib argument order.
	y := Vec2[float64]{1, -1}
	x := Vec2[float64]{1, 1}
	got := Atan2V2(y, x)
	if !scalar.EqualWithinAbs(got.X, stdmath.Pi/4, tol) || !scalar.EqualWithinAbs(got.Y, -stdmath.Pi/4, tol) {
		t.Errorf("Atan2V2 = %v", got)
	}
	// Asin outside [-1, 1] is NaN, propagated not intercepted.
	if got := AsinV2(Vec2[float64]{2, 0}); !stdmath.IsNaN(got.X) {
		t.Errorf("AsinV2(2) = %v, want NaN", got.X)
	}
}

func TestHyperbolic(t *testing.T) {
	v := Vec3[float64]{0, 1, -1}
	if got := SinhV3(v); got.X != 0 || got.Y != stdmath.Sinh(1) || got.Z != -stdmath.Sinh(1) {
		t.Errorf("SinhV3 = %v", got)
	}
	if got := CoshV3(v); got.X != 1 || got.Y != got.Z {
		t.Errorf("CoshV3 = %v, want even function", got)
	}
	if got := TanhV2(Vec2[float64]{1e3, -1e3}); got.X != 1 || got.Y != -1 {
		t.Errorf("TanhV2 saturates to %v, want (1, -1)", got)
	}
	// Inverse pairs.
	x := Vec2[float64]{0.5, 2}
	if got := AsinhV2(SinhV2(x)); !scalar.EqualWithinAbs(got.X, 0.5, tol) || !scalar.EqualWithinAbs(got.Y, 2, tol) {
		t.Errorf("asinh(sinh(x)) = %v, want %v", got, x)
	}
	if got := AcoshV2(Vec2[float64]{1, stdmath.Cosh(2)}); got.X != 0 || !scalar.EqualWithinAbs(got.Y, 2, tol) {
		t.Errorf("AcoshV2 = %v", got)
	}
	if got := AtanhV2(Vec2[float64]{0, stdmath.Tanh(0.5)}); got.X != 0 || !scalar.EqualWithinAbs(got.Y, 0.5, tol) {
		t.Errorf("AtanhV2 = %v", got)
	}
}

func TestExpLog(t *testing.T) {
	v := Vec3[float64]{0, 1, 2}
	e := ExpV3(v)
	if e.X != 1 || e.Y != stdmath.E || e.Z != stdmath.Exp(2) {
		t.Errorf("ExpV3 = %v", e)
	}
	if got := LogV3(e); !scalar.EqualWithinAbs(got.Y, 1, tol) || !scalar.EqualWithinAbs(got.Z, 2, tol) {
		t.Errorf("log(exp(x)) = %v, want %v", got, v)
	}
	if got := Exp2V2(Vec2[float64]{10, -1}); got.X != 1024 || got.Y != 0.5 {
		t.Errorf("Exp2V2 = %v", got)
	}
	if got := Log2V2(Vec2[float64]{1024, 0.5}); got.X != 10 || got.Y != -1 {
		t.Errorf("Log2V2 = %v", got)
	}
	if got := Exp10V2(Vec2[float64]{3, 0}); !scalar.EqualWithinRel(got.X, 1000, tol) || got.Y != 1 {
		t.Errorf("Exp10V2 = %v", got)
	}
	if got := Log10V2(Vec2[float64]{1000, 1}); !scalar.EqualWithinAbs(got.X, 3, tol) || got.Y != 0 {
		t.Errorf("Log10V2 = %v", got)
	}
	// Accurate-near-zero pair.
	small := Vec2[float64]{1e-15, -1e-15}
	em1 := Expm1V2(small)
	if got := Log1pV2(em1); !scalar.EqualWithinRel(got.X, 1e-15, 1e-10) {
		t.Errorf("log1p(expm1(x)) = %v, want %v", got, small)
	}
	// log of a negative is NaN, propagated.
	if got := LogV2(Vec2[float64]{-1, 0}); !stdmath.IsNaN(got.X) || !stdmath.IsInf(got.Y, -1) {
		t.Errorf("LogV2(-1, 0) = %v, want (NaN, -Inf)", got)
	}
}

func TestPowSqrt(t *testing.T) {
	x := Vec3[float64]{2, 9, 10}
	y := Vec3[float64]{10, 0.5, 0}
	if got := PowV3(x, y); got.X != 1024 || got.Y != 3 || got.Z != 1 {
		t.Errorf("PowV3 = %v", got)
	}
	if got := SqrtV2(Vec2[float64]{16, 2}); got.X != 4 || got.Y != stdmath.Sqrt2 {
		t.Errorf("SqrtV2 = %v", got)
	}
	if got := SqrtV2(Vec2[float64]{-1, 0}); !stdmath.IsNaN(got.X) || got.Y != 0 {
		t.Errorf("SqrtV2(-1, 0) = %v", got)
	}
	if got := CbrtV2(Vec2[float64]{27, -8}); got.X != 3 || got.Y != -2 {
		t.Errorf("CbrtV2 = %v", got)
	}
	if got := HypotV2(Vec2[float64]{3, 5}, Vec2[float64]{4, 12}); got.X != 5 || got.Y != 13 {
		t.Errorf("HypotV2 = %v", got)
	}
}

// TestFloat32Kernels checks that float32 vectors route through the float32
// kernels rather than rounding a float64 computation.
func TestFloat32Kernels(t *testing.T) {
	v := Vec2[float32]{1.5, -0.25}
	if got := SinV2(v); got.X != math32.Sin(1.5) || got.Y != math32.Sin(-0.25) {
		t.Error("SinV2 float32 differs from math32.Sin")
	}
	if got := ExpV2(v); got.X != math32.Exp(1.5) {
		t.Error("ExpV2 float32 differs from math32.Exp")
	}
	if got := SqrtV2(Vec2[float32]{2, 9}); got.X != math32.Sqrt(2) || got.Y != 3 {
		t.Error("SqrtV2 float32 differs from math32.Sqrt")
	}
	if got := LengthV2(Vec2[float32]{3, 4}); got != 5 {
		t.Errorf("LengthV2 float32 = %v, want 5", got)
	}
}
