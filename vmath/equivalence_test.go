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

// forceScalar switches the dispatcher to the scalar fallback for the rest
// of the test and restores the detected level afterwards.
func forceScalar(t *testing.T) {
	t.Helper()
	level, width, name := currentLevel, currentWidth, currentName
	setScalarMode()
	t.Cleanup(func() {
		currentLevel, currentWidth, currentName = level, width, name
	})
}

// Special values that exercise every IEEE corner the register and scalar
// paths must agree on.
var specials64 = []float64{
	0, stdmath.Copysign(0, -1), 1, -1, 0.5, -2.5,
	stdmath.NaN(), stdmath.Inf(1), stdmath.Inf(-1),
	stdmath.MaxFloat64, -stdmath.MaxFloat64, stdmath.SmallestNonzeroFloat64,
}

var specials32 = []float32{
	0, float32(stdmath.Copysign(0, -1)), 1, -1, 0.5, -2.5,
	float32(stdmath.NaN()), float32(stdmath.Inf(1)), float32(stdmath.Inf(-1)),
	stdmath.MaxFloat32, -stdmath.MaxFloat32, stdmath.SmallestNonzeroFloat32,
}

func bits64V4(v Vec4[float64]) [4]uint64 {
	return [4]uint64{
		stdmath.Float64bits(v.X),
		stdmath.Float64bits(v.Y),
		stdmath.Float64bits(v.Z),
		stdmath.Float64bits(v.W),
	}
}

func bits32V4(v Vec4[float32]) [4]uint32 {
	return [4]uint32{
		stdmath.Float32bits(v.X),
		stdmath.Float32bits(v.Y),
		stdmath.Float32bits(v.Z),
		stdmath.Float32bits(v.W),
	}
}

var binOps4F64 = []struct {
	name string
	fn   func(a, b Vec4[float64]) Vec4[float64]
}{
	{"Add", Vec4[float64].Add},
	{"Sub", Vec4[float64].Sub},
	{"Mul", Vec4[float64].Mul},
	{"Div", Vec4[float64].Div},
	{"Min", Vec4[float64].Min},
	{"Max", Vec4[float64].Max},
}

var binOps4F32 = []struct {
	name string
	fn   func(a, b Vec4[float32]) Vec4[float32]
}{
	{"Add", Vec4[float32].Add},
	{"Sub", Vec4[float32].Sub},
	{"Mul", Vec4[float32].Mul},
	{"Div", Vec4[float32].Div},
	{"Min", Vec4[float32].Min},
	{"Max", Vec4[float32].Max},
}

// TestEquivalenceVec4Float64 runs each dispatched binary op over pairings
// of special values twice, once at the detected level and once with the
// scalar fallback forced, and requires bit-identical results.
func TestEquivalenceVec4Float64(t *testing.T) {
	type result struct {
		op   string
		a, b Vec4[float64]
		bits [4]uint64
	}
	var dispatched []result
	for _, op := range binOps4F64 {
		for i, x := range specials64 {
			for j, y := range specials64 {
				a := Vec4[float64]{x, y, specials64[(i+3)%len(specials64)], specials64[(j+5)%len(specials64)]}
				b := Vec4[float64]{y, x, specials64[(j+7)%len(specials64)], specials64[(i+1)%len(specials64)]}
				dispatched = append(dispatched, result{op.name, a, b, bits64V4(op.fn(a, b))})
			}
		}
	}

	forceScalar(t)
	idx := 0
	for _, op := range binOps4F64 {
		for i, x := range specials64 {
			for j, y := range specials64 {
				a := Vec4[float64]{x, y, specials64[(i+3)%len(specials64)], specials64[(j+5)%len(specials64)]}
				b := Vec4[float64]{y, x, specials64[(j+7)%len(specials64)], specials64[(i+1)%len(specials64)]}
				got := bits64V4(op.fn(a, b))
				want := dispatched[idx]
				idx++
				if got != want.bits {
					t.Fatalf("%s(%v, %v): scalar bits %x, dispatched bits %x", op.name, a, b, got, want.bits)
				}
			}
		}
	}
}

func TestEquivalenceVec4Float32(t *testing.T) {
	type result struct {
		bits [4]uint32
	}
	var dispatched []result
	for _, op := range binOps4F32 {
		for i, x := range specials32 {
			for j, y := range specials32 {
				a := Vec4[float32]{x, y, specials32[(i+3)%len(specials32)], specials32[(j+5)%len(specials32)]}
				b := Vec4[float32]{y, x, specials32[(j+7)%len(specials32)], specials32[(i+1)%len(specials32)]}
				dispatched = append(dispatched, result{bits32V4(op.fn(a, b))})
			}
		}
	}

	forceScalar(t)
	idx := 0
	for _, op := range binOps4F32 {
		for i, x := range specials32 {
			for j, y := range specials32 {
				a := Vec4[float32]{x, y, specials32[(i+3)%len(specials32)], specials32[(j+5)%len(specials32)]}
				b := Vec4[float32]{y, x, specials32[(j+7)%len(specials32)], specials32[(i+1)%len(specials32)]}
				got := bits32V4(op.fn(a, b))
				if got != dispatched[idx].bits {
					t.Fatalf("%s(%v, %v): scalar and dispatched results differ: %x vs %x",
						op.name, a, b, got, dispatched[idx].bits)
				}
				idx++
			}
		}
	}
}

// TestEquivalenceUnary covers the dispatched unary ops (Neg, Abs) on the
// full special-value set.
func TestEquivalenceUnary(t *testing.T) {
	var negBits, absBits [][4]uint64
	for i, x := range specials64 {
		v := Vec4[float64]{x, -x, specials64[(i+2)%len(specials64)], specials64[(i+9)%len(specials64)]}
		negBits = append(negBits, bits64V4(v.Neg()))
		absBits = append(absBits, bits64V4(v.Abs()))
	}

	forceScalar(t)
	for i, x := range specials64 {
		v := Vec4[float64]{x, -x, specials64[(i+2)%len(specials64)], specials64[(i+9)%len(specials64)]}
		if got := bits64V4(v.Neg()); got != negBits[i] {
			t.Errorf("Neg(%v): scalar bits %x, dispatched bits %x", v, got, negBits[i])
		}
		if got := bits64V4(v.Abs()); got != absBits[i] {
			t.Errorf("Abs(%v): scalar bits %x, dispatched bits %x", v, got, absBits[i])
		}
	}
}

// TestEquivalenceVec2Vec3 spot-checks the 2- and 3-component dispatch
// paths, including the padded-register route Vec3 takes for division.
func TestEquivalenceVec2Vec3(t *testing.T) {
	a2 := Vec2[float64]{stdmath.NaN(), stdmath.Inf(1)}
	b2 := Vec2[float64]{1, 0}
	a3 := Vec3[float64]{stdmath.Copysign(0, -1), -1, stdmath.MaxFloat64}
	b3 := Vec3[float64]{0, 0, 0.5}

	add2 := a2.Add(b2)
	div2 := a2.Div(b2)
	min2 := a2.Min(b2)
	add3 := a3.Add(b3)
	div3 := a3.Div(b3)
	max3 := a3.Max(b3)

	forceScalar(t)
	checks := []struct {
		name      string
		got, want any
	}{
		{"Vec2.Add", a2.Add(b2), add2},
		{"Vec2.Div", a2.Div(b2), div2},
		{"Vec2.Min", a2.Min(b2), min2},
		{"Vec3.Add", a3.Add(b3), add3},
		{"Vec3.Div", a3.Div(b3), div3},
		{"Vec3.Max", a3.Max(b3), max3},
	}
	for _, c := range checks {
		var same bool
		switch got := c.got.(type) {
		case Vec2[float64]:
			want := c.want.(Vec2[float64])
			same = stdmath.Float64bits(got.X) == stdmath.Float64bits(want.X) &&
				stdmath.Float64bits(got.Y) == stdmath.Float64bits(want.Y)
		case Vec3[float64]:
			want := c.want.(Vec3[float64])
			same = stdmath.Float64bits(got.X) == stdmath.Float64bits(want.X) &&
				stdmath.Float64bits(got.Y) == stdmath.Float64bits(want.Y) &&
				stdmath.Float64bits(got.Z) == stdmath.Float64bits(want.Z)
		}
		if !same {
			t.Errorf("%s: scalar %v differs from dispatched %v", c.name, c.got, c.want)
		}
	}
}

// TestEquivalenceIntegers checks the integer register path against the
// scalar loop, including wraparound values.
func TestEquivalenceIntegers(t *testing.T) {
	a := Vec4[int64]{stdmath.MaxInt64, stdmath.MinInt64, -1, 7}
	b := Vec4[int64]{1, -1, stdmath.MaxInt64, -7}

	add := a.Add(b)
	sub := a.Sub(b)
	mul := a.Mul(b)
	minr := a.Min(b)
	maxr := a.Max(b)

	forceScalar(t)
	if got := a.Add(b); got != add {
		t.Errorf("int64 Add: scalar %v, dispatched %v", got, add)
	}
	if got := a.Sub(b); got != sub {
		t.Errorf("int64 Sub: scalar %v, dispatched %v", got, sub)
	}
	if got := a.Mul(b); got != mul {
		t.Errorf("int64 Mul: scalar %v, dispatched %v", got, mul)
	}
	if got := a.Min(b); got != minr {
		t.Errorf("int64 Min: scalar %v, dispatched %v", got, minr)
	}
	if got := a.Max(b); got != maxr {
		t.Errorf("int64 Max: scalar %v, dispatched %v", got, maxr)
	}

	u := Vec4[uint32]{stdmath.MaxUint32, 0, 1, 1 << 31}
	w := Vec4[uint32]{1, stdmath.MaxUint32, 2, 1 << 31}
	if got, want := u.Add(w), (Vec4[uint32]{0, stdmath.MaxUint32, 3, 0}); got != want {
		t.Errorf("uint32 Add wraparound: got %v, want %v", got, want)
	}
}

// TestEquivalenceEqual checks that the register and scalar equality tiers
// agree, in particular that NaN is unequal to itself on both.
func TestEquivalenceEqual(t *testing.T) {
	nan := stdmath.NaN()
	v := Vec4[float64]{1, nan, 3, 4}
	w := Vec4[float64]{1, nan, 3, 4}
	same := Vec4[float64]{1, 2, 3, 4}

	eqNaN := v.Equal(w)
	eqSame := same.Equal(same)

	forceScalar(t)
	if got := v.Equal(w); got != eqNaN || got {
		t.Errorf("Equal with NaN: scalar %v, dispatched %v, want false", got, eqNaN)
	}
	if got := same.Equal(same); got != eqSame || !got {
		t.Errorf("Equal reflexive: scalar %v, dispatched %v, want true", got, eqSame)
	}
}
