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

func TestRoundFamilies(t *testing.T) {
	v := Vec4[float64]{2.5, -2.5, 1.4, -1.6}
	if got := RoundV4(v); got != (Vec4[float64]{3, -3, 1, -2}) {
		t.Errorf("RoundV4 = %v, want half away from zero (3, -3, 1, -2)", got)
	}
	if got := FloorV4(v); got != (Vec4[float64]{2, -3, 1, -2}) {
		t.Errorf("FloorV4 = %v", got)
	}
	if got := CeilV4(v); got != (Vec4[float64]{3, -2, 2, -1}) {
		t.Errorf("CeilV4 = %v", got)
	}
	if got := TruncV4(v); got != (Vec4[float64]{2, -2, 1, -1}) {
		t.Errorf("TruncV4 = %v", got)
	}

	// Already-integral values and specials pass through.
	s := Vec3[float64]{5, stdmath.Inf(1), -0.0}
	if got := RoundV3(s); got != s {
		t.Errorf("RoundV3 of integral/specials = %v, want unchanged", got)
	}
	n := RoundV2(Vec2[float64]{stdmath.NaN(), 0})
	if !stdmath.IsNaN(n.X) {
		t.Errorf("RoundV2 of NaN = %v, want NaN", n.X)
	}

	// float32 rounds through the float32 kernel, no double round trip.
	f := Vec2[float32]{2.5, -0.5}
	if got := RoundV2(f); got != (Vec2[float32]{3, -1}) {
		t.Errorf("RoundV2 float32 = %v, want (3, -1)", got)
	}
}

func TestRoundToInt(t *testing.T) {
	v := Vec3[float64]{2.5, -2.5, 0.4}
	if got := RoundToIntV3[int32](v); got != (Vec3[int32]{3, -3, 0}) {
		t.Errorf("RoundToIntV3 = %v, want (3, -3, 0)", got)
	}
	if got := FloorToIntV3[int32](v); got != (Vec3[int32]{2, -3, 0}) {
		t.Errorf("FloorToIntV3 = %v, want (2, -3, 0)", got)
	}
	if got := CeilToIntV3[int32](v); got != (Vec3[int32]{3, -2, 1}) {
		t.Errorf("CeilToIntV3 = %v, want (3, -2, 1)", got)
	}

	// Saturation: out-of-range magnitudes clamp, NaN becomes zero.
	s := Vec4[float64]{1e30, -1e30, stdmath.NaN(), stdmath.Inf(1)}
	got := RoundToIntV4[int32](s)
	want := Vec4[int32]{stdmath.MaxInt32, stdmath.MinInt32, 0, stdmath.MaxInt32}
	if got != want {
		t.Errorf("RoundToIntV4 saturating = %v, want %v", got, want)
	}
	if got := FloorToIntV2[uint8](Vec2[float64]{-3.5, 300}); got != (Vec2[uint8]{0, 255}) {
		t.Errorf("FloorToIntV2[uint8] = %v, want (0, 255)", got)
	}
}
