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

	"golang.org/x/image/math/f32"
)

func TestF32Interop(t *testing.T) {
	v3 := Vec3[float32]{1.5, -2.25, float32(stdmath.NaN())}
	img := ToF32V3(v3)
	if img[0] != 1.5 || img[1] != -2.25 {
		t.Errorf("ToF32V3 = %v", img)
	}
	back := FromF32V3(img)
	if stdmath.Float32bits(back.Z) != stdmath.Float32bits(v3.Z) {
		t.Error("f32 round trip changed NaN bits")
	}
	if back.X != v3.X || back.Y != v3.Y {
		t.Errorf("FromF32V3 = %v, want %v", back, v3)
	}

	v2 := Vec2[float32]{7, 8}
	if got := FromF32V2(ToF32V2(v2)); got != v2 {
		t.Errorf("Vec2 f32 round trip = %v", got)
	}
	v4 := Vec4[float32]{1, 2, 3, 4}
	if got := ToF32V4(v4); got != (f32.Vec4{1, 2, 3, 4}) {
		t.Errorf("ToF32V4 = %v", got)
	}

	m := IdentityM4[float32]()
	fm := ToF32M4(m)
	// Row-major: element (1, 1) of the identity sits at index 5.
	if fm[0] != 1 || fm[5] != 1 || fm[1] != 0 {
		t.Errorf("ToF32M4 identity = %v", fm)
	}
	if got := FromF32M4(fm); !got.Equal(m) {
		t.Errorf("Mat4 f32 round trip = %v", got)
	}
}
