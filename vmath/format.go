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
	"strconv"

	"golang.org/x/text/message"
)

// Textual form: "<x, y, ...>" with components in shortest round-trip
// notation. ParseVec* accepts exactly this shape back.

// formatScalar renders x in the shortest form that parses back to the
// same value.
func formatScalar[T Scalar](x T) string {
	switch k := kindOf[T](); {
	case k == kindF32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case k == kindF64:
		return strconv.FormatFloat(float64(x), 'g', -1, 64)
	case isSignedKind(k):
		return strconv.FormatInt(int64(x), 10)
	default:
		return strconv.FormatUint(uint64(x), 10)
	}
}

func appendScalar[T Scalar](b []byte, x T) []byte {
	switch k := kindOf[T](); {
	case k == kindF32:
		return strconv.AppendFloat(b, float64(x), 'g', -1, 32)
	case k == kindF64:
		return strconv.AppendFloat(b, float64(x), 'g', -1, 64)
	case isSignedKind(k):
		return strconv.AppendInt(b, int64(x), 10)
	default:
		return strconv.AppendUint(b, uint64(x), 10)
	}
}

// String returns the vector as "<x, y>".
func (v Vec2[T]) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// String returns the vector as "<x, y, z>".
func (v Vec3[T]) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// String returns the vector as "<x, y, z, w>".
func (v Vec4[T]) String() string {
	b, _ := v.AppendText(nil)
	return string(b)
}

// AppendText appends the textual form of v to b. It implements
// encoding.TextAppender and never fails.
func (v Vec2[T]) AppendText(b []byte) ([]byte, error) {
	b = append(b, '<')
	b = appendScalar(b, v.X)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.Y)
	return append(b, '>'), nil
}

// AppendText appends the textual form of v to b. It implements
// encoding.TextAppender and never fails.
func (v Vec3[T]) AppendText(b []byte) ([]byte, error) {
	b = append(b, '<')
	b = appendScalar(b, v.X)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.Y)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.Z)
	return append(b, '>'), nil
}

// AppendText appends the textual form of v to b. It implements
// encoding.TextAppender and never fails.
func (v Vec4[T]) AppendText(b []byte) ([]byte, error) {
	b = append(b, '<')
	b = appendScalar(b, v.X)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.Y)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.Z)
	b = append(b, ',', ' ')
	b = appendScalar(b, v.W)
	return append(b, '>'), nil
}

// MarshalText implements encoding.TextMarshaler.
func (v Vec2[T]) MarshalText() ([]byte, error) { return v.AppendText(nil) }

// MarshalText implements encoding.TextMarshaler.
func (v Vec3[T]) MarshalText() ([]byte, error) { return v.AppendText(nil) }

// MarshalText implements encoding.TextMarshaler.
func (v Vec4[T]) MarshalText() ([]byte, error) { return v.AppendText(nil) }

// FormatV2 renders v with p's locale conventions (digit grouping, decimal
// separator). The result is for display only; ParseVec2 does not accept it.
func FormatV2[T Scalar](p *message.Printer, v Vec2[T]) string {
	return p.Sprintf("<%v, %v>", v.X, v.Y)
}

// FormatV3 renders v with p's locale conventions. Display only.
func FormatV3[T Scalar](p *message.Printer, v Vec3[T]) string {
	return p.Sprintf("<%v, %v, %v>", v.X, v.Y, v.Z)
}

// FormatV4 renders v with p's locale conventions. Display only.
func FormatV4[T Scalar](p *message.Printer, v Vec4[T]) string {
	return p.Sprintf("<%v, %v, %v, %v>", v.X, v.Y, v.Z, v.W)
}
