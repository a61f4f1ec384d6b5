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
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Parsing accepts the exact shape String produces: '<', exactly N
// comma-separated components, '>'. Whitespace around components is
// ignored. Malformed input reports ErrFormat; a syntactically valid
// component whose value does not fit T reports ErrOverflow.

func parseScalar[T Scalar](s string) (T, error) {
	var zero T
	k := kindOf[T]()
	bits := elemSize[T]() * 8
	switch {
	case isFloatKind(k):
		f, err := strconv.ParseFloat(s, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return zero, ErrOverflow
			}
			return zero, ErrFormat
		}
		return T(f), nil
	case isSignedKind(k):
		i, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return zero, ErrOverflow
			}
			return zero, ErrFormat
		}
		return T(i), nil
	default:
		u, err := strconv.ParseUint(s, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return zero, ErrOverflow
			}
			return zero, ErrFormat
		}
		return T(u), nil
	}
}

// splitComponents strips the angle brackets and returns exactly n
// comma-separated fields.
func splitComponents(s string, n int) ([]string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '<' || s[len(s)-1] != '>' {
		return nil, fmt.Errorf("%w: %q is not enclosed in '<' and '>'", ErrFormat, s)
	}
	fields := strings.Split(s[1:len(s)-1], ",")
	if len(fields) != n {
		return nil, fmt.Errorf("%w: expected %d components, found %d", ErrFormat, n, len(fields))
	}
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields, nil
}

// ParseVec2 parses "<x, y>".
func ParseVec2[T Scalar](s string) (Vec2[T], error) {
	fields, err := splitComponents(s, 2)
	if err != nil {
		return Vec2[T]{}, err
	}
	var v Vec2[T]
	if v.X, err = parseScalar[T](fields[0]); err != nil {
		return Vec2[T]{}, fmt.Errorf("component X %q: %w", fields[0], err)
	}
	if v.Y, err = parseScalar[T](fields[1]); err != nil {
		return Vec2[T]{}, fmt.Errorf("component Y %q: %w", fields[1], err)
	}
	return v, nil
}

// ParseVec3 parses "<x, y, z>".
func ParseVec3[T Scalar](s string) (Vec3[T], error) {
	fields, err := splitComponents(s, 3)
	if err != nil {
		return Vec3[T]{}, err
	}
	var v Vec3[T]
	if v.X, err = parseScalar[T](fields[0]); err != nil {
		return Vec3[T]{}, fmt.Errorf("component X %q: %w", fields[0], err)
	}
	if v.Y, err = parseScalar[T](fields[1]); err != nil {
		return Vec3[T]{}, fmt.Errorf("component Y %q: %w", fields[1], err)
	}
	if v.Z, err = parseScalar[T](fields[2]); err != nil {
		return Vec3[T]{}, fmt.Errorf("component Z %q: %w", fields[2], err)
	}
	return v, nil
}

// ParseVec4 parses "<x, y, z, w>".
func ParseVec4[T Scalar](s string) (Vec4[T], error) {
	fields, err := splitComponents(s, 4)
	if err != nil {
		return Vec4[T]{}, err
	}
	var v Vec4[T]
	if v.X, err = parseScalar[T](fields[0]); err != nil {
		return Vec4[T]{}, fmt.Errorf("component X %q: %w", fields[0], err)
	}
	if v.Y, err = parseScalar[T](fields[1]); err != nil {
		return Vec4[T]{}, fmt.Errorf("component Y %q: %w", fields[1], err)
	}
	if v.Z, err = parseScalar[T](fields[2]); err != nil {
		return Vec4[T]{}, fmt.Errorf("component Z %q: %w", fields[2], err)
	}
	if v.W, err = parseScalar[T](fields[3]); err != nil {
		return Vec4[T]{}, fmt.Errorf("component W %q: %w", fields[3], err)
	}
	return v, nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error v is left
// unchanged.
func (v *Vec2[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseVec2[T](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error v is left
// unchanged.
func (v *Vec3[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseVec3[T](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error v is left
// unchanged.
func (v *Vec4[T]) UnmarshalText(text []byte) error {
	parsed, err := ParseVec4[T](string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
