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

import "errors"

// ErrOverflow is returned by checked conversions when a component value is
// not representable in the target scalar type.
var ErrOverflow = errors.New("vmath: value not representable in target type")

// ErrFormat is returned when parsing a textual vector representation fails.
var ErrFormat = errors.New("vmath: invalid vector format")
