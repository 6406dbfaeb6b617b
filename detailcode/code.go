/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package detailcode

import (
	"bytes"
	"encoding"
	"errors"
	"strings"
)

// Code is the canonical, validated representation of a 422 detail code.
//
// It is defined as a separate type (not just string) so that other packages
// can explicitly declare which values they expect and to avoid accidental
// mixing of raw user input with the closed set of known codes.
//
// IMPORTANT: the set of valid codes is closed. Parse/Validate reject any
// value that is not one of the constants declared in codes.go.
type Code string

var (
	// ErrCodeUnknown is returned when a value is not a member of the closed
	// detail-code set.
	//
	// Having a dedicated sentinel error makes it easier for callers and tests
	// to detect "this is about code membership" vs "this is some other error".
	ErrCodeUnknown = errors.New("httperrors: unknown detail code")
)

// Ensure Code implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be embedded into larger config or API structs.
var (
	_ encoding.TextMarshaler   = (*Code)(nil)
	_ encoding.TextUnmarshaler = (*Code)(nil)
)

// Empty is the zero-value code. It is never valid: every detail entry MUST
// carry a member of the closed set.
var Empty Code = ""

// Parse takes a user-provided string, normalizes it and validates it against
// the closed set. On success it returns a canonical Code value.
func Parse(s string) (Code, error) {
	c := Code(Normalize(s))
	if err := Validate(c); err != nil {
		return Empty, err
	}
	return c, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level constants in init() or var blocks.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical code form.
//
// This function is intentionally conservative: it only performs obvious,
// non-lossy transformations:
//
//   - trims surrounding spaces;
//   - lowercases the value;
//   - replaces '-' with '_';
//
// It does NOT guarantee that the result is a known code — callers should
// still call Validate/Parse after normalization.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// Validate checks whether the provided Code is a member of the closed set.
// The empty code ("") is considered invalid.
func Validate(c Code) error {
	if !Known(c) {
		return ErrCodeUnknown
	}
	return nil
}

// Known reports whether c is a member of the closed detail-code set.
// Unlike Validate, it does not normalize: the caller is expected to hold a
// canonical value already.
func Known(c Code) bool {
	switch c {
	case AlreadyExists, Invalid, Missing, MissingField:
		return true
	default:
		return false
	}
}

// All returns the closed set of detail codes in a stable order.
// The returned slice is a fresh copy on every call.
func All() []Code {
	return []Code{AlreadyExists, Invalid, Missing, MissingField}
}

// String returns the canonical string representation of the code.
func (c Code) String() string {
	return string(c)
}

// MarshalText implements encoding.TextMarshaler.
//
// Marshaling is deliberately non-validating: in production mode the
// normalizer passes malformed producer details through as-is, so an unknown
// code must still serialize. Membership checks live in Parse/Validate/Known.
func (c Code) MarshalText() ([]byte, error) {
	return []byte(c), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (c *Code) UnmarshalText(text []byte) error {
	// We copy into a buffer to avoid changing the input slice.
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
