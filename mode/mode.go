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

package mode

import (
	"bytes"
	"encoding"
	"errors"
	"os"
	"strings"
)

// Mode is the canonical, validated representation of a runtime mode.
//
// It is defined as a separate type (not just string) so that packages which
// branch on the mode can explicitly declare the dependency and so that raw
// environment input is normalized exactly once.
type Mode string

// The closed set of runtime modes.
const (
	// Development is the default mode. Producer-contract assertions are
	// enabled and panic on violation.
	Development Mode = "development"

	// Test behaves like Development with respect to assertions. It exists so
	// that test harnesses can be distinguished from local development in
	// logs and configuration.
	Test Mode = "test"

	// Production is the production-like mode. Producer-contract assertions
	// are skipped; malformed input is logged and passed through rather than
	// crashing live traffic.
	Production Mode = "production"
)

// EnvVar is the environment variable FromEnv reads the mode from.
const EnvVar = "APP_ENV"

var (
	// ErrModeUnknown is returned when a value is not a member of the closed
	// mode set.
	ErrModeUnknown = errors.New("httperrors: unknown runtime mode")
)

// Ensure Mode implements encoding.TextMarshaler / encoding.TextUnmarshaler
// so it can be decoded directly by envconfig-style configuration structs.
var (
	_ encoding.TextMarshaler   = (*Mode)(nil)
	_ encoding.TextUnmarshaler = (*Mode)(nil)
)

// Parse takes a user-provided string, normalizes it and validates it against
// the closed set. On success it returns a canonical Mode value.
//
// As a convenience, the common short forms "dev" and "prod" are accepted and
// expanded to their canonical values.
func Parse(s string) (Mode, error) {
	m := Mode(Normalize(s))
	switch m {
	case "dev":
		m = Development
	case "prod":
		m = Production
	}
	if err := Validate(m); err != nil {
		return "", err
	}
	return m, nil
}

// MustParse is the panic-on-error variant of Parse. It is useful for
// declaring package-level values in init() or var blocks.
func MustParse(s string) Mode {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Normalize takes an arbitrary string and tries to bring it closer to the
// canonical mode form. It trims surrounding spaces and lowercases the value;
// it does NOT guarantee that the result is a known mode.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Validate checks whether the provided Mode is a member of the closed set.
// The empty mode ("") is considered invalid.
func Validate(m Mode) error {
	switch m {
	case Development, Test, Production:
		return nil
	default:
		return ErrModeUnknown
	}
}

// FromEnv resolves the runtime mode from the APP_ENV environment variable.
//
// Unset or unrecognized values resolve to Development: the safe default is
// the one with assertions enabled, so misconfigured environments fail loudly
// during development rather than silently relaxing the contract checks.
func FromEnv() Mode {
	m, err := Parse(os.Getenv(EnvVar))
	if err != nil {
		return Development
	}
	return m
}

// IsProduction reports whether the mode is production-like, i.e. whether
// development-time contract assertions must be skipped.
func (m Mode) IsProduction() bool {
	return m == Production
}

// String returns the canonical string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if err := Validate(m); err != nil {
		return nil, err
	}
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// It normalizes and validates the provided text before assigning.
func (m *Mode) UnmarshalText(text []byte) error {
	s := string(bytes.TrimSpace(text))
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
