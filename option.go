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

package httperrors

import "dirpx.dev/httperrors/apis"

// Option is a functional option for constructing or transforming an Error.
// It always takes an *Error and returns a (possibly new) *Error.
type Option func(*Error) *Error

// WithMessageOption sets the human message on the error being constructed.
// Intended to be used with E(...).
func WithMessageOption(msg string) Option {
	return func(e *Error) *Error {
		return e.WithMessage(msg)
	}
}

// WithFieldOption sets the offending field and its message on construction.
// Intended to be used with E(...) for 400-family errors.
func WithFieldOption(field, fieldMessage string) Option {
	return func(e *Error) *Error {
		return e.WithField(field, fieldMessage)
	}
}

// WithDetailOption appends a single validation detail on construction.
// Intended to be used with E(...) for 422-family errors.
func WithDetailOption(d apis.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetail(d)
	}
}

// WithDetailsOption appends multiple validation details on construction.
// Intended to be used with E(...) for 422-family errors.
func WithDetailsOption(details []apis.Detail) Option {
	return func(e *Error) *Error {
		return e.WithDetails(details)
	}
}

// WithCauseOption attaches a cause on construction.
// Intended to be used with E(...).
func WithCauseOption(err error) Option {
	return func(e *Error) *Error {
		return e.WithCause(err)
	}
}
