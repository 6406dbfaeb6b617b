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

// Package httperrors defines the status-bearing error type that the dirpx
// HTTP error normalizer consumes.
//
// Handlers construct an *Error with an HTTP status and optional metadata and
// return (or panic with) it; the terminal httpx stage classifies the value by
// status family and writes a consistent JSON body. Errors that do not carry a
// status are never normalized and flow through the pipeline untouched.
package httperrors

import (
	"fmt"

	"dirpx.dev/httperrors/apis"
)

// Error is the canonical status-bearing error for dirpx HTTP services.
//
// It carries:
//   - Status: the HTTP status code that selects the response family (required);
//   - Message: optional human-oriented override for the family default;
//   - Field / FieldMessage: the offending request parameter (400 family only);
//   - Details: structured validation entries (422 family only);
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Status is the HTTP status code this error should be rendered with,
	// e.g. 400, 404, 422. The zero value means "not a normalizable error":
	// the normalizer treats such values as foreign and delegates them to the
	// next pipeline stage.
	Status int

	// Message is a human-readable explanation. When blank, the normalizer
	// substitutes the fixed default message of the status family (except for
	// 422, where the message is passed through as-is).
	Message string

	// Field names the offending request parameter. Consumed only by the 400
	// family, where it seeds the single response detail.
	Field string

	// FieldMessage overrides the per-field message of the 400 family.
	// When blank, the normalizer renders "<field> is invalid".
	FieldMessage string

	// Details lists structured validation failures. Consumed only by the 422
	// family. The slice is treated as immutable: WithDetail/WithDetails
	// always copy it.
	Details []apis.Detail

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return httperrors.E(http.StatusUnprocessableEntity,
//	    httperrors.WithMessageOption("username is taken"),
//	    httperrors.WithDetailOption(apis.Detail{
//	        Code:     detailcode.AlreadyExists,
//	        Field:    "username",
//	        Resource: "Login",
//	    }),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(status int, opts ...Option) *Error {
	e := &Error{Status: status}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	httperrors: status=<status>: <message>
//
// or, when no message is set:
//
//	httperrors: status=<status>
//
// This keeps log lines scannable without duplicating the JSON body.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message != "" {
		return fmt.Sprintf("httperrors: status=%d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("httperrors: status=%d", e.Status)
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// HTTPStatus implements apis.StatusError.
func (e *Error) HTTPStatus() int { return e.Status }

// ErrorDetails implements apis.DetailedError. May return nil.
func (e *Error) ErrorDetails() []apis.Detail { return e.Details }

// WithMessage returns a shallow copy of e with a replaced human message.
// The original error is not modified.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithField returns a shallow copy of e with the offending field and its
// per-field message set. Only the 400 family consumes these attributes.
func (e *Error) WithField(field, fieldMessage string) *Error {
	cp := *e
	cp.Field = field
	cp.FieldMessage = fieldMessage
	return &cp
}

// WithDetail returns a shallow copy of e with one extra validation detail.
//
// The method always copies the slice to preserve immutability. This prevents
// surprising modifications across goroutines or shared error values.
func (e *Error) WithDetail(d apis.Detail) *Error {
	cp := *e
	ds := make([]apis.Detail, len(cp.Details), len(cp.Details)+1)
	copy(ds, cp.Details)
	cp.Details = append(ds, d)
	return &cp
}

// WithDetails returns a shallow copy of e with all provided details appended.
//
// If the Error already has Details, the existing slice is copied first, so
// the original remains untouched.
func (e *Error) WithDetails(details []apis.Detail) *Error {
	if len(details) == 0 {
		return e
	}
	cp := *e
	ds := make([]apis.Detail, len(cp.Details), len(cp.Details)+len(details))
	copy(ds, cp.Details)
	cp.Details = append(ds, details...)
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}
