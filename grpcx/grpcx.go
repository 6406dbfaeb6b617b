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

// Package grpcx projects status-bearing errors onto gRPC statuses, so that a
// service exposing both transports reports one logical error consistently.
package grpcx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/httperrors"
)

// StatusCode maps a supported HTTP status family onto the canonical gRPC
// code. The mapping is as closed as the HTTP dispatch: statuses outside the
// supported set resolve to codes.Unknown.
func StatusCode(httpStatus int) codes.Code {
	switch httpStatus {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return codes.InvalidArgument
	case http.StatusUnauthorized:
		return codes.Unauthenticated
	case http.StatusForbidden:
		return codes.PermissionDenied
	case http.StatusNotFound:
		return codes.NotFound
	case http.StatusInternalServerError:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// UnaryServerInterceptor returns a gRPC UnaryServerInterceptor that converts
// httperrors values raised by handlers into gRPC status errors, attaching
// field-level metadata as google.rpc.BadRequest details.
//
// Errors that do not carry a non-zero HTTP status are returned as-is, the
// same pass-through policy the HTTP normalizer applies.
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var he *httperrors.Error
		if !errors.As(err, &he) || he.Status == 0 {
			// Not ours — return as-is.
			return nil, err
		}

		return nil, Convert(he)
	}
}

// Convert builds the gRPC status error for a status-bearing error.
//
// The message is the producer's message verbatim; family defaults belong to
// the HTTP body, not the transport status. 400/422 metadata becomes a
// BadRequest detail. If attaching details fails the base status is returned
// alone rather than losing the error.
func Convert(e *httperrors.Error) error {
	base := gstatus.New(StatusCode(e.Status), e.Message)

	br := badRequest(e)
	if br == nil {
		return base.Err()
	}

	with, err := base.WithDetails(br)
	if err != nil {
		return base.Err()
	}
	return with.Err()
}

// badRequest assembles the BadRequest detail for the 400 and 422 families.
// Other families carry no field-level metadata and return nil.
func badRequest(e *httperrors.Error) *errdetails.BadRequest {
	switch e.Status {
	case http.StatusBadRequest:
		msg := e.FieldMessage
		if msg == "" {
			msg = fmt.Sprintf("%s is invalid", e.Field)
		}
		return &errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{
				{Field: e.Field, Description: msg},
			},
		}
	case http.StatusUnprocessableEntity:
		if len(e.Details) == 0 {
			return nil
		}
		violations := make([]*errdetails.BadRequest_FieldViolation, 0, len(e.Details))
		for _, d := range e.Details {
			violations = append(violations, &errdetails.BadRequest_FieldViolation{
				Field:       d.Field,
				Description: fmt.Sprintf("%s: %s", d.Resource, d.Code),
			})
		}
		return &errdetails.BadRequest{FieldViolations: violations}
	default:
		return nil
	}
}

// ExtractBadRequest pulls the BadRequest detail out of a gRPC error, if
// present. Useful in tests and client code.
func ExtractBadRequest(err error) (*errdetails.BadRequest, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok {
			return br, true
		}
	}
	return nil, false
}
