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

package apis

import "log/slog"

// ErrorDescriptor is a flat, transport-friendly description of a normalized
// error.
//
// It is intended for structured logging, tracing, or message bus propagation
// — never for the response body itself. The descriptor carries the dispatch
// status together with a safe summary of the error's metadata.
//
// This type intentionally uses plain strings and ints so that it can live in
// the public "apis" layer and survive JSON round-trips.
type ErrorDescriptor struct {
	// Status is the HTTP status the error was (or would be) rendered with.
	Status int `json:"status"`

	// GRPCCode is the gRPC status code resolved by the grpcx adapter (as
	// integer). A value of 0 means "not resolved over gRPC".
	GRPCCode int `json:"grpc_code,omitempty"`

	// Message is the producer's message, if any. Family defaults are not
	// substituted here; loggers want to see what the producer actually said.
	Message string `json:"message,omitempty"`

	// Field is the offending request parameter of a 400-family error.
	Field string `json:"field,omitempty"`

	// DetailCount is the number of structured details on a 422-family error.
	DetailCount int `json:"detail_count,omitempty"`
}

// LogValue implements slog.LogValuer so a descriptor can be passed straight
// to slog attributes without pre-flattening.
func (d ErrorDescriptor) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 5)
	attrs = append(attrs, slog.Int("status", d.Status))
	if d.GRPCCode != 0 {
		attrs = append(attrs, slog.Int("grpc_code", d.GRPCCode))
	}
	if d.Message != "" {
		attrs = append(attrs, slog.String("message", d.Message))
	}
	if d.Field != "" {
		attrs = append(attrs, slog.String("field", d.Field))
	}
	if d.DetailCount != 0 {
		attrs = append(attrs, slog.Int("detail_count", d.DetailCount))
	}
	return slog.GroupValue(attrs...)
}
