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

// The types in this file are the exact JSON bodies the normalizer writes.
// They are *not* the error types used internally — they are the shapes we
// are comfortable exposing over the wire. Keeping them here (in apis) lets
// the HTTP normalizer, the gRPC adapter and tests share one definition.

// MessageBody is the response body of the 401, 403, 404, 500 and fallback
// families.
//
// Message is always present, even when empty: the fallback family renders
// unknown statuses as {"message": ""} when no override is given.
type MessageBody struct {
	// Message is the family default or the producer's override.
	Message string `json:"message"`
}

// BadRequestBody is the response body of the 400 (Bad Request) family.
//
// It always carries exactly one detail describing the offending request
// parameter.
type BadRequestBody struct {
	// Message is "Invalid request parameter." unless overridden.
	Message string `json:"message"`

	// Details holds the single offending parameter and its message.
	Details []FieldDetail `json:"details"`
}

// UnprocessableBody is the response body of the 422 (Unprocessable Entity)
// family.
//
// Unlike the other families, Message has no default: it is passed through
// from the producer and omitted from the JSON entirely when blank.
type UnprocessableBody struct {
	// Message is the producer's message, if any.
	Message string `json:"message,omitempty"`

	// Details lists the structured validation failures. It is never null:
	// a producer that supplied no details renders as an empty array.
	Details []Detail `json:"details"`
}
