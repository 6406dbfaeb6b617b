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

import "dirpx.dev/httperrors/detailcode"

// Detail represents a single structured validation failure attached to a 422
// error. This is a *view type* — small, transport-friendly, and serialized
// into the response body exactly as stored.
//
// We keep it in apis so that different parts of the system (error producers,
// the HTTP normalizer, the gRPC adapter, loggers) can speak about "details"
// without importing the concrete error implementation.
type Detail struct {
	// Code classifies the failure. It MUST be a member of the closed set
	// declared in detailcode; the normalizer asserts membership in
	// non-production mode.
	Code detailcode.Code `json:"code"`

	// Field names the offending field, e.g. "username" or "email".
	Field string `json:"field"`

	// Resource names the resource type the field belongs to, e.g. "Login"
	// or "User".
	Resource string `json:"resource"`
}

// FieldDetail is the single detail entry of a 400 (Bad Request) body. It
// pairs the offending parameter with a human-readable message.
//
// Unlike Detail, it carries no code: the 400 family reports exactly one
// malformed request parameter, and the message is the whole story.
type FieldDetail struct {
	// Field names the offending request parameter.
	Field string `json:"field"`

	// Message explains the failure, e.g. "email is invalid".
	Message string `json:"message"`
}
