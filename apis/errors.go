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

// StatusError represents an error that carries the HTTP status code it
// should be rendered with.
//
// The status is the primary dispatch key of the normalizer: it selects the
// response family (400, 401, 403, 404, 422, 500, or the generic fallback)
// and, with it, the shape of the JSON body and its default message.
//
// Implementations MUST return 0 when no status is assigned. A zero status
// means "not a normalizable error": the normalizer passes such values to the
// next pipeline stage untouched, exactly like errors that do not implement
// this interface at all.
type StatusError interface {
	error

	// HTTPStatus returns the HTTP status code for this error, or 0 when the
	// error is not meant to be normalized.
	HTTPStatus() int
}

// DetailedError represents an error that exposes zero or more structured
// validation details. This is the 422 (Unprocessable Entity) contract, where
// multiple fields may fail at once and the client needs to see *all* of them.
//
// Implementations SHOULD return a slice that is safe to iterate over and that
// will not be modified by the callee. Returning nil is allowed and simply
// means "no details"; the normalizer renders it as an empty JSON array.
type DetailedError interface {
	error

	// ErrorDetails returns structured details of the error. May return nil.
	ErrorDetails() []Detail
}
