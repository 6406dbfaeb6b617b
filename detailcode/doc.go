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

// Package detailcode provides parsing, normalization and validation for the
// detail codes carried by 422 (Unprocessable Entity) error responses.
//
// A "detail code" classifies a single field-level validation failure, such as
// "already_exists" or "missing_field". Unlike free-form error codes, the set
// of detail codes is closed: producers may only use the constants declared in
// this package, and the normalizer asserts membership in non-production mode.
//
// Codes are meant to be:
//
//   - short and stable;
//   - lowercased;
//   - underscore-separated (not dash-separated);
//   - suitable for use in JSON payloads and client-side switch statements.
//
// IMPORTANT: Empty codes ("") are NOT allowed. Every detail MUST have a
// code from the closed set.
package detailcode
