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

// The closed set of 422 detail codes.
//
// These codes describe why a single field of a resource could not be
// processed. They are the only values the normalizer accepts in a 422
// details entry; anything else is a producer bug, surfaced by the
// development-mode contract assertion.
const (
	// AlreadyExists indicates that the field value collides with an existing
	// resource, e.g. a taken username or a duplicate email address.
	AlreadyExists Code = "already_exists"

	// Invalid indicates that the field value violates a structural or
	// semantic constraint: wrong format, out-of-range value, bad charset.
	Invalid Code = "invalid"

	// Missing indicates that a resource the field refers to does not exist,
	// e.g. a foreign key pointing at a deleted row.
	Missing Code = "missing"

	// MissingField indicates that a required field was not supplied at all.
	MissingField Code = "missing_field"
)
