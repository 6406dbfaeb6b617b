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

package httpx

import "net/http"

// defaultMessages defines the fixed default message of each supported status
// family, used when the producer supplied no message of its own.
//
// The set is closed on purpose: the normalizer's policy is a fixed mapping,
// not a registry (statuses outside this table render with an empty message).
// The strings are part of the wire contract — clients match on them — so
// they must not be reworded casually.
var defaultMessages = map[int]string{
	http.StatusBadRequest:          "Invalid request parameter.", // Malformed request parameter; details name the field.
	http.StatusUnauthorized:        "Invalid credentials",        // Authentication missing or failed.
	http.StatusForbidden:           "Insufficient authority",     // Authenticated but not allowed.
	http.StatusNotFound:            "Not Found",                  // Target resource does not exist.
	http.StatusInternalServerError: "Internal Server Error",      // Unclassified server-side failure.

	// 422 is deliberately absent: its message is passed through verbatim
	// and omitted from the body when the producer set none.
}
