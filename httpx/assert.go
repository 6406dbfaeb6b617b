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

import (
	"fmt"
	"log/slog"

	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/adapter"
	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/detailcode"
)

// checkDetails enforces the 422 producer contract.
//
// Outside production mode a violation panics: a malformed 422 is a bug in
// the error producer, not a client-facing condition, and it must surface
// immediately during development. In production mode the response is written
// as-is, but the violation is still logged at Warn so malformed producer
// calls do not disappear silently.
func (n *Normalizer) checkDetails(e *httperrors.Error) {
	err := validateDetails(e.Details)
	if err == nil {
		return
	}
	if n.mode.IsProduction() {
		n.log.Warn("malformed 422 details passed through",
			slog.Any("error", adapter.ToDescriptor(e, 0)),
			slog.Any("violation", err),
		)
		return
	}
	panic(fmt.Sprintf("httperrors: 422 producer contract violated: %v", err))
}

// validateDetails checks the structural invariants of a 422 details slice:
// non-empty, and every entry carries a known code plus a non-blank field and
// resource.
func validateDetails(details []apis.Detail) error {
	if len(details) == 0 {
		return fmt.Errorf("details must not be empty")
	}
	for i, d := range details {
		if !detailcode.Known(d.Code) {
			return fmt.Errorf("details[%d]: unknown code %q", i, d.Code)
		}
		if blank(d.Field) {
			return fmt.Errorf("details[%d]: field must be set", i)
		}
		if blank(d.Resource) {
			return fmt.Errorf("details[%d]: resource must be set", i)
		}
	}
	return nil
}
