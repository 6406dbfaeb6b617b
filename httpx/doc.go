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

// Package httpx contains the HTTP error normalizer: the terminal stage of a
// request-handling pipeline that turns status-bearing errors into consistent
// JSON responses.
//
// Handlers are written as error-returning functions and wrapped with
// Normalizer.Wrap; any returned error reaches Normalizer.Handle, which
// classifies it by HTTP status family, applies the family's defaults, and
// writes exactly one JSON body. Errors the normalizer does not recognize —
// foreign error types, zero statuses, or errors arriving after the response
// has begun — are delegated to the configured next stage untouched.
//
// The normalizer holds no per-request state and is safe for unbounded
// concurrent use.
//
// The package also ships the small set of pipeline middlewares a service
// needs around the normalizer: request-id propagation, request logging, and
// panic recovery.
package httpx
