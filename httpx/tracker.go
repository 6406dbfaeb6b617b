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

// ResponseTracker is a ResponseWriter that knows whether the response has
// begun. The normalizer consults it before writing: once any handler has
// written a status line or body bytes, errors can no longer be rendered and
// must flow to the next stage instead.
type ResponseTracker interface {
	http.ResponseWriter

	// Written reports whether a status line or body bytes have been sent.
	Written() bool

	// Status returns the status code sent to the client, or 0 when the
	// response has not begun.
	Status() int
}

// NewResponseTracker wraps w so that writes are observable. If w already
// tracks itself, it is returned unchanged — wrapping twice would make the
// outer tracker blind to writes recorded by the inner one.
func NewResponseTracker(w http.ResponseWriter) ResponseTracker {
	if tw, ok := w.(ResponseTracker); ok {
		return tw
	}
	return &responseTracker{ResponseWriter: w}
}

type responseTracker struct {
	http.ResponseWriter
	status int
}

func (w *responseTracker) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseTracker) Write(b []byte) (int, error) {
	// An implicit 200, same as net/http.
	if w.status == 0 {
		w.status = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseTracker) Written() bool { return w.status != 0 }

func (w *responseTracker) Status() int { return w.status }
