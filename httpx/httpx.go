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
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/adapter"
	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/mode"
)

// NextFunc is the next stage of the error pipeline. The normalizer invokes
// it with the original, unmodified error whenever the error is not its
// concern: foreign types, zero statuses, or responses that already began.
type NextFunc func(err error, w http.ResponseWriter, r *http.Request)

// HandlerFunc is an HTTP handler that reports failure by returning an error
// instead of writing an error response itself. Wrap adapts it to
// http.Handler and routes the returned error into the normalizer.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Normalizer is the terminal error-handling stage of an HTTP pipeline.
//
// It classifies status-bearing errors (see httperrors.Error) by status
// family, applies the family's default messages, and writes a single JSON
// response. A Normalizer holds no per-request state; one instance serves the
// whole process.
type Normalizer struct {
	log  *slog.Logger
	mode mode.Mode
	next NextFunc
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the structured logger used for pass-through errors and for
// the production-mode malformed-details warning. Defaults to slog.Default().
func WithLogger(log *slog.Logger) Option {
	return func(n *Normalizer) { n.log = log }
}

// WithMode sets the runtime mode that gates the 422 producer-contract
// assertion. Defaults to mode.FromEnv().
func WithMode(m mode.Mode) Option {
	return func(n *Normalizer) { n.mode = m }
}

// WithNext sets the stage that receives errors the normalizer does not
// recognize. The default stage logs the error and, when nothing has been
// written yet, answers with a plain-text 500.
func WithNext(next NextFunc) Option {
	return func(n *Normalizer) { n.next = next }
}

// New constructs a Normalizer. The zero configuration is fully usable:
// default logger, mode resolved from the environment, and a logging 500
// backstop as the next stage.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		log:  slog.Default(),
		mode: mode.FromEnv(),
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.next == nil {
		n.next = n.backstop
	}
	return n
}

// Handle normalizes err into a JSON response on w, or delegates to the next
// stage when the error is not its concern.
//
// The short-circuits, in order:
//
//  1. nil errors are ignored;
//  2. if the response already began (w implements ResponseTracker and
//     reports Written), the error goes to the next stage — never a second
//     response;
//  3. if err does not carry a non-zero HTTP status (per errors.As on
//     *httperrors.Error), it goes to the next stage unchanged.
//
// Otherwise Handle writes exactly one JSON body with the error's status and
// terminates the chain. The same input always produces the same bytes.
func (n *Normalizer) Handle(err error, w http.ResponseWriter, r *http.Request) {
	if err == nil {
		return
	}
	if tw, ok := w.(ResponseTracker); ok && tw.Written() {
		n.next(err, w, r)
		return
	}
	var he *httperrors.Error
	if !errors.As(err, &he) || he.Status == 0 {
		n.next(err, w, r)
		return
	}
	status, body := n.normalize(he)
	writeJSON(w, status, body)
}

// Wrap adapts an error-returning handler to http.Handler, installing the
// response tracker that Handle consults for the headers-sent short-circuit.
//
// Register wrapped handlers on the router as usual; the Normalizer then
// terminates every chain, which is exactly the "after all routes" placement
// the error contract requires.
func (n *Normalizer) Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tw := NewResponseTracker(w)
		if err := fn(tw, r); err != nil {
			n.Handle(err, tw, r)
		}
	})
}

// normalize is the pure mapping at the heart of the package: one
// status-bearing error in, one (status, body) pair out.
func (n *Normalizer) normalize(e *httperrors.Error) (int, any) {
	switch e.Status {
	case http.StatusBadRequest:
		fieldMsg := e.FieldMessage
		if blank(fieldMsg) {
			fieldMsg = fmt.Sprintf("%s is invalid", e.Field)
		}
		return e.Status, apis.BadRequestBody{
			Message: orDefault(e.Message, e.Status),
			Details: []apis.FieldDetail{{Field: e.Field, Message: fieldMsg}},
		}

	case http.StatusUnprocessableEntity:
		n.checkDetails(e)
		details := e.Details
		if details == nil {
			details = []apis.Detail{}
		}
		// No default message for 422; blank stays blank and is omitted
		// from the JSON by the view type.
		msg := e.Message
		if blank(msg) {
			msg = ""
		}
		return e.Status, apis.UnprocessableBody{Message: msg, Details: details}

	case http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusInternalServerError:
		return e.Status, apis.MessageBody{Message: orDefault(e.Message, e.Status)}

	default:
		// Any other numeric status: same shape, empty default.
		return e.Status, apis.MessageBody{Message: orDefault(e.Message, e.Status)}
	}
}

// backstop is the default next stage. A terminal pipeline has nothing below
// it, so unrecognized errors are logged and — if the response has not begun
// — answered with a plain-text 500.
func (n *Normalizer) backstop(err error, w http.ResponseWriter, _ *http.Request) {
	var he *httperrors.Error
	if errors.As(err, &he) {
		n.log.Error("unhandled error", slog.Any("error", adapter.ToDescriptor(he, 0)))
	} else {
		n.log.Error("unhandled error", slog.Any("error", err))
	}
	if tw, ok := w.(ResponseTracker); ok && tw.Written() {
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// blank is the single emptiness check applied to every message-like field:
// a value is blank when it is empty or whitespace-only.
func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// orDefault substitutes the status family's default message when the
// producer's message is blank.
func orDefault(msg string, status int) string {
	if blank(msg) {
		return defaultMessages[status]
	}
	return msg
}

// writeJSON serializes body and writes it with the given status. The view
// types marshal unconditionally, so a marshal failure is a bug worth a
// panic, same as a producer-contract violation.
func writeJSON(w http.ResponseWriter, status int, body any) {
	encoded, err := json.Marshal(body)
	if err != nil {
		panic(fmt.Errorf("httperrors: marshal response body: %w", err))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(encoded)
}
