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

package httperrors

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/detailcode"
)

func TestError_Basics(t *testing.T) {
	e := E(http.StatusUnprocessableEntity,
		WithMessageOption("username is taken"),
		WithDetailOption(apis.Detail{
			Code:     detailcode.AlreadyExists,
			Field:    "username",
			Resource: "Login",
		}),
	)

	if e.Status != http.StatusUnprocessableEntity {
		t.Fatal("status mismatch")
	}
	if len(e.Details) != 1 || e.Details[0].Field != "username" {
		t.Fatal("detail missing")
	}

	s := e.Error()
	wantSubs := []string{"422", "username is taken"}
	for _, sub := range wantSubs {
		if !strings.Contains(s, sub) {
			t.Fatalf("Error() missing %q in %q", sub, s)
		}
	}
}

func TestError_NoMessage(t *testing.T) {
	e := E(http.StatusNotFound)
	if got, want := e.Error(), "httperrors: status=404"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestError_Immutability_CopyOnWrite(t *testing.T) {
	e1 := E(http.StatusUnprocessableEntity).WithDetail(apis.Detail{
		Code: detailcode.Missing, Field: "email", Resource: "User",
	})
	e2 := e1.WithDetail(apis.Detail{
		Code: detailcode.Invalid, Field: "age", Resource: "User",
	})

	if len(e1.Details) != 1 || len(e2.Details) != 2 {
		t.Fatal("details size mismatch")
	}
	if e1.Details[0].Field != "email" {
		t.Fatal("original mutated")
	}
}

func TestError_WithField_CopyOnWrite(t *testing.T) {
	e1 := E(http.StatusBadRequest)
	e2 := e1.WithField("email", "email must be unique")

	if e1.Field != "" || e1.FieldMessage != "" {
		t.Fatal("original mutated")
	}
	if e2.Field != "email" || e2.FieldMessage != "email must be unique" {
		t.Fatal("field not set on copy")
	}
}

func TestError_WithCause_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := E(http.StatusInternalServerError).WithCause(root)
	if !errors.Is(e, root) {
		t.Fatal("errors.Is failed")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap failed")
	}
}

func TestError_WithDetails_Append(t *testing.T) {
	e := E(http.StatusUnprocessableEntity).WithDetails([]apis.Detail{
		{Code: detailcode.Missing, Field: "email", Resource: "User"},
	})
	e2 := e.WithDetails([]apis.Detail{
		{Code: detailcode.MissingField, Field: "name", Resource: "User"},
		{Code: detailcode.Invalid, Field: "age", Resource: "User"},
	})
	if len(e.Details) != 1 {
		t.Fatal("original mutated")
	}
	if len(e2.Details) != 3 {
		t.Fatalf("append failed, got %d details", len(e2.Details))
	}
	// Appending an empty slice must not allocate a copy.
	if e3 := e2.WithDetails(nil); e3 != e2 {
		t.Fatal("WithDetails(nil) must return the receiver")
	}
}

func TestError_InterfaceSurface(t *testing.T) {
	e := E(http.StatusForbidden)
	var se apis.StatusError
	if !errors.As(error(e), &se) {
		t.Fatal("Error must implement apis.StatusError")
	}
	if se.HTTPStatus() != http.StatusForbidden {
		t.Fatal("HTTPStatus mismatch")
	}
	var de apis.DetailedError
	if !errors.As(error(e), &de) {
		t.Fatal("Error must implement apis.DetailedError")
	}
	if de.ErrorDetails() != nil {
		t.Fatal("expected nil details")
	}
}
