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

package adapter

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/detailcode"
)

func TestToDescriptor(t *testing.T) {
	e := httperrors.E(http.StatusUnprocessableEntity,
		httperrors.WithMessageOption("Cannot register"),
		httperrors.WithDetailOption(apis.Detail{
			Code: detailcode.AlreadyExists, Field: "username", Resource: "Login",
		}))

	d := ToDescriptor(e, 3)

	if d.Status != http.StatusUnprocessableEntity {
		t.Fatalf("Status = %d", d.Status)
	}
	if d.GRPCCode != 3 {
		t.Fatalf("GRPCCode = %d", d.GRPCCode)
	}
	if d.Message != "Cannot register" {
		t.Fatalf("Message = %q", d.Message)
	}
	if d.DetailCount != 1 {
		t.Fatalf("DetailCount = %d", d.DetailCount)
	}
}

func TestToDescriptor_Nil(t *testing.T) {
	d := ToDescriptor(nil, 0)
	if d != (apis.ErrorDescriptor{}) {
		t.Fatalf("nil error must yield zero descriptor, got %+v", d)
	}
}

func TestDescriptor_LogValue(t *testing.T) {
	e := httperrors.E(http.StatusBadRequest).WithField("email", "")

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	log.Error("unhandled error", slog.Any("error", ToDescriptor(e, 0)))

	out := buf.String()
	for _, want := range []string{`"status":400`, `"field":"email"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}
