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

package grpcx

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	gstatus "google.golang.org/grpc/status"
	"google.golang.org/protobuf/proto"

	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/apis"
	"dirpx.dev/httperrors/detailcode"
)

func invoke(t *testing.T, handlerErr error) error {
	t.Helper()
	interceptor := UnaryServerInterceptor()
	handler := func(context.Context, any) (any, error) {
		return nil, handlerErr
	}
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	return err
}

func TestStatusCode(t *testing.T) {
	tests := []struct {
		status int
		want   codes.Code
	}{
		{http.StatusBadRequest, codes.InvalidArgument},
		{http.StatusUnauthorized, codes.Unauthenticated},
		{http.StatusForbidden, codes.PermissionDenied},
		{http.StatusNotFound, codes.NotFound},
		{http.StatusUnprocessableEntity, codes.InvalidArgument},
		{http.StatusInternalServerError, codes.Internal},
		{http.StatusTeapot, codes.Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StatusCode(tt.status), "status %d", tt.status)
	}
}

func TestInterceptor_PassesThroughForeignErrors(t *testing.T) {
	foreign := errors.New("boom")
	err := invoke(t, foreign)
	assert.Same(t, foreign, err)
}

func TestInterceptor_PassesThroughZeroStatus(t *testing.T) {
	he := &httperrors.Error{Message: "no status"}
	err := invoke(t, he)
	assert.Same(t, error(he), err)
}

func TestInterceptor_ConvertsNotFound(t *testing.T) {
	err := invoke(t, httperrors.E(http.StatusNotFound,
		httperrors.WithMessageOption("user does not exist")))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.NotFound, st.Code())
	assert.Equal(t, "user does not exist", st.Message())

	_, hasBR := ExtractBadRequest(err)
	assert.False(t, hasBR, "message families carry no BadRequest detail")
}

func TestInterceptor_ConvertsBadRequestWithFieldViolation(t *testing.T) {
	err := invoke(t, httperrors.E(http.StatusBadRequest,
		httperrors.WithFieldOption("email", "")))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())

	br, hasBR := ExtractBadRequest(err)
	require.True(t, hasBR)
	want := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{
			{Field: "email", Description: "email is invalid"},
		},
	}
	assert.True(t, proto.Equal(want, br), "got %v", br)
}

func TestInterceptor_ConvertsUnprocessableWithDetails(t *testing.T) {
	err := invoke(t, httperrors.E(http.StatusUnprocessableEntity,
		httperrors.WithMessageOption("Cannot register"),
		httperrors.WithDetailOption(apis.Detail{
			Code: detailcode.AlreadyExists, Field: "username", Resource: "Login",
		})))

	st, ok := gstatus.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "Cannot register", st.Message())

	br, hasBR := ExtractBadRequest(err)
	require.True(t, hasBR)
	require.Len(t, br.GetFieldViolations(), 1)
	assert.Equal(t, "username", br.GetFieldViolations()[0].GetField())
	assert.Equal(t, "Login: already_exists", br.GetFieldViolations()[0].GetDescription())
}

func TestInterceptor_SuccessPassesResponse(t *testing.T) {
	interceptor := UnaryServerInterceptor()
	handler := func(context.Context, any) (any, error) {
		return "ok", nil
	}
	resp, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{}, handler)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)
}

func TestExtractBadRequest_NilAndForeign(t *testing.T) {
	_, ok := ExtractBadRequest(nil)
	assert.False(t, ok)

	_, ok = ExtractBadRequest(gstatus.Error(codes.Internal, "plain"))
	assert.False(t, ok)
}
