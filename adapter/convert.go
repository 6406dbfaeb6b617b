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

// Package adapter converts concrete httperrors values into the portable view
// types of the apis package.
package adapter

import (
	"dirpx.dev/httperrors"
	"dirpx.dev/httperrors/apis"
)

// ToDescriptor converts a status-bearing error into a portable
// ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It summarizes the error's metadata without reproducing the
// response body: details are counted, not copied, so a descriptor is always
// cheap to log.
//
// The optional grpcCode records the transport projection resolved by the
// grpcx adapter; pass 0 when the error was handled over plain HTTP.
func ToDescriptor(e *httperrors.Error, grpcCode int) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Status:      e.Status,
		GRPCCode:    grpcCode,
		Message:     e.Message,
		Field:       e.Field,
		DetailCount: len(e.Details),
	}
}
