/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package constants defines error constants for brand management operations.
package constants

import "github.com/recomlabs/amp/internal/system/error/serviceerror"

// Client errors for brand operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorBrandNotFound is the error returned when a brand is not found.
	ErrorBrandNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-60002",
		Error:            "Brand not found",
		ErrorDescription: "The brand with the specified id does not exist",
	}
	// ErrorBrandAccessDenied is the error returned when the caller does not own the brand.
	ErrorBrandAccessDenied = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "BRD-60003",
		Error:            "Access denied",
		ErrorDescription: "The brand is owned by another user",
	}
)

// Server errors for brand operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "BRD-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
