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

// Package constants defines error constants for query execution operations.
package constants

import "github.com/recomlabs/amp/internal/system/error/serviceerror"

// Client errors for query execution operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "QEX-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorTemplateNotFound is the error returned when the referenced template is not found.
	ErrorTemplateNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "QEX-60002",
		Error:            "Template not found",
		ErrorDescription: "The template referenced by the execution request does not exist",
	}
	// ErrorParameterValidationFailed is the error returned when template parameters fail validation.
	ErrorParameterValidationFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "QEX-60003",
		Error:            "Parameter validation failed",
		ErrorDescription: "One or more template parameters are invalid",
	}
	// ErrorExecutionNotFound is the error returned when a query execution is not found.
	ErrorExecutionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "QEX-60004",
		Error:            "Execution not found",
		ErrorDescription: "The query execution with the specified id does not exist",
	}
)

// Server errors for query execution operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "QEX-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorBackendSubmissionFailed is the error returned when AMC submission fails.
	ErrorBackendSubmissionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "QEX-65002",
		Error:            "Query submission failed",
		ErrorDescription: "The query could not be submitted to the AMC backend",
	}
)
