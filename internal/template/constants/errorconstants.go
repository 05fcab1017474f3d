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

// Package constants defines error constants for query template management operations.
package constants

import "github.com/recomlabs/amp/internal/system/error/serviceerror"

// Client errors for template management operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "TPL-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingTemplateID is the error returned when the template ID is missing.
	ErrorMissingTemplateID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "TPL-60002",
		Error:            "Invalid request format",
		ErrorDescription: "Template ID is required",
	}
	// ErrorTemplateNotFound is the error returned when a template is not found.
	ErrorTemplateNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "TPL-60003",
		Error:            "Template not found",
		ErrorDescription: "The template with the specified id does not exist",
	}
	// ErrorTemplateAccessDenied is the error returned when the caller cannot access the template.
	ErrorTemplateAccessDenied = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "TPL-60004",
		Error:            "Access denied",
		ErrorDescription: "The template is private and owned by another user",
	}
	// ErrorInvalidParameterDefinition is the error returned when a parameter definition is invalid.
	ErrorInvalidParameterDefinition = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "TPL-60005",
		Error:            "Invalid parameter definition",
		ErrorDescription: "A template parameter definition has a missing name or unsupported type",
	}
)

// Server errors for template management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "TPL-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
