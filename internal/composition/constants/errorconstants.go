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

// Package constants defines error constants for composition management and execution.
package constants

import "github.com/recomlabs/amp/internal/system/error/serviceerror"

// Client errors for composition operations.
var (
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60001",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorMissingCompositionID is the error returned when the composition ID is missing.
	ErrorMissingCompositionID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60002",
		Error:            "Invalid request format",
		ErrorDescription: "Composition ID is required",
	}
	// ErrorCompositionNotFound is the error returned when a composition is not found.
	ErrorCompositionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60003",
		Error:            "Composition not found",
		ErrorDescription: "The composition with the specified id does not exist",
	}
	// ErrorCompositionAccessDenied is the error returned when the caller cannot access the composition.
	ErrorCompositionAccessDenied = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60004",
		Error:            "Access denied",
		ErrorDescription: "The composition is private and owned by another user",
	}
	// ErrorCyclicGraph is the error returned when the composition graph contains a cycle.
	ErrorCyclicGraph = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60005",
		Error:            "Cyclic composition graph",
		ErrorDescription: "The composition's nodes and connections do not form a directed acyclic graph",
	}
	// ErrorNodeNotFound is the error returned when a node is not found in the composition.
	ErrorNodeNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60006",
		Error:            "Node not found",
		ErrorDescription: "The node with the specified id does not exist in the composition",
	}
	// ErrorConnectionEndpointNotFound is the error returned when a connection references a missing node.
	ErrorConnectionEndpointNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60007",
		Error:            "Connection endpoint not found",
		ErrorDescription: "The connection's source or target node does not exist in the composition",
	}
	// ErrorDuplicateConnectionID is the error returned when a connection id collides.
	ErrorDuplicateConnectionID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60008",
		Error:            "Duplicate connection id",
		ErrorDescription: "A connection with the same id already exists in the composition",
	}
	// ErrorConnectionNotFound is the error returned when a connection is not found.
	ErrorConnectionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60009",
		Error:            "Connection not found",
		ErrorDescription: "The connection with the specified id does not exist in the composition",
	}
	// ErrorExecutionNotFound is the error returned when a composition execution is not found.
	ErrorExecutionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60010",
		Error:            "Execution not found",
		ErrorDescription: "The composition execution with the specified id does not exist",
	}
	// ErrorMissingInstanceID is the error returned when the execution request lacks an instance id.
	ErrorMissingInstanceID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "CMP-60011",
		Error:            "Invalid request format",
		ErrorDescription: "Instance ID is required to execute a composition",
	}
)

// Server errors for composition operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMP-65001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
	// ErrorExecutionRecordFailure is the error returned when the execution record cannot be persisted.
	ErrorExecutionRecordFailure = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "CMP-65002",
		Error:            "Execution record failure",
		ErrorDescription: "The composition execution record could not be persisted",
	}
)
