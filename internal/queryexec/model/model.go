/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
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

// Package model defines the data structures for query execution operations.
package model

import "errors"

// ErrExecutionNotFound is returned by the store when a query execution does not exist.
var ErrExecutionNotFound = errors.New("query execution not found")

// ExecutionHandle identifies a submitted query execution on the AMC side.
// Output carries the backend's response payload so downstream composition
// nodes can map fields out of it.
type ExecutionHandle struct {
	ExecutionID string                 `json:"execution_id"`
	WorkflowID  string                 `json:"workflow_id,omitempty"`
	Status      string                 `json:"status"`
	Output      map[string]interface{} `json:"output,omitempty"`
}

// QueryExecution is the persisted record of one template query submission.
type QueryExecution struct {
	ExecutionID            string                 `json:"execution_id"`
	TemplateID             string                 `json:"template_id"`
	InstanceID             string                 `json:"instance_id"`
	UserID                 string                 `json:"user_id"`
	WorkflowID             string                 `json:"workflow_id,omitempty"`
	Status                 string                 `json:"status"`
	Parameters             map[string]interface{} `json:"parameters,omitempty"`
	CompositionExecutionID string                 `json:"composition_execution_id,omitempty"`
	CompositionNodeID      string                 `json:"composition_node_id,omitempty"`
	SubmittedAt            string                 `json:"submitted_at,omitempty"`
}

// ExecuteTemplateRequest is the request body for direct template execution.
type ExecuteTemplateRequest struct {
	TemplateID string                 `json:"template_id"`
	InstanceID string                 `json:"instance_id"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
}
