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

package model

// ExecutionStatus is the whole-run status of a composition execution.
type ExecutionStatus string

const (
	// ExecutionStatusRunning indicates orchestration is in progress.
	ExecutionStatusRunning ExecutionStatus = "running"
	// ExecutionStatusCompleted indicates the run settled with zero node failures.
	ExecutionStatusCompleted ExecutionStatus = "completed"
	// ExecutionStatusFailed indicates at least one node failed.
	ExecutionStatusFailed ExecutionStatus = "failed"
	// ExecutionStatusCancelled indicates the run was cancelled by its owner.
	ExecutionStatusCancelled ExecutionStatus = "cancelled"
)

// NodeStatus is the per-node outcome within a composition execution.
type NodeStatus string

const (
	// NodeStatusCompleted indicates the node's query was submitted successfully.
	NodeStatusCompleted NodeStatus = "completed"
	// NodeStatusFailed indicates the node's execution raised an error.
	NodeStatusFailed NodeStatus = "failed"
	// NodeStatusSkipped indicates the node was never attempted.
	NodeStatusSkipped NodeStatus = "skipped"
)

// Node error types recorded on failed or skipped node results.
const (
	// NodeErrorTypeValidation indicates the node's parameters failed template validation.
	NodeErrorTypeValidation = "validation_error"
	// NodeErrorTypeExecution indicates any other failure invoking the query backend.
	NodeErrorTypeExecution = "execution_error"
	// NodeErrorTypeDependencyFailure indicates the node was skipped because a predecessor failed.
	NodeErrorTypeDependencyFailure = "dependency_failure"
)

// NodeError classifies the failure recorded on a node result.
type NodeError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NodeResult is the settled outcome of one node within a composition execution.
type NodeResult struct {
	NodeID      string                 `json:"node_id"`
	Status      NodeStatus             `json:"status"`
	ExecutionID string                 `json:"execution_id,omitempty"`
	WorkflowID  string                 `json:"workflow_id,omitempty"`
	Output      map[string]interface{} `json:"output,omitempty"`
	Error       *NodeError             `json:"error,omitempty"`
}

// ResultSummary aggregates node outcomes by status.
type ResultSummary struct {
	Completed        int      `json:"completed"`
	Failed           int      `json:"failed"`
	Skipped          int      `json:"skipped"`
	CompletedNodeIDs []string `json:"completed_node_ids"`
	FailedNodeIDs    []string `json:"failed_node_ids"`
	SkippedNodeIDs   []string `json:"skipped_node_ids"`
}

// ExecutionRecord is the persisted record of one composition run.
// It is written exactly twice: once at creation in running state, and once
// with the terminal state when all reachable nodes have settled.
type ExecutionRecord struct {
	ExecutionID    string                 `json:"execution_id"`
	CompositionID  string                 `json:"composition_id"`
	UserID         string                 `json:"user_id"`
	InstanceID     string                 `json:"instance_id"`
	ScheduleID     string                 `json:"schedule_id,omitempty"`
	Status         ExecutionStatus        `json:"status"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	TotalNodes     int                    `json:"total_nodes"`
	CompletedNodes int                    `json:"completed_nodes"`
	FailedNodes    int                    `json:"failed_nodes"`
	SkippedNodes   int                    `json:"skipped_nodes"`
	StartedAt      string                 `json:"started_at"`
	CompletedAt    string                 `json:"completed_at,omitempty"`
	NodeResults    map[string]NodeResult  `json:"node_results,omitempty"`
	ResultSummary  *ResultSummary         `json:"result_summary,omitempty"`
}

// ExecutionResult is the caller-facing view of a settled composition execution.
type ExecutionResult struct {
	CompositionExecutionID string          `json:"composition_execution_id"`
	CompositionID          string          `json:"composition_id"`
	Status                 ExecutionStatus `json:"status"`
	TotalNodes             int             `json:"total_nodes"`
	CompletedNodes         int             `json:"completed_nodes"`
	FailedNodes            int             `json:"failed_nodes"`
	StartedAt              string          `json:"started_at"`
	CompletedAt            string          `json:"completed_at,omitempty"`
	Nodes                  []NodeResult    `json:"nodes"`
}

// ExecuteCompositionRequest is the request body for executing a composition.
type ExecuteCompositionRequest struct {
	InstanceID string                 `json:"instance_id"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	ScheduleID string                 `json:"schedule_id,omitempty"`
}
