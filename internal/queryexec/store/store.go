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

// Package store provides the implementation for query execution persistence operations.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/recomlabs/amp/internal/queryexec/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// CreateQueryExecution records a submitted query execution in the runtime database.
func CreateQueryExecution(execution model.QueryExecution) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(execution.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal execution parameters: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateQueryExecution,
		execution.ExecutionID,
		execution.TemplateID,
		execution.InstanceID,
		execution.UserID,
		execution.WorkflowID,
		execution.Status,
		string(parameters),
		execution.CompositionExecutionID,
		execution.CompositionNodeID,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetQueryExecution retrieves a query execution by its id.
func GetQueryExecution(executionID string) (model.QueryExecution, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return model.QueryExecution{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetQueryExecutionByID, executionID)
	if err != nil {
		return model.QueryExecution{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.QueryExecution{}, model.ErrExecutionNotFound
	}

	if len(results) != 1 {
		return model.QueryExecution{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildQueryExecutionFromResultRow(results[0])
}

// UpdateQueryExecutionStatus updates the status of a query execution.
func UpdateQueryExecutionStatus(executionID, status string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryUpdateQueryExecutionStatus, executionID, status)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrExecutionNotFound
	}

	return nil
}

// buildQueryExecutionFromResultRow constructs a model.QueryExecution from a database result row.
func buildQueryExecutionFromResultRow(row map[string]interface{}) (model.QueryExecution, error) {
	executionID, ok := row["execution_id"].(string)
	if !ok {
		return model.QueryExecution{}, fmt.Errorf("failed to parse execution_id as string")
	}

	execution := model.QueryExecution{
		ExecutionID: executionID,
	}

	if templateID, ok := row["template_id"].(string); ok {
		execution.TemplateID = templateID
	}
	if instanceID, ok := row["instance_id"].(string); ok {
		execution.InstanceID = instanceID
	}
	if userID, ok := row["user_id"].(string); ok {
		execution.UserID = userID
	}
	if workflowID, ok := row["workflow_id"].(string); ok {
		execution.WorkflowID = workflowID
	}
	if status, ok := row["status"].(string); ok {
		execution.Status = status
	}
	if compositionExecutionID, ok := row["composition_execution_id"].(string); ok {
		execution.CompositionExecutionID = compositionExecutionID
	}
	if compositionNodeID, ok := row["composition_node_id"].(string); ok {
		execution.CompositionNodeID = compositionNodeID
	}
	if submittedAt, ok := row["submitted_at"].(string); ok {
		execution.SubmittedAt = submittedAt
	}

	if parameters, ok := row["parameters"].(string); ok && parameters != "" {
		if err := json.Unmarshal([]byte(parameters), &execution.Parameters); err != nil {
			return model.QueryExecution{}, fmt.Errorf("failed to unmarshal execution parameters: %w", err)
		}
	}

	return execution, nil
}
