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

package store

import (
	"encoding/json"
	"fmt"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// ExecutionStoreInterface is the execution-record persistence surface consumed
// by the execution engine.
type ExecutionStoreInterface interface {
	// CreateExecutionRecord inserts a new execution record in running state.
	CreateExecutionRecord(record model.ExecutionRecord) error
	// FinalizeExecutionRecord settles the record with its terminal status,
	// counts, per-node results, and summary.
	FinalizeExecutionRecord(record model.ExecutionRecord) error
	// GetExecutionRecord retrieves an execution record by id.
	GetExecutionRecord(executionID string) (model.ExecutionRecord, error)
	// UpdateExecutionStatus transitions an execution from one status to another.
	// It reports whether the transition applied.
	UpdateExecutionStatus(executionID string, from, to model.ExecutionStatus) (bool, error)
}

// ExecutionStore is the default implementation of ExecutionStoreInterface.
type ExecutionStore struct{}

// NewExecutionStore creates a new execution record store.
func NewExecutionStore() ExecutionStoreInterface {
	return &ExecutionStore{}
}

// CreateExecutionRecord inserts a new execution record in running state.
func (s *ExecutionStore) CreateExecutionRecord(record model.ExecutionRecord) error {
	return CreateExecutionRecord(record)
}

// FinalizeExecutionRecord settles the record with its terminal state.
func (s *ExecutionStore) FinalizeExecutionRecord(record model.ExecutionRecord) error {
	return FinalizeExecutionRecord(record)
}

// GetExecutionRecord retrieves an execution record by id.
func (s *ExecutionStore) GetExecutionRecord(executionID string) (model.ExecutionRecord, error) {
	return GetExecutionRecord(executionID)
}

// UpdateExecutionStatus transitions an execution from one status to another.
func (s *ExecutionStore) UpdateExecutionStatus(executionID string,
	from, to model.ExecutionStatus) (bool, error) {
	return UpdateExecutionStatus(executionID, from, to)
}

// CreateExecutionRecord inserts a new composition execution record.
func CreateExecutionRecord(record model.ExecutionRecord) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(record.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal execution parameters: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateExecutionRecord,
		record.ExecutionID,
		record.CompositionID,
		record.UserID,
		record.InstanceID,
		record.ScheduleID,
		string(record.Status),
		string(parameters),
		record.TotalNodes,
		record.CompletedNodes,
		record.FailedNodes,
		record.SkippedNodes,
		record.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// FinalizeExecutionRecord settles a composition execution record with its
// terminal status, node counts, per-node results, and summary.
func FinalizeExecutionRecord(record model.ExecutionRecord) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	nodeResults, err := json.Marshal(record.NodeResults)
	if err != nil {
		return fmt.Errorf("failed to marshal node results: %w", err)
	}
	resultSummary, err := json.Marshal(record.ResultSummary)
	if err != nil {
		return fmt.Errorf("failed to marshal result summary: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryFinalizeExecutionRecord,
		record.ExecutionID,
		string(record.Status),
		record.CompletedNodes,
		record.FailedNodes,
		record.SkippedNodes,
		record.CompletedAt,
		string(nodeResults),
		string(resultSummary),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrExecutionRecordNotFound
	}

	return nil
}

// GetExecutionRecord retrieves a composition execution record by id.
func GetExecutionRecord(executionID string) (model.ExecutionRecord, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return model.ExecutionRecord{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetExecutionRecord, executionID)
	if err != nil {
		return model.ExecutionRecord{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.ExecutionRecord{}, model.ErrExecutionRecordNotFound
	}

	if len(results) != 1 {
		return model.ExecutionRecord{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildExecutionRecordFromResultRow(results[0])
}

// UpdateExecutionStatus transitions a composition execution from one status to
// another, reporting whether the transition applied. The compare-and-set guards
// against racing the orchestrator's terminal write.
func UpdateExecutionStatus(executionID string, from, to model.ExecutionStatus) (bool, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameRuntime)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryUpdateExecutionStatus, executionID,
		string(to), string(from))
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}

	return rowsAffected > 0, nil
}

// buildExecutionRecordFromResultRow constructs a model.ExecutionRecord from a database result row.
func buildExecutionRecordFromResultRow(row map[string]interface{}) (model.ExecutionRecord, error) {
	executionID, ok := row["execution_id"].(string)
	if !ok {
		return model.ExecutionRecord{}, fmt.Errorf("failed to parse execution_id as string")
	}

	compositionID, ok := row["composition_id"].(string)
	if !ok {
		return model.ExecutionRecord{}, fmt.Errorf("failed to parse composition_id as string")
	}

	userID, ok := row["user_id"].(string)
	if !ok {
		return model.ExecutionRecord{}, fmt.Errorf("failed to parse user_id as string")
	}

	record := model.ExecutionRecord{
		ExecutionID:   executionID,
		CompositionID: compositionID,
		UserID:        userID,
	}

	if instanceID, ok := row["instance_id"].(string); ok {
		record.InstanceID = instanceID
	}
	if scheduleID, ok := row["schedule_id"].(string); ok {
		record.ScheduleID = scheduleID
	}
	if status, ok := row["status"].(string); ok {
		record.Status = model.ExecutionStatus(status)
	}
	if totalNodes, ok := row["total_nodes"].(int64); ok {
		record.TotalNodes = int(totalNodes)
	}
	if completedNodes, ok := row["completed_nodes"].(int64); ok {
		record.CompletedNodes = int(completedNodes)
	}
	if failedNodes, ok := row["failed_nodes"].(int64); ok {
		record.FailedNodes = int(failedNodes)
	}
	if skippedNodes, ok := row["skipped_nodes"].(int64); ok {
		record.SkippedNodes = int(skippedNodes)
	}
	if startedAt, ok := row["started_at"].(string); ok {
		record.StartedAt = startedAt
	}
	if completedAt, ok := row["completed_at"].(string); ok {
		record.CompletedAt = completedAt
	}

	if parameters, ok := row["parameters"].(string); ok && parameters != "" {
		if err := json.Unmarshal([]byte(parameters), &record.Parameters); err != nil {
			return model.ExecutionRecord{}, fmt.Errorf("failed to unmarshal execution parameters: %w", err)
		}
	}
	if nodeResults, ok := row["node_results"].(string); ok && nodeResults != "" {
		if err := json.Unmarshal([]byte(nodeResults), &record.NodeResults); err != nil {
			return model.ExecutionRecord{}, fmt.Errorf("failed to unmarshal node results: %w", err)
		}
	}
	if resultSummary, ok := row["result_summary"].(string); ok && resultSummary != "" {
		if err := json.Unmarshal([]byte(resultSummary), &record.ResultSummary); err != nil {
			return model.ExecutionRecord{}, fmt.Errorf("failed to unmarshal result summary: %w", err)
		}
	}

	return record, nil
}
