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
	"time"

	"github.com/recomlabs/amp/internal/schedule/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// GetScheduleListCount retrieves the total count of the user's schedules.
func GetScheduleListCount(userID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetScheduleListCount, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var totalCount int
	if len(countResults) > 0 {
		if total, ok := countResults[0]["total"].(int64); ok {
			totalCount = int(total)
		}
	}

	return totalCount, nil
}

// GetScheduleList retrieves the user's schedules with pagination.
func GetScheduleList(userID string, limit, offset int) ([]model.Schedule, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetScheduleList, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute schedule list query: %w", err)
	}

	schedules := make([]model.Schedule, 0, len(results))
	for _, row := range results {
		schedule, err := buildScheduleFromResultRow(row)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, nil
}

// CreateSchedule creates a new schedule in the database.
func CreateSchedule(schedule model.Schedule) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(schedule.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule parameters: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateSchedule,
		schedule.ID,
		schedule.CompositionID,
		schedule.CronExpression,
		schedule.InstanceID,
		string(parameters),
		schedule.Enabled,
		schedule.CreatedBy,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetSchedule retrieves a schedule by its id.
func GetSchedule(id string) (model.Schedule, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetScheduleByID, id)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Schedule{}, model.ErrScheduleNotFound
	}

	if len(results) != 1 {
		return model.Schedule{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildScheduleFromResultRow(results[0])
}

// UpdateSchedule updates an existing schedule.
func UpdateSchedule(schedule model.Schedule) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(schedule.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal schedule parameters: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateSchedule,
		schedule.ID,
		schedule.CronExpression,
		schedule.InstanceID,
		string(parameters),
		schedule.Enabled,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrScheduleNotFound
	}

	return nil
}

// DeleteSchedule removes a schedule from the database.
func DeleteSchedule(id string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteSchedule, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrScheduleNotFound
	}

	return nil
}

// buildScheduleFromResultRow constructs a model.Schedule from a database result row.
func buildScheduleFromResultRow(row map[string]interface{}) (model.Schedule, error) {
	scheduleID, ok := row["schedule_id"].(string)
	if !ok {
		return model.Schedule{}, fmt.Errorf("failed to parse schedule_id as string")
	}

	compositionID, ok := row["composition_id"].(string)
	if !ok {
		return model.Schedule{}, fmt.Errorf("failed to parse composition_id as string")
	}

	createdBy, ok := row["created_by"].(string)
	if !ok {
		return model.Schedule{}, fmt.Errorf("failed to parse created_by as string")
	}

	schedule := model.Schedule{
		ID:            scheduleID,
		CompositionID: compositionID,
		CreatedBy:     createdBy,
	}

	if cronExpression, ok := row["cron_expression"].(string); ok {
		schedule.CronExpression = cronExpression
	}
	if instanceID, ok := row["instance_id"].(string); ok {
		schedule.InstanceID = instanceID
	}
	if enabled, ok := row["enabled"].(bool); ok {
		schedule.Enabled = enabled
	} else if enabled, ok := row["enabled"].(int64); ok {
		schedule.Enabled = enabled != 0
	}
	if createdAt, ok := row["created_at"].(string); ok {
		schedule.CreatedAt = createdAt
	}

	if parameters, ok := row["parameters"].(string); ok && parameters != "" {
		if err := json.Unmarshal([]byte(parameters), &schedule.Parameters); err != nil {
			return model.Schedule{}, fmt.Errorf("failed to unmarshal schedule parameters: %w", err)
		}
	}

	return schedule, nil
}
