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

// Package model defines the data structures for schedule management operations.
package model

import "errors"

// ErrScheduleNotFound is returned by the store when a schedule does not exist.
var ErrScheduleNotFound = errors.New("schedule not found")

// Schedule is a cron-expression-to-row mapping that names a composition to run.
// No scheduler loop ships with the server; an external trigger reads these rows
// and calls the composition execution endpoint with the stored schedule id.
type Schedule struct {
	ID             string                 `json:"id"`
	CompositionID  string                 `json:"composition_id"`
	CronExpression string                 `json:"cron_expression"`
	InstanceID     string                 `json:"instance_id"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	Enabled        bool                   `json:"enabled"`
	CreatedBy      string                 `json:"created_by"`
	CreatedAt      string                 `json:"created_at,omitempty"`
}

// ScheduleListResponse is the paginated response for schedule list requests.
type ScheduleListResponse struct {
	TotalResults int        `json:"total_results"`
	Count        int        `json:"count"`
	Schedules    []Schedule `json:"schedules"`
}

// CreateScheduleRequest is the request body for creating a schedule.
type CreateScheduleRequest struct {
	CompositionID  string                 `json:"composition_id"`
	CronExpression string                 `json:"cron_expression"`
	InstanceID     string                 `json:"instance_id"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	Enabled        bool                   `json:"enabled"`
}

// UpdateScheduleRequest is the request body for updating a schedule.
type UpdateScheduleRequest struct {
	CronExpression string                 `json:"cron_expression"`
	InstanceID     string                 `json:"instance_id"`
	Parameters     map[string]interface{} `json:"parameters,omitempty"`
	Enabled        bool                   `json:"enabled"`
}
