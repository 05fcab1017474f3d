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

// Package service provides the implementation for schedule management operations.
package service

import (
	"errors"
	"strings"

	compositionmodel "github.com/recomlabs/amp/internal/composition/model"
	compositionstore "github.com/recomlabs/amp/internal/composition/store"
	"github.com/recomlabs/amp/internal/schedule/constants"
	"github.com/recomlabs/amp/internal/schedule/model"
	"github.com/recomlabs/amp/internal/schedule/store"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "ScheduleMgtService"

// cronFieldCount is the number of whitespace-separated fields in a cron expression.
const cronFieldCount = 5

// ScheduleServiceInterface defines the interface for the schedule service.
type ScheduleServiceInterface interface {
	GetScheduleList(userID string, limit, offset int) (*model.ScheduleListResponse, *serviceerror.ServiceError)
	CreateSchedule(userID string,
		request model.CreateScheduleRequest) (*model.Schedule, *serviceerror.ServiceError)
	GetSchedule(scheduleID, userID string) (*model.Schedule, *serviceerror.ServiceError)
	UpdateSchedule(scheduleID, userID string,
		request model.UpdateScheduleRequest) (*model.Schedule, *serviceerror.ServiceError)
	DeleteSchedule(scheduleID, userID string) *serviceerror.ServiceError
}

// ScheduleService is the default implementation of the ScheduleServiceInterface.
type ScheduleService struct{}

// GetScheduleService creates a new instance of ScheduleService.
func GetScheduleService() ScheduleServiceInterface {
	return &ScheduleService{}
}

// GetScheduleList retrieves the user's schedules.
func (ss *ScheduleService) GetScheduleList(userID string, limit,
	offset int) (*model.ScheduleListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetScheduleListCount(userID)
	if err != nil {
		logger.Error("Failed to get schedule count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	schedules, err := store.GetScheduleList(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list schedules", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.ScheduleListResponse{
		TotalResults: totalCount,
		Count:        len(schedules),
		Schedules:    schedules,
	}, nil
}

// CreateSchedule creates a new schedule owned by the given user. The referenced
// composition must exist before a schedule can point at it.
func (ss *ScheduleService) CreateSchedule(userID string,
	request model.CreateScheduleRequest) (*model.Schedule, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.CompositionID == "" || request.InstanceID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	if !isValidCronExpression(request.CronExpression) {
		return nil, &constants.ErrorInvalidCronExpression
	}

	if _, err := compositionstore.GetComposition(request.CompositionID, false); err != nil {
		if errors.Is(err, compositionmodel.ErrCompositionNotFound) {
			return nil, &constants.ErrorInvalidRequestFormat
		}
		logger.Error("Failed to resolve composition for schedule", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	schedule := model.Schedule{
		ID:             utils.GenerateUUID(),
		CompositionID:  request.CompositionID,
		CronExpression: request.CronExpression,
		InstanceID:     request.InstanceID,
		Parameters:     request.Parameters,
		Enabled:        request.Enabled,
		CreatedBy:      userID,
	}

	if err := store.CreateSchedule(schedule); err != nil {
		logger.Error("Failed to create schedule", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created schedule", log.String("id", schedule.ID))
	return &schedule, nil
}

// GetSchedule retrieves a schedule by its id. Only the owner may read a schedule.
func (ss *ScheduleService) GetSchedule(scheduleID,
	userID string) (*model.Schedule, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if scheduleID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	schedule, err := store.GetSchedule(scheduleID)
	if err != nil {
		if errors.Is(err, model.ErrScheduleNotFound) {
			return nil, &constants.ErrorScheduleNotFound
		}
		logger.Error("Failed to retrieve schedule", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if schedule.CreatedBy != userID {
		return nil, &constants.ErrorScheduleAccessDenied
	}

	return &schedule, nil
}

// UpdateSchedule updates an existing schedule. Only the owner may mutate a
// schedule, and the target composition cannot be changed after creation.
func (ss *ScheduleService) UpdateSchedule(scheduleID, userID string,
	request model.UpdateScheduleRequest) (*model.Schedule, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.InstanceID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	if !isValidCronExpression(request.CronExpression) {
		return nil, &constants.ErrorInvalidCronExpression
	}

	existing, svcErr := ss.GetSchedule(scheduleID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	updated := model.Schedule{
		ID:             existing.ID,
		CompositionID:  existing.CompositionID,
		CronExpression: request.CronExpression,
		InstanceID:     request.InstanceID,
		Parameters:     request.Parameters,
		Enabled:        request.Enabled,
		CreatedBy:      existing.CreatedBy,
		CreatedAt:      existing.CreatedAt,
	}

	if err := store.UpdateSchedule(updated); err != nil {
		if errors.Is(err, model.ErrScheduleNotFound) {
			return nil, &constants.ErrorScheduleNotFound
		}
		logger.Error("Failed to update schedule", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &updated, nil
}

// DeleteSchedule removes a schedule. Only the owner may delete a schedule.
func (ss *ScheduleService) DeleteSchedule(scheduleID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := ss.GetSchedule(scheduleID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.DeleteSchedule(scheduleID); err != nil {
		if errors.Is(err, model.ErrScheduleNotFound) {
			return &constants.ErrorScheduleNotFound
		}
		logger.Error("Failed to delete schedule", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}

// isValidCronExpression checks that the expression has exactly five fields.
// Field-level range validation is left to the external trigger that evaluates
// the expression.
func isValidCronExpression(expression string) bool {
	return len(strings.Fields(expression)) == cronFieldCount
}
