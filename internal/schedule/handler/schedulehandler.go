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

// Package handler provides the implementation for schedule management operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/recomlabs/amp/internal/schedule/constants"
	"github.com/recomlabs/amp/internal/schedule/model"
	"github.com/recomlabs/amp/internal/schedule/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "ScheduleHandler"

// ScheduleHandler is the handler for schedule management operations.
type ScheduleHandler struct{}

// NewScheduleHandler creates a new instance of ScheduleHandler.
func NewScheduleHandler() *ScheduleHandler {
	return &ScheduleHandler{}
}

// HandleScheduleListRequest handles the list schedules request.
func (sh *ScheduleHandler) HandleScheduleListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	limit, offset := parsePagination(r)

	scheduleService := provider.NewScheduleProvider().GetScheduleService()
	schedules, svcErr := scheduleService.GetScheduleList(userID, limit, offset)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	sh.writeJSONResponse(w, logger, http.StatusOK, schedules)
}

// HandleSchedulePostRequest handles the create schedule request.
func (sh *ScheduleHandler) HandleSchedulePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateScheduleRequest](r)
	if err != nil {
		sh.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.CreateScheduleRequest{
		CompositionID:  sysutils.SanitizeString(createRequest.CompositionID),
		CronExpression: sysutils.SanitizeString(createRequest.CronExpression),
		InstanceID:     sysutils.SanitizeString(createRequest.InstanceID),
		Parameters:     createRequest.Parameters,
		Enabled:        createRequest.Enabled,
	}

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	scheduleService := provider.NewScheduleProvider().GetScheduleService()
	createdSchedule, svcErr := scheduleService.CreateSchedule(userID, sanitizedRequest)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	sh.writeJSONResponse(w, logger, http.StatusCreated, createdSchedule)
}

// HandleScheduleGetRequest handles the get schedule by id request.
func (sh *ScheduleHandler) HandleScheduleGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	scheduleService := provider.NewScheduleProvider().GetScheduleService()
	schedule, svcErr := scheduleService.GetSchedule(id, userID)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	sh.writeJSONResponse(w, logger, http.StatusOK, schedule)
}

// HandleSchedulePutRequest handles the update schedule request.
func (sh *ScheduleHandler) HandleSchedulePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateScheduleRequest](r)
	if err != nil {
		sh.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.UpdateScheduleRequest{
		CronExpression: sysutils.SanitizeString(updateRequest.CronExpression),
		InstanceID:     sysutils.SanitizeString(updateRequest.InstanceID),
		Parameters:     updateRequest.Parameters,
		Enabled:        updateRequest.Enabled,
	}

	scheduleService := provider.NewScheduleProvider().GetScheduleService()
	schedule, svcErr := scheduleService.UpdateSchedule(id, userID, sanitizedRequest)
	if svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	sh.writeJSONResponse(w, logger, http.StatusOK, schedule)
}

// HandleScheduleDeleteRequest handles the delete schedule request.
func (sh *ScheduleHandler) HandleScheduleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	scheduleService := provider.NewScheduleProvider().GetScheduleService()
	if svcErr := scheduleService.DeleteSchedule(id, userID); svcErr != nil {
		sh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes the given payload as a JSON response.
func (sh *ScheduleHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeDecodeError writes a bad-request response for a request body decode failure.
func (sh *ScheduleHandler) writeDecodeError(w http.ResponseWriter, logger *log.Logger, err error) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        constants.ErrorInvalidRequestFormat.Code,
		Message:     constants.ErrorInvalidRequestFormat.Error,
		Description: "Failed to parse request body: " + err.Error(),
	}

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// handleError handles service errors and returns appropriate HTTP responses.
func (sh *ScheduleHandler) handleError(w http.ResponseWriter, logger *log.Logger,
	svcErr *serviceerror.ServiceError) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}

	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		switch svcErr.Code {
		case constants.ErrorScheduleNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorScheduleAccessDenied.Code:
			statusCode = http.StatusForbidden
		default:
			statusCode = http.StatusBadRequest
		}
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Error encoding error response", log.Error(err))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// parsePagination extracts the limit and offset query parameters with defaults.
func parsePagination(r *http.Request) (int, int) {
	limit := serverconst.DefaultPageSize
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > serverconst.MaxPageSize {
		limit = serverconst.MaxPageSize
	}

	offset := 0
	if offsetParam := r.URL.Query().Get("offset"); offsetParam != "" {
		if parsed, err := strconv.Atoi(offsetParam); err == nil && parsed >= 0 {
			offset = parsed
		}
	}

	return limit, offset
}
