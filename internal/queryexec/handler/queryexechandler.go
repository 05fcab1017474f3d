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

// Package handler provides HTTP handlers for query execution API requests.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/recomlabs/amp/internal/queryexec/constants"
	"github.com/recomlabs/amp/internal/queryexec/model"
	"github.com/recomlabs/amp/internal/queryexec/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "QueryExecHandler"

// QueryExecHandler is the handler for query execution API requests.
type QueryExecHandler struct{}

// NewQueryExecHandler creates a new instance of QueryExecHandler.
func NewQueryExecHandler() *QueryExecHandler {
	return &QueryExecHandler{}
}

// HandleExecutePostRequest handles the direct template execution request.
func (qh *QueryExecHandler) HandleExecutePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	executeRequest, err := sysutils.DecodeJSONBody[model.ExecuteTemplateRequest](r)
	if err != nil {
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
		return
	}

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	queryExecService := provider.NewQueryExecProvider().GetQueryExecService()
	handle, svcErr := queryExecService.ExecuteTemplate(r.Context(), userID, *executeRequest)
	if svcErr != nil {
		qh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(handle); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully submitted query execution",
		log.String(log.LoggerKeyExecutionID, handle.ExecutionID))
}

// HandleExecutionStatusRequest handles the get execution status request.
func (qh *QueryExecHandler) HandleExecutionStatusRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	queryExecService := provider.NewQueryExecProvider().GetQueryExecService()
	status, svcErr := queryExecService.GetExecutionStatus(r.Context(), id, userID)
	if svcErr != nil {
		qh.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{
		"execution_id": id,
		"status":       status,
	}); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully retrieved execution status", log.String(log.LoggerKeyExecutionID, id))
}

// handleError handles service errors and returns appropriate HTTP responses.
func (qh *QueryExecHandler) handleError(w http.ResponseWriter, logger *log.Logger,
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
		case constants.ErrorTemplateNotFound.Code, constants.ErrorExecutionNotFound.Code:
			statusCode = http.StatusNotFound
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
