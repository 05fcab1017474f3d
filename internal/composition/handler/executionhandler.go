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

package handler

import (
	"net/http"

	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/composition/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const executionLoggerComponentName = "CompositionExecHandler"

// ExecutionHandler is the handler for composition execution operations.
type ExecutionHandler struct{}

// NewExecutionHandler creates a new instance of ExecutionHandler.
func NewExecutionHandler() *ExecutionHandler {
	return &ExecutionHandler{}
}

// HandleExecutePostRequest handles the execute composition request. The request
// runs to completion before responding with the settled execution result.
func (eh *ExecutionHandler) HandleExecutePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))
	compositionHandler := NewCompositionHandler()

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	executeRequest, err := sysutils.DecodeJSONBody[model.ExecuteCompositionRequest](r)
	if err != nil {
		compositionHandler.writeDecodeError(w, logger, err)
		return
	}

	executionService := provider.NewCompositionProvider().GetExecutionService()
	result, svcErr := executionService.ExecuteComposition(r.Context(), id, userID, *executeRequest)
	if svcErr != nil {
		compositionHandler.handleError(w, logger, svcErr)
		return
	}

	compositionHandler.writeJSONResponse(w, logger, http.StatusCreated, result)
	logger.Debug("Composition execution settled",
		log.String(log.LoggerKeyCompositionID, id),
		log.String(log.LoggerKeyExecutionID, result.CompositionExecutionID))
}

// HandleExecutionGetRequest handles the get composition execution request.
func (eh *ExecutionHandler) HandleExecutionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))
	compositionHandler := NewCompositionHandler()

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	executionService := provider.NewCompositionProvider().GetExecutionService()
	record, svcErr := executionService.GetExecution(id, userID)
	if svcErr != nil {
		compositionHandler.handleError(w, logger, svcErr)
		return
	}

	compositionHandler.writeJSONResponse(w, logger, http.StatusOK, record)
}

// HandleExecutionCancelRequest handles the cancel composition execution request.
// The cancellation is advisory; queries already submitted to the backend are not
// recalled.
func (eh *ExecutionHandler) HandleExecutionCancelRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))
	compositionHandler := NewCompositionHandler()

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	executionService := provider.NewCompositionProvider().GetExecutionService()
	cancelled, svcErr := executionService.CancelExecution(id, userID)
	if svcErr != nil {
		compositionHandler.handleError(w, logger, svcErr)
		return
	}

	compositionHandler.writeJSONResponse(w, logger, http.StatusOK, map[string]interface{}{
		"execution_id": id,
		"cancelled":    cancelled,
	})
}
