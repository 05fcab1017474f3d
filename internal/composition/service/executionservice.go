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

package service

import (
	"context"
	"errors"
	"sync"

	"github.com/recomlabs/amp/internal/composition/constants"
	"github.com/recomlabs/amp/internal/composition/engine"
	"github.com/recomlabs/amp/internal/composition/graph"
	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
)

const executionLoggerComponentName = "CompositionExecService"

// ExecutionServiceInterface defines the interface for composition execution operations.
type ExecutionServiceInterface interface {
	ExecuteComposition(ctx context.Context, compositionID, userID string,
		request model.ExecuteCompositionRequest) (*model.ExecutionResult, *serviceerror.ServiceError)
	GetExecution(executionID, userID string) (*model.ExecutionRecord, *serviceerror.ServiceError)
	CancelExecution(executionID, userID string) (bool, *serviceerror.ServiceError)
}

// ExecutionService is the default implementation of the ExecutionServiceInterface.
type ExecutionService struct {
	engine engine.EngineInterface
}

var (
	executionServiceInstance *ExecutionService
	executionServiceOnce     sync.Once
)

// GetExecutionService returns the singleton composition execution service.
func GetExecutionService() ExecutionServiceInterface {
	executionServiceOnce.Do(func() {
		executionServiceInstance = &ExecutionService{
			engine: engine.NewEngine(),
		}
	})
	return executionServiceInstance
}

// GetExecutionServiceWithEngine creates an execution service with the given engine.
func GetExecutionServiceWithEngine(compositionEngine engine.EngineInterface) ExecutionServiceInterface {
	return &ExecutionService{
		engine: compositionEngine,
	}
}

// ExecuteComposition runs the composition and returns the settled execution result.
func (es *ExecutionService) ExecuteComposition(ctx context.Context, compositionID, userID string,
	request model.ExecuteCompositionRequest) (*model.ExecutionResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))

	if compositionID == "" {
		return nil, &constants.ErrorMissingCompositionID
	}
	if request.InstanceID == "" {
		return nil, &constants.ErrorMissingInstanceID
	}

	result, err := es.engine.ExecuteComposition(ctx, compositionID, request.InstanceID, userID,
		request.Parameters, request.ScheduleID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCompositionNotFound):
			return nil, &constants.ErrorCompositionNotFound
		case errors.Is(err, engine.ErrAccessDenied):
			return nil, &constants.ErrorCompositionAccessDenied
		case errors.Is(err, graph.ErrCyclicGraph):
			return nil, &constants.ErrorCyclicGraph
		}
		logger.Error("Failed to execute composition",
			log.String(log.LoggerKeyCompositionID, compositionID), log.Error(err))
		return nil, &constants.ErrorExecutionRecordFailure
	}

	return result, nil
}

// GetExecution retrieves a composition execution owned by the given user.
func (es *ExecutionService) GetExecution(executionID,
	userID string) (*model.ExecutionRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))

	if executionID == "" {
		return nil, &constants.ErrorExecutionNotFound
	}

	record, err := es.engine.GetExecution(executionID, userID)
	if err != nil {
		if errors.Is(err, model.ErrExecutionRecordNotFound) {
			return nil, &constants.ErrorExecutionNotFound
		}
		logger.Error("Failed to retrieve execution",
			log.String(log.LoggerKeyExecutionID, executionID), log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return record, nil
}

// CancelExecution marks a running execution cancelled. The returned flag reports
// whether the execution actually transitioned.
func (es *ExecutionService) CancelExecution(executionID,
	userID string) (bool, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, executionLoggerComponentName))

	if executionID == "" {
		return false, &constants.ErrorExecutionNotFound
	}

	cancelled, err := es.engine.CancelExecution(executionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrExecutionRecordNotFound):
			return false, &constants.ErrorExecutionNotFound
		case errors.Is(err, engine.ErrAccessDenied):
			return false, &constants.ErrorCompositionAccessDenied
		}
		logger.Error("Failed to cancel execution",
			log.String(log.LoggerKeyExecutionID, executionID), log.Error(err))
		return false, &constants.ErrorInternalServerError
	}

	return cancelled, nil
}
