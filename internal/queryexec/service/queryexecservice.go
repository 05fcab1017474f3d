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

	"github.com/recomlabs/amp/internal/queryexec/constants"
	"github.com/recomlabs/amp/internal/queryexec/model"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/template/engine"
	templatemodel "github.com/recomlabs/amp/internal/template/model"
)

// QueryExecServiceInterface defines the REST-facing interface for query execution operations.
type QueryExecServiceInterface interface {
	ExecuteTemplate(ctx context.Context, userID string,
		request model.ExecuteTemplateRequest) (*model.ExecutionHandle, *serviceerror.ServiceError)
	GetExecutionStatus(ctx context.Context, executionID, userID string) (string, *serviceerror.ServiceError)
}

// QueryExecService is the default implementation of QueryExecServiceInterface.
type QueryExecService struct {
	adapter AdapterInterface
}

// GetQueryExecService creates a new instance of QueryExecService.
func GetQueryExecService() QueryExecServiceInterface {
	return &QueryExecService{
		adapter: NewAdapter(),
	}
}

// GetQueryExecServiceWithAdapter creates a QueryExecService with the given adapter.
func GetQueryExecServiceWithAdapter(adapter AdapterInterface) QueryExecServiceInterface {
	return &QueryExecService{
		adapter: adapter,
	}
}

// ExecuteTemplate submits a single template query execution on behalf of the user.
func (qs *QueryExecService) ExecuteTemplate(ctx context.Context, userID string,
	request model.ExecuteTemplateRequest) (*model.ExecutionHandle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "QueryExecService"))

	if request.TemplateID == "" || request.InstanceID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	handle, err := qs.adapter.ExecuteTemplate(ctx, request.TemplateID, request.InstanceID, userID,
		request.Parameters, "", "")
	if err != nil {
		var validationErr *engine.ValidationError
		switch {
		case errors.As(err, &validationErr):
			logger.Debug("Template parameter validation failed", log.Error(err))
			svcErr := constants.ErrorParameterValidationFailed
			svcErr.ErrorDescription = validationErr.Error()
			return nil, &svcErr
		case errors.Is(err, templatemodel.ErrTemplateNotFound):
			logger.Debug("Template not found", log.String(log.LoggerKeyTemplateID, request.TemplateID))
			return nil, &constants.ErrorTemplateNotFound
		default:
			logger.Error("Failed to execute template", log.Error(err))
			return nil, &constants.ErrorBackendSubmissionFailed
		}
	}

	return handle, nil
}

// GetExecutionStatus retrieves the current status of a query execution.
func (qs *QueryExecService) GetExecutionStatus(ctx context.Context, executionID,
	userID string) (string, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "QueryExecService"))

	if executionID == "" {
		return "", &constants.ErrorInvalidRequestFormat
	}

	status, err := qs.adapter.GetStatus(ctx, executionID, userID)
	if err != nil {
		if errors.Is(err, model.ErrExecutionNotFound) {
			logger.Debug("Execution not found", log.String(log.LoggerKeyExecutionID, executionID))
			return "", &constants.ErrorExecutionNotFound
		}
		logger.Error("Failed to get execution status", log.Error(err))
		return "", &constants.ErrorInternalServerError
	}

	return status, nil
}
