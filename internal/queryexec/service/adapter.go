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

// Package service provides query execution business logic and the backend adapter.
package service

import (
	"context"
	"fmt"

	"github.com/recomlabs/amp/internal/amc"
	"github.com/recomlabs/amp/internal/queryexec/model"
	"github.com/recomlabs/amp/internal/queryexec/store"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
	"github.com/recomlabs/amp/internal/template/engine"
	templatemodel "github.com/recomlabs/amp/internal/template/model"
	templatestore "github.com/recomlabs/amp/internal/template/store"
)

const loggerComponentName = "QueryExecAdapter"

// statusSubmitted is the initial status recorded for a freshly submitted execution.
const statusSubmitted = "SUBMITTED"

// AdapterInterface is the query execution backend adapter consumed by the composition engine.
type AdapterInterface interface {
	// ExecuteTemplate validates and substitutes the template's parameters, submits the
	// resulting SQL to AMC, and records the execution. Parameter validation failures are
	// returned as *engine.ValidationError and are not swallowed.
	ExecuteTemplate(ctx context.Context, templateID, instanceID, userID string,
		parameters map[string]interface{},
		compositionExecutionID, compositionNodeID string) (*model.ExecutionHandle, error)
	// GetStatus retrieves the current AMC-side status of a query execution.
	GetStatus(ctx context.Context, executionID, userID string) (string, error)
}

// Adapter is the default implementation of AdapterInterface.
type Adapter struct {
	amcClient          amc.ClientInterface
	credentialProvider amc.CredentialProviderInterface
}

// NewAdapter creates a new query execution adapter with the default AMC collaborators.
func NewAdapter() AdapterInterface {
	return &Adapter{
		amcClient:          amc.NewClient(),
		credentialProvider: amc.NewStaticCredentialProvider(),
	}
}

// NewAdapterWithClients creates a new adapter with the given AMC collaborators.
func NewAdapterWithClients(amcClient amc.ClientInterface,
	credentialProvider amc.CredentialProviderInterface) AdapterInterface {
	return &Adapter{
		amcClient:          amcClient,
		credentialProvider: credentialProvider,
	}
}

// ExecuteTemplate validates and substitutes the template's parameters, submits the resulting
// SQL to AMC, and records the execution.
func (a *Adapter) ExecuteTemplate(ctx context.Context, templateID, instanceID, userID string,
	parameters map[string]interface{},
	compositionExecutionID, compositionNodeID string) (*model.ExecutionHandle, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	template, err := templatestore.GetTemplate(templateID)
	if err != nil {
		return nil, fmt.Errorf("failed to load template %s: %w", templateID, err)
	}
	if template.Visibility != templatemodel.VisibilityPublic && template.CreatedBy != userID {
		return nil, fmt.Errorf("failed to load template %s: %w", templateID, templatemodel.ErrTemplateNotFound)
	}

	sql, err := engine.Process(template.SQLTemplate, template.Parameters, parameters)
	if err != nil {
		// Validation errors propagate typed so callers can classify them.
		return nil, err
	}

	token, err := a.credentialProvider.GetValidToken(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain AMC token: %w", err)
	}

	amcExecutionID, workflowID, err := a.amcClient.SubmitQuery(ctx, sql, instanceID, token)
	if err != nil {
		return nil, fmt.Errorf("failed to submit query: %w", err)
	}

	execution := model.QueryExecution{
		ExecutionID:            utils.GenerateUUID(),
		TemplateID:             templateID,
		InstanceID:             instanceID,
		UserID:                 userID,
		WorkflowID:             workflowID,
		Status:                 statusSubmitted,
		Parameters:             parameters,
		CompositionExecutionID: compositionExecutionID,
		CompositionNodeID:      compositionNodeID,
	}
	// The AMC-side id is what callers poll with; keep it as the primary identifier.
	if amcExecutionID != "" {
		execution.ExecutionID = amcExecutionID
	}

	if err := store.CreateQueryExecution(execution); err != nil {
		return nil, fmt.Errorf("failed to record query execution: %w", err)
	}

	logger.Debug("Executed template", log.String(log.LoggerKeyTemplateID, templateID),
		log.String(log.LoggerKeyExecutionID, execution.ExecutionID))

	return &model.ExecutionHandle{
		ExecutionID: execution.ExecutionID,
		WorkflowID:  workflowID,
		Status:      statusSubmitted,
		Output: map[string]interface{}{
			"execution_id": execution.ExecutionID,
			"workflow_id":  workflowID,
			"status":       statusSubmitted,
		},
	}, nil
}

// GetStatus retrieves the current AMC-side status of a query execution and
// refreshes the stored record.
func (a *Adapter) GetStatus(ctx context.Context, executionID, userID string) (string, error) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	execution, err := store.GetQueryExecution(executionID)
	if err != nil {
		return "", err
	}

	token, err := a.credentialProvider.GetValidToken(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to obtain AMC token: %w", err)
	}

	status, err := a.amcClient.GetExecutionStatus(ctx, execution.InstanceID, executionID, token)
	if err != nil {
		return "", fmt.Errorf("failed to get execution status: %w", err)
	}

	if status != execution.Status {
		if err := store.UpdateQueryExecutionStatus(executionID, status); err != nil {
			logger.Error("Failed to update stored execution status",
				log.String(log.LoggerKeyExecutionID, executionID), log.Error(err))
		}
	}

	return status, nil
}
