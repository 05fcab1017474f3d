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

// Package service provides the implementation for query template management operations.
package service

import (
	"errors"

	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
	"github.com/recomlabs/amp/internal/template/constants"
	"github.com/recomlabs/amp/internal/template/model"
	"github.com/recomlabs/amp/internal/template/store"
)

const loggerComponentName = "TemplateMgtService"

// TemplateServiceInterface defines the interface for the template service.
type TemplateServiceInterface interface {
	GetTemplateList(userID string, limit, offset int) (*model.TemplateListResponse, *serviceerror.ServiceError)
	CreateTemplate(userID string, request model.CreateTemplateRequest) (*model.Template, *serviceerror.ServiceError)
	GetTemplate(templateID, userID string) (*model.Template, *serviceerror.ServiceError)
	UpdateTemplate(templateID, userID string,
		request model.UpdateTemplateRequest) (*model.Template, *serviceerror.ServiceError)
	ArchiveTemplate(templateID, userID string) *serviceerror.ServiceError
}

// TemplateService is the default implementation of the TemplateServiceInterface.
type TemplateService struct{}

// GetTemplateService creates a new instance of TemplateService.
func GetTemplateService() TemplateServiceInterface {
	return &TemplateService{}
}

// GetTemplateList retrieves templates visible to the given user.
func (ts *TemplateService) GetTemplateList(userID string, limit,
	offset int) (*model.TemplateListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetTemplateListCount(userID)
	if err != nil {
		logger.Error("Failed to get template count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	templates, err := store.GetTemplateList(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list templates", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.TemplateListResponse{
		TotalResults: totalCount,
		Count:        len(templates),
		Templates:    templates,
	}, nil
}

// CreateTemplate creates a new template owned by the given user.
func (ts *TemplateService) CreateTemplate(userID string,
	request model.CreateTemplateRequest) (*model.Template, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Creating template", log.String("name", request.Name))

	if request.Name == "" || request.SQLTemplate == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	if svcErr := validateParameterDefinitions(request.Parameters); svcErr != nil {
		return nil, svcErr
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = model.VisibilityPrivate
	}

	template := model.Template{
		ID:          utils.GenerateUUID(),
		Name:        request.Name,
		Description: request.Description,
		SQLTemplate: request.SQLTemplate,
		Parameters:  request.Parameters,
		Category:    request.Category,
		Visibility:  visibility,
		Lifecycle:   model.LifecycleActive,
		CreatedBy:   userID,
	}

	if err := store.CreateTemplate(template); err != nil {
		logger.Error("Failed to create template", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created template", log.String("id", template.ID))
	return &template, nil
}

// GetTemplate retrieves a template by its id, enforcing visibility rules.
func (ts *TemplateService) GetTemplate(templateID, userID string) (*model.Template, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if templateID == "" {
		return nil, &constants.ErrorMissingTemplateID
	}

	template, err := store.GetTemplate(templateID)
	if err != nil {
		if errors.Is(err, model.ErrTemplateNotFound) {
			logger.Debug("Template not found", log.String(log.LoggerKeyTemplateID, templateID))
			return nil, &constants.ErrorTemplateNotFound
		}
		logger.Error("Failed to retrieve template", log.String(log.LoggerKeyTemplateID, templateID), log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if template.Visibility != model.VisibilityPublic && template.CreatedBy != userID {
		logger.Debug("Template access denied", log.String(log.LoggerKeyTemplateID, templateID))
		return nil, &constants.ErrorTemplateAccessDenied
	}

	return &template, nil
}

// UpdateTemplate updates an existing template. Only the owner may mutate a template.
func (ts *TemplateService) UpdateTemplate(templateID, userID string,
	request model.UpdateTemplateRequest) (*model.Template, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Updating template", log.String(log.LoggerKeyTemplateID, templateID))

	if templateID == "" {
		return nil, &constants.ErrorMissingTemplateID
	}
	if request.Name == "" || request.SQLTemplate == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}
	if svcErr := validateParameterDefinitions(request.Parameters); svcErr != nil {
		return nil, svcErr
	}

	existing, svcErr := ts.GetTemplate(templateID, userID)
	if svcErr != nil {
		return nil, svcErr
	}
	if existing.CreatedBy != userID {
		return nil, &constants.ErrorTemplateAccessDenied
	}

	visibility := request.Visibility
	if visibility == "" {
		visibility = existing.Visibility
	}

	updatedTemplate := model.Template{
		ID:          existing.ID,
		Name:        request.Name,
		Description: request.Description,
		SQLTemplate: request.SQLTemplate,
		Parameters:  request.Parameters,
		Category:    request.Category,
		Visibility:  visibility,
		Lifecycle:   existing.Lifecycle,
		CreatedBy:   existing.CreatedBy,
	}

	if err := store.UpdateTemplate(updatedTemplate); err != nil {
		if errors.Is(err, model.ErrTemplateNotFound) {
			return nil, &constants.ErrorTemplateNotFound
		}
		logger.Error("Failed to update template", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully updated template", log.String(log.LoggerKeyTemplateID, templateID))
	return &updatedTemplate, nil
}

// ArchiveTemplate archives the specified template. Only the owner may archive a template.
func (ts *TemplateService) ArchiveTemplate(templateID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))
	logger.Debug("Archiving template", log.String(log.LoggerKeyTemplateID, templateID))

	if templateID == "" {
		return &constants.ErrorMissingTemplateID
	}

	existing, svcErr := ts.GetTemplate(templateID, userID)
	if svcErr != nil {
		return svcErr
	}
	if existing.CreatedBy != userID {
		return &constants.ErrorTemplateAccessDenied
	}

	if err := store.ArchiveTemplate(templateID); err != nil {
		if errors.Is(err, model.ErrTemplateNotFound) {
			return &constants.ErrorTemplateNotFound
		}
		logger.Error("Failed to archive template", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully archived template", log.String(log.LoggerKeyTemplateID, templateID))
	return nil
}

// validateParameterDefinitions checks that every parameter definition has a name and a supported type.
func validateParameterDefinitions(defs []model.ParameterDefinition) *serviceerror.ServiceError {
	for _, def := range defs {
		if def.Name == "" {
			return &constants.ErrorInvalidParameterDefinition
		}
		switch def.Type {
		case model.ParameterTypeString, model.ParameterTypeNumber, model.ParameterTypeBoolean,
			model.ParameterTypeStringList, model.ParameterTypeNumberList, model.ParameterTypeDate,
			model.ParameterTypeCampaignList:
		default:
			return &constants.ErrorInvalidParameterDefinition
		}
	}
	return nil
}
