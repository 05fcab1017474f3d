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

// Package handler provides the implementation for query template management operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
	"github.com/recomlabs/amp/internal/template/constants"
	"github.com/recomlabs/amp/internal/template/model"
	"github.com/recomlabs/amp/internal/template/provider"
)

const loggerComponentName = "TemplateHandler"

// TemplateHandler is the handler for query template management operations.
type TemplateHandler struct{}

// NewTemplateHandler creates a new instance of TemplateHandler.
func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

// HandleTemplateListRequest handles the list templates request.
func (th *TemplateHandler) HandleTemplateListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	limit, offset := parsePagination(r)

	templateService := provider.NewTemplateProvider().GetTemplateService()
	templates, svcErr := templateService.GetTemplateList(userID, limit, offset)
	if svcErr != nil {
		th.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(templates); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully listed templates")
}

// HandleTemplatePostRequest handles the create template request.
func (th *TemplateHandler) HandleTemplatePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateTemplateRequest](r)
	if err != nil {
		th.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := th.sanitizeCreateTemplateRequest(createRequest)

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	templateService := provider.NewTemplateProvider().GetTemplateService()
	createdTemplate, svcErr := templateService.CreateTemplate(userID, sanitizedRequest)
	if svcErr != nil {
		th.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(createdTemplate); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully created template", log.String(log.LoggerKeyTemplateID, createdTemplate.ID))
}

// HandleTemplateGetRequest handles the get template by id request.
func (th *TemplateHandler) HandleTemplateGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	templateService := provider.NewTemplateProvider().GetTemplateService()
	template, svcErr := templateService.GetTemplate(id, userID)
	if svcErr != nil {
		th.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(template); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully retrieved template", log.String(log.LoggerKeyTemplateID, id))
}

// HandleTemplatePutRequest handles the update template request.
func (th *TemplateHandler) HandleTemplatePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateTemplateRequest](r)
	if err != nil {
		th.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := th.sanitizeUpdateTemplateRequest(updateRequest)

	templateService := provider.NewTemplateProvider().GetTemplateService()
	template, svcErr := templateService.UpdateTemplate(id, userID, sanitizedRequest)
	if svcErr != nil {
		th.handleError(w, logger, svcErr)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(template); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	logger.Debug("Successfully updated template", log.String(log.LoggerKeyTemplateID, id))
}

// HandleTemplateDeleteRequest handles the archive template request.
func (th *TemplateHandler) HandleTemplateDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	templateService := provider.NewTemplateProvider().GetTemplateService()
	if svcErr := templateService.ArchiveTemplate(id, userID); svcErr != nil {
		th.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully archived template", log.String(log.LoggerKeyTemplateID, id))
}

// writeDecodeError writes a bad-request response for a request body decode failure.
func (th *TemplateHandler) writeDecodeError(w http.ResponseWriter, logger *log.Logger, err error) {
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
func (th *TemplateHandler) handleError(w http.ResponseWriter, logger *log.Logger,
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
		case constants.ErrorTemplateNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorTemplateAccessDenied.Code:
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

// sanitizeCreateTemplateRequest sanitizes the create template request input.
func (th *TemplateHandler) sanitizeCreateTemplateRequest(
	request *model.CreateTemplateRequest) model.CreateTemplateRequest {
	return model.CreateTemplateRequest{
		Name:        sysutils.SanitizeString(request.Name),
		Description: sysutils.SanitizeString(request.Description),
		SQLTemplate: request.SQLTemplate,
		Parameters:  request.Parameters,
		Category:    sysutils.SanitizeString(request.Category),
		Visibility:  request.Visibility,
	}
}

// sanitizeUpdateTemplateRequest sanitizes the update template request input.
func (th *TemplateHandler) sanitizeUpdateTemplateRequest(
	request *model.UpdateTemplateRequest) model.UpdateTemplateRequest {
	return model.UpdateTemplateRequest{
		Name:        sysutils.SanitizeString(request.Name),
		Description: sysutils.SanitizeString(request.Description),
		SQLTemplate: request.SQLTemplate,
		Parameters:  request.Parameters,
		Category:    sysutils.SanitizeString(request.Category),
		Visibility:  request.Visibility,
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
