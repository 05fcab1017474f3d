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

// Package handler provides the implementation for composition management operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/recomlabs/amp/internal/composition/constants"
	"github.com/recomlabs/amp/internal/composition/model"
	"github.com/recomlabs/amp/internal/composition/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "CompositionHandler"

// CompositionHandler is the handler for composition management operations.
type CompositionHandler struct{}

// NewCompositionHandler creates a new instance of CompositionHandler.
func NewCompositionHandler() *CompositionHandler {
	return &CompositionHandler{}
}

// HandleCompositionListRequest handles the list compositions request.
func (ch *CompositionHandler) HandleCompositionListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	limit, offset := parsePagination(r)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	compositions, svcErr := compositionService.GetCompositionList(userID, limit, offset)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, compositions)
}

// HandleCompositionPostRequest handles the create composition request.
func (ch *CompositionHandler) HandleCompositionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateCompositionRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := ch.sanitizeCreateCompositionRequest(createRequest)

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	compositionService := provider.NewCompositionProvider().GetCompositionService()
	createdComposition, svcErr := compositionService.CreateComposition(userID, sanitizedRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusCreated, createdComposition)
	logger.Debug("Successfully created composition",
		log.String(log.LoggerKeyCompositionID, createdComposition.ID))
}

// HandleCompositionGetRequest handles the get composition by id request.
func (ch *CompositionHandler) HandleCompositionGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	composition, svcErr := compositionService.GetComposition(id, userID)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, composition)
}

// HandleCompositionPutRequest handles the update composition request.
func (ch *CompositionHandler) HandleCompositionPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateCompositionRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := ch.sanitizeUpdateCompositionRequest(updateRequest)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	composition, svcErr := compositionService.UpdateComposition(id, userID, sanitizedRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, composition)
}

// HandleCompositionDeleteRequest handles the archive composition request.
func (ch *CompositionHandler) HandleCompositionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	if svcErr := compositionService.ArchiveComposition(id, userID); svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logger.Debug("Successfully archived composition", log.String(log.LoggerKeyCompositionID, id))
}

// HandleNodePostRequest handles the add node request.
func (ch *CompositionHandler) HandleNodePostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	addRequest, err := sysutils.DecodeJSONBody[model.AddNodeRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	node, svcErr := compositionService.AddNode(id, userID, *addRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusCreated, node)
}

// HandleNodePutRequest handles the update node request.
func (ch *CompositionHandler) HandleNodePutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	nodeID := r.PathValue("nodeId")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.AddNodeRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	node, svcErr := compositionService.UpdateNode(id, nodeID, userID, *updateRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, node)
}

// HandleNodeDeleteRequest handles the remove node request.
func (ch *CompositionHandler) HandleNodeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	nodeID := r.PathValue("nodeId")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	if svcErr := compositionService.DeleteNode(id, nodeID, userID); svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleConnectionPostRequest handles the add connection request.
func (ch *CompositionHandler) HandleConnectionPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	addRequest, err := sysutils.DecodeJSONBody[model.AddConnectionRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	connection, svcErr := compositionService.AddConnection(id, userID, *addRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusCreated, connection)
}

// HandleConnectionDeleteRequest handles the remove connection request.
func (ch *CompositionHandler) HandleConnectionDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	connectionID := r.PathValue("connectionId")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	compositionService := provider.NewCompositionProvider().GetCompositionService()
	if svcErr := compositionService.DeleteConnection(id, connectionID, userID); svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes the given payload as a JSON response.
func (ch *CompositionHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeDecodeError writes a bad-request response for a request body decode failure.
func (ch *CompositionHandler) writeDecodeError(w http.ResponseWriter, logger *log.Logger, err error) {
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
func (ch *CompositionHandler) handleError(w http.ResponseWriter, logger *log.Logger,
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
		case constants.ErrorCompositionNotFound.Code, constants.ErrorNodeNotFound.Code,
			constants.ErrorConnectionNotFound.Code, constants.ErrorExecutionNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorCompositionAccessDenied.Code:
			statusCode = http.StatusForbidden
		case constants.ErrorDuplicateConnectionID.Code:
			statusCode = http.StatusConflict
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

// sanitizeCreateCompositionRequest sanitizes the create composition request input.
func (ch *CompositionHandler) sanitizeCreateCompositionRequest(
	request *model.CreateCompositionRequest) model.CreateCompositionRequest {
	return model.CreateCompositionRequest{
		Name:             sysutils.SanitizeString(request.Name),
		Description:      sysutils.SanitizeString(request.Description),
		Canvas:           request.Canvas,
		GlobalParameters: request.GlobalParameters,
		Visibility:       request.Visibility,
		ExecutionConfig:  request.ExecutionConfig,
		Nodes:            request.Nodes,
		Connections:      request.Connections,
	}
}

// sanitizeUpdateCompositionRequest sanitizes the update composition request input.
func (ch *CompositionHandler) sanitizeUpdateCompositionRequest(
	request *model.UpdateCompositionRequest) model.UpdateCompositionRequest {
	return model.UpdateCompositionRequest{
		Name:             sysutils.SanitizeString(request.Name),
		Description:      sysutils.SanitizeString(request.Description),
		Canvas:           request.Canvas,
		GlobalParameters: request.GlobalParameters,
		Visibility:       request.Visibility,
		ExecutionConfig:  request.ExecutionConfig,
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
