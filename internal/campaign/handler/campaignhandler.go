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

// Package handler provides the implementation for campaign management operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/recomlabs/amp/internal/campaign/constants"
	"github.com/recomlabs/amp/internal/campaign/model"
	"github.com/recomlabs/amp/internal/campaign/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "CampaignHandler"

// CampaignHandler is the handler for campaign management operations.
type CampaignHandler struct{}

// NewCampaignHandler creates a new instance of CampaignHandler.
func NewCampaignHandler() *CampaignHandler {
	return &CampaignHandler{}
}

// HandleCampaignListRequest handles the list campaigns request.
func (ch *CampaignHandler) HandleCampaignListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	limit, offset := parsePagination(r)

	campaignService := provider.NewCampaignProvider().GetCampaignService()
	campaigns, svcErr := campaignService.GetCampaignList(userID, limit, offset)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, campaigns)
}

// HandleCampaignPostRequest handles the create campaign request.
func (ch *CampaignHandler) HandleCampaignPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateCampaignRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.CreateCampaignRequest{
		Name:         sysutils.SanitizeString(createRequest.Name),
		BrandID:      sysutils.SanitizeString(createRequest.BrandID),
		CampaignType: sysutils.SanitizeString(createRequest.CampaignType),
		Status:       sysutils.SanitizeString(createRequest.Status),
		StartDate:    sysutils.SanitizeString(createRequest.StartDate),
		EndDate:      sysutils.SanitizeString(createRequest.EndDate),
	}

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	campaignService := provider.NewCampaignProvider().GetCampaignService()
	createdCampaign, svcErr := campaignService.CreateCampaign(userID, sanitizedRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusCreated, createdCampaign)
}

// HandleCampaignGetRequest handles the get campaign by id request.
func (ch *CampaignHandler) HandleCampaignGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	campaignService := provider.NewCampaignProvider().GetCampaignService()
	campaign, svcErr := campaignService.GetCampaign(id, userID)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, campaign)
}

// HandleCampaignPutRequest handles the update campaign request.
func (ch *CampaignHandler) HandleCampaignPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateCampaignRequest](r)
	if err != nil {
		ch.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.UpdateCampaignRequest{
		Name:         sysutils.SanitizeString(updateRequest.Name),
		BrandID:      sysutils.SanitizeString(updateRequest.BrandID),
		CampaignType: sysutils.SanitizeString(updateRequest.CampaignType),
		Status:       sysutils.SanitizeString(updateRequest.Status),
		StartDate:    sysutils.SanitizeString(updateRequest.StartDate),
		EndDate:      sysutils.SanitizeString(updateRequest.EndDate),
	}

	campaignService := provider.NewCampaignProvider().GetCampaignService()
	campaign, svcErr := campaignService.UpdateCampaign(id, userID, sanitizedRequest)
	if svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	ch.writeJSONResponse(w, logger, http.StatusOK, campaign)
}

// HandleCampaignDeleteRequest handles the delete campaign request.
func (ch *CampaignHandler) HandleCampaignDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	campaignService := provider.NewCampaignProvider().GetCampaignService()
	if svcErr := campaignService.DeleteCampaign(id, userID); svcErr != nil {
		ch.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes the given payload as a JSON response.
func (ch *CampaignHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeDecodeError writes a bad-request response for a request body decode failure.
func (ch *CampaignHandler) writeDecodeError(w http.ResponseWriter, logger *log.Logger, err error) {
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
func (ch *CampaignHandler) handleError(w http.ResponseWriter, logger *log.Logger,
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
		case constants.ErrorCampaignNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorCampaignAccessDenied.Code:
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
