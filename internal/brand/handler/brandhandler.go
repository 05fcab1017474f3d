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

// Package handler provides the implementation for brand management operations.
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/recomlabs/amp/internal/brand/constants"
	"github.com/recomlabs/amp/internal/brand/model"
	"github.com/recomlabs/amp/internal/brand/provider"
	serverconst "github.com/recomlabs/amp/internal/system/constants"
	"github.com/recomlabs/amp/internal/system/error/apierror"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	sysutils "github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "BrandHandler"

// BrandHandler is the handler for brand management operations.
type BrandHandler struct{}

// NewBrandHandler creates a new instance of BrandHandler.
func NewBrandHandler() *BrandHandler {
	return &BrandHandler{}
}

// HandleBrandListRequest handles the list brands request.
func (bh *BrandHandler) HandleBrandListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	limit, offset := parsePagination(r)

	brandService := provider.NewBrandProvider().GetBrandService()
	brands, svcErr := brandService.GetBrandList(userID, limit, offset)
	if svcErr != nil {
		bh.handleError(w, logger, svcErr)
		return
	}

	bh.writeJSONResponse(w, logger, http.StatusOK, brands)
}

// HandleBrandPostRequest handles the create brand request.
func (bh *BrandHandler) HandleBrandPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	createRequest, err := sysutils.DecodeJSONBody[model.CreateBrandRequest](r)
	if err != nil {
		bh.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.CreateBrandRequest{
		Name:          sysutils.SanitizeString(createRequest.Name),
		Description:   sysutils.SanitizeString(createRequest.Description),
		AMCInstanceID: sysutils.SanitizeString(createRequest.AMCInstanceID),
	}

	userID := r.Header.Get(serverconst.UserIDHeaderName)
	brandService := provider.NewBrandProvider().GetBrandService()
	createdBrand, svcErr := brandService.CreateBrand(userID, sanitizedRequest)
	if svcErr != nil {
		bh.handleError(w, logger, svcErr)
		return
	}

	bh.writeJSONResponse(w, logger, http.StatusCreated, createdBrand)
}

// HandleBrandGetRequest handles the get brand by id request.
func (bh *BrandHandler) HandleBrandGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	brandService := provider.NewBrandProvider().GetBrandService()
	brand, svcErr := brandService.GetBrand(id, userID)
	if svcErr != nil {
		bh.handleError(w, logger, svcErr)
		return
	}

	bh.writeJSONResponse(w, logger, http.StatusOK, brand)
}

// HandleBrandPutRequest handles the update brand request.
func (bh *BrandHandler) HandleBrandPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	updateRequest, err := sysutils.DecodeJSONBody[model.UpdateBrandRequest](r)
	if err != nil {
		bh.writeDecodeError(w, logger, err)
		return
	}

	sanitizedRequest := model.UpdateBrandRequest{
		Name:          sysutils.SanitizeString(updateRequest.Name),
		Description:   sysutils.SanitizeString(updateRequest.Description),
		AMCInstanceID: sysutils.SanitizeString(updateRequest.AMCInstanceID),
	}

	brandService := provider.NewBrandProvider().GetBrandService()
	brand, svcErr := brandService.UpdateBrand(id, userID, sanitizedRequest)
	if svcErr != nil {
		bh.handleError(w, logger, svcErr)
		return
	}

	bh.writeJSONResponse(w, logger, http.StatusOK, brand)
}

// HandleBrandDeleteRequest handles the delete brand request.
func (bh *BrandHandler) HandleBrandDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	id := r.PathValue("id")
	userID := r.Header.Get(serverconst.UserIDHeaderName)

	brandService := provider.NewBrandProvider().GetBrandService()
	if svcErr := brandService.DeleteBrand(id, userID); svcErr != nil {
		bh.handleError(w, logger, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeJSONResponse writes the given payload as a JSON response.
func (bh *BrandHandler) writeJSONResponse(w http.ResponseWriter, logger *log.Logger,
	statusCode int, payload interface{}) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Error encoding response", log.Error(err))
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeDecodeError writes a bad-request response for a request body decode failure.
func (bh *BrandHandler) writeDecodeError(w http.ResponseWriter, logger *log.Logger, err error) {
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
func (bh *BrandHandler) handleError(w http.ResponseWriter, logger *log.Logger,
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
		case constants.ErrorBrandNotFound.Code:
			statusCode = http.StatusNotFound
		case constants.ErrorBrandAccessDenied.Code:
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
