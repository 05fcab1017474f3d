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

// Package service provides the implementation for brand management operations.
package service

import (
	"errors"

	"github.com/recomlabs/amp/internal/brand/constants"
	"github.com/recomlabs/amp/internal/brand/model"
	"github.com/recomlabs/amp/internal/brand/store"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "BrandMgtService"

// BrandServiceInterface defines the interface for the brand service.
type BrandServiceInterface interface {
	GetBrandList(userID string, limit, offset int) (*model.BrandListResponse, *serviceerror.ServiceError)
	CreateBrand(userID string, request model.CreateBrandRequest) (*model.Brand, *serviceerror.ServiceError)
	GetBrand(brandID, userID string) (*model.Brand, *serviceerror.ServiceError)
	UpdateBrand(brandID, userID string,
		request model.UpdateBrandRequest) (*model.Brand, *serviceerror.ServiceError)
	DeleteBrand(brandID, userID string) *serviceerror.ServiceError
}

// BrandService is the default implementation of the BrandServiceInterface.
type BrandService struct{}

// GetBrandService creates a new instance of BrandService.
func GetBrandService() BrandServiceInterface {
	return &BrandService{}
}

// GetBrandList retrieves the user's brands.
func (bs *BrandService) GetBrandList(userID string, limit,
	offset int) (*model.BrandListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetBrandListCount(userID)
	if err != nil {
		logger.Error("Failed to get brand count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	brands, err := store.GetBrandList(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list brands", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.BrandListResponse{
		TotalResults: totalCount,
		Count:        len(brands),
		Brands:       brands,
	}, nil
}

// CreateBrand creates a new brand owned by the given user.
func (bs *BrandService) CreateBrand(userID string,
	request model.CreateBrandRequest) (*model.Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	brand := model.Brand{
		ID:            utils.GenerateUUID(),
		Name:          request.Name,
		Description:   request.Description,
		AMCInstanceID: request.AMCInstanceID,
		CreatedBy:     userID,
	}

	if err := store.CreateBrand(brand); err != nil {
		logger.Error("Failed to create brand", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created brand", log.String("id", brand.ID))
	return &brand, nil
}

// GetBrand retrieves a brand by its id. Only the owner may read a brand.
func (bs *BrandService) GetBrand(brandID, userID string) (*model.Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if brandID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	brand, err := store.GetBrand(brandID)
	if err != nil {
		if errors.Is(err, model.ErrBrandNotFound) {
			return nil, &constants.ErrorBrandNotFound
		}
		logger.Error("Failed to retrieve brand", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if brand.CreatedBy != userID {
		return nil, &constants.ErrorBrandAccessDenied
	}

	return &brand, nil
}

// UpdateBrand updates an existing brand. Only the owner may mutate a brand.
func (bs *BrandService) UpdateBrand(brandID, userID string,
	request model.UpdateBrandRequest) (*model.Brand, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	existing, svcErr := bs.GetBrand(brandID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	updated := model.Brand{
		ID:            existing.ID,
		Name:          request.Name,
		Description:   request.Description,
		AMCInstanceID: request.AMCInstanceID,
		CreatedBy:     existing.CreatedBy,
		CreatedAt:     existing.CreatedAt,
	}

	if err := store.UpdateBrand(updated); err != nil {
		if errors.Is(err, model.ErrBrandNotFound) {
			return nil, &constants.ErrorBrandNotFound
		}
		logger.Error("Failed to update brand", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &updated, nil
}

// DeleteBrand removes a brand. Only the owner may delete a brand.
func (bs *BrandService) DeleteBrand(brandID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := bs.GetBrand(brandID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.DeleteBrand(brandID); err != nil {
		if errors.Is(err, model.ErrBrandNotFound) {
			return &constants.ErrorBrandNotFound
		}
		logger.Error("Failed to delete brand", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}
