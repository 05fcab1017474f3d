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

// Package service provides the implementation for campaign management operations.
package service

import (
	"errors"

	"github.com/recomlabs/amp/internal/campaign/constants"
	"github.com/recomlabs/amp/internal/campaign/model"
	"github.com/recomlabs/amp/internal/campaign/store"
	"github.com/recomlabs/amp/internal/system/error/serviceerror"
	"github.com/recomlabs/amp/internal/system/log"
	"github.com/recomlabs/amp/internal/system/utils"
)

const loggerComponentName = "CampaignMgtService"

// CampaignServiceInterface defines the interface for the campaign service.
type CampaignServiceInterface interface {
	GetCampaignList(userID string, limit, offset int) (*model.CampaignListResponse, *serviceerror.ServiceError)
	CreateCampaign(userID string, request model.CreateCampaignRequest) (*model.Campaign, *serviceerror.ServiceError)
	GetCampaign(campaignID, userID string) (*model.Campaign, *serviceerror.ServiceError)
	UpdateCampaign(campaignID, userID string,
		request model.UpdateCampaignRequest) (*model.Campaign, *serviceerror.ServiceError)
	DeleteCampaign(campaignID, userID string) *serviceerror.ServiceError
}

// CampaignService is the default implementation of the CampaignServiceInterface.
type CampaignService struct{}

// GetCampaignService creates a new instance of CampaignService.
func GetCampaignService() CampaignServiceInterface {
	return &CampaignService{}
}

// GetCampaignList retrieves the user's campaigns.
func (cs *CampaignService) GetCampaignList(userID string, limit,
	offset int) (*model.CampaignListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	totalCount, err := store.GetCampaignListCount(userID)
	if err != nil {
		logger.Error("Failed to get campaign count", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	campaigns, err := store.GetCampaignList(userID, limit, offset)
	if err != nil {
		logger.Error("Failed to list campaigns", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &model.CampaignListResponse{
		TotalResults: totalCount,
		Count:        len(campaigns),
		Campaigns:    campaigns,
	}, nil
}

// CreateCampaign creates a new campaign owned by the given user.
func (cs *CampaignService) CreateCampaign(userID string,
	request model.CreateCampaignRequest) (*model.Campaign, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	campaign := model.Campaign{
		ID:           utils.GenerateUUID(),
		Name:         request.Name,
		BrandID:      request.BrandID,
		CampaignType: request.CampaignType,
		Status:       request.Status,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		CreatedBy:    userID,
	}

	if err := store.CreateCampaign(campaign); err != nil {
		logger.Error("Failed to create campaign", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	logger.Debug("Successfully created campaign", log.String("id", campaign.ID))
	return &campaign, nil
}

// GetCampaign retrieves a campaign by its id. Only the owner may read a campaign.
func (cs *CampaignService) GetCampaign(campaignID, userID string) (*model.Campaign, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if campaignID == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	campaign, err := store.GetCampaign(campaignID)
	if err != nil {
		if errors.Is(err, model.ErrCampaignNotFound) {
			return nil, &constants.ErrorCampaignNotFound
		}
		logger.Error("Failed to retrieve campaign", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	if campaign.CreatedBy != userID {
		return nil, &constants.ErrorCampaignAccessDenied
	}

	return &campaign, nil
}

// UpdateCampaign updates an existing campaign. Only the owner may mutate a campaign.
func (cs *CampaignService) UpdateCampaign(campaignID, userID string,
	request model.UpdateCampaignRequest) (*model.Campaign, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.Name == "" {
		return nil, &constants.ErrorInvalidRequestFormat
	}

	existing, svcErr := cs.GetCampaign(campaignID, userID)
	if svcErr != nil {
		return nil, svcErr
	}

	updated := model.Campaign{
		ID:           existing.ID,
		Name:         request.Name,
		BrandID:      request.BrandID,
		CampaignType: request.CampaignType,
		Status:       request.Status,
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		CreatedBy:    existing.CreatedBy,
		CreatedAt:    existing.CreatedAt,
	}

	if err := store.UpdateCampaign(updated); err != nil {
		if errors.Is(err, model.ErrCampaignNotFound) {
			return nil, &constants.ErrorCampaignNotFound
		}
		logger.Error("Failed to update campaign", log.Error(err))
		return nil, &constants.ErrorInternalServerError
	}

	return &updated, nil
}

// DeleteCampaign removes a campaign. Only the owner may delete a campaign.
func (cs *CampaignService) DeleteCampaign(campaignID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if _, svcErr := cs.GetCampaign(campaignID, userID); svcErr != nil {
		return svcErr
	}

	if err := store.DeleteCampaign(campaignID); err != nil {
		if errors.Is(err, model.ErrCampaignNotFound) {
			return &constants.ErrorCampaignNotFound
		}
		logger.Error("Failed to delete campaign", log.Error(err))
		return &constants.ErrorInternalServerError
	}

	return nil
}
