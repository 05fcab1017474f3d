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

// Package provider provides the campaign service instance.
package provider

import (
	"github.com/recomlabs/amp/internal/campaign/service"
)

// CampaignProviderInterface defines the interface for the campaign provider.
type CampaignProviderInterface interface {
	GetCampaignService() service.CampaignServiceInterface
}

// CampaignProvider is the default implementation of the CampaignProviderInterface.
type CampaignProvider struct{}

// NewCampaignProvider creates a new instance of CampaignProvider.
func NewCampaignProvider() CampaignProviderInterface {
	return &CampaignProvider{}
}

// GetCampaignService returns the campaign service instance.
func (cp *CampaignProvider) GetCampaignService() service.CampaignServiceInterface {
	return service.GetCampaignService()
}
