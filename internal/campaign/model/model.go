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

// Package model defines the data structures for campaign management operations.
package model

import "errors"

// ErrCampaignNotFound is returned by the store when a campaign does not exist.
var ErrCampaignNotFound = errors.New("campaign not found")

// Campaign is an AMC campaign metadata row.
type Campaign struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BrandID      string `json:"brand_id,omitempty"`
	CampaignType string `json:"campaign_type,omitempty"`
	Status       string `json:"status,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	CreatedBy    string `json:"created_by"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// CampaignListResponse is the paginated response for campaign list requests.
type CampaignListResponse struct {
	TotalResults int        `json:"total_results"`
	Count        int        `json:"count"`
	Campaigns    []Campaign `json:"campaigns"`
}

// CreateCampaignRequest is the request body for creating a campaign.
type CreateCampaignRequest struct {
	Name         string `json:"name"`
	BrandID      string `json:"brand_id,omitempty"`
	CampaignType string `json:"campaign_type,omitempty"`
	Status       string `json:"status,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// UpdateCampaignRequest is the request body for updating a campaign.
type UpdateCampaignRequest struct {
	Name         string `json:"name"`
	BrandID      string `json:"brand_id,omitempty"`
	CampaignType string `json:"campaign_type,omitempty"`
	Status       string `json:"status,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}
