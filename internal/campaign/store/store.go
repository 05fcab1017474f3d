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

package store

import (
	"fmt"
	"time"

	"github.com/recomlabs/amp/internal/campaign/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// GetCampaignListCount retrieves the total count of the user's campaigns.
func GetCampaignListCount(userID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetCampaignListCount, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute count query: %w", err)
	}

	var totalCount int
	if len(countResults) > 0 {
		if total, ok := countResults[0]["total"].(int64); ok {
			totalCount = int(total)
		}
	}

	return totalCount, nil
}

// GetCampaignList retrieves the user's campaigns with pagination.
func GetCampaignList(userID string, limit, offset int) ([]model.Campaign, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCampaignList, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute campaign list query: %w", err)
	}

	campaigns := make([]model.Campaign, 0, len(results))
	for _, row := range results {
		campaign, err := buildCampaignFromResultRow(row)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

// CreateCampaign creates a new campaign in the database.
func CreateCampaign(campaign model.Campaign) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateCampaign,
		campaign.ID,
		campaign.Name,
		campaign.BrandID,
		campaign.CampaignType,
		campaign.Status,
		campaign.StartDate,
		campaign.EndDate,
		campaign.CreatedBy,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetCampaign retrieves a campaign by its id.
func GetCampaign(id string) (model.Campaign, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetCampaignByID, id)
	if err != nil {
		return model.Campaign{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Campaign{}, model.ErrCampaignNotFound
	}

	if len(results) != 1 {
		return model.Campaign{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildCampaignFromResultRow(results[0])
}

// UpdateCampaign updates an existing campaign.
func UpdateCampaign(campaign model.Campaign) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateCampaign,
		campaign.ID,
		campaign.Name,
		campaign.BrandID,
		campaign.CampaignType,
		campaign.Status,
		campaign.StartDate,
		campaign.EndDate,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrCampaignNotFound
	}

	return nil
}

// DeleteCampaign removes a campaign from the database.
func DeleteCampaign(id string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteCampaign, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrCampaignNotFound
	}

	return nil
}

// buildCampaignFromResultRow constructs a model.Campaign from a database result row.
func buildCampaignFromResultRow(row map[string]interface{}) (model.Campaign, error) {
	campaignID, ok := row["campaign_id"].(string)
	if !ok {
		return model.Campaign{}, fmt.Errorf("failed to parse campaign_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Campaign{}, fmt.Errorf("failed to parse name as string")
	}

	createdBy, ok := row["created_by"].(string)
	if !ok {
		return model.Campaign{}, fmt.Errorf("failed to parse created_by as string")
	}

	campaign := model.Campaign{
		ID:        campaignID,
		Name:      name,
		CreatedBy: createdBy,
	}

	if brandID, ok := row["brand_id"].(string); ok {
		campaign.BrandID = brandID
	}
	if campaignType, ok := row["campaign_type"].(string); ok {
		campaign.CampaignType = campaignType
	}
	if status, ok := row["status"].(string); ok {
		campaign.Status = status
	}
	if startDate, ok := row["start_date"].(string); ok {
		campaign.StartDate = startDate
	}
	if endDate, ok := row["end_date"].(string); ok {
		campaign.EndDate = endDate
	}
	if createdAt, ok := row["created_at"].(string); ok {
		campaign.CreatedAt = createdAt
	}

	return campaign, nil
}
