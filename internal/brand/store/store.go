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

	"github.com/recomlabs/amp/internal/brand/model"
	"github.com/recomlabs/amp/internal/system/database/provider"
)

// GetBrandListCount retrieves the total count of the user's brands.
func GetBrandListCount(userID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetBrandListCount, userID)
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

// GetBrandList retrieves the user's brands with pagination.
func GetBrandList(userID string, limit, offset int) ([]model.Brand, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBrandList, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute brand list query: %w", err)
	}

	brands := make([]model.Brand, 0, len(results))
	for _, row := range results {
		brand, err := buildBrandFromResultRow(row)
		if err != nil {
			return nil, err
		}
		brands = append(brands, brand)
	}

	return brands, nil
}

// CreateBrand creates a new brand in the database.
func CreateBrand(brand model.Brand) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateBrand,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.AMCInstanceID,
		brand.CreatedBy,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetBrand retrieves a brand by its id.
func GetBrand(id string) (model.Brand, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetBrandByID, id)
	if err != nil {
		return model.Brand{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Brand{}, model.ErrBrandNotFound
	}

	if len(results) != 1 {
		return model.Brand{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildBrandFromResultRow(results[0])
}

// UpdateBrand updates an existing brand.
func UpdateBrand(brand model.Brand) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateBrand,
		brand.ID,
		brand.Name,
		brand.Description,
		brand.AMCInstanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrBrandNotFound
	}

	return nil
}

// DeleteBrand removes a brand from the database.
func DeleteBrand(id string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryDeleteBrand, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrBrandNotFound
	}

	return nil
}

// buildBrandFromResultRow constructs a model.Brand from a database result row.
func buildBrandFromResultRow(row map[string]interface{}) (model.Brand, error) {
	brandID, ok := row["brand_id"].(string)
	if !ok {
		return model.Brand{}, fmt.Errorf("failed to parse brand_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Brand{}, fmt.Errorf("failed to parse name as string")
	}

	createdBy, ok := row["created_by"].(string)
	if !ok {
		return model.Brand{}, fmt.Errorf("failed to parse created_by as string")
	}

	brand := model.Brand{
		ID:        brandID,
		Name:      name,
		CreatedBy: createdBy,
	}

	if description, ok := row["description"].(string); ok {
		brand.Description = description
	}
	if instanceID, ok := row["amc_instance_id"].(string); ok {
		brand.AMCInstanceID = instanceID
	}
	if createdAt, ok := row["created_at"].(string); ok {
		brand.CreatedAt = createdAt
	}

	return brand, nil
}
