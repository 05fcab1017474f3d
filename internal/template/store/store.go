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

// Package store provides the implementation for query template persistence operations.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/recomlabs/amp/internal/system/database/provider"
	"github.com/recomlabs/amp/internal/template/model"
)

// GetTemplateListCount retrieves the total count of templates visible to the given user.
func GetTemplateListCount(userID string) (int, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	countResults, err := dbClient.Query(QueryGetTemplateListCount, userID)
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

// GetTemplateList retrieves templates visible to the given user with pagination.
func GetTemplateList(userID string, limit, offset int) ([]model.TemplateBasic, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetTemplateList, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute template list query: %w", err)
	}

	templates := make([]model.TemplateBasic, 0, len(results))
	for _, row := range results {
		template := model.TemplateBasic{}
		if id, ok := row["template_id"].(string); ok {
			template.ID = id
		}
		if name, ok := row["name"].(string); ok {
			template.Name = name
		}
		if description, ok := row["description"].(string); ok {
			template.Description = description
		}
		if category, ok := row["category"].(string); ok {
			template.Category = category
		}
		if visibility, ok := row["visibility"].(string); ok {
			template.Visibility = model.Visibility(visibility)
		}
		templates = append(templates, template)
	}

	return templates, nil
}

// CreateTemplate creates a new template in the database.
func CreateTemplate(template model.Template) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(template.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter definitions: %w", err)
	}

	_, err = dbClient.Execute(
		QueryCreateTemplate,
		template.ID,
		template.Name,
		template.Description,
		template.SQLTemplate,
		string(parameters),
		template.Category,
		string(template.Visibility),
		string(template.Lifecycle),
		template.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// GetTemplate retrieves an active template by its id.
func GetTemplate(id string) (model.Template, error) {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(QueryGetTemplateByID, id)
	if err != nil {
		return model.Template{}, fmt.Errorf("failed to execute query: %w", err)
	}

	if len(results) == 0 {
		return model.Template{}, model.ErrTemplateNotFound
	}

	if len(results) != 1 {
		return model.Template{}, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	return buildTemplateFromResultRow(results[0])
}

// UpdateTemplate updates an existing active template.
func UpdateTemplate(template model.Template) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	parameters, err := json.Marshal(template.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal parameter definitions: %w", err)
	}

	rowsAffected, err := dbClient.Execute(
		QueryUpdateTemplate,
		template.ID,
		template.Name,
		template.Description,
		template.SQLTemplate,
		string(parameters),
		template.Category,
		string(template.Visibility),
	)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrTemplateNotFound
	}

	return nil
}

// ArchiveTemplate archives the template instead of physically removing it.
func ArchiveTemplate(id string) error {
	dbClient, err := provider.NewDBProvider().GetDBClient(provider.DBNameAppData)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(QueryArchiveTemplate, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if rowsAffected == 0 {
		return model.ErrTemplateNotFound
	}

	return nil
}

// buildTemplateFromResultRow constructs a model.Template from a database result row.
func buildTemplateFromResultRow(row map[string]interface{}) (model.Template, error) {
	templateID, ok := row["template_id"].(string)
	if !ok {
		return model.Template{}, fmt.Errorf("failed to parse template_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return model.Template{}, fmt.Errorf("failed to parse name as string")
	}

	sqlTemplate, ok := row["sql_template"].(string)
	if !ok {
		return model.Template{}, fmt.Errorf("failed to parse sql_template as string")
	}

	createdBy, ok := row["created_by"].(string)
	if !ok {
		return model.Template{}, fmt.Errorf("failed to parse created_by as string")
	}

	template := model.Template{
		ID:          templateID,
		Name:        name,
		SQLTemplate: sqlTemplate,
		CreatedBy:   createdBy,
	}

	if description, ok := row["description"].(string); ok {
		template.Description = description
	}
	if category, ok := row["category"].(string); ok {
		template.Category = category
	}
	if visibility, ok := row["visibility"].(string); ok {
		template.Visibility = model.Visibility(visibility)
	}
	if lifecycle, ok := row["lifecycle"].(string); ok {
		template.Lifecycle = model.Lifecycle(lifecycle)
	}

	if parameters, ok := row["parameters"].(string); ok && parameters != "" {
		if err := json.Unmarshal([]byte(parameters), &template.Parameters); err != nil {
			return model.Template{}, fmt.Errorf("failed to unmarshal parameter definitions: %w", err)
		}
	}

	return template, nil
}
